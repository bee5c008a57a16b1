package content

import (
	"context"
	"fmt"

	"crownbeauty/models"

	"go.uber.org/zap"
)

// DefaultSiteSettings is the settings document written by SeedDefaults.
func DefaultSiteSettings() models.SiteSettings {
	return models.SiteSettings{
		BusinessName: DefaultBusinessName,
		Tagline:      "Where meticulous craftsmanship meets serene luxury",
		Phone:        "+64 9 836 0000",
		Email:        "hello@crownnails.co.nz",
		Address: models.Address{
			Street:   DefaultStreet,
			Suburb:   "Glendene",
			City:     "Auckland",
			Postcode: DefaultPostcode,
		},
		OpeningHours: []models.OpeningHours{
			{Days: "Monday - Saturday", Hours: "9:00 AM - 6:00 PM"},
			{Days: "Sunday", Hours: "10:00 AM - 5:30 PM"},
		},
		SocialLinks: models.SocialLinks{
			Instagram: "https://www.instagram.com/crownnailsnz",
			Facebook:  "https://www.facebook.com/crownnailsnz",
		},
		AboutHeading: "The Crown Philosophy",
		AboutParagraphs: []string{
			"Crown Nail & Beauty is a private studio built around unhurried, detail-first care.",
			"Every treatment is performed by a specialist who works to your shape, your style and your schedule.",
		},
		HeroHeadline: "Where Meticulous Craftsmanship Meets Serene Luxury.",
	}
}

// DefaultServiceCategories is the service menu written by SeedDefaults.
func DefaultServiceCategories() []models.ServiceCategory {
	return []models.ServiceCategory{
		{
			ID:          "nail-artistry",
			Title:       "Nail Artistry",
			Slug:        "nail-artistry",
			Description: "Full structural enhancement with builder gel and dipping powder systems, or bespoke hand-painted nail art.",
			PriceFrom:   "$35",
			Order:       1,
			Services: []models.Service{
				{Key: "gel-hands", Name: "Gel Polish - Hands", Price: "$45"},
				{Key: "gel-feet", Name: "Gel Polish - Feet", Price: "$50"},
				{Key: "builder-gel", Name: "Builder Gel Full Set", Price: "$65"},
				{Key: "dip-powder", Name: "Dipping Powder Full Set", Price: "$60"},
				{Key: "classic-manicure", Name: "Classic Manicure", Price: "$35"},
				{Key: "nail-art-set", Name: "Bespoke Nail Art Set", Price: "from $40-60", Note: "Priced by design complexity"},
			},
		},
		{
			ID:          "lash-studio",
			Title:       "Lash Studio",
			Slug:        "lash-studio",
			Description: "Premium lash extensions from subtle classic enhancements to full volume sets tailored to your eye shape.",
			PriceFrom:   "$60",
			Order:       2,
			Services: []models.Service{
				{Key: "classic-set", Name: "Classic Full Set", Price: "$80"},
				{Key: "hybrid-set", Name: "Hybrid Full Set", Price: "$95"},
				{Key: "volume-set", Name: "Volume Full Set", Price: "$110"},
				{Key: "lash-lift", Name: "Lash Lift & Tint", Price: "$60"},
				{Key: "lash-infill", Name: "Infill (2-3 weeks)", Price: "$55", Note: "Within three weeks of a full set"},
			},
		},
		{
			ID:          "wax-tint",
			Title:       "Wax & Tint",
			Slug:        "wax-tint",
			Description: "Precision facial waxing and custom-blended tinting for defined brows and lashes.",
			PriceFrom:   "$15",
			Order:       3,
			Services: []models.Service{
				{Key: "brow-shape", Name: "Brow Wax & Shape", Price: "$20"},
				{Key: "brow-tint", Name: "Brow Tint", Price: "$15"},
				{Key: "lash-tint", Name: "Lash Tint", Price: "$20"},
				{Key: "lip-wax", Name: "Lip Wax", Price: "$15"},
			},
		},
		{
			ID:          "facial-care",
			Title:       "Facial Care",
			Slug:        "facial-care",
			Description: "Express and deluxe facials designed to deep cleanse, hydrate and restore your natural glow.",
			PriceFrom:   "$70",
			Order:       4,
			Services: []models.Service{
				{Key: "express-facial", Name: "Express Facial (30 min)", Price: "$70"},
				{Key: "deluxe-facial", Name: "Deluxe Facial (60 min)", Price: "$120"},
			},
		},
		{
			ID:          "permanent-makeup",
			Title:       "Permanent Makeup",
			Slug:        "permanent-makeup",
			Description: "Semi-permanent micro-shading, eyeliner and lip blush for long-lasting natural beauty.",
			PriceFrom:   "$350",
			Order:       5,
			Services: []models.Service{
				{Key: "micro-shading", Name: "Brow Micro-Shading", Price: "$450", Note: "Includes a touch-up within 8 weeks"},
				{Key: "lip-blush", Name: "Lip Blush", Price: "$400"},
				{Key: "eyeliner", Name: "Lash Line Enhancement", Price: "$350"},
			},
		},
	}
}

func DefaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{ID: "testimonial-1", Quote: "The most relaxing hour of my month. My gel set lasted over three weeks without a chip.", Author: "Mia R.", Service: "Gel Polish", Order: 1},
		{ID: "testimonial-2", Quote: "Amy listened to exactly what I wanted and my lashes have never looked so natural.", Author: "Hannah T.", Service: "Lash Studio", Order: 2},
		{ID: "testimonial-3", Quote: "Spotless studio, calm atmosphere and brows that finally match.", Author: "Priya S.", Service: "Wax & Tint", Order: 3},
	}
}

func DefaultGalleryImages() []models.GalleryImage {
	return []models.GalleryImage{
		{ID: "gallery-1", Title: "Floral Pastels", PublicID: "crownbeauty/gallery/floral-pastels", Alt: "Intricate floral nail art design with pastel tones", Order: 1},
		{ID: "gallery-2", Title: "Chrome Extensions", PublicID: "crownbeauty/gallery/chrome-extensions", Alt: "Elegant gel extension set with chrome finish", Order: 2},
		{ID: "gallery-3", Title: "Gold Accents", PublicID: "crownbeauty/gallery/gold-accents", Alt: "Detailed hand-painted nail design with gold accents", Order: 3},
		{ID: "gallery-4", Title: "Modern French", PublicID: "crownbeauty/gallery/modern-french", Alt: "Classic French manicure with a modern twist", Order: 4},
		{ID: "gallery-5", Title: "Marble Luxe", PublicID: "crownbeauty/gallery/marble-luxe", Alt: "Luxury nail art featuring marble texture", Order: 5},
		{ID: "gallery-6", Title: "Geometric Statement", PublicID: "crownbeauty/gallery/geometric-statement", Alt: "Bold statement nail design with geometric patterns", Order: 6},
	}
}

// SeedDefaults upserts the default content and drops cached reads. Running
// it twice leaves the same documents in place.
func (s *Service) SeedDefaults(ctx context.Context) error {
	if err := s.Repo.UpsertSiteSettings(ctx, DefaultSiteSettings()); err != nil {
		return fmt.Errorf("failed to seed site settings: %w", err)
	}
	categories := DefaultServiceCategories()
	for _, c := range categories {
		if err := s.Repo.UpsertServiceCategory(ctx, c); err != nil {
			return fmt.Errorf("failed to seed service categories: %w", err)
		}
	}
	testimonials := DefaultTestimonials()
	for _, t := range testimonials {
		if err := s.Repo.UpsertTestimonial(ctx, t); err != nil {
			return fmt.Errorf("failed to seed testimonials: %w", err)
		}
	}
	images := DefaultGalleryImages()
	for _, img := range images {
		if err := s.Repo.UpsertGalleryImage(ctx, img); err != nil {
			return fmt.Errorf("failed to seed gallery images: %w", err)
		}
	}
	if err := s.Invalidate(ctx); err != nil {
		s.Logger.Warn("content seeded but cache not cleared", zap.Error(err))
	}

	s.Logger.Info("seeded default content",
		zap.Int("categories", len(categories)),
		zap.Int("testimonials", len(testimonials)),
		zap.Int("galleryImages", len(images)),
	)
	return nil
}
