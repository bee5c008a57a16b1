package content

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"crownbeauty/models"

	"go.uber.org/zap"
)

const (
	DefaultBusinessName = "Crown Nail & Beauty"
	DefaultStreet       = "10/4343 Great North Road"
	DefaultLocality     = "Glendene, Auckland"
	DefaultPostcode     = "0602"

	defaultTagline     = "Where meticulous craftsmanship meets serene luxury"
	descriptionSuffix  = "Premium nail and beauty services in Auckland, New Zealand."
	structuredContext  = "https://schema.org"
	sitemapNamespace   = "http://www.sitemaps.org/schemas/sitemap/0.9"
	sitemapDateLayout  = "2006-01-02"
	sitemapChangeFreq  = "weekly"
	sitemapTopPriority = "1.0"
)

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	PostalCode      string `json:"postalCode"`
	AddressCountry  string `json:"addressCountry"`
}

type OpeningHoursSpecification struct {
	Type      string      `json:"@type"`
	DayOfWeek interface{} `json:"dayOfWeek"`
	Opens     string      `json:"opens"`
	Closes    string      `json:"closes"`
}

type OfferedService struct {
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Offer struct {
	Type        string         `json:"@type"`
	ItemOffered OfferedService `json:"itemOffered"`
}

type OfferCatalog struct {
	Type            string  `json:"@type"`
	Name            string  `json:"name"`
	ItemListElement []Offer `json:"itemListElement"`
}

// BeautySalon is the schema.org document embedded in the landing page.
type BeautySalon struct {
	Context                   string                      `json:"@context"`
	Type                      string                      `json:"@type"`
	Name                      string                      `json:"name"`
	Description               string                      `json:"description"`
	URL                       string                      `json:"url"`
	Telephone                 string                      `json:"telephone"`
	Email                     string                      `json:"email"`
	Address                   PostalAddress               `json:"address"`
	PriceRange                string                      `json:"priceRange"`
	OpeningHoursSpecification []OpeningHoursSpecification `json:"openingHoursSpecification"`
	HasOfferCatalog           OfferCatalog                `json:"hasOfferCatalog"`
}

// BuildStructuredData renders settings and categories as a BeautySalon.
// Zero-valued settings fall back to the salon's published details.
func BuildStructuredData(settings models.SiteSettings, categories []models.ServiceCategory, siteURL string) BeautySalon {
	name := settings.BusinessName
	if name == "" {
		name = DefaultBusinessName
	}
	tagline := settings.Tagline
	if tagline == "" {
		tagline = defaultTagline
	}

	address := PostalAddress{
		Type:            "PostalAddress",
		StreetAddress:   DefaultStreet,
		AddressLocality: DefaultLocality,
		PostalCode:      DefaultPostcode,
		AddressCountry:  "NZ",
	}
	if a := settings.Address; a != (models.Address{}) {
		if a.Street != "" {
			address.StreetAddress = a.Street
		}
		address.AddressLocality = strings.Trim(a.Suburb+", "+a.City, ", ")
		if a.Postcode != "" {
			address.PostalCode = a.Postcode
		}
	}

	offers := make([]Offer, 0, len(categories))
	for _, c := range categories {
		offers = append(offers, Offer{
			Type: "Offer",
			ItemOffered: OfferedService{
				Type:        "Service",
				Name:        c.Title,
				Description: c.Description,
			},
		})
	}

	return BeautySalon{
		Context:     structuredContext,
		Type:        "BeautySalon",
		Name:        name,
		Description: fmt.Sprintf("%s. %s", strings.TrimSuffix(tagline, "."), descriptionSuffix),
		URL:         siteURL,
		Telephone:   dialable(settings.Phone),
		Email:       settings.Email,
		Address:     address,
		PriceRange:  "$$",
		OpeningHoursSpecification: []OpeningHoursSpecification{
			{
				Type:      "OpeningHoursSpecification",
				DayOfWeek: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
				Opens:     "09:00",
				Closes:    "18:00",
			},
			{
				Type:      "OpeningHoursSpecification",
				DayOfWeek: "Sunday",
				Opens:     "10:00",
				Closes:    "17:30",
			},
		},
		HasOfferCatalog: OfferCatalog{
			Type:            "OfferCatalog",
			Name:            "Beauty Services",
			ItemListElement: offers,
		},
	}
}

// dialable keeps only the leading plus and digits of a phone number.
func dialable(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StructuredData loads the content it needs and builds the JSON-LD
// document. A failed read degrades to the fallback values.
func (s *Service) StructuredData(ctx context.Context) BeautySalon {
	settings, err := s.SiteSettings(ctx)
	if err != nil {
		s.Logger.Warn("structured data without site settings", zap.Error(err))
		settings = models.SiteSettings{}
	}
	categories, err := s.ListServiceCategories(ctx)
	if err != nil {
		s.Logger.Warn("structured data without service categories", zap.Error(err))
		categories = nil
	}
	return BuildStructuredData(settings, categories, s.SiteURL)
}

// RobotsTxt allows every crawler and points at the sitemap.
func RobotsTxt(siteURL string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", strings.TrimSuffix(siteURL, "/"))
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap renders the site's single landing page as a sitemap document.
func Sitemap(siteURL string, lastModified time.Time) ([]byte, error) {
	set := sitemapURLSet{
		Xmlns: sitemapNamespace,
		URLs: []sitemapURL{{
			Loc:        strings.TrimSuffix(siteURL, "/"),
			LastMod:    lastModified.UTC().Format(sitemapDateLayout),
			ChangeFreq: sitemapChangeFreq,
			Priority:   sitemapTopPriority,
		}},
	}
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
