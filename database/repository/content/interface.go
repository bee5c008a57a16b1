package contentRepo

import (
	"context"

	"crownbeauty/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContentRepository reads and seeds the salon's marketing content.
// List methods return documents ordered by their order field.
type ContentRepository interface {
	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)
	ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error)
	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error)

	UpsertSiteSettings(ctx context.Context, settings models.SiteSettings) error
	UpsertServiceCategory(ctx context.Context, category models.ServiceCategory) error
	UpsertTestimonial(ctx context.Context, testimonial models.Testimonial) error
	UpsertGalleryImage(ctx context.Context, image models.GalleryImage) error

	EnsureIndexes() error
}

const (
	siteSettingsCollection    = "site_settings"
	serviceCategoryCollection = "service_categories"
	testimonialCollection     = "testimonials"
	galleryImageCollection    = "gallery_images"

	// SiteSettingsID is the id of the singleton settings document.
	SiteSettingsID = "site-settings"
)

type mongoContentRepo struct {
	settings     *mongo.Collection
	categories   *mongo.Collection
	testimonials *mongo.Collection
	gallery      *mongo.Collection
}

// NewMongoContentRepo returns a ContentRepository backed by db.
func NewMongoContentRepo(db *mongo.Database) ContentRepository {
	return &mongoContentRepo{
		settings:     db.Collection(siteSettingsCollection),
		categories:   db.Collection(serviceCategoryCollection),
		testimonials: db.Collection(testimonialCollection),
		gallery:      db.Collection(galleryImageCollection),
	}
}
