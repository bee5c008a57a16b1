package contentRepo

import (
	"context"
	"errors"
	"fmt"

	"crownbeauty/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var errMissingID = errors.New("document id is required")

// UpsertSiteSettings replaces the singleton settings document.
func (r *mongoContentRepo) UpsertSiteSettings(ctx context.Context, settings models.SiteSettings) error {
	settings.ID = SiteSettingsID
	return replaceByID(ctx, r.settings, settings.ID, settings)
}

func (r *mongoContentRepo) UpsertServiceCategory(ctx context.Context, category models.ServiceCategory) error {
	return replaceByID(ctx, r.categories, category.ID, category)
}

func (r *mongoContentRepo) UpsertTestimonial(ctx context.Context, testimonial models.Testimonial) error {
	return replaceByID(ctx, r.testimonials, testimonial.ID, testimonial)
}

func (r *mongoContentRepo) UpsertGalleryImage(ctx context.Context, image models.GalleryImage) error {
	return replaceByID(ctx, r.gallery, image.ID, image)
}

func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	if id == "" {
		return fmt.Errorf("upsert into %s: %w", coll.Name(), errMissingID)
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := coll.ReplaceOne(ctx, bson.M{"id": id}, doc, opts); err != nil {
		return fmt.Errorf("failed to upsert %s %s: %w", coll.Name(), id, err)
	}
	return nil
}
