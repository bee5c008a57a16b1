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

// GetSiteSettings returns the settings document, or nil when none exists.
func (r *mongoContentRepo) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.settings.FindOne(ctx, bson.M{"id": SiteSettingsID}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch site settings: %w", err)
	}
	return &settings, nil
}

func (r *mongoContentRepo) ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	return listOrdered[models.ServiceCategory](ctx, r.categories)
}

func (r *mongoContentRepo) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return listOrdered[models.Testimonial](ctx, r.testimonials)
}

func (r *mongoContentRepo) ListGalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	return listOrdered[models.GalleryImage](ctx, r.gallery)
}

// listOrdered decodes every document of coll sorted by order ascending.
func listOrdered[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return items, nil
}
