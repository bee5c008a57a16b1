package contentRepo

import (
	"context"
	"testing"

	"crownbeauty/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestContentRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing settings yield nil", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+siteSettingsCollection, mtest.FirstBatch))

		settings, err := repo.GetSiteSettings(context.Background())
		require.NoError(mt, err)
		assert.Nil(mt, settings)
	})

	mt.Run("settings decode", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+siteSettingsCollection, mtest.FirstBatch, bson.D{
			{Key: "id", Value: SiteSettingsID},
			{Key: "businessName", Value: "Crown Nail & Beauty"},
			{Key: "phone", Value: "09 123 4567"},
		}))

		settings, err := repo.GetSiteSettings(context.Background())
		require.NoError(mt, err)
		require.NotNil(mt, settings)
		assert.Equal(mt, "Crown Nail & Beauty", settings.BusinessName)
		assert.Equal(mt, "09 123 4567", settings.Phone)
	})

	mt.Run("categories decode in cursor order", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		ns := mt.DB.Name() + "." + serviceCategoryCollection
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "id", Value: "gel-polish"},
			{Key: "title", Value: "Gel Polish"},
			{Key: "order", Value: 1},
			{Key: "services", Value: bson.A{
				bson.D{{Key: "key", Value: "gel-hands"}, {Key: "name", Value: "Gel Hands"}, {Key: "price", Value: "$45"}},
			}},
		})
		next := mtest.CreateCursorResponse(0, ns, mtest.NextBatch, bson.D{
			{Key: "id", Value: "lash-studio"},
			{Key: "title", Value: "Lash Studio"},
			{Key: "order", Value: 2},
		})
		mt.AddMockResponses(first, next)

		categories, err := repo.ListServiceCategories(context.Background())
		require.NoError(mt, err)
		require.Len(mt, categories, 2)
		assert.Equal(mt, "gel-polish", categories[0].ID)
		assert.Equal(mt, "$45", categories[0].Services[0].Price)
		assert.Equal(mt, "lash-studio", categories[1].ID)
	})

	mt.Run("empty list is not nil", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+testimonialCollection, mtest.FirstBatch))

		testimonials, err := repo.ListTestimonials(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, testimonials)
		assert.Empty(mt, testimonials)
	})

	mt.Run("upsert requires id", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)

		err := repo.UpsertGalleryImage(context.Background(), models.GalleryImage{Title: "untitled"})
		assert.ErrorIs(mt, err, errMissingID)
	})

	mt.Run("upsert succeeds", func(mt *mtest.T) {
		repo := NewMongoContentRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		err := repo.UpsertTestimonial(context.Background(), models.Testimonial{ID: "t1", Quote: "Lovely", Author: "Mia"})
		assert.NoError(mt, err)
	})
}
