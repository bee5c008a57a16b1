package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	contentRepo "crownbeauty/database/repository/content"
	"crownbeauty/models"
	"crownbeauty/services/storage"
	"crownbeauty/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	querySite         = "site"
	queryCategories   = "categories"
	queryTestimonials = "testimonials"
	queryGallery      = "gallery"

	// GalleryImageWidth is the width gallery URLs are scaled to.
	GalleryImageWidth = 800
)

var allQueries = []string{querySite, queryCategories, queryTestimonials, queryGallery}

// Service serves the salon's content from the repository through a Redis
// read-through cache. Missing documents come back as empty values.
type Service struct {
	Repo    contentRepo.ContentRepository
	Cache   *redis.Client
	TTL     time.Duration
	Media   storage.MediaService
	SiteURL string
	Logger  *zap.Logger
	Metrics *utils.Metrics
}

// NewContentService wires a content service. cache and media may be nil.
func NewContentService(repo contentRepo.ContentRepository, cache *redis.Client, ttl time.Duration, media storage.MediaService, siteURL string, logger *zap.Logger, metrics *utils.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		Repo:    repo,
		Cache:   cache,
		TTL:     ttl,
		Media:   media,
		SiteURL: siteURL,
		Logger:  logger,
		Metrics: metrics,
	}
}

func (s *Service) SiteSettings(ctx context.Context) (models.SiteSettings, error) {
	return cached(ctx, s, querySite, func(ctx context.Context) (models.SiteSettings, error) {
		settings, err := s.Repo.GetSiteSettings(ctx)
		if err != nil {
			return models.SiteSettings{}, err
		}
		if settings == nil {
			settings = &models.SiteSettings{}
		}
		return normalizeSettings(*settings), nil
	})
}

// ListServiceCategories returns categories ordered for display. It makes the
// service usable as the booking wizard's catalog source.
func (s *Service) ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error) {
	return cached(ctx, s, queryCategories, func(ctx context.Context) ([]models.ServiceCategory, error) {
		categories, err := s.Repo.ListServiceCategories(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.ServiceCategory, 0, len(categories))
		for _, c := range categories {
			if c.Services == nil {
				c.Services = []models.Service{}
			}
			out = append(out, c)
		}
		return out, nil
	})
}

func (s *Service) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return cached(ctx, s, queryTestimonials, func(ctx context.Context) ([]models.Testimonial, error) {
		testimonials, err := s.Repo.ListTestimonials(ctx)
		if err != nil {
			return nil, err
		}
		if testimonials == nil {
			testimonials = []models.Testimonial{}
		}
		return testimonials, nil
	})
}

// GalleryImages returns the portfolio with delivery URLs resolved. An image
// whose URL cannot be built is skipped.
func (s *Service) GalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	return cached(ctx, s, queryGallery, func(ctx context.Context) ([]models.GalleryImage, error) {
		images, err := s.Repo.ListGalleryImages(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.GalleryImage, 0, len(images))
		for _, img := range images {
			if s.Media != nil {
				url, err := s.Media.ImageURL(img.PublicID, GalleryImageWidth)
				if err != nil {
					s.Logger.Warn("skipping gallery image", zap.String("id", img.ID), zap.Error(err))
					continue
				}
				img.URL = url
			}
			out = append(out, img)
		}
		return out, nil
	})
}

// Invalidate drops every cached content query.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	keys := make([]string, 0, len(allQueries))
	for _, q := range allQueries {
		keys = append(keys, cacheKey(q))
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate content cache: %w", err)
	}
	return nil
}

func cacheKey(query string) string {
	return utils.ContentCachePrefix + query
}

// cached serves query from Redis when present and otherwise loads it and
// stores the result for s.TTL. Cache failures fall through to load.
func cached[T any](ctx context.Context, s *Service, query string, load func(context.Context) (T, error)) (T, error) {
	if s.Cache != nil {
		data, err := s.Cache.Get(ctx, cacheKey(query)).Bytes()
		switch {
		case err == nil:
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				s.Metrics.ObserveContentCache(query, true)
				return v, nil
			}
			s.Logger.Warn("discarding unreadable content cache entry", zap.String("query", query))
		case !errors.Is(err, redis.Nil):
			s.Logger.Warn("content cache read failed", zap.String("query", query), zap.Error(err))
		}
	}
	s.Metrics.ObserveContentCache(query, false)

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to load %s content: %w", query, err)
	}

	if s.Cache != nil && s.TTL > 0 {
		if data, err := json.Marshal(v); err == nil {
			if err := s.Cache.Set(ctx, cacheKey(query), data, s.TTL).Err(); err != nil {
				s.Logger.Warn("content cache write failed", zap.String("query", query), zap.Error(err))
			}
		}
	}
	return v, nil
}

func normalizeSettings(s models.SiteSettings) models.SiteSettings {
	if s.OpeningHours == nil {
		s.OpeningHours = []models.OpeningHours{}
	}
	if s.AboutParagraphs == nil {
		s.AboutParagraphs = []string{}
	}
	return s
}
