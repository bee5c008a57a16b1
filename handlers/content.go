package handlers

import (
	"context"
	"net/http"
	"time"

	"crownbeauty/models"
	"crownbeauty/services/content"
	"crownbeauty/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentProvider is the read side of the content service.
type ContentProvider interface {
	SiteSettings(ctx context.Context) (models.SiteSettings, error)
	ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	GalleryImages(ctx context.Context) ([]models.GalleryImage, error)
	StructuredData(ctx context.Context) content.BeautySalon
}

// ContentHandler serves the landing page's content and crawler files.
type ContentHandler struct {
	Service ContentProvider
	SiteURL string
	Logger  *zap.Logger

	started time.Time
}

func NewContentHandler(svc ContentProvider, siteURL string, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{Service: svc, SiteURL: siteURL, Logger: logger, started: time.Now()}
}

// GetSiteSettings handles GET /api/content/site.
func (h *ContentHandler) GetSiteSettings(c *gin.Context) {
	settings, err := h.Service.SiteSettings(c.Request.Context())
	if err != nil {
		h.unavailable(c, "site settings", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// GetServiceCategories handles GET /api/content/categories.
func (h *ContentHandler) GetServiceCategories(c *gin.Context) {
	categories, err := h.Service.ListServiceCategories(c.Request.Context())
	if err != nil {
		h.unavailable(c, "service categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetTestimonials handles GET /api/content/testimonials.
func (h *ContentHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.Service.Testimonials(c.Request.Context())
	if err != nil {
		h.unavailable(c, "testimonials", err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// GetGallery handles GET /api/content/gallery.
func (h *ContentHandler) GetGallery(c *gin.Context) {
	images, err := h.Service.GalleryImages(c.Request.Context())
	if err != nil {
		h.unavailable(c, "gallery images", err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetStructuredData handles GET /api/content/structured-data.
func (h *ContentHandler) GetStructuredData(c *gin.Context) {
	c.Header("Content-Type", "application/ld+json; charset=utf-8")
	c.JSON(http.StatusOK, h.Service.StructuredData(c.Request.Context()))
}

// GetRobots handles GET /robots.txt.
func (h *ContentHandler) GetRobots(c *gin.Context) {
	c.String(http.StatusOK, content.RobotsTxt(h.SiteURL))
}

// GetSitemap handles GET /sitemap.xml.
func (h *ContentHandler) GetSitemap(c *gin.Context) {
	body, err := content.Sitemap(h.SiteURL, h.started)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to render sitemap", err.Error())
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

func (h *ContentHandler) unavailable(c *gin.Context, what string, err error) {
	requestLogger(c, h.Logger).Error("content read failed", zap.String("content", what), zap.Error(err))
	utils.JSONError(c, http.StatusServiceUnavailable, what+" are temporarily unavailable", "")
}
