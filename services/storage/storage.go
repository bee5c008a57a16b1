package storage

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
)

// CloudinaryMediaService builds Cloudinary delivery URLs. It never calls the
// Cloudinary API; URLs are derived from the cloud name alone.
type CloudinaryMediaService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryMediaService creates a media service for cloudName. The API
// key and secret are optional for delivery.
func NewCloudinaryMediaService(cloudName, apiKey, apiSecret string) (*CloudinaryMediaService, error) {
	if cloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud name is not configured")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true
	return &CloudinaryMediaService{cld: cld}, nil
}

func (s *CloudinaryMediaService) ImageURL(publicID string, width int) (string, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return "", nil
	}
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("failed to build image asset %s: %w", publicID, err)
	}
	img.Transformation = transformation(width)
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build image URL %s: %w", publicID, err)
	}
	return url, nil
}

// transformation limits the width and lets Cloudinary pick format and quality.
func transformation(width int) string {
	if width <= 0 {
		return "f_auto,q_auto"
	}
	return fmt.Sprintf("c_limit,w_%d/f_auto,q_auto", width)
}

// StaticMediaService serves images from a fixed base URL, for deployments
// without Cloudinary.
type StaticMediaService struct {
	BaseURL string
}

func (s StaticMediaService) ImageURL(publicID string, _ int) (string, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return "", nil
	}
	return strings.TrimSuffix(s.BaseURL, "/") + "/" + strings.TrimPrefix(publicID, "/"), nil
}
