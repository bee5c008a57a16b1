package storage

// MediaService resolves stored media into delivery URLs.
type MediaService interface {
	// ImageURL returns a delivery URL for publicID scaled down to width
	// pixels, or "" when publicID is empty. A width of 0 keeps the original.
	ImageURL(publicID string, width int) (string, error)
}
