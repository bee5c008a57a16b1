package booking

import (
	"context"

	"crownbeauty/models"
)

// BookingSessionService hosts one wizard per visitor session.
type BookingSessionService interface {
	InitiateSession(ctx context.Context) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	ApplyEvent(ctx context.Context, sessionID string, ev models.BookingEvent) (*SessionView, error)
	Submit(ctx context.Context, sessionID string) (*SessionView, error)
	Reset(ctx context.Context, sessionID string) (*SessionView, error)
	CancelSession(ctx context.Context, sessionID string) error
	Options() models.BookingOptions
}

// CatalogSource supplies the service categories a new session snapshots.
type CatalogSource interface {
	ListServiceCategories(ctx context.Context) ([]models.ServiceCategory, error)
}

// SessionView is what the booking endpoints return.
type SessionView struct {
	SessionID string                   `json:"sessionId"`
	Applied   bool                     `json:"applied"`
	Wizard    WizardView               `json:"wizard"`
	Catalog   []models.ServiceCategory `json:"catalog,omitempty"`
	Summary   *models.BookingSummary   `json:"summary,omitempty"`
}
