// File: booking/booking.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crownbeauty/models"
	"crownbeauty/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxTxRetries = 5

// DefaultBookingSessionService implements BookingSessionService on Redis.
// Each session is one JSON document; every mutation runs in a WATCH
// transaction so concurrent requests on one session apply one at a time.
type DefaultBookingSessionService struct {
	Client  *redis.Client
	Catalog CatalogSource
	Wizard  WizardConfig
	Sink    RequestSink
	TTL     time.Duration
	Logger  *zap.Logger
	Metrics *utils.Metrics

	now   func() time.Time
	newID func() string
}

func NewBookingSessionService(client *redis.Client, catalog CatalogSource, cfg WizardConfig, sink RequestSink, ttl time.Duration, logger *zap.Logger, metrics *utils.Metrics) *DefaultBookingSessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = &LogSink{Logger: logger}
	}
	return &DefaultBookingSessionService{
		Client:  client,
		Catalog: catalog,
		Wizard:  cfg,
		Sink:    sink,
		TTL:     ttl,
		Logger:  logger,
		Metrics: metrics,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

func sessionKey(sessionID string) string {
	return utils.BookingSessionPrefix + sessionID
}

// Options returns the static menus the wizard offers.
func (s *DefaultBookingSessionService) Options() models.BookingOptions {
	return models.BookingOptions{
		AddOns:      append([]models.AddOn(nil), s.Wizard.AddOns...),
		Technicians: append([]models.Technician(nil), s.Wizard.Technicians...),
		Calendar:    s.Wizard.Availability.CalendarGrid(),
		TimeSlots:   s.Wizard.Availability.TimeSlots(),
	}
}

// InitiateSession snapshots the current category list and stores an empty
// selection under a new session id.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context) (*SessionView, error) {
	catalog, err := s.Catalog.ListServiceCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load service categories: %w", err)
	}
	if catalog == nil {
		catalog = []models.ServiceCategory{}
	}

	now := s.now()
	session := models.BookingSession{
		SessionID: s.newID(),
		Catalog:   catalog,
		Selection: models.NewBookingSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, s.TTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store booking session: %w", err)
	}

	s.Logger.Debug("booking session started",
		zap.String("sessionID", session.SessionID),
		zap.Int("categories", len(catalog)),
	)
	return s.view(&session, false, true), nil
}

// GetSession returns the session with its catalog.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, ErrSessionNotFound
	}
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return s.view(&session, false, true), nil
}

// ApplyEvent routes one user intent into the session's wizard. Rejected
// events are not errors; the view reports Applied=false.
func (s *DefaultBookingSessionService) ApplyEvent(ctx context.Context, sessionID string, ev models.BookingEvent) (*SessionView, error) {
	if ev.Type == EventSubmit {
		return s.Submit(ctx, sessionID)
	}

	var applied bool
	session, err := s.mutate(ctx, sessionID, func(sess *models.BookingSession) {
		w := NewWizard(s.Wizard, sess.Catalog, &sess.Selection)
		applied = w.Dispatch(ev)
		if ev.Type == EventReset && applied {
			sess.Summary = nil
		}
	})
	if err != nil {
		return nil, err
	}
	s.Metrics.ObserveTransition(ev.Type, applied)
	return s.view(session, applied, false), nil
}

// Submit finalizes the session's booking and hands the summary to the sink.
// A sink failure is logged and counted; the session stays submitted.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string) (*SessionView, error) {
	var applied bool
	session, err := s.mutate(ctx, sessionID, func(sess *models.BookingSession) {
		w := NewWizard(s.Wizard, sess.Catalog, &sess.Selection)
		if applied = w.Submit(); applied {
			summary := *w.Summary()
			summary.Reference = s.newID()
			summary.SubmittedAt = s.now()
			sess.Summary = &summary
		}
	})
	if err != nil {
		return nil, err
	}
	s.Metrics.ObserveTransition(EventSubmit, applied)

	if applied {
		status := "delivered"
		if err := s.Sink.Deliver(ctx, sessionID, *session.Summary); err != nil {
			status = "failed"
			s.Logger.Error("failed to deliver booking request",
				zap.String("sessionID", sessionID),
				zap.String("sink", s.Sink.Name()),
				zap.Error(err),
			)
		}
		s.Metrics.ObserveSubmission(s.Sink.Name(), status)
	}
	return s.view(session, applied, false), nil
}

// Reset returns the session's wizard to its initial state.
func (s *DefaultBookingSessionService) Reset(ctx context.Context, sessionID string) (*SessionView, error) {
	return s.ApplyEvent(ctx, sessionID, models.BookingEvent{Type: EventReset})
}

// CancelSession deletes the session. Cancelling an unknown session is not an error.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// mutate loads the session under WATCH, applies fn and writes it back,
// retrying when another writer touched the key first.
func (s *DefaultBookingSessionService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingSession)) (*models.BookingSession, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, ErrSessionNotFound
	}
	key := sessionKey(sessionID)

	var result *models.BookingSession
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read booking session: %w", err)
		}

		var session models.BookingSession
		if err := json.Unmarshal(data, &session); err != nil {
			return fmt.Errorf("failed to parse booking session: %w", err)
		}
		fn(&session)
		session.UpdatedAt = s.now()

		updated, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("failed to marshal booking session: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, s.TTL)
			return nil
		})
		if err != nil {
			return err
		}
		result = &session
		return nil
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := s.Client.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	s.Logger.Warn("booking session update kept conflicting", zap.String("sessionID", sessionID))
	return nil, ErrSessionConflict
}

func (s *DefaultBookingSessionService) view(session *models.BookingSession, applied, withCatalog bool) *SessionView {
	w := NewWizard(s.Wizard, session.Catalog, &session.Selection)
	v := &SessionView{
		SessionID: session.SessionID,
		Applied:   applied,
		Wizard:    w.View(),
		Summary:   session.Summary,
	}
	if withCatalog {
		v.Catalog = session.Catalog
	}
	return v
}
