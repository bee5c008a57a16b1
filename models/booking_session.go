package models

import "time"

// Contact holds the customer details collected on the last wizard step.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// BookingSelection is the wizard's mutable state.
type BookingSelection struct {
	Step       int      `json:"step"`
	CategoryID *string  `json:"categoryId"`
	ServiceKey *string  `json:"serviceKey"`
	Day        *int     `json:"day"`
	Time       *string  `json:"time"`
	Technician *string  `json:"technician"`
	AddOnIDs   []string `json:"addOnIds"`
	Contact    Contact  `json:"contact"`
	Submitted  bool     `json:"submitted"`
}

// NewBookingSelection returns the empty selection a wizard starts from.
func NewBookingSelection() BookingSelection {
	return BookingSelection{Step: 1, AddOnIDs: []string{}}
}

// HasAddOn reports whether id is part of the selection.
func (s *BookingSelection) HasAddOn(id string) bool {
	for _, a := range s.AddOnIDs {
		if a == id {
			return true
		}
	}
	return false
}

// BookingSummary is the snapshot produced by a successful submit.
type BookingSummary struct {
	Reference     string    `json:"reference"`
	CategoryID    string    `json:"categoryId"`
	CategoryTitle string    `json:"categoryTitle"`
	ServiceKey    string    `json:"serviceKey"`
	ServiceName   string    `json:"serviceName"`
	ServicePrice  int       `json:"servicePrice"`
	Day           int       `json:"day"`
	Time          string    `json:"time"`
	Technician    string    `json:"technician"`
	AddOns        []AddOn   `json:"addOns"`
	AddOnTotal    int       `json:"addOnTotal"`
	Total         int       `json:"total"`
	TotalLabel    string    `json:"totalLabel"`
	Contact       Contact   `json:"contact"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// BookingSession is what the session store keeps per visitor. Catalog is the
// category list captured when the session started and stays fixed for the
// session's lifetime.
type BookingSession struct {
	SessionID string            `json:"sessionId"`
	Catalog   []ServiceCategory `json:"catalog"`
	Selection BookingSelection  `json:"selection"`
	Summary   *BookingSummary   `json:"summary,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// BookingEvent is a user intent routed into the wizard.
type BookingEvent struct {
	Type  string `json:"type" binding:"required"`
	Value string `json:"value"`
	Field string `json:"field,omitempty"`
	Day   *int   `json:"day,omitempty"`
	Step  *int   `json:"step,omitempty"`
}
