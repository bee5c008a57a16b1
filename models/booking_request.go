package models

// BookingRequestPayload is the queued form of a finalized booking request.
type BookingRequestPayload struct {
	SessionID string         `json:"sessionId"`
	Summary   BookingSummary `json:"summary"`
}
