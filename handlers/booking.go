package handlers

import (
	"errors"
	"net/http"

	"crownbeauty/models"
	"crownbeauty/services/booking"
	"crownbeauty/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard sessions over HTTP.
type BookingHandler struct {
	Service booking.BookingSessionService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetOptions handles GET /api/booking/options.
func (h *BookingHandler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Options())
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	view, err := h.Service.InitiateSession(c.Request.Context())
	if err != nil {
		requestLogger(c, h.Logger).Error("InitiateSession: failed to start booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start booking session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	view, err := h.Service.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		h.sessionError(c, "GetSession", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ApplyEvent handles POST /api/booking/session/:sessionID/events. A rejected
// event still answers 200 with applied=false.
func (h *BookingHandler) ApplyEvent(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var ev models.BookingEvent
	if err := c.ShouldBindJSON(&ev); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking event", err.Error())
		return
	}

	view, err := h.Service.ApplyEvent(c.Request.Context(), sessionID, ev)
	if err != nil {
		h.sessionError(c, "ApplyEvent", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit handles POST /api/booking/session/:sessionID/submit.
func (h *BookingHandler) Submit(c *gin.Context) {
	sessionID := c.Param("sessionID")
	view, err := h.Service.Submit(c.Request.Context(), sessionID)
	if err != nil {
		h.sessionError(c, "Submit", sessionID, err)
		return
	}
	if view.Applied {
		h.Logger.Info("Booking request submitted",
			zap.String("sessionID", sessionID),
			zap.String("reference", view.Summary.Reference),
		)
	}
	c.JSON(http.StatusOK, view)
}

// Reset handles POST /api/booking/session/:sessionID/reset.
func (h *BookingHandler) Reset(c *gin.Context) {
	sessionID := c.Param("sessionID")
	view, err := h.Service.Reset(c.Request.Context(), sessionID)
	if err != nil {
		h.sessionError(c, "Reset", sessionID, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Service.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.sessionError(c, "CancelSession", sessionID, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) sessionError(c *gin.Context, op, sessionID string, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.Is(err, booking.ErrSessionConflict):
		utils.JSONError(c, http.StatusConflict, "booking session is busy, retry the request", "")
	default:
		requestLogger(c, h.Logger).Error(op+": booking session failure", zap.String("sessionID", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking session failure", err.Error())
	}
}
