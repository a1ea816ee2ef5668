package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tablebook/models"
	"tablebook/services/reservation"
)

// ReservationHandler exposes the booking endpoints.
type ReservationHandler struct {
	Svc    reservation.Service
	Logger *zap.Logger
}

// NewReservationHandler creates a ReservationHandler.
func NewReservationHandler(svc reservation.Service, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Svc: svc, Logger: logger}
}

// GetAvailability handles GET /api/availability?date=YYYY-MM-DD.
func (h *ReservationHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")

	resp, err := h.Svc.AvailableTimes(c.Request.Context(), date)
	if err != nil {
		var svcErr *reservation.ServiceError
		if errors.As(err, &svcErr) && svcErr.Code == reservation.CodeInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": svcErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up availability"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateReservation handles POST /api/reservation.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("invalid reservation payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ReservationResponse{
			Success: false,
			Message: "invalid request body",
		})
		return
	}

	resp, err := h.Svc.Submit(c.Request.Context(), req)
	if err != nil {
		status, message := http.StatusInternalServerError, "failed to create reservation, please try again later"
		var svcErr *reservation.ServiceError
		if errors.As(err, &svcErr) {
			switch svcErr.Code {
			case reservation.CodeInvalidInput:
				status, message = http.StatusBadRequest, svcErr.Message
			case reservation.CodeConflict:
				status, message = http.StatusConflict, svcErr.Message
			}
		}
		c.JSON(status, models.ReservationResponse{Success: false, Message: message})
		return
	}
	c.JSON(http.StatusOK, resp)
}
