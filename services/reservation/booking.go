package reservation

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	reservationRepo "tablebook/database/repository/reservation"
	"tablebook/metrics"
	"tablebook/models"
	"tablebook/utils"
)

const (
	confirmationMessage = "Your reservation has been received. It will be confirmed by the restaurant shortly."
	conflictMessage     = "slot already booked"
)

// Submit validates a reservation request, checks for a conflicting
// booking in the same hour slot and inserts a PENDING reservation.
//
// The pre-insert existence check is only the fast path. The unique index
// on the active slot key is what actually serializes concurrent
// submissions for the same hour: the loser's insert comes back as
// ErrSlotTaken and is reported as a conflict.
func (s *DefaultService) Submit(ctx context.Context, req models.ReservationRequest) (*models.ReservationResponse, error) {
	logger := utils.GetLogger()

	if err := validateRequest(req); err != nil {
		metrics.IncReservationRejected()
		return nil, err
	}

	windowStart, windowEnd := slotWindow(req.Date, req.Time)

	booked, err := s.Repo.ExistsInWindow(ctx, windowStart, windowEnd)
	if err != nil {
		logger.Error("failed to check slot occupancy",
			zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		return nil, NewUpstreamError()
	}
	if booked {
		metrics.IncReservationConflict()
		return nil, NewConflictError(conflictMessage)
	}

	res := models.Reservation{
		Name:          req.Name,
		Phone:         req.Phone,
		DateTime:      reservationInstant(req.Date, req.Time),
		Guests:        req.Guests,
		Status:        models.StatusPending,
		Note:          req.Note,
		ActiveSlotKey: windowStart.Format("2006-01-02T15"),
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("failed to hash reservation password", zap.Error(err))
			return nil, NewUpstreamError()
		}
		res.PasswordHash = string(hash)
	}

	id, err := s.Repo.Create(ctx, res)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			metrics.IncReservationConflict()
			return nil, NewConflictError(conflictMessage)
		}
		logger.Error("failed to insert reservation",
			zap.String("date", req.Date), zap.String("time", req.Time), zap.Error(err))
		return nil, NewUpstreamError()
	}

	s.invalidateAvailability(ctx, req.Date)
	metrics.IncReservationCreated()
	logger.Info("reservation created",
		zap.String("id", id), zap.String("date", req.Date), zap.String("time", req.Time),
		zap.Int("guests", req.Guests))

	return &models.ReservationResponse{
		Success:       true,
		Message:       confirmationMessage,
		ReservationID: id,
	}, nil
}

// slotWindow returns the hour-aligned [start, start+1h) window the
// requested time falls into, at UTC+9.
func slotWindow(date, timeStr string) (time.Time, time.Time) {
	start := time.Date(datePart(date, 0), time.Month(datePart(date, 1)), datePart(date, 2),
		hourOf(timeStr), 0, 0, 0, models.Seoul)
	return start, start.Add(time.Hour)
}

// reservationInstant combines date and time into a single instant at
// UTC+9, keeping the requested minutes.
func reservationInstant(date, timeStr string) time.Time {
	return time.Date(datePart(date, 0), time.Month(datePart(date, 1)), datePart(date, 2),
		hourOf(timeStr), minuteOf(timeStr), 0, 0, models.Seoul)
}

func datePart(date string, i int) int {
	n, _ := strconv.Atoi(strings.SplitN(date, "-", 3)[i])
	return n
}

func hourOf(timeStr string) int {
	n, _ := strconv.Atoi(timeStr[:2])
	return n
}

func minuteOf(timeStr string) int {
	n, _ := strconv.Atoi(timeStr[3:])
	return n
}
