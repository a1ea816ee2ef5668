package reservation

import (
	"context"

	"github.com/go-redis/redis/v8"

	reservationRepo "tablebook/database/repository/reservation"
	"tablebook/models"
)

// Service is the reservation booking core.
type Service interface {
	// AvailableTimes computes the bookable hour slots for a date.
	AvailableTimes(ctx context.Context, date string) (*models.AvailabilityResponse, error)
	// Submit validates a reservation request, checks the slot and inserts
	// the reservation.
	Submit(ctx context.Context, req models.ReservationRequest) (*models.ReservationResponse, error)
}

// DefaultService is the production implementation.
type DefaultService struct {
	Repo  reservationRepo.ReservationRepository
	Hours models.BusinessHours
	// Cache is optional; when set, availability responses are cached per
	// date and invalidated on successful bookings.
	Cache *redis.Client
}
