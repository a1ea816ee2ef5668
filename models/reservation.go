// File: models/reservation.go
package models

import "time"

// Seoul is the fixed UTC+9 offset every reservation wall-clock time is
// interpreted in. The service is single-venue and does not do timezones.
var Seoul = time.FixedZone("UTC+9", 9*60*60)

// Reservation lifecycle statuses. Only the PENDING creation edge happens
// in this service; confirmation, cancellation and visit marking are done
// by admin tooling directly against the store.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCancelled = "CANCELLED"
	StatusVisited   = "VISITED"
)

// ReservationRequest is the client-submitted booking form.
type ReservationRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:mm
	Guests   int    `json:"guests"`
	Note     string `json:"note,omitempty"`
	Password string `json:"password,omitempty"`
}

// Reservation is the persisted record.
type Reservation struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Phone    string    `bson:"phone" json:"phone"`
	DateTime time.Time `bson:"dateTime" json:"dateTime"`
	Guests   int       `bson:"guests" json:"guests"`
	Status   string    `bson:"status" json:"status"`
	Note     string    `bson:"note" json:"note"`
	// PasswordHash is the bcrypt hash of the optional customer password,
	// empty when none was supplied. Never serialized to clients.
	PasswordHash string `bson:"passwordHash" json:"-"`
	// ActiveSlotKey is "YYYY-MM-DDTHH" at UTC+9 while the reservation is
	// active. A partial unique index on it makes double booking a
	// duplicate-key error; cancellation unsets the field to free the slot.
	ActiveSlotKey string    `bson:"activeSlotKey,omitempty" json:"-"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BusinessHours describes the bookable grid: hour slots in [Open, Close).
type BusinessHours struct {
	OpenHour        int
	CloseHour       int
	IntervalMinutes int
}

// BusinessHoursInfo is the client-facing rendering of the schedule.
type BusinessHoursInfo struct {
	Start string `json:"start"` // "10:00"
	End   string `json:"end"`   // "20:00"
}

// AvailabilityResponse is the payload for GET /api/availability.
type AvailabilityResponse struct {
	Date           string            `json:"date"`
	BookedTimes    []string          `json:"bookedTimes"`
	AvailableTimes []string          `json:"availableTimes"`
	BusinessHours  BusinessHoursInfo `json:"businessHours"`
}

// ReservationResponse is the payload for POST /api/reservation.
type ReservationResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ReservationID string `json:"reservationId,omitempty"`
}
