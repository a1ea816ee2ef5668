package reservationRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"tablebook/config"
	"tablebook/database"
	"tablebook/models"
)

// ErrSlotTaken is returned by Create when the unique slot index rejects
// the insert, i.e. another active reservation holds the same hour.
var ErrSlotTaken = errors.New("slot already taken")

// ReservationRepository is the narrow store adapter the booking core
// depends on. Any document store with filtered reads and inserts can
// sit behind it.
type ReservationRepository interface {
	// BookedTimes returns the "HH:mm" wall-clock times (UTC+9) of all
	// non-cancelled reservations whose dateTime lies in [start, end].
	BookedTimes(ctx context.Context, start, end time.Time) ([]string, error)
	// ExistsInWindow reports whether any non-cancelled reservation has a
	// dateTime in [start, end).
	ExistsInWindow(ctx context.Context, start, end time.Time) (bool, error)
	// Create inserts a new reservation and returns its ID.
	Create(ctx context.Context, r models.Reservation) (string, error)
	// EnsureIndexes creates the indexes the adapter relies on.
	EnsureIndexes(ctx context.Context) error
}

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a ReservationRepository backed by the
// configured MongoDB collection.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDatabase)
	return &mongoReservationRepo{
		coll: db.Collection(config.AppConfig.ReservationsCollection),
	}
}
