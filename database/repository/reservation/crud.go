package reservationRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"tablebook/models"
)

// Create inserts a new reservation and returns its ID. A duplicate-key
// rejection from the active-slot index is mapped to ErrSlotTaken so the
// caller can report it as a booking conflict rather than a store failure.
func (r *mongoReservationRepo) Create(ctx context.Context, res models.Reservation) (string, error) {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.CreatedAt = time.Now()
	res.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, res)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrSlotTaken
		}
		return "", err
	}
	return res.ID, nil
}
