package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes builds the indexes the adapter depends on:
//
//   - a partial unique index on activeSlotKey. Two concurrent submissions
//     for the same hour can both pass the pre-insert existence check; this
//     index guarantees only one insert wins. The field is only present on
//     active reservations, so cancelled records do not block the slot.
//   - a dateTime index backing the range queries.
func (r *mongoReservationRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "activeSlotKey", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"activeSlotKey": bson.M{"$exists": true}}),
		},
		{
			Keys: bson.D{{Key: "dateTime", Value: 1}},
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}
	return nil
}
