// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tablebook/models"
)

const queryTimeout = 5 * time.Second

// BookedTimes returns the occupied "HH:mm" slots between start and end
// inclusive, skipping cancelled reservations.
func (r *mongoReservationRepo) BookedTimes(ctx context.Context, start, end time.Time) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"dateTime": bson.M{"$gte": start, "$lte": end},
		"status":   bson.M{"$ne": models.StatusCancelled},
	}
	opts := options.Find().SetProjection(bson.M{"dateTime": 1})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		DateTime time.Time `bson:"dateTime"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding booked reservations: %w", err)
	}

	times := make([]string, 0, len(docs))
	for _, d := range docs {
		times = append(times, d.DateTime.In(models.Seoul).Format("15:04"))
	}
	return times, nil
}

// ExistsInWindow reports whether a non-cancelled reservation occupies
// [start, end).
func (r *mongoReservationRepo) ExistsInWindow(ctx context.Context, start, end time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"dateTime": bson.M{"$gte": start, "$lt": end},
		"status":   bson.M{"$ne": models.StatusCancelled},
	}

	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slot occupancy: %w", err)
	}
	return count > 0, nil
}
