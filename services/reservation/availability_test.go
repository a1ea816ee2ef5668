package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablebook/models"
)

func TestAvailableTimesSubtractsBookedSlots(t *testing.T) {
	repo := &mockRepo{bookedTimes: []string{"10:00", "14:00"}}
	svc := newTestService(repo)

	resp, err := svc.AvailableTimes(context.Background(), "2024-06-15")
	require.NoError(t, err)

	assert.Equal(t, "2024-06-15", resp.Date)
	assert.Equal(t, []string{"10:00", "14:00"}, resp.BookedTimes)
	assert.Equal(t,
		[]string{"11:00", "12:00", "13:00", "15:00", "16:00", "17:00", "18:00", "19:00"},
		resp.AvailableTimes)
	assert.Equal(t, "10:00", resp.BusinessHours.Start)
	assert.Equal(t, "20:00", resp.BusinessHours.End)
}

func TestAvailableTimesPartition(t *testing.T) {
	// Booked and available form a partition of the grid: together they
	// cover every slot, and no slot appears in both.
	repo := &mockRepo{bookedTimes: []string{"12:00", "13:00", "19:00"}}
	svc := newTestService(repo)

	resp, err := svc.AvailableTimes(context.Background(), "2024-06-15")
	require.NoError(t, err)

	grid := svc.slotGrid()
	require.Len(t, grid, 10)

	seen := make(map[string]string)
	for _, s := range resp.BookedTimes {
		seen[s] = "booked"
	}
	for _, s := range resp.AvailableTimes {
		assert.NotEqual(t, "booked", seen[s], "slot %s in both sets", s)
		seen[s] = "available"
	}
	for _, s := range grid {
		assert.Contains(t, seen, s)
	}
	assert.IsIncreasing(t, resp.AvailableTimes)
}

func TestAvailableTimesEmptyDay(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	resp, err := svc.AvailableTimes(context.Background(), "2024-06-15")
	require.NoError(t, err)
	assert.Empty(t, resp.BookedTimes)
	assert.Len(t, resp.AvailableTimes, 10)
}

func TestAvailableTimesDuplicateBookingsAreHarmless(t *testing.T) {
	repo := &mockRepo{bookedTimes: []string{"14:00", "14:00", "14:00"}}
	svc := newTestService(repo)

	resp, err := svc.AvailableTimes(context.Background(), "2024-06-15")
	require.NoError(t, err)
	assert.NotContains(t, resp.AvailableTimes, "14:00")
	assert.Len(t, resp.AvailableTimes, 9)
}

func TestAvailableTimesRejectsMalformedDates(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	for _, date := range []string{"", "2024-1-5", "20240105", "15-06-2024", "2024-06-15T10:00"} {
		_, err := svc.AvailableTimes(context.Background(), date)
		var svcErr *ServiceError
		require.ErrorAs(t, err, &svcErr, "date %q", date)
		assert.Equal(t, CodeInvalidInput, svcErr.Code)
	}
	// No store access before validation passes.
	assert.Zero(t, repo.bookedCalls)
}

func TestAvailableTimesQueriesFullDayAtFixedOffset(t *testing.T) {
	repo := &mockRepo{}
	svc := newTestService(repo)

	_, err := svc.AvailableTimes(context.Background(), "2024-06-15")
	require.NoError(t, err)

	wantStart := "2024-06-15T00:00:00+09:00"
	wantEnd := "2024-06-15T23:59:59+09:00"
	assert.Equal(t, wantStart, repo.lastStart.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, wantEnd, repo.lastEnd.Format("2006-01-02T15:04:05Z07:00"))
}

func TestAvailableTimesUpstreamFailure(t *testing.T) {
	repo := &mockRepo{bookedErr: errors.New("connection refused: mongodb://internal-host:27017")}
	svc := newTestService(repo)

	_, err := svc.AvailableTimes(context.Background(), "2024-06-15")
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, CodeUpstream, svcErr.Code)
	// Internal detail must not leak into the client-facing message.
	assert.NotContains(t, svcErr.Message, "mongodb")
}

func TestAvailableTimesAlternateSchedule(t *testing.T) {
	repo := &mockRepo{}
	svc := &DefaultService{
		Repo:  repo,
		Hours: models.BusinessHours{OpenHour: 9, CloseHour: 12, IntervalMinutes: 60},
	}

	resp, err := svc.AvailableTimes(context.Background(), "2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, resp.AvailableTimes)
	assert.Equal(t, "09:00", resp.BusinessHours.Start)
	assert.Equal(t, "12:00", resp.BusinessHours.End)
}
