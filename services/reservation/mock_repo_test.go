package reservation

import (
	"context"
	"time"

	"tablebook/models"
)

// mockRepo is an in-memory ReservationRepository for tests. Created
// reservations count as booked, so a submit followed by an availability
// lookup behaves like the real store.
type mockRepo struct {
	bookedTimes []string
	bookedErr   error
	exists      bool
	existsErr   error
	createID    string
	createErr   error

	created     []models.Reservation
	bookedCalls int
	existsCalls int
	createCalls int
	lastStart   time.Time
	lastEnd     time.Time
}

func (m *mockRepo) BookedTimes(ctx context.Context, start, end time.Time) ([]string, error) {
	m.bookedCalls++
	m.lastStart, m.lastEnd = start, end
	if m.bookedErr != nil {
		return nil, m.bookedErr
	}
	times := append([]string(nil), m.bookedTimes...)
	for _, r := range m.created {
		if !r.DateTime.Before(start) && !r.DateTime.After(end) {
			times = append(times, r.DateTime.In(models.Seoul).Format("15:04"))
		}
	}
	return times, nil
}

func (m *mockRepo) ExistsInWindow(ctx context.Context, start, end time.Time) (bool, error) {
	m.existsCalls++
	m.lastStart, m.lastEnd = start, end
	if m.existsErr != nil {
		return false, m.existsErr
	}
	if m.exists {
		return true, nil
	}
	for _, r := range m.created {
		if !r.DateTime.Before(start) && r.DateTime.Before(end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRepo) Create(ctx context.Context, r models.Reservation) (string, error) {
	m.createCalls++
	if m.createErr != nil {
		return "", m.createErr
	}
	id := m.createID
	if id == "" {
		id = "test-reservation-id"
	}
	r.ID = id
	m.created = append(m.created, r)
	return id, nil
}

func (m *mockRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func newTestService(repo *mockRepo) *DefaultService {
	return &DefaultService{
		Repo:  repo,
		Hours: models.BusinessHours{OpenHour: 10, CloseHour: 20, IntervalMinutes: 60},
	}
}
