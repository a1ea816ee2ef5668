package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tablebook",
			Name:      "reservation_created_total",
			Help:      "Count of reservations successfully created.",
		},
	)

	reservationConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tablebook",
			Name:      "reservation_conflict_total",
			Help:      "Count of reservation attempts rejected because the slot was taken.",
		},
	)

	reservationRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tablebook",
			Name:      "reservation_rejected_total",
			Help:      "Count of reservation requests failing validation.",
		},
	)

	availabilityRequested = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tablebook",
			Name:      "availability_requests_total",
			Help:      "Count of availability lookups.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationCreated, reservationConflict, reservationRejected, availabilityRequested)
	})
}

func IncReservationCreated() {
	reservationCreated.Inc()
}

func IncReservationConflict() {
	reservationConflict.Inc()
}

func IncReservationRejected() {
	reservationRejected.Inc()
}

func IncAvailabilityRequested() {
	availabilityRequested.Inc()
}
