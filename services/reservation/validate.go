package reservation

import (
	"regexp"
	"strings"

	"tablebook/models"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-+()]+$`)
)

const minPhoneDigits = 10

// validateRequest checks a reservation request and returns the first
// violated rule as an invalid-input error, or nil. Order matters: later
// rules assume the earlier ones passed, and the first failure is terminal.
func validateRequest(req models.ReservationRequest) error {
	if req.Name == "" || req.Phone == "" || req.Date == "" || req.Time == "" || req.Guests == 0 {
		return NewInvalidInputError("missing required fields")
	}
	if !dateRe.MatchString(req.Date) {
		return NewInvalidInputError("date must be in YYYY-MM-DD format")
	}
	if !timeRe.MatchString(req.Time) {
		return NewInvalidInputError("time must be in HH:mm format")
	}
	if !phoneRe.MatchString(req.Phone) || countDigits(req.Phone) < minPhoneDigits {
		return NewInvalidInputError("phone number is not valid")
	}
	if req.Guests < 1 || req.Guests > 100 {
		return NewInvalidInputError("guests must be between 1 and 100")
	}
	return nil
}

// validateDate checks just the date shape, for the availability endpoint.
func validateDate(date string) error {
	if date == "" {
		return NewInvalidInputError("date parameter is required")
	}
	if !dateRe.MatchString(date) {
		return NewInvalidInputError("date must be in YYYY-MM-DD format")
	}
	return nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune("0123456789", r) {
			n++
		}
	}
	return n
}
