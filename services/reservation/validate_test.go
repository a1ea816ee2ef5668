package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablebook/models"
)

func validRequest() models.ReservationRequest {
	return models.ReservationRequest{
		Name:   "Kim",
		Phone:  "010-1234-5678",
		Date:   "2024-06-15",
		Time:   "14:00",
		Guests: 4,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.ReservationRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *models.ReservationRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *models.ReservationRequest) { r.Name = "" },
			wantErr: "missing required fields",
		},
		{
			name:    "missing phone",
			mutate:  func(r *models.ReservationRequest) { r.Phone = "" },
			wantErr: "missing required fields",
		},
		{
			name:    "missing guests",
			mutate:  func(r *models.ReservationRequest) { r.Guests = 0 },
			wantErr: "missing required fields",
		},
		{
			name:    "date without zero padding",
			mutate:  func(r *models.ReservationRequest) { r.Date = "2024-1-5" },
			wantErr: "date must be in YYYY-MM-DD format",
		},
		{
			name:    "date without separators",
			mutate:  func(r *models.ReservationRequest) { r.Date = "20240105" },
			wantErr: "date must be in YYYY-MM-DD format",
		},
		{
			name:   "impossible calendar date passes shape check",
			mutate: func(r *models.ReservationRequest) { r.Date = "2024-02-30" },
		},
		{
			name:    "time without zero padding",
			mutate:  func(r *models.ReservationRequest) { r.Time = "9:00" },
			wantErr: "time must be in HH:mm format",
		},
		{
			name:    "phone with letters",
			mutate:  func(r *models.ReservationRequest) { r.Phone = "010-abcd-5678" },
			wantErr: "phone number is not valid",
		},
		{
			name:    "phone with too few digits",
			mutate:  func(r *models.ReservationRequest) { r.Phone = "012-345" },
			wantErr: "phone number is not valid",
		},
		{
			name:   "phone with spaces and parens",
			mutate: func(r *models.ReservationRequest) { r.Phone = "+82 (10) 1234 5678" },
		},
		{
			name:    "guests over limit",
			mutate:  func(r *models.ReservationRequest) { r.Guests = 101 },
			wantErr: "guests must be between 1 and 100",
		},
		{
			name:    "negative guests",
			mutate:  func(r *models.ReservationRequest) { r.Guests = -1 },
			wantErr: "guests must be between 1 and 100",
		},
		{
			name:   "guests at upper bound",
			mutate: func(r *models.ReservationRequest) { r.Guests = 100 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validateRequest(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, CodeInvalidInput, svcErr.Code)
			assert.Equal(t, tt.wantErr, svcErr.Message)
		})
	}
}

func TestValidateRequestFailsFast(t *testing.T) {
	// A request violating several rules reports the first one in order:
	// the malformed date wins over the bad phone and guest count.
	req := models.ReservationRequest{
		Name:   "Kim",
		Phone:  "abc",
		Date:   "2024/06/15",
		Time:   "25:99",
		Guests: 500,
	}
	var svcErr *ServiceError
	require.ErrorAs(t, validateRequest(req), &svcErr)
	assert.Equal(t, "date must be in YYYY-MM-DD format", svcErr.Message)
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, validateDate("2024-06-15"))

	var svcErr *ServiceError
	require.ErrorAs(t, validateDate(""), &svcErr)
	assert.Equal(t, CodeInvalidInput, svcErr.Code)

	require.ErrorAs(t, validateDate("2024-1-5"), &svcErr)
	assert.Equal(t, CodeInvalidInput, svcErr.Code)
}
