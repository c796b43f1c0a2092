package validator_test

import (
	"classbooking/shared/validator"
	"strings"
	"testing"
)

type bookingPayload struct {
	Class   string `validate:"required"                     json:"class"`
	Date    string `validate:"required,datetime=2006-01-02" json:"date"`
	StartHr *int   `validate:"required"                     json:"start_hr"`
	EndHr   *int   `validate:"required"                     json:"end_hr"`
	People  *int   `validate:"required"                     json:"people"`
}

func intPtr(v int) *int {
	return &v
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingPayload
		expectError bool
		errContains string
	}{
		{
			name: "valid payload",
			data: &bookingPayload{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(4),
			},
			expectError: false,
		},
		{
			name: "missing class",
			data: &bookingPayload{
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(4),
			},
			expectError: true,
			errContains: "Class is required",
		},
		{
			name: "wrong date layout",
			data: &bookingPayload{
				Class:   "Class A",
				Date:    "07-09-2026",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(4),
			},
			expectError: true,
			errContains: "must match the format 2006-01-02",
		},
		{
			name: "missing hours",
			data: &bookingPayload{
				Class:  "Class A",
				Date:   "2026-09-07",
				People: intPtr(4),
			},
			expectError: true,
		},
		{
			name: "zero hour satisfies required through the pointer",
			data: &bookingPayload{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(0),
				EndHr:   intPtr(1),
				People:  intPtr(4),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected an error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}

			if tt.errContains != "" && err != nil && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid body",
			body:        `{"class":"Class A","date":"2026-09-07","start_hr":9,"end_hr":10,"people":4}`,
			expectError: false,
		},
		{
			name:        "malformed json",
			body:        `{"class":`,
			expectError: true,
		},
		{
			name:        "missing fields",
			body:        `{"class":"Class A"}`,
			expectError: true,
		},
		{
			name:        "wrong type",
			body:        `{"class":"Class A","date":"2026-09-07","start_hr":"nine","end_hr":10,"people":4}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload bookingPayload

			err := validator.Validate(strings.NewReader(tt.body), &payload)

			if tt.expectError && err == nil {
				t.Error("expected an error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("2026-09-07", "datetime=2006-01-02"); err != nil {
		t.Errorf("expected valid date, got %v", err)
	}

	if err := validator.ValidateVar("not-a-date", "datetime=2006-01-02"); err == nil {
		t.Error("expected an error for a malformed date")
	}
}
