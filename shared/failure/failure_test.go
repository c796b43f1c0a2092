package failure_test

import (
	"classbooking/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest",
			err:     failure.BadRequest(errors.New("bad input")),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("The selected class is invalid."),
			code:    http.StatusBadRequest,
			message: "The selected class is invalid.",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("Slot allocation not found."),
			code:    http.StatusNotFound,
			message: "Slot allocation not found.",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("duplicate entry"),
			code:    http.StatusConflict,
			message: "duplicate entry",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("A class cannot be canceled less than 24 hours."),
			code:    http.StatusForbidden,
			message: "A class cannot be canceled less than 24 hours.",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("connection refused")),
			code:    http.StatusInternalServerError,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}

			if tt.err.Error() != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, tt.err.Error())
			}
		})
	}
}

func TestNilErrors(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", got)
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "bad request is a validation failure",
			err:  failure.BadRequestFromString("invalid"),
			want: true,
		},
		{
			name: "not found is a validation failure",
			err:  failure.NotFound("missing"),
			want: true,
		},
		{
			name: "forbidden is a validation failure",
			err:  failure.Forbidden("denied"),
			want: true,
		},
		{
			name: "internal error is not",
			err:  failure.InternalError(errors.New("boom")),
			want: false,
		},
		{
			name: "plain error is not",
			err:  errors.New("boom"),
			want: false,
		},
		{
			name: "wrapped failure is still detected",
			err:  fmt.Errorf("handling request: %w", failure.NotFound("missing")),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.IsValidation(tt.err); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
