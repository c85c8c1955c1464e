package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"taskbox/shared/failure"
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
			err:     failure.BadRequestFromString("Incorrect email or password"),
			code:    http.StatusBadRequest,
			message: "Incorrect email or password",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("User not found"),
			code:    http.StatusUnauthorized,
			message: "User not found",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("Todo not found"),
			code:    http.StatusNotFound,
			message: "Todo not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("Email already registered"),
			code:    http.StatusConflict,
			message: "Email already registered",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("not yours"),
			code:    http.StatusForbidden,
			message: "not yours",
		},
		{
			name:    "InternalError",
			err:     failure.InternalError(errors.New("upstream broke")),
			code:    http.StatusInternalServerError,
			message: "upstream broke",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure
			if !errors.As(tt.err, &f) {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "failure error",
			err:      failure.NotFound("Todo not found"),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped failure error",
			err:      fmt.Errorf("outer: %w", failure.Conflict("Email already registered")),
			expected: http.StatusConflict,
		},
		{
			name:     "plain error defaults to internal",
			err:      errors.New("something broke"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := failure.GetCode(tt.err); code != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, code)
			}
		})
	}
}
