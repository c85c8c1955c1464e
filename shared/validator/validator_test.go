package validator_test

import (
	"strings"
	"testing"

	"taskbox/shared/validator"
)

type signupBody struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required"       json:"password"`
}

type chatBody struct {
	Messages []chatMessage `validate:"required,min=1,dive" json:"messages"`
}

type chatMessage struct {
	Role    string `validate:"required,oneof=system user assistant" json:"role"`
	Content string `validate:"required"                             json:"content"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *signupBody
		expectError bool
	}{
		{
			name: "valid struct",
			data: &signupBody{
				Email:    "john@example.com",
				Password: "Password1",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &signupBody{
				Email: "john@example.com",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &signupBody{
				Email:    "invalid-email",
				Password: "Password1",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
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
			name:        "valid JSON body",
			body:        `{"email":"john@example.com","password":"Password1"}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			body:        `{"email":`,
			expectError: true,
		},
		{
			name:        "valid JSON failing validation",
			body:        `{"email":"not-an-email","password":"Password1"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := signupBody{}
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_NestedMessages(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid conversation",
			body:        `{"messages":[{"role":"system","content":"be terse"},{"role":"user","content":"hi"}]}`,
			expectError: false,
		},
		{
			name:        "empty message list",
			body:        `{"messages":[]}`,
			expectError: true,
		},
		{
			name:        "unknown role",
			body:        `{"messages":[{"role":"robot","content":"hi"}]}`,
			expectError: true,
		},
		{
			name:        "missing content",
			body:        `{"messages":[{"role":"user"}]}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := chatBody{}
			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("john@example.com", "required,email"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("not-an-email", "required,email"); err == nil {
		t.Error("expected error, got nil")
	}
}
