package forms

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trademinutes/tmclient/internal/common"
)

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"first.last@uni.edu.ca", true},
		{"ab.com", false},
		{"a@bcom", false},
		{"a@.com", false},
		{"a b@c.com", false},
		{"a@b@c.com", false},
		{"", false},
		{"@b.com", false},
		{"a@b.", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidEmail(tt.in))
		})
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"4165550100", true},
		{"+14165550100", true},
		{"416-555-0100", true},
		{"416 555 0100", true},
		{"+123456789", false},
		{"123456789", false},
		{"416.555.0100", false},
		{"phone12345", false},
		{"++4165550100", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhone(tt.in))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"password": "Password is required",
		"email":    "Email is required",
	}}

	assert.True(t, errors.Is(err, common.ErrorValidation))
	assert.Equal(t, "Email is required; Password is required", err.Error())
}
