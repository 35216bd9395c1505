package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slotRequest struct {
	Date  string `json:"date" validate:"omitempty,ymd"`
	Time  string `json:"time" validate:"omitempty,hhmm"`
	Type  string `json:"type" validate:"omitempty,oneof=video voice chat in-person"`
	Email string `json:"email" validate:"required,email"`
}

func TestCustomTags(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(slotRequest{Date: "2026-10-15", Time: "09:00", Email: "a@b.co"}))
	require.NoError(t, v.Validate(slotRequest{Email: "a@b.co"}))

	err := v.Validate(slotRequest{Date: "15/10/2026", Time: "9am", Type: "fax", Email: "a@b.co"})
	require.Error(t, err)

	msgs := v.FormatValidationErrors(err)
	assert.Equal(t, "date must be a date formatted as YYYY-MM-DD", msgs["date"])
	assert.Equal(t, "time must be a time formatted as HH:MM", msgs["time"])
	assert.Equal(t, "type must be one of: video, voice, chat, in-person", msgs["type"])
}

func TestMessagesUseJSONNames(t *testing.T) {
	v := NewValidator()

	msgs := v.FormatValidationErrors(v.Validate(slotRequest{}))
	assert.Equal(t, map[string]string{"email": "email is required"}, msgs)
}

func TestFormatIgnoresForeignErrors(t *testing.T) {
	assert.Empty(t, NewValidator().FormatValidationErrors(assert.AnError))
}
