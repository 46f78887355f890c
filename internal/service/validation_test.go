package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"budi@example.com":           true,
		"budi.santoso+kopi@geoda.id": true,
		"budi@localhost":             false,
		"Budi <budi@example.com>":    false,
		"budi":                       false,
		"@example.com":               false,
	}
	for input, want := range cases {
		assert.Equal(t, want, isValidEmail(input), input)
	}
}

func TestCheckOptionalURL(t *testing.T) {
	cases := map[string]bool{
		"":                              true,
		"https://cdn.example.com/a.png": true,
		"http://example.com":            true,
		"ftp://example.com/a.png":       false,
		"not a url":                     false,
		"https://":                      false,
	}
	for input, valid := range cases {
		v := &ValidationError{}
		checkOptionalURL(v, "url", input)
		assert.Equal(t, valid, !v.Has("url"), input)
	}

	v := &ValidationError{}
	checkOptionalURL(v, "url", "https://example.com/"+strings.Repeat("a", 500))
	assert.Equal(t, "validation.max_length", v.Fields["url"].Key)
}

func TestValidationErrorKeepsFirstFieldError(t *testing.T) {
	v := &ValidationError{}
	assert.NoError(t, v.OrNil())

	v.Add("email", "validation.required")
	v.Add("email", "validation.email_invalid")
	v.Add("address", "validation.max_length", 500)
	err := v.OrNil()
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "validation.required", v.Fields["email"].Key)
	assert.Equal(t, ErrValidation.Error()+": address,email", err.Error())

	single := NewFieldError("payment_method", "validation.payment_method_invalid")
	assert.True(t, single.Has("payment_method"))
}

func TestNormalizeEmail(t *testing.T) {
	got, err := normalizeEmail("  Budi@Example.COM ")
	assert.NoError(t, err)
	assert.Equal(t, "budi@example.com", got)

	_, err = normalizeEmail("budi")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}
