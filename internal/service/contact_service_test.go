package service

import (
	"context"
	"errors"
	"testing"

	"github.com/geoda-coffee/storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit(t *testing.T) {
	env := newTestEnv(t)

	contact, err := env.contact.Submit(context.Background(), ContactInput{
		FullName: " Sari Dewi ",
		Email:    "Sari@Example.com",
		Subject:  "Pesanan grosir",
		Message:  "Apakah tersedia paket 5kg untuk kafe?",
		Locale:   "id-ID",
	})
	require.NoError(t, err)
	assert.NotZero(t, contact.ID)
	assert.Equal(t, "Sari Dewi", contact.FullName)
	assert.Equal(t, "sari@example.com", contact.Email)

	var stored models.Contact
	require.NoError(t, env.db.First(&stored, contact.ID).Error)
	assert.Equal(t, "Pesanan grosir", stored.Subject)
}

func TestContactSubmitValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.contact.Submit(context.Background(), ContactInput{
		FullName: "S",
		Email:    "",
		Subject:  "Hai",
		Message:  "Halo",
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 4)
	assert.Equal(t, "validation.required", verr.Fields["email"].Key)
	assert.Equal(t, []interface{}{5}, verr.Fields["subject"].Args)
	assert.Equal(t, []interface{}{10}, verr.Fields["message"].Args)

	var count int64
	require.NoError(t, env.db.Model(&models.Contact{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
