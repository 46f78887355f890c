package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/geoda-coffee/storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sess := env.createUser(t, "budi@example.com", "", "")

	profile, err := env.profile.UpdateProfile(ctx, sess, UpdateProfileInput{
		FullName:          "  Budi Hartono ",
		PhoneNumber:       "081234567890",
		Address:           testAddress,
		ProfilePictureURL: "https://cdn.example.com/budi.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Budi Hartono", profile.FullName)
	assert.True(t, profile.ReadyForCheckout())

	stored, err := env.profile.GetProfile(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "081234567890", stored.PhoneNumber)
	assert.Equal(t, "https://cdn.example.com/budi.png", stored.ProfilePictureURL)
}

func TestUpdateProfileValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	sess := env.createUser(t, "budi@example.com", "", "")

	_, err := env.profile.UpdateProfile(ctx, sess, UpdateProfileInput{
		FullName:          "B",
		PhoneNumber:       strings.Repeat("8", 21),
		Address:           strings.Repeat("a", 501),
		ProfilePictureURL: "ftp://example.com/a.png",
	})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "validation.min_length", verr.Fields["full_name"].Key)
	assert.Equal(t, FieldError{Key: "validation.max_length", Args: []interface{}{20}}, verr.Fields["phone_number"])
	assert.Equal(t, FieldError{Key: "validation.max_length", Args: []interface{}{500}}, verr.Fields["address"])
	assert.Equal(t, "validation.url_invalid", verr.Fields["profile_picture_url"].Key)

	// 校验失败时资料保持不变
	var stored models.UserProfile
	require.NoError(t, env.db.Where("user_id = ?", sess.UserID).First(&stored).Error)
	assert.Equal(t, "Budi Santoso", stored.FullName)
	assert.Empty(t, stored.PhoneNumber)
}

func TestProfileRequiresSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.profile.GetProfile(ctx, AnonymousSession())
	assert.ErrorIs(t, err, ErrAuthRequired)
	_, err = env.profile.UpdateProfile(ctx, AnonymousSession(), UpdateProfileInput{FullName: "Budi"})
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = env.profile.GetProfile(ctx, Session{UserID: 4242})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
