package service

import (
	"testing"

	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imageCaptchaConfig() config.CaptchaConfig {
	return config.CaptchaConfig{
		Provider: " Image ",
		Scenes:   config.CaptchaSceneConfig{Register: true},
	}
}

func TestCaptchaDisabledPasses(t *testing.T) {
	svc := NewCaptchaService(config.CaptchaConfig{Provider: "turnstile", Scenes: config.CaptchaSceneConfig{Register: true}})

	assert.NoError(t, svc.Verify(constants.CaptchaSceneRegister, CaptchaVerifyPayload{}))
	_, err := svc.GenerateImageChallenge()
	assert.ErrorIs(t, err, ErrCaptchaDisabled)
	assert.Equal(t, constants.CaptchaProviderNone, svc.PublicSetting().Provider)

	var nilSvc *CaptchaService
	assert.NoError(t, nilSvc.Verify(constants.CaptchaSceneContact, CaptchaVerifyPayload{}))
}

func TestCaptchaImageVerify(t *testing.T) {
	svc := NewCaptchaService(imageCaptchaConfig())
	setting := svc.PublicSetting()
	assert.Equal(t, constants.CaptchaProviderImage, setting.Provider)
	assert.True(t, setting.Scenes[constants.CaptchaSceneRegister])
	assert.False(t, setting.Scenes[constants.CaptchaSceneContact])

	// 未开启的场景不校验
	assert.NoError(t, svc.Verify(constants.CaptchaSceneContact, CaptchaVerifyPayload{}))
	assert.ErrorIs(t, svc.Verify(constants.CaptchaSceneRegister, CaptchaVerifyPayload{}), ErrCaptchaRequired)

	challenge, err := svc.GenerateImageChallenge()
	require.NoError(t, err)
	require.NotEmpty(t, challenge.CaptchaID)
	assert.NotEmpty(t, challenge.ImageBase64)

	answer := svc.store().Get(challenge.CaptchaID, false)
	require.NotEmpty(t, answer)
	assert.ErrorIs(t, svc.Verify(constants.CaptchaSceneRegister, CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: "0000"}), ErrCaptchaInvalid)

	challenge, err = svc.GenerateImageChallenge()
	require.NoError(t, err)
	answer = svc.store().Get(challenge.CaptchaID, false)
	payload := CaptchaVerifyPayload{CaptchaID: challenge.CaptchaID, CaptchaCode: answer}
	assert.NoError(t, svc.Verify(constants.CaptchaSceneRegister, payload))
	// 验证码一次性
	assert.ErrorIs(t, svc.Verify(constants.CaptchaSceneRegister, payload), ErrCaptchaInvalid)
}

func TestNormalizeCaptchaConfig(t *testing.T) {
	cfg := normalizeCaptchaConfig(config.CaptchaConfig{
		Provider: "IMAGE",
		Image:    config.CaptchaImageConfig{Length: 20, Width: 10, Height: 1000, NoiseCount: -1, ExpireSeconds: 5},
	})
	assert.Equal(t, constants.CaptchaProviderImage, cfg.Provider)
	assert.Equal(t, 5, cfg.Image.Length)
	assert.Equal(t, 240, cfg.Image.Width)
	assert.Equal(t, 80, cfg.Image.Height)
	assert.Equal(t, 2, cfg.Image.NoiseCount)
	assert.Equal(t, 300, cfg.Image.ExpireSeconds)
	assert.Equal(t, 10240, cfg.Image.MaxStore)
}
