package service

import (
	"strings"
	"sync"
	"time"

	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaVerifyPayload 验证码校验请求载荷
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaPublicSetting 前台可见的验证码配置
type CaptchaPublicSetting struct {
	Provider string          `json:"provider"`
	Scenes   map[string]bool `json:"scenes"`
}

// CaptchaService 验证码服务
// 按场景开关决定是否需要校验，外部只需调用 Verify 与 GenerateImageChallenge
type CaptchaService struct {
	cfg config.CaptchaConfig

	once       sync.Once
	imageStore base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: normalizeCaptchaConfig(cfg)}
}

// PublicSetting 获取公开配置
func (s *CaptchaService) PublicSetting() CaptchaPublicSetting {
	if s == nil {
		return CaptchaPublicSetting{Provider: constants.CaptchaProviderNone, Scenes: map[string]bool{}}
	}
	return CaptchaPublicSetting{
		Provider: s.cfg.Provider,
		Scenes: map[string]bool{
			constants.CaptchaSceneRegister: s.sceneEnabled(constants.CaptchaSceneRegister),
			constants.CaptchaSceneContact:  s.sceneEnabled(constants.CaptchaSceneContact),
		},
	}
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if s == nil || s.cfg.Provider != constants.CaptchaProviderImage {
		return nil, ErrCaptchaDisabled
	}
	image := s.cfg.Image
	driver := base64Captcha.NewDriverString(
		image.Height,
		image.Width,
		image.NoiseCount,
		image.ShowLine,
		image.Length,
		"23456789abcdefghjkmnpqrstuvwxyz",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, s.store())
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify 按场景校验验证码，场景未开启时直接通过
func (s *CaptchaService) Verify(scene string, payload CaptchaVerifyPayload) error {
	if s == nil || !s.sceneEnabled(scene) {
		return nil
	}
	captchaID := strings.TrimSpace(payload.CaptchaID)
	captchaCode := strings.TrimSpace(payload.CaptchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.store().Verify(captchaID, strings.ToLower(captchaCode), true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) sceneEnabled(scene string) bool {
	if s.cfg.Provider != constants.CaptchaProviderImage {
		return false
	}
	switch scene {
	case constants.CaptchaSceneRegister:
		return s.cfg.Scenes.Register
	case constants.CaptchaSceneContact:
		return s.cfg.Scenes.Contact
	default:
		return false
	}
}

func (s *CaptchaService) store() base64Captcha.Store {
	s.once.Do(func() {
		s.imageStore = base64Captcha.NewMemoryStore(s.cfg.Image.MaxStore, time.Duration(s.cfg.Image.ExpireSeconds)*time.Second)
	})
	return s.imageStore
}

func normalizeCaptchaConfig(cfg config.CaptchaConfig) config.CaptchaConfig {
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if cfg.Provider != constants.CaptchaProviderImage {
		cfg.Provider = constants.CaptchaProviderNone
	}
	image := &cfg.Image
	if image.Length < 4 || image.Length > 8 {
		image.Length = 5
	}
	if image.Width < 100 || image.Width > 600 {
		image.Width = 240
	}
	if image.Height < 40 || image.Height > 300 {
		image.Height = 80
	}
	if image.NoiseCount < 0 || image.NoiseCount > 20 {
		image.NoiseCount = 2
	}
	if image.ShowLine < 0 || image.ShowLine > 20 {
		image.ShowLine = 2
	}
	if image.ExpireSeconds < 30 || image.ExpireSeconds > 3600 {
		image.ExpireSeconds = 300
	}
	if image.MaxStore < 100 || image.MaxStore > 100000 {
		image.MaxStore = 10240
	}
	return cfg
}
