package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/geoda-coffee/storefront/internal/cache"
	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/models"
	"github.com/geoda-coffee/storefront/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// passwordHashCost 密码哈希成本，测试中可调低
var passwordHashCost = bcrypt.DefaultCost

// UserAuthService 用户认证服务
type UserAuthService struct {
	cfg         *config.Config
	db          *gorm.DB
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	cache       *cache.Store
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, db *gorm.DB, userRepo repository.UserRepository, profileRepo repository.ProfileRepository, store *cache.Store) *UserAuthService {
	return &UserAuthService{
		cfg:         cfg,
		db:          db,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		cache:       store,
	}
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// SignUpInput 注册输入
type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
}

// SignInInput 登录输入
type SignInInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// AuthResult 登录/注册结果
type AuthResult struct {
	User      *models.User
	Profile   *models.UserProfile
	Token     string
	ExpiresAt time.Time
}

// CurrentUser 当前会话用户
type CurrentUser struct {
	User    *models.User        `json:"user"`
	Profile *models.UserProfile `json:"profile"`
}

// GenerateUserJWT 生成用户 JWT Token
func (s *UserAuthService) GenerateUserJWT(user *models.User, expireHours int) (string, time.Time, error) {
	resolvedHours := expireHours
	if resolvedHours <= 0 {
		resolvedHours = resolveUserJWTExpireHours(s.cfg.UserJWT)
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(resolvedHours) * time.Hour)
	claims := UserJWTClaims{
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析用户 JWT Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ResolveSession 校验 Token 版本与账号状态，返回会话身份
func (s *UserAuthService) ResolveSession(ctx context.Context, claims *UserJWTClaims) (Session, error) {
	if claims == nil || claims.UserID == 0 {
		return Session{}, ErrTokenInvalid
	}
	state, hit, err := s.cache.GetUserAuthState(ctx, claims.UserID)
	if err != nil {
		logger.Warnw("user_auth_state_cache_get_failed", "user_id", claims.UserID, "error", err)
	}
	if !hit || state == nil {
		user, err := s.userRepo.GetByID(ctx, claims.UserID)
		if err != nil {
			return Session{}, err
		}
		if user == nil {
			return Session{}, ErrTokenInvalid
		}
		state = cache.BuildUserAuthState(user)
		if err := s.cache.SetUserAuthState(ctx, state); err != nil {
			logger.Warnw("user_auth_state_cache_set_failed", "user_id", claims.UserID, "error", err)
		}
	}
	if !strings.EqualFold(state.Status, constants.UserStatusActive) {
		return Session{}, ErrUserDisabled
	}
	if state.TokenVersion != claims.TokenVersion {
		return Session{}, ErrTokenRevoked
	}
	return Session{UserID: state.UserID, Email: state.Email}, nil
}

// SignUp 注册并创建用户资料
func (s *UserAuthService) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	v := &ValidationError{}
	checkLength(v, "full_name", fullName, 2, 100)
	checkEmail(v, "email", email)
	checkPassword(v, s.cfg.Security.PasswordPolicy, "password", input.Password)
	if input.ConfirmPassword != input.Password {
		v.Add("confirm_password", "validation.password_mismatch")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	exist, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrRegisterFailed
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordHashCost)
	if err != nil {
		return nil, ErrRegisterFailed
	}

	now := time.Now()
	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		Status:       constants.UserStatusActive,
		LastLoginAt:  &now,
	}
	profile := &models.UserProfile{FullName: fullName}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Create(ctx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return s.profileRepo.WithTx(tx).Create(ctx, profile)
	})
	if err != nil {
		// 并发注册同一邮箱时由唯一索引拦截
		if again, lookupErr := s.userRepo.GetByEmail(ctx, email); lookupErr == nil && again != nil {
			return nil, ErrEmailExists
		}
		logger.Errorw("user_sign_up_failed", "email", email, "error", err)
		return nil, ErrRegisterFailed
	}

	token, expiresAt, err := s.GenerateUserJWT(user, 0)
	if err != nil {
		return nil, ErrRegisterFailed
	}
	s.refreshAuthState(ctx, user)
	return &AuthResult{User: user, Profile: profile, Token: token, ExpiresAt: expiresAt}, nil
}

// SignIn 邮箱密码登录
func (s *UserAuthService) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	v := &ValidationError{}
	checkEmail(v, "email", email)
	policy := s.cfg.Security.PasswordPolicy
	if input.Password == "" {
		v.Add("password", "validation.required")
	} else {
		// 登录只校验长度，避免暴露强度规则
		checkLength(v, "password", input.Password, policy.MinLength, policy.MaxLength)
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrLoginFailed
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !strings.EqualFold(user.Status, constants.UserStatusActive) {
		return nil, ErrUserDisabled
	}

	expireHours := resolveUserJWTExpireHours(s.cfg.UserJWT)
	if input.RememberMe {
		expireHours = resolveRememberMeExpireHours(s.cfg.UserJWT)
	}
	token, expiresAt, err := s.GenerateUserJWT(user, expireHours)
	if err != nil {
		return nil, ErrLoginFailed
	}

	now := time.Now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		logger.Warnw("user_touch_last_login_failed", "user_id", user.ID, "error", err)
	}
	user.LastLoginAt = &now
	s.refreshAuthState(ctx, user)

	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		logger.Warnw("user_sign_in_profile_fetch_failed", "user_id", user.ID, "error", err)
	}
	return &AuthResult{User: user, Profile: profile, Token: token, ExpiresAt: expiresAt}, nil
}

// SignOut 递增 Token 版本，使当前用户所有 Token 失效
func (s *UserAuthService) SignOut(ctx context.Context, sess Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if _, err := s.userRepo.BumpTokenVersion(ctx, sess.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTokenInvalid
		}
		logger.Errorw("user_sign_out_failed", "user_id", sess.UserID, "error", err)
		return ErrLogoutFailed
	}
	if err := s.cache.DelUserAuthState(ctx, sess.UserID); err != nil {
		logger.Warnw("user_auth_state_cache_del_failed", "user_id", sess.UserID, "error", err)
	}
	return nil
}

// CurrentSession 获取当前会话用户与资料
func (s *UserAuthService) CurrentSession(ctx context.Context, sess Session) (*CurrentUser, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, ErrProfileFetchFailed
	}
	if user == nil {
		return nil, ErrAuthRequired
	}
	profile, err := s.profileRepo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		return nil, ErrProfileFetchFailed
	}
	return &CurrentUser{User: user, Profile: profile}, nil
}

func (s *UserAuthService) refreshAuthState(ctx context.Context, user *models.User) {
	if err := s.cache.SetUserAuthState(ctx, cache.BuildUserAuthState(user)); err != nil {
		logger.Warnw("user_auth_state_cache_set_failed", "user_id", user.ID, "error", err)
	}
}

func resolveUserJWTExpireHours(cfg config.JWTConfig) int {
	if cfg.ExpireHours <= 0 {
		return 24
	}
	return cfg.ExpireHours
}

func resolveRememberMeExpireHours(cfg config.JWTConfig) int {
	if cfg.RememberMeExpireHours <= 0 {
		return resolveUserJWTExpireHours(cfg)
	}
	return cfg.RememberMeExpireHours
}
