package router

import (
	"fmt"
	"strings"

	"github.com/geoda-coffee/storefront/internal/config"
	publichandlers "github.com/geoda-coffee/storefront/internal/http/handlers/public"
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/i18n"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	h := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "geoda"
	}
	redisClient := c.Cache.Client()
	loginRule := NewRateLimitRule(fmt.Sprintf("%s:rate:login", redisPrefix), cfg.Security.LoginRateLimit, "error.login_too_many")
	registerRule := NewRateLimitRule(fmt.Sprintf("%s:rate:register", redisPrefix), cfg.Security.RegisterRateLimit, "error.too_many_requests")
	cartRule := NewRateLimitRule(fmt.Sprintf("%s:rate:cart", redisPrefix), cfg.Security.CartRateLimit, "error.too_many_requests")
	contactRule := NewRateLimitRule(fmt.Sprintf("%s:rate:contact", redisPrefix), cfg.Security.ContactRateLimit, "error.too_many_requests")

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LocaleMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", func(ctx *gin.Context) {
			response.Success(ctx, gin.H{"status": "ok"})
		})

		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/products", h.GetProducts)
			public.GET("/products/:id", h.GetProduct)
			public.GET("/captcha/image", h.GetImageCaptcha)
			public.POST("/contact", RateLimitMiddleware(redisClient, contactRule, KeyByIP), h.SubmitContact)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", RateLimitMiddleware(redisClient, registerRule, KeyByIP), h.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), h.UserLogin)
			auth.POST("/logout", UserJWTAuthMiddleware(c.UserAuthService), h.UserLogout)
		}

		// 访客与登录用户均可访问，未登录时由服务层给出引导登录的提示
		optional := apiV1.Group("")
		optional.Use(OptionalUserAuth(c.UserAuthService))
		{
			optional.GET("/cart/count", h.GetCartCount)
			optional.POST("/cart/items", RateLimitMiddleware(redisClient, cartRule, KeyByIP), h.AddCartItem)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(c.UserAuthService))
		{
			user.GET("/me", h.GetCurrentUser)
			user.GET("/me/profile", h.GetProfile)
			user.PUT("/me/profile", h.UpdateProfile)

			user.GET("/cart", h.GetCart)
			user.PATCH("/cart/items/:id", h.UpdateCartItem)
			user.DELETE("/cart/items/:id", h.RemoveCartItem)

			user.GET("/checkout/preview", h.PreviewCheckout)
			user.POST("/orders", h.PlaceOrder)
			user.GET("/orders", h.ListOrders)
			user.GET("/orders/:order_no", h.GetOrder)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, response.CodeNotFound, i18n.T(i18n.ResolveLocale(ctx), "error.not_found"))
	})

	return r
}
