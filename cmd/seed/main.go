package main

import (
	"flag"

	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	var withDemoUser bool
	flag.BoolVar(&withDemoUser, "demo-user", false, "同时创建演示账号 demo@geoda.coffee")
	flag.Parse()

	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Database.LogMode, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	created, err := models.SeedCatalog(models.DB, models.DefaultCatalog())
	if err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}
	stdLog.Printf("Catalog seeded: %d new products", created)

	if withDemoUser {
		if err := seedDemoUser(); err != nil {
			stdLog.Fatalf("Failed to seed demo user: %v", err)
		}
	}
}

// seedDemoUser 创建资料完整、可直接下单的演示账号
func seedDemoUser() error {
	const email = "demo@geoda.coffee"
	var count int64
	if err := models.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Infow("seed_demo_user_exists", "email", email)
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("kopinusantara"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{Email: email, PasswordHash: string(hash), Status: constants.UserStatusActive}
	if err := models.DB.Create(user).Error; err != nil {
		return err
	}
	profile := &models.UserProfile{
		UserID:      user.ID,
		FullName:    "Demo Geoda",
		PhoneNumber: "081200000000",
		Address:     "Jl. Braga No. 10, Bandung",
	}
	if err := models.DB.Create(profile).Error; err != nil {
		return err
	}
	logger.Infow("seed_demo_user_created", "email", email)
	return nil
}
