package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadWithDefaults(t *testing.T) {
	cfg := LoadWith(viper.New())
	if cfg.Server.Port != "8080" {
		t.Fatalf("unexpected default port: %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("unexpected default driver: %s", cfg.Database.Driver)
	}
	if cfg.Security.PasswordPolicy.MinLength != 6 || cfg.Security.PasswordPolicy.MaxLength != 128 {
		t.Fatalf("unexpected password policy: %+v", cfg.Security.PasswordPolicy)
	}
	if cfg.I18n.DefaultLocale != "id-ID" {
		t.Fatalf("unexpected default locale: %s", cfg.I18n.DefaultLocale)
	}
	if cfg.Queue.Queues["critical"] != 5 {
		t.Fatalf("unexpected queue weights: %+v", cfg.Queue.Queues)
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("REDIS_ENABLED", "true")

	cfg := LoadWith(viper.New())
	if cfg.Server.Port != "9191" {
		t.Fatalf("env override not applied, got port %s", cfg.Server.Port)
	}
	if !cfg.Redis.Enabled {
		t.Fatalf("env override not applied for redis.enabled")
	}
}
