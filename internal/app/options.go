package app

import (
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 启动模式：api 只对外提供店铺接口，worker 只消费邮件队列
const (
	ModeAll    = "all"
	ModeAPI    = "api"
	ModeWorker = "worker"
)

const defaultShutdownTimeout = 10 * time.Second

// Options 店铺进程启动选项
type Options struct {
	Config          *config.Config
	DB              *gorm.DB
	Logger          *zap.SugaredLogger
	Signals         []os.Signal
	ShutdownTimeout time.Duration
	Mode            string
}

// ParseMode 解析命令行传入的启动模式，空值视为 all
func ParseMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	switch mode {
	case "":
		return ModeAll, nil
	case ModeAll, ModeAPI, ModeWorker:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want all, api or worker)", raw)
	}
}

func servesHTTP(mode string) bool {
	return mode == ModeAll || mode == ModeAPI
}

// consumesQueue all 模式下仅在队列启用时拉起 worker，worker 模式强制拉起
func consumesQueue(mode string, queueEnabled bool) bool {
	return mode == ModeWorker || (mode == ModeAll && queueEnabled)
}

func normalizeOptions(opts Options) Options {
	if opts.Logger == nil {
		opts.Logger = logger.S()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaultShutdownTimeout
	}
	if mode, err := ParseMode(opts.Mode); err == nil {
		opts.Mode = mode
	}
	if len(opts.Signals) == 0 {
		opts.Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return opts
}
