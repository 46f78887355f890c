package queue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault
	// CriticalQueue 高优先级队列名称
	CriticalQueue = constants.QueueCritical

	defaultMaxRetry = 5
	defaultTimeout  = 30 * time.Second
)

// Client 队列客户端封装，未启用时投递为空操作
type Client struct {
	client       *asynq.Client
	enabled      bool
	defaultQueue string
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{enabled: false, defaultQueue: DefaultQueue}, nil
	}
	client := asynq.NewClient(buildRedisOpt(cfg))
	return &Client{
		client:       client,
		enabled:      true,
		defaultQueue: DefaultQueue,
	}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueOrderPlacedEmail 推送下单确认邮件任务
func (c *Client) EnqueueOrderPlacedEmail(ctx context.Context, payload OrderPlacedEmailPayload) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewOrderPlacedEmailTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(ctx, task, asynq.Queue(CriticalQueue), asynq.TaskID("order-placed-"+payload.OrderNo))
}

// EnqueueContactReceivedEmail 推送联系表单回执邮件任务
func (c *Client) EnqueueContactReceivedEmail(ctx context.Context, payload ContactReceivedEmailPayload) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewContactReceivedEmailTask(payload)
	if err != nil {
		return err
	}
	return c.enqueue(ctx, task, asynq.Queue(c.defaultQueue))
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) error {
	options := append([]asynq.Option{
		asynq.MaxRetry(defaultMaxRetry),
		asynq.Timeout(defaultTimeout),
	}, opts...)
	_, err := c.client.EnqueueContext(ctx, task, options...)
	return err
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	opt := buildRedisOpt(cfg)
	concurrency := 10
	if cfg != nil && cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}
	queues := map[string]int{CriticalQueue: 6, DefaultQueue: 3}
	if cfg != nil && len(cfg.Queues) > 0 {
		queues = cfg.Queues
	}
	return opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host := "127.0.0.1"
	port := 6379
	password := ""
	db := 0
	if cfg != nil {
		if strings.TrimSpace(cfg.Host) != "" {
			host = strings.TrimSpace(cfg.Host)
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		password = cfg.Password
		db = cfg.DB
	}
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	}
}
