package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/provider"
	"github.com/geoda-coffee/storefront/internal/queue"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlacedEmail, c.handleOrderPlacedEmail)
	mux.HandleFunc(queue.TaskContactReceivedEmail, c.handleContactReceivedEmail)
}

func (c *Consumer) handleOrderPlacedEmail(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_email_skip_invalid_payload", "order_no", payload.OrderNo)
		return nil
	}
	order, err := c.OrderRepo.GetByID(ctx, payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_placed_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_placed_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiverEmail, err := c.OrderRepo.ResolveReceiverEmail(ctx, order.ID)
	if err != nil {
		logger.Warnw("worker_order_placed_email_fetch_receiver_failed", "order_id", order.ID, "error", err)
		return err
	}
	receiverEmail = strings.TrimSpace(receiverEmail)
	if receiverEmail == "" {
		logger.Debugw("worker_order_placed_email_skip_empty_receiver", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_placed_email_skip_email_service_nil", "order_id", order.ID, "order_no", order.OrderNo)
		return nil
	}
	if err := c.EmailService.SendOrderPlacedEmail(receiverEmail, order, payload.Locale); err != nil {
		if isPermanentEmailError(err) {
			logger.Warnw("worker_order_placed_email_skip", "order_no", order.OrderNo, "error", err)
			return nil
		}
		logger.Warnw("worker_order_placed_email_send_failed",
			"order_id", order.ID,
			"order_no", order.OrderNo,
			"receiver_email", receiverEmail,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleContactReceivedEmail(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_contact_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ContactReceivedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_contact_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.ContactID == 0 {
		logger.Debugw("worker_contact_email_skip_invalid_payload")
		return nil
	}
	contact, err := c.ContactRepo.GetByID(ctx, payload.ContactID)
	if err != nil {
		logger.Warnw("worker_contact_email_fetch_failed", "contact_id", payload.ContactID, "error", err)
		return err
	}
	if contact == nil {
		logger.Debugw("worker_contact_email_skip_not_found", "contact_id", payload.ContactID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_contact_email_skip_email_service_nil", "contact_id", contact.ID)
		return nil
	}
	if err := c.EmailService.SendContactInboxEmail(contact); err != nil && !isPermanentEmailError(err) {
		logger.Warnw("worker_contact_inbox_email_send_failed", "contact_id", contact.ID, "error", err)
		return err
	}
	if err := c.EmailService.SendContactReceivedEmail(contact, payload.Locale); err != nil {
		if isPermanentEmailError(err) {
			logger.Warnw("worker_contact_email_skip", "contact_id", contact.ID, "error", err)
			return nil
		}
		logger.Warnw("worker_contact_email_send_failed", "contact_id", contact.ID, "error", err)
		return err
	}
	return nil
}

// isPermanentEmailError 重试也无法成功的邮件错误，不再重试
func isPermanentEmailError(err error) bool {
	return errors.Is(err, service.ErrEmailServiceDisabled) ||
		errors.Is(err, service.ErrEmailServiceNotConfigured) ||
		errors.Is(err, service.ErrInvalidEmailAddress) ||
		errors.Is(err, service.ErrEmailRecipientRejected)
}
