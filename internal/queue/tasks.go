package queue

import (
	"encoding/json"

	"github.com/geoda-coffee/storefront/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlacedEmail 下单确认邮件任务
	TaskOrderPlacedEmail = constants.TaskOrderPlacedEmail
	// TaskContactReceivedEmail 联系表单回执邮件任务
	TaskContactReceivedEmail = constants.TaskContactReceivedEmail
)

// OrderPlacedEmailPayload 下单确认邮件任务载荷
type OrderPlacedEmailPayload struct {
	OrderID uint   `json:"order_id"`
	OrderNo string `json:"order_no"`
	Locale  string `json:"locale,omitempty"`
}

// ContactReceivedEmailPayload 联系表单回执任务载荷
type ContactReceivedEmailPayload struct {
	ContactID uint   `json:"contact_id"`
	Locale    string `json:"locale,omitempty"`
}

// NewOrderPlacedEmailTask 创建下单确认邮件任务
func NewOrderPlacedEmailTask(payload OrderPlacedEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlacedEmail, body), nil
}

// NewContactReceivedEmailTask 创建联系表单回执任务
func NewContactReceivedEmailTask(payload ContactReceivedEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskContactReceivedEmail, body), nil
}
