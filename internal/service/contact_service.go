package service

import (
	"context"
	"strings"

	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/models"
	"github.com/geoda-coffee/storefront/internal/queue"
	"github.com/geoda-coffee/storefront/internal/repository"
)

// ContactInput 联系表单输入
type ContactInput struct {
	FullName string
	Email    string
	Subject  string
	Message  string
	Locale   string
}

// ContactService 联系表单服务
type ContactService struct {
	contactRepo repository.ContactRepository
	queueClient *queue.Client
}

// NewContactService 创建联系表单服务
func NewContactService(contactRepo repository.ContactRepository, queueClient *queue.Client) *ContactService {
	return &ContactService{contactRepo: contactRepo, queueClient: queueClient}
}

// Submit 校验并保存留言，随后异步发送回执
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*models.Contact, error) {
	contact := &models.Contact{
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Subject:  strings.TrimSpace(input.Subject),
		Message:  strings.TrimSpace(input.Message),
	}

	v := &ValidationError{}
	checkLength(v, "full_name", contact.FullName, 2, 100)
	checkEmail(v, "email", contact.Email)
	checkLength(v, "subject", contact.Subject, 5, 200)
	checkLength(v, "message", contact.Message, 10, 1000)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		logger.Errorw("contact_submit_failed", "email", contact.Email, "error", err)
		return nil, ErrContactSubmitFailed
	}

	payload := queue.ContactReceivedEmailPayload{ContactID: contact.ID, Locale: input.Locale}
	if err := s.queueClient.EnqueueContactReceivedEmail(ctx, payload); err != nil {
		logger.Warnw("contact_received_email_enqueue_failed", "contact_id", contact.ID, "error", err)
	}
	return contact, nil
}
