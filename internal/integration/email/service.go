package email

import (
	"context"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	job := entity.NewEmailJob(
		entity.TemplatePasswordReset,
		input.UserEmail,
		input.UserName,
		"Reset your password - Toolbox",
		map[string]any{
			"user_name":  input.UserName,
			"reset_url":  input.ResetURL,
			"expires_in": input.ExpiresIn,
		},
	)
	return s.enqueue(ctx, job, "failed to queue password reset email")
}

// QueueWelcomeEmail queues the email sent after registration.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	job := entity.NewEmailJob(
		entity.TemplateWelcome,
		input.UserEmail,
		input.UserName,
		"Welcome to Toolbox",
		map[string]any{
			"user_name": input.UserName,
			"app_url":   s.appBaseURL,
		},
	)
	return s.enqueue(ctx, job, "failed to queue welcome email")
}

func (s *Service) enqueue(ctx context.Context, job *entity.EmailJob, message string) error {
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(domainerror.ErrCodeEmailQueueFailed, message, err)
	}
	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
