package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ProviderID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider.
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing transactional emails.
type EmailService interface {
	// QueuePasswordResetEmail queues a password reset email.
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error

	// QueueWelcomeEmail queues the email sent after registration.
	QueueWelcomeEmail(ctx context.Context, input QueueWelcomeInput) error
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueueWelcomeInput represents the input for queueing a welcome email.
type QueueWelcomeInput struct {
	UserEmail string
	UserName  string
}
