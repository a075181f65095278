package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the delivery state of a queued email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType names a transactional email template.
type EmailTemplateType string

const (
	TemplatePasswordReset EmailTemplateType = "password_reset"
	TemplateWelcome       EmailTemplateType = "welcome"
)

// DefaultEmailMaxAttempts bounds delivery retries for a job.
const DefaultEmailMaxAttempts = 3

// emailRetryDelays is indexed by the number of failed attempts so far.
var emailRetryDelays = []time.Duration{0, time.Minute, 5 * time.Minute}

// EmailJob is a transactional email waiting in the outbound queue.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]any
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ProviderID     string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob creates a pending job scheduled for immediate delivery.
func NewEmailJob(templateType EmailTemplateType, recipientEmail, recipientName, subject string, data map[string]any) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   templateType,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        subject,
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    DefaultEmailMaxAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing claims the job for delivery.
func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful hand-off to the provider.
func (e *EmailJob) MarkSent(providerID string, now time.Time) {
	e.Status = EmailStatusSent
	e.ProviderID = providerID
	processed := now.UTC()
	e.ProcessedAt = &processed
}

// MarkFailed records a failed attempt. Permanent failures and exhausted
// jobs become failed; others are rescheduled with backoff.
func (e *EmailJob) MarkFailed(err error, permanent bool, now time.Time) {
	e.Attempts++
	e.LastError = err.Error()

	if permanent || e.Attempts >= e.MaxAttempts {
		e.Status = EmailStatusFailed
		processed := now.UTC()
		e.ProcessedAt = &processed
		return
	}

	delay := emailRetryDelays[len(emailRetryDelays)-1]
	if e.Attempts < len(emailRetryDelays) {
		delay = emailRetryDelays[e.Attempts]
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = now.UTC().Add(delay)
}

// IsReadyToProcess reports whether the job is due at now.
func (e *EmailJob) IsReadyToProcess(now time.Time) bool {
	return e.Status == EmailStatusPending && !now.Before(e.ScheduledAt)
}
