package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/toolbox/backend/internal/application/adapter"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	}

	resp, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "permanent email failure", err)
		}
		return nil, domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", err)
	}

	return &adapter.SendEmailResult{
		ProviderID: resp.Id,
	}, nil
}

// permanentPatterns mark provider errors that will fail again on retry:
// 401, 403 and 422 responses. 429 and 5xx are retried.
var permanentPatterns = []string{
	"401",
	"403",
	"422",
	"unauthorized",
	"forbidden",
	"validation",
	"invalid",
	"bad request",
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// MockEmailSender records emails instead of sending them. It is used when no
// Resend API key is configured and in tests.
type MockEmailSender struct {
	mu          sync.Mutex
	sent        []adapter.SendEmailInput
	failErr     error
	isPermanent bool
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send implements the adapter.EmailSender interface.
func (m *MockEmailSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failErr != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if m.isPermanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "mock failure", m.failErr)
	}

	m.sent = append(m.sent, input)
	slog.Info("Email delivery skipped (mock sender)", "to", input.To, "subject", input.Subject)

	return &adapter.SendEmailResult{
		ProviderID: fmt.Sprintf("mock-%d", len(m.sent)),
	}, nil
}

// SentEmails returns a copy of the recorded emails.
func (m *MockEmailSender) SentEmails() []adapter.SendEmailInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), m.sent...)
}

// SetFailure configures the mock to fail with the given error.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
	m.isPermanent = permanent
}

// Reset clears all sent emails and failure configuration.
func (m *MockEmailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failErr = nil
	m.isPermanent = false
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
