package email

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	"github.com/toolbox/backend/internal/integration/email/templates"
)

type memoryQueue struct {
	mu   sync.Mutex
	jobs []*entity.EmailJob
}

func (q *memoryQueue) Create(_ context.Context, job *entity.EmailJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *memoryQueue) GetPendingJobs(_ context.Context, now time.Time, limit int) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.IsReadyToProcess(now) && len(out) < limit {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *memoryQueue) Update(context.Context, *entity.EmailJob) error { return nil }

func (q *memoryQueue) GetByRecipient(_ context.Context, email string) ([]*entity.EmailJob, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []*entity.EmailJob
	for _, job := range q.jobs {
		if job.RecipientEmail == email {
			out = append(out, job)
		}
	}
	return out, nil
}

func (q *memoryQueue) DeleteSentBefore(context.Context, time.Time) (int64, error) { return 0, nil }

func newTestWorker(t *testing.T, queue *memoryQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	w := NewWorker(queue, sender, renderer, WorkerConfig{})
	w.now = func() time.Time { return time.Now().Add(time.Second) }
	return w
}

func TestWorker_SendsQueuedEmails(t *testing.T) {
	ctx := context.Background()
	queue := &memoryQueue{}
	sender := NewMockEmailSender()
	svc := NewService(queue, "https://toolbox.test")

	if err := svc.QueueWelcomeEmail(ctx, adapterWelcome("ada@example.com", "Ada")); err != nil {
		t.Fatalf("QueueWelcomeEmail() error = %v", err)
	}
	if err := svc.QueuePasswordResetEmail(ctx, adapterReset("ada@example.com", "Ada")); err != nil {
		t.Fatalf("QueuePasswordResetEmail() error = %v", err)
	}

	newTestWorker(t, queue, sender).ProcessNow(ctx)

	sent := sender.SentEmails()
	if len(sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sent))
	}
	if sent[0].Subject != "Welcome to Toolbox" {
		t.Errorf("first subject = %q", sent[0].Subject)
	}
	if sent[0].HTML == "" || sent[0].Text == "" {
		t.Error("welcome email should have html and text bodies")
	}
	for _, job := range queue.jobs {
		if job.Status != entity.EmailStatusSent {
			t.Errorf("job %s status = %s, want sent", job.TemplateType, job.Status)
		}
		if job.ProviderID == "" {
			t.Errorf("job %s has no provider id", job.TemplateType)
		}
	}
}

func TestWorker_Failures(t *testing.T) {
	tests := []struct {
		name       string
		permanent  bool
		wantStatus entity.EmailStatus
		wantTries  int
	}{
		{name: "temporary failure is rescheduled", permanent: false, wantStatus: entity.EmailStatusPending, wantTries: 1},
		{name: "permanent failure stops retries", permanent: true, wantStatus: entity.EmailStatusFailed, wantTries: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			queue := &memoryQueue{}
			sender := NewMockEmailSender()
			sender.SetFailure(errors.New("provider down"), tt.permanent)

			if err := NewService(queue, "").QueueWelcomeEmail(ctx, adapterWelcome("bob@example.com", "Bob")); err != nil {
				t.Fatalf("QueueWelcomeEmail() error = %v", err)
			}
			newTestWorker(t, queue, sender).ProcessNow(ctx)

			job := queue.jobs[0]
			if job.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", job.Status, tt.wantStatus)
			}
			if job.Attempts != tt.wantTries {
				t.Errorf("attempts = %d, want %d", job.Attempts, tt.wantTries)
			}
			if job.LastError == "" {
				t.Error("last error should be recorded")
			}
		})
	}
}

func TestWorker_UnknownTemplateFailsPermanently(t *testing.T) {
	ctx := context.Background()
	queue := &memoryQueue{}
	job := entity.NewEmailJob("newsletter", "x@example.com", "X", "News", nil)
	_ = queue.Create(ctx, job)

	sender := NewMockEmailSender()
	newTestWorker(t, queue, sender).ProcessNow(ctx)

	if job.Status != entity.EmailStatusFailed {
		t.Errorf("status = %s, want failed", job.Status)
	}
	if len(sender.SentEmails()) != 0 {
		t.Error("nothing should be sent for an unknown template")
	}
}

func TestIsPermanentError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("422 validation_error: invalid to address"), true},
		{errors.New("401 unauthorized"), true},
		{errors.New("429 too many requests"), false},
		{errors.New("dial tcp: connection refused"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := isPermanentError(tt.err); got != tt.want {
			t.Errorf("isPermanentError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func adapterWelcome(email, name string) adapter.QueueWelcomeInput {
	return adapter.QueueWelcomeInput{UserEmail: email, UserName: name}
}

func adapterReset(email, name string) adapter.QueuePasswordResetInput {
	return adapter.QueuePasswordResetInput{
		UserEmail: email,
		UserName:  name,
		ResetURL:  "https://toolbox.test/reset-password?token=abc",
		ExpiresIn: "1 hour",
	}
}
