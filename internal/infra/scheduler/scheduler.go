// Package scheduler runs periodic maintenance jobs on robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/toolbox/backend/config"
)

// jobTimeout bounds a single maintenance run.
const jobTimeout = time.Minute

// TokenPurger deletes expired refresh and reset tokens.
type TokenPurger interface {
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// LimiterSweeper drops idle rate limiter entries.
type LimiterSweeper interface {
	Cleanup() int
}

// EmailPurger deletes delivered emails processed before cutoff.
type EmailPurger interface {
	DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Jobs holds the targets of the maintenance jobs. Nil targets are skipped.
type Jobs struct {
	Tokens  TokenPurger
	Limiter LimiterSweeper
	Emails  EmailPurger
}

// Scheduler wraps cron-based maintenance jobs.
type Scheduler struct {
	cron      *cron.Cron
	jobs      Jobs
	retention time.Duration
	now       func() time.Time
}

// New creates a scheduler and registers every job with a target.
func New(cfg config.SchedulerConfig, jobs Jobs) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(cron.WithLocation(time.UTC)),
		jobs:      jobs,
		retention: cfg.EmailRetention,
		now:       time.Now,
	}

	if jobs.Tokens != nil {
		if err := s.add("purge_tokens", cfg.TokenPurgeSpec, s.PurgeTokens); err != nil {
			return nil, err
		}
	}
	if jobs.Limiter != nil {
		if err := s.add("sweep_limiter", cfg.LimiterSweepSpec, s.SweepLimiter); err != nil {
			return nil, err
		}
	}
	if jobs.Emails != nil {
		if err := s.add("purge_emails", cfg.EmailPurgeSpec, s.PurgeEmails); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) add(name, spec string, job func(context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		job(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", spec, name, err)
	}
	slog.Info("Maintenance job scheduled", "job", name, "spec", spec)
	return nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

// PurgeTokens deletes expired tokens.
func (s *Scheduler) PurgeTokens(ctx context.Context) {
	n, err := s.jobs.Tokens.PurgeExpired(ctx, s.now().UTC())
	if err != nil {
		slog.Error("Failed to purge expired tokens", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Expired tokens purged", "count", n)
	}
}

// SweepLimiter drops idle rate limiter entries.
func (s *Scheduler) SweepLimiter(_ context.Context) {
	if n := s.jobs.Limiter.Cleanup(); n > 0 {
		slog.Debug("Rate limiter entries removed", "count", n)
	}
}

// PurgeEmails deletes sent emails older than the retention window.
func (s *Scheduler) PurgeEmails(ctx context.Context) {
	cutoff := s.now().UTC().Add(-s.retention)
	n, err := s.jobs.Emails.DeleteSentBefore(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to purge sent emails", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Sent emails purged", "count", n, "cutoff", cutoff)
	}
}
