package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/application/session"
)

// SessionSource lets the registry observe sign-in and sign-out.
type SessionSource interface {
	Subscribe(userID uuid.UUID, handler session.Handler) (unsubscribe func())
}

type registryEntry struct {
	ws          *Workspace
	ready       chan struct{}
	err         error
	unsubscribe func()
}

// Registry hands out one Workspace per user. Workspaces load lazily on first
// use, reload when the user signs in again and are dropped on sign-out.
type Registry struct {
	categoryRepo  adapter.CategoryRepository
	toolRepo      adapter.ToolRepository
	sessions      SessionSource
	now           func() time.Time
	reloadTimeout time.Duration

	mu      sync.Mutex
	entries map[uuid.UUID]*registryEntry
}

// NewRegistry creates an empty Registry.
func NewRegistry(categoryRepo adapter.CategoryRepository, toolRepo adapter.ToolRepository, sessions SessionSource, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		categoryRepo:  categoryRepo,
		toolRepo:      toolRepo,
		sessions:      sessions,
		now:           now,
		reloadTimeout: 10 * time.Second,
		entries:       make(map[uuid.UUID]*registryEntry),
	}
}

// Workspace returns the loaded workspace of userID, loading it if needed.
// Concurrent callers for the same user share a single load. A failed load is
// not cached, so the next call retries.
func (r *Registry) Workspace(ctx context.Context, userID uuid.UUID) (*Workspace, error) {
	r.mu.Lock()
	entry, ok := r.entries[userID]
	if !ok {
		entry = &registryEntry{
			ws:    NewWorkspace(userID, r.categoryRepo, r.toolRepo, r.now),
			ready: make(chan struct{}),
		}
		r.entries[userID] = entry
	}
	r.mu.Unlock()

	if ok {
		select {
		case <-entry.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if entry.err != nil {
			return nil, entry.err
		}
		return entry.ws, nil
	}

	entry.err = entry.ws.Load(ctx)
	if entry.err != nil {
		r.mu.Lock()
		if r.entries[userID] == entry {
			delete(r.entries, userID)
		}
		r.mu.Unlock()
		close(entry.ready)
		return nil, entry.err
	}

	if r.sessions != nil {
		entry.unsubscribe = r.sessions.Subscribe(userID, func(ev session.Event) {
			r.onSessionEvent(entry, ev)
		})
	}
	close(entry.ready)

	slog.Debug("Workspace loaded",
		"user_id", userID,
		"categories", len(entry.ws.Categories.List()),
		"tools", len(entry.ws.Tools.List()),
	)
	return entry.ws, nil
}

// Evict clears and forgets the workspace of userID.
func (r *Registry) Evict(userID uuid.UUID) {
	r.mu.Lock()
	entry, ok := r.entries[userID]
	if ok {
		delete(r.entries, userID)
	}
	r.mu.Unlock()

	if !ok {
		return
	}
	<-entry.ready
	if entry.unsubscribe != nil {
		entry.unsubscribe()
	}
	entry.ws.Clear()
	slog.Debug("Workspace evicted", "user_id", userID)
}

// Len returns the number of open workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Close evicts every workspace.
func (r *Registry) Close() {
	r.mu.Lock()
	ids := make([]uuid.UUID, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.Evict(id)
	}
}

func (r *Registry) onSessionEvent(entry *registryEntry, ev session.Event) {
	switch ev.Kind {
	case session.EventSignedIn:
		ctx, cancel := context.WithTimeout(context.Background(), r.reloadTimeout)
		defer cancel()
		if err := entry.ws.Load(ctx); err != nil {
			slog.Warn("Workspace reload after sign-in failed", "user_id", ev.UserID, "error", err)
		}
	case session.EventSignedOut:
		r.mu.Lock()
		current := r.entries[ev.UserID]
		r.mu.Unlock()
		if current == entry {
			r.Evict(ev.UserID)
		}
	}
}

// WorkspaceProvider resolves the workspace of an authenticated user.
type WorkspaceProvider interface {
	Workspace(ctx context.Context, userID uuid.UUID) (*Workspace, error)
}

var _ WorkspaceProvider = (*Registry)(nil)
