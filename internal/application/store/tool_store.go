// Package store holds the in-memory application state of a signed-in user:
// their categories and tools, kept in sync with the persistence gateway.
//
// A failed gateway call never changes in-memory state; the caller receives
// a *domainerror.StoreError instead.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// ToolStore is the authoritative in-memory list of one user's tools.
type ToolStore struct {
	repo    adapter.ToolRepository
	writeMu *sync.Mutex
	now     func() time.Time

	mu     sync.RWMutex
	userID uuid.UUID
	tools  []*entity.Tool
}

// NewToolStore creates an empty ToolStore. Mutations are serialized on writeMu,
// which is shared with the sibling CategoryStore.
func NewToolStore(repo adapter.ToolRepository, writeMu *sync.Mutex, now func() time.Time) *ToolStore {
	return &ToolStore{
		repo:    repo,
		writeMu: writeMu,
		now:     now,
	}
}

// Load replaces the list with every persisted tool of userID.
// On failure the list is left empty.
func (s *ToolStore) Load(ctx context.Context, userID uuid.UUID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tools, err := s.repo.FindByUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	if err != nil {
		s.tools = nil
		slog.Warn("Failed to load tools", "user_id", userID, "error", err)
		return domainerror.NewStoreError("load tools", err)
	}
	s.tools = tools
	return nil
}

// Add stamps the draft with the owner and creation time, persists it and
// appends it to the list. The draft is not re-validated here.
func (s *ToolStore) Add(ctx context.Context, draft entity.ToolDraft) (*entity.Tool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.add(ctx, draft)
}

// add requires writeMu to be held.
func (s *ToolStore) add(ctx context.Context, draft entity.ToolDraft) (*entity.Tool, error) {
	tool := entity.NewTool(s.owner(), draft, s.now())
	if err := s.repo.Create(ctx, tool); err != nil {
		slog.Warn("Failed to add tool", "user_id", tool.UserID, "error", err)
		return nil, domainerror.NewStoreError("add tool", err)
	}

	s.mu.Lock()
	s.tools = append(s.tools, tool)
	s.mu.Unlock()

	return cloneTool(tool), nil
}

// Edit persists the patch and shallow-merges it into the cached record.
// CreatedAt is preserved and UpdatedAt refreshed.
func (s *ToolStore) Edit(ctx context.Context, id uuid.UUID, patch entity.ToolPatch) (*entity.Tool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.edit(ctx, id, patch)
}

// edit requires writeMu to be held.
func (s *ToolStore) edit(ctx context.Context, id uuid.UUID, patch entity.ToolPatch) (*entity.Tool, error) {
	current, idx := s.find(id)
	if current == nil {
		return nil, domainerror.ErrToolNotFound
	}

	updatedAt := s.now()
	if err := s.repo.Update(ctx, id, current.UserID, patch, updatedAt); err != nil {
		if errors.Is(err, domainerror.ErrToolNotFound) {
			return nil, err
		}
		slog.Warn("Failed to edit tool", "tool_id", id, "error", err)
		return nil, domainerror.NewStoreError("edit tool", err)
	}

	merged := cloneTool(current)
	merged.Apply(patch, updatedAt)

	s.mu.Lock()
	s.tools[idx] = merged
	s.mu.Unlock()

	return cloneTool(merged), nil
}

// Remove deletes the tool and filters it out of the list.
func (s *ToolStore) Remove(ctx context.Context, id uuid.UUID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, _ := s.find(id)
	if current == nil {
		return domainerror.ErrToolNotFound
	}

	if err := s.repo.Delete(ctx, id, current.UserID); err != nil {
		if errors.Is(err, domainerror.ErrToolNotFound) {
			return err
		}
		slog.Warn("Failed to remove tool", "tool_id", id, "error", err)
		return domainerror.NewStoreError("remove tool", err)
	}

	s.mu.Lock()
	kept := s.tools[:0:0]
	for _, t := range s.tools {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tools = kept
	s.mu.Unlock()

	return nil
}

// List returns a copy of the cached tools.
func (s *ToolStore) List() []*entity.Tool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Tool, len(s.tools))
	for i, t := range s.tools {
		out[i] = cloneTool(t)
	}
	return out
}

// Get returns a copy of the cached tool with id.
func (s *ToolStore) Get(id uuid.UUID) (*entity.Tool, bool) {
	t, _ := s.find(id)
	if t == nil {
		return nil, false
	}
	return cloneTool(t), true
}

// CountByCategory returns how many cached tools reference categoryID.
func (s *ToolStore) CountByCategory(categoryID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.tools {
		if t.CategoryID == categoryID {
			n++
		}
	}
	return n
}

// Clear drops the cached list, waiting for any in-flight mutation.
func (s *ToolStore) Clear() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.tools = nil
	s.mu.Unlock()
}

func (s *ToolStore) owner() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *ToolStore) find(id uuid.UUID) (*entity.Tool, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, t := range s.tools {
		if t.ID == id {
			return t, i
		}
	}
	return nil, -1
}

func cloneTool(t *entity.Tool) *entity.Tool {
	c := *t
	return &c
}
