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

// ToolCounter reports how many tools reference a category.
type ToolCounter interface {
	CountByCategory(categoryID uuid.UUID) int
}

// CategoryStore is the authoritative in-memory list of one user's categories.
// It refuses to remove a category while tools still reference it.
type CategoryStore struct {
	repo    adapter.CategoryRepository
	tools   ToolCounter
	writeMu *sync.Mutex
	now     func() time.Time

	mu         sync.RWMutex
	userID     uuid.UUID
	categories []*entity.Category
}

// NewCategoryStore creates an empty CategoryStore guarded by tools.
func NewCategoryStore(repo adapter.CategoryRepository, tools ToolCounter, writeMu *sync.Mutex, now func() time.Time) *CategoryStore {
	return &CategoryStore{
		repo:    repo,
		tools:   tools,
		writeMu: writeMu,
		now:     now,
	}
}

// Load replaces the list with the persisted categories of userID in stored order.
func (s *CategoryStore) Load(ctx context.Context, userID uuid.UUID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	categories, err := s.repo.FindByUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	if err != nil {
		s.categories = nil
		slog.Warn("Failed to load categories", "user_id", userID, "error", err)
		return domainerror.NewStoreError("load categories", err)
	}
	s.categories = categories
	return nil
}

// Add persists a new category and appends it to the list.
func (s *CategoryStore) Add(ctx context.Context, draft entity.CategoryDraft) (*entity.Category, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	category := entity.NewCategory(s.owner(), draft, s.now())
	if err := s.repo.Create(ctx, category); err != nil {
		slog.Warn("Failed to add category", "user_id", category.UserID, "error", err)
		return nil, domainerror.NewStoreError("add category", err)
	}

	s.mu.Lock()
	s.categories = append(s.categories, category)
	s.mu.Unlock()

	return cloneCategory(category), nil
}

// Edit persists the patch and merges it into the cached record.
// Tools keep the color they were created with.
func (s *CategoryStore) Edit(ctx context.Context, id uuid.UUID, patch entity.CategoryPatch) (*entity.Category, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, idx := s.find(id)
	if current == nil {
		return nil, domainerror.ErrCategoryNotFound
	}

	updatedAt := s.now()
	if err := s.repo.Update(ctx, id, current.UserID, patch, updatedAt); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, err
		}
		slog.Warn("Failed to edit category", "category_id", id, "error", err)
		return nil, domainerror.NewStoreError("edit category", err)
	}

	merged := cloneCategory(current)
	merged.Apply(patch, updatedAt)

	s.mu.Lock()
	s.categories[idx] = merged
	s.mu.Unlock()

	return cloneCategory(merged), nil
}

// Remove deletes a category that no tool references. When tools still point
// at it, a *domainerror.CategoryInUseError is returned and nothing is persisted.
func (s *CategoryStore) Remove(ctx context.Context, id uuid.UUID) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current, _ := s.find(id)
	if current == nil {
		return domainerror.ErrCategoryNotFound
	}

	if n := s.tools.CountByCategory(id); n > 0 {
		slog.Debug("Category removal blocked", "category_id", id, "tool_count", n)
		return &domainerror.CategoryInUseError{CategoryID: id, Count: n}
	}

	if err := s.repo.Delete(ctx, id, current.UserID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return err
		}
		slog.Warn("Failed to remove category", "category_id", id, "error", err)
		return domainerror.NewStoreError("remove category", err)
	}

	s.mu.Lock()
	kept := s.categories[:0:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept
	s.mu.Unlock()

	return nil
}

// List returns a copy of the cached categories in stored order.
func (s *CategoryStore) List() []*entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Category, len(s.categories))
	for i, c := range s.categories {
		out[i] = cloneCategory(c)
	}
	return out
}

// Get returns a copy of the cached category with id.
func (s *CategoryStore) Get(id uuid.UUID) (*entity.Category, bool) {
	c, _ := s.find(id)
	if c == nil {
		return nil, false
	}
	return cloneCategory(c), true
}

// FindByName returns the first category whose name equals name.
func (s *CategoryStore) FindByName(name string) (*entity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Name == name {
			return cloneCategory(c), true
		}
	}
	return nil, false
}

// Clear drops the cached list, waiting for any in-flight mutation.
func (s *CategoryStore) Clear() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.categories = nil
	s.mu.Unlock()
}

func (s *CategoryStore) owner() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *CategoryStore) find(id uuid.UUID) (*entity.Category, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, c := range s.categories {
		if c.ID == id {
			return c, i
		}
	}
	return nil, -1
}

func cloneCategory(c *entity.Category) *entity.Category {
	cp := *c
	return &cp
}
