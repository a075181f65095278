// Package storetest provides in-memory persistence gateways for tests of code
// built on the store package.
package storetest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// ErrBackend is returned by a repository switched into failure mode.
var ErrBackend = errors.New("backend unavailable")

// CategoryRepo is an in-memory adapter.CategoryRepository.
type CategoryRepo struct {
	mu          sync.Mutex
	records     map[uuid.UUID]entity.Category
	fail        bool
	deleteCalls int
	loadCalls   int
}

// NewCategoryRepo creates an empty CategoryRepo.
func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{records: make(map[uuid.UUID]entity.Category)}
}

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return ErrBackend
	}
	r.records[c.ID] = *c
	return nil
}

func (r *CategoryRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.records[id]
	if !ok || c.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *CategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loadCalls++
	if r.fail {
		return nil, ErrBackend
	}
	var out []*entity.Category
	for _, c := range r.records {
		if c.UserID == userID {
			c := c
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *CategoryRepo) Update(_ context.Context, id, userID uuid.UUID, patch entity.CategoryPatch, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return ErrBackend
	}
	c, ok := r.records[id]
	if !ok || c.UserID != userID {
		return domainerror.ErrCategoryNotFound
	}
	c.Apply(patch, updatedAt)
	r.records[id] = c
	return nil
}

func (r *CategoryRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	if r.fail {
		return ErrBackend
	}
	c, ok := r.records[id]
	if !ok || c.UserID != userID {
		return domainerror.ErrCategoryNotFound
	}
	delete(r.records, id)
	return nil
}

// SetFail switches every write and load into failure mode.
func (r *CategoryRepo) SetFail(fail bool) {
	r.mu.Lock()
	r.fail = fail
	r.mu.Unlock()
}

// DeleteCalls returns how many times Delete was invoked.
func (r *CategoryRepo) DeleteCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.deleteCalls
}

// LoadCalls returns how many times FindByUser was invoked.
func (r *CategoryRepo) LoadCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadCalls
}

// ToolRepo is an in-memory adapter.ToolRepository.
type ToolRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]entity.Tool
	fail    bool
}

// NewToolRepo creates an empty ToolRepo.
func NewToolRepo() *ToolRepo {
	return &ToolRepo{records: make(map[uuid.UUID]entity.Tool)}
}

func (r *ToolRepo) Create(_ context.Context, t *entity.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return ErrBackend
	}
	r.records[t.ID] = *t
	return nil
}

func (r *ToolRepo) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.records[id]
	if !ok || t.UserID != userID {
		return nil, domainerror.ErrToolNotFound
	}
	return &t, nil
}

func (r *ToolRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Tool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, ErrBackend
	}
	var out []*entity.Tool
	for _, t := range r.records {
		if t.UserID == userID {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ToolRepo) Update(_ context.Context, id, userID uuid.UUID, patch entity.ToolPatch, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return ErrBackend
	}
	t, ok := r.records[id]
	if !ok || t.UserID != userID {
		return domainerror.ErrToolNotFound
	}
	t.Apply(patch, updatedAt)
	r.records[id] = t
	return nil
}

func (r *ToolRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return ErrBackend
	}
	t, ok := r.records[id]
	if !ok || t.UserID != userID {
		return domainerror.ErrToolNotFound
	}
	delete(r.records, id)
	return nil
}

// SetFail switches every write and load into failure mode.
func (r *ToolRepo) SetFail(fail bool) {
	r.mu.Lock()
	r.fail = fail
	r.mu.Unlock()
}

// Clock advances one second on every call to Now.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts a Clock at a fixed instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the next tick.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

var (
	_ adapter.CategoryRepository = (*CategoryRepo)(nil)
	_ adapter.ToolRepository     = (*ToolRepo)(nil)
)
