package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// Workspace bundles the category and tool stores of one user. Mutations on
// either store are serialized on a shared lock.
type Workspace struct {
	UserID     uuid.UUID
	Categories *CategoryStore
	Tools      *ToolStore

	writeMu sync.Mutex
}

// NewWorkspace creates an unloaded workspace for userID.
func NewWorkspace(userID uuid.UUID, categoryRepo adapter.CategoryRepository, toolRepo adapter.ToolRepository, now func() time.Time) *Workspace {
	if now == nil {
		now = time.Now
	}
	w := &Workspace{UserID: userID}
	w.Tools = NewToolStore(toolRepo, &w.writeMu, now)
	w.Categories = NewCategoryStore(categoryRepo, w.Tools, &w.writeMu, now)
	return w
}

// Load reloads both stores. Both loads are attempted even if the first fails.
func (w *Workspace) Load(ctx context.Context) error {
	catErr := w.Categories.Load(ctx, w.UserID)
	toolErr := w.Tools.Load(ctx, w.UserID)
	return errors.Join(catErr, toolErr)
}

// Clear empties both stores.
func (w *Workspace) Clear() {
	w.Tools.Clear()
	w.Categories.Clear()
}

// AddTool adds a tool to the category named by draft.CategoryID. The category
// lookup and the write share one hold of the workspace lock, so the category
// cannot be removed in between. An empty draft color takes the category color.
func (w *Workspace) AddTool(ctx context.Context, draft entity.ToolDraft) (*entity.Tool, error) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	category, ok := w.Categories.Get(draft.CategoryID)
	if !ok {
		return nil, domainerror.ErrToolCategoryRequired
	}
	if draft.Color == "" {
		draft.Color = category.Color
	}
	return w.Tools.add(ctx, draft)
}

// EditTool edits a tool. When the patch moves the tool, the target category
// must exist for the whole duration of the write.
func (w *Workspace) EditTool(ctx context.Context, id uuid.UUID, patch entity.ToolPatch) (*entity.Tool, error) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	if patch.CategoryID != nil {
		if _, ok := w.Categories.Get(*patch.CategoryID); !ok {
			return nil, domainerror.ErrToolCategoryRequired
		}
	}
	return w.Tools.edit(ctx, id, patch)
}
