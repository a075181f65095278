package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store/storetest"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

type fixture struct {
	userID     uuid.UUID
	categories *storetest.CategoryRepo
	tools      *storetest.ToolRepo
	clock      *storetest.Clock
	ws         *Workspace
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		userID:     uuid.New(),
		categories: storetest.NewCategoryRepo(),
		tools:      storetest.NewToolRepo(),
		clock:      storetest.NewClock(),
	}
	f.ws = NewWorkspace(f.userID, f.categories, f.tools, f.clock.Now)
	if err := f.ws.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return f
}

func (f *fixture) addCategory(t *testing.T, name, color string) *entity.Category {
	t.Helper()
	c, err := f.ws.Categories.Add(context.Background(), entity.CategoryDraft{Name: name, Color: color})
	if err != nil {
		t.Fatalf("Categories.Add() error = %v", err)
	}
	return c
}

func (f *fixture) addTool(t *testing.T, name string, category *entity.Category) *entity.Tool {
	t.Helper()
	tool, err := f.ws.Tools.Add(context.Background(), entity.ToolDraft{
		Name:       name,
		URL:        "https://example.com/" + name,
		CategoryID: category.ID,
		Color:      category.Color,
	})
	if err != nil {
		t.Fatalf("Tools.Add() error = %v", err)
	}
	return tool
}

func TestToolStore_Add(t *testing.T) {
	f := newFixture(t)
	ai := f.addCategory(t, "AI", "#10a37f")

	t.Run("stamps owner and timestamps", func(t *testing.T) {
		tool := f.addTool(t, "Claude", ai)
		if tool.UserID != f.userID {
			t.Errorf("UserID = %s, want %s", tool.UserID, f.userID)
		}
		if tool.ID == uuid.Nil {
			t.Error("ID was not assigned")
		}
		if tool.CreatedAt.IsZero() || !tool.CreatedAt.Equal(tool.UpdatedAt) {
			t.Errorf("CreatedAt = %v, UpdatedAt = %v", tool.CreatedAt, tool.UpdatedAt)
		}
		if got := len(f.ws.Tools.List()); got != 1 {
			t.Errorf("List() len = %d, want 1", got)
		}
	})

	t.Run("failure leaves list unchanged", func(t *testing.T) {
		before := len(f.ws.Tools.List())
		f.tools.SetFail(true)
		defer f.tools.SetFail(false)

		_, err := f.ws.Tools.Add(context.Background(), entity.ToolDraft{Name: "X", URL: "https://x", CategoryID: ai.ID})
		if !errors.Is(err, domainerror.ErrPersistenceFailed) {
			t.Fatalf("error = %v, want persistence failure", err)
		}
		if got := len(f.ws.Tools.List()); got != before {
			t.Errorf("List() len = %d, want %d", got, before)
		}
	})
}

func TestToolStore_Edit(t *testing.T) {
	f := newFixture(t)
	ai := f.addCategory(t, "AI", "#10a37f")
	tool := f.addTool(t, "Claude", ai)

	t.Run("merges patch and refreshes updatedAt", func(t *testing.T) {
		edited, err := f.ws.Tools.Edit(context.Background(), tool.ID, entity.ToolPatch{
			Description: strPtr("Anthropic assistant"),
		})
		if err != nil {
			t.Fatalf("Edit() error = %v", err)
		}
		if edited.Name != "Claude" || edited.Description != "Anthropic assistant" {
			t.Errorf("edited = %+v", edited)
		}
		if !edited.CreatedAt.Equal(tool.CreatedAt) {
			t.Errorf("CreatedAt changed: %v -> %v", tool.CreatedAt, edited.CreatedAt)
		}
		if !edited.UpdatedAt.After(tool.UpdatedAt) {
			t.Errorf("UpdatedAt not advanced: %v -> %v", tool.UpdatedAt, edited.UpdatedAt)
		}
	})

	t.Run("round trips through a fresh load", func(t *testing.T) {
		before, _ := f.ws.Tools.Get(tool.ID)
		patch := entity.ToolPatch{Name: strPtr("Claude.ai"), Color: strPtr("#f59e0b")}
		if _, err := f.ws.Tools.Edit(context.Background(), tool.ID, patch); err != nil {
			t.Fatalf("Edit() error = %v", err)
		}

		fresh := NewWorkspace(f.userID, f.categories, f.tools, f.clock.Now)
		if err := fresh.Load(context.Background()); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		got, ok := fresh.Tools.Get(tool.ID)
		if !ok {
			t.Fatal("tool missing after reload")
		}
		if got.Name != "Claude.ai" || got.Color != "#f59e0b" || got.URL != before.URL || got.Description != before.Description {
			t.Errorf("reloaded = %+v, before = %+v", got, before)
		}
		if !got.CreatedAt.Equal(before.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, before.CreatedAt)
		}
		if !got.UpdatedAt.After(before.UpdatedAt) {
			t.Errorf("UpdatedAt = %v, want after %v", got.UpdatedAt, before.UpdatedAt)
		}
	})

	t.Run("failure leaves record unchanged", func(t *testing.T) {
		before, _ := f.ws.Tools.Get(tool.ID)
		f.tools.SetFail(true)
		defer f.tools.SetFail(false)

		_, err := f.ws.Tools.Edit(context.Background(), tool.ID, entity.ToolPatch{Name: strPtr("Broken")})
		if !errors.Is(err, domainerror.ErrPersistenceFailed) {
			t.Fatalf("error = %v, want persistence failure", err)
		}
		after, _ := f.ws.Tools.Get(tool.ID)
		if *after != *before {
			t.Errorf("record changed: %+v -> %+v", before, after)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.ws.Tools.Edit(context.Background(), uuid.New(), entity.ToolPatch{Name: strPtr("x")})
		if !errors.Is(err, domainerror.ErrToolNotFound) {
			t.Errorf("error = %v, want ErrToolNotFound", err)
		}
	})
}

func TestToolStore_Remove(t *testing.T) {
	f := newFixture(t)
	ai := f.addCategory(t, "AI", "#10a37f")
	keep := f.addTool(t, "ChatGPT", ai)
	drop := f.addTool(t, "Claude", ai)

	f.tools.SetFail(true)
	if err := f.ws.Tools.Remove(context.Background(), drop.ID); !errors.Is(err, domainerror.ErrPersistenceFailed) {
		t.Fatalf("Remove() error = %v, want persistence failure", err)
	}
	if got := len(f.ws.Tools.List()); got != 2 {
		t.Fatalf("List() len = %d after failed remove, want 2", got)
	}
	f.tools.SetFail(false)

	if err := f.ws.Tools.Remove(context.Background(), drop.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	tools := f.ws.Tools.List()
	if len(tools) != 1 || tools[0].ID != keep.ID {
		t.Errorf("List() = %+v, want only %s", tools, keep.ID)
	}
}

func TestToolStore_LoadFailureEmptiesList(t *testing.T) {
	f := newFixture(t)
	ai := f.addCategory(t, "AI", "#10a37f")
	f.addTool(t, "Claude", ai)

	f.tools.SetFail(true)
	err := f.ws.Tools.Load(context.Background(), f.userID)
	var storeErr *domainerror.StoreError
	if !errors.As(err, &storeErr) {
		t.Fatalf("Load() error = %v, want *StoreError", err)
	}
	if got := len(f.ws.Tools.List()); got != 0 {
		t.Errorf("List() len = %d, want 0", got)
	}
}

func TestCategoryStore_RemoveGuard(t *testing.T) {
	tests := []struct {
		name      string
		toolCount int
		wantCount int
		wantGone  bool
	}{
		{name: "unused category is removed", toolCount: 0, wantGone: true},
		{name: "one referencing tool blocks removal", toolCount: 1, wantCount: 1},
		{name: "several referencing tools are counted", toolCount: 3, wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			category := f.addCategory(t, "AI", "#10a37f")
			other := f.addCategory(t, "Design", "#a259ff")
			f.addTool(t, "Figma", other)
			for i := 0; i < tt.toolCount; i++ {
				f.addTool(t, uuid.NewString(), category)
			}
			toolsBefore := f.ws.Tools.List()

			err := f.ws.Categories.Remove(context.Background(), category.ID)

			if tt.wantGone {
				if err != nil {
					t.Fatalf("Remove() error = %v", err)
				}
				if _, ok := f.ws.Categories.Get(category.ID); ok {
					t.Error("category still cached after removal")
				}
				return
			}

			var inUse *domainerror.CategoryInUseError
			if !errors.As(err, &inUse) {
				t.Fatalf("Remove() error = %v, want *CategoryInUseError", err)
			}
			if inUse.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", inUse.Count, tt.wantCount)
			}
			if !errors.Is(err, domainerror.ErrCategoryInUse) {
				t.Error("error does not match ErrCategoryInUse")
			}
			if f.categories.DeleteCalls() != 0 {
				t.Errorf("repository Delete called %d times, want 0", f.categories.DeleteCalls())
			}
			if _, ok := f.ws.Categories.Get(category.ID); !ok {
				t.Error("category removed despite guard")
			}
			toolsAfter := f.ws.Tools.List()
			if len(toolsAfter) != len(toolsBefore) {
				t.Fatalf("tool count changed: %d -> %d", len(toolsBefore), len(toolsAfter))
			}
			for i := range toolsAfter {
				if *toolsAfter[i] != *toolsBefore[i] {
					t.Errorf("tool %d altered: %+v -> %+v", i, toolsBefore[i], toolsAfter[i])
				}
			}
		})
	}
}

func TestCategoryStore_RemoveFailureKeepsCategory(t *testing.T) {
	f := newFixture(t)
	category := f.addCategory(t, "Empty", "#000000")

	f.categories.SetFail(true)
	err := f.ws.Categories.Remove(context.Background(), category.ID)
	if !errors.Is(err, domainerror.ErrPersistenceFailed) {
		t.Fatalf("Remove() error = %v, want persistence failure", err)
	}
	if _, ok := f.ws.Categories.Get(category.ID); !ok {
		t.Error("category dropped after failed delete")
	}
}

func TestCategoryStore_EditDoesNotRecolorTools(t *testing.T) {
	f := newFixture(t)
	ai := f.addCategory(t, "AI", "#10a37f")
	tool := f.addTool(t, "Claude", ai)

	edited, err := f.ws.Categories.Edit(context.Background(), ai.ID, entity.CategoryPatch{Color: strPtr("#ef4444")})
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if edited.Color != "#ef4444" {
		t.Errorf("category Color = %s, want #ef4444", edited.Color)
	}
	if !edited.CreatedAt.Equal(ai.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", ai.CreatedAt, edited.CreatedAt)
	}

	got, _ := f.ws.Tools.Get(tool.ID)
	if got.Color != "#10a37f" {
		t.Errorf("tool Color = %s, want the creation-time snapshot #10a37f", got.Color)
	}
}

func TestCategoryStore_ListKeepsStoredOrder(t *testing.T) {
	f := newFixture(t)
	names := []string{"AI", "IDEs", "Design", "APIs"}
	for _, n := range names {
		f.addCategory(t, n, "#000000")
	}

	fresh := NewWorkspace(f.userID, f.categories, f.tools, f.clock.Now)
	if err := fresh.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	got := fresh.Categories.List()
	if len(got) != len(names) {
		t.Fatalf("List() len = %d, want %d", len(got), len(names))
	}
	for i, c := range got {
		if c.Name != names[i] {
			t.Errorf("List()[%d] = %s, want %s", i, c.Name, names[i])
		}
	}
}

func TestCategoryStore_Add(t *testing.T) {
	f := newFixture(t)

	t.Run("stamps owner and timestamps", func(t *testing.T) {
		c := f.addCategory(t, "AI", "#10a37f")
		if c.UserID != f.userID {
			t.Errorf("UserID = %s, want %s", c.UserID, f.userID)
		}
		if c.CreatedAt.IsZero() || !c.CreatedAt.Equal(c.UpdatedAt) {
			t.Errorf("CreatedAt = %v, UpdatedAt = %v", c.CreatedAt, c.UpdatedAt)
		}
	})

	t.Run("failure leaves list unchanged", func(t *testing.T) {
		before := f.ws.Categories.List()
		f.categories.SetFail(true)
		defer f.categories.SetFail(false)

		_, err := f.ws.Categories.Add(context.Background(), entity.CategoryDraft{Name: "Design", Color: "#a259ff"})
		if !errors.Is(err, domainerror.ErrPersistenceFailed) {
			t.Fatalf("error = %v, want persistence failure", err)
		}
		after := f.ws.Categories.List()
		if len(after) != len(before) {
			t.Fatalf("List() len = %d, want %d", len(after), len(before))
		}
		for i := range after {
			if *after[i] != *before[i] {
				t.Errorf("category %d altered: %+v -> %+v", i, before[i], after[i])
			}
		}
	})
}

func TestCategoryStore_Edit(t *testing.T) {
	f := newFixture(t)
	ai := f.addCategory(t, "AI", "#10a37f")

	t.Run("failure leaves record unchanged", func(t *testing.T) {
		f.categories.SetFail(true)
		defer f.categories.SetFail(false)

		_, err := f.ws.Categories.Edit(context.Background(), ai.ID, entity.CategoryPatch{Name: strPtr("Broken"), Color: strPtr("#ef4444")})
		if !errors.Is(err, domainerror.ErrPersistenceFailed) {
			t.Fatalf("error = %v, want persistence failure", err)
		}
		after, _ := f.ws.Categories.Get(ai.ID)
		if *after != *ai {
			t.Errorf("record changed: %+v -> %+v", ai, after)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.ws.Categories.Edit(context.Background(), uuid.New(), entity.CategoryPatch{Name: strPtr("x")})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("error = %v, want ErrCategoryNotFound", err)
		}
	})
}

func TestWorkspace_AddTool(t *testing.T) {
	f := newFixture(t)
	ai := f.addCategory(t, "AI", "#10a37f")

	tests := []struct {
		name      string
		draft     entity.ToolDraft
		wantErr   error
		wantColor string
	}{
		{
			name:      "inherits category color",
			draft:     entity.ToolDraft{Name: "Claude", URL: "https://claude.ai", CategoryID: ai.ID},
			wantColor: "#10a37f",
		},
		{
			name:      "keeps explicit color",
			draft:     entity.ToolDraft{Name: "Gemini", URL: "https://gemini.google.com", CategoryID: ai.ID, Color: "#4285f4"},
			wantColor: "#4285f4",
		},
		{
			name:    "unknown category",
			draft:   entity.ToolDraft{Name: "Orphan", URL: "https://orphan.dev", CategoryID: uuid.New()},
			wantErr: domainerror.ErrToolCategoryRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(f.ws.Tools.List())
			tool, err := f.ws.AddTool(context.Background(), tt.draft)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddTool() error = %v, want %v", err, tt.wantErr)
				}
				if got := len(f.ws.Tools.List()); got != before {
					t.Errorf("List() len = %d, want %d", got, before)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddTool() error = %v", err)
			}
			if tool.Color != tt.wantColor {
				t.Errorf("Color = %s, want %s", tool.Color, tt.wantColor)
			}
		})
	}
}

func TestWorkspace_EditToolRejectsUnknownCategory(t *testing.T) {
	f := newFixture(t)
	ai := f.addCategory(t, "AI", "#10a37f")
	tool := f.addTool(t, "Claude", ai)

	missing := uuid.New()
	_, err := f.ws.EditTool(context.Background(), tool.ID, entity.ToolPatch{CategoryID: &missing})
	if !errors.Is(err, domainerror.ErrToolCategoryRequired) {
		t.Fatalf("EditTool() error = %v, want ErrToolCategoryRequired", err)
	}
	got, _ := f.ws.Tools.Get(tool.ID)
	if got.CategoryID != ai.ID {
		t.Errorf("CategoryID = %s, want %s", got.CategoryID, ai.ID)
	}
}

func strPtr(s string) *string { return &s }
