package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store"
	"github.com/toolbox/backend/internal/application/store/storetest"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

type fixture struct {
	userID     uuid.UUID
	categories *storetest.CategoryRepo
	tools      *storetest.ToolRepo
	registry   *store.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		userID:     uuid.New(),
		categories: storetest.NewCategoryRepo(),
		tools:      storetest.NewToolRepo(),
	}
	f.registry = store.NewRegistry(f.categories, f.tools, nil, storetest.NewClock().Now)
	t.Cleanup(f.registry.Close)
	return f
}

func (f *fixture) create(t *testing.T, name, color string) *entity.Category {
	t.Helper()
	out, err := NewCreateCategoryUseCase(f.registry).Execute(context.Background(), CreateCategoryInput{
		UserID: f.userID,
		Name:   name,
		Color:  color,
	})
	if err != nil {
		t.Fatalf("create %q: %v", name, err)
	}
	return out.Category
}

func strPtr(s string) *string { return &s }

func categoryCode(t *testing.T, err error) domainerror.CategoryErrorCode {
	t.Helper()
	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("expected CategoryError, got %v", err)
	}
	return catErr.Code
}

func TestCreateCategory_Validation(t *testing.T) {
	tests := []struct {
		name         string
		input        CreateCategoryInput
		expectedCode domainerror.CategoryErrorCode
	}{
		{
			name:         "empty name",
			input:        CreateCategoryInput{Name: ""},
			expectedCode: domainerror.ErrCodeCategoryNameRequired,
		},
		{
			name:         "whitespace name",
			input:        CreateCategoryInput{Name: "   "},
			expectedCode: domainerror.ErrCodeCategoryNameRequired,
		},
		{
			name:         "name too long",
			input:        CreateCategoryInput{Name: strings.Repeat("a", MaxCategoryNameLength+1)},
			expectedCode: domainerror.ErrCodeCategoryNameTooLong,
		},
		{
			name:         "invalid color",
			input:        CreateCategoryInput{Name: "AI", Color: "blue"},
			expectedCode: domainerror.ErrCodeInvalidColorFormat,
		},
		{
			name:         "emoji followed by text",
			input:        CreateCategoryInput{Name: "AI", Emoji: "🤖💻 robots and laptops"},
			expectedCode: domainerror.ErrCodeInvalidCategoryEmoji,
		},
		{
			name:         "two emoji",
			input:        CreateCategoryInput{Name: "AI", Emoji: "🤖💻"},
			expectedCode: domainerror.ErrCodeInvalidCategoryEmoji,
		},
		{
			name:         "two letters",
			input:        CreateCategoryInput{Name: "AI", Emoji: "ab"},
			expectedCode: domainerror.ErrCodeInvalidCategoryEmoji,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.input.UserID = f.userID

			_, err := NewCreateCategoryUseCase(f.registry).Execute(context.Background(), tt.input)
			if code := categoryCode(t, err); code != tt.expectedCode {
				t.Errorf("code = %s, want %s", code, tt.expectedCode)
			}

			list, _ := NewListCategoriesUseCase(f.registry).Execute(context.Background(), ListCategoriesInput{UserID: f.userID})
			if len(list.Categories) != 0 {
				t.Errorf("validation failure must not add a category, got %d", len(list.Categories))
			}
		})
	}
}

func TestCreateCategory_DefaultsAndTrim(t *testing.T) {
	f := newFixture(t)

	got := f.create(t, "  Dev  ", "")
	if got.Name != "Dev" {
		t.Errorf("name = %q, want trimmed", got.Name)
	}
	if got.Color != entity.DefaultCategoryColor {
		t.Errorf("color = %q, want default %q", got.Color, entity.DefaultCategoryColor)
	}
	if got.UserID != f.userID {
		t.Errorf("category not stamped with owner")
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Errorf("createdAt and updatedAt must match on creation")
	}
}

func TestCreateCategory_PersistenceFailure(t *testing.T) {
	f := newFixture(t)
	f.create(t, "Dev", "#3b82f6")
	f.categories.SetFail(true)

	_, err := NewCreateCategoryUseCase(f.registry).Execute(context.Background(), CreateCategoryInput{
		UserID: f.userID,
		Name:   "AI",
	})
	if !errors.Is(err, domainerror.ErrPersistenceFailed) {
		t.Fatalf("expected persistence error, got %v", err)
	}

	f.categories.SetFail(false)
	list, err := NewListCategoriesUseCase(f.registry).Execute(context.Background(), ListCategoriesInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Categories) != 1 {
		t.Errorf("list must be unchanged after failed add, got %d", len(list.Categories))
	}
}

func TestUpdateCategory(t *testing.T) {
	f := newFixture(t)
	existing := f.create(t, "Dev", "#3b82f6")

	tests := []struct {
		name         string
		input        UpdateCategoryInput
		expectedCode domainerror.CategoryErrorCode
		check        func(t *testing.T, c *entity.Category)
	}{
		{
			name:         "empty patch",
			input:        UpdateCategoryInput{CategoryID: existing.ID},
			expectedCode: domainerror.ErrCodeMissingCategoryPatch,
		},
		{
			name:         "blank name",
			input:        UpdateCategoryInput{CategoryID: existing.ID, Name: strPtr(" ")},
			expectedCode: domainerror.ErrCodeCategoryNameRequired,
		},
		{
			name:         "bad color",
			input:        UpdateCategoryInput{CategoryID: existing.ID, Color: strPtr("#12")},
			expectedCode: domainerror.ErrCodeInvalidColorFormat,
		},
		{
			name:         "unknown id",
			input:        UpdateCategoryInput{CategoryID: uuid.New(), Name: strPtr("X")},
			expectedCode: domainerror.ErrCodeCategoryNotFound,
		},
		{
			name:  "rename keeps color",
			input: UpdateCategoryInput{CategoryID: existing.ID, Name: strPtr("Development")},
			check: func(t *testing.T, c *entity.Category) {
				if c.Name != "Development" || c.Color != "#3b82f6" {
					t.Errorf("unexpected merge result: %+v", c)
				}
				if !c.CreatedAt.Equal(existing.CreatedAt) {
					t.Errorf("createdAt changed")
				}
				if !c.UpdatedAt.After(existing.UpdatedAt) {
					t.Errorf("updatedAt not refreshed")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = f.userID
			out, err := NewUpdateCategoryUseCase(f.registry).Execute(context.Background(), tt.input)
			if tt.expectedCode != "" {
				if code := categoryCode(t, err); code != tt.expectedCode {
					t.Errorf("code = %s, want %s", code, tt.expectedCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, out.Category)
		})
	}
}

func TestDeleteCategory_Guard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.create(t, "Dev", "#3b82f6")

	ws, err := f.registry.Workspace(ctx, f.userID)
	if err != nil {
		t.Fatalf("workspace: %v", err)
	}
	for _, name := range []string{"GitHub", "GitLab"} {
		if _, err := ws.Tools.Add(ctx, entity.ToolDraft{Name: name, URL: "https://example.com", CategoryID: cat.ID, Color: cat.Color}); err != nil {
			t.Fatalf("add tool: %v", err)
		}
	}

	_, err = NewDeleteCategoryUseCase(f.registry).Execute(ctx, DeleteCategoryInput{UserID: f.userID, CategoryID: cat.ID})
	var inUse *domainerror.CategoryInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("expected CategoryInUseError, got %v", err)
	}
	if inUse.Count != 2 {
		t.Errorf("count = %d, want 2", inUse.Count)
	}
	if f.categories.DeleteCalls() != 0 {
		t.Errorf("guard must not reach persistence")
	}

	list, _ := NewListCategoriesUseCase(f.registry).Execute(ctx, ListCategoriesInput{UserID: f.userID})
	if len(list.Categories) != 1 || list.Categories[0].ToolCount != 2 {
		t.Errorf("category must survive with its tools, got %+v", list.Categories)
	}
}

func TestDeleteCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cat := f.create(t, "Empty", "")

	out, err := NewDeleteCategoryUseCase(f.registry).Execute(ctx, DeleteCategoryInput{UserID: f.userID, CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !out.Success {
		t.Errorf("expected success")
	}

	_, err = NewDeleteCategoryUseCase(f.registry).Execute(ctx, DeleteCategoryInput{UserID: f.userID, CategoryID: cat.ID})
	if code := categoryCode(t, err); code != domainerror.ErrCodeCategoryNotFound {
		t.Errorf("second delete code = %s, want not found", code)
	}
}

func TestListCategories_StoredOrder(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"Dev", "AI", "APIs"} {
		f.create(t, name, "")
	}

	out, err := NewListCategoriesUseCase(f.registry).Execute(context.Background(), ListCategoriesInput{UserID: f.userID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var names []string
	for _, c := range out.Categories {
		names = append(names, c.Name)
		if c.Emoji != entity.DefaultCategoryEmoji {
			t.Errorf("emoji = %q, want default glyph", c.Emoji)
		}
	}
	if strings.Join(names, ",") != "Dev,AI,APIs" {
		t.Errorf("order = %v", names)
	}
}

func TestCategoryEmoji_SingleGrapheme(t *testing.T) {
	tests := []struct {
		name    string
		emoji   string
		want    string
		wantErr bool
	}{
		{name: "empty", emoji: "", want: ""},
		{name: "simple emoji", emoji: "🤖", want: "🤖"},
		{name: "trimmed", emoji: "  🎨 ", want: "🎨"},
		{name: "skin tone modifier", emoji: "👍🏽", want: "👍🏽"},
		{name: "zwj family", emoji: "👨‍👩‍👧", want: "👨‍👩‍👧"},
		{name: "flag", emoji: "🇦🇷", want: "🇦🇷"},
		{name: "single letter", emoji: "A", want: "A"},
		{name: "two emoji", emoji: "🤖💻", wantErr: true},
		{name: "word", emoji: "robot", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			out, err := NewCreateCategoryUseCase(f.registry).Execute(context.Background(), CreateCategoryInput{
				UserID: f.userID,
				Name:   "Bucket",
				Emoji:  tt.emoji,
			})
			if tt.wantErr {
				if code := categoryCode(t, err); code != domainerror.ErrCodeInvalidCategoryEmoji {
					t.Errorf("code = %s, want %s", code, domainerror.ErrCodeInvalidCategoryEmoji)
				}
				return
			}
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out.Category.Emoji != tt.want {
				t.Errorf("emoji = %q, want %q", out.Category.Emoji, tt.want)
			}
		})
	}
}

func TestUpdateCategory_RejectsLongEmoji(t *testing.T) {
	f := newFixture(t)
	created := f.create(t, "AI", "")

	_, err := NewUpdateCategoryUseCase(f.registry).Execute(context.Background(), UpdateCategoryInput{
		UserID:     f.userID,
		CategoryID: created.ID,
		Emoji:      strPtr("🤖 bots"),
	})
	if code := categoryCode(t, err); code != domainerror.ErrCodeInvalidCategoryEmoji {
		t.Errorf("code = %s, want %s", code, domainerror.ErrCodeInvalidCategoryEmoji)
	}

	list, _ := NewListCategoriesUseCase(f.registry).Execute(context.Background(), ListCategoriesInput{UserID: f.userID})
	if list.Categories[0].Emoji != entity.DefaultCategoryEmoji {
		t.Errorf("emoji = %q, want the default glyph", list.Categories[0].Emoji)
	}
}
