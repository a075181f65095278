package projection

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

func newCategory(name, emoji, color string) *entity.Category {
	return entity.NewCategory(uuid.Nil, entity.CategoryDraft{Name: name, Emoji: emoji, Color: color}, time.Now())
}

func newTool(name, description string, c *entity.Category) *entity.Tool {
	return entity.NewTool(c.UserID, entity.ToolDraft{
		Name:        name,
		URL:         "https://example.com",
		Description: description,
		CategoryID:  c.ID,
		Color:       c.Color,
	}, time.Now())
}

func TestParseViewMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    ViewMode
		wantErr bool
	}{
		{raw: "", want: ModeGrid},
		{raw: "grid", want: ModeGrid},
		{raw: "LIST", want: ModeList},
		{raw: " compact ", want: ModeCompact},
		{raw: "table", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseViewMode(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domainerror.ErrInvalidViewMode) {
					t.Errorf("error = %v, want ErrInvalidViewMode", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseViewMode(%q) = %q, %v; want %q", tt.raw, got, err, tt.want)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	ai := newCategory("AI", "🤖", "#10a37f")
	tools := []*entity.Tool{
		newTool("Claude", "Assistant by Anthropic", ai),
		newTool("ChatGPT", "", ai),
		newTool("Perplexity", "Search engine with AI", ai),
	}

	tests := []struct {
		term string
		want []string
	}{
		{term: "", want: []string{"Claude", "ChatGPT", "Perplexity"}},
		{term: "claude", want: []string{"Claude"}},
		{term: "ANTHROPIC", want: []string{"Claude"}},
		{term: "search", want: []string{"Perplexity"}},
		{term: "c", want: []string{"Claude", "ChatGPT", "Perplexity"}},
		{term: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := Filter(tools, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) len = %d, want %d", tt.term, len(got), len(tt.want))
			}
			for i, tool := range got {
				if tool.Name != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %s, want %s", tt.term, i, tool.Name, tt.want[i])
				}
			}

			again := Filter(got, tt.term)
			if len(again) != len(got) {
				t.Errorf("filter is not idempotent: %d -> %d", len(got), len(again))
			}
		})
	}
}

func TestGroupByCategory(t *testing.T) {
	ai := newCategory("AI", "🤖", "#10a37f")
	ides := newCategory("IDEs", "", "#0078d4")
	empty := newCategory("Empty", "📚", "#ec4899")
	categories := []*entity.Category{ides, ai, empty}
	tools := []*entity.Tool{
		newTool("Claude", "", ai),
		newTool("VS Code", "Editor", ides),
		newTool("Cursor", "AI editor", ides),
	}

	t.Run("groups follow category order and skip empty ones", func(t *testing.T) {
		view := GroupByCategory(tools, categories, "", ModeGrid)
		if view.State != StateReady {
			t.Errorf("State = %s, want %s", view.State, StateReady)
		}
		if len(view.Groups) != 2 {
			t.Fatalf("Groups len = %d, want 2", len(view.Groups))
		}
		if view.Groups[0].Key != ides.ID.String() || view.Groups[1].Key != ai.ID.String() {
			t.Errorf("group order = %s, %s", view.Groups[0].Name, view.Groups[1].Name)
		}
		if view.Groups[0].Emoji != entity.DefaultCategoryEmoji {
			t.Errorf("Emoji = %q, want default glyph", view.Groups[0].Emoji)
		}
		for _, g := range view.Groups {
			if len(g.Items) == 0 {
				t.Errorf("group %s is empty", g.Name)
			}
		}
	})

	t.Run("output is identical across modes", func(t *testing.T) {
		grid := GroupByCategory(tools, categories, "editor", ModeGrid)
		for _, mode := range []ViewMode{ModeList, ModeCompact} {
			other := GroupByCategory(tools, categories, "editor", mode)
			if len(other.Groups) != len(grid.Groups) || other.Matched != grid.Matched {
				t.Errorf("mode %s differs from grid", mode)
			}
		}
	})

	t.Run("no categories", func(t *testing.T) {
		for _, term := range []string{"", "claude"} {
			view := GroupByCategory(tools, nil, term, ModeGrid)
			if view.State != StateNoCategories || len(view.Groups) != 0 {
				t.Errorf("term %q: State = %s, groups = %d", term, view.State, len(view.Groups))
			}
		}
	})

	t.Run("empty catalog and no results are distinct", func(t *testing.T) {
		if got := GroupByCategory(nil, categories, "", ModeGrid).State; got != StateEmptyCatalog {
			t.Errorf("State = %s, want %s", got, StateEmptyCatalog)
		}
		if got := GroupByCategory(tools, categories, "zzz", ModeGrid).State; got != StateNoResults {
			t.Errorf("State = %s, want %s", got, StateNoResults)
		}
	})
}

func TestGroupByCategory_ClaudeScenario(t *testing.T) {
	ai := newCategory("AI", "", "#10a37f")
	claude := entity.NewTool(ai.UserID, entity.ToolDraft{
		Name:       "Claude",
		URL:        "https://claude.ai",
		CategoryID: ai.ID,
		Color:      ai.Color,
	}, time.Now())

	view := GroupByCategory([]*entity.Tool{claude}, []*entity.Category{ai}, "claude", ModeGrid)
	if len(view.Groups) != 1 || view.Groups[0].Name != "AI" {
		t.Fatalf("Groups = %+v, want one AI group", view.Groups)
	}
	if len(view.Groups[0].Items) != 1 || view.Groups[0].Items[0].Name != "Claude" {
		t.Errorf("Items = %+v, want [Claude]", view.Groups[0].Items)
	}

	if got := GroupByCategory([]*entity.Tool{claude}, []*entity.Category{ai}, "zzz", ModeGrid); len(got.Groups) != 0 {
		t.Errorf("zzz: Groups len = %d, want 0", len(got.Groups))
	}
}

func TestGroupByLabel(t *testing.T) {
	t.Run("sample catalog groups by first-seen label", func(t *testing.T) {
		view := GroupByLabel(entity.SampleCatalog(), "", ModeGrid)
		want := []string{"🤖 IA", "💻 IDEs", "🎨 Diseño", "🔌 APIs", "⚡ Terminal"}
		if len(view.Groups) != len(want) {
			t.Fatalf("Groups len = %d, want %d", len(view.Groups), len(want))
		}
		for i, g := range view.Groups {
			if g.Name != want[i] {
				t.Errorf("Groups[%d] = %s, want %s", i, g.Name, want[i])
			}
		}
		if view.Groups[0].Color != "#10a37f" {
			t.Errorf("IA color = %s, want color of the first IA sample", view.Groups[0].Color)
		}
		if view.Matched != 15 {
			t.Errorf("Matched = %d, want 15", view.Matched)
		}
	})

	t.Run("search narrows groups", func(t *testing.T) {
		view := GroupByLabel(entity.SampleCatalog(), "ide", ModeList)
		for _, g := range view.Groups {
			for _, s := range g.Items {
				if !strings.Contains(strings.ToLower(s.Name+" "+s.Description), "ide") {
					t.Errorf("%s does not match", s.Name)
				}
			}
		}
	})

	t.Run("missing color falls back to default", func(t *testing.T) {
		samples := []entity.SampleTool{{Name: "Thing", Label: "Misc"}}
		view := GroupByLabel(samples, "", ModeGrid)
		if view.Groups[0].Color != entity.DefaultSampleGroupColor {
			t.Errorf("Color = %s, want %s", view.Groups[0].Color, entity.DefaultSampleGroupColor)
		}
	})

	t.Run("no results", func(t *testing.T) {
		view := GroupByLabel(entity.SampleCatalog(), "zzz", ModeGrid)
		if view.State != StateNoResults || len(view.Groups) != 0 {
			t.Errorf("State = %s, groups = %d", view.State, len(view.Groups))
		}
	})
}

func TestInitialAndTruncate(t *testing.T) {
	if got := Initial("figma"); got != "F" {
		t.Errorf("Initial(figma) = %q", got)
	}
	if got := Initial(""); got != "?" {
		t.Errorf("Initial(\"\") = %q", got)
	}
	if got := Initial("ñandú"); got != "Ñ" {
		t.Errorf("Initial(ñandú) = %q", got)
	}

	short := "Cliente REST"
	if got := Truncate(short, DefaultTruncateLength); got != short {
		t.Errorf("Truncate(short) = %q", got)
	}
	long := strings.Repeat("a", 120)
	if got := Truncate(long, DefaultTruncateLength); got != strings.Repeat("a", 100)+"..." {
		t.Errorf("Truncate(long) len = %d", len(got))
	}
}
