package tool

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/application/store"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// maxSampleToolNames bounds how many tool names per category are sent to the model.
const maxSampleToolNames = 5

// SuggestCategoryInput describes the tool draft to place.
type SuggestCategoryInput struct {
	UserID      uuid.UUID
	Name        string
	URL         string
	Description string
}

// SuggestCategoryOutput carries the suggested category.
type SuggestCategoryOutput struct {
	Category   *entity.Category
	Confidence float64
	Reasoning  string
}

// SuggestCategoryUseCase asks the configured suggester to pick one of the user's categories.
type SuggestCategoryUseCase struct {
	workspaces store.WorkspaceProvider
	suggester  adapter.CategorySuggester
}

// NewSuggestCategoryUseCase creates a new SuggestCategoryUseCase instance.
// suggester may be nil when the feature is not configured.
func NewSuggestCategoryUseCase(workspaces store.WorkspaceProvider, suggester adapter.CategorySuggester) *SuggestCategoryUseCase {
	return &SuggestCategoryUseCase{
		workspaces: workspaces,
		suggester:  suggester,
	}
}

// Execute returns the suggestion. The tool itself is not created.
func (uc *SuggestCategoryUseCase) Execute(ctx context.Context, input SuggestCategoryInput) (*SuggestCategoryOutput, error) {
	if uc.suggester == nil || !uc.suggester.IsAvailable() {
		return nil, unavailableError()
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, nameRequiredError()
	}

	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	categories := ws.Categories.List()
	if len(categories) == 0 {
		return nil, categoryRequiredError()
	}

	// Build candidates with a few example tool names each
	candidates := make([]*adapter.CategoryCandidate, len(categories))
	byID := make(map[uuid.UUID]*adapter.CategoryCandidate, len(categories))
	for i, c := range categories {
		candidates[i] = &adapter.CategoryCandidate{ID: c.ID, Name: c.Name, Emoji: c.Emoji}
		byID[c.ID] = candidates[i]
	}
	for _, t := range ws.Tools.List() {
		if candidate, ok := byID[t.CategoryID]; ok && len(candidate.ToolNames) < maxSampleToolNames {
			candidate.ToolNames = append(candidate.ToolNames, t.Name)
		}
	}

	suggestion, err := uc.suggester.Suggest(ctx, &adapter.CategorySuggestionRequest{
		Name:        name,
		URL:         strings.TrimSpace(input.URL),
		Description: strings.TrimSpace(input.Description),
		Candidates:  candidates,
	})
	if err != nil {
		slog.Warn("Category suggestion failed", "user_id", input.UserID, "error", err)
		return nil, unavailableError()
	}

	category, ok := ws.Categories.Get(suggestion.CategoryID)
	if !ok {
		slog.Warn("Suggester picked an unknown category", "user_id", input.UserID, "category_id", suggestion.CategoryID)
		return nil, unavailableError()
	}

	return &SuggestCategoryOutput{
		Category:   category,
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}, nil
}

func unavailableError() error {
	return domainerror.NewToolError(
		domainerror.ErrCodeSuggestionUnavailable,
		"category suggestion is unavailable",
		domainerror.ErrSuggestionUnavailable,
	)
}
