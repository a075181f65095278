package adapter

import (
	"context"

	"github.com/google/uuid"
)

// CategoryCandidate is a user category offered to the suggester.
type CategoryCandidate struct {
	ID        uuid.UUID
	Name      string
	Emoji     string
	ToolNames []string
}

// CategorySuggestionRequest describes a tool draft to place in one of the candidates.
type CategorySuggestionRequest struct {
	Name        string
	URL         string
	Description string
	Candidates  []*CategoryCandidate
}

// CategorySuggestion is the suggester's pick.
type CategorySuggestion struct {
	CategoryID uuid.UUID
	Confidence float64
	Reasoning  string
}

// CategorySuggester picks the best category for a tool draft.
type CategorySuggester interface {
	// Suggest returns the best candidate for the draft.
	Suggest(ctx context.Context, request *CategorySuggestionRequest) (*CategorySuggestion, error)

	// IsAvailable checks if the suggester is configured.
	IsAvailable() bool
}
