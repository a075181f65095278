package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/toolbox/backend/internal/application/adapter"
)

const defaultGeminiModel = "gemini-2.5-flash-lite"

// GeminiSuggester picks a category for a tool draft using Google Gemini.
type GeminiSuggester struct {
	apiKey    string
	modelName string
}

// NewGeminiSuggester creates a suggester. An empty apiKey leaves it unavailable.
func NewGeminiSuggester(apiKey, modelName string) *GeminiSuggester {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiSuggester{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable reports whether an API key is configured.
func (s *GeminiSuggester) IsAvailable() bool {
	return s.apiKey != ""
}

// Suggest asks the model to place the draft in one of the candidate categories.
func (s *GeminiSuggester) Suggest(ctx context.Context, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	if !s.IsAvailable() {
		return nil, errors.New("gemini suggester is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(buildSuggestionPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseSuggestion(text, request)
}

func buildSuggestionPrompt(request *adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You organize a personal toolbox of bookmarked web tools into categories.
Pick the ONE existing category that best fits the new tool below. Never invent a category.

CATEGORIES:
`)
	for _, c := range request.Candidates {
		fmt.Fprintf(&sb, "- ID: %s, Name: %s %s", c.ID, c.Emoji, c.Name)
		if len(c.ToolNames) > 0 {
			fmt.Fprintf(&sb, ", Examples: %s", strings.Join(c.ToolNames, ", "))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nNEW TOOL:\n")
	fmt.Fprintf(&sb, "- Name: %q\n- URL: %q\n", request.Name, request.URL)
	if request.Description != "" {
		fmt.Fprintf(&sb, "- Description: %q\n", request.Description)
	}

	sb.WriteString(`
Respond with a single JSON object and nothing else:
{
  "category_id": "id of the chosen category",
  "confidence": 0.0-1.0,
  "reasoning": "one short sentence"
}
`)
	return sb.String()
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty response from gemini")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && text != "" {
			return string(text), nil
		}
	}
	return "", errors.New("no text content in response")
}

type geminiSuggestion struct {
	CategoryID string  `json:"category_id"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// parseSuggestion decodes the model output and checks the pick against the candidates.
func parseSuggestion(text string, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestion, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiSuggestion
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	categoryID, err := uuid.Parse(raw.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id %q: %w", raw.CategoryID, err)
	}

	known := false
	for _, c := range request.Candidates {
		if c.ID == categoryID {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("model picked unknown category %s", categoryID)
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	return &adapter.CategorySuggestion{
		CategoryID: categoryID,
		Confidence: confidence,
		Reasoning:  raw.Reasoning,
	}, nil
}

var _ adapter.CategorySuggester = (*GeminiSuggester)(nil)
