package dto

import (
	"time"

	"github.com/toolbox/backend/internal/application/projection"
	"github.com/toolbox/backend/internal/application/usecase/tool"
	"github.com/toolbox/backend/internal/domain/entity"
)

// CreateToolRequest represents the request body for tool creation.
type CreateToolRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url" binding:"max=2048"`
	Description string `json:"description,omitempty" binding:"max=1000"`
	CategoryID  string `json:"category_id"`
	Color       string `json:"color,omitempty"`
}

// UpdateToolRequest represents the request body for tool update.
type UpdateToolRequest struct {
	Name        *string `json:"name,omitempty"`
	URL         *string `json:"url,omitempty" binding:"omitempty,max=2048"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	CategoryID  *string `json:"category_id,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// ToolResponse represents a single tool in API responses.
type ToolResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Initial     string    `json:"initial"`
	ValidURL    bool      `json:"valid_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToolListResponse represents the list of tools.
type ToolListResponse struct {
	Tools []ToolResponse `json:"tools"`
	Total int            `json:"total"`
}

// ToToolResponse converts use case output to a ToolResponse DTO.
func ToToolResponse(t *tool.ToolOutput) ToolResponse {
	return ToolResponse{
		ID:          t.ID.String(),
		CategoryID:  t.CategoryID.String(),
		Name:        t.Name,
		URL:         t.URL,
		Description: t.Description,
		Color:       t.Color,
		Initial:     projection.Initial(t.Name),
		ValidURL:    t.ValidURL,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToToolListResponse converts a list of tools.
func ToToolListResponse(tools []*tool.ToolOutput) ToolListResponse {
	resp := ToolListResponse{
		Tools: make([]ToolResponse, len(tools)),
		Total: len(tools),
	}
	for i, t := range tools {
		resp.Tools[i] = ToToolResponse(t)
	}
	return resp
}

// LegacyToolRequest is one record of the local-storage "user-tools" array.
type LegacyToolRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Color       string `json:"color"`
	AddedAt     string `json:"addedAt"`
}

// ToLegacyTools converts the import payload to domain records.
func ToLegacyTools(reqs []LegacyToolRequest) []entity.LegacyTool {
	tools := make([]entity.LegacyTool, len(reqs))
	for i, r := range reqs {
		tools[i] = entity.LegacyTool{
			Name:        r.Name,
			URL:         r.URL,
			Description: r.Description,
			Category:    r.Category,
			Color:       r.Color,
			AddedAt:     r.AddedAt,
		}
	}
	return tools
}

// ImportFailureResponse describes a record that could not be imported.
type ImportFailureResponse struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// ImportToolsResponse summarizes a legacy import.
type ImportToolsResponse struct {
	CategoriesCreated int                     `json:"categories_created"`
	ToolsImported     int                     `json:"tools_imported"`
	Failures          []ImportFailureResponse `json:"failures"`
}

// ToImportToolsResponse converts the import output.
func ToImportToolsResponse(out *tool.ImportLegacyToolsOutput) ImportToolsResponse {
	resp := ImportToolsResponse{
		CategoriesCreated: out.CategoriesCreated,
		ToolsImported:     out.ToolsImported,
		Failures:          make([]ImportFailureResponse, len(out.Failures)),
	}
	for i, f := range out.Failures {
		resp.Failures[i] = ImportFailureResponse{Index: f.Index, Name: f.Name, Reason: f.Reason}
	}
	return resp
}

// SuggestCategoryRequest describes a tool draft to classify.
type SuggestCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// SuggestCategoryResponse is the suggested category for a draft.
type SuggestCategoryResponse struct {
	Category   CategoryResponse `json:"category"`
	Confidence float64          `json:"confidence"`
	Reasoning  string           `json:"reasoning,omitempty"`
}
