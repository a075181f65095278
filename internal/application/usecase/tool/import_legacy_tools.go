package tool

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/store"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// ImportLegacyToolsInput carries the "user-tools" array of the local-storage
// version of the app.
type ImportLegacyToolsInput struct {
	UserID uuid.UUID
	Tools  []entity.LegacyTool
}

// ImportFailure describes a record that could not be imported.
type ImportFailure struct {
	Index  int
	Name   string
	Reason string
}

// ImportLegacyToolsOutput summarizes an import.
type ImportLegacyToolsOutput struct {
	CategoriesCreated int
	ToolsImported     int
	Failures          []ImportFailure
}

// ImportLegacyToolsUseCase moves local-storage tools into the user's workspace.
// Legacy category values become real categories, reused by name when present.
type ImportLegacyToolsUseCase struct {
	workspaces store.WorkspaceProvider
}

// NewImportLegacyToolsUseCase creates a new ImportLegacyToolsUseCase instance.
func NewImportLegacyToolsUseCase(workspaces store.WorkspaceProvider) *ImportLegacyToolsUseCase {
	return &ImportLegacyToolsUseCase{
		workspaces: workspaces,
	}
}

// Execute imports every record it can and reports the rest as failures.
// A persistence failure aborts the import; records imported so far stay.
func (uc *ImportLegacyToolsUseCase) Execute(ctx context.Context, input ImportLegacyToolsInput) (*ImportLegacyToolsOutput, error) {
	if len(input.Tools) == 0 {
		return nil, domainerror.NewToolError(
			domainerror.ErrCodeImportEmpty,
			"nothing to import",
			nil,
		)
	}

	ws, err := uc.workspaces.Workspace(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ImportLegacyToolsOutput{}
	resolved := make(map[string]*entity.Category)

	for i, record := range input.Tools {
		draft, err := validateDraft(record.Name, record.URL, record.Description, "")
		if err != nil {
			output.Failures = append(output.Failures, ImportFailure{Index: i, Name: record.Name, Reason: failureReason(err)})
			continue
		}

		legacy := entity.LookupLegacyCategory(record.Category)
		category, ok := resolved[legacy.Value]
		if !ok {
			var created bool
			category, created, err = resolveCategory(ctx, ws, legacy)
			if err != nil {
				slog.Warn("Legacy import aborted", "user_id", input.UserID, "imported", output.ToolsImported, "error", err)
				return output, err
			}
			if created {
				output.CategoriesCreated++
			}
			resolved[legacy.Value] = category
		}

		draft.CategoryID = category.ID
		if entity.IsValidHexColor(record.Color) {
			draft.Color = record.Color
		}
		draft.AddedAt = record.AddedTime()

		if _, err := ws.AddTool(ctx, draft); err != nil {
			if errors.Is(err, domainerror.ErrToolCategoryRequired) {
				// The category was removed mid-import; resolve it again for later records.
				delete(resolved, legacy.Value)
				output.Failures = append(output.Failures, ImportFailure{Index: i, Name: record.Name, Reason: failureReason(categoryRequiredError())})
				continue
			}
			slog.Warn("Legacy import aborted", "user_id", input.UserID, "imported", output.ToolsImported, "error", err)
			return output, err
		}
		output.ToolsImported++
	}

	slog.Info("Legacy tools imported",
		"user_id", input.UserID,
		"tools", output.ToolsImported,
		"categories_created", output.CategoriesCreated,
		"failures", len(output.Failures),
	)
	return output, nil
}

// resolveCategory reuses the category named like the legacy label or creates it.
func resolveCategory(ctx context.Context, ws *store.Workspace, legacy entity.LegacyCategory) (*entity.Category, bool, error) {
	draft := legacy.Draft()
	if existing, ok := ws.Categories.FindByName(draft.Name); ok {
		return existing, false, nil
	}
	created, err := ws.Categories.Add(ctx, draft)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func failureReason(err error) string {
	var toolErr *domainerror.ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Message
	}
	return err.Error()
}
