package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/usecase/tool"
	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/entrypoint/dto"
)

// ToolController handles tool endpoints.
type ToolController struct {
	listUseCase    *tool.ListToolsUseCase
	createUseCase  *tool.CreateToolUseCase
	updateUseCase  *tool.UpdateToolUseCase
	deleteUseCase  *tool.DeleteToolUseCase
	importUseCase  *tool.ImportLegacyToolsUseCase
	suggestUseCase *tool.SuggestCategoryUseCase
}

// ToolUseCases groups the use cases served by ToolController.
type ToolUseCases struct {
	List    *tool.ListToolsUseCase
	Create  *tool.CreateToolUseCase
	Update  *tool.UpdateToolUseCase
	Delete  *tool.DeleteToolUseCase
	Import  *tool.ImportLegacyToolsUseCase
	Suggest *tool.SuggestCategoryUseCase
}

// NewToolController creates a new tool controller instance.
func NewToolController(useCases ToolUseCases) *ToolController {
	return &ToolController{
		listUseCase:    useCases.List,
		createUseCase:  useCases.Create,
		updateUseCase:  useCases.Update,
		deleteUseCase:  useCases.Delete,
		importUseCase:  useCases.Import,
		suggestUseCase: useCases.Suggest,
	}
}

// List handles GET /tools requests. An optional category_id query narrows the list.
func (c *ToolController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	input := tool.ListToolsInput{UserID: userID}
	if raw := ctx.Query("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
				Code:  string(domainerror.ErrCodeToolCategoryRequired),
			})
			return
		}
		input.CategoryID = &categoryID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleToolError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToToolListResponse(output.Tools))
}

// Create handles POST /tools requests.
func (c *ToolController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeToolNameRequired),
		})
		return
	}

	// An unparsable id is reported the same way as an unknown one.
	categoryID, _ := uuid.Parse(req.CategoryID)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), tool.CreateToolInput{
		UserID:      userID,
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		CategoryID:  categoryID,
		Color:       req.Color,
	})
	if err != nil {
		c.handleToolError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToToolResponse(output.Tool))
}

// Update handles PATCH /tools/:id requests.
func (c *ToolController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	toolID, ok := parseIDParam(ctx, "tool", string(domainerror.ErrCodeToolNotFound))
	if !ok {
		return
	}

	var req dto.UpdateToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingToolPatch),
		})
		return
	}

	input := tool.UpdateToolInput{
		UserID:      userID,
		ToolID:      toolID,
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Color:       req.Color,
	}
	if req.CategoryID != nil {
		categoryID, _ := uuid.Parse(*req.CategoryID)
		input.CategoryID = &categoryID
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleToolError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToToolResponse(output.Tool))
}

// Delete handles DELETE /tools/:id requests.
func (c *ToolController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	toolID, ok := parseIDParam(ctx, "tool", string(domainerror.ErrCodeToolNotFound))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), tool.DeleteToolInput{
		UserID: userID,
		ToolID: toolID,
	}); err != nil {
		c.handleToolError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Import handles POST /tools/import requests carrying the legacy "user-tools" array.
func (c *ToolController) Import(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req []dto.LegacyToolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Request body must be a JSON array of tools",
			Code:  string(domainerror.ErrCodeImportEmpty),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), tool.ImportLegacyToolsInput{
		UserID: userID,
		Tools:  dto.ToLegacyTools(req),
	})
	if err != nil {
		c.handleToolError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToImportToolsResponse(output))
}

// SuggestCategory handles POST /tools/suggest-category requests.
func (c *ToolController) SuggestCategory(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.SuggestCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Tool name is required",
			Code:  string(domainerror.ErrCodeToolNameRequired),
		})
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), tool.SuggestCategoryInput{
		UserID:      userID,
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		c.handleToolError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   dto.ToCategoryResponse(output.Category),
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}

// handleToolError maps tool errors to HTTP responses.
func (c *ToolController) handleToolError(ctx *gin.Context, err error) {
	var toolErr *domainerror.ToolError
	if errors.As(err, &toolErr) {
		ctx.JSON(c.getStatusCodeForToolError(toolErr.Code), dto.ErrorResponse{
			Error: toolErr.Message,
			Code:  string(toolErr.Code),
		})
		return
	}

	handleUnexpectedError(ctx, err, "tool")
}

// getStatusCodeForToolError maps tool error codes to HTTP status codes.
func (c *ToolController) getStatusCodeForToolError(code domainerror.ToolErrorCode) int {
	switch code {
	case domainerror.ErrCodeToolNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeSuggestionUnavailable:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeToolNameRequired,
		domainerror.ErrCodeToolNameTooLong,
		domainerror.ErrCodeToolURLRequired,
		domainerror.ErrCodeToolCategoryRequired,
		domainerror.ErrCodeInvalidToolColor,
		domainerror.ErrCodeMissingToolPatch,
		domainerror.ErrCodeImportEmpty:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
