package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toolbox/backend/internal/application/usecase/category"
	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{UserID: userID})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCategoryNameRequired),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID: userID,
		Name:   req.Name,
		Emoji:  req.Emoji,
		Color:  req.Color,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	categoryID, ok := parseIDParam(ctx, "category", string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCategoryPatch),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
		Name:       req.Name,
		Emoji:      req.Emoji,
		Color:      req.Color,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	categoryID, ok := parseIDParam(ctx, "category", string(domainerror.ErrCodeCategoryNotFound))
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), category.DeleteCategoryInput{
		UserID:     userID,
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var inUse *domainerror.CategoryInUseError
	if errors.As(err, &inUse) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Category still has tools",
			Code:  string(domainerror.ErrCodeCategoryInUse),
			Details: map[string]any{
				"category_id":    inUse.CategoryID.String(),
				"blocking_tools": inUse.Count,
			},
		})
		return
	}

	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	handleUnexpectedError(ctx, err, "category")
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryInUse:
		return http.StatusConflict
	case domainerror.ErrCodeCategoryNameRequired,
		domainerror.ErrCodeCategoryNameTooLong,
		domainerror.ErrCodeInvalidColorFormat,
		domainerror.ErrCodeInvalidCategoryEmoji,
		domainerror.ErrCodeMissingCategoryPatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
