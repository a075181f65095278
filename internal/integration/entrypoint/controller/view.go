package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toolbox/backend/internal/application/usecase/view"
	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/entrypoint/dto"
)

// ViewController serves the grouped projections and the picker palette.
type ViewController struct {
	viewUseCase    *view.GetViewUseCase
	catalogUseCase *view.GetCatalogUseCase
	paletteUseCase *view.GetPaletteUseCase
}

// NewViewController creates a new view controller instance.
func NewViewController(
	viewUseCase *view.GetViewUseCase,
	catalogUseCase *view.GetCatalogUseCase,
	paletteUseCase *view.GetPaletteUseCase,
) *ViewController {
	return &ViewController{
		viewUseCase:    viewUseCase,
		catalogUseCase: catalogUseCase,
		paletteUseCase: paletteUseCase,
	}
}

// View handles GET /view requests.
func (c *ViewController) View(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.viewUseCase.Execute(ctx.Request.Context(), view.GetViewInput{
		UserID: userID,
		Search: ctx.Query("search"),
		Mode:   ctx.Query("mode"),
	})
	if err != nil {
		c.handleViewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToToolViewResponse(output.View))
}

// Catalog handles GET /catalog requests.
func (c *ViewController) Catalog(ctx *gin.Context) {
	output, err := c.catalogUseCase.Execute(ctx.Request.Context(), view.GetCatalogInput{
		Search: ctx.Query("search"),
		Mode:   ctx.Query("mode"),
	})
	if err != nil {
		c.handleViewError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCatalogViewResponse(output.View))
}

// Palette handles GET /palette requests.
func (c *ViewController) Palette(ctx *gin.Context) {
	output := c.paletteUseCase.Execute()
	ctx.JSON(http.StatusOK, dto.PaletteResponse{
		Colors:       output.Colors,
		Emojis:       output.Emojis,
		DefaultColor: output.DefaultColor,
		DefaultEmoji: output.DefaultEmoji,
	})
}

func (c *ViewController) handleViewError(ctx *gin.Context, err error) {
	if errors.Is(err, domainerror.ErrInvalidViewMode) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Mode must be grid, list or compact",
			Code:  domainerror.ErrCodeInvalidViewMode,
		})
		return
	}

	handleUnexpectedError(ctx, err, "view")
}
