package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/usecase/preference"
	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/entrypoint/dto"
	"github.com/toolbox/backend/internal/integration/entrypoint/middleware"
)

const (
	// DeviceIDHeader identifies a signed-out browser.
	DeviceIDHeader = "X-Device-ID"
	// ColorSchemeHeader is the client hint carrying the platform color scheme.
	ColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"
)

// PreferenceController handles theme and install prompt endpoints.
// Signed-in users own their preferences; anonymous callers are keyed by device id.
type PreferenceController struct {
	getThemeUseCase      *preference.GetThemeUseCase
	setThemeUseCase      *preference.SetThemeUseCase
	toggleThemeUseCase   *preference.ToggleThemeUseCase
	promptStatusUseCase  *preference.InstallPromptStatusUseCase
	dismissPromptUseCase *preference.DismissInstallPromptUseCase
}

// PreferenceUseCases groups the use cases served by PreferenceController.
type PreferenceUseCases struct {
	GetTheme      *preference.GetThemeUseCase
	SetTheme      *preference.SetThemeUseCase
	ToggleTheme   *preference.ToggleThemeUseCase
	PromptStatus  *preference.InstallPromptStatusUseCase
	DismissPrompt *preference.DismissInstallPromptUseCase
}

// NewPreferenceController creates a new preference controller instance.
func NewPreferenceController(useCases PreferenceUseCases) *PreferenceController {
	return &PreferenceController{
		getThemeUseCase:      useCases.GetTheme,
		setThemeUseCase:      useCases.SetTheme,
		toggleThemeUseCase:   useCases.ToggleTheme,
		promptStatusUseCase:  useCases.PromptStatus,
		dismissPromptUseCase: useCases.DismissPrompt,
	}
}

// GetTheme handles GET /preferences/theme requests.
func (c *PreferenceController) GetTheme(ctx *gin.Context) {
	owner, ok := c.resolveOwner(ctx)
	if !ok {
		return
	}

	output, err := c.getThemeUseCase.Execute(ctx.Request.Context(), preference.GetThemeInput{
		Owner:       owner,
		ColorScheme: ctx.GetHeader(ColorSchemeHeader),
	})
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ThemeResponse{Theme: string(output.Theme), Seeded: output.Seeded})
}

// SetTheme handles PUT /preferences/theme requests.
func (c *PreferenceController) SetTheme(ctx *gin.Context) {
	owner, ok := c.resolveOwner(ctx)
	if !ok {
		return
	}

	var req dto.SetThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Theme must be light or dark",
			Code:  string(domainerror.ErrCodeInvalidTheme),
		})
		return
	}

	output, err := c.setThemeUseCase.Execute(ctx.Request.Context(), preference.SetThemeInput{
		Owner: owner,
		Theme: req.Theme,
	})
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ThemeResponse{Theme: string(output.Theme)})
}

// ToggleTheme handles POST /preferences/theme/toggle requests.
func (c *PreferenceController) ToggleTheme(ctx *gin.Context) {
	owner, ok := c.resolveOwner(ctx)
	if !ok {
		return
	}

	output, err := c.toggleThemeUseCase.Execute(ctx.Request.Context(), preference.ToggleThemeInput{
		Owner:       owner,
		ColorScheme: ctx.GetHeader(ColorSchemeHeader),
	})
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ThemeResponse{Theme: string(output.Theme)})
}

// InstallPrompt handles GET /preferences/install-prompt requests.
func (c *PreferenceController) InstallPrompt(ctx *gin.Context) {
	owner, ok := c.resolveOwner(ctx)
	if !ok {
		return
	}

	status, err := c.promptStatusUseCase.Execute(ctx.Request.Context(), preference.InstallPromptInput{Owner: owner})
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstallPromptResponse(status))
}

// DismissInstallPrompt handles POST /preferences/install-prompt/dismiss requests.
func (c *PreferenceController) DismissInstallPrompt(ctx *gin.Context) {
	owner, ok := c.resolveOwner(ctx)
	if !ok {
		return
	}

	status, err := c.dismissPromptUseCase.Execute(ctx.Request.Context(), preference.InstallPromptInput{Owner: owner})
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInstallPromptResponse(status))
}

func (c *PreferenceController) resolveOwner(ctx *gin.Context) (string, bool) {
	var userID *uuid.UUID
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		userID = &id
	}

	owner, err := preference.ResolveOwner(userID, ctx.GetHeader(DeviceIDHeader))
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return "", false
	}
	return owner, true
}

// handlePreferenceError maps preference errors to HTTP responses.
func (c *PreferenceController) handlePreferenceError(ctx *gin.Context, err error) {
	var prefErr *domainerror.PreferenceError
	if errors.As(err, &prefErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: prefErr.Message,
			Code:  string(prefErr.Code),
		})
		return
	}

	handleUnexpectedError(ctx, err, "preference")
}
