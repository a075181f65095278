// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toolbox/backend/internal/application/usecase/auth"
	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/entrypoint/dto"
	"github.com/toolbox/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	registerUseCase       *auth.RegisterUserUseCase
	loginUseCase          *auth.LoginUserUseCase
	googleLoginUseCase    *auth.LoginWithGoogleUseCase
	refreshTokenUseCase   *auth.RefreshTokenUseCase
	logoutUseCase         *auth.LogoutUserUseCase
	forgotPasswordUseCase *auth.ForgotPasswordUseCase
	resetPasswordUseCase  *auth.ResetPasswordUseCase
	sessionUseCase        *auth.GetSessionUseCase
}

// AuthUseCases groups the use cases served by AuthController.
type AuthUseCases struct {
	Register       *auth.RegisterUserUseCase
	Login          *auth.LoginUserUseCase
	GoogleLogin    *auth.LoginWithGoogleUseCase
	RefreshToken   *auth.RefreshTokenUseCase
	Logout         *auth.LogoutUserUseCase
	ForgotPassword *auth.ForgotPasswordUseCase
	ResetPassword  *auth.ResetPasswordUseCase
	Session        *auth.GetSessionUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(useCases AuthUseCases) *AuthController {
	return &AuthController{
		registerUseCase:       useCases.Register,
		loginUseCase:          useCases.Login,
		googleLoginUseCase:    useCases.GoogleLogin,
		refreshTokenUseCase:   useCases.RefreshToken,
		logoutUseCase:         useCases.Logout,
		forgotPasswordUseCase: useCases.ForgotPassword,
		resetPasswordUseCase:  useCases.ResetPassword,
		sessionUseCase:        useCases.Session,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respondInvalidBody(ctx)
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		ExpiresAt:    output.ExpiresAt,
		User:         dto.ToUserResponse(output.User),
	})
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respondInvalidBody(ctx)
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		ExpiresAt:    output.ExpiresAt,
		User:         dto.ToUserResponse(output.User),
	})
}

// GoogleLogin handles POST /auth/google requests.
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respondInvalidBody(ctx)
		return
	}

	output, err := c.googleLoginUseCase.Execute(ctx.Request.Context(), auth.LoginWithGoogleInput{
		IDToken:    req.IDToken,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		ExpiresAt:    output.ExpiresAt,
		User:         dto.ToUserResponse(output.User),
		Created:      output.Created,
	})
}

// RefreshToken handles POST /auth/refresh requests.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.refreshTokenUseCase.Execute(ctx.Request.Context(), auth.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		ExpiresAt:    output.ExpiresAt,
	})
}

// Logout handles POST /auth/logout requests.
// The access token, when sent, identifies the session to end even without a refresh token.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	// An unreadable body is treated as a logout without refresh token.
	_ = ctx.ShouldBindJSON(&req)

	input := auth.LogoutUserInput{RefreshToken: req.RefreshToken}
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		input.UserID = userID
	}

	output, err := c.logoutUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// ForgotPassword handles POST /auth/forgot-password requests.
func (c *AuthController) ForgotPassword(ctx *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidEmail),
		})
		return
	}

	output, err := c.forgotPasswordUseCase.Execute(ctx.Request.Context(), auth.ForgotPasswordInput{
		Email: req.Email,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// ResetPassword handles POST /auth/reset-password requests.
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.respondInvalidBody(ctx)
		return
	}

	output, err := c.resetPasswordUseCase.Execute(ctx.Request.Context(), auth.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// Session handles GET /auth/session requests.
func (c *AuthController) Session(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	output, err := c.sessionUseCase.Execute(ctx.Request.Context(), auth.GetSessionInput{UserID: userID})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		User: dto.ToUserResponse(output.User),
	})
}

func (c *AuthController) respondInvalidBody(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body",
		Code:  string(domainerror.ErrCodeMissingFields),
	})
}

// handleAuthError maps AuthError codes to statuses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.getStatusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	var storeErr *domainerror.StoreError
	if errors.As(err, &storeErr) {
		handleUnexpectedError(ctx, err, "auth")
		return
	}

	slog.Error("Authentication failed", "path", ctx.FullPath(), "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Authentication failed",
		Code:  string(domainerror.ErrCodeAuthFailed),
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields,
		domainerror.ErrCodeInvalidResetToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeProviderDisabled:
		return http.StatusServiceUnavailable
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
