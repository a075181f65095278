package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/toolbox/backend/internal/domain/error"
	"github.com/toolbox/backend/internal/integration/entrypoint/dto"
	"github.com/toolbox/backend/internal/integration/entrypoint/middleware"
)

// requireUserID reads the authenticated user or answers 401.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses the :id path parameter or answers 400 with code.
func parseIDParam(ctx *gin.Context, what, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + what + " ID format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleUnexpectedError answers errors no controller-specific mapping matched.
// Persistence failures and cancelled requests are 503, anything else 500.
func handleUnexpectedError(ctx *gin.Context, err error, action string) {
	var storeErr *domainerror.StoreError
	switch {
	case errors.As(err, &storeErr):
		slog.Warn("Persistence failure", "action", action, "error", err)
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Storage is temporarily unavailable",
			Code:  domainerror.ErrCodePersistenceFailed,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Request was cancelled",
		})
	default:
		slog.Error("Unexpected error", "action", action, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
