package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// GetSessionInput identifies the authenticated caller.
type GetSessionInput struct {
	UserID uuid.UUID
}

// GetSessionOutput carries the signed-in user.
type GetSessionOutput struct {
	User *entity.User
}

// GetSessionUseCase returns the user behind a valid access token.
type GetSessionUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(userRepo adapter.UserRepository) *GetSessionUseCase {
	return &GetSessionUseCase{
		userRepo: userRepo,
	}
}

// Execute loads the user.
func (uc *GetSessionUseCase) Execute(ctx context.Context, input GetSessionInput) (*GetSessionOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, err)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &GetSessionOutput{User: user}, nil
}
