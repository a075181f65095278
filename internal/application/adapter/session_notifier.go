package adapter

import (
	"github.com/google/uuid"

	"github.com/toolbox/backend/internal/domain/entity"
)

// SessionNotifier publishes session changes to observers.
type SessionNotifier interface {
	// SignedIn announces that user started a session.
	SignedIn(user *entity.User)

	// SignedOut announces that the user's session ended.
	SignedOut(userID uuid.UUID)
}
