package preference

import (
	"context"
	"log/slog"
	"time"

	"github.com/toolbox/backend/internal/application/adapter"
	"github.com/toolbox/backend/internal/domain/entity"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

// InstallPromptInput identifies the owner of the prompt state.
type InstallPromptInput struct {
	Owner string
}

// InstallPromptStatusUseCase reports whether the install prompt may be shown.
type InstallPromptStatusUseCase struct {
	prefRepo adapter.PreferenceRepository
	now      func() time.Time
}

// NewInstallPromptStatusUseCase creates a new InstallPromptStatusUseCase instance.
func NewInstallPromptStatusUseCase(prefRepo adapter.PreferenceRepository) *InstallPromptStatusUseCase {
	return &InstallPromptStatusUseCase{
		prefRepo: prefRepo,
		now:      time.Now,
	}
}

// Execute evaluates the dismissal cooldown.
func (uc *InstallPromptStatusUseCase) Execute(ctx context.Context, input InstallPromptInput) (*entity.InstallPromptStatus, error) {
	if err := requireOwner(input.Owner); err != nil {
		return nil, err
	}

	prefs, err := uc.prefRepo.Get(ctx, input.Owner)
	if err != nil {
		slog.Error("Failed to read preferences", "owner", input.Owner, "error", err)
		return nil, domainerror.NewStoreError("load preferences", err)
	}

	status := prefs.InstallPrompt(uc.now())
	return &status, nil
}

// DismissInstallPromptUseCase records a dismissal.
type DismissInstallPromptUseCase struct {
	prefRepo adapter.PreferenceRepository
	now      func() time.Time
}

// NewDismissInstallPromptUseCase creates a new DismissInstallPromptUseCase instance.
func NewDismissInstallPromptUseCase(prefRepo adapter.PreferenceRepository) *DismissInstallPromptUseCase {
	return &DismissInstallPromptUseCase{
		prefRepo: prefRepo,
		now:      time.Now,
	}
}

// Execute stores now as the dismissal time and returns the resulting status.
func (uc *DismissInstallPromptUseCase) Execute(ctx context.Context, input InstallPromptInput) (*entity.InstallPromptStatus, error) {
	if err := requireOwner(input.Owner); err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	if err := uc.prefRepo.SetInstallPromptDismissedAt(ctx, input.Owner, now); err != nil {
		slog.Error("Failed to store install prompt dismissal", "owner", input.Owner, "error", err)
		return nil, domainerror.NewStoreError("dismiss install prompt", err)
	}

	prefs := entity.Preferences{Owner: input.Owner, InstallPromptDismissedAt: &now}
	status := prefs.InstallPrompt(now)
	return &status, nil
}
