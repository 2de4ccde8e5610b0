package onboarding

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastbuka/rider/services/onboarding OnboardingUC

// OnboardingUC is the five stage rider registration wizard
type OnboardingUC interface {
	// Next validates the current stage and advances when it passes.
	// The returned result is empty on success.
	Next() ValidationResult
	// Back moves one stage back without validating; false at the first stage
	Back() bool
	// JumpTo moves to an already reached stage; false when rejected
	JumpTo(stage Stage) bool
	// Submit validates the agreement stage, uploads local media and registers the rider.
	// Validation failures are reported in SubmitResult.Validation with a nil error.
	Submit(ctx context.Context) (*SubmitResult, error)
	VerifyEmail(ctx context.Context, email, code string) error

	Edit(fn func(app *models.RiderApplication))
	Draft() models.RiderApplication
	State() State
	StageInfo() []StageInfo
	Progress() float64
	Subscribe() (<-chan State, func())
	Reset()
}

// State is the observable wizard state
type State struct {
	Stage      Stage
	Completed  [StageCount]bool
	Errors     ValidationResult
	Submitting bool
}

// IsCompleted reports whether stage passed validation
func (s State) IsCompleted(stage Stage) bool {
	if !stage.Valid() {
		return false
	}
	return s.Completed[stage-1]
}

// StageInfo describes one stage for a progress indicator
type StageInfo struct {
	Stage     Stage
	Name      string
	Completed bool
	Current   bool
	Reachable bool
}

// SubmitResult is the outcome of a Submit call that reached validation
type SubmitResult struct {
	Validation   ValidationResult
	Registration *models.RegistrationResult
	// NavigateToLogin is set after a successful registration
	NavigateToLogin bool
}
