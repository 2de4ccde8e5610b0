package usecase

import (
	"sync"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/pkg/observable"
	"github.com/fastbuka/rider/services/onboarding"
	"github.com/fastbuka/rider/services/onboarding/rules"
)

type OnboardingUC struct {
	onboardingGW onboarding.OnboardingGW
	uploader     onboarding.MediaUploader
	validator    *rules.Validator

	mu    sync.Mutex
	draft models.RiderApplication
	state onboarding.State
	// uploaded caches local path -> public id so a retried submit does not re-upload
	uploaded map[string]string

	published *observable.Value[onboarding.State]
	now       func() time.Time
}

// NewOnboardingUC creates a wizard at the first stage. uploader may be nil,
// in which case media references are submitted as entered.
func NewOnboardingUC(
	onboardingGW onboarding.OnboardingGW,
	uploader onboarding.MediaUploader,
) *OnboardingUC {
	initial := onboarding.State{Stage: onboarding.FirstStage, Errors: onboarding.ValidationResult{}}
	return &OnboardingUC{
		onboardingGW: onboardingGW,
		uploader:     uploader,
		validator:    rules.NewValidator(),
		state:        initial,
		uploaded:     make(map[string]string),
		published:    observable.NewValue(initial),
		now:          models.Now,
	}
}
