package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/media"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
	"github.com/fastbuka/rider/services/onboarding"
	"github.com/fastbuka/rider/services/onboarding/rules"
)

// fire applies an event under the lock and publishes the new state
func (u *OnboardingUC) fire(event Event, target onboarding.Stage) (onboarding.ValidationResult, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	from := u.state.Stage
	next, res, err := transitions[event](from, target, u.validateLocked)

	switch {
	case errors.Is(err, errInvalid):
		u.state.Errors = res
	case err != nil:
		return nil, err
	default:
		if event == EventNext {
			u.state.Completed[from-1] = true
		}
		u.state.Stage = next
		u.state.Errors = onboarding.ValidationResult{}
	}

	u.publishLocked()
	return res, err
}

func (u *OnboardingUC) validateLocked(stage onboarding.Stage) onboarding.ValidationResult {
	return u.validator.ValidateStage(stage, u.draft)
}

func (u *OnboardingUC) publishLocked() {
	snapshot := u.state
	snapshot.Errors = u.state.Errors.Clone()
	u.published.Set(snapshot)
}

// Next validates the current stage and advances on success
func (u *OnboardingUC) Next() onboarding.ValidationResult {
	res, err := u.fire(EventNext, 0)
	if err != nil {
		return res.Clone()
	}
	return onboarding.ValidationResult{}
}

// Back moves to the previous stage without validating
func (u *OnboardingUC) Back() bool {
	_, err := u.fire(EventBack, 0)
	return err == nil
}

// JumpTo moves to a stage at or before the current one
func (u *OnboardingUC) JumpTo(stage onboarding.Stage) bool {
	_, err := u.fire(EventJump, stage)
	return err == nil
}

// Submit validates, uploads local media and registers the rider.
// On any failure the draft is left exactly as entered.
func (u *OnboardingUC) Submit(ctx context.Context) (*onboarding.SubmitResult, error) {
	u.mu.Lock()
	if u.state.Submitting {
		u.mu.Unlock()
		return nil, onboarding.ErrSubmitInProgress
	}

	_, res, err := transitions[EventSubmit](u.state.Stage, 0, u.validateLocked)
	if errors.Is(err, errInvalid) {
		u.state.Errors = res
		u.publishLocked()
		u.mu.Unlock()
		return &onboarding.SubmitResult{Validation: res.Clone()}, nil
	}
	if err != nil {
		u.mu.Unlock()
		return nil, err
	}

	// Earlier stages can be edited after they were passed
	stage, res := u.validator.FirstInvalidStage(u.draft)
	if stage == 0 {
		stage, res = rules.MissingMedia(u.draft)
	}
	if stage != 0 {
		u.state.Stage = stage
		u.state.Errors = res
		u.publishLocked()
		u.mu.Unlock()
		return &onboarding.SubmitResult{Validation: res.Clone()}, nil
	}

	payload := rules.Assemble(u.draft, u.now())
	u.state.Errors = onboarding.ValidationResult{}
	u.state.Submitting = true
	u.publishLocked()
	u.mu.Unlock()

	result, err := u.register(ctx, payload)

	u.mu.Lock()
	defer u.mu.Unlock()

	if err != nil {
		u.state.Submitting = false
		u.publishLocked()
		return nil, err
	}

	u.resetLocked()
	return &onboarding.SubmitResult{
		Validation:      onboarding.ValidationResult{},
		Registration:    result,
		NavigateToLogin: true,
	}, nil
}

func (u *OnboardingUC) register(ctx context.Context, payload models.RiderApplication) (*models.RegistrationResult, error) {
	if err := u.uploadMedia(ctx, &payload); err != nil {
		logger.WarnCtx(ctx, "Application media upload failed", logger.Err(err))
		return nil, err
	}

	result, err := u.onboardingGW.Register(ctx, payload)
	if err != nil {
		logger.WarnCtx(ctx, "Rider registration failed",
			logger.String("email", utils.MaskEmail(payload.PersonalInfo.Email)),
			logger.String("account", utils.MaskAccountNumber(payload.Identification.AccountNumber)),
			logger.Err(err))
		return nil, fmt.Errorf("submit application: %w", err)
	}

	logger.InfoCtx(ctx, "Rider registered",
		logger.String("email", utils.MaskEmail(payload.PersonalInfo.Email)),
		logger.String("account", utils.MaskAccountNumber(payload.Identification.AccountNumber)),
		logger.String("rider_id", result.RiderID))

	return result, nil
}

func (u *OnboardingUC) uploadMedia(ctx context.Context, payload *models.RiderApplication) error {
	if u.uploader == nil {
		return nil
	}

	for _, mf := range rules.MediaFields {
		ref := mf.Ref(payload)
		if !media.IsLocalFile(*ref) {
			continue
		}

		u.mu.Lock()
		id, ok := u.uploaded[*ref]
		u.mu.Unlock()

		if !ok {
			var err error
			id, err = u.uploader.Upload(ctx, *ref)
			if err != nil {
				return fmt.Errorf("upload %s: %w", mf.Field, err)
			}

			u.mu.Lock()
			u.uploaded[*ref] = id
			u.mu.Unlock()
		}

		*ref = id
	}

	return nil
}

// VerifyEmail confirms the code sent after registration
func (u *OnboardingUC) VerifyEmail(ctx context.Context, email, code string) error {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if !utils.IsValidEmail(email) || code == "" {
		return onboarding.ErrInvalidVerification
	}

	if err := u.onboardingGW.VerifyEmail(ctx, models.VerifyEmailRequest{Email: email, Code: code}); err != nil {
		logger.WarnCtx(ctx, "Email verification failed",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
		return err
	}
	return nil
}

// Edit mutates the draft. Field errors of the current stage are kept until the next validation.
func (u *OnboardingUC) Edit(fn func(app *models.RiderApplication)) {
	u.mu.Lock()
	defer u.mu.Unlock()

	fn(&u.draft)
	u.publishLocked()
}

// Draft returns a copy of the entered data
func (u *OnboardingUC) Draft() models.RiderApplication {
	u.mu.Lock()
	defer u.mu.Unlock()

	draft := u.draft
	draft.WorkPreferences.DeliveryAreas = append([]string(nil), u.draft.WorkPreferences.DeliveryAreas...)
	return draft
}

// State returns the current wizard state
func (u *OnboardingUC) State() onboarding.State {
	u.mu.Lock()
	defer u.mu.Unlock()

	snapshot := u.state
	snapshot.Errors = u.state.Errors.Clone()
	return snapshot
}

// StageInfo describes every stage for a progress indicator
func (u *OnboardingUC) StageInfo() []onboarding.StageInfo {
	state := u.State()

	infos := make([]onboarding.StageInfo, 0, onboarding.StageCount)
	for _, stage := range onboarding.Stages() {
		infos = append(infos, onboarding.StageInfo{
			Stage:     stage,
			Name:      stage.String(),
			Completed: state.IsCompleted(stage),
			Current:   stage == state.Stage,
			Reachable: stage <= state.Stage,
		})
	}
	return infos
}

// Progress returns the completed fraction of stages
func (u *OnboardingUC) Progress() float64 {
	state := u.State()

	completed := 0
	for _, done := range state.Completed {
		if done {
			completed++
		}
	}
	return float64(completed) / float64(onboarding.StageCount)
}

// Subscribe streams state changes
func (u *OnboardingUC) Subscribe() (<-chan onboarding.State, func()) {
	return u.published.Subscribe()
}

// Reset discards the draft and returns to the first stage
func (u *OnboardingUC) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.resetLocked()
}

func (u *OnboardingUC) resetLocked() {
	u.draft = models.RiderApplication{}
	u.state = onboarding.State{Stage: onboarding.FirstStage, Errors: onboarding.ValidationResult{}}
	u.uploaded = make(map[string]string)
	u.publishLocked()
}
