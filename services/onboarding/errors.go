package onboarding

import "errors"

var (
	// ErrSubmitUnavailable is returned when Submit is called before the last stage
	ErrSubmitUnavailable = errors.New("submit is only available at the agreement stage")
	// ErrSubmitInProgress rejects a second Submit while one is running
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrInvalidVerification rejects a malformed email verification request
	ErrInvalidVerification = errors.New("a valid email and verification code are required")
)
