package usecase

import (
	"errors"

	"github.com/fastbuka/rider/services/onboarding"
)

// Event is a wizard input
type Event int

const (
	EventNext Event = iota
	EventBack
	EventJump
	EventSubmit
)

var (
	errInvalid  = errors.New("stage has validation errors")
	errRejected = errors.New("transition rejected")
)

// validateFunc runs the rules of a stage against the current draft
type validateFunc func(stage onboarding.Stage) onboarding.ValidationResult

// guard decides the next stage for an event. On errInvalid the returned
// result carries the field errors.
type guard func(current, target onboarding.Stage, validate validateFunc) (onboarding.Stage, onboarding.ValidationResult, error)

var transitions = map[Event]guard{
	EventNext: func(current, _ onboarding.Stage, validate validateFunc) (onboarding.Stage, onboarding.ValidationResult, error) {
		if res := validate(current); !res.Valid() {
			return current, res, errInvalid
		}
		if current == onboarding.LastStage {
			return current, nil, nil
		}
		return current + 1, nil, nil
	},
	EventBack: func(current, _ onboarding.Stage, _ validateFunc) (onboarding.Stage, onboarding.ValidationResult, error) {
		if current <= onboarding.FirstStage {
			return current, nil, errRejected
		}
		return current - 1, nil, nil
	},
	EventJump: func(current, target onboarding.Stage, _ validateFunc) (onboarding.Stage, onboarding.ValidationResult, error) {
		if target < onboarding.FirstStage || target > current {
			return current, nil, errRejected
		}
		return target, nil, nil
	},
	EventSubmit: func(current, _ onboarding.Stage, validate validateFunc) (onboarding.Stage, onboarding.ValidationResult, error) {
		if current != onboarding.LastStage {
			return current, nil, onboarding.ErrSubmitUnavailable
		}
		if res := validate(current); !res.Valid() {
			return current, res, errInvalid
		}
		return current, nil, nil
	},
}
