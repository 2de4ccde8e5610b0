package rider

import "errors"

var (
	// ErrEmptyUpdate is returned when an update carries no fields
	ErrEmptyUpdate = errors.New("no profile fields to update")
	// ErrBlankField is returned when a provided field is only whitespace
	ErrBlankField = errors.New("profile field cannot be blank")
)
