package session

import (
	"errors"
	"fmt"
)

// ErrSignInFailed is the user-facing login failure
var ErrSignInFailed = errors.New("please check your credentials and try again")

// InputError rejects credentials before any network call
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
