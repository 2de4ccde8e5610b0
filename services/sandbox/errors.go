package sandbox

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidApplication = errors.New("invalid application")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrRiderNotFound      = errors.New("rider not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderTaken         = errors.New("order already taken")
	ErrOrderNotAssigned   = errors.New("order is not assigned to this rider")
)
