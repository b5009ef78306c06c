package domain

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrOutOfOrder         = errors.New("previous step is not completed")
	ErrAlreadyCompleted   = errors.New("step already completed")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
