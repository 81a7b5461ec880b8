package stepup

import "errors"

var (
	ErrNotFound     = errors.New("secondary password not set up")
	ErrNotEnabled   = errors.New("secondary password not enabled")
	ErrInvalidInput = errors.New("invalid secondary password input")
)
