package lead

import "errors"

var (
	ErrLeadNotFound = errors.New("lead not found")
	ErrValidation   = errors.New("lead validation failed")
)
