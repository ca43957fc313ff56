package services

import "errors"

// Error taxonomy shared by the quickplay services. Handlers map these to
// HTTP statuses; anything unrecognized is treated as a persistence failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrValidation   = errors.New("validation failed")
	ErrRateLimited  = errors.New("rate limited")
	ErrUpstream     = errors.New("upstream failure")
)
