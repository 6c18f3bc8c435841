package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidCode    = errors.New("invalid code")

	// ErrConfiguration means the generation service credentials are missing
	// or invalid.
	ErrConfiguration = errors.New("service is not configured")
	// ErrConnection means the support assistant could not be reached.
	ErrConnection = errors.New("assistant connection failed")
	// ErrGeneration means the strategy generation failed after exhausting
	// every endpoint.
	ErrGeneration = errors.New("generation failed")
)
