// Package common defines shared sentinel errors used across the account
// service and its adapters. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Input errors.
	ErrValidation = errors.New("validation error")

	// Durable-store errors.
	ErrConflict = errors.New("already exists")
	ErrNotFound = errors.New("not found")

	// Auth errors. A failed password check and an unknown email both map to
	// ErrAuth so callers cannot probe which emails are registered.
	ErrAuth         = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// Verification errors.
	ErrCodeMismatch = errors.New("verification code mismatch")

	// Credential-hashing errors (malformed stored hash).
	ErrHashing = errors.New("hashing error")

	// Store/broker unreachable or misbehaving.
	ErrDependency = errors.New("dependency error")
)
