// Package common defines shared constants and sentinel errors used across
// feedline components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session / authentication errors.
	ErrInvalidCredentials = errors.New("wrong login or password")
	ErrNoSession          = errors.New("no active session")
	ErrInvalidToken       = errors.New("invalid token")

	// Registration errors.
	ErrLoginTaken = errors.New("login already taken")
)
