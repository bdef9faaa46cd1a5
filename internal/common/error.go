// Package common defines shared sentinel errors used across client and server
// layers of teamadmin. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Verification can only move from pending to approved or rejected.
	ErrorInvalidVerification = errors.New("invalid verification transition")
)
