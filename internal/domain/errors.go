package domain

import "errors"

// Request-level failure kinds. Per-record validation failures never use
// these: they are collected and returned alongside valid records instead
// of failing the batch.
var (
	// ErrInvalidInput marks a malformed or out-of-range top-level field
	// (age, wage, inflation, period bounds).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidVehicle marks an unrecognized investment vehicle tag.
	ErrInvalidVehicle = errors.New("invalid vehicle")
)
