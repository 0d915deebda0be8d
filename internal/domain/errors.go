package domain

import "errors"

// Pipeline input errors. Both are fatal and abort a run before any output
// file is written; arithmetic guards are never errors (see features.SafeDiv).
var (
	// ErrSchema indicates a required input column is missing or has the
	// wrong type.
	ErrSchema = errors.New("input schema violation")

	// ErrEmptyInput indicates zero rows where at least one is required.
	ErrEmptyInput = errors.New("empty input")
)
