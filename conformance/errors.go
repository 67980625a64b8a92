// SPDX-License-Identifier: MIT

package conformance

import (
	"errors"
	"fmt"
)

var (
	// ErrCheckFailed marks a check whose observed value differs from the expected one.
	ErrCheckFailed = errors.New("conformance: check failed")

	// ErrCheckPanicked marks a check that panicked instead of returning.
	ErrCheckPanicked = errors.New("conformance: check panicked")
)

// mismatch builds a failure for what, reporting got and want.
func mismatch(what string, got, want any) error {
	return fmt.Errorf("%s: got %v, want %v: %w", what, got, want, ErrCheckFailed)
}

// failf builds a free-form failure.
func failf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrCheckFailed)
}
