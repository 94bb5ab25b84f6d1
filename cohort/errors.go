// SPDX-License-Identifier: MIT
// Package: gradstats/cohort
//
// errors.go — sentinel errors for the cohort package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via cohortErrorf.
//   • Generation never panics; validation panics are confined to option
//     constructors (WithX...).

package cohort

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates that the generation bounds cannot guarantee
// Placed <= PassedOut-Margin (with a non-empty placed range) for every
// possible PassedOut draw. It is fatal and never retried.
// Usage: if errors.Is(err, ErrConfiguration) { /* fix bounds */ }.
var ErrConfiguration = errors.New("cohort: invalid generation configuration")

// ErrBadRange indicates a year range with start > end.
var ErrBadRange = errors.New("cohort: invalid year range")

// ErrInvalidRecord indicates a record whose counts break the
// Placed+Unemployed == PassedOut invariant or are negative.
var ErrInvalidRecord = errors.New("cohort: invalid record")

// ErrNonContiguousYears indicates records that are not strictly consecutive
// ascending years.
var ErrNonContiguousYears = errors.New("cohort: years are not contiguous")

// cohortErrorf wraps the sentinel err with method context and a formatted
// detail: "<Method>: <detail>: <err>".
func cohortErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
