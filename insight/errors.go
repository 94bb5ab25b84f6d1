// SPDX-License-Identifier: MIT

package insight

import (
	"errors"
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opReduce    = "Reduce"
	opDescribe  = "Describe"
	opCorrelate = "Correlate"
)

// ErrEmptyDataset is returned when a reduction is invoked on a zero-length
// Dataset. No partial result accompanies it.
var ErrEmptyDataset = errors.New("insight: empty dataset")

// ErrTooFewRecords is returned by statistics that need at least two
// observations (sample correlation).
var ErrTooFewRecords = errors.New("insight: too few records")

// insightErrorf wraps an underlying error with the given operation tag.
func insightErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
