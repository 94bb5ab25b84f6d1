// SPDX-License-Identifier: MIT
//
// Purpose:
//   - Pearson correlation of the count columns for the heatmap panel,
//     computed by z-scoring: Corr = (Zᵀ Z)/(r-1), Z = (X − mean)·diag(1/std).
//
// Determinism:
//   - Fixed i→j traversal; stable results.
//
// Degenerate policy:
//   - A column with std == 0 is zeroed, so its row and column (diagonal
//     included) are 0 rather than NaN.

package insight

import (
	"math"

	"github.com/katalvlaran/gradstats/cohort"
)

// correlationColumns is the fixed column order of Correlate.
var correlationColumns = []Column{ColumnPassedOut, ColumnPlaced, ColumnUnemployed}

// Correlate returns the Pearson correlation matrix of Passed_Out, Placed and
// Unemployed.
//
// Errors:
//   - ErrEmptyDataset for a zero-length dataset.
//   - ErrTooFewRecords for a single record (sample statistics need r >= 2).
//
// Complexity: O(r*c^2) time, O(r*c) space.
func Correlate(ds cohort.Dataset) (Correlation, error) {
	r := ds.Len()
	if r == 0 {
		return Correlation{}, insightErrorf(opCorrelate, ErrEmptyDataset)
	}
	if r < minObs {
		return Correlation{}, insightErrorf(opCorrelate, ErrTooFewRecords)
	}

	c := len(correlationColumns)

	// Stage 1 (Z-score): z[j][i] = (x[j][i] - mean_j) / std_j, or 0 if std_j == 0.
	z := make([][]float64, c)
	var i, j, k int
	var mean, std, inv float64
	for j = 0; j < c; j++ {
		xs := columnValues(ds, correlationColumns[j])
		mean, std = meanStd(xs)
		inv = 0
		if std > 0 {
			inv = 1 / std
		}
		z[j] = make([]float64, r)
		for i = 0; i < r; i++ {
			z[j][i] = (xs[i] - mean) * inv
		}
	}

	// Stage 2 (Corr): symmetric fill of (Zᵀ Z)/(r-1).
	scale := 1 / float64(r-1)
	values := make([][]float64, c)
	for j = 0; j < c; j++ {
		values[j] = make([]float64, c)
	}
	var sum float64
	for j = 0; j < c; j++ {
		for k = j; k < c; k++ {
			sum = 0
			for i = 0; i < r; i++ {
				sum += z[j][i] * z[k][i]
			}
			sum = clampUnit(sum * scale)
			values[j][k] = sum
			values[k][j] = sum
		}
	}

	cols := make([]Column, c)
	copy(cols, correlationColumns)

	return Correlation{Columns: cols, Values: values}, nil
}

// clampUnit trims floating-point overshoot outside [-1, 1].
func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
