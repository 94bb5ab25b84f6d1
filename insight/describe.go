// SPDX-License-Identifier: MIT

package insight

import (
	"math"
	"sort"

	"github.com/katalvlaran/gradstats/cohort"
)

// Quantile levels reported by Describe.
const (
	q25    = 0.25
	q50    = 0.50
	q75    = 0.75
	minObs = 2 // observations needed for sample std/correlation
)

// describeColumns is the fixed column order of Describe.
var describeColumns = []Column{ColumnYear, ColumnPassedOut, ColumnPlaced, ColumnUnemployed}

// columnValues extracts one numeric column of ds as float64 in chronological order.
func columnValues(ds cohort.Dataset, col Column) []float64 {
	out := make([]float64, ds.Len())
	var r cohort.YearRecord
	for i := range out {
		r = ds.At(i)
		switch col {
		case ColumnYear:
			out[i] = float64(r.Year)
		case ColumnPassedOut:
			out[i] = float64(r.PassedOut)
		case ColumnPlaced:
			out[i] = float64(r.Placed)
		case ColumnUnemployed:
			out[i] = float64(r.Unemployed)
		}
	}

	return out
}

// Describe returns count, mean, sample std, min, quartiles and max for the
// Year, Passed_Out, Placed and Unemployed columns.
// Quartiles use linear interpolation between closest ranks: position q*(n-1).
// Errors: ErrEmptyDataset.
// Complexity: O(c * n log n).
func Describe(ds cohort.Dataset) (Description, error) {
	if ds.IsEmpty() {
		return Description{}, insightErrorf(opDescribe, ErrEmptyDataset)
	}

	d := Description{Columns: make([]ColumnStats, 0, len(describeColumns))}
	for _, col := range describeColumns {
		d.Columns = append(d.Columns, describe(col, columnValues(ds, col)))
	}

	return d, nil
}

// describe computes ColumnStats over a non-empty sample.
func describe(col Column, xs []float64) ColumnStats {
	n := len(xs)
	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	mean, std := meanStd(xs)

	return ColumnStats{
		Column: col,
		Count:  n,
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q25:    quantile(sorted, q25),
		Median: quantile(sorted, q50),
		Q75:    quantile(sorted, q75),
		Max:    sorted[n-1],
	}
}

// meanStd returns the mean and the sample standard deviation (0 when n < 2).
func meanStd(xs []float64) (mean, std float64) {
	n := len(xs)
	for _, v := range xs {
		mean += v
	}
	mean /= float64(n)
	if n < minObs {
		return mean, 0
	}

	var ss, dv float64
	for _, v := range xs {
		dv = v - mean
		ss += dv * dv
	}

	return mean, math.Sqrt(ss / float64(n-1))
}

// quantile interpolates linearly on an ascending, non-empty sample.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)

	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
