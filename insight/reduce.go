// SPDX-License-Identifier: MIT

package insight

import (
	"github.com/katalvlaran/gradstats/cohort"
)

// Reduce computes the Summary of ds in a single linear scan.
//
// Stage 1 (Validate): ds must be non-empty, else ErrEmptyDataset.
// Stage 2 (Scan): running maxima with strict '>' keep the first year on ties;
// running sums of the per-year rates.
// Stage 3 (Finalize): divide the rate sums by the record count.
//
// Complexity: O(n) time, O(1) space.
func Reduce(ds cohort.Dataset) (Summary, error) {
	n := ds.Len()
	if n == 0 {
		return Summary{}, insightErrorf(opReduce, ErrEmptyDataset)
	}

	first := ds.At(0)
	s := Summary{
		BestPlacementYear:      first.Year,
		BestPlacementCount:     first.Placed,
		WorstUnemploymentYear:  first.Year,
		WorstUnemploymentCount: first.Unemployed,
		Years:                  n,
	}

	var placedSum, unemployedSum float64
	var r cohort.YearRecord
	for i := 0; i < n; i++ {
		r = ds.At(i)
		if r.Placed > s.BestPlacementCount {
			s.BestPlacementYear, s.BestPlacementCount = r.Year, r.Placed
		}
		if r.Unemployed > s.WorstUnemploymentCount {
			s.WorstUnemploymentYear, s.WorstUnemploymentCount = r.Year, r.Unemployed
		}
		placedSum += r.PlacementRate()
		unemployedSum += r.UnemploymentRate()
	}

	s.MeanPlacementRate = placedSum / float64(n)
	s.MeanUnemploymentRate = unemployedSum / float64(n)

	return s, nil
}

// Rates returns the per-year placement and unemployment ratios in
// chronological order. An empty dataset yields an empty slice.
func Rates(ds cohort.Dataset) []YearRate {
	out := make([]YearRate, ds.Len())
	for i := range out {
		r := ds.At(i)
		out[i] = YearRate{
			Year:             r.Year,
			PlacementRate:    r.PlacementRate(),
			UnemploymentRate: r.UnemploymentRate(),
		}
	}

	return out
}

// Share returns the placed and unemployed percentages (0..100) of one year,
// as shown on the distribution pie. An empty cohort yields (0, 0).
func Share(r cohort.YearRecord) (placed, unemployed float64) {
	return r.PlacementRate() * 100, r.UnemploymentRate() * 100
}
