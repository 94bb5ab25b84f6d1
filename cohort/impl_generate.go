// SPDX-License-Identifier: MIT
// Package: gradstats/cohort
//
// impl_generate.go - deterministic synthetic cohorts for a year range.
//
// Contract:
//   - Generate(start, end, opts...) → Dataset of end-start+1 records.
//   - Invalid range ⇒ ErrBadRange; unsatisfiable bounds ⇒ ErrConfiguration.
//     Both are checked before the first draw, so no partial Dataset exists.
//   - O(n) time and memory.
//
// Draw order (fixed, part of the reproducibility contract):
//   1. PassedOut for every year, ascending.
//   2. Placed for every year, ascending.
//
// Invariants (by construction):
//   - PlacedFloor ≤ Placed < PassedOut-Margin, hence Unemployed > Margin.
//   - Placed+Unemployed == PassedOut.

package cohort

// Generate returns a reproducible Dataset covering years start..end inclusive.
//
//	PassedOut ~ U[PassedOutLow, PassedOutHigh)
//	Placed    ~ U[PlacedFloor, PassedOut-Margin)
//	Unemployed = PassedOut - Placed
func Generate(start, end int, opts ...Option) (Dataset, error) {
	if err := validateRange(MethodGenerate, start, end); err != nil {
		return Dataset{}, err
	}

	cfg := newGenConfig(opts...)
	p := cfg.params
	if err := p.Validate(); err != nil {
		return Dataset{}, cohortErrorf(MethodGenerate, err, "years %d-%d", start, end)
	}

	rng := rngFrom(cfg)
	n := end - start + 1
	records := make([]YearRecord, n)

	// Pass 1: passed-out counts.
	span := p.PassedOutHigh - p.PassedOutLow
	var i int
	for i = 0; i < n; i++ {
		records[i].Year = start + i
		records[i].PassedOut = p.PassedOutLow + rng.Intn(span)
	}

	// Pass 2: placed counts. PassedOut-Margin-PlacedFloor > 0 holds for every
	// draw because Validate checked it at PassedOut == PassedOutLow.
	for i = 0; i < n; i++ {
		upper := records[i].PassedOut - p.Margin
		records[i].Placed = p.PlacedFloor + rng.Intn(upper-p.PlacedFloor)
		records[i].Unemployed = records[i].PassedOut - records[i].Placed
	}

	return Dataset{records: records}, nil
}
