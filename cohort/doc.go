// SPDX-License-Identifier: MIT

// Package cohort generates reproducible synthetic graduate-employment
// datasets: one YearRecord per year over a contiguous year range.
//
// The package offers the following key components:
//
//   - Data model:
//     – YearRecord: passed-out, placed and unemployed counts for one year.
//     – Dataset:    immutable, chronologically ordered sequence of records.
//   - Generation:
//     – Generate:   seeded draw of a Dataset for [start, end].
//     – NewDataset: assemble and validate a Dataset from given records.
//   - Configuration primitives:
//     – Option:     a function that mutates genConfig before use.
//     – Params:     the numeric bounds (passed-out range, placed floor, margin).
//
// Guarantees:
//
//   - Every record satisfies Placed+Unemployed == PassedOut and
//     0 <= Placed <= PassedOut-Margin.
//   - Years are exactly start..end, ascending, no gaps or duplicates.
//   - Same seed, range and Params ⇒ identical Dataset, field for field.
//   - Bounds that cannot honor the margin for every possible PassedOut draw
//     are rejected up front with ErrConfiguration; nothing is clamped.
//
// Example:
//
//	ds, err := cohort.Generate(2016, 2025, cohort.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	for _, r := range ds.Records() {
//		fmt.Println(r.Year, r.Placed)
//	}
package cohort
