// SPDX-License-Identifier: MIT

package cohort

// YearRecord is one row of the dataset: the graduating cohort of a year.
type YearRecord struct {
	Year       int `json:"year" yaml:"year"`
	PassedOut  int `json:"passedOut" yaml:"passedOut"`
	Placed     int `json:"placed" yaml:"placed"`
	Unemployed int `json:"unemployed" yaml:"unemployed"`
}

// PlacementRate returns Placed/PassedOut, or 0 for an empty cohort.
func (r YearRecord) PlacementRate() float64 {
	if r.PassedOut == 0 {
		return 0
	}

	return float64(r.Placed) / float64(r.PassedOut)
}

// UnemploymentRate returns Unemployed/PassedOut, or 0 for an empty cohort.
func (r YearRecord) UnemploymentRate() float64 {
	if r.PassedOut == 0 {
		return 0
	}

	return float64(r.Unemployed) / float64(r.PassedOut)
}

// Dataset is an immutable, chronologically ordered sequence of YearRecord.
// The zero value is a valid empty Dataset. Accessors return copies, so a
// Dataset may be shared freely once built.
type Dataset struct {
	records []YearRecord
}

// NewDataset validates records and wraps them in a Dataset.
// Records must satisfy Placed+Unemployed == PassedOut with non-negative
// counts (ErrInvalidRecord) and cover consecutive ascending years
// (ErrNonContiguousYears). The input slice is copied.
// Complexity: O(n).
func NewDataset(records ...YearRecord) (Dataset, error) {
	for i, r := range records {
		if err := validateRecord(MethodNewDataset, i, r); err != nil {
			return Dataset{}, err
		}
		if i > 0 && r.Year != records[i-1].Year+1 {
			return Dataset{}, cohortErrorf(MethodNewDataset, ErrNonContiguousYears,
				"year %d follows %d", r.Year, records[i-1].Year)
		}
	}

	out := make([]YearRecord, len(records))
	copy(out, records)

	return Dataset{records: out}, nil
}

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// IsEmpty reports whether the dataset has no records.
func (d Dataset) IsEmpty() bool { return len(d.records) == 0 }

// At returns the i-th record in chronological order. It panics on an
// out-of-range index, like slice indexing.
func (d Dataset) At(i int) YearRecord { return d.records[i] }

// Records returns a copy of all records.
func (d Dataset) Records() []YearRecord {
	out := make([]YearRecord, len(d.records))
	copy(out, d.records)

	return out
}

// Head returns a copy of the first n records (all of them if n exceeds Len).
func (d Dataset) Head(n int) []YearRecord {
	if n < 0 {
		n = 0
	}
	if n > len(d.records) {
		n = len(d.records)
	}
	out := make([]YearRecord, n)
	copy(out, d.records[:n])

	return out
}

// Years returns the year column.
func (d Dataset) Years() []int {
	out := make([]int, len(d.records))
	for i, r := range d.records {
		out[i] = r.Year
	}

	return out
}

// First returns the earliest record; ok is false for an empty dataset.
func (d Dataset) First() (YearRecord, bool) {
	if len(d.records) == 0 {
		return YearRecord{}, false
	}

	return d.records[0], true
}

// Last returns the latest record; ok is false for an empty dataset.
func (d Dataset) Last() (YearRecord, bool) {
	if len(d.records) == 0 {
		return YearRecord{}, false
	}

	return d.records[len(d.records)-1], true
}
