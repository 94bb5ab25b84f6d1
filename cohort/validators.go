// Package cohort validation helpers. Each returns a wrapped sentinel via
// cohortErrorf when its precondition is violated.
package cohort

// validateNonNegative ensures got >= 0 for a named generation bound.
// Complexity: O(1) time and space.
func validateNonNegative(method, name string, got int) error {
	if got < 0 {
		return cohortErrorf(method, ErrConfiguration, "%s must be ≥ 0, got %d", name, got)
	}

	return nil
}

// validateRange ensures start <= end.
func validateRange(method string, start, end int) error {
	if start > end {
		return cohortErrorf(method, ErrBadRange, "start %d is after end %d", start, end)
	}

	return nil
}

// validateRecord checks the per-record count invariant.
func validateRecord(method string, idx int, r YearRecord) error {
	if r.PassedOut < 0 || r.Placed < 0 || r.Unemployed < 0 {
		return cohortErrorf(method, ErrInvalidRecord, "record %d (year %d) has negative counts", idx, r.Year)
	}
	if r.Placed+r.Unemployed != r.PassedOut {
		return cohortErrorf(method, ErrInvalidRecord,
			"record %d (year %d): placed %d + unemployed %d != passed out %d",
			idx, r.Year, r.Placed, r.Unemployed, r.PassedOut)
	}

	return nil
}
