// Package insight reduces a cohort.Dataset to summary figures.
//
// Reduce is the core: one linear scan yielding the best placement year, the
// worst unemployment year and the mean placement/unemployment rates. Ties on
// a maximum keep the chronologically first year.
//
// Rates, Describe, Correlate and Share provide the per-year ratios, column
// statistics, Pearson correlations and last-year split consumed by the
// dashboard panels. Every function is pure: same Dataset in, same values out.
package insight
