// SPDX-License-Identifier: MIT

package dashboard

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/gradstats/cohort"
	"github.com/katalvlaran/gradstats/insight"
)

// DefaultPreviewRows matches the usual head() preview length.
const DefaultPreviewRows = 5

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 1, 1, 2, ' ', 0)
}

// WritePreview prints the first rows of ds as an aligned table.
// rows <= 0 prints every record.
func WritePreview(w io.Writer, ds cohort.Dataset, rows int) error {
	if rows <= 0 {
		rows = ds.Len()
	}
	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Year\tPassed_Out\tPlaced\tUnemployed\n")
	for _, r := range ds.Head(rows) {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", r.Year, r.PassedOut, r.Placed, r.Unemployed)
	}

	return tw.Flush()
}

// WriteDescription prints the describe() table: one row per statistic,
// one column per dataset column.
func WriteDescription(w io.Writer, d insight.Description) error {
	tw := newTabWriter(w)
	for _, c := range d.Columns {
		fmt.Fprintf(tw, "\t%s", c.Column)
	}
	fmt.Fprintln(tw)

	rows := []struct {
		name string
		get  func(insight.ColumnStats) string
	}{
		{"count", func(c insight.ColumnStats) string { return fixed(float64(c.Count), 1) }},
		{"mean", func(c insight.ColumnStats) string { return fixed(c.Mean, 2) }},
		{"std", func(c insight.ColumnStats) string { return fixed(c.Std, 2) }},
		{"min", func(c insight.ColumnStats) string { return fixed(c.Min, 1) }},
		{"25%", func(c insight.ColumnStats) string { return fixed(c.Q25, 2) }},
		{"50%", func(c insight.ColumnStats) string { return fixed(c.Median, 2) }},
		{"75%", func(c insight.ColumnStats) string { return fixed(c.Q75, 2) }},
		{"max", func(c insight.ColumnStats) string { return fixed(c.Max, 1) }},
	}
	for _, row := range rows {
		fmt.Fprint(tw, row.name)
		for _, c := range d.Columns {
			fmt.Fprintf(tw, "\t%s", row.get(c))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// WriteInsights prints one line per summary figure.
func WriteInsights(w io.Writer, sum insight.Summary) error {
	_, err := fmt.Fprintf(w,
		"Best placement year: %d (%d placed)\n"+
			"Worst unemployment year: %d (%d unemployed)\n"+
			"Average placement rate: %s\n"+
			"Average unemployment rate: %s\n",
		sum.BestPlacementYear, sum.BestPlacementCount,
		sum.WorstUnemploymentYear, sum.WorstUnemploymentCount,
		percent(sum.MeanPlacementRate),
		percent(sum.MeanUnemploymentRate),
	)

	return err
}
