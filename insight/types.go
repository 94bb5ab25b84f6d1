// SPDX-License-Identifier: MIT

package insight

// Summary is the InsightSummary derived from a finalized Dataset.
type Summary struct {
	BestPlacementYear      int     `json:"bestPlacementYear" yaml:"bestPlacementYear"`
	BestPlacementCount     int     `json:"bestPlacementCount" yaml:"bestPlacementCount"`
	WorstUnemploymentYear  int     `json:"worstUnemploymentYear" yaml:"worstUnemploymentYear"`
	WorstUnemploymentCount int     `json:"worstUnemploymentCount" yaml:"worstUnemploymentCount"`
	MeanPlacementRate      float64 `json:"meanPlacementRate" yaml:"meanPlacementRate"`
	MeanUnemploymentRate   float64 `json:"meanUnemploymentRate" yaml:"meanUnemploymentRate"`
	// Years is the number of records the summary was reduced from.
	Years int `json:"years" yaml:"years"`
}

// YearRate is the per-year placement/unemployment split.
type YearRate struct {
	Year             int     `json:"year" yaml:"year"`
	PlacementRate    float64 `json:"placementRate" yaml:"placementRate"`
	UnemploymentRate float64 `json:"unemploymentRate" yaml:"unemploymentRate"`
}

// Column names the numeric columns of a Dataset.
type Column string

const (
	ColumnYear       Column = "Year"
	ColumnPassedOut  Column = "Passed_Out"
	ColumnPlaced     Column = "Placed"
	ColumnUnemployed Column = "Unemployed"
)

// ColumnStats is the describe() row of one column.
// Std is the sample standard deviation (n-1); it is 0 for a single record.
type ColumnStats struct {
	Column Column  `json:"column" yaml:"column"`
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Std    float64 `json:"std" yaml:"std"`
	Min    float64 `json:"min" yaml:"min"`
	Q25    float64 `json:"q25" yaml:"q25"`
	Median float64 `json:"median" yaml:"median"`
	Q75    float64 `json:"q75" yaml:"q75"`
	Max    float64 `json:"max" yaml:"max"`
}

// Description holds ColumnStats for Year, Passed_Out, Placed, Unemployed in that order.
type Description struct {
	Columns []ColumnStats `json:"columns" yaml:"columns"`
}

// Correlation is a symmetric Pearson correlation matrix; Values[i][j]
// correlates Columns[i] with Columns[j].
type Correlation struct {
	Columns []Column    `json:"columns" yaml:"columns"`
	Values  [][]float64 `json:"values" yaml:"values"`
}

// At returns the coefficient for the pair (a, b); ok is false if either
// column is absent.
func (c Correlation) At(a, b Column) (float64, bool) {
	i, j := -1, -1
	for k, col := range c.Columns {
		if col == a {
			i = k
		}
		if col == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}

	return c.Values[i][j], true
}
