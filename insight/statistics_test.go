package insight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradstats/cohort"
	"github.com/katalvlaran/gradstats/insight"
)

const statEps = 1e-9

func TestDescribe_KnownValues(t *testing.T) {
	t.Parallel()

	// Placed = 200, 210, 220, 230; PassedOut = 400 every year.
	ds := mustDataset(t,
		rec(2001, 400, 200),
		rec(2002, 400, 210),
		rec(2003, 400, 220),
		rec(2004, 400, 230),
	)
	d, err := insight.Describe(ds)
	require.NoError(t, err)
	require.Len(t, d.Columns, 4)

	cols := []insight.Column{insight.ColumnYear, insight.ColumnPassedOut, insight.ColumnPlaced, insight.ColumnUnemployed}
	for i, c := range cols {
		assert.Equal(t, c, d.Columns[i].Column)
		assert.Equal(t, 4, d.Columns[i].Count)
	}

	placed := d.Columns[2]
	assert.InDelta(t, 215.0, placed.Mean, statEps)
	assert.InDelta(t, math.Sqrt(500.0/3.0), placed.Std, statEps)
	assert.InDelta(t, 200.0, placed.Min, statEps)
	assert.InDelta(t, 207.5, placed.Q25, statEps)
	assert.InDelta(t, 215.0, placed.Median, statEps)
	assert.InDelta(t, 222.5, placed.Q75, statEps)
	assert.InDelta(t, 230.0, placed.Max, statEps)

	passed := d.Columns[1]
	assert.Zero(t, passed.Std)
	assert.Equal(t, 400.0, passed.Median)

	unemployed := d.Columns[3]
	assert.InDelta(t, 170.0, unemployed.Min, statEps)
	assert.InDelta(t, 200.0, unemployed.Max, statEps)
}

func TestDescribe_SingleAndEmpty(t *testing.T) {
	t.Parallel()

	d, err := insight.Describe(mustDataset(t, rec(2020, 400, 300)))
	require.NoError(t, err)
	for _, c := range d.Columns {
		assert.Equal(t, 1, c.Count)
		assert.Zero(t, c.Std)
		assert.Equal(t, c.Min, c.Max)
		assert.Equal(t, c.Min, c.Median)
	}

	_, err = insight.Describe(cohort.Dataset{})
	assert.ErrorIs(t, err, insight.ErrEmptyDataset)
}

func TestCorrelate_PerfectAndDegenerate(t *testing.T) {
	t.Parallel()

	// Unemployed is constant (100): placed tracks passed exactly.
	ds := mustDataset(t, rec(2001, 400, 300), rec(2002, 500, 400), rec(2003, 650, 550))
	c, err := insight.Correlate(ds)
	require.NoError(t, err)
	require.Equal(t, []insight.Column{insight.ColumnPassedOut, insight.ColumnPlaced, insight.ColumnUnemployed}, c.Columns)

	v, ok := c.At(insight.ColumnPassedOut, insight.ColumnPlaced)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v, statEps)

	v, _ = c.At(insight.ColumnPassedOut, insight.ColumnPassedOut)
	assert.InDelta(t, 1.0, v, statEps)

	// Degenerate column is zeroed, diagonal included.
	for _, other := range c.Columns {
		v, _ = c.At(insight.ColumnUnemployed, other)
		assert.Zero(t, v)
	}

	_, ok = c.At(insight.ColumnYear, insight.ColumnPlaced)
	assert.False(t, ok)
}

func TestCorrelate_SymmetricAndBounded(t *testing.T) {
	t.Parallel()

	ds, err := cohort.Generate(2016, 2025, cohort.WithSeed(42))
	require.NoError(t, err)
	c, err := insight.Correlate(ds)
	require.NoError(t, err)

	for i := range c.Values {
		assert.InDelta(t, 1.0, c.Values[i][i], statEps)
		for j := range c.Values[i] {
			assert.Equal(t, c.Values[i][j], c.Values[j][i])
			assert.LessOrEqual(t, math.Abs(c.Values[i][j]), 1.0)
		}
	}
}

func TestCorrelate_Errors(t *testing.T) {
	t.Parallel()

	_, err := insight.Correlate(cohort.Dataset{})
	assert.ErrorIs(t, err, insight.ErrEmptyDataset)

	_, err = insight.Correlate(mustDataset(t, rec(2020, 400, 300)))
	assert.ErrorIs(t, err, insight.ErrTooFewRecords)
}
