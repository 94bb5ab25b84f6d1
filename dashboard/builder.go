// SPDX-License-Identifier: MIT

package dashboard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/gradstats/cohort"
	"github.com/katalvlaran/gradstats/insight"
)

// Series colors.
const (
	ColorPassedOut  = "#4B8BBE"
	ColorPlaced     = "#306998"
	ColorUnemployed = "#FFE873"
	colorBest       = "green"
	colorWorst      = "red"
	heatmapColorMap = "coolwarm"
)

// Series names and panel titles.
const (
	seriesPassedOut  = "Passed Out"
	seriesPlaced     = "Placed"
	seriesUnemployed = "Unemployed"

	titleOutcomes    = "Yearly College Outcomes"
	titleTrend       = "Placement vs Unemployment Trend"
	titleCorrelation = "Correlation Heatmap"
)

// ErrNoData is returned when Build receives an empty dataset.
var ErrNoData = errors.New("dashboard: no data to render")

// Build assembles the 2×2 dashboard from a finalized dataset, its summary
// and (optionally) its correlation matrix. A nil corr renders the heatmap
// panel without values, which is what a single-year dataset produces.
//
// Layout:
//
//	[0,0] grouped bar: passed out / placed / unemployed per year
//	[0,1] line: placed & unemployed trend, best/worst annotated
//	[1,0] pie: last-year placement distribution
//	[1,1] heatmap: correlation of the count columns
func Build(ds cohort.Dataset, sum insight.Summary, corr *insight.Correlation, opts ...Option) (Dashboard, error) {
	first, ok := ds.First()
	if !ok {
		return Dashboard{}, ErrNoData
	}
	last, _ := ds.Last()
	cfg := applyOptions(opts)

	title := cfg.title
	if title == "" {
		title = fmt.Sprintf("College Pass-Outs, Placements & Unemployment Analysis (%d-%d)", first.Year, last.Year)
	}

	return Dashboard{
		Title: title,
		Grid:  Grid{Rows: 2, Cols: 2},
		Panels: []Panel{
			{Row: 0, Col: 0, Chart: outcomesChart(ds)},
			{Row: 0, Col: 1, Chart: trendChart(ds, sum)},
			{Row: 1, Col: 0, Chart: distributionChart(last)},
			{Row: 1, Col: 1, Chart: correlationChart(corr)},
		},
		Note:       SummaryNote(sum),
		Footer:     cfg.footer,
		Background: cfg.background,
	}, nil
}

// SummaryNote returns the best/worst lines printed beneath the panels.
func SummaryNote(sum insight.Summary) []string {
	return []string{
		fmt.Sprintf("Best Placement Year: %d (%d placed)", sum.BestPlacementYear, sum.BestPlacementCount),
		fmt.Sprintf("Worst Unemployment Year: %d (%d unemployed)", sum.WorstUnemploymentYear, sum.WorstUnemploymentCount),
	}
}

func outcomesChart(ds cohort.Dataset) ChartConfig {
	records := ds.Records()
	passed := make([]ChartPoint, len(records))
	placed := make([]ChartPoint, len(records))
	unemployed := make([]ChartPoint, len(records))
	for i, r := range records {
		label := strconv.Itoa(r.Year)
		passed[i] = ChartPoint{Label: label, Value: float64(r.PassedOut)}
		placed[i] = ChartPoint{Label: label, Value: float64(r.Placed)}
		unemployed[i] = ChartPoint{Label: label, Value: float64(r.Unemployed)}
	}

	return ChartConfig{
		ChartType: ChartBar,
		Title:     titleOutcomes,
		XAxis:     "Year",
		YAxis:     "Students",
		Series: []ChartSeries{
			{Name: seriesPassedOut, Data: passed, Color: ColorPassedOut},
			{Name: seriesPlaced, Data: placed, Color: ColorPlaced},
			{Name: seriesUnemployed, Data: unemployed, Color: ColorUnemployed},
		},
		Colors:     []string{ColorPassedOut, ColorPlaced, ColorUnemployed},
		ShowLegend: true,
		ShowGrid:   true,
	}
}

func trendChart(ds cohort.Dataset, sum insight.Summary) ChartConfig {
	records := ds.Records()
	placed := make([]ChartPoint, len(records))
	unemployed := make([]ChartPoint, len(records))
	for i, r := range records {
		label := strconv.Itoa(r.Year)
		placed[i] = ChartPoint{Label: label, Value: float64(r.Placed)}
		unemployed[i] = ChartPoint{Label: label, Value: float64(r.Unemployed)}
	}

	return ChartConfig{
		ChartType: ChartLine,
		Title:     titleTrend,
		XAxis:     "Year",
		YAxis:     "Students",
		Series: []ChartSeries{
			{Name: seriesPlaced, Data: placed, Color: ColorPlaced, Marker: "o"},
			{Name: seriesUnemployed, Data: unemployed, Color: ColorUnemployed, Marker: "s"},
		},
		Colors:     []string{ColorPlaced, ColorUnemployed},
		ShowLegend: true,
		ShowGrid:   true,
		Annotations: []Annotation{
			{
				Text:  "Best Placement",
				Label: strconv.Itoa(sum.BestPlacementYear),
				Value: float64(sum.BestPlacementCount),
				Color: colorBest,
			},
			{
				Text:  "Worst Unemployment",
				Label: strconv.Itoa(sum.WorstUnemploymentYear),
				Value: float64(sum.WorstUnemploymentCount),
				Color: colorWorst,
			},
		},
	}
}

func distributionChart(last cohort.YearRecord) ChartConfig {
	placed, unemployed := insight.Share(last)

	return ChartConfig{
		ChartType: ChartPie,
		Title:     fmt.Sprintf("%d Placement Distribution", last.Year),
		Series: []ChartSeries{{
			Name: strconv.Itoa(last.Year),
			Data: []ChartPoint{
				{Label: seriesPlaced, Value: roundTo(placed, 1)},
				{Label: seriesUnemployed, Value: roundTo(unemployed, 1)},
			},
		}},
		Colors:     []string{ColorPlaced, ColorUnemployed},
		ShowLegend: true,
	}
}

func correlationChart(corr *insight.Correlation) ChartConfig {
	chart := ChartConfig{
		ChartType:  ChartHeatmap,
		Title:      titleCorrelation,
		ShowLegend: true,
	}
	if corr == nil {
		return chart
	}

	labels := make([]string, len(corr.Columns))
	for i, c := range corr.Columns {
		labels[i] = string(c)
	}
	values := make([][]float64, len(corr.Values))
	for i, row := range corr.Values {
		values[i] = make([]float64, len(row))
		for j, v := range row {
			values[i][j] = roundTo(v, 2)
		}
	}
	chart.Heatmap = &HeatmapData{Labels: labels, Values: values, ColorMap: heatmapColorMap}

	return chart
}
