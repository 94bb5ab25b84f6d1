// SPDX-License-Identifier: MIT

package dashboard

// Chart types understood by the front-end.
const (
	ChartBar     = "bar"
	ChartLine    = "line"
	ChartPie     = "pie"
	ChartHeatmap = "heatmap"
)

// Dashboard is the complete render-ready document: a grid of panels plus
// title, note, footer and optional background art.
type Dashboard struct {
	Title      string      `json:"title" yaml:"title"`
	Grid       Grid        `json:"grid" yaml:"grid"`
	Panels     []Panel     `json:"panels" yaml:"panels"`
	Note       []string    `json:"note" yaml:"note"`
	Footer     string      `json:"footer,omitempty" yaml:"footer,omitempty"`
	Background *Background `json:"background,omitempty" yaml:"background,omitempty"`
}

// Grid is the panel layout (rows × cols).
type Grid struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// Panel places one chart in the grid (0-based row/col).
type Panel struct {
	Row   int         `json:"row" yaml:"row"`
	Col   int         `json:"col" yaml:"col"`
	Chart ChartConfig `json:"chart" yaml:"chart"`
}

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType   string        `json:"chartType" yaml:"chartType"`
	Title       string        `json:"title" yaml:"title"`
	XAxis       string        `json:"xAxis,omitempty" yaml:"xAxis,omitempty"`
	YAxis       string        `json:"yAxis,omitempty" yaml:"yAxis,omitempty"`
	Series      []ChartSeries `json:"series,omitempty" yaml:"series,omitempty"`
	Colors      []string      `json:"colors,omitempty" yaml:"colors,omitempty"`
	ShowLegend  bool          `json:"showLegend" yaml:"showLegend"`
	ShowGrid    bool          `json:"showGrid" yaml:"showGrid"`
	Annotations []Annotation  `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Heatmap     *HeatmapData  `json:"heatmap,omitempty" yaml:"heatmap,omitempty"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name   string       `json:"name" yaml:"name"`
	Data   []ChartPoint `json:"data" yaml:"data"`
	Color  string       `json:"color,omitempty" yaml:"color,omitempty"`
	Marker string       `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Annotation marks one point of a chart with an arrow and label.
type Annotation struct {
	Text  string  `json:"text" yaml:"text"`
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
	Color string  `json:"color" yaml:"color"`
}

// HeatmapData is an annotated square matrix.
type HeatmapData struct {
	Labels   []string    `json:"labels" yaml:"labels"`
	Values   [][]float64 `json:"values" yaml:"values"`
	ColorMap string      `json:"colorMap" yaml:"colorMap"`
}

// Background is decorative art drawn beneath the panels.
type Background struct {
	Source      string  `json:"source" yaml:"source"`
	ContentType string  `json:"contentType" yaml:"contentType"`
	Data        string  `json:"data" yaml:"data"` // base64
	Opacity     float64 `json:"opacity" yaml:"opacity"`
}
