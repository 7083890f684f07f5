package charts

import "github.com/netkit-wifi/netkit/internal/netkiterr"

// BarChartData is a categorical bar chart.
type BarChartData struct {
	Title      string
	Categories []string
	Values     []float64
	Colors     []string
}

// NewBarChartData validates that categories and values have matching,
// non-zero length, and assigns each bar a palette color from scheme.
func NewBarChartData(title string, categories []string, values []float64, scheme ColorScheme) (BarChartData, error) {
	if len(categories) == 0 {
		return BarChartData{}, netkiterr.NewInvalidInput("categories", "bar chart must have at least one category")
	}
	if len(categories) != len(values) {
		return BarChartData{}, netkiterr.NewInvalidInput("values", "must match the number of categories")
	}

	colors := make([]string, len(categories))
	for i := range colors {
		colors[i] = ColorFor(scheme, i)
	}

	return BarChartData{Title: title, Categories: categories, Values: values, Colors: colors}, nil
}

// PieSlice is one wedge of a PieChartData.
type PieSlice struct {
	Label string
	Value float64
	Color string
}

// PieChartData is a proportional pie/donut chart.
type PieChartData struct {
	Title  string
	Slices []PieSlice
}

// NewPieChartData validates a non-empty, non-negative slice set and
// assigns palette colors to any slice that doesn't specify one.
func NewPieChartData(title string, slices []PieSlice, scheme ColorScheme) (PieChartData, error) {
	if len(slices) == 0 {
		return PieChartData{}, netkiterr.NewInvalidInput("slices", "pie chart must have at least one slice")
	}

	out := make([]PieSlice, len(slices))
	for i, s := range slices {
		if s.Value < 0 {
			return PieChartData{}, netkiterr.NewInvalidInput("value", "slice values must be non-negative")
		}
		color := s.Color
		if color == "" {
			color = ColorFor(scheme, i)
		} else if !IsValidHexColor(color) {
			return PieChartData{}, netkiterr.NewInvalidInput("color", "must be a valid hex color")
		}
		out[i] = PieSlice{Label: s.Label, Value: s.Value, Color: color}
	}

	return PieChartData{Title: title, Slices: out}, nil
}

// ScatterPoint is one (x, y, optional label) sample.
type ScatterPoint struct {
	X, Y  float64
	Label string
}

// ScatterPlotData is a scatter chart.
type ScatterPlotData struct {
	Title  string
	Points []ScatterPoint
	Color  string
}

// NewScatterPlotData validates a non-empty point set and a valid hex
// color.
func NewScatterPlotData(title string, points []ScatterPoint, color string) (ScatterPlotData, error) {
	if len(points) == 0 {
		return ScatterPlotData{}, netkiterr.NewInvalidInput("points", "scatter plot must have at least one point")
	}
	if color == "" {
		color = ColorFor(SchemeDefault, 0)
	} else if !IsValidHexColor(color) {
		return ScatterPlotData{}, netkiterr.NewInvalidInput("color", "must be a valid hex color")
	}
	return ScatterPlotData{Title: title, Points: points, Color: color}, nil
}

// BoxPlotQuintiles are the five summary statistics of a BoxPlotData
// entry, in ascending order.
type BoxPlotQuintiles struct {
	Min, Q1, Median, Q3, Max float64
}

// BoxPlotEntry is one labeled box-and-whisker distribution.
type BoxPlotEntry struct {
	Label     string
	Quintiles BoxPlotQuintiles
	Outliers  []float64
}

// BoxPlotData is a multi-entry box plot.
type BoxPlotData struct {
	Title   string
	Entries []BoxPlotEntry
}

// NewBoxPlotData validates a non-empty entry set with correctly
// ordered quintiles per entry
func NewBoxPlotData(title string, entries []BoxPlotEntry) (BoxPlotData, error) {
	if len(entries) == 0 {
		return BoxPlotData{}, netkiterr.NewInvalidInput("entries", "box plot must have at least one entry")
	}
	for _, e := range entries {
		q := e.Quintiles
		if !(q.Min <= q.Q1 && q.Q1 <= q.Median && q.Median <= q.Q3 && q.Q3 <= q.Max) {
			return BoxPlotData{}, netkiterr.NewInvalidInput("quintiles", "min <= q1 <= median <= q3 <= max must hold")
		}
	}
	return BoxPlotData{Title: title, Entries: entries}, nil
}
