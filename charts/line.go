package charts

import "github.com/netkit-wifi/netkit/internal/netkiterr"

// Point is a single (x, y) chart coordinate.
type Point struct {
	X, Y float64
}

// LineChartData is a single-series line chart.
type LineChartData struct {
	Title  string
	Points []Point
	Color  string
}

// NewLineChartData validates and builds a LineChartData: the series
// must be non-empty and the color, if set, must be a valid hex color.
func NewLineChartData(title string, points []Point, color string) (LineChartData, error) {
	if len(points) == 0 {
		return LineChartData{}, netkiterr.NewInvalidInput("points", "line chart series must not be empty")
	}
	if color == "" {
		color = ColorFor(SchemeDefault, 0)
	} else if !IsValidHexColor(color) {
		return LineChartData{}, netkiterr.NewInvalidInput("color", "must be a valid hex color")
	}
	return LineChartData{Title: title, Points: points, Color: color}, nil
}

// AreaChartData is a single-series filled area chart.
type AreaChartData struct {
	Title   string
	Points  []Point
	Color   string
	Opacity float64
}

// NewAreaChartData validates and builds an AreaChartData, per the same
// rules as NewLineChartData plus an opacity in [0,1].
func NewAreaChartData(title string, points []Point, color string, opacity float64) (AreaChartData, error) {
	line, err := NewLineChartData(title, points, color)
	if err != nil {
		return AreaChartData{}, err
	}
	if opacity < 0 || opacity > 1 {
		return AreaChartData{}, netkiterr.NewInvalidInput("opacity", "must be in [0,1]")
	}
	return AreaChartData{Title: line.Title, Points: line.Points, Color: line.Color, Opacity: opacity}, nil
}

// Series is one named series within a MultiSeriesChartData.
type Series struct {
	Name   string
	Points []Point
	Color  string
}

// MultiSeriesChartData is a line chart with multiple named series.
type MultiSeriesChartData struct {
	Title  string
	Series []Series
}

// NewMultiSeriesChartData validates that every series is non-empty and
// assigns palette colors to any series that doesn't specify one.
func NewMultiSeriesChartData(title string, series []Series, scheme ColorScheme) (MultiSeriesChartData, error) {
	if len(series) == 0 {
		return MultiSeriesChartData{}, netkiterr.NewInvalidInput("series", "multi-series chart must have at least one series")
	}

	out := make([]Series, len(series))
	for i, s := range series {
		if len(s.Points) == 0 {
			return MultiSeriesChartData{}, netkiterr.NewInvalidInput("series", "every series must be non-empty")
		}
		color := s.Color
		if color == "" {
			color = ColorFor(scheme, i)
		} else if !IsValidHexColor(color) {
			return MultiSeriesChartData{}, netkiterr.NewInvalidInput("color", "must be a valid hex color")
		}
		out[i] = Series{Name: s.Name, Points: s.Points, Color: color}
	}

	return MultiSeriesChartData{Title: title, Series: out}, nil
}
