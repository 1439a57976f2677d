package elements

import (
	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// Series is one data series of a chart.
type Series interface {
	AsDict() map[string]any
}

func seriesDict(name optional.Option[string], data []map[string]any, style []suffix) map[string]any {
	result := emit(map[string]any{"data": data}, style)
	if v, ok := name.Any(); ok {
		result["name"] = v
	}
	return result
}

// points zips x and y into {x, y} points, stopping at the shorter slice.
func points(x, y []any) []map[string]any {
	n := min(len(x), len(y))
	data := make([]map[string]any, n)
	for i := range n {
		data[i] = map[string]any{"x": x[i], "y": y[i]}
	}
	return data
}

// XYSeries is a plain series of x/y points, used by scatter charts.
type XYSeries struct {
	Name optional.Option[string]
	X    []any
	Y    []any
}

func (s *XYSeries) AsDict() map[string]any {
	return seriesDict(s.Name, points(s.X, s.Y), nil)
}

type ScatterSeries = XYSeries

// LineSeries is a series of line and radar charts.
type LineSeries struct {
	Name       optional.Option[string]
	X          []any
	Y          []any
	Smooth     optional.Option[bool]
	Symbol     optional.Option[string] // square, diamond or triangle
	SymbolSize optional.Option[any]
	Color      optional.Option[string]
	LineWidth  optional.Option[string]
	LineStyle  optional.Option[string] // solid, sysDash, sysDot, dash, dashDot, lgDash, lgDashDot or lgDashDotDot
}

func (s *LineSeries) AsDict() map[string]any {
	return seriesDict(s.Name, points(s.X, s.Y), []suffix{
		{"smooth", s.Smooth},
		{"symbol", s.Symbol},
		{"symbolSize", s.SymbolSize},
		{"color", s.Color},
		{"lineWidth", s.LineWidth},
		{"lineStyle", s.LineStyle},
	})
}

type RadarSeries = LineSeries

// BarSeries is a series of bar and column charts.
type BarSeries struct {
	Name  optional.Option[string]
	X     []any
	Y     []any
	Color optional.Option[string]
}

func (s *BarSeries) AsDict() map[string]any {
	return seriesDict(s.Name, points(s.X, s.Y), []suffix{{"color", s.Color}})
}

type ColumnSeries = BarSeries

// PieSeries is a series of pie and doughnut charts. Colors, when given, is
// matched to the points by index.
type PieSeries struct {
	Name   optional.Option[string]
	X      []any
	Y      []any
	Colors []string
}

func (s *PieSeries) AsDict() map[string]any {
	data := points(s.X, s.Y)
	for i := range data {
		if i < len(s.Colors) {
			data[i]["color"] = s.Colors[i]
		}
	}
	return seriesDict(s.Name, data, nil)
}

type DoughnutSeries = PieSeries

// AreaSeries is a series of area charts.
type AreaSeries struct {
	Name    optional.Option[string]
	X       []any
	Y       []any
	Color   optional.Option[string]
	Opacity optional.Option[float64]
}

func (s *AreaSeries) AsDict() map[string]any {
	return seriesDict(s.Name, points(s.X, s.Y), []suffix{
		{"color", s.Color},
		{"opacity", s.Opacity},
	})
}

// BubbleSeries is a series of bubble charts; Sizes is matched to the points
// by index.
type BubbleSeries struct {
	Name  optional.Option[string]
	X     []any
	Y     []any
	Sizes []any
	Color optional.Option[string]
}

func (s *BubbleSeries) AsDict() map[string]any {
	data := points(s.X, s.Y)
	for i := range data {
		if i < len(s.Sizes) {
			data[i]["size"] = s.Sizes[i]
		}
	}
	return seriesDict(s.Name, data, []suffix{{"color", s.Color}})
}

// StockSeries is a series of stock charts. Open and Volume are optional.
type StockSeries struct {
	Name   optional.Option[string]
	X      []any
	High   []any
	Low    []any
	Close  []any
	Open   []any
	Volume []any
}

func (s *StockSeries) AsDict() map[string]any {
	n := min(len(s.X), len(s.High), len(s.Low), len(s.Close))
	data := make([]map[string]any, n)
	for i := range n {
		p := map[string]any{"x": s.X[i], "high": s.High[i], "low": s.Low[i], "close": s.Close[i]}
		if i < len(s.Open) {
			p["open"] = s.Open[i]
		}
		if i < len(s.Volume) {
			p["volume"] = s.Volume[i]
		}
		data[i] = p
	}
	return seriesDict(s.Name, data, nil)
}
