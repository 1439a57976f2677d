package elements

import (
	"maps"
	"slices"
)

// ChartType is the server's name for a kind of chart.
type ChartType string

const (
	LineChartType                 ChartType = "line"
	Line3DChartType               ChartType = "line3d"
	BarChartType                  ChartType = "bar"
	BarStackedChartType           ChartType = "barStacked"
	BarStackedPercentChartType    ChartType = "barStackedPercent"
	Bar3DChartType                ChartType = "bar3d"
	ColumnChartType               ChartType = "column"
	ColumnStackedChartType        ChartType = "columnStacked"
	ColumnStackedPercentChartType ChartType = "columnStackedPercent"
	Column3DChartType             ChartType = "column3d"
	PieChartType                  ChartType = "pie"
	Pie3DChartType                ChartType = "pie3d"
	DoughnutChartType             ChartType = "doughnut"
	AreaChartType                 ChartType = "area"
	Area3DChartType               ChartType = "area3d"
	ScatterChartType              ChartType = "scatter"
	BubbleChartType               ChartType = "bubble"
	StockChartType                ChartType = "stock"
	RadarChartType                ChartType = "radar"
)

// seriesKeys maps each chart type to the key holding its series.
var seriesKeys = map[ChartType]string{
	LineChartType:                 "lines",
	Line3DChartType:               "lines",
	BarChartType:                  "bars",
	BarStackedChartType:           "bars",
	BarStackedPercentChartType:    "bars",
	Bar3DChartType:                "bars",
	ColumnChartType:               "columns",
	ColumnStackedChartType:        "columns",
	ColumnStackedPercentChartType: "columns",
	Column3DChartType:             "columns",
	PieChartType:                  "pies",
	Pie3DChartType:                "pies",
	DoughnutChartType:             "doughnuts",
	AreaChartType:                 "areas",
	Area3DChartType:               "areas",
	ScatterChartType:              "scatters",
	BubbleChartType:               "bubbles",
	StockChartType:                "stocks",
	RadarChartType:                "radars",
}

// SeriesKey returns the payload key of the type's series.
func (t ChartType) SeriesKey() string {
	if k, ok := seriesKeys[t]; ok {
		return k
	}
	return string(t) + "s"
}

func chartTags(name string) []string {
	return tagSet("{$" + name + "}")
}

// Chart inserts a chart: {$name}. It serializes as
// name: {type, <series key>: [...], options}.
type Chart struct {
	base
	Type    ChartType
	Series  []Series
	Options *ChartOptions
}

// NewChart creates a chart of any type. The typed constructors below only
// accept the series shape their type expects.
func NewChart(name string, t ChartType, series ...Series) *Chart {
	return &Chart{base: base{name}, Type: t, Series: slices.Clone(series)}
}

func newTypedChart[S Series](name string, t ChartType, series []S) *Chart {
	c := &Chart{base: base{name}, Type: t}
	for _, s := range series {
		c.Series = append(c.Series, s)
	}
	return c
}

func NewLineChart(name string, series ...*LineSeries) *Chart {
	return newTypedChart(name, LineChartType, series)
}

func NewLine3DChart(name string, series ...*LineSeries) *Chart {
	return newTypedChart(name, Line3DChartType, series)
}

func NewBarChart(name string, series ...*BarSeries) *Chart {
	return newTypedChart(name, BarChartType, series)
}

func NewBarStackedChart(name string, series ...*BarSeries) *Chart {
	return newTypedChart(name, BarStackedChartType, series)
}

func NewBarStackedPercentChart(name string, series ...*BarSeries) *Chart {
	return newTypedChart(name, BarStackedPercentChartType, series)
}

func NewBar3DChart(name string, series ...*BarSeries) *Chart {
	return newTypedChart(name, Bar3DChartType, series)
}

func NewColumnChart(name string, series ...*ColumnSeries) *Chart {
	return newTypedChart(name, ColumnChartType, series)
}

func NewColumnStackedChart(name string, series ...*ColumnSeries) *Chart {
	return newTypedChart(name, ColumnStackedChartType, series)
}

func NewColumnStackedPercentChart(name string, series ...*ColumnSeries) *Chart {
	return newTypedChart(name, ColumnStackedPercentChartType, series)
}

func NewColumn3DChart(name string, series ...*ColumnSeries) *Chart {
	return newTypedChart(name, Column3DChartType, series)
}

func NewPieChart(name string, series ...*PieSeries) *Chart {
	return newTypedChart(name, PieChartType, series)
}

func NewPie3DChart(name string, series ...*PieSeries) *Chart {
	return newTypedChart(name, Pie3DChartType, series)
}

func NewDoughnutChart(name string, series ...*DoughnutSeries) *Chart {
	return newTypedChart(name, DoughnutChartType, series)
}

func NewAreaChart(name string, series ...*AreaSeries) *Chart {
	return newTypedChart(name, AreaChartType, series)
}

func NewArea3DChart(name string, series ...*AreaSeries) *Chart {
	return newTypedChart(name, Area3DChartType, series)
}

func NewScatterChart(name string, series ...*ScatterSeries) *Chart {
	return newTypedChart(name, ScatterChartType, series)
}

func NewBubbleChart(name string, series ...*BubbleSeries) *Chart {
	return newTypedChart(name, BubbleChartType, series)
}

func NewStockChart(name string, series ...*StockSeries) *Chart {
	return newTypedChart(name, StockChartType, series)
}

func NewRadarChart(name string, series ...*RadarSeries) *Chart {
	return newTypedChart(name, RadarChartType, series)
}

func (c *Chart) payload() map[string]any {
	series := make([]map[string]any, 0, len(c.Series))
	for _, s := range c.Series {
		series = append(series, s.AsDict())
	}
	result := map[string]any{
		"type":             string(c.Type),
		c.Type.SeriesKey(): series,
	}
	if c.Options != nil {
		result["options"] = c.Options.AsDict()
	}
	return result
}

func (c *Chart) AsDict() map[string]any {
	return map[string]any{c.name: c.payload()}
}

func (c *Chart) AvailableTags() []string {
	return chartTags(c.name)
}

// CombinedChart draws several charts in one plot area. Secondary charts are
// plotted against the second y axis.
type CombinedChart struct {
	base
	Charts      []*Chart
	Secondaries []*Chart
	// Options replaces the merged options of the combined charts when set.
	Options *ChartOptions
}

func NewCombinedChart(name string, charts, secondaries []*Chart) *CombinedChart {
	return &CombinedChart{base: base{name}, Charts: charts, Secondaries: secondaries}
}

func (c *CombinedChart) AsDict() map[string]any {
	multiples := make([]map[string]any, 0, len(c.Charts)+len(c.Secondaries))
	var merged map[string]any
	collect := func(ch *Chart, secondary bool) {
		p := ch.payload()
		if opts, ok := p["options"].(map[string]any); ok {
			if secondary {
				opts = moveYToY2(opts)
			}
			merged = mergeOptions(merged, opts)
			delete(p, "options")
		}
		if secondary {
			p = renameY(p).(map[string]any)
		}
		multiples = append(multiples, p)
	}
	for _, ch := range c.Charts {
		collect(ch, false)
	}
	for _, ch := range c.Secondaries {
		collect(ch, true)
	}

	result := map[string]any{"type": "multiple", "multiples": multiples}
	switch {
	case c.Options != nil:
		result["options"] = c.Options.AsDict()
	case merged != nil:
		result["options"] = merged
	}
	return map[string]any{c.name: result}
}

func (c *CombinedChart) AvailableTags() []string {
	return chartTags(c.name)
}

// mergeOptions layers src over dst. Axis settings are merged per axis.
func mergeOptions(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = map[string]any{}
	}
	for k, v := range src {
		srcAxis, ok := v.(map[string]any)
		dstAxis, ok2 := dst[k].(map[string]any)
		if k == "axis" && ok && ok2 {
			maps.Copy(dstAxis, srcAxis)
			continue
		}
		dst[k] = v
	}
	return dst
}

// moveYToY2 moves the y axis settings of a secondary chart to y2.
func moveYToY2(opts map[string]any) map[string]any {
	axis, ok := opts["axis"].(map[string]any)
	if !ok {
		return opts
	}
	y, ok := axis["y"]
	if !ok {
		return opts
	}
	moved := maps.Clone(axis)
	delete(moved, "y")
	moved["y2"] = y
	out := maps.Clone(opts)
	out["axis"] = moved
	return out
}

// renameY renames every "y" key to "y2", depth first. Values under an
// "options" key are left alone.
func renameY(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if k == "options" {
				out[k] = val
				continue
			}
			if k == "y" {
				k = "y2"
			}
			out[k] = renameY(val)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, val := range t {
			out[i] = renameY(val).(map[string]any)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = renameY(val)
		}
		return out
	default:
		return v
	}
}

// COPAxis is one axis of a COPChart.
type COPAxis struct {
	Title string
	Date  *ChartDateOptions
}

// COPSeries is a named data series of a COPChart.
type COPSeries struct {
	Name string
	Data []any
}

// COPChart is a chart described by data only; the template decides how it
// looks: {$name}.
type COPChart struct {
	base
	XData  []any
	Series []COPSeries
	X      COPAxis
	Y      COPAxis
	X2     *COPAxis
	Y2     *COPAxis
	Title  string
}

func NewCOPChart(name string, xData []any, series ...COPSeries) *COPChart {
	return &COPChart{base: base{name}, XData: slices.Clone(xData), Series: slices.Clone(series)}
}

func (c *COPChart) AsDict() map[string]any {
	x := map[string]any{"data": c.XData}
	if c.X.Title != "" {
		x["title"] = c.X.Title
	}
	if c.X.Date != nil {
		x["date"] = c.X.Date.AsDict()
	}

	series := make([]map[string]any, 0, len(c.Series))
	for _, s := range c.Series {
		series = append(series, map[string]any{"name": s.Name, "data": s.Data})
	}
	y := map[string]any{"series": series}
	if c.Y.Title != "" {
		y["title"] = c.Y.Title
	}

	result := map[string]any{"xAxis": x, "yAxis": y}
	if c.X2 != nil {
		result["x2Axis"] = secondaryAxis(c.X2)
	}
	if c.Y2 != nil {
		result["y2Axis"] = secondaryAxis(c.Y2)
	}
	if c.Title != "" {
		result["title"] = c.Title
	}
	return map[string]any{c.name: result}
}

func secondaryAxis(a *COPAxis) map[string]any {
	out := map[string]any{"title": a.Title}
	if a.Date != nil {
		out["date"] = a.Date.AsDict()
	}
	return out
}

func (c *COPChart) AvailableTags() []string {
	return chartTags(c.name)
}
