package elements

import (
	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// emit copies every set option into m under its bare key.
func emit(m map[string]any, fields []suffix) map[string]any {
	addSuffixes(m, "", fields)
	return m
}

// ChartTextStyle styles chart titles, labels and legends.
type ChartTextStyle struct {
	Italic optional.Option[bool]
	Bold   optional.Option[bool]
	Color  optional.Option[string]
	Font   optional.Option[string]
}

func (s *ChartTextStyle) AsDict() map[string]any {
	return emit(map[string]any{}, []suffix{
		{"italic", s.Italic},
		{"bold", s.Bold},
		{"color", s.Color},
		{"font", s.Font},
	})
}

// ChartDateOptions describes a date axis.
type ChartDateOptions struct {
	Format optional.Option[string] // e.g. "d/m/yyyy"
	Code   optional.Option[string]
	Unit   optional.Option[string] // days, months or years
	Step   optional.Option[int]
}

func (d *ChartDateOptions) AsDict() map[string]any {
	return emit(map[string]any{}, []suffix{
		{"format", d.Format},
		{"code", d.Code},
		{"unit", d.Unit},
		{"step", d.Step},
	})
}

// ChartAxisOptions configures one axis of a chart.
type ChartAxisOptions struct {
	Orientation    optional.Option[string] // minMax or maxMin
	Min            optional.Option[float64]
	Max            optional.Option[float64]
	Date           *ChartDateOptions
	Title          optional.Option[string]
	Values         optional.Option[bool]
	ValuesStyle    *ChartTextStyle
	TitleStyle     *ChartTextStyle
	TitleRotation  optional.Option[int]
	MajorGridLines optional.Option[bool]
	MajorUnit      optional.Option[float64]
	MinorGridLines optional.Option[bool]
	MinorUnit      optional.Option[float64]
	FormatCode     optional.Option[string]
}

func (a *ChartAxisOptions) AsDict() map[string]any {
	result := emit(map[string]any{}, []suffix{
		{"orientation", a.Orientation},
		{"min", a.Min},
		{"max", a.Max},
		{"title", a.Title},
		{"showValues", a.Values},
		{"titleRotation", a.TitleRotation},
		{"majorGridlines", a.MajorGridLines},
		{"majorUnit", a.MajorUnit},
		{"minorGridlines", a.MinorGridLines},
		{"minorUnit", a.MinorUnit},
		{"formatCode", a.FormatCode},
	})
	if a.Date != nil {
		result["type"] = "date"
		result["date"] = a.Date.AsDict()
	}
	if a.ValuesStyle != nil {
		result["valuesStyle"] = a.ValuesStyle.AsDict()
	}
	if a.TitleStyle != nil {
		result["titleStyle"] = a.TitleStyle.AsDict()
	}
	return result
}

// ChartLegend places the legend of a chart.
type ChartLegend struct {
	Position optional.Option[string] // l, r, t or b
	Style    *ChartTextStyle
}

// ChartDataLabels selects what is printed next to each data point.
type ChartDataLabels struct {
	Separator    optional.Option[string]
	SeriesName   optional.Option[bool]
	CategoryName optional.Option[bool]
	LegendKey    optional.Option[bool]
	Value        optional.Option[bool]
	Percentage   optional.Option[bool]
	Position     optional.Option[string] // center, left, right, above, below, inBase, bestFit, outEnd, inEnd
}

// ChartOptions holds the layout of a chart. Legend and data labels are only
// emitted after SetLegend or SetDataLabels.
type ChartOptions struct {
	XAxis             *ChartAxisOptions
	YAxis             *ChartAxisOptions
	Y2Axis            *ChartAxisOptions
	Width             optional.Option[int]
	Height            optional.Option[int]
	Border            optional.Option[bool]
	RoundedCorners    optional.Option[bool]
	BackgroundColor   optional.Option[string]
	BackgroundOpacity optional.Option[int]
	Title             optional.Option[string]
	TitleStyle        *ChartTextStyle
	Grid              optional.Option[bool]
	HoleSize          optional.Option[int] // doughnut charts only

	legend     map[string]any
	dataLabels map[string]any
}

// SetLegend shows the legend.
func (o *ChartOptions) SetLegend(l ChartLegend) {
	legend := emit(map[string]any{"showLegend": true}, []suffix{{"position", l.Position}})
	if l.Style != nil {
		legend["style"] = l.Style.AsDict()
	}
	o.legend = legend
}

// SetDataLabels shows data labels.
func (o *ChartOptions) SetDataLabels(d ChartDataLabels) {
	o.dataLabels = emit(map[string]any{"showDataLabels": true}, []suffix{
		{"separator", d.Separator},
		{"showSeriesName", d.SeriesName},
		{"showCategoryName", d.CategoryName},
		{"showLegendKey", d.LegendKey},
		{"showValue", d.Value},
		{"showPercentage", d.Percentage},
		{"position", d.Position},
	})
}

func (o *ChartOptions) AsDict() map[string]any {
	result := emit(map[string]any{}, []suffix{
		{"width", o.Width},
		{"height", o.Height},
		{"border", o.Border},
		{"roundedCorners", o.RoundedCorners},
		{"backgroundColor", o.BackgroundColor},
		{"backgroundOpacity", o.BackgroundOpacity},
		{"title", o.Title},
		{"grid", o.Grid},
		{"holeSize", o.HoleSize},
	})
	axis := map[string]any{}
	for key, a := range map[string]*ChartAxisOptions{"x": o.XAxis, "y": o.YAxis, "y2": o.Y2Axis} {
		if a != nil {
			axis[key] = a.AsDict()
		}
	}
	if len(axis) > 0 {
		result["axis"] = axis
	}
	if o.TitleStyle != nil {
		result["titleStyle"] = o.TitleStyle.AsDict()
	}
	if o.legend != nil {
		result["legend"] = deepCopyValue(o.legend)
	}
	if o.dataLabels != nil {
		result["dataLabels"] = deepCopyValue(o.dataLabels)
	}
	return result
}
