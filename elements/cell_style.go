package elements

import (
	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// CellStyle is the styling of a table cell, either CellStyleDocx or CellStyleXlsx.
type CellStyle interface {
	suffixes() []suffix
}

// CellStyleDocx styles a Word table cell.
type CellStyleDocx struct {
	BackgroundColor    optional.Option[string]
	Width              optional.Option[string]
	PreserveTotalWidth optional.Option[bool]
	Border             optional.Option[string]
	BorderTop          optional.Option[string]
	BorderBottom       optional.Option[string]
	BorderLeft         optional.Option[string]
	BorderRight        optional.Option[string]
	BorderDiagonalDown optional.Option[string]
	BorderDiagonalUp   optional.Option[string]
	BorderColor        optional.Option[string]
}

func (c *CellStyleDocx) suffixes() []suffix {
	return []suffix{
		{"_cell_background_color", c.BackgroundColor},
		{"_width", c.Width},
		{"_preserve_total_width", c.PreserveTotalWidth},
		{"_border", c.Border},
		{"_border_top", c.BorderTop},
		{"_border_bottom", c.BorderBottom},
		{"_border_left", c.BorderLeft},
		{"_border_right", c.BorderRight},
		{"_border_diagonal_down", c.BorderDiagonalDown},
		{"_border_diagonal_up", c.BorderDiagonalUp},
		{"_border_color", c.BorderColor},
	}
}

// CellStyleXlsx styles an Excel cell.
type CellStyleXlsx struct {
	Locked              optional.Option[bool]
	Hidden              optional.Option[bool]
	Background          optional.Option[string]
	FontName            optional.Option[string]
	FontSize            optional.Option[int]
	FontColor           optional.Option[string]
	FontItalic          optional.Option[bool]
	FontBold            optional.Option[bool]
	FontStrike          optional.Option[bool]
	FontUnderline       optional.Option[bool]
	FontSuperscript     optional.Option[bool]
	FontSubscript       optional.Option[bool]
	BorderTop           optional.Option[string]
	BorderTopColor      optional.Option[string]
	BorderBottom        optional.Option[string]
	BorderBottomColor   optional.Option[string]
	BorderLeft          optional.Option[string]
	BorderLeftColor     optional.Option[string]
	BorderRight         optional.Option[string]
	BorderRightColor    optional.Option[string]
	BorderDiagonal      optional.Option[string]
	BorderDiagonalDir   optional.Option[string] // up-wards, down-wards or both
	BorderDiagonalColor optional.Option[string]
	TextHorizontalAlign optional.Option[string]
	TextVerticalAlign   optional.Option[string]
	TextRotation        optional.Option[int]
}

func (c *CellStyleXlsx) suffixes() []suffix {
	return []suffix{
		{"_cell_locked", c.Locked},
		{"_cell_hidden", c.Hidden},
		{"_cell_background", c.Background},
		{"_font_name", c.FontName},
		{"_font_size", c.FontSize},
		{"_font_color", c.FontColor},
		{"_font_italic", c.FontItalic},
		{"_font_bold", c.FontBold},
		{"_font_strike", c.FontStrike},
		{"_font_underline", c.FontUnderline},
		{"_font_superscript", c.FontSuperscript},
		{"_font_subscript", c.FontSubscript},
		{"_border_top", c.BorderTop},
		{"_border_top_color", c.BorderTopColor},
		{"_border_bottom", c.BorderBottom},
		{"_border_bottom_color", c.BorderBottomColor},
		{"_border_left", c.BorderLeft},
		{"_border_left_color", c.BorderLeftColor},
		{"_border_right", c.BorderRight},
		{"_border_right_color", c.BorderRightColor},
		{"_border_diagonal", c.BorderDiagonal},
		{"_border_diagonal_direction", c.BorderDiagonalDir},
		{"_border_diagonal_color", c.BorderDiagonalColor},
		{"_text_h_alignment", c.TextHorizontalAlign},
		{"_text_v_alignment", c.TextVerticalAlign},
		{"_text_rotation", c.TextRotation},
	}
}

// CellStyleProperty inserts a value into a styled table cell: {name$}.
type CellStyleProperty struct {
	base
	Value any
	Style CellStyle
}

func NewCellStyleProperty(name string, value any, style CellStyle) *CellStyleProperty {
	return &CellStyleProperty{base: base{name}, Value: value, Style: style}
}

func (c *CellStyleProperty) AsDict() map[string]any {
	if c.Style == nil {
		return map[string]any{c.name: c.Value}
	}
	return expand(c.name, c.Value, c.Style.suffixes())
}

func (c *CellStyleProperty) AvailableTags() []string {
	return tagSet("{" + c.name + "$}")
}
