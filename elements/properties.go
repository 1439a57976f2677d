package elements

import (
	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// Property binds a tag name to a value. The value may be a scalar, a map or
// a slice; it is emitted as-is.
type Property struct {
	base
	Value any
}

func NewProperty(name string, value any) *Property {
	return &Property{base: base{name}, Value: value}
}

func (p *Property) AsDict() map[string]any {
	return map[string]any{p.name: p.Value}
}

func (p *Property) AvailableTags() []string {
	return tagSet("{" + p.name + "}")
}

// prefixed is a property whose only difference is the tag it fills.
type prefixed struct {
	Property
	open, close string
}

func newPrefixed(name string, value any, open, close string) prefixed {
	return prefixed{Property: Property{base: base{name}, Value: value}, open: open, close: close}
}

func (p *prefixed) AvailableTags() []string {
	return tagSet("{" + p.open + p.name + p.close + "}")
}

// HTML inserts the value as HTML: {_name}.
type HTML struct{ prefixed }

func NewHTML(name, value string) *HTML {
	return &HTML{newPrefixed(name, value, "_", "")}
}

// RightToLeft inserts right-to-left text: {<name}.
type RightToLeft struct{ prefixed }

func NewRightToLeft(name, value string) *RightToLeft {
	return &RightToLeft{newPrefixed(name, value, "<", "")}
}

// FootNote inserts a footnote: {+name}.
type FootNote struct{ prefixed }

func NewFootNote(name, value string) *FootNote {
	return &FootNote{newPrefixed(name, value, "+", "")}
}

// Raw inserts the value without any escaping: {@name}.
type Raw struct{ prefixed }

func NewRaw(name string, value any) *Raw {
	return &Raw{newPrefixed(name, value, "@", "")}
}

// Formula inserts a spreadsheet formula: {>name}.
type Formula struct{ prefixed }

func NewFormula(name, formula string) *Formula {
	return &Formula{newPrefixed(name, formula, ">", "")}
}

// PageBreak inserts a page break when the value is true or "page", and a
// column break for "column": {?name}.
type PageBreak struct{ prefixed }

func NewPageBreak(name string, value any) *PageBreak {
	return &PageBreak{newPrefixed(name, value, "?", "")}
}

// MarkdownContent inserts markdown converted by the server: {_name_}.
type MarkdownContent struct{ prefixed }

func NewMarkdownContent(name, value string) *MarkdownContent {
	return &MarkdownContent{newPrefixed(name, value, "_", "_")}
}

// Freeze freezes spreadsheet panes at a cell ("C5"), at the tag position
// (true) or not at all (false): {freeze name}.
type Freeze struct{ prefixed }

func NewFreeze(name string, value any) *Freeze {
	return &Freeze{newPrefixed(name, value, "freeze ", "")}
}

// Insert places a base64 encoded document as an icon: {?insert name}.
type Insert struct{ prefixed }

func NewInsert(name, value string) *Insert {
	return &Insert{newPrefixed(name, value, "?insert ", "")}
}

// Embed copies the content of a base64 encoded docx into the document: {?embed name}.
type Embed struct{ prefixed }

func NewEmbed(name, value string) *Embed {
	return &Embed{newPrefixed(name, value, "?embed ", "")}
}

// AutoLink turns URLs found in the text into hyperlinks: {*auto name}.
type AutoLink struct{ prefixed }

func NewAutoLink(name, value string) *AutoLink {
	return &AutoLink{newPrefixed(name, value, "*auto ", "")}
}

// HideSlide hides the slide holding the tag when the value is true: {hide name}.
type HideSlide struct{ prefixed }

func NewHideSlide(name string, value bool) *HideSlide {
	return &HideSlide{newPrefixed(name, value, "hide ", "")}
}

// Hyperlink inserts a link to URL showing Text: {*name}.
type Hyperlink struct {
	base
	URL  string
	Text optional.Option[string]
}

func NewHyperlink(name, url string) *Hyperlink {
	return &Hyperlink{base: base{name}, URL: url}
}

func (h *Hyperlink) AsDict() map[string]any {
	return expand(h.name, h.URL, []suffix{{"_text", h.Text}})
}

func (h *Hyperlink) AvailableTags() []string {
	return tagSet("{*" + h.name + "}")
}

// TableOfContents inserts a table of contents: {~name}.
type TableOfContents struct {
	base
	Title     optional.Option[string]
	Depth     optional.Option[int]
	TabLeader optional.Option[string] // "dot", "hyphen", "underscore" or "none"
}

func NewTableOfContents(name string) *TableOfContents {
	return &TableOfContents{base: base{name}}
}

// AsDict emits only the set attributes; the table itself has no value.
func (t *TableOfContents) AsDict() map[string]any {
	result := map[string]any{}
	addSuffixes(result, t.name, []suffix{
		{"_title", t.Title},
		{"_show_level", t.Depth},
		{"_tab_leader", t.TabLeader},
	})
	return result
}

func (t *TableOfContents) AvailableTags() []string {
	return tagSet("{~" + t.name + "}")
}

// Span merges table cells: {name#}.
type Span struct {
	base
	Value   any
	Columns int
	Rows    int
}

func NewSpan(name string, value any, columns, rows int) *Span {
	return &Span{base: base{name}, Value: value, Columns: columns, Rows: rows}
}

func (s *Span) AsDict() map[string]any {
	return expand(s.name, s.Value, []suffix{
		{"_col_span", fixed{s.Columns}},
		{"_row_span", fixed{s.Rows}},
	})
}

func (s *Span) AvailableTags() []string {
	return tagSet("{" + s.name + "#}")
}

// StyledProperty inserts text with font styling: {style name}.
type StyledProperty struct {
	base
	Value          any
	Font           optional.Option[string]
	FontSize       optional.Option[int]
	FontColor      optional.Option[string]
	Bold           optional.Option[bool]
	Italic         optional.Option[bool]
	Underline      optional.Option[bool]
	Strikethrough  optional.Option[bool]
	HighlightColor optional.Option[string]
}

func NewStyledProperty(name string, value any) *StyledProperty {
	return &StyledProperty{base: base{name}, Value: value}
}

func (s *StyledProperty) AsDict() map[string]any {
	return expand(s.name, s.Value, []suffix{
		{"_font_family", s.Font},
		{"_font_size", s.FontSize},
		{"_font_color", s.FontColor},
		{"_bold", s.Bold},
		{"_italic", s.Italic},
		{"_underline", s.Underline},
		{"_strikethrough", s.Strikethrough},
		{"_highlight", s.HighlightColor},
	})
}

func (s *StyledProperty) AvailableTags() []string {
	return tagSet("{style " + s.name + "}")
}

// Watermark places text behind the page content: {watermark name}.
type Watermark struct {
	base
	Text     string
	Color    optional.Option[string]
	Font     optional.Option[string]
	Width    optional.Option[string]
	Height   optional.Option[string]
	Opacity  optional.Option[float64]
	Rotation optional.Option[int]
}

func NewWatermark(name, text string) *Watermark {
	return &Watermark{base: base{name}, Text: text}
}

func (w *Watermark) AsDict() map[string]any {
	return expand(w.name, w.Text, []suffix{
		{"_color", w.Color},
		{"_font", w.Font},
		{"_width", w.Width},
		{"_height", w.Height},
		{"_opacity", w.Opacity},
		{"_rotation", w.Rotation},
	})
}

func (w *Watermark) AvailableTags() []string {
	return tagSet("{watermark " + w.name + "}")
}

// TextBox fills a text box shape: {tbox name}.
type TextBox struct {
	base
	Value        any
	Font         optional.Option[string]
	FontColor    optional.Option[string]
	FontSize     optional.Option[int]
	Transparency optional.Option[string]
	Width        optional.Option[string]
	Height       optional.Option[string]
}

func NewTextBox(name string, value any) *TextBox {
	return &TextBox{base: base{name}, Value: value}
}

func (t *TextBox) AsDict() map[string]any {
	return expand(t.name, t.Value, []suffix{
		{"_font", t.Font},
		{"_font_color", t.FontColor},
		{"_font_size", t.FontSize},
		{"_transparency", t.Transparency},
		{"_width", t.Width},
		{"_height", t.Height},
	})
}

func (t *TextBox) AvailableTags() []string {
	return tagSet("{tbox " + t.name + "}")
}

// D3Code renders a D3.js snippet with optional input data: {$d3 name}.
type D3Code struct {
	base
	Code string
	Data optional.Option[any]
}

func NewD3Code(name, code string) *D3Code {
	return &D3Code{base: base{name}, Code: code}
}

func (d *D3Code) AsDict() map[string]any {
	return expand(d.name, d.Code, []suffix{{"_data", d.Data}})
}

func (d *D3Code) AvailableTags() []string {
	return tagSet("{$d3 " + d.name + "}")
}

// SheetProtection protects a spreadsheet sheet: {protect name}. Value is
// usually the password.
type SheetProtection struct {
	base
	Value               any
	AutoFilter          optional.Option[bool]
	DeleteColumns       optional.Option[bool]
	DeleteRows          optional.Option[bool]
	FormatCells         optional.Option[bool]
	FormatColumns       optional.Option[bool]
	FormatRows          optional.Option[bool]
	InsertColumns       optional.Option[bool]
	InsertHyperlinks    optional.Option[bool]
	InsertRows          optional.Option[bool]
	Password            optional.Option[string]
	PivotTables         optional.Option[bool]
	SelectLockedCells   optional.Option[bool]
	SelectUnlockedCells optional.Option[bool]
	Sort                optional.Option[bool]
}

func NewSheetProtection(name string, value any) *SheetProtection {
	return &SheetProtection{base: base{name}, Value: value}
}

func (s *SheetProtection) AsDict() map[string]any {
	return expand(s.name, s.Value, []suffix{
		{"_allow_auto_filter", s.AutoFilter},
		{"_allow_delete_columns", s.DeleteColumns},
		{"_allow_delete_rows", s.DeleteRows},
		{"_allow_format_cells", s.FormatCells},
		{"_allow_format_columns", s.FormatColumns},
		{"_allow_format_rows", s.FormatRows},
		{"_allow_insert_columns", s.InsertColumns},
		{"_allow_insert_hyperlinks", s.InsertHyperlinks},
		{"_allow_insert_rows", s.InsertRows},
		{"_password", s.Password},
		{"_allow_pivot_tables", s.PivotTables},
		{"_allow_select_locked_cells", s.SelectLockedCells},
		{"_allow_select_unlocked_cells", s.SelectUnlockedCells},
		{"_allow_sort", s.Sort},
	})
}

func (s *SheetProtection) AvailableTags() []string {
	return tagSet("{protect " + s.name + "}")
}

// ValidateCell adds a data validation rule to a spreadsheet cell: {validate name}.
type ValidateCell struct {
	base
	Value            any
	IgnoreBlank      optional.Option[bool]
	Allow            optional.Option[string] // anyValue, wholeNumber, decimal, list, date, time, textLength, custom
	Value1           optional.Option[string]
	Value2           optional.Option[string]
	InCellDropdown   optional.Option[bool]
	Data             optional.Option[string]
	ShowInputMessage optional.Option[bool]
	PromptTitle      optional.Option[string]
	Prompt           optional.Option[string]
	ShowErrorMessage optional.Option[bool]
	ErrorTitle       optional.Option[string]
	Error            optional.Option[string]
	ErrorStyle       optional.Option[string] // stop, warning, information
	Operator         optional.Option[string]
}

func NewValidateCell(name string, value any) *ValidateCell {
	return &ValidateCell{base: base{name}, Value: value}
}

func (v *ValidateCell) AsDict() map[string]any {
	return expand(v.name, v.Value, []suffix{
		{"_ignore_blank", v.IgnoreBlank},
		{"_allow", v.Allow},
		{"_value1", v.Value1},
		{"_value2", v.Value2},
		{"_in_cell_dropdown", v.InCellDropdown},
		{"_data", v.Data},
		{"_show_input_message", v.ShowInputMessage},
		{"_prompt_title", v.PromptTitle},
		{"_prompt", v.Prompt},
		{"_show_error_message", v.ShowErrorMessage},
		{"_error_title", v.ErrorTitle},
		{"_error", v.Error},
		{"_error_style", v.ErrorStyle},
		{"_operator", v.Operator},
	})
}

func (v *ValidateCell) AvailableTags() []string {
	return tagSet("{validate " + v.name + "}")
}
