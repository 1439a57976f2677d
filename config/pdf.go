package config

import "github.com/rmitchellscott/cloudofficeprint/optional"

// Side names one page margin.
type Side string

const (
	Top    Side = "top"
	Bottom Side = "bottom"
	Left   Side = "left"
	Right  Side = "right"
)

var sides = []Side{Top, Bottom, Left, Right}

// PDFOptions are the PDF specific output settings.
//
// The page margin is either one value for every side or a value per side.
// Setting a single side while a uniform margin is set copies the uniform
// value to all sides first.
type PDFOptions struct {
	ReadPassword           optional.Option[string]
	ModifyPassword         optional.Option[string]
	PasswordProtectionFlag optional.Option[int]
	Watermark              optional.Option[string]
	WatermarkColor         optional.Option[string]
	WatermarkFont          optional.Option[string]
	WatermarkOpacity       optional.Option[int]
	WatermarkSize          optional.Option[int]
	WatermarkRotation      optional.Option[int]
	LockForm               optional.Option[bool]
	Copies                 optional.Option[int]
	PageWidth              optional.Option[any]
	PageHeight             optional.Option[any]
	PageFormat             optional.Option[string]
	Landscape              optional.Option[bool]
	Merge                  optional.Option[bool]
	MergeMakingEven        optional.Option[bool]
	EvenPage               optional.Option[bool]
	RemoveLastPage         optional.Option[bool]
	Split                  optional.Option[bool]
	IdentifyFormFields     optional.Option[bool]
	SignCertificate        optional.Option[string]
	SignCertificatePass    optional.Option[string]
	SignCertificateTxt     optional.Option[string]
	ConvertToPDFA          optional.Option[string]
	AttachmentJSON         optional.Option[string]
	InsertBarcode          optional.Option[bool]

	margin  optional.Option[int]
	margins map[Side]int
}

// SetPageMargin sets one margin for all sides.
func (p *PDFOptions) SetPageMargin(v int) {
	p.margin = optional.Some(v)
	p.margins = nil
}

// SetPageMargins replaces the margins with a value per side. Sides missing
// from m are left unset.
func (p *PDFOptions) SetPageMargins(m map[Side]int) {
	p.margin = nil
	p.margins = make(map[Side]int, len(m))
	for _, s := range sides {
		if v, ok := m[s]; ok {
			p.margins[s] = v
		}
	}
}

// SetPageMarginSide sets the margin of one side.
func (p *PDFOptions) SetPageMarginSide(side Side, v int) {
	if p.margins == nil {
		p.margins = map[Side]int{}
		if p.margin.Has() {
			for _, s := range sides {
				p.margins[s] = p.margin.Value()
			}
		}
	}
	p.margin = nil
	p.margins[side] = v
}

// PageMargin returns the uniform margin, if one is set.
func (p *PDFOptions) PageMargin() (int, bool) {
	return p.margin.Value(), p.margin.Has()
}

// PageMarginSide returns the margin of one side. A uniform margin applies to
// every side.
func (p *PDFOptions) PageMarginSide(side Side) (int, bool) {
	if p.margin.Has() {
		return p.margin.Value(), true
	}
	v, ok := p.margins[side]
	return v, ok
}

func (p *PDFOptions) AsDict() map[string]any {
	result := map[string]any{}
	put(result, []entry{
		{"output_read_password", p.ReadPassword},
		{"output_modify_password", p.ModifyPassword},
		{"output_password_protection_flag", p.PasswordProtectionFlag},
		{"output_watermark", p.Watermark},
		{"output_watermark_color", p.WatermarkColor},
		{"output_watermark_font", p.WatermarkFont},
		{"output_watermark_opacity", p.WatermarkOpacity},
		{"output_watermark_size", p.WatermarkSize},
		{"output_watermark_rotation", p.WatermarkRotation},
		{"lock_form", p.LockForm},
		{"output_copies", p.Copies},
		{"output_page_width", p.PageWidth},
		{"output_page_height", p.PageHeight},
		{"output_page_format", p.PageFormat},
		{"output_merge", p.Merge},
		{"output_merge_making_even", p.MergeMakingEven},
		{"output_even_page", p.EvenPage},
		{"output_remove_last_page", p.RemoveLastPage},
		{"output_split", p.Split},
		{"identify_form_fields", p.IdentifyFormFields},
		{"output_sign_certificate", p.SignCertificate},
		{"output_sign_certificate_password", p.SignCertificatePass},
		{"output_sign_certificate_txt", p.SignCertificateTxt},
		{"output_convert_to_pdfa", p.ConvertToPDFA},
		{"output_attachment_json", p.AttachmentJSON},
		{"output_insert_barcode", p.InsertBarcode},
	})
	if p.Landscape.Has() {
		if p.Landscape.Value() {
			result["page_orientation"] = "landscape"
		} else {
			result["page_orientation"] = "portrait"
		}
	}
	if p.margin.Has() {
		result["output_page_margin"] = p.margin.Value()
	}
	for side, v := range p.margins {
		result["output_page_margin_"+string(side)] = v
	}
	return result
}

// CsvOptions are the CSV specific output settings.
type CsvOptions struct {
	TextDelimiter  optional.Option[string]
	FieldSeparator optional.Option[string]
	// CharacterSet is the LibreOffice character set code, e.g. 76 for UTF-8.
	CharacterSet optional.Option[int]
}

func (c *CsvOptions) AsDict() map[string]any {
	result := map[string]any{}
	put(result, []entry{
		{"output_text_delimiter", c.TextDelimiter},
		{"output_field_separator", c.FieldSeparator},
		{"output_character_set", c.CharacterSet},
	})
	return result
}
