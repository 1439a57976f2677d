package elements

import (
	"strconv"

	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// Fixed names of the PDF overlay elements.
const (
	PDFTextsName    = "AOP_PDF_TEXTS"
	PDFImagesName   = "AOP_PDF_IMAGES"
	PDFCommentsName = "AOP_PDF_COMMENTS"
	PDFFormDataName = "aop_pdf_form_data"
)

// AllPages places an overlay on every page.
const AllPages = 0

type overlay interface {
	page() int
	inner() map[string]any
	missing() bool
}

func pageKey(page int) string {
	if page == AllPages {
		return "all"
	}
	return strconv.Itoa(page)
}

// groupByPage builds [{page: [overlay, ...]}], keeping the order of the
// overlays within a page. Nil overlays are skipped.
func groupByPage[T overlay](items []T) []map[string]any {
	pages := map[string]any{}
	for _, it := range items {
		if it.missing() {
			continue
		}
		key := pageKey(it.page())
		list, _ := pages[key].([]map[string]any)
		pages[key] = append(list, it.inner())
	}
	return []map[string]any{pages}
}

// PDFText writes text on top of an output PDF. Coordinates are in points
// from the top left corner.
type PDFText struct {
	Text      string
	X, Y      int
	Page      int
	Rotation  optional.Option[int]
	Bold      optional.Option[bool]
	Italic    optional.Option[bool]
	Font      optional.Option[string]
	FontColor optional.Option[string]
	FontSize  optional.Option[int]
}

func (t *PDFText) page() int { return t.Page }
func (t *PDFText) missing() bool { return t == nil }

func (t *PDFText) inner() map[string]any {
	return emit(map[string]any{"text": t.Text, "x": t.X, "y": t.Y}, []suffix{
		{"rotation", t.Rotation},
		{"bold", t.Bold},
		{"italic", t.Italic},
		{"font", t.Font},
		{"font_color", t.FontColor},
		{"font_size", t.FontSize},
	})
}

// PDFImage stamps an image on top of an output PDF.
type PDFImage struct {
	Image     string // base64 or URL
	X, Y      int
	Page      int
	Rotation  optional.Option[int]
	Width     optional.Option[int]
	Height    optional.Option[int]
	MaxWidth  optional.Option[int]
	MaxHeight optional.Option[int]
}

func (i *PDFImage) page() int { return i.Page }
func (i *PDFImage) missing() bool { return i == nil }

func (i *PDFImage) inner() map[string]any {
	return emit(map[string]any{"image": i.Image, "x": i.X, "y": i.Y}, []suffix{
		{"rotation", i.Rotation},
		{"image_width", i.Width},
		{"image_height", i.Height},
		{"image_max_width", i.MaxWidth},
		{"image_max_height", i.MaxHeight},
	})
}

// PDFComment adds a comment annotation to an output PDF.
type PDFComment struct {
	Comment   string
	X, Y      int
	Page      int
	Font      optional.Option[string]
	FontColor optional.Option[string]
	FontSize  optional.Option[int]
}

func (c *PDFComment) page() int { return c.Page }
func (c *PDFComment) missing() bool { return c == nil }

func (c *PDFComment) inner() map[string]any {
	return emit(map[string]any{"text": c.Comment, "x": c.X, "y": c.Y}, []suffix{
		{"font", c.Font},
		{"font_color", c.FontColor},
		{"font_size", c.FontSize},
	})
}

// PDFTexts groups text overlays by page.
type PDFTexts struct {
	base
	Texts []*PDFText
}

func NewPDFTexts(texts ...*PDFText) *PDFTexts {
	return &PDFTexts{base: base{PDFTextsName}, Texts: texts}
}

func (p *PDFTexts) AsDict() map[string]any {
	return map[string]any{p.name: groupByPage(p.Texts)}
}

func (p *PDFTexts) AvailableTags() []string { return nil }

// PDFImages groups image overlays by page.
type PDFImages struct {
	base
	Images []*PDFImage
}

func NewPDFImages(images ...*PDFImage) *PDFImages {
	return &PDFImages{base: base{PDFImagesName}, Images: images}
}

func (p *PDFImages) AsDict() map[string]any {
	return map[string]any{p.name: groupByPage(p.Images)}
}

func (p *PDFImages) AvailableTags() []string { return nil }

// PDFComments groups comment overlays by page.
type PDFComments struct {
	base
	Comments []*PDFComment
}

func NewPDFComments(comments ...*PDFComment) *PDFComments {
	return &PDFComments{base: base{PDFCommentsName}, Comments: comments}
}

func (p *PDFComments) AsDict() map[string]any {
	return map[string]any{p.name: groupByPage(p.Comments)}
}

func (p *PDFComments) AvailableTags() []string { return nil }

// PDFFormData fills the form fields of a PDF template, field name to value.
type PDFFormData struct {
	base
	Fields map[string]any
}

func NewPDFFormData(fields map[string]any) *PDFFormData {
	return &PDFFormData{base: base{PDFFormDataName}, Fields: fields}
}

func (p *PDFFormData) AsDict() map[string]any {
	return map[string]any{p.name: p.Fields}
}

func (p *PDFFormData) AvailableTags() []string { return nil }
