package elements

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmitchellscott/cloudofficeprint/optional"
)

func TestPropertyTags(t *testing.T) {
	tests := []struct {
		element Element
		want    []string
	}{
		{NewProperty("title", "x"), []string{"{title}"}},
		{NewHTML("body", "<b>x</b>"), []string{"{_body}"}},
		{NewRightToLeft("rtl", "x"), []string{"{<rtl}"}},
		{NewFootNote("note", "x"), []string{"{+note}"}},
		{NewRaw("raw", "x"), []string{"{@raw}"}},
		{NewFormula("sum", "=A1+A2"), []string{"{>sum}"}},
		{NewPageBreak("pb", true), []string{"{?pb}"}},
		{NewMarkdownContent("md", "# x"), []string{"{_md_}"}},
		{NewFreeze("fr", "C5"), []string{"{freeze fr}"}},
		{NewInsert("ins", "AAA"), []string{"{?insert ins}"}},
		{NewEmbed("emb", "AAA"), []string{"{?embed emb}"}},
		{NewAutoLink("al", "see https://x"), []string{"{*auto al}"}},
		{NewHideSlide("hs", true), []string{"{hide hs}"}},
		{NewHyperlink("link", "https://x"), []string{"{*link}"}},
		{NewTableOfContents("toc"), []string{"{~toc}"}},
		{NewSpan("cell", "x", 2, 1), []string{"{cell#}"}},
		{NewStyledProperty("st", "x"), []string{"{style st}"}},
		{NewWatermark("wm", "DRAFT"), []string{"{watermark wm}"}},
		{NewTextBox("tb", "x"), []string{"{tbox tb}"}},
		{NewD3Code("d3", "code"), []string{"{$d3 d3}"}},
		{NewSheetProtection("prot", "pw"), []string{"{protect prot}"}},
		{NewValidateCell("val", "x"), []string{"{validate val}"}},
		{NewCellStyleProperty("cs", "x", nil), []string{"{cs$}"}},
	}
	for _, tt := range tests {
		t.Run(tt.element.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.element.AvailableTags())
		})
	}
}

func TestRequiredFieldsOnly(t *testing.T) {
	tests := []struct {
		element Element
		want    map[string]any
	}{
		{NewProperty("p", []any{1, 2}), map[string]any{"p": []any{1, 2}}},
		{NewHTML("h", "<i>x</i>"), map[string]any{"h": "<i>x</i>"}},
		{NewHyperlink("l", "https://x"), map[string]any{"l": "https://x"}},
		{NewStyledProperty("s", "v"), map[string]any{"s": "v"}},
		{NewWatermark("w", "DRAFT"), map[string]any{"w": "DRAFT"}},
		{NewTextBox("t", "v"), map[string]any{"t": "v"}},
		{NewD3Code("d", "code"), map[string]any{"d": "code"}},
		{NewSheetProtection("sp", "pw"), map[string]any{"sp": "pw"}},
		{NewValidateCell("vc", "v"), map[string]any{"vc": "v"}},
		{NewCellStyleProperty("c", "v", &CellStyleDocx{}), map[string]any{"c": "v"}},
		{NewImage("img", "AAAA"), map[string]any{"img": "AAAA"}},
		{NewTableOfContents("toc"), map[string]any{}},
	}
	for _, tt := range tests {
		t.Run(tt.element.Name(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.element.AsDict())
		})
	}
}

func TestStyledProperty(t *testing.T) {
	s := NewStyledProperty("n", "v")
	s.Font = optional.Some("Arial")
	s.Bold = optional.Some(true)

	assert.Equal(t, map[string]any{"n": "v", "n_font_family": "Arial", "n_bold": true}, s.AsDict())

	s.FontSize = optional.Some(12)
	assert.Equal(t, 12, s.AsDict()["n_font_size"])
	assert.Len(t, s.AsDict(), 4)

	s.FontSize = optional.None[int]()
	assert.NotContains(t, s.AsDict(), "n_font_size")
	assert.Len(t, s.AsDict(), 3)
}

func TestSuffixesAddExactlyOneKey(t *testing.T) {
	w := NewWatermark("wm", "DRAFT")
	before := w.AsDict()

	w.Opacity = optional.Some(0.5)
	after := w.AsDict()

	assert.Len(t, after, len(before)+1)
	assert.Equal(t, 0.5, after["wm_opacity"])
	for k, v := range before {
		assert.Equal(t, v, after[k])
	}
}

func TestHyperlinkText(t *testing.T) {
	h := NewHyperlink("link", "https://www.cloudofficeprint.com")
	h.Text = optional.Some("Cloud Office Print")
	assert.Equal(t, map[string]any{
		"link":      "https://www.cloudofficeprint.com",
		"link_text": "Cloud Office Print",
	}, h.AsDict())
}

func TestTableOfContents(t *testing.T) {
	toc := NewTableOfContents("toc")
	toc.Title = optional.Some("Contents")
	toc.Depth = optional.Some(3)
	toc.TabLeader = optional.Some("dot")
	assert.Equal(t, map[string]any{
		"toc_title":      "Contents",
		"toc_show_level": 3,
		"toc_tab_leader": "dot",
	}, toc.AsDict())
}

func TestSpan(t *testing.T) {
	assert.Equal(t, map[string]any{
		"cell":          "merged",
		"cell_col_span": 2,
		"cell_row_span": 3,
	}, NewSpan("cell", "merged", 2, 3).AsDict())
}

func TestCellStyleProperty(t *testing.T) {
	docx := NewCellStyleProperty("c", "v", &CellStyleDocx{
		BackgroundColor: optional.Some("#eeeeee"),
		Width:           optional.Some("2cm"),
	})
	assert.Equal(t, map[string]any{
		"c":                       "v",
		"c_cell_background_color": "#eeeeee",
		"c_width":                 "2cm",
	}, docx.AsDict())

	xlsx := NewCellStyleProperty("x", 1, &CellStyleXlsx{
		Locked:            optional.Some(true),
		FontBold:          optional.Some(true),
		BorderDiagonalDir: optional.Some("both"),
	})
	assert.Equal(t, map[string]any{
		"x":                           1,
		"x_cell_locked":               true,
		"x_font_bold":                 true,
		"x_border_diagonal_direction": "both",
	}, xlsx.AsDict())
}

func TestSheetProtectionAndValidateCell(t *testing.T) {
	sp := NewSheetProtection("prot", "secret")
	sp.Sort = optional.Some(false)
	sp.Password = optional.Some("pw")
	assert.Equal(t, map[string]any{
		"prot":            "secret",
		"prot_allow_sort": false,
		"prot_password":   "pw",
	}, sp.AsDict())

	vc := NewValidateCell("val", "")
	vc.Allow = optional.Some("list")
	vc.Value1 = optional.Some("a,b,c")
	vc.InCellDropdown = optional.Some(true)
	assert.Equal(t, map[string]any{
		"val":                  "",
		"val_allow":            "list",
		"val_value1":           "a,b,c",
		"val_in_cell_dropdown": true,
	}, vc.AsDict())
}

func TestD3CodeData(t *testing.T) {
	d := NewD3Code("d3", "d3.select(...)")
	d.Data = optional.Some[any]([]any{1, 2, 3})
	assert.Equal(t, map[string]any{
		"d3":      "d3.select(...)",
		"d3_data": []any{1, 2, 3},
	}, d.AsDict())
}
