package elements

import (
	"maps"
	"slices"
)

// LoopKind selects the template tag a loop fills. All kinds produce the same
// payload shape.
type LoopKind int

const (
	ForEachKind LoopKind = iota
	ForEachInlineKind
	ForEachSlideKind
	ForEachSheetKind
	ForEachTableRowKind
	ForEachHorizontalKind
	LabelsKind
	ForEachMergeCellsKind
	DistributeKind
)

var loopOpenTags = map[LoopKind]string{
	ForEachKind:           "#",
	ForEachInlineKind:     ":",
	ForEachSlideKind:      "!",
	ForEachSheetKind:      "!",
	ForEachTableRowKind:   "=",
	ForEachHorizontalKind: ":",
	LabelsKind:            "-",
	ForEachMergeCellsKind: "#",
	DistributeKind:        "~",
}

var loopNames = map[LoopKind]string{
	ForEachKind:           "ForEach",
	ForEachInlineKind:     "ForEachInline",
	ForEachSlideKind:      "ForEachSlide",
	ForEachSheetKind:      "ForEachSheet",
	ForEachTableRowKind:   "ForEachTableRow",
	ForEachHorizontalKind: "ForEachHorizontal",
	LabelsKind:            "Labels",
	ForEachMergeCellsKind: "ForEachMergeCells",
	DistributeKind:        "Distribute",
}

func (k LoopKind) String() string {
	if s, ok := loopNames[k]; ok {
		return s
	}
	return "LoopKind(?)"
}

// Loop repeats part of the template once per iteration. It serializes as
// name: [iteration, ...] in insertion order.
type Loop struct {
	base
	Kind       LoopKind
	Iterations []Element
}

func newLoop(kind LoopKind, name string, iterations []Element) *Loop {
	return &Loop{base: base{name}, Kind: kind, Iterations: slices.Clone(iterations)}
}

func NewForEach(name string, iterations ...Element) *Loop {
	return newLoop(ForEachKind, name, iterations)
}

func NewForEachInline(name string, iterations ...Element) *Loop {
	return newLoop(ForEachInlineKind, name, iterations)
}

func NewForEachSlide(name string, iterations ...Element) *Loop {
	return newLoop(ForEachSlideKind, name, iterations)
}

func NewForEachTableRow(name string, iterations ...Element) *Loop {
	return newLoop(ForEachTableRowKind, name, iterations)
}

func NewForEachHorizontal(name string, iterations ...Element) *Loop {
	return newLoop(ForEachHorizontalKind, name, iterations)
}

func NewLabels(name string, iterations ...Element) *Loop {
	return newLoop(LabelsKind, name, iterations)
}

func NewForEachMergeCells(name string, iterations ...Element) *Loop {
	return newLoop(ForEachMergeCellsKind, name, iterations)
}

func NewDistribute(name string, iterations ...Element) *Loop {
	return newLoop(DistributeKind, name, iterations)
}

// Sheet is one iteration of a sheet loop with the name of the sheet it
// generates.
type Sheet struct {
	Name string
	Data Element
}

// NewForEachSheet creates one sheet per entry. Each iteration gets an extra
// sheet_name property; the given elements are not modified.
func NewForEachSheet(name string, sheets ...Sheet) *Loop {
	iterations := make([]Element, 0, len(sheets))
	for _, s := range sheets {
		iterations = append(iterations, withSheetName(s.Data, s.Name))
	}
	return newLoop(ForEachSheetKind, name, iterations)
}

// ForEachSheetFromMap is NewForEachSheet for a sheet name to data mapping.
// Sheets are ordered by name.
func ForEachSheetFromMap(name string, sheets map[string]Element) *Loop {
	ordered := make([]Sheet, 0, len(sheets))
	for _, k := range slices.Sorted(maps.Keys(sheets)) {
		ordered = append(ordered, Sheet{Name: k, Data: sheets[k]})
	}
	return NewForEachSheet(name, ordered...)
}

func withSheetName(e Element, sheetName string) Element {
	var c *ElementCollection
	if coll, ok := e.(*ElementCollection); ok {
		c = coll.Copy()
	} else {
		c = NewElementCollection("", e)
	}
	c.Add(NewProperty("sheet_name", sheetName))
	return c
}

// Add appends an iteration.
func (l *Loop) Add(e Element) {
	l.Iterations = append(l.Iterations, e)
}

func (l *Loop) AsDict() map[string]any {
	items := make([]map[string]any, 0, len(l.Iterations))
	for _, e := range l.Iterations {
		items = append(items, e.AsDict())
	}
	return map[string]any{l.name: items}
}

// AvailableTags returns the loop's own opening and closing tags plus every
// tag of its iterations.
func (l *Loop) AvailableTags() []string {
	open := loopOpenTags[l.Kind]
	own := loopTags(open, l.name)
	if l.Kind == ForEachMergeCellsKind {
		own = tagSet("{"+open+l.name+open+"}", "{/"+l.name+"}")
	}
	sets := [][]string{own}
	for _, e := range l.Iterations {
		sets = append(sets, e.AvailableTags())
	}
	return mergeTags(sets...)
}
