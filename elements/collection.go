package elements

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rmitchellscott/cloudofficeprint/internal/json"
)

// ElementCollection is an ordered list of elements that is itself an
// element. Flat children are merged into one mapping, later keys winning;
// nested collections are placed under their own name.
type ElementCollection struct {
	base
	elements []Element
}

// NewElementCollection creates a collection. The name only matters when the
// collection is nested inside another one.
func NewElementCollection(name string, elements ...Element) *ElementCollection {
	return &ElementCollection{base: base{name}, elements: slices.Clone(elements)}
}

// ElementCollectionFromMapping turns every entry of m into a Property. Keys
// are added in sorted order so the result is deterministic.
func ElementCollectionFromMapping(m map[string]any, name string) *ElementCollection {
	c := NewElementCollection(name)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		c.Add(NewProperty(k, m[k]))
	}
	return c
}

// ElementCollectionFromJSON parses a JSON object and builds the collection
// from the resulting mapping.
func ElementCollectionFromJSON(data []byte, name string) (*ElementCollection, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("elements: parsing collection JSON: %w", err)
	}
	return ElementCollectionFromMapping(m, name), nil
}

// Add appends an element.
func (c *ElementCollection) Add(e Element) {
	c.elements = append(c.elements, e)
}

// AddAll appends every element of other, keeping its order.
func (c *ElementCollection) AddAll(other *ElementCollection) {
	c.elements = append(c.elements, other.elements...)
}

// RemoveElementByName removes every element with the given name and reports
// whether one was found.
func (c *ElementCollection) RemoveElementByName(name string) bool {
	n := len(c.elements)
	c.elements = slices.DeleteFunc(c.elements, func(e Element) bool {
		return e.Name() == name
	})
	return len(c.elements) != n
}

// Elements returns the children in insertion order.
func (c *ElementCollection) Elements() []Element {
	return slices.Clone(c.elements)
}

// Len returns the number of children
func (c *ElementCollection) Len() int {
	return len(c.elements)
}

// Copy returns a shallow copy: a new list sharing the same children.
func (c *ElementCollection) Copy() *ElementCollection {
	return NewElementCollection(c.name, c.elements...)
}

// DeepCopy returns a copy that is unaffected by later changes to the
// original's children. Nested collections are copied recursively; other
// elements are replaced by a snapshot of their payload and tags.
func (c *ElementCollection) DeepCopy() *ElementCollection {
	out := NewElementCollection(c.name)
	for _, e := range c.elements {
		if nested, ok := e.(*ElementCollection); ok {
			out.Add(nested.DeepCopy())
			continue
		}
		out.Add(&snapshot{
			base: base{e.Name()},
			dict: deepCopyValue(e.AsDict()).(map[string]any),
			tags: e.AvailableTags(),
		})
	}
	return out
}

func (c *ElementCollection) AsDict() map[string]any {
	result := map[string]any{}
	for _, e := range c.elements {
		if nested, ok := e.(*ElementCollection); ok {
			result[nested.name] = nested.AsDict()
			continue
		}
		maps.Copy(result, e.AsDict())
	}
	return result
}

func (c *ElementCollection) AvailableTags() []string {
	sets := make([][]string, 0, len(c.elements))
	for _, e := range c.elements {
		sets = append(sets, e.AvailableTags())
	}
	return mergeTags(sets...)
}

// snapshot is a frozen element produced by DeepCopy.
type snapshot struct {
	base
	dict map[string]any
	tags []string
}

func (s *snapshot) AsDict() map[string]any {
	return deepCopyValue(s.dict).(map[string]any)
}

func (s *snapshot) AvailableTags() []string {
	return slices.Clone(s.tags)
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = deepCopyValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = deepCopyValue(val)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, val := range t {
			out[i] = deepCopyValue(val).(map[string]any)
		}
		return out
	default:
		return v
	}
}
