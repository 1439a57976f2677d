// Package elements holds the render elements a print job's data is built
// from. Every element contributes a fragment to the JSON payload through
// AsDict and advertises the template tags it fills through AvailableTags.
//
// Optional attributes follow the suffix convention of the Cloud Office Print
// server: an element named "title" with a font emits "title_font_family"
// next to "title". Unset attributes are left out.
package elements

import (
	"slices"
)

// Element is a node of the render-element tree.
type Element interface {
	// Name is the tag name the template refers to.
	Name() string
	// AsDict returns the element's contribution to the payload. It never
	// fails and depends only on the element's own fields.
	AsDict() map[string]any
	// AvailableTags returns the template tags the element fills, sorted.
	AvailableTags() []string
}

type base struct {
	name string
}

func (b base) Name() string {
	return b.name
}

// field is satisfied by every optional.Option.
type field interface {
	Any() (any, bool)
}

type suffix struct {
	key   string
	value field
}

// fixed is a field that is always set.
type fixed struct{ v any }

func (f fixed) Any() (any, bool) { return f.v, true }

// expand emits name: value plus one name+suffix key for each set field.
func expand(name string, value any, suffixes []suffix) map[string]any {
	result := map[string]any{name: value}
	addSuffixes(result, name, suffixes)
	return result
}

func addSuffixes(result map[string]any, name string, suffixes []suffix) {
	for _, s := range suffixes {
		if v, ok := s.value.Any(); ok {
			result[name+s.key] = v
		}
	}
}

func tagSet(tags ...string) []string {
	out := slices.Clone(tags)
	slices.Sort(out)
	return slices.Compact(out)
}

func mergeTags(sets ...[]string) []string {
	var all []string
	for _, s := range sets {
		all = append(all, s...)
	}
	return tagSet(all...)
}

func loopTags(open, name string) []string {
	return tagSet("{"+open+name+"}", "{/"+name+"}")
}
