// Package optional holds the set/unset wrapper used by every optional field
// of the render elements and configuration objects. A field that is None is
// left out of the JSON payload entirely.
package optional

type Option[T any] []T

func None[T any]() Option[T] {
	return nil
}

func Some[T any](v T) Option[T] {
	return Option[T]{v}
}

func FromPtr[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

// FromNonDefault treats the zero value of T as unset.
func FromNonDefault[T comparable](v T) Option[T] {
	var zero T
	if v == zero {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) Has() bool {
	return o != nil
}

func (o Option[T]) Value() T {
	var zero T
	return o.ValueOrDefault(zero)
}

func (o Option[T]) ValueOrDefault(v T) T {
	if o.Has() {
		return o[0]
	}
	return v
}

// Any returns the held value as an untyped interface, so tables of options of
// different types can be walked by a single emitter.
func (o Option[T]) Any() (any, bool) {
	if !o.Has() {
		return nil, false
	}
	return o[0], true
}

// Unless returns None when the held value equals def.
func Unless[T comparable](o Option[T], def T) Option[T] {
	if o.Has() && o[0] == def {
		return None[T]()
	}
	return o
}
