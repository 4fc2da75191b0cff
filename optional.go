package cardschema

import (
	"errors"
	"reflect"
)

// ErrEmptyOptional is the sentinel wrapped by EmptyOptionalError.
var ErrEmptyOptional = errors.New("cardschema: optional has no value")

// EmptyOptionalError is the panic value raised by Optional.Value on an empty
// optional. Reading an empty optional is a programming error, not a data
// error: malformed documents only ever produce empty optionals.
type EmptyOptionalError struct {
	Type string
}

func (e *EmptyOptionalError) Error() string {
	return "cardschema: Value called on empty Optional[" + e.Type + "]"
}

func (e *EmptyOptionalError) Unwrap() error { return ErrEmptyOptional }

// Optional holds either nothing or one value of T. The zero value is empty.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, ok: true} }

// None returns an empty optional. Equivalent to Optional[T]{}.
func None[T any]() Optional[T] { return Optional[T]{} }

func (o Optional[T]) HasValue() bool { return o.ok }

// Value returns the held value. It panics with *EmptyOptionalError when the
// optional is empty; check HasValue or use Get first.
func (o Optional[T]) Value() T {
	if !o.ok {
		panic(&EmptyOptionalError{Type: reflect.TypeOf((*T)(nil)).Elem().String()})
	}
	return o.value
}

// Get returns the held value and whether there was one.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

func (o *Optional[T]) Set(v T) {
	o.value = v
	o.ok = true
}

func (o *Optional[T]) Reset() { *o = Optional[T]{} }

// Equal reports whether both optionals are empty or both hold deeply equal values.
func (o Optional[T]) Equal(other Optional[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || reflect.DeepEqual(o.value, other.value)
}
