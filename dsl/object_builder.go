package dsl

import (
	"errors"
	"fmt"

	cardschema "github.com/reoring/cardschema"
)

// ObjectBuilder declares the members of T. Chain Field/Const/Unknown*/Normalize
// and finish with Build or MustBuild.
type ObjectBuilder[T any] struct {
	s    *ObjectSchema[T]
	errs []error
}

// fieldStep enables chain-friendly APIs like Field(...).Required().
type fieldStep[T any] struct {
	b   *ObjectBuilder[T]
	idx int
}

// ObjectOf starts a builder for T. name appears in messages and as the JSON
// Schema title.
func ObjectOf[T any](name string) *ObjectBuilder[T] {
	return &ObjectBuilder[T]{s: &ObjectSchema[T]{name: name, known: map[string]struct{}{}}}
}

// Base sets the constructor of the schema's own default instance, used by
// cardschema.Deserialize and for array elements.
func (b *ObjectBuilder[T]) Base(fn func() T) *ObjectBuilder[T] {
	b.s.base = fn
	return b
}

// Field registers a member and returns a step for per-field options.
func (b *ObjectBuilder[T]) Field(name string, ad FieldAdapter[T]) *fieldStep[T] {
	b.claim(name)
	b.s.fields = append(b.s.fields, fieldDecl[T]{name: name, ad: ad})
	return &fieldStep[T]{b: b, idx: len(b.s.fields) - 1}
}

// Const declares a member with a fixed string value (for example "type").
// It is always emitted and a different input value is reported.
func (b *ObjectBuilder[T]) Const(name, v string) *ObjectBuilder[T] {
	b.claim(name)
	b.s.consts = append(b.s.consts, constDecl{name: name, value: v})
	return b
}

func (b *ObjectBuilder[T]) UnknownStrip() *ObjectBuilder[T] {
	b.s.unknown = cardschema.UnknownStrip
	return b
}

func (b *ObjectBuilder[T]) UnknownReport() *ObjectBuilder[T] {
	b.s.unknown = cardschema.UnknownReport
	return b
}

// UnknownPassthrough keeps undeclared members in the map addressed by get.
func (b *ObjectBuilder[T]) UnknownPassthrough(get func(*T) *map[string]any) *ObjectBuilder[T] {
	if get == nil {
		b.errs = append(b.errs, errors.New("UnknownPassthrough: nil target"))
		return b
	}
	b.s.unknown = cardschema.UnknownPassthrough
	b.s.extras = get
	return b
}

// Normalize registers a hook run on every instance decoded from an object,
// after all members are set. Hooks run in registration order, after the
// type's own cardschema.Normalizer if it has one.
func (b *ObjectBuilder[T]) Normalize(fn func(*T)) *ObjectBuilder[T] {
	if fn != nil {
		b.s.normalizers = append(b.s.normalizers, fn)
	}
	return b
}

// Build validates the declaration and returns the schema.
func (b *ObjectBuilder[T]) Build() (*ObjectSchema[T], error) {
	if b.s.name == "" {
		b.errs = append(b.errs, errors.New("empty schema name"))
	}
	for _, f := range b.s.fields {
		if f.ad.decode == nil || f.ad.encode == nil {
			b.errs = append(b.errs, fmt.Errorf("field %q: zero FieldAdapter", f.name))
		}
	}
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("dsl: object %s: %w", b.s.name, errors.Join(b.errs...))
	}
	return b.s, nil
}

// MustBuild is like Build but panics on error.
func (b *ObjectBuilder[T]) MustBuild() *ObjectSchema[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *ObjectBuilder[T]) claim(name string) {
	if name == "" {
		b.errs = append(b.errs, errors.New("empty member name"))
		return
	}
	if _, dup := b.s.known[name]; dup {
		b.errs = append(b.errs, fmt.Errorf("duplicate member %q", name))
		return
	}
	b.s.known[name] = struct{}{}
}

// ----- fieldStep methods -----

// Required reports a required issue when the member is absent. The default's
// member is still used.
func (f *fieldStep[T]) Required() *fieldStep[T] {
	f.b.s.fields[f.idx].required = true
	return f
}

// OmitEmpty skips the member on serialization when it holds its zero value.
func (f *fieldStep[T]) OmitEmpty() *fieldStep[T] {
	f.b.s.fields[f.idx].omitEmpty = true
	return f
}

// Forward helpers to keep chaining ergonomics.
func (f *fieldStep[T]) Field(name string, ad FieldAdapter[T]) *fieldStep[T] {
	return f.b.Field(name, ad)
}
func (f *fieldStep[T]) Const(name, v string) *ObjectBuilder[T]  { return f.b.Const(name, v) }
func (f *fieldStep[T]) Normalize(fn func(*T)) *ObjectBuilder[T] { return f.b.Normalize(fn) }
func (f *fieldStep[T]) UnknownStrip() *ObjectBuilder[T]         { return f.b.UnknownStrip() }
func (f *fieldStep[T]) UnknownReport() *ObjectBuilder[T]        { return f.b.UnknownReport() }
func (f *fieldStep[T]) Build() (*ObjectSchema[T], error)        { return f.b.Build() }
func (f *fieldStep[T]) MustBuild() *ObjectSchema[T]             { return f.b.MustBuild() }
func (f *fieldStep[T]) Base(fn func() T) *ObjectBuilder[T]      { return f.b.Base(fn) }
func (f *fieldStep[T]) Builder() *ObjectBuilder[T]              { return f.b }
func (f *fieldStep[T]) UnknownPassthrough(get func(*T) *map[string]any) *ObjectBuilder[T] {
	return f.b.UnknownPassthrough(get)
}
