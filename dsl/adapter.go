package dsl

import (
	"reflect"

	cardschema "github.com/reoring/cardschema"
	js "github.com/reoring/cardschema/jsonschema"
	"github.com/reoring/cardschema/value"
)

// FieldAdapter describes how one declared member of T is read, defaulted,
// written and exported. Obtain one from Value, StringOf, EnumOf, OptionalOf,
// NestedOf, ArrayOf or UnionArrayOf and pass it to ObjectBuilder.Field.
//
// Each adapter addresses its member through a getter returning a pointer into
// the struct, so the same table serves decoding, encoding and deep copies.
type FieldAdapter[T any] struct {
	// copyDefault deep-copies the member from def into dst.
	copyDefault func(dst, def *T)
	// decode converts a present node into dst, falling back to def's member.
	decode     func(dst, def *T, n value.Node, dc *decodeCtx, p cardschema.PathRef)
	encode     func(src *T) (value.Node, bool)
	isZero     func(src *T) bool
	jsonSchema func(base *T, sc *schemaCtx) (*js.Schema, error)
}

// Value adapts a member converted by a Scalar. A value the scalar rejects
// leaves the default's member in place.
func Value[T, E any](get func(*T) *E, sc Scalar[E]) FieldAdapter[T] {
	return FieldAdapter[T]{
		copyDefault: func(dst, def *T) { *get(dst) = *get(def) },
		decode: func(dst, def *T, n value.Node, dc *decodeCtx, p cardschema.PathRef) {
			v, code := sc.Decode(n)
			if code != "" {
				*get(dst) = *get(def)
				dc.mark(p, cardschema.PresenceDefaultApplied)
				dc.mismatch(p, code, sc.Expected(), n)
				return
			}
			*get(dst) = v
		},
		encode: func(src *T) (value.Node, bool) { return sc.Encode(*get(src)) },
		isZero: func(src *T) bool { return isZeroValue(*get(src)) },
		jsonSchema: func(base *T, _ *schemaCtx) (*js.Schema, error) {
			s := sc.JSONSchema()
			if bv := *get(base); !isZeroValue(bv) {
				if d, ok := sc.Encode(bv); ok {
					s.Default = d.Interface()
				}
			}
			return s, nil
		},
	}
}

func StringOf[T any, S ~string](get func(*T) *S) FieldAdapter[T] { return Value(get, String[S]()) }
func BoolOf[T any, B ~bool](get func(*T) *B) FieldAdapter[T]     { return Value(get, Bool[B]()) }
func UintOf[T any, N Unsigned](get func(*T) *N) FieldAdapter[T]  { return Value(get, Uint[N]()) }
func IntOf[T any, N Signed](get func(*T) *N) FieldAdapter[T]     { return Value(get, Int[N]()) }
func FloatOf[T any, F Floating](get func(*T) *F) FieldAdapter[T] { return Value(get, Float[F]()) }

// EnumOf adapts a required enum member. Unrecognized names keep the default
// and report invalid_enum.
func EnumOf[T any, E comparable](get func(*T) *E, tbl *Enum[E]) FieldAdapter[T] {
	return Value[T, E](get, tbl)
}

// OptionalOf adapts a member that may be legitimately unset.
//
//   - absent: the default's optional is kept as is
//   - null: the optional is emptied
//   - a value the scalar cannot represent (an unrecognized enum name, an
//     out of range number): the optional is emptied and the issue reported
//   - a value of the wrong JSON type: the default's optional is kept
//
// Empty optionals are omitted on serialization.
func OptionalOf[T, E any](get func(*T) *cardschema.Optional[E], sc Scalar[E]) FieldAdapter[T] {
	return FieldAdapter[T]{
		copyDefault: func(dst, def *T) { *get(dst) = *get(def) },
		decode: func(dst, def *T, n value.Node, dc *decodeCtx, p cardschema.PathRef) {
			if n.IsNull() {
				get(dst).Reset()
				return
			}
			v, code := sc.Decode(n)
			switch code {
			case "":
				get(dst).Set(v)
			case cardschema.CodeInvalidType:
				*get(dst) = *get(def)
				dc.mark(p, cardschema.PresenceDefaultApplied)
				dc.mismatch(p, code, sc.Expected(), n)
			default:
				get(dst).Reset()
				dc.mismatch(p, code, sc.Expected(), n)
			}
		},
		encode: func(src *T) (value.Node, bool) {
			v, ok := get(src).Get()
			if !ok {
				return value.Absent(), false
			}
			return sc.Encode(v)
		},
		isZero: func(src *T) bool { return !get(src).HasValue() },
		jsonSchema: func(base *T, _ *schemaCtx) (*js.Schema, error) {
			s := sc.JSONSchema()
			if v, ok := get(base).Get(); ok {
				if d, ok := sc.Encode(v); ok {
					s.Default = d.Interface()
				}
			}
			return s, nil
		},
	}
}

// OptionalEnumOf is OptionalOf over an enum table.
func OptionalEnumOf[T any, E comparable](get func(*T) *cardschema.Optional[E], tbl *Enum[E]) FieldAdapter[T] {
	return OptionalOf[T, E](get, tbl)
}

// NestedOf adapts an owned sub-object. The default's sub-object is the nested
// default, so a partially specified sub-object keeps every other member of
// the enclosing default.
func NestedOf[T, S any](get func(*T) *S, sub *ObjectSchema[S]) FieldAdapter[T] {
	return FieldAdapter[T]{
		copyDefault: func(dst, def *T) { *get(dst) = sub.clone(*get(def)) },
		decode: func(dst, def *T, n value.Node, dc *decodeCtx, p cardschema.PathRef) {
			if !n.IsObject() {
				*get(dst) = sub.clone(*get(def))
				dc.mark(p, cardschema.PresenceDefaultApplied)
				dc.mismatch(p, cardschema.CodeInvalidType, "object", n)
				return
			}
			*get(dst) = sub.decodeInto(n, get(def), dc, p, "")
		},
		encode: func(src *T) (value.Node, bool) { return sub.Serialize(*get(src)), true },
		isZero: func(src *T) bool { return isZeroValue(*get(src)) },
		jsonSchema: func(_ *T, sc *schemaCtx) (*js.Schema, error) {
			return sub.schemaIn(sc)
		},
	}
}

// ArrayOf adapts a slice of owned sub-objects. When the member is an array
// every object element is decoded against the element schema's base value;
// other elements are dropped individually. A non-array keeps the default.
func ArrayOf[T, E any](get func(*T) *[]E, sub *ObjectSchema[E]) FieldAdapter[T] {
	cloneAll := func(in []E) []E {
		if in == nil {
			return nil
		}
		out := make([]E, len(in))
		for i := range in {
			out[i] = sub.clone(in[i])
		}
		return out
	}
	return FieldAdapter[T]{
		copyDefault: func(dst, def *T) { *get(dst) = cloneAll(*get(def)) },
		decode: func(dst, def *T, n value.Node, dc *decodeCtx, p cardschema.PathRef) {
			if !n.IsArray() {
				*get(dst) = cloneAll(*get(def))
				dc.mark(p, cardschema.PresenceDefaultApplied)
				dc.mismatch(p, cardschema.CodeInvalidType, "array", n)
				return
			}
			out := make([]E, 0, n.Len())
			for i, el := range n.Elements() {
				ep := p.Index(i)
				dc.markSeen(ep, el)
				if !el.IsObject() {
					dc.mismatch(ep, cardschema.CodeDroppedElement, "object", el)
					continue
				}
				base := sub.Base()
				out = append(out, sub.decodeInto(el, &base, dc, ep, ""))
			}
			*get(dst) = out
		},
		encode: func(src *T) (value.Node, bool) {
			in := *get(src)
			arr := make([]any, 0, len(in))
			for i := range in {
				arr = append(arr, sub.Serialize(in[i]).Interface())
			}
			return value.Array(arr...), true
		},
		isZero: func(src *T) bool { return len(*get(src)) == 0 },
		jsonSchema: func(_ *T, sc *schemaCtx) (*js.Schema, error) {
			items, err := sub.schemaIn(sc)
			if err != nil {
				return nil, err
			}
			return &js.Schema{Type: "array", Items: items}, nil
		},
	}
}

// UnionArrayOf adapts a polymorphic slice whose elements are dispatched on the
// union's discriminator. Elements that cannot be dispatched are dropped
// individually.
func UnionArrayOf[T, E any](get func(*T) *[]E, u *Union[E]) FieldAdapter[T] {
	cloneAll := func(in []E) []E {
		if in == nil {
			return nil
		}
		out := make([]E, 0, len(in))
		for _, e := range in {
			if c, ok := u.clone(e); ok {
				out = append(out, c)
			}
		}
		return out
	}
	return FieldAdapter[T]{
		copyDefault: func(dst, def *T) { *get(dst) = cloneAll(*get(def)) },
		decode: func(dst, def *T, n value.Node, dc *decodeCtx, p cardschema.PathRef) {
			if !n.IsArray() {
				*get(dst) = cloneAll(*get(def))
				dc.mark(p, cardschema.PresenceDefaultApplied)
				dc.mismatch(p, cardschema.CodeInvalidType, "array", n)
				return
			}
			out := make([]E, 0, n.Len())
			for i, el := range n.Elements() {
				ep := p.Index(i)
				dc.markSeen(ep, el)
				if e, ok := u.decode(el, dc, ep); ok {
					out = append(out, e)
				}
			}
			*get(dst) = out
		},
		encode: func(src *T) (value.Node, bool) {
			in := *get(src)
			arr := make([]any, 0, len(in))
			for _, e := range in {
				if n, ok := u.Serialize(e); ok {
					arr = append(arr, n.Interface())
				}
			}
			return value.Array(arr...), true
		},
		isZero: func(src *T) bool { return len(*get(src)) == 0 },
		jsonSchema: func(_ *T, sc *schemaCtx) (*js.Schema, error) {
			items, err := u.schemaIn(sc)
			if err != nil {
				return nil, err
			}
			return &js.Schema{Type: "array", Items: items}, nil
		},
	}
}

// UnionFieldOf adapts a single polymorphic member, such as an element's
// selectAction. null clears it; a value that is not an object, or that the
// union cannot dispatch, keeps the default's member.
func UnionFieldOf[T, E any](get func(*T) *E, u *Union[E]) FieldAdapter[T] {
	cloneOne := func(e E) E {
		if c, ok := u.clone(e); ok {
			return c
		}
		var zero E
		return zero
	}
	return FieldAdapter[T]{
		copyDefault: func(dst, def *T) { *get(dst) = cloneOne(*get(def)) },
		decode: func(dst, def *T, n value.Node, dc *decodeCtx, p cardschema.PathRef) {
			if n.IsNull() {
				var zero E
				*get(dst) = zero
				return
			}
			if !n.IsObject() {
				*get(dst) = cloneOne(*get(def))
				dc.mark(p, cardschema.PresenceDefaultApplied)
				dc.mismatch(p, cardschema.CodeInvalidType, "object", n)
				return
			}
			if e, ok := u.decode(n, dc, p); ok {
				*get(dst) = e
				return
			}
			*get(dst) = cloneOne(*get(def))
			dc.mark(p, cardschema.PresenceDefaultApplied)
		},
		encode: func(src *T) (value.Node, bool) { return u.Serialize(*get(src)) },
		isZero: func(src *T) bool {
			_, ok := u.Serialize(*get(src))
			return !ok
		},
		jsonSchema: func(_ *T, sc *schemaCtx) (*js.Schema, error) { return u.schemaIn(sc) },
	}
}

// NodeOf adapts a member holding arbitrary JSON, kept as a private copy of
// the input. An absent node is omitted on serialization.
func NodeOf[T any](get func(*T) *value.Node) FieldAdapter[T] {
	return FieldAdapter[T]{
		copyDefault: func(dst, def *T) { *get(dst) = get(def).Clone() },
		decode: func(dst, _ *T, n value.Node, _ *decodeCtx, _ cardschema.PathRef) {
			*get(dst) = n.Clone()
		},
		encode: func(src *T) (value.Node, bool) {
			n := *get(src)
			return n, n.Exists()
		},
		isZero:     func(src *T) bool { return !get(src).Exists() },
		jsonSchema: func(*T, *schemaCtx) (*js.Schema, error) { return &js.Schema{}, nil },
	}
}

func isZeroValue[E any](v E) bool {
	return reflect.ValueOf(&v).Elem().IsZero()
}
