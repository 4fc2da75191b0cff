package dsl

import (
	"fmt"
	"reflect"

	cardschema "github.com/reoring/cardschema"
	js "github.com/reoring/cardschema/jsonschema"
	"github.com/reoring/cardschema/value"
)

// Union dispatches objects to variant schemas on a string discriminator
// member. Variants are pointers to structs implementing E. Register every
// variant before the union is used; after that it is safe for concurrent use.
type Union[E any] struct {
	name          string
	discriminator string
	variants      map[string]*variant[E]
	order         []*variant[E]
	fallback      *unionFallback[E]
}

type variant[E any] struct {
	tag    string
	name   string
	decode func(n value.Node, dc *decodeCtx, p cardschema.PathRef) E
	encode func(e E) (value.Node, bool)
	clone  func(e E) (E, bool)
	schema func(sc *schemaCtx) (*js.Schema, error)
}

type unionFallback[E any] struct {
	decode func(tag string, raw value.Node) E
	encode func(e E) (value.Node, bool)
}

// UnionOf starts a union named name keyed by the discriminator member.
func UnionOf[E any](name, discriminator string) *Union[E] {
	return &Union[E]{name: name, discriminator: discriminator, variants: map[string]*variant[E]{}}
}

// Register adds the variant tag decoded by sub. It panics when *V does not
// implement E or tag is already taken, both declaration errors.
func Register[E, V any](u *Union[E], tag string, sub *ObjectSchema[V]) *Union[E] {
	if _, ok := any((*V)(nil)).(E); !ok {
		panic(fmt.Sprintf("dsl: union %s: *%s does not implement %s", u.name, reflect.TypeOf((*V)(nil)).Elem(), reflect.TypeOf((*E)(nil)).Elem()))
	}
	if _, dup := u.variants[tag]; dup {
		panic(fmt.Sprintf("dsl: union %s: duplicate variant %q", u.name, tag))
	}
	disc := u.discriminator
	v := &variant[E]{
		tag:  tag,
		name: sub.Name(),
		decode: func(n value.Node, dc *decodeCtx, p cardschema.PathRef) E {
			base := sub.Base()
			out := sub.decodeInto(n, &base, dc, p, disc)
			return any(&out).(E)
		},
		encode: func(e E) (value.Node, bool) {
			pv, ok := any(e).(*V)
			if !ok || pv == nil {
				return value.Absent(), false
			}
			m := sub.Serialize(*pv).Interface().(map[string]any)
			m[disc] = tag
			return value.Object(m), true
		},
		clone: func(e E) (E, bool) {
			pv, ok := any(e).(*V)
			if !ok || pv == nil {
				var zero E
				return zero, false
			}
			c := sub.clone(*pv)
			return any(&c).(E), true
		},
		schema: func(sc *schemaCtx) (*js.Schema, error) {
			s, err := sub.schemaIn(sc)
			if err != nil {
				return nil, err
			}
			s.Properties[disc] = &js.Schema{Type: "string", Const: tag}
			s.Required = append([]string{disc}, s.Required...)
			return s, nil
		},
	}
	u.variants[tag] = v
	u.order = append(u.order, v)
	return u
}

// Fallback keeps objects whose discriminator names no registered variant.
// decode receives the tag and a private copy of the raw object; encode must
// return the raw object back for values produced by decode.
func (u *Union[E]) Fallback(decode func(tag string, raw value.Node) E, encode func(E) (value.Node, bool)) *Union[E] {
	u.fallback = &unionFallback[E]{decode: decode, encode: encode}
	return u
}

// Tags lists registered discriminator values in registration order.
func (u *Union[E]) Tags() []string {
	out := make([]string, len(u.order))
	for i, v := range u.order {
		out[i] = v.tag
	}
	return out
}

// Has reports whether tag is registered.
func (u *Union[E]) Has(tag string) bool {
	_, ok := u.variants[tag]
	return ok
}

// Deserialize decodes a single element. ok is false when n cannot be
// dispatched (not an object, no discriminator, unknown tag without fallback).
func (u *Union[E]) Deserialize(n value.Node, opts ...cardschema.DecodeOpt) (E, bool) {
	dc := newDecodeCtx(cardschema.LastDecodeOpt(opts), false)
	return u.decode(n, dc, cardschema.RootPath())
}

// Serialize renders e with its discriminator. ok is false for values of
// unregistered types.
func (u *Union[E]) Serialize(e E) (value.Node, bool) {
	for _, v := range u.order {
		if n, ok := v.encode(e); ok {
			return n, true
		}
	}
	if u.fallback != nil {
		return u.fallback.encode(e)
	}
	return value.Absent(), false
}

func (u *Union[E]) decode(n value.Node, dc *decodeCtx, p cardschema.PathRef) (E, bool) {
	var zero E
	if !n.IsObject() {
		dc.mismatch(p, cardschema.CodeDroppedElement, "object", n)
		return zero, false
	}
	dp := p.Field(u.discriminator)
	tn := n.Field(u.discriminator)
	tag, _ := tn.AsString()
	if tag == "" {
		dc.report(dp, cardschema.CodeDiscriminatorMissing, nil)
		return zero, false
	}
	dc.markSeen(dp, tn)
	if v, ok := u.variants[tag]; ok {
		return v.decode(n, dc, p), true
	}
	dc.report(dp, cardschema.CodeDiscriminatorUnknown, map[string]string{"tag": tag})
	if u.fallback != nil {
		return u.fallback.decode(tag, n.Clone()), true
	}
	return zero, false
}

func (u *Union[E]) clone(e E) (E, bool) {
	for _, v := range u.order {
		if c, ok := v.clone(e); ok {
			return c, true
		}
	}
	if u.fallback != nil {
		if raw, ok := u.fallback.encode(e); ok {
			tag, _ := raw.Field(u.discriminator).AsString()
			return u.fallback.decode(tag, raw.Clone()), true
		}
	}
	var zero E
	return zero, false
}

func (u *Union[E]) schemaIn(sc *schemaCtx) (*js.Schema, error) {
	out := &js.Schema{Title: u.name, OneOf: make([]*js.Schema, 0, len(u.order)+1)}
	for _, v := range u.order {
		ref, err := sc.ref(v.name, func() (*js.Schema, error) { return v.schema(sc) })
		if err != nil {
			return nil, err
		}
		out.OneOf = append(out.OneOf, ref)
	}
	if u.fallback != nil {
		out.OneOf = append(out.OneOf, &js.Schema{
			Type:        "object",
			Description: "value of an unregistered type, preserved verbatim",
			Required:    []string{u.discriminator},
		})
	}
	return out, nil
}

// JSONSchema projects the union into a oneOf over its variants.
func (u *Union[E]) JSONSchema() (*js.Schema, error) {
	sc := newSchemaCtx()
	out, err := u.schemaIn(sc)
	if err != nil {
		return nil, err
	}
	out = js.Root(out)
	if len(sc.defs) > 0 {
		out.Defs = sc.defs
	}
	return out, nil
}
