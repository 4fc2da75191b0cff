package dsl

import (
	"strings"

	cardschema "github.com/reoring/cardschema"
	js "github.com/reoring/cardschema/jsonschema"
	"github.com/reoring/cardschema/value"
)

type fieldDecl[T any] struct {
	name      string
	ad        FieldAdapter[T]
	required  bool
	omitEmpty bool
}

type constDecl struct {
	name  string
	value string
}

// ObjectSchema is the field-descriptor table of one struct type T. It is the
// single routine behind deserialization, serialization, deep copies and JSON
// Schema export, and is immutable once built.
type ObjectSchema[T any] struct {
	name        string
	base        func() T
	fields      []fieldDecl[T]
	known       map[string]struct{}
	consts      []constDecl
	unknown     cardschema.UnknownPolicy
	extras      func(*T) *map[string]any
	normalizers []func(*T)
}

// Ensure ObjectSchema implements cardschema.Schema.
var _ cardschema.Schema[struct{}] = (*ObjectSchema[struct{}])(nil)

func (s *ObjectSchema[T]) Name() string { return s.name }

// Base returns a fresh base value (the zero value unless the builder set one).
func (s *ObjectSchema[T]) Base() T {
	if s.base == nil {
		var zero T
		return zero
	}
	return s.base()
}

// FieldNames lists declared member names in declaration order.
func (s *ObjectSchema[T]) FieldNames() []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = f.name
	}
	return out
}

func (s *ObjectSchema[T]) Deserialize(n value.Node, def T, opts ...cardschema.DecodeOpt) T {
	v, _ := s.deserialize(n, def, cardschema.LastDecodeOpt(opts), false)
	return v
}

func (s *ObjectSchema[T]) DeserializeWithMeta(n value.Node, def T, opts ...cardschema.DecodeOpt) cardschema.Decoded[T] {
	opt := cardschema.LastDecodeOpt(opts)
	v, pm := s.deserialize(n, def, opt, true)
	return cardschema.Decoded[T]{Value: v, Presence: cardschema.ApplyPresenceOptions(pm, opt.Presence, opt.PathRender)}
}

func (s *ObjectSchema[T]) deserialize(n value.Node, def T, opt cardschema.DecodeOpt, withMeta bool) (T, cardschema.PresenceMap) {
	dc := newDecodeCtx(opt, withMeta)
	root := cardschema.RootPath()
	if n.Exists() {
		dc.markSeen(root, n)
		if !n.IsObject() {
			dc.mark(root, cardschema.PresenceDefaultApplied)
			dc.mismatch(root, cardschema.CodeInvalidType, "object", n)
		}
	} else {
		dc.mark(root, cardschema.PresenceDefaultApplied)
	}
	return s.decodeInto(n, &def, dc, root, ""), dc.presence
}

// decodeInto is the shared deserialization routine. ignore names one extra
// member that is consumed by an enclosing union's discriminator.
func (s *ObjectSchema[T]) decodeInto(n value.Node, def *T, dc *decodeCtx, p cardschema.PathRef, ignore string) T {
	if !n.IsObject() {
		return s.clone(*def)
	}
	out := *def
	for _, f := range s.fields {
		fp := p.Field(f.name)
		fn := n.Field(f.name)
		if !fn.Exists() {
			f.ad.copyDefault(&out, def)
			dc.mark(fp, cardschema.PresenceDefaultApplied)
			if f.required {
				dc.report(fp, cardschema.CodeRequired, nil)
			}
			continue
		}
		dc.markSeen(fp, fn)
		f.ad.decode(&out, def, fn, dc, fp)
	}
	for _, c := range s.consts {
		cn := n.Field(c.name)
		if !cn.Exists() {
			continue
		}
		dc.markSeen(p.Field(c.name), cn)
		if got, _ := cn.AsString(); !strings.EqualFold(got, c.value) {
			dc.report(p.Field(c.name), cardschema.CodeInvalidFormat, map[string]string{"expected": c.value, "format": c.value})
		}
	}
	s.decodeUnknown(&out, n, dc, p, ignore)
	cardschema.ApplyNormalize(&out)
	for _, fn := range s.normalizers {
		fn(&out)
	}
	return out
}

func (s *ObjectSchema[T]) decodeUnknown(out *T, n value.Node, dc *decodeCtx, p cardschema.PathRef, ignore string) {
	policy := s.unknown
	if dc.unknown != nil {
		policy = *dc.unknown
	}
	var extras map[string]any
	for _, k := range n.Keys() {
		if _, ok := s.known[k]; ok || k == ignore {
			continue
		}
		switch policy {
		case cardschema.UnknownReport:
			dc.report(p.Field(k), cardschema.CodeUnknownKey, map[string]string{"key": k})
		case cardschema.UnknownPassthrough:
			if s.extras == nil {
				continue
			}
			if extras == nil {
				extras = map[string]any{}
			}
			extras[k] = n.Field(k).Clone().Interface()
			dc.markSeen(p.Field(k), n.Field(k))
		}
	}
	if s.extras != nil {
		// extension members come from the input only
		*s.extras(out) = extras
	}
}

// clone returns a deep copy of v: every declared member is copied through its
// adapter and the extension map is duplicated.
func (s *ObjectSchema[T]) clone(v T) T {
	out := v
	for _, f := range s.fields {
		f.ad.copyDefault(&out, &v)
	}
	if s.extras != nil {
		if m := *s.extras(&out); m != nil {
			*s.extras(&out) = value.Object(m).Clone().Interface().(map[string]any)
		}
	}
	return out
}

// Clone returns a deep copy of v that shares no slices or maps with it.
func (s *ObjectSchema[T]) Clone(v T) T { return s.clone(v) }

// Serialize renders v as an object node: constants first, then every declared
// member under its canonical name, then extension members that do not collide
// with declared ones.
func (s *ObjectSchema[T]) Serialize(v T) value.Node {
	m := make(map[string]any, len(s.fields)+len(s.consts))
	if s.extras != nil {
		for k, x := range *s.extras(&v) {
			if _, known := s.known[k]; !known {
				m[k] = value.Of(x).Clone().Interface()
			}
		}
	}
	for _, c := range s.consts {
		m[c.name] = c.value
	}
	for _, f := range s.fields {
		if f.omitEmpty && f.ad.isZero(&v) {
			continue
		}
		if n, ok := f.ad.encode(&v); ok {
			m[f.name] = n.Interface()
		}
	}
	return value.Object(m)
}

func (s *ObjectSchema[T]) JSONSchema() (*js.Schema, error) {
	sc := newSchemaCtx()
	out, err := s.schemaIn(sc)
	if err != nil {
		return nil, err
	}
	out = js.Root(out)
	if len(sc.defs) > 0 {
		out.Defs = sc.defs
	}
	return out, nil
}

func (s *ObjectSchema[T]) schemaIn(sc *schemaCtx) (*js.Schema, error) {
	base := s.Base()
	out := &js.Schema{Type: "object", Title: s.name, Properties: make(map[string]*js.Schema, len(s.fields)+len(s.consts))}
	for _, c := range s.consts {
		out.Properties[c.name] = &js.Schema{Type: "string", Const: c.value}
	}
	for _, f := range s.fields {
		ps, err := f.ad.jsonSchema(&base, sc)
		if err != nil {
			return nil, err
		}
		out.Properties[f.name] = ps
		if f.required {
			out.Required = append(out.Required, f.name)
		}
	}
	// UnknownReport => additionalProperties=false, strip/passthrough => true
	out.AdditionalProperties = s.unknown != cardschema.UnknownReport
	return out, nil
}

// schemaCtx collects named sub-schemas into $defs so recursive element
// hierarchies export as references.
type schemaCtx struct {
	defs map[string]*js.Schema
}

func newSchemaCtx() *schemaCtx { return &schemaCtx{defs: map[string]*js.Schema{}} }

func (sc *schemaCtx) ref(name string, build func() (*js.Schema, error)) (*js.Schema, error) {
	if _, ok := sc.defs[name]; !ok {
		// placeholder breaks cycles while the entry is being built
		sc.defs[name] = &js.Schema{}
		s, err := build()
		if err != nil {
			return nil, err
		}
		sc.defs[name] = s
	}
	return js.RefTo(name), nil
}
