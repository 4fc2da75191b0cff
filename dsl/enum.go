package dsl

import (
	"fmt"
	"strings"

	cardschema "github.com/reoring/cardschema"
	js "github.com/reoring/cardschema/jsonschema"
	"github.com/reoring/cardschema/value"
)

// EnumEntry binds one enum value to its canonical wire name. Aliases are
// additional accepted spellings (legacy names); they are never emitted.
type EnumEntry[E comparable] struct {
	Value   E
	Name    string
	Aliases []string
}

// Enum is a bidirectional name table for an enumeration. Parsing is
// case-insensitive; serialization always uses the canonical name.
// An Enum is immutable once built and safe for concurrent use.
type Enum[E comparable] struct {
	typeName string
	entries  []EnumEntry[E]
	byName   map[string]E
	names    map[E]string
}

// NewEnum builds a table. It panics on a repeated name or value because that
// is a declaration error.
func NewEnum[E comparable](typeName string, entries ...EnumEntry[E]) *Enum[E] {
	t := &Enum[E]{
		typeName: typeName,
		entries:  entries,
		byName:   make(map[string]E, len(entries)),
		names:    make(map[E]string, len(entries)),
	}
	add := func(name string, v E) {
		key := strings.ToLower(name)
		if _, dup := t.byName[key]; dup {
			panic(fmt.Sprintf("dsl: enum %s: duplicate name %q", typeName, name))
		}
		t.byName[key] = v
	}
	for _, e := range entries {
		if _, dup := t.names[e.Value]; dup {
			panic(fmt.Sprintf("dsl: enum %s: duplicate value for %q", typeName, e.Name))
		}
		t.names[e.Value] = e.Name
		add(e.Name, e.Value)
		for _, a := range e.Aliases {
			add(a, e.Value)
		}
	}
	return t
}

// TypeName returns the enum's name as given to NewEnum.
func (t *Enum[E]) TypeName() string { return t.typeName }

// Parse maps a wire name to its value.
func (t *Enum[E]) Parse(name string) (E, bool) {
	v, ok := t.byName[strings.ToLower(name)]
	return v, ok
}

// Name returns the canonical name of v.
func (t *Enum[E]) Name(v E) (string, bool) {
	n, ok := t.names[v]
	return n, ok
}

// String returns the canonical name of v or a placeholder for unknown values.
func (t *Enum[E]) String(v E) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%v)", t.typeName, v)
}

// Names lists canonical names in declaration order.
func (t *Enum[E]) Names() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Name
	}
	return out
}

// Decode implements Scalar.
func (t *Enum[E]) Decode(n value.Node) (E, string) {
	var zero E
	s, ok := n.AsString()
	if !ok {
		return zero, cardschema.CodeInvalidType
	}
	v, ok := t.Parse(s)
	if !ok {
		return zero, cardschema.CodeInvalidEnum
	}
	return v, ""
}

// Encode implements Scalar. Values outside the table are not emitted.
func (t *Enum[E]) Encode(v E) (value.Node, bool) {
	n, ok := t.names[v]
	if !ok {
		return value.Absent(), false
	}
	return value.Of(n), true
}

// Expected implements Scalar.
func (t *Enum[E]) Expected() string { return strings.Join(t.Names(), ", ") }

// JSONSchema implements Scalar.
func (t *Enum[E]) JSONSchema() *js.Schema {
	enum := make([]any, len(t.entries))
	for i, e := range t.entries {
		enum[i] = e.Name
	}
	return &js.Schema{Type: "string", Title: t.typeName, Enum: enum}
}
