package cardschema

import (
	js "github.com/reoring/cardschema/jsonschema"
	"github.com/reoring/cardschema/value"
)

// Schema binds one typed element (a Go struct) to its JSON-like wire form.
//
// Deserialization never fails: every field that is absent, mistyped or out of
// range keeps the corresponding field of the default, and the default is
// returned whole when the input is not an object. Recovered faults may be
// observed through DecodeOpt.OnIssue.
type Schema[T any] interface {
	// Name is the schema's type name used in messages and JSON Schema titles.
	Name() string
	// Base returns a fresh copy of the schema's own default instance.
	Base() T
	// Deserialize builds a T from n, starting from a deep copy of def.
	Deserialize(n value.Node, def T, opts ...DecodeOpt) T
	// DeserializeWithMeta is Deserialize plus per-path presence metadata.
	DeserializeWithMeta(n value.Node, def T, opts ...DecodeOpt) Decoded[T]
	// Serialize renders v under canonical field names. Empty optionals are omitted.
	Serialize(v T) value.Node
	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// Deserialize decodes n using the schema's own base value as the default.
func Deserialize[T any](s Schema[T], n value.Node, opts ...DecodeOpt) T {
	return s.Deserialize(n, s.Base(), opts...)
}

// DeserializeCollect decodes n against def and returns every recovered issue
// alongside the value. A nil Issues means the input matched the schema.
func DeserializeCollect[T any](s Schema[T], n value.Node, def T) (T, Issues) {
	var iss Issues
	v := s.Deserialize(n, def, CollectIssues(&iss))
	return v, iss
}

// Roundtrip serializes v and deserializes the result against s.Base().
func Roundtrip[T any](s Schema[T], v T) T {
	return s.Deserialize(s.Serialize(v), s.Base())
}
