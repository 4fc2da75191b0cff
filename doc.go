// Package cardschema is a typed object model for declarative UI cards.
//
// A document is read into a value.Node (JSON or YAML, see package value),
// deserialized by a Schema into typed elements (see package objectmodel),
// optionally walked for remote resource references, and serialized back.
//
// The root package holds the shared vocabulary:
//
// - Schema[T], the contract every element schema implements
// - Optional[T] for fields that may be legitimately unset
// - Issues (JSON Pointer, code, message) for recovered faults
// - Presence metadata and preserving serialization
//
// Typical usage:
//
//	n, err := value.Parse(data)
//	card := cardschema.Deserialize(objectmodel.CardSchema, n)
//	var refs []objectmodel.RemoteResourceInformation
//	card.GetResourceInformation(&refs)
//	out := objectmodel.CardSchema.Serialize(card)
package cardschema
