package jsonschema

// Schema is a minimal JSON Schema representation used for export.
// Keep this struct small and extend incrementally.
type Schema struct {
	// Document
	Schema string             `json:"$schema,omitempty"`
	Ref    string             `json:"$ref,omitempty"`
	Defs   map[string]*Schema `json:"$defs,omitempty"`

	// Core
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Default     any    `json:"default,omitempty"`
	Const       any    `json:"const,omitempty"`
	Enum        []any  `json:"enum,omitempty"`

	// Number
	Minimum *float64 `json:"minimum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Draft is the dialect URI stamped on exported root documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Root returns a copy of s marked as a root document.
func Root(s *Schema) *Schema {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Schema = Draft
	return &cp
}

// RefTo returns a reference to the named entry of the root's $defs.
func RefTo(name string) *Schema { return &Schema{Ref: "#/$defs/" + name} }

// Float returns a pointer to f for the optional numeric keywords.
func Float(f float64) *float64 { return &f }
