// Package dsl declares typed schemas as field-descriptor tables.
//
// Overview
//   - Builder API: ObjectOf[T](name).Field(name, adapter).Required()...MustBuild() yields an
//     *ObjectSchema[T] implementing cardschema.Schema[T].
//   - Adapters: StringOf/BoolOf/UintOf/IntOf/FloatOf for scalars, EnumOf and OptionalOf for
//     enumerations, NestedOf for owned sub-objects, ArrayOf and UnionArrayOf for collections,
//     UnionFieldOf for a single polymorphic member and NodeOf for free-form JSON.
//   - Enums: NewEnum builds a case-insensitive name table with legacy aliases.
//   - Unions: UnionOf/Register dispatch polymorphic elements on a discriminator member, with an
//     optional Fallback for unregistered tags.
//
// Deserialization is total. Every member that is absent or cannot be converted keeps the
// corresponding member of the default passed by the caller; nested objects recurse with the
// default's sub-object. Faults are reported to cardschema.DecodeOpt.OnIssue and never change
// the result.
//
// File layout (roles)
//   - scalar.go: Scalar conversions for strings, booleans and numbers.
//   - enum.go: Enum name tables (a Scalar).
//   - adapter.go: FieldAdapter constructors.
//   - object_builder.go: ObjectBuilder and per-field steps.
//   - object_core.go: ObjectSchema (deserialize, serialize, clone, JSON Schema).
//   - union.go: discriminated unions.
//   - presence_helpers.go: per-call decode state (issues, presence).
//
// Example
//
//	type Sizes struct{ Small, Default uint }
//
//	sizes := dsl.ObjectOf[Sizes]("Sizes").
//	    Field("small", dsl.UintOf(func(s *Sizes) *uint { return &s.Small })).
//	    Field("default", dsl.UintOf(func(s *Sizes) *uint { return &s.Default })).
//	    Base(func() Sizes { return Sizes{Small: 12, Default: 14} }).
//	    MustBuild()
//
//	v := cardschema.Deserialize[Sizes](sizes, value.MustParse(`{"small":"x"}`))
//	// v == Sizes{Small: 12, Default: 14}
//
// JSON Schema output hints
//
//	sch, _ := sizes.JSONSchema()
//	// UnknownReport => additionalProperties=false,
//	// UnknownStrip/UnknownPassthrough => additionalProperties=true
package dsl
