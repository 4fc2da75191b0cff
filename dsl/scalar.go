package dsl

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	cardschema "github.com/reoring/cardschema"
	js "github.com/reoring/cardschema/jsonschema"
	"github.com/reoring/cardschema/value"
)

// Scalar converts a single wire value to and from a Go value E.
//
// Decode returns the converted value and an empty code on success, or an issue
// code (invalid_type, invalid_enum, overflow) when n cannot represent an E.
// Decode is never called with an absent node.
type Scalar[E any] interface {
	Decode(n value.Node) (E, string)
	Encode(v E) (value.Node, bool)
	// Expected names the accepted wire values for messages.
	Expected() string
	JSONSchema() *js.Schema
}

type stringScalar[S ~string] struct{}

// String returns the Scalar for string-kinded types.
func String[S ~string]() Scalar[S] { return stringScalar[S]{} }

func (stringScalar[S]) Decode(n value.Node) (S, string) {
	s, ok := n.AsString()
	if !ok {
		return "", cardschema.CodeInvalidType
	}
	return S(s), ""
}
func (stringScalar[S]) Encode(v S) (value.Node, bool) { return value.Of(string(v)), true }
func (stringScalar[S]) Expected() string              { return "string" }
func (stringScalar[S]) JSONSchema() *js.Schema        { return &js.Schema{Type: "string"} }

type boolScalar[B ~bool] struct{}

// Bool returns the Scalar for bool-kinded types. Strings such as "true" are
// not accepted.
func Bool[B ~bool]() Scalar[B] { return boolScalar[B]{} }

func (boolScalar[B]) Decode(n value.Node) (B, string) {
	b, ok := n.AsBool()
	if !ok {
		return false, cardschema.CodeInvalidType
	}
	return B(b), ""
}
func (boolScalar[B]) Encode(v B) (value.Node, bool) { return value.Of(bool(v)), true }
func (boolScalar[B]) Expected() string              { return "boolean" }
func (boolScalar[B]) JSONSchema() *js.Schema        { return &js.Schema{Type: "boolean"} }

// Unsigned is the constraint of Uint.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the constraint of Int.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Floating is the constraint of Float.
type Floating interface {
	~float32 | ~float64
}

type uintScalar[N Unsigned] struct{}

// Uint returns the Scalar for unsigned integers. Negative, fractional or too
// large numbers yield overflow; non-numbers yield invalid_type.
func Uint[N Unsigned]() Scalar[N] { return uintScalar[N]{} }

func (uintScalar[N]) Decode(n value.Node) (N, string) {
	if n.Kind() != value.KindNumber {
		return 0, cardschema.CodeInvalidType
	}
	u, ok := n.AsUint64()
	if !ok || uint64(N(u)) != u {
		return 0, cardschema.CodeOverflow
	}
	return N(u), ""
}
func (uintScalar[N]) Encode(v N) (value.Node, bool) {
	return value.Of(uint64(v)), true
}
func (uintScalar[N]) Expected() string { return "non-negative integer" }
func (uintScalar[N]) JSONSchema() *js.Schema {
	return &js.Schema{Type: "integer", Minimum: js.Float(0)}
}

type intScalar[N Signed] struct{}

// Int returns the Scalar for signed integers.
func Int[N Signed]() Scalar[N] { return intScalar[N]{} }

func (intScalar[N]) Decode(n value.Node) (N, string) {
	if n.Kind() != value.KindNumber {
		return 0, cardschema.CodeInvalidType
	}
	i, ok := n.AsInt64()
	if !ok || int64(N(i)) != i {
		return 0, cardschema.CodeOverflow
	}
	return N(i), ""
}
func (intScalar[N]) Encode(v N) (value.Node, bool) { return value.Of(int64(v)), true }
func (intScalar[N]) Expected() string              { return "integer" }
func (intScalar[N]) JSONSchema() *js.Schema        { return &js.Schema{Type: "integer"} }

type floatScalar[F Floating] struct{}

// Float returns the Scalar for floating point numbers. Values that do not fit
// in F yield overflow.
func Float[F Floating]() Scalar[F] { return floatScalar[F]{} }

func (floatScalar[F]) Decode(n value.Node) (F, string) {
	if n.Kind() != value.KindNumber {
		return 0, cardschema.CodeInvalidType
	}
	f, ok := n.AsFloat64()
	if !ok || math.IsInf(float64(F(f)), 0) {
		return 0, cardschema.CodeOverflow
	}
	return F(f), ""
}
func (floatScalar[F]) Encode(v F) (value.Node, bool) {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return value.Absent(), false
	}
	bits := 64
	if reflect.TypeOf((*F)(nil)).Elem().Kind() == reflect.Float32 {
		bits = 32
	}
	return value.Of(json.Number(strconv.FormatFloat(f, 'g', -1, bits))), true
}
func (floatScalar[F]) Expected() string       { return "number" }
func (floatScalar[F]) JSONSchema() *js.Schema { return &js.Schema{Type: "number"} }
