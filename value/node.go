// Package value is the generic JSON-like value container consumed by the
// deserialization engine.
//
// A Node wraps one of: nil (null), bool, string, json.Number, []any or
// map[string]any. Every accessor is total: asking for a missing field, an out
// of range index or a value of the wrong type yields an absent Node or a false
// ok flag, never a panic or an error.
package value

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
)

// Kind enumerates the shapes a Node can take.
type Kind uint8

const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{"absent", "null", "bool", "number", "string", "array", "object"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is an immutable view over a JSON-like value.
type Node struct {
	v  any
	ok bool
}

// Absent returns the marker for a missing value.
func Absent() Node { return Node{} }

// Null returns a present JSON null.
func Null() Node { return Node{ok: true} }

// Of wraps a Go value. Integer and float types are stored as json.Number;
// nested maps and slices are normalized lazily on access. A Node passed in is
// returned unchanged.
func Of(v any) Node {
	if n, ok := v.(Node); ok {
		return n
	}
	return Node{v: normalizeScalar(v), ok: true}
}

// Object wraps a map as an object node.
func Object(m map[string]any) Node {
	if m == nil {
		m = map[string]any{}
	}
	return Node{v: m, ok: true}
}

// Array wraps elements as an array node.
func Array(elems ...any) Node {
	if elems == nil {
		elems = []any{}
	}
	return Node{v: elems, ok: true}
}

func normalizeScalar(v any) any {
	switch t := v.(type) {
	case nil, bool, string, json.Number, map[string]any, []any:
		return v
	case int:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int8:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int16:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int32:
		return json.Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint:
		return json.Number(strconv.FormatUint(uint64(t), 10))
	case uint8:
		return json.Number(strconv.FormatUint(uint64(t), 10))
	case uint16:
		return json.Number(strconv.FormatUint(uint64(t), 10))
	case uint32:
		return json.Number(strconv.FormatUint(uint64(t), 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float32:
		return json.Number(strconv.FormatFloat(float64(t), 'g', -1, 32))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	case Node:
		if !t.ok {
			return nil
		}
		return t.v
	case map[any]any:
		return normalizeYAMLMap(t)
	case []map[string]any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	default:
		// unsupported Go types are exposed as opaque values of no JSON kind
		return v
	}
}

// Exists reports whether the node is present (JSON null counts as present).
func (n Node) Exists() bool { return n.ok }

// Kind reports the node's shape.
func (n Node) Kind() Kind {
	if !n.ok {
		return KindAbsent
	}
	switch n.v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindAbsent
	}
}

func (n Node) IsNull() bool   { return n.Kind() == KindNull }
func (n Node) IsObject() bool { return n.Kind() == KindObject }
func (n Node) IsArray() bool  { return n.Kind() == KindArray }

// Field returns the member called name, or an absent node when n is not an
// object or has no such member.
func (n Node) Field(name string) Node {
	m, ok := n.v.(map[string]any)
	if !n.ok || !ok {
		return Absent()
	}
	v, ok := m[name]
	if !ok {
		return Absent()
	}
	return Of(v)
}

// HasField reports whether n is an object with a member called name. Unlike
// Field it distinguishes a missing key from a present one of the wrong type.
func (n Node) HasField(name string) bool {
	m, ok := n.v.(map[string]any)
	if !n.ok || !ok {
		return false
	}
	_, ok = m[name]
	return ok
}

// Keys returns the member names of an object in ascending order.
func (n Node) Keys() []string {
	m, ok := n.v.(map[string]any)
	if !n.ok || !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Index returns the i-th array element or an absent node.
func (n Node) Index(i int) Node {
	arr, ok := n.v.([]any)
	if !n.ok || !ok || i < 0 || i >= len(arr) {
		return Absent()
	}
	return Of(arr[i])
}

// Len returns the number of array elements or object members, 0 otherwise.
func (n Node) Len() int {
	if !n.ok {
		return 0
	}
	switch t := n.v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	}
	return 0
}

// Elements returns the array elements as nodes.
func (n Node) Elements() []Node {
	arr, ok := n.v.([]any)
	if !n.ok || !ok {
		return nil
	}
	out := make([]Node, len(arr))
	for i := range arr {
		out[i] = Of(arr[i])
	}
	return out
}

func (n Node) AsString() (string, bool) {
	s, ok := n.v.(string)
	return s, n.ok && ok
}

func (n Node) AsBool() (bool, bool) {
	b, ok := n.v.(bool)
	return b, n.ok && ok
}

// AsNumber returns the number's decimal text.
func (n Node) AsNumber() (json.Number, bool) {
	num, ok := n.v.(json.Number)
	return num, n.ok && ok
}

func (n Node) AsFloat64() (float64, bool) {
	num, ok := n.AsNumber()
	if !ok {
		return 0, false
	}
	f, err := num.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// AsInt64 accepts integral numbers only; "14" and "14.0" both succeed, "14.5"
// does not.
func (n Node) AsInt64() (int64, bool) {
	num, ok := n.AsNumber()
	if !ok {
		return 0, false
	}
	if i, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
		return i, true
	}
	f, ok := n.AsFloat64()
	if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// AsUint64 accepts non-negative integral numbers only.
func (n Node) AsUint64() (uint64, bool) {
	num, ok := n.AsNumber()
	if !ok {
		return 0, false
	}
	if u, err := strconv.ParseUint(num.String(), 10, 64); err == nil {
		return u, true
	}
	f, ok := n.AsFloat64()
	if !ok || f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
		return 0, false
	}
	return uint64(f), true
}

// Interface returns the wrapped Go value (nil for absent and null).
func (n Node) Interface() any {
	if !n.ok {
		return nil
	}
	return n.v
}

// Clone returns a deep copy so the result shares no maps or slices with n.
func (n Node) Clone() Node {
	if !n.ok {
		return n
	}
	return Node{v: cloneAny(n.v), ok: true}
}

func cloneAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = cloneAny(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneAny(t[i])
		}
		return out
	default:
		return normalizeScalar(v)
	}
}

// Equal reports deep equality of two nodes. Numbers compare by value.
func Equal(a, b Node) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindAbsent, KindNull:
		return true
	case KindNumber:
		an, _ := a.AsNumber()
		bn, _ := b.AsNumber()
		if an == bn {
			return true
		}
		af, aok := a.AsFloat64()
		bf, bok := b.AsFloat64()
		return aok && bok && af == bf
	case KindArray:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !Equal(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case KindObject:
		ak, bk := a.Keys(), b.Keys()
		if len(ak) != len(bk) {
			return false
		}
		for i := range ak {
			if ak[i] != bk[i] || !Equal(a.Field(ak[i]), b.Field(bk[i])) {
				return false
			}
		}
		return true
	default:
		return a.v == b.v
	}
}
