package value

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Select picks the sub-document addressed by a gjson path (for example
// "body.0.sources" or "fontTypes.monospace") out of raw JSON. The whole input
// is first checked against opt (size, depth, duplicate keys) without building
// a tree, so selecting a path cannot bypass the limits. A path that matches
// nothing yields an absent node and no error.
func Select(data []byte, path string, opts ...ParseOpt) (Node, error) {
	opt := lastOpt(opts)
	if path == "" {
		return Parse(data, opt)
	}
	if err := scan(data, opt); err != nil {
		return Absent(), err
	}
	return FromGJSON(gjson.GetBytes(data, path)), nil
}

// FromGJSON converts a gjson result into a Node. Numbers keep their raw text.
func FromGJSON(r gjson.Result) Node {
	if !r.Exists() {
		return Absent()
	}
	return Of(gjsonToAny(r))
}

func gjsonToAny(r gjson.Result) any {
	switch r.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		if r.Raw != "" {
			return json.Number(r.Raw)
		}
		return normalizeScalar(r.Num)
	case gjson.String:
		return r.Str
	}
	if r.IsArray() {
		elems := r.Array()
		out := make([]any, 0, len(elems))
		for _, e := range elems {
			out = append(out, gjsonToAny(e))
		}
		return out
	}
	m := map[string]any{}
	r.ForEach(func(k, v gjson.Result) bool {
		// gjson reports the last duplicate during iteration, matching Parse's default
		m[k.String()] = gjsonToAny(v)
		return true
	})
	return m
}
