package cardschema

import (
	"strconv"

	"github.com/reoring/cardschema/value"
)

// SerializePreserving serializes d.Value with s and then removes every member
// that was materialized only from the default (PresenceDefaultApplied set while
// neither seen nor null), at any depth. Members explicitly present in the input
// are kept even when they equal the default, so a document round-trips without
// growing.
func SerializePreserving[T any](s Schema[T], d Decoded[T]) value.Node {
	n := s.Serialize(d.Value).Clone()
	if d.Presence == nil {
		return n
	}
	prunePreserving(n.Interface(), "", d.Presence)
	return n
}

func prunePreserving(v any, cur string, pm PresenceMap) {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			p := cur + "/" + escapePointer(k)
			if pm.DefaultOnly(p) {
				delete(t, k)
				continue
			}
			prunePreserving(val, p, pm)
		}
	case []any:
		for i, val := range t {
			prunePreserving(val, cur+"/"+strconv.Itoa(i), pm)
		}
	}
}

func escapePointer(s string) string {
	return PathAt("").Field(s).Pointer()[1:]
}
