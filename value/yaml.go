package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// ParseYAML decodes the first YAML document in data into a Node. Mapping keys
// must be unique whatever opt.Duplicates says; numbers become json.Number so
// YAML and JSON inputs produce identical trees. MaxBytes and MaxDepth apply as
// in Parse.
func ParseYAML(data []byte, opts ...ParseOpt) (Node, error) {
	docs, err := ParseYAMLAll(data, opts...)
	if err != nil {
		return Absent(), err
	}
	if len(docs) == 0 {
		return Absent(), &ParseError{Code: CodeParseError, Path: "/", Message: "empty input", Err: io.EOF}
	}
	return docs[0], nil
}

// ParseYAMLAll decodes every document of a multi-document YAML stream.
// Alias expansion is budgeted per document; a document whose values come
// almost entirely from aliases fails with a truncated error.
func ParseYAMLAll(data []byte, opts ...ParseOpt) ([]Node, error) {
	opt := lastOpt(opts)
	if err := checkSize(len(data), opt); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out []Node
	for {
		var root yaml.Node
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, &ParseError{Code: CodeParseError, Path: "/", Message: err.Error(), Err: err}
		}
		w := &yamlWalker{maxDepth: opt.MaxDepth, expanding: map[*yaml.Node]bool{}}
		v, err := w.walk(&root, "", 0)
		if err != nil {
			return nil, err
		}
		out = append(out, Of(v))
	}
}

// yamlWalker converts one yaml.Node document, counting values the way
// yaml.v3 does when it decodes into Go values.
type yamlWalker struct {
	maxDepth   int
	values     int
	aliased    int // values produced while expanding an alias
	aliasDepth int
	expanding  map[*yaml.Node]bool
}

func allowedAliasRatio(values int) float64 {
	const low, high = 400000, 4000000
	switch {
	case values <= low:
		return 0.99
	case values >= high:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(values-low)/float64(high-low))
	}
}

func (w *yamlWalker) walk(n *yaml.Node, path string, depth int) (any, error) {
	w.values++
	if w.aliasDepth > 0 {
		w.aliased++
	}
	if w.aliased > 100 && w.values > 1000 && float64(w.aliased)/float64(w.values) > allowedAliasRatio(w.values) {
		return nil, &ParseError{Code: CodeTruncated, Path: pointerOrRoot(path), Message: "excessive aliasing"}
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return w.walk(n.Content[0], path, depth)
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, nil
		}
		if w.expanding[n.Alias] {
			return nil, &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "anchor '" + n.Value + "' contains itself"}
		}
		w.expanding[n.Alias] = true
		w.aliasDepth++
		v, err := w.walk(n.Alias, path, depth)
		w.aliasDepth--
		delete(w.expanding, n.Alias)
		return v, err
	case yaml.MappingNode:
		if err := w.enter(path, depth); err != nil {
			return nil, err
		}
		m := make(map[string]any, len(n.Content)/2)
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			key := k.Value
			if pos, dup := first[key]; dup {
				de := &DuplicateKeyError{Key: key, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
				return nil, &ParseError{Code: CodeDuplicateKey, Path: joinPointer(path, key), Message: de.Error(), Err: de}
			}
			first[key] = [2]int{k.Line, k.Column}
			val, err := w.walk(n.Content[i+1], joinPointer(path, key), depth+1)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	case yaml.SequenceNode:
		if err := w.enter(path, depth); err != nil {
			return nil, err
		}
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := w.walk(c, joinPointer(path, strconv.Itoa(i)), depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return yamlScalar(n), nil
	default:
		return nil, nil
	}
}

// enter checks the nesting limit for a container at depth (root is 0).
func (w *yamlWalker) enter(path string, depth int) error {
	if w.maxDepth > 0 && depth >= w.maxDepth {
		return &ParseError{Code: CodeParseError, Path: pointerOrRoot(path), Message: "max depth exceeded"}
	}
	return nil
}

func yamlScalar(n *yaml.Node) any {
	switch n.Tag {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return json.Number(strconv.FormatInt(i, 10))
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return json.Number(strconv.FormatFloat(f, 'g', -1, 64))
		}
	}
	return n.Value
}

func pointerOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// MarshalYAML implements yaml.Marshaler. Numbers are written as plain YAML
// ints or floats and mapping keys in ascending order, so the output parses
// back with ParseYAML into an equal node.
func (n Node) MarshalYAML() (any, error) {
	return toYAMLNode(n), nil
}

func toYAMLNode(n Node) *yaml.Node {
	switch n.Kind() {
	case KindBool:
		b, _ := n.AsBool()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(b)}
	case KindNumber:
		num, _ := n.AsNumber()
		tag := "!!int"
		if strings.ContainsAny(num.String(), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: num.String()}
	case KindString:
		s, _ := n.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case KindArray:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range n.Elements() {
			out.Content = append(out.Content, toYAMLNode(el))
		}
		return out
	case KindObject:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range n.Keys() {
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				toYAMLNode(n.Field(k)))
		}
		return out
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// normalizeYAMLMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-string keys are dropped.
func normalizeYAMLMap(t map[any]any) map[string]any {
	out := make(map[string]any, len(t))
	for k, vv := range t {
		ks, ok := k.(string)
		if !ok {
			continue
		}
		out[ks] = normalizeYAMLValue(vv)
	}
	return out
}

func normalizeYAMLValue(v any) any {
	switch t := v.(type) {
	case map[any]any:
		return normalizeYAMLMap(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAMLValue(vv)
		}
		return out
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeYAMLValue(t[i])
		}
		return arr
	default:
		return normalizeScalar(v)
	}
}
