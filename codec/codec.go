// Package codec binds a schema to a text format: raw JSON or YAML in, typed
// value out, and back.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"

	cardschema "github.com/reoring/cardschema"
	"github.com/reoring/cardschema/value"
	"gopkg.in/yaml.v3"
)

// Format is a supported text encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "json"
}

// ParseFormat accepts "json", "yaml" and "yml" in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("codec: unknown format %q", s)
}

// FormatFromPath picks YAML for .yaml and .yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Options configures a Codec. The zero value reads and writes compact JSON.
type Options struct {
	Format Format
	// Path selects a sub-document with gjson path syntax before decoding.
	Path string
	// Indent pretty-prints JSON output when non-empty.
	Indent string
	Parse  value.ParseOpt
	Decode cardschema.DecodeOpt
}

// Codec converts between raw text and T through a schema. It is safe for
// concurrent use.
type Codec[T any] struct {
	schema cardschema.Schema[T]
	opt    Options
}

// New returns a codec for s. The last Options wins.
func New[T any](s cardschema.Schema[T], opts ...Options) *Codec[T] {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	return &Codec[T]{schema: s, opt: opt}
}

func (c *Codec[T]) Schema() cardschema.Schema[T] { return c.schema }

// Parse turns raw text into a node. Syntax errors, duplicate keys under
// DuplicateReject and exceeded limits are returned as cardschema.Issues.
func (c *Codec[T]) Parse(data []byte) (value.Node, error) {
	n, err := c.parse(data)
	if err != nil {
		return value.Absent(), cardschema.IssuesFromParseError(err)
	}
	return n, nil
}

func (c *Codec[T]) parse(data []byte) (value.Node, error) {
	if c.opt.Format == YAML {
		n, err := value.ParseYAML(data, c.opt.Parse)
		if err != nil || c.opt.Path == "" {
			return n, err
		}
		// gjson addresses JSON text only; the limits were applied to the YAML
		js, err := n.MarshalJSON()
		if err != nil {
			return value.Absent(), err
		}
		return value.Select(js, c.opt.Path)
	}
	if c.opt.Path != "" {
		return value.Select(data, c.opt.Path, c.opt.Parse)
	}
	return value.Parse(data, c.opt.Parse)
}

// Decode parses data and deserializes it against def. err is non-nil only
// when data cannot be parsed; recovered schema faults come back as iss.
func (c *Codec[T]) Decode(data []byte, def T) (T, cardschema.Issues, error) {
	d, iss, err := c.decode(data, def, false)
	return d.Value, iss, err
}

// DecodeWithMeta is Decode plus presence metadata.
func (c *Codec[T]) DecodeWithMeta(data []byte, def T) (cardschema.Decoded[T], cardschema.Issues, error) {
	return c.decode(data, def, true)
}

func (c *Codec[T]) decode(data []byte, def T, withMeta bool) (cardschema.Decoded[T], cardschema.Issues, error) {
	n, err := c.Parse(data)
	if err != nil {
		return cardschema.Decoded[T]{Value: def}, nil, err
	}
	var iss cardschema.Issues
	opt := c.opt.Decode
	user := opt.OnIssue
	opt.OnIssue = func(it cardschema.Issue) {
		iss = append(iss, it)
		if user != nil {
			user(it)
		}
	}
	if withMeta {
		return c.schema.DeserializeWithMeta(n, def, opt), iss, nil
	}
	return cardschema.Decoded[T]{Value: c.schema.Deserialize(n, def, opt)}, iss, nil
}

// Encode serializes v in the codec's format.
func (c *Codec[T]) Encode(v T) ([]byte, error) {
	return c.Marshal(c.schema.Serialize(v))
}

// EncodePreserving serializes d.Value without the members that were only
// materialized from the default.
func (c *Codec[T]) EncodePreserving(d cardschema.Decoded[T]) ([]byte, error) {
	return c.Marshal(cardschema.SerializePreserving(c.schema, d))
}

// Marshal renders a node in the codec's format.
func (c *Codec[T]) Marshal(n value.Node) ([]byte, error) {
	if c.opt.Format == YAML {
		return yaml.Marshal(n)
	}
	if c.opt.Indent != "" {
		return value.MarshalIndent(n, "", c.opt.Indent)
	}
	return n.MarshalJSON()
}
