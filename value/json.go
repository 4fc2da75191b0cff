package value

import (
	j "github.com/goccy/go-json"
)

// MarshalJSON renders the node as compact JSON with object keys sorted and
// numbers written back with their original text. Absent nodes render as null.
func (n Node) MarshalJSON() ([]byte, error) {
	return j.Marshal(n.Interface())
}

// UnmarshalJSON replaces n with the parsed document.
func (n *Node) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalIndent is like MarshalJSON with indentation.
func MarshalIndent(n Node, prefix, indent string) ([]byte, error) {
	return j.MarshalIndent(n.Interface(), prefix, indent)
}

// String returns the compact JSON text of n, or "<absent>".
func (n Node) String() string {
	if !n.ok {
		return "<absent>"
	}
	b, err := n.MarshalJSON()
	if err != nil {
		return "<invalid: " + err.Error() + ">"
	}
	return string(b)
}
