package value

import "strings"

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// joinPointer appends one RFC 6901 reference token to base.
func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
