package cardschema

import (
	"errors"

	"github.com/reoring/cardschema/value"
)

// IssuesFromParseError converts a raw-text parse failure into Issues. Errors
// that are not *value.ParseError become a single parse_error at the root.
func IssuesFromParseError(err error) Issues {
	if err == nil {
		return nil
	}
	var pe *value.ParseError
	if errors.As(err, &pe) {
		path := pe.Path
		if path == "" {
			path = "/"
		}
		return Issues{{Path: path, Code: pe.Code, Message: pe.Message, Cause: err}}
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
}
