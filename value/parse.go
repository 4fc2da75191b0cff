package value

import (
	"errors"
	"io"

	eng "github.com/reoring/cardschema/internal/engine"
	"github.com/reoring/cardschema/internal/jsonsrc"
)

// DuplicatePolicy selects how repeated object keys are treated while parsing.
type DuplicatePolicy int

const (
	DuplicateLastWins DuplicatePolicy = iota // Keep the last occurrence silently.
	DuplicateWarn                            // Keep the last occurrence and report a warning.
	DuplicateReject                          // Fail the parse.
)

// ParseOpt bundles raw-text parsing limits. Zero values disable each limit.
type ParseOpt struct {
	Duplicates DuplicatePolicy
	MaxDepth   int
	MaxBytes   int64
	// OnWarning receives findings that do not stop the parse, that is duplicate
	// keys under DuplicateWarn. Fatal findings are only returned as errors.
	OnWarning func(*ParseError)
}

// Error codes carried by ParseError. They match the issue codes of the root package.
const (
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTruncated    = "truncated"
)

// ParseError describes why raw text could not become a Node.
type ParseError struct {
	Code    string
	Path    string // JSON Pointer of the offending location when known.
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Path != "" && e.Path != "/" {
		return "value: " + e.Code + " at " + e.Path + ": " + e.Message
	}
	return "value: " + e.Code + ": " + e.Message
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse decodes exactly one JSON document.
func Parse(data []byte, opts ...ParseOpt) (Node, error) {
	opt := lastOpt(opts)
	if err := checkSize(len(data), opt); err != nil {
		return Absent(), err
	}
	return decode(jsonsrc.NewBytes(data, 0), opt)
}

// ParseReader decodes exactly one JSON document from r. MaxBytes is enforced
// while reading, so oversized input is never buffered whole.
func ParseReader(r io.Reader, opts ...ParseOpt) (Node, error) {
	opt := lastOpt(opts)
	return decode(jsonsrc.NewReader(r, opt.MaxBytes), opt)
}

// scan checks data against opt like Parse without building a tree.
func scan(data []byte, opt ParseOpt) error {
	if err := checkSize(len(data), opt); err != nil {
		return err
	}
	if err := eng.SkipDocument(enforce(jsonsrc.NewBytes(data, 0), opt)); err != nil {
		return toParseError(err)
	}
	return nil
}

func checkSize(n int, opt ParseOpt) error {
	if opt.MaxBytes > 0 && int64(n) > opt.MaxBytes {
		return &ParseError{Code: CodeTruncated, Path: "/", Message: "max bytes exceeded"}
	}
	return nil
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(data string) Node {
	n, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return n
}

func decode(src eng.TokenSource, opt ParseOpt) (Node, error) {
	v, err := eng.DecodeDocument(enforce(src, opt))
	if err != nil {
		return Absent(), toParseError(err)
	}
	return Of(v), nil
}

func enforce(src eng.TokenSource, opt ParseOpt) eng.TokenSource {
	eo := eng.EnforceOptions{OnDuplicate: toEngineDup(opt.Duplicates), MaxDepth: opt.MaxDepth}
	if opt.OnWarning != nil {
		eo.OnWarning = func(si eng.SimpleIssue) {
			opt.OnWarning(&ParseError{Code: si.Code, Path: si.Path, Message: si.Message})
		}
	}
	return eng.WrapWithEnforcement(src, eo)
}

func toEngineDup(p DuplicatePolicy) eng.DuplicateStrictness {
	switch p {
	case DuplicateReject:
		return eng.DupError
	case DuplicateWarn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func toParseError(err error) error {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return &ParseError{Code: ie.Code, Path: ie.Path, Message: ie.Message, Err: err}
	}
	if errors.Is(err, io.EOF) {
		return &ParseError{Code: CodeParseError, Path: "/", Message: "empty input", Err: err}
	}
	return &ParseError{Code: CodeParseError, Path: "/", Message: err.Error(), Err: err}
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}
