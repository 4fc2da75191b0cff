package engine

import (
	"strconv"
	"strings"
)

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by internal helpers.
type SimpleIssue struct {
	Code    string
	Path    string
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// EnforceOptions selects the checks applied while tokens stream through.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	// OnWarning receives duplicate keys under DupWarn. Findings that stop the
	// stream are only returned as IssueError.
	OnWarning func(SimpleIssue)
}

// WrapWithEnforcement returns a TokenSource that applies the duplicate key
// policy and the nesting limit of opt to every token of inner.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcer{inner: inner, opt: opt}
}

// scope is one open container.
type scope struct {
	path    string
	isArray bool
	next    int                 // next array index
	key     string              // member whose value comes next
	seen    map[string]struct{} // nil unless duplicates are checked
}

type enforcer struct {
	inner  TokenSource
	opt    EnforceOptions
	scopes []scope
}

func (e *enforcer) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	switch tok.Kind {
	case KindKey:
		if err := e.member(tok.String); err != nil {
			return Token{}, err
		}
	case KindBeginObject, KindBeginArray:
		p := e.valuePath()
		if e.opt.MaxDepth > 0 && len(e.scopes) >= e.opt.MaxDepth {
			return Token{}, IssueError{SimpleIssue{Code: "parse_error", Path: rootIfEmpty(p), Message: "max depth exceeded"}}
		}
		s := scope{path: p, isArray: tok.Kind == KindBeginArray}
		if !s.isArray && e.opt.OnDuplicate != DupIgnore {
			s.seen = map[string]struct{}{}
		}
		e.scopes = append(e.scopes, s)
	case KindEndObject, KindEndArray:
		if n := len(e.scopes); n > 0 {
			e.scopes = e.scopes[:n-1]
		}
	default:
		e.valuePath()
	}
	return tok, nil
}

// valuePath returns the pointer of the value that starts with the current
// token and advances the enclosing array.
func (e *enforcer) valuePath() string {
	n := len(e.scopes)
	if n == 0 {
		return ""
	}
	top := &e.scopes[n-1]
	if top.isArray {
		p := joinJSONPointer(top.path, strconv.Itoa(top.next))
		top.next++
		return p
	}
	return joinJSONPointer(top.path, top.key)
}

func (e *enforcer) member(key string) error {
	n := len(e.scopes)
	if n == 0 {
		return nil
	}
	top := &e.scopes[n-1]
	top.key = key
	if top.seen == nil {
		return nil
	}
	if _, dup := top.seen[key]; !dup {
		top.seen[key] = struct{}{}
		return nil
	}
	si := SimpleIssue{Code: "duplicate_key", Path: joinJSONPointer(top.path, key), Message: "key '" + key + "' duplicated"}
	if e.opt.OnDuplicate == DupError {
		return IssueError{si}
	}
	if e.opt.OnWarning != nil {
		e.opt.OnWarning(si)
	}
	return nil
}

func (e *enforcer) Location() int64 { return e.inner.Location() }

func rootIfEmpty(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
