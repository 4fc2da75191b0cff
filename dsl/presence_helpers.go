package dsl

import (
	cardschema "github.com/reoring/cardschema"
	"github.com/reoring/cardschema/i18n"
	"github.com/reoring/cardschema/value"
)

// decodeCtx carries per-call state through one Deserialize. It lives on the
// caller's stack so schemas stay shareable across goroutines.
type decodeCtx struct {
	onIssue  func(cardschema.Issue)
	unknown  *cardschema.UnknownPolicy
	presence cardschema.PresenceMap // nil unless metadata was requested
}

func newDecodeCtx(opt cardschema.DecodeOpt, withMeta bool) *decodeCtx {
	dc := &decodeCtx{onIssue: opt.OnIssue, unknown: opt.Unknown}
	if withMeta {
		dc.presence = cardschema.PresenceMap{}
	}
	return dc
}

func (dc *decodeCtx) report(p cardschema.PathRef, code string, data map[string]string) {
	if dc.onIssue == nil {
		return
	}
	params := make(map[string]any, len(data))
	for k, v := range data {
		params[k] = v
	}
	dc.onIssue(cardschema.Issue{
		Path:    p.Pointer(),
		Code:    code,
		Message: i18n.T(code, data),
		Hint:    data["expected"],
		Params:  params,
	})
}

// mismatch reports a present value that could not be converted.
func (dc *decodeCtx) mismatch(p cardschema.PathRef, code, expected string, got value.Node) {
	dc.report(p, code, map[string]string{"expected": expected, "got": got.Kind().String()})
}

func (dc *decodeCtx) mark(p cardschema.PathRef, flag cardschema.Presence) {
	if dc.presence == nil {
		return
	}
	dc.presence[p.Pointer()] |= flag
}

// markSeen records a present node, including null.
func (dc *decodeCtx) markSeen(p cardschema.PathRef, n value.Node) {
	if dc.presence == nil {
		return
	}
	f := cardschema.PresenceSeen
	if n.IsNull() {
		f |= cardschema.PresenceWasNull
	}
	dc.presence[p.Pointer()] |= f
}
