package cardschema

// UnknownPolicy controls how object members that no field declares are handled.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys silently.
	UnknownPassthrough                      // Keep unknown keys in the value's extension map.
	UnknownReport                           // Drop unknown keys and report an unknown_key issue.
)

// PresenceOpt filters the presence map returned by WithMeta APIs.
type PresenceOpt struct {
	Include []string // JSON Pointer prefixes to keep; empty keeps everything.
	Exclude []string // JSON Pointer prefixes to drop.
}

// PathRenderOpt controls how paths are rendered into strings.
type PathRenderOpt struct {
	Intern bool
}

// DecodeOpt bundles deserialization options. When several are passed the last
// one wins.
type DecodeOpt struct {
	// OnIssue receives every recovered fault. It never changes the result.
	OnIssue    func(Issue)
	Presence   PresenceOpt
	PathRender PathRenderOpt
	// Unknown overrides the schema's own unknown-key policy when non-nil.
	Unknown *UnknownPolicy
}

// LastDecodeOpt returns the effective option of a variadic list.
func LastDecodeOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) == 0 {
		return DecodeOpt{}
	}
	return opts[len(opts)-1]
}

// CollectIssues returns a DecodeOpt that appends every issue to dst.
func CollectIssues(dst *Issues) DecodeOpt {
	return DecodeOpt{OnIssue: func(is Issue) { *dst = append(*dst, is) }}
}
