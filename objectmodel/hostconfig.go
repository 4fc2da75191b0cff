package objectmodel

import (
	"net/url"

	"github.com/reoring/cardschema/dsl"
)

// HostConfig is the renderer-side document holding the lookup tables that
// card elements refer to by name.
type HostConfig struct {
	// FontFamily is used when a registry entry leaves its family empty.
	FontFamily            string
	FontSizes             FontSizesConfig
	FontWeights           FontWeightsConfig
	FontTypes             FontTypesDefinition
	SupportsInteractivity bool
	// ImageBaseURL resolves relative image and media URLs.
	ImageBaseURL string
}

func DefaultHostConfig() HostConfig {
	return HostConfig{
		FontFamily:            "Segoe UI",
		FontSizes:             DefaultFontSizes(),
		FontWeights:           DefaultFontWeights(),
		FontTypes:             DefaultFontTypes(),
		SupportsInteractivity: true,
	}
}

var HostConfigSchema = dsl.ObjectOf[HostConfig]("HostConfig").
	Field("fontFamily", dsl.StringOf(func(h *HostConfig) *string { return &h.FontFamily })).
	Field("fontSizes", dsl.NestedOf(func(h *HostConfig) *FontSizesConfig { return &h.FontSizes }, FontSizesSchema)).
	Field("fontWeights", dsl.NestedOf(func(h *HostConfig) *FontWeightsConfig { return &h.FontWeights }, FontWeightsSchema)).
	Field("fontTypes", dsl.NestedOf(func(h *HostConfig) *FontTypesDefinition { return &h.FontTypes }, FontTypesSchema)).
	Field("supportsInteractivity", dsl.BoolOf(func(h *HostConfig) *bool { return &h.SupportsInteractivity })).
	Field("imageBaseUrl", dsl.StringOf(func(h *HostConfig) *string { return &h.ImageBaseURL })).
	Base(DefaultHostConfig).
	MustBuild()

// ResolveFont returns the registry entry for t with an empty family replaced
// by the host-wide FontFamily.
func (h HostConfig) ResolveFont(t FontType) FontTypeDefinition {
	def := h.FontTypes.Lookup(t)
	if def.FontFamily == "" {
		def.FontFamily = h.FontFamily
	}
	return def
}

// ResolveURL resolves a relative URL against ImageBaseURL. Absolute and
// unparsable URLs are returned unchanged.
func (h HostConfig) ResolveURL(raw string) string {
	if h.ImageBaseURL == "" || raw == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() {
		return raw
	}
	base, err := url.Parse(h.ImageBaseURL)
	if err != nil {
		return raw
	}
	return base.ResolveReference(u).String()
}
