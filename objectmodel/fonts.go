package objectmodel

import "github.com/reoring/cardschema/dsl"

// FontSizesConfig maps every TextSize role to a point size.
type FontSizesConfig struct {
	Small      uint
	Default    uint
	Medium     uint
	Large      uint
	ExtraLarge uint
}

func DefaultFontSizes() FontSizesConfig {
	return FontSizesConfig{Small: 12, Default: 14, Medium: 17, Large: 21, ExtraLarge: 26}
}

// Size returns the size of role s. Unknown roles resolve to Default.
func (c FontSizesConfig) Size(s TextSize) uint {
	switch s {
	case TextSizeSmall:
		return c.Small
	case TextSizeMedium:
		return c.Medium
	case TextSizeLarge:
		return c.Large
	case TextSizeExtraLarge:
		return c.ExtraLarge
	default:
		return c.Default
	}
}

func (c *FontSizesConfig) SetSize(s TextSize, v uint) {
	switch s {
	case TextSizeSmall:
		c.Small = v
	case TextSizeMedium:
		c.Medium = v
	case TextSizeLarge:
		c.Large = v
	case TextSizeExtraLarge:
		c.ExtraLarge = v
	default:
		c.Default = v
	}
}

var FontSizesSchema = dsl.ObjectOf[FontSizesConfig]("FontSizesConfig").
	Field("small", dsl.UintOf(func(c *FontSizesConfig) *uint { return &c.Small })).
	Field("default", dsl.UintOf(func(c *FontSizesConfig) *uint { return &c.Default })).
	Field("medium", dsl.UintOf(func(c *FontSizesConfig) *uint { return &c.Medium })).
	Field("large", dsl.UintOf(func(c *FontSizesConfig) *uint { return &c.Large })).
	Field("extraLarge", dsl.UintOf(func(c *FontSizesConfig) *uint { return &c.ExtraLarge })).
	Base(DefaultFontSizes).
	MustBuild()

// FontWeightsConfig maps every TextWeight role to a numeric weight.
type FontWeightsConfig struct {
	Lighter uint
	Default uint
	Bolder  uint
}

func DefaultFontWeights() FontWeightsConfig {
	return FontWeightsConfig{Lighter: 200, Default: 400, Bolder: 800}
}

// Weight returns the weight of role w. Unknown roles resolve to Default.
func (c FontWeightsConfig) Weight(w TextWeight) uint {
	switch w {
	case TextWeightLighter:
		return c.Lighter
	case TextWeightBolder:
		return c.Bolder
	default:
		return c.Default
	}
}

func (c *FontWeightsConfig) SetWeight(w TextWeight, v uint) {
	switch w {
	case TextWeightLighter:
		c.Lighter = v
	case TextWeightBolder:
		c.Bolder = v
	default:
		c.Default = v
	}
}

var FontWeightsSchema = dsl.ObjectOf[FontWeightsConfig]("FontWeightsConfig").
	Field("lighter", dsl.UintOf(func(c *FontWeightsConfig) *uint { return &c.Lighter })).
	Field("default", dsl.UintOf(func(c *FontWeightsConfig) *uint { return &c.Default })).
	Field("bolder", dsl.UintOf(func(c *FontWeightsConfig) *uint { return &c.Bolder })).
	Base(DefaultFontWeights).
	MustBuild()

// FontTypeDefinition is one named font: a family plus its size and weight
// tables. The tables are owned values; copying a definition copies them.
type FontTypeDefinition struct {
	FontFamily  string
	FontSizes   FontSizesConfig
	FontWeights FontWeightsConfig
}

func DefaultFontTypeDefinition() FontTypeDefinition {
	return FontTypeDefinition{FontSizes: DefaultFontSizes(), FontWeights: DefaultFontWeights()}
}

var FontTypeDefinitionSchema = dsl.ObjectOf[FontTypeDefinition]("FontTypeDefinition").
	Field("fontFamily", dsl.StringOf(func(d *FontTypeDefinition) *string { return &d.FontFamily })).
	Field("fontSizes", dsl.NestedOf(func(d *FontTypeDefinition) *FontSizesConfig { return &d.FontSizes }, FontSizesSchema)).
	Field("fontWeights", dsl.NestedOf(func(d *FontTypeDefinition) *FontWeightsConfig { return &d.FontWeights }, FontWeightsSchema)).
	Base(DefaultFontTypeDefinition).
	MustBuild()

// FontTypesDefinition is the host's font registry.
type FontTypesDefinition struct {
	Default   FontTypeDefinition
	Monospace FontTypeDefinition
}

func DefaultFontTypes() FontTypesDefinition {
	def := DefaultFontTypeDefinition()
	def.FontFamily = "Segoe UI"
	mono := DefaultFontTypeDefinition()
	mono.FontFamily = "Courier New"
	return FontTypesDefinition{Default: def, Monospace: mono}
}

// Lookup returns the definition registered for t. Unknown types resolve to
// Default.
func (r FontTypesDefinition) Lookup(t FontType) FontTypeDefinition {
	if t == FontTypeMonospace {
		return r.Monospace
	}
	return r.Default
}

var FontTypesSchema = dsl.ObjectOf[FontTypesDefinition]("FontTypesDefinition").
	Field("default", dsl.NestedOf(func(r *FontTypesDefinition) *FontTypeDefinition { return &r.Default }, FontTypeDefinitionSchema)).
	Field("monospace", dsl.NestedOf(func(r *FontTypesDefinition) *FontTypeDefinition { return &r.Monospace }, FontTypeDefinitionSchema)).
	Base(DefaultFontTypes).
	MustBuild()
