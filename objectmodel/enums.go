package objectmodel

import "github.com/reoring/cardschema/dsl"

// VerticalContentAlignment positions the content of a card or container.
type VerticalContentAlignment int

const (
	VerticalContentAlignmentTop VerticalContentAlignment = iota
	VerticalContentAlignmentCenter
	VerticalContentAlignmentBottom
)

var VerticalContentAlignmentEnum = dsl.NewEnum("VerticalContentAlignment",
	dsl.EnumEntry[VerticalContentAlignment]{Value: VerticalContentAlignmentTop, Name: "Top"},
	dsl.EnumEntry[VerticalContentAlignment]{Value: VerticalContentAlignmentCenter, Name: "Center"},
	dsl.EnumEntry[VerticalContentAlignment]{Value: VerticalContentAlignmentBottom, Name: "Bottom"},
)

func (v VerticalContentAlignment) String() string { return VerticalContentAlignmentEnum.String(v) }

// FontType names an entry of the host's font registry.
type FontType int

const (
	FontTypeDefault FontType = iota
	FontTypeMonospace
)

var FontTypeEnum = dsl.NewEnum("FontType",
	dsl.EnumEntry[FontType]{Value: FontTypeDefault, Name: "Default"},
	dsl.EnumEntry[FontType]{Value: FontTypeMonospace, Name: "Monospace"},
)

func (f FontType) String() string { return FontTypeEnum.String(f) }

// TextSize selects a role of FontSizesConfig.
type TextSize int

const (
	TextSizeDefault TextSize = iota
	TextSizeSmall
	TextSizeMedium
	TextSizeLarge
	TextSizeExtraLarge
)

// TextSizeEnum accepts the legacy name "Normal" for Default.
var TextSizeEnum = dsl.NewEnum("TextSize",
	dsl.EnumEntry[TextSize]{Value: TextSizeDefault, Name: "Default", Aliases: []string{"Normal"}},
	dsl.EnumEntry[TextSize]{Value: TextSizeSmall, Name: "Small"},
	dsl.EnumEntry[TextSize]{Value: TextSizeMedium, Name: "Medium"},
	dsl.EnumEntry[TextSize]{Value: TextSizeLarge, Name: "Large"},
	dsl.EnumEntry[TextSize]{Value: TextSizeExtraLarge, Name: "ExtraLarge"},
)

func (s TextSize) String() string { return TextSizeEnum.String(s) }

// TextWeight selects a role of FontWeightsConfig.
type TextWeight int

const (
	TextWeightDefault TextWeight = iota
	TextWeightLighter
	TextWeightBolder
)

// TextWeightEnum accepts the legacy name "Normal" for Default.
var TextWeightEnum = dsl.NewEnum("TextWeight",
	dsl.EnumEntry[TextWeight]{Value: TextWeightDefault, Name: "Default", Aliases: []string{"Normal"}},
	dsl.EnumEntry[TextWeight]{Value: TextWeightLighter, Name: "Lighter"},
	dsl.EnumEntry[TextWeight]{Value: TextWeightBolder, Name: "Bolder"},
)

func (w TextWeight) String() string { return TextWeightEnum.String(w) }

type HorizontalAlignment int

const (
	HorizontalAlignmentLeft HorizontalAlignment = iota
	HorizontalAlignmentCenter
	HorizontalAlignmentRight
)

var HorizontalAlignmentEnum = dsl.NewEnum("HorizontalAlignment",
	dsl.EnumEntry[HorizontalAlignment]{Value: HorizontalAlignmentLeft, Name: "Left"},
	dsl.EnumEntry[HorizontalAlignment]{Value: HorizontalAlignmentCenter, Name: "Center"},
	dsl.EnumEntry[HorizontalAlignment]{Value: HorizontalAlignmentRight, Name: "Right"},
)

func (h HorizontalAlignment) String() string { return HorizontalAlignmentEnum.String(h) }

type ImageSize int

const (
	ImageSizeAuto ImageSize = iota
	ImageSizeStretch
	ImageSizeSmall
	ImageSizeMedium
	ImageSizeLarge
)

var ImageSizeEnum = dsl.NewEnum("ImageSize",
	dsl.EnumEntry[ImageSize]{Value: ImageSizeAuto, Name: "Auto"},
	dsl.EnumEntry[ImageSize]{Value: ImageSizeStretch, Name: "Stretch"},
	dsl.EnumEntry[ImageSize]{Value: ImageSizeSmall, Name: "Small"},
	dsl.EnumEntry[ImageSize]{Value: ImageSizeMedium, Name: "Medium"},
	dsl.EnumEntry[ImageSize]{Value: ImageSizeLarge, Name: "Large"},
)

func (s ImageSize) String() string { return ImageSizeEnum.String(s) }

type ImageStyle int

const (
	ImageStyleDefault ImageStyle = iota
	ImageStylePerson
)

var ImageStyleEnum = dsl.NewEnum("ImageStyle",
	dsl.EnumEntry[ImageStyle]{Value: ImageStyleDefault, Name: "Default"},
	dsl.EnumEntry[ImageStyle]{Value: ImageStylePerson, Name: "Person"},
)

func (s ImageStyle) String() string { return ImageStyleEnum.String(s) }

type ChoiceInputStyle int

const (
	ChoiceInputStyleCompact ChoiceInputStyle = iota
	ChoiceInputStyleExpanded
)

var ChoiceInputStyleEnum = dsl.NewEnum("ChoiceInputStyle",
	dsl.EnumEntry[ChoiceInputStyle]{Value: ChoiceInputStyleCompact, Name: "Compact"},
	dsl.EnumEntry[ChoiceInputStyle]{Value: ChoiceInputStyleExpanded, Name: "Expanded"},
)

func (s ChoiceInputStyle) String() string { return ChoiceInputStyleEnum.String(s) }
