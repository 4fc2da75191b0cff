package objectmodel

import (
	cardschema "github.com/reoring/cardschema"
	"github.com/reoring/cardschema/dsl"
	"github.com/reoring/cardschema/value"
)

// Element is a node of a card body. Concrete elements are pointers to the
// structs of this package, to UnknownElement, or to host types registered
// with RegisterElement.
type Element interface {
	ElementType() string
	Common() *BaseElement
	ResourceProvider
}

// BaseElement holds the members every element shares.
type BaseElement struct {
	ID        string
	IsVisible bool
	Separator bool
	// AdditionalProperties keeps members the element type does not declare.
	AdditionalProperties map[string]any
}

func DefaultBaseElement() BaseElement { return BaseElement{IsVisible: true} }

func (b *BaseElement) Common() *BaseElement { return b }

func baseFields[T any](b *dsl.ObjectBuilder[T], get func(*T) *BaseElement) {
	b.Field("id", dsl.StringOf(func(t *T) *string { return &get(t).ID })).OmitEmpty()
	b.Field("isVisible", dsl.BoolOf(func(t *T) *bool { return &get(t).IsVisible }))
	b.Field("separator", dsl.BoolOf(func(t *T) *bool { return &get(t).Separator })).OmitEmpty()
	b.UnknownPassthrough(func(t *T) *map[string]any { return &get(t).AdditionalProperties })
}

type TextBlock struct {
	BaseElement
	Text                string
	Size                cardschema.Optional[TextSize]
	Weight              cardschema.Optional[TextWeight]
	FontType            cardschema.Optional[FontType]
	HorizontalAlignment cardschema.Optional[HorizontalAlignment]
	Wrap                bool
	IsSubtle            bool
}

func (*TextBlock) ElementType() string                                 { return "TextBlock" }
func (*TextBlock) GetResourceInformation(*[]RemoteResourceInformation) {}

// ResolvedFont is the concrete font a host renders a TextBlock with.
type ResolvedFont struct {
	FontFamily string
	Size       uint
	Weight     uint
}

// Resolve looks up the block's font type, size and weight in host. Unset
// optionals select the Default role.
func (t *TextBlock) Resolve(host HostConfig) ResolvedFont {
	def := host.ResolveFont(orDefault(t.FontType, FontTypeDefault))
	return ResolvedFont{
		FontFamily: def.FontFamily,
		Size:       def.FontSizes.Size(orDefault(t.Size, TextSizeDefault)),
		Weight:     def.FontWeights.Weight(orDefault(t.Weight, TextWeightDefault)),
	}
}

func orDefault[E any](o cardschema.Optional[E], def E) E {
	if v, ok := o.Get(); ok {
		return v
	}
	return def
}

func newTextBlockSchema() *dsl.ObjectSchema[TextBlock] {
	b := dsl.ObjectOf[TextBlock]("TextBlock")
	baseFields(b, func(t *TextBlock) *BaseElement { return &t.BaseElement })
	return b.
		Field("text", dsl.StringOf(func(t *TextBlock) *string { return &t.Text })).Required().
		Field("size", dsl.OptionalEnumOf(func(t *TextBlock) *cardschema.Optional[TextSize] { return &t.Size }, TextSizeEnum)).
		Field("weight", dsl.OptionalEnumOf(func(t *TextBlock) *cardschema.Optional[TextWeight] { return &t.Weight }, TextWeightEnum)).
		Field("fontType", dsl.OptionalEnumOf(func(t *TextBlock) *cardschema.Optional[FontType] { return &t.FontType }, FontTypeEnum)).
		Field("horizontalAlignment", dsl.OptionalEnumOf(func(t *TextBlock) *cardschema.Optional[HorizontalAlignment] {
			return &t.HorizontalAlignment
		}, HorizontalAlignmentEnum)).
		Field("wrap", dsl.BoolOf(func(t *TextBlock) *bool { return &t.Wrap })).OmitEmpty().
		Field("isSubtle", dsl.BoolOf(func(t *TextBlock) *bool { return &t.IsSubtle })).OmitEmpty().
		Base(func() TextBlock { return TextBlock{BaseElement: DefaultBaseElement()} }).
		MustBuild()
}

type Image struct {
	BaseElement
	URL                 string
	AltText             string
	Size                ImageSize
	Style               ImageStyle
	BackgroundColor     string
	HorizontalAlignment cardschema.Optional[HorizontalAlignment]
	SelectAction        Action
}

func (*Image) ElementType() string { return "Image" }

// GetResourceInformation appends the image URL, then the resources of the
// select action.
func (i *Image) GetResourceInformation(acc *[]RemoteResourceInformation) {
	appendResource(acc, i.URL, "")
	if i.SelectAction != nil {
		i.SelectAction.GetResourceInformation(acc)
	}
}

func newImageSchema(actions *dsl.Union[Action]) *dsl.ObjectSchema[Image] {
	b := dsl.ObjectOf[Image]("Image")
	baseFields(b, func(i *Image) *BaseElement { return &i.BaseElement })
	return b.
		Field("url", dsl.StringOf(func(i *Image) *string { return &i.URL })).Required().
		Field("altText", dsl.StringOf(func(i *Image) *string { return &i.AltText })).OmitEmpty().
		Field("size", dsl.EnumOf(func(i *Image) *ImageSize { return &i.Size }, ImageSizeEnum)).
		Field("style", dsl.EnumOf(func(i *Image) *ImageStyle { return &i.Style }, ImageStyleEnum)).OmitEmpty().
		Field("backgroundColor", dsl.StringOf(func(i *Image) *string { return &i.BackgroundColor })).OmitEmpty().
		Field("horizontalAlignment", dsl.OptionalEnumOf(func(i *Image) *cardschema.Optional[HorizontalAlignment] {
			return &i.HorizontalAlignment
		}, HorizontalAlignmentEnum)).
		Field("selectAction", dsl.UnionFieldOf(func(i *Image) *Action { return &i.SelectAction }, actions)).
		Base(func() Image { return Image{BaseElement: DefaultBaseElement(), Size: ImageSizeAuto} }).
		MustBuild()
}

// Container groups elements. It owns its items.
type Container struct {
	BaseElement
	Items                    []Element
	VerticalContentAlignment cardschema.Optional[VerticalContentAlignment]
	SelectAction             Action
}

func (*Container) ElementType() string { return "Container" }

// GetResourceInformation appends the resources of every item in order, then
// those of the select action.
func (c *Container) GetResourceInformation(acc *[]RemoteResourceInformation) {
	collectAll(c.Items, acc)
	if c.SelectAction != nil {
		c.SelectAction.GetResourceInformation(acc)
	}
}

func collectAll(items []Element, acc *[]RemoteResourceInformation) {
	for _, it := range items {
		if it != nil {
			it.GetResourceInformation(acc)
		}
	}
}

type Fact struct {
	Title string
	Value string
}

var FactSchema = dsl.ObjectOf[Fact]("Fact").
	Field("title", dsl.StringOf(func(f *Fact) *string { return &f.Title })).Required().
	Field("value", dsl.StringOf(func(f *Fact) *string { return &f.Value })).Required().
	MustBuild()

type FactSet struct {
	BaseElement
	Facts []Fact
}

func (*FactSet) ElementType() string                                 { return "FactSet" }
func (*FactSet) GetResourceInformation(*[]RemoteResourceInformation) {}

func newFactSetSchema() *dsl.ObjectSchema[FactSet] {
	b := dsl.ObjectOf[FactSet]("FactSet")
	baseFields(b, func(f *FactSet) *BaseElement { return &f.BaseElement })
	return b.
		Field("facts", dsl.ArrayOf(func(f *FactSet) *[]Fact { return &f.Facts }, FactSchema)).
		Base(func() FactSet { return FactSet{BaseElement: DefaultBaseElement()} }).
		MustBuild()
}

// UnknownElement preserves an element whose type has no registered parser.
// Raw is the complete original object. Serialization writes Raw back with
// the current ID, IsVisible and Separator; AdditionalProperties is unused.
type UnknownElement struct {
	BaseElement
	Type string
	Raw  value.Node
}

func (u *UnknownElement) ElementType() string                               { return u.Type }
func (*UnknownElement) GetResourceInformation(*[]RemoteResourceInformation) {}

func newUnknownElement(tag string, raw value.Node) Element {
	u := &UnknownElement{BaseElement: DefaultBaseElement(), Type: tag, Raw: raw}
	u.ID, _ = raw.Field("id").AsString()
	if v, ok := raw.Field("isVisible").AsBool(); ok {
		u.IsVisible = v
	}
	u.Separator, _ = raw.Field("separator").AsBool()
	return u
}

func encodeUnknownElement(e Element) (value.Node, bool) {
	u, ok := e.(*UnknownElement)
	if !ok || u == nil {
		return value.Absent(), false
	}
	orig := newUnknownElement(u.Type, u.Raw).Common()
	if u.ID == orig.ID && u.IsVisible == orig.IsVisible && u.Separator == orig.Separator {
		return u.Raw, true
	}
	m, ok := u.Raw.Clone().Interface().(map[string]any)
	if !ok {
		return u.Raw, true
	}
	if u.ID != "" {
		m["id"] = u.ID
	} else {
		delete(m, "id")
	}
	m["isVisible"] = u.IsVisible
	if u.Separator {
		m["separator"] = true
	} else {
		delete(m, "separator")
	}
	return value.Object(m), true
}
