package objectmodel

import (
	cardschema "github.com/reoring/cardschema"
	"github.com/reoring/cardschema/dsl"
)

// AdaptiveCard is the root of a card document. It owns its body and actions.
//
// FallbackText, Lang and BackgroundImage are omitted from the output when
// empty, so decoding that output against a default with non-empty values
// for them yields the default's values.
type AdaptiveCard struct {
	Version                  string
	FallbackText             string
	Lang                     string
	BackgroundImage          string
	VerticalContentAlignment cardschema.Optional[VerticalContentAlignment]
	Body                     []Element
	Actions                  []Action
	AdditionalProperties     map[string]any
}

func DefaultAdaptiveCard() AdaptiveCard { return AdaptiveCard{Version: "1.0"} }

// GetResourceInformation appends the background image, then the resources of
// the body in document order, then those of the actions.
func (c *AdaptiveCard) GetResourceInformation(acc *[]RemoteResourceInformation) {
	appendResource(acc, c.BackgroundImage, "")
	collectAll(c.Body, acc)
	collectActions(c.Actions, acc)
}

// Resources is GetResourceInformation into a fresh slice.
func (c *AdaptiveCard) Resources() []RemoteResourceInformation {
	var out []RemoteResourceInformation
	c.GetResourceInformation(&out)
	return out
}

// ElementParserRegistration maps element and action type names to their
// schemas and owns the card schema built over them. Register custom types
// before the first decode; afterwards a registration is safe for concurrent
// use.
type ElementParserRegistration struct {
	elements *dsl.Union[Element]
	actions  *dsl.Union[Action]
	card     *dsl.ObjectSchema[AdaptiveCard]
}

// NewElementParserRegistration returns a registration holding the built-in
// elements (TextBlock, Image, Media, Container, FactSet, Input.Date and
// Input.ChoiceSet) and actions (Action.OpenUrl and Action.Submit). Elements
// and actions of any other type decode to *UnknownElement and
// *UnknownAction.
func NewElementParserRegistration() *ElementParserRegistration {
	u := dsl.UnionOf[Element]("Element", "type")
	actions := newActionUnion()
	container := dsl.ObjectOf[Container]("Container")
	baseFields(container, func(c *Container) *BaseElement { return &c.BaseElement })
	containerSchema := container.
		Field("items", dsl.UnionArrayOf(func(c *Container) *[]Element { return &c.Items }, u)).
		Field("verticalContentAlignment", dsl.OptionalEnumOf(func(c *Container) *cardschema.Optional[VerticalContentAlignment] {
			return &c.VerticalContentAlignment
		}, VerticalContentAlignmentEnum)).
		Field("selectAction", dsl.UnionFieldOf(func(c *Container) *Action { return &c.SelectAction }, actions)).
		Base(func() Container { return Container{BaseElement: DefaultBaseElement()} }).
		MustBuild()

	dsl.Register(u, "TextBlock", newTextBlockSchema())
	dsl.Register(u, "Image", newImageSchema(actions))
	dsl.Register(u, "Media", newMediaSchema())
	dsl.Register(u, "Container", containerSchema)
	dsl.Register(u, "FactSet", newFactSetSchema())
	dsl.Register(u, "Input.Date", newDateInputSchema())
	dsl.Register(u, "Input.ChoiceSet", newChoiceSetSchema())
	u.Fallback(newUnknownElement, encodeUnknownElement)

	card := dsl.ObjectOf[AdaptiveCard]("AdaptiveCard").
		Const("type", "AdaptiveCard").
		Field("version", dsl.StringOf(func(c *AdaptiveCard) *string { return &c.Version })).
		Field("fallbackText", dsl.StringOf(func(c *AdaptiveCard) *string { return &c.FallbackText })).OmitEmpty().
		Field("lang", dsl.StringOf(func(c *AdaptiveCard) *string { return &c.Lang })).OmitEmpty().
		Field("backgroundImage", dsl.StringOf(func(c *AdaptiveCard) *string { return &c.BackgroundImage })).OmitEmpty().
		Field("verticalContentAlignment", dsl.OptionalEnumOf(func(c *AdaptiveCard) *cardschema.Optional[VerticalContentAlignment] {
			return &c.VerticalContentAlignment
		}, VerticalContentAlignmentEnum)).
		Field("body", dsl.UnionArrayOf(func(c *AdaptiveCard) *[]Element { return &c.Body }, u)).
		Field("actions", dsl.UnionArrayOf(func(c *AdaptiveCard) *[]Action { return &c.Actions }, actions)).OmitEmpty().
		UnknownPassthrough(func(c *AdaptiveCard) *map[string]any { return &c.AdditionalProperties }).
		Base(DefaultAdaptiveCard).
		MustBuild()

	return &ElementParserRegistration{elements: u, actions: actions, card: card}
}

// RegisterElement adds a host-defined element type. *V must implement
// Element. It panics when tag is already registered.
func RegisterElement[V any](r *ElementParserRegistration, tag string, s *dsl.ObjectSchema[V]) {
	dsl.Register(r.elements, tag, s)
}

// RegisterAction adds a host-defined action type. *V must implement Action.
// It panics when tag is already registered.
func RegisterAction[V any](r *ElementParserRegistration, tag string, s *dsl.ObjectSchema[V]) {
	dsl.Register(r.actions, tag, s)
}

// Elements is the union decoding single elements.
func (r *ElementParserRegistration) Elements() *dsl.Union[Element] { return r.elements }

// Actions is the union decoding single actions.
func (r *ElementParserRegistration) Actions() *dsl.Union[Action] { return r.actions }

// Card is the AdaptiveCard schema bound to this registration.
func (r *ElementParserRegistration) Card() *dsl.ObjectSchema[AdaptiveCard] { return r.card }

// Has reports whether the element tag has a parser.
func (r *ElementParserRegistration) Has(tag string) bool { return r.elements.Has(tag) }

// HasAction reports whether the action tag has a parser.
func (r *ElementParserRegistration) HasAction(tag string) bool { return r.actions.Has(tag) }

// DefaultRegistration holds the built-in elements only.
var DefaultRegistration = NewElementParserRegistration()

// CardSchema decodes cards with DefaultRegistration.
var CardSchema = DefaultRegistration.Card()
