package objectmodel

import (
	"github.com/reoring/cardschema/dsl"
	"github.com/reoring/cardschema/value"
)

// Action is what a host runs when the user activates a card action or an
// element's selectAction.
type Action interface {
	ActionType() string
	ResourceProvider
}

// ActionBase holds the members every action shares.
type ActionBase struct {
	ID      string
	Title   string
	IconURL string
	// AdditionalProperties keeps members the action type does not declare.
	AdditionalProperties map[string]any
}

// GetResourceInformation appends the icon, if any.
func (a *ActionBase) GetResourceInformation(acc *[]RemoteResourceInformation) {
	appendResource(acc, a.IconURL, "")
}

func actionFields[T any](b *dsl.ObjectBuilder[T], get func(*T) *ActionBase) {
	b.Field("id", dsl.StringOf(func(t *T) *string { return &get(t).ID })).OmitEmpty()
	b.Field("title", dsl.StringOf(func(t *T) *string { return &get(t).Title })).OmitEmpty()
	b.Field("iconUrl", dsl.StringOf(func(t *T) *string { return &get(t).IconURL })).OmitEmpty()
	b.UnknownPassthrough(func(t *T) *map[string]any { return &get(t).AdditionalProperties })
}

// OpenURLAction asks the host to open URL.
type OpenURLAction struct {
	ActionBase
	URL string
}

func (*OpenURLAction) ActionType() string { return "Action.OpenUrl" }

func newOpenURLSchema() *dsl.ObjectSchema[OpenURLAction] {
	b := dsl.ObjectOf[OpenURLAction]("OpenUrlAction")
	actionFields(b, func(a *OpenURLAction) *ActionBase { return &a.ActionBase })
	return b.
		Field("url", dsl.StringOf(func(a *OpenURLAction) *string { return &a.URL })).Required().
		MustBuild()
}

// SubmitAction hands the values of the card's inputs, merged with Data, to
// the host.
type SubmitAction struct {
	ActionBase
	Data value.Node
}

func (*SubmitAction) ActionType() string { return "Action.Submit" }

func newSubmitSchema() *dsl.ObjectSchema[SubmitAction] {
	b := dsl.ObjectOf[SubmitAction]("SubmitAction")
	actionFields(b, func(a *SubmitAction) *ActionBase { return &a.ActionBase })
	return b.
		Field("data", dsl.NodeOf(func(a *SubmitAction) *value.Node { return &a.Data })).
		MustBuild()
}

// UnknownAction preserves an action whose type has no registered parser.
// Raw is the complete original object and is written back unchanged.
type UnknownAction struct {
	Type string
	Raw  value.Node
}

func (u *UnknownAction) ActionType() string { return u.Type }

// GetResourceInformation appends the iconUrl member of Raw, if it is a string.
func (u *UnknownAction) GetResourceInformation(acc *[]RemoteResourceInformation) {
	icon, _ := u.Raw.Field("iconUrl").AsString()
	appendResource(acc, icon, "")
}

func newUnknownAction(tag string, raw value.Node) Action {
	return &UnknownAction{Type: tag, Raw: raw}
}

func encodeUnknownAction(a Action) (value.Node, bool) {
	u, ok := a.(*UnknownAction)
	if !ok || u == nil {
		return value.Absent(), false
	}
	return u.Raw, true
}

func newActionUnion() *dsl.Union[Action] {
	u := dsl.UnionOf[Action]("Action", "type")
	dsl.Register(u, "Action.OpenUrl", newOpenURLSchema())
	dsl.Register(u, "Action.Submit", newSubmitSchema())
	u.Fallback(newUnknownAction, encodeUnknownAction)
	return u
}

func collectActions(actions []Action, acc *[]RemoteResourceInformation) {
	for _, a := range actions {
		if a != nil {
			a.GetResourceInformation(acc)
		}
	}
}
