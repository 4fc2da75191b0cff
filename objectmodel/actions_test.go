package objectmodel_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	cardschema "github.com/reoring/cardschema"
	"github.com/reoring/cardschema/dsl"
	om "github.com/reoring/cardschema/objectmodel"
	"github.com/reoring/cardschema/value"
)

const interactiveCard = `{
	"type": "AdaptiveCard",
	"body": [
		{"type": "Image", "url": "https://img/face.png", "style": "person", "backgroundColor": "#FF0000",
		 "selectAction": {"type": "Action.OpenUrl", "url": "https://site/profile", "iconUrl": "https://img/open.svg"}},
		{"type": "Container", "items": [{"type": "TextBlock", "text": "more"}],
		 "selectAction": {"type": "Action.Submit", "data": {"id": 7, "tags": ["a"]}}}
	],
	"actions": [
		{"type": "Action.Submit", "title": "Send", "iconUrl": "https://img/send.png", "x-style": "positive"},
		{"type": "Action.ShowCard", "title": "More", "iconUrl": "https://img/more.gif", "card": {"type": "AdaptiveCard"}},
		{"type": "Action.OpenUrl", "title": "no url"}
	]
}`

func TestActions_Decode(t *testing.T) {
	card, iss := cardschema.DeserializeCollect[om.AdaptiveCard](om.CardSchema, value.MustParse(interactiveCard), om.DefaultAdaptiveCard())

	img := card.Body[0].(*om.Image)
	if img.Style != om.ImageStylePerson || img.BackgroundColor != "#FF0000" {
		t.Fatalf("image: %+v", img)
	}
	open, ok := img.SelectAction.(*om.OpenURLAction)
	if !ok || open.URL != "https://site/profile" || open.ActionType() != "Action.OpenUrl" {
		t.Fatalf("image selectAction: %#v", img.SelectAction)
	}

	submit, ok := card.Body[1].(*om.Container).SelectAction.(*om.SubmitAction)
	if !ok || !value.Equal(submit.Data, value.MustParse(`{"id":7,"tags":["a"]}`)) {
		t.Fatalf("container selectAction: %#v", card.Body[1].(*om.Container).SelectAction)
	}

	var types []string
	for _, a := range card.Actions {
		types = append(types, a.ActionType())
	}
	if diff := cmp.Diff([]string{"Action.Submit", "Action.ShowCard", "Action.OpenUrl"}, types); diff != "" {
		t.Fatalf("action types (-want +got):\n%s", diff)
	}
	if s := card.Actions[0].(*om.SubmitAction); s.Title != "Send" || s.AdditionalProperties["x-style"] != "positive" || s.Data.Exists() {
		t.Fatalf("submit: %+v", s)
	}
	if _, ok := card.Actions[1].(*om.UnknownAction); !ok {
		t.Fatalf("unregistered action: %T", card.Actions[1])
	}

	for _, want := range []struct{ code, path string }{
		{cardschema.CodeDiscriminatorUnknown, "/actions/1/type"},
		{cardschema.CodeRequired, "/actions/2/url"},
	} {
		if !iss.Has(want.code, want.path) {
			t.Fatalf("missing %s at %s in %v", want.code, want.path, iss)
		}
	}
}

func TestActions_Resources(t *testing.T) {
	card := om.CardSchema.Deserialize(value.MustParse(interactiveCard), om.DefaultAdaptiveCard())
	want := []om.RemoteResourceInformation{
		{URL: "https://img/face.png", MimeType: "image/png"},
		{URL: "https://img/open.svg", MimeType: "image/svg+xml"},
		{URL: "https://img/send.png", MimeType: "image/png"},
		{URL: "https://img/more.gif", MimeType: "image/gif"},
	}
	if diff := cmp.Diff(want, card.Resources()); diff != "" {
		t.Fatalf("resources (-want +got):\n%s", diff)
	}
}

func TestActions_Roundtrip(t *testing.T) {
	card := om.CardSchema.Deserialize(value.MustParse(interactiveCard), om.DefaultAdaptiveCard())
	out := om.CardSchema.Serialize(card)

	if got := out.Field("actions").Index(1).Field("card"); !value.Equal(got, value.MustParse(`{"type":"AdaptiveCard"}`)) {
		t.Fatalf("unknown action not preserved: %v", out.Field("actions").Index(1))
	}
	if got, _ := out.Field("body").Index(0).Field("style").AsString(); got != "Person" {
		t.Fatalf("image style: %q", got)
	}

	again := om.CardSchema.Deserialize(out, om.DefaultAdaptiveCard())
	opts := cmp.Options{
		cmp.Comparer(func(a, b value.Node) bool { return value.Equal(a, b) }),
	}
	if diff := cmp.Diff(card, again, opts); diff != "" {
		t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestActions_SelectActionFallsBackToDefault(t *testing.T) {
	def := om.Image{BaseElement: om.DefaultBaseElement(), SelectAction: &om.OpenURLAction{URL: "https://d/home"}}
	schema := om.DefaultRegistration.Elements()

	for name, in := range map[string]string{
		"not an object": `{"type":"Image","url":"u","selectAction":"go"}`,
		"no type":       `{"type":"Image","url":"u","selectAction":{"url":"x"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			var iss cardschema.Issues
			el, ok := schema.Deserialize(value.MustParse(in), cardschema.DecodeOpt{OnIssue: func(it cardschema.Issue) { iss = append(iss, it) }})
			if !ok {
				t.Fatal("image not dispatched")
			}
			if len(iss) == 0 {
				t.Fatal("expected an issue")
			}
			if el.(*om.Image).SelectAction != nil {
				t.Fatalf("element default has no action: %#v", el.(*om.Image).SelectAction)
			}
		})
	}

	got := om.CardSchema.Deserialize(value.MustParse(`{"version":"1.5"}`), om.AdaptiveCard{Body: []om.Element{&def}})
	copied := got.Body[0].(*om.Image).SelectAction.(*om.OpenURLAction)
	copied.URL = "changed"
	if def.SelectAction.(*om.OpenURLAction).URL != "https://d/home" {
		t.Fatal("result shares the default's action")
	}
}

type showCard struct {
	om.ActionBase
	Card value.Node
}

func (*showCard) ActionType() string { return "Action.ShowCard" }

func TestRegisterAction_CustomType(t *testing.T) {
	reg := om.NewElementParserRegistration()
	b := dsl.ObjectOf[showCard]("ShowCardAction")
	b.Field("title", dsl.StringOf(func(s *showCard) *string { return &s.Title }))
	b.Field("iconUrl", dsl.StringOf(func(s *showCard) *string { return &s.IconURL })).OmitEmpty()
	om.RegisterAction(reg, "Action.ShowCard", b.
		Field("card", dsl.NodeOf(func(s *showCard) *value.Node { return &s.Card })).
		MustBuild())

	if !reg.HasAction("Action.ShowCard") || om.DefaultRegistration.HasAction("Action.ShowCard") {
		t.Fatal("registration leaked between registries")
	}

	card := reg.Card().Deserialize(value.MustParse(interactiveCard), om.DefaultAdaptiveCard())
	sc, ok := card.Actions[1].(*showCard)
	if !ok || sc.Title != "More" || !sc.Card.IsObject() {
		t.Fatalf("custom action: %#v", card.Actions[1])
	}
	if got, _ := reg.Card().Serialize(card).Field("actions").Index(1).Field("type").AsString(); got != "Action.ShowCard" {
		t.Fatalf("custom action type: %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	om.RegisterAction(reg, "Action.Submit", dsl.ObjectOf[showCard]("Dup").MustBuild())
}

func TestSubmitAction_DataIsCopied(t *testing.T) {
	n := value.MustParse(`{"type":"Action.Submit","data":{"k":[1]}}`)
	a, ok := om.DefaultRegistration.Actions().Deserialize(n)
	if !ok {
		t.Fatal("not dispatched")
	}
	m := n.Field("data").Interface().(map[string]any)
	m["k"] = "mutated"
	if !value.Equal(a.(*om.SubmitAction).Data, value.MustParse(`{"k":[1]}`)) {
		t.Fatalf("data shares the input: %v", a.(*om.SubmitAction).Data)
	}
}

func TestInputs_Decode(t *testing.T) {
	card, iss := cardschema.DeserializeCollect[om.AdaptiveCard](om.CardSchema, value.MustParse(`{"body":[
		{"type":"Input.Date","id":"due","label":"Due date","value":"2024-03-09","min":"2024-01-01","max":"2024-12-31","isRequired":true},
		{"type":"Input.ChoiceSet","id":"color","label":"Color","style":"expanded","isMultiSelect":true,"value":"red, blue,teal",
		 "choices":[{"title":"Red","value":"red"},{"title":"Green","value":"green"},{"title":"Blue","value":"blue"},{"title":"broken"}]}
	]}`), om.DefaultAdaptiveCard())

	date := card.Body[0].(*om.DateInput)
	if date.Label != "Due date" || !date.IsRequired || !date.IsVisible {
		t.Fatalf("date input: %+v", date)
	}
	d, ok := date.Date()
	if !ok || !d.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)) || !date.InRange(d) {
		t.Fatalf("date: %v %v", d, ok)
	}
	if date.InRange(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("after max must be out of range")
	}
	if _, ok := (&om.DateInput{Value: "09/03/2024"}).Date(); ok {
		t.Fatal("malformed date accepted")
	}

	set := card.Body[1].(*om.ChoiceSetInput)
	if set.Label != "Color" || set.Style.Value() != om.ChoiceInputStyleExpanded || len(set.Choices) != 4 {
		t.Fatalf("choice set: %+v", set)
	}
	if diff := cmp.Diff([]om.Choice{{Title: "Red", Value: "red"}, {Title: "Blue", Value: "blue"}}, set.Selected()); diff != "" {
		t.Fatalf("selected (-want +got):\n%s", diff)
	}
	set.IsMultiSelect = false
	if got := set.Selected(); len(got) != 1 || got[0].Value != "red" {
		t.Fatalf("single select: %+v", got)
	}
	if !iss.Has(cardschema.CodeRequired, "/body/1/choices/3/value") {
		t.Fatalf("issues: %v", iss)
	}
	if len(card.Resources()) != 0 {
		t.Fatalf("inputs reference no resources: %v", card.Resources())
	}
}

func TestUnknownElement_SerializesEdits(t *testing.T) {
	card, _ := decodeSample(t)
	u := card.Body[3].(*om.UnknownElement)

	untouched := om.CardSchema.Serialize(card).Field("body").Index(3)
	if !value.Equal(untouched, u.Raw) {
		t.Fatalf("unedited element must be written back as is: %v", untouched)
	}

	u.ID = "c2"
	u.IsVisible = false
	u.Separator = true
	edited := om.CardSchema.Serialize(card).Field("body").Index(3)
	want := value.MustParse(`{"type":"Carousel","id":"c2","isVisible":false,"separator":true,"pages":[1,2]}`)
	if !value.Equal(edited, want) {
		t.Fatalf("got %v", edited)
	}
	if id, _ := u.Raw.Field("id").AsString(); id != "c1" {
		t.Fatal("serialization modified Raw")
	}

	u.ID = ""
	if om.CardSchema.Serialize(card).Field("body").Index(3).Field("id").Exists() {
		t.Fatal("cleared id must be removed")
	}
}

func TestCard_RoundtripOmittedStrings(t *testing.T) {
	card := om.DefaultAdaptiveCard()
	out := om.CardSchema.Serialize(card)
	for _, name := range []string{"fallbackText", "lang", "backgroundImage"} {
		if out.Field(name).Exists() {
			t.Fatalf("empty %s must be omitted", name)
		}
	}

	if again := om.CardSchema.Deserialize(out, om.DefaultAdaptiveCard()); again.Lang != "" || again.FallbackText != "" {
		t.Fatalf("against the zero default: %+v", again)
	}

	def := om.DefaultAdaptiveCard()
	def.Lang = "en"
	if again := om.CardSchema.Deserialize(out, def); again.Lang != "en" {
		t.Fatalf("omitted member takes the caller default: %q", again.Lang)
	}
}
