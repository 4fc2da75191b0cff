package dsl_test

import (
	"reflect"
	"testing"

	cardschema "github.com/reoring/cardschema"
	g "github.com/reoring/cardschema/dsl"
	"github.com/reoring/cardschema/value"
)

func TestUnion_DispatchAndPreserve(t *testing.T) {
	_, groupS := newNodeUnion()
	in := value.MustParse(`{"items":[
		{"type":"Leaf","text":"a"},
		{"type":"Group","items":[{"type":"Leaf","text":"b"}]},
		{"type":"Carousel","pages":[1]},
		{"text":"no type"},
		7
	]}`)
	got, iss := cardschema.DeserializeCollect[group](groupS, in, group{})

	if len(got.Items) != 3 {
		t.Fatalf("want 3 items, got %d: %#v", len(got.Items), got.Items)
	}
	if l, ok := got.Items[0].(*leaf); !ok || l.Text != "a" {
		t.Fatalf("items[0]: %#v", got.Items[0])
	}
	gr, ok := got.Items[1].(*group)
	if !ok || len(gr.Items) != 1 || gr.Items[0].(*leaf).Text != "b" {
		t.Fatalf("items[1]: %#v", got.Items[1])
	}
	op, ok := got.Items[2].(*opaque)
	if !ok || op.Tag != "Carousel" || !value.Equal(op.Raw, value.MustParse(`{"type":"Carousel","pages":[1]}`)) {
		t.Fatalf("items[2]: %#v", got.Items[2])
	}

	for _, want := range []struct{ code, path string }{
		{cardschema.CodeDiscriminatorUnknown, "/items/2/type"},
		{cardschema.CodeDiscriminatorMissing, "/items/3/type"},
		{cardschema.CodeDroppedElement, "/items/4"},
	} {
		if !iss.Has(want.code, want.path) {
			t.Fatalf("want %s at %s, got %v", want.code, want.path, iss)
		}
	}

	out := mustJSON(groupS.Serialize(got))
	want := `{"items":[{"text":"a","type":"Leaf"},{"items":[{"text":"b","type":"Leaf"}],"type":"Group"},{"pages":[1],"type":"Carousel"}]}`
	if out != want {
		t.Fatalf("serialize:\n got %s\nwant %s", out, want)
	}
}

func TestUnion_DefaultElementsAreCloned(t *testing.T) {
	_, groupS := newNodeUnion()
	def := group{Items: []node{
		&leaf{Text: "x"},
		&opaque{Tag: "Z", Raw: value.MustParse(`{"type":"Z","k":[1]}`)},
	}}
	got := groupS.Deserialize(value.Absent(), def)
	if len(got.Items) != 2 {
		t.Fatalf("want 2 items, got %#v", got.Items)
	}
	if got.Items[0] == def.Items[0] || got.Items[1] == def.Items[1] {
		t.Fatalf("elements must be copies, not shared pointers")
	}
	got.Items[0].(*leaf).Text = "mutated"
	if def.Items[0].(*leaf).Text != "x" {
		t.Fatalf("default mutated through the result")
	}
	if op := got.Items[1].(*opaque); op.Tag != "Z" || !value.Equal(op.Raw, def.Items[1].(*opaque).Raw) {
		t.Fatalf("opaque clone: %#v", op)
	}
}

func TestUnion_SingleElementAPI(t *testing.T) {
	nodes, _ := newNodeUnion()
	if !reflect.DeepEqual(nodes.Tags(), []string{"Leaf", "Group"}) {
		t.Fatalf("tags: %v", nodes.Tags())
	}
	e, ok := nodes.Deserialize(value.MustParse(`{"type":"Leaf","text":"z"}`))
	if !ok || e.(*leaf).Text != "z" {
		t.Fatalf("single decode: %#v %v", e, ok)
	}
	if _, ok := nodes.Deserialize(value.MustParse(`{"text":"z"}`)); ok {
		t.Fatalf("missing discriminator must not dispatch")
	}
	n, ok := nodes.Serialize(&leaf{Text: "q"})
	if !ok || mustJSON(n) != `{"text":"q","type":"Leaf"}` {
		t.Fatalf("single encode: %v %v", n, ok)
	}
	if _, ok := nodes.Serialize(stray{}); ok {
		t.Fatalf("unregistered type must not serialize")
	}
}

type stray struct{}

func (stray) kind() string { return "stray" }

type notNode struct{}

func TestUnion_RegisterPanics(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		fn()
	}
	nodes, _ := newNodeUnion()
	expectPanic("not implementing", func() {
		g.Register(nodes, "X", g.ObjectOf[notNode]("NotNode").MustBuild())
	})
	expectPanic("duplicate tag", func() {
		g.Register(nodes, "Leaf", g.ObjectOf[leaf]("Leaf2").MustBuild())
	})
}
