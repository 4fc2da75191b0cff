package dsl_test

import (
	cardschema "github.com/reoring/cardschema"
	g "github.com/reoring/cardschema/dsl"
	"github.com/reoring/cardschema/value"
)

type align int

const (
	alignTop align = iota
	alignCenter
	alignBottom
)

var alignEnum = g.NewEnum("Align",
	g.EnumEntry[align]{Value: alignTop, Name: "Top"},
	g.EnumEntry[align]{Value: alignCenter, Name: "Center", Aliases: []string{"Middle"}},
	g.EnumEntry[align]{Value: alignBottom, Name: "Bottom"},
)

type sizes struct {
	Small   uint
	Default uint
}

type tag struct {
	Name   string
	Weight int
}

type font struct {
	Family string
	Sizes  sizes
	Align  cardschema.Optional[align]
	Tags   []tag
	Extra  map[string]any
}

var sizesSchema = g.ObjectOf[sizes]("Sizes").
	Field("small", g.UintOf(func(s *sizes) *uint { return &s.Small })).
	Field("default", g.UintOf(func(s *sizes) *uint { return &s.Default })).
	Base(func() sizes { return sizes{Small: 12, Default: 14} }).
	UnknownReport().
	MustBuild()

var tagSchema = g.ObjectOf[tag]("Tag").
	Field("name", g.StringOf(func(t *tag) *string { return &t.Name })).Required().
	Field("weight", g.IntOf(func(t *tag) *int { return &t.Weight })).
	MustBuild()

var fontSchema = g.ObjectOf[font]("Font").
	Field("family", g.StringOf(func(f *font) *string { return &f.Family })).
	Field("sizes", g.NestedOf(func(f *font) *sizes { return &f.Sizes }, sizesSchema)).
	Field("align", g.OptionalEnumOf(func(f *font) *cardschema.Optional[align] { return &f.Align }, alignEnum)).
	Field("tags", g.ArrayOf(func(f *font) *[]tag { return &f.Tags }, tagSchema)).OmitEmpty().
	UnknownPassthrough(func(f *font) *map[string]any { return &f.Extra }).
	MustBuild()

func defaultFont() font {
	return font{
		Family: "Segoe",
		Sizes:  sizes{Small: 12, Default: 14},
		Align:  cardschema.Some(alignCenter),
		Tags:   []tag{{Name: "a", Weight: 1}},
	}
}

// node is a small polymorphic hierarchy: leaves, groups of nodes and
// preserved unknown nodes.
type node interface{ kind() string }

type leaf struct{ Text string }

func (*leaf) kind() string { return "Leaf" }

type group struct{ Items []node }

func (*group) kind() string { return "Group" }

type opaque struct {
	Tag string
	Raw value.Node
}

func (o *opaque) kind() string { return o.Tag }

func newNodeUnion() (*g.Union[node], *g.ObjectSchema[group]) {
	nodes := g.UnionOf[node]("Node", "type")
	leafS := g.ObjectOf[leaf]("Leaf").
		Field("text", g.StringOf(func(l *leaf) *string { return &l.Text })).
		MustBuild()
	groupS := g.ObjectOf[group]("Group").
		Field("items", g.UnionArrayOf(func(gr *group) *[]node { return &gr.Items }, nodes)).
		MustBuild()
	g.Register(nodes, "Leaf", leafS)
	g.Register(nodes, "Group", groupS)
	nodes.Fallback(
		func(tag string, raw value.Node) node { return &opaque{Tag: tag, Raw: raw} },
		func(n node) (value.Node, bool) {
			o, ok := n.(*opaque)
			if !ok {
				return value.Absent(), false
			}
			return o.Raw, true
		},
	)
	return nodes, groupS
}

func mustJSON(n value.Node) string {
	b, err := n.MarshalJSON()
	if err != nil {
		panic(err)
	}
	return string(b)
}
