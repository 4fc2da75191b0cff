package objectmodel_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	cardschema "github.com/reoring/cardschema"
	om "github.com/reoring/cardschema/objectmodel"
	"github.com/reoring/cardschema/value"
)

func TestFontTypeDefinition_EmptyObjectKeepsDefault(t *testing.T) {
	def := om.DefaultFontTypeDefinition()
	def.FontFamily = "Default"

	got := om.FontTypeDefinitionSchema.Deserialize(value.MustParse(`{}`), def)
	if got.FontFamily != "Default" {
		t.Fatalf("fontFamily: got %q", got.FontFamily)
	}
	if diff := cmp.Diff(def, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFontTypeDefinition_FieldLevelFallback(t *testing.T) {
	def := om.DefaultFontTypeDefinition()
	def.FontSizes.Default = 15

	n := value.MustParse(`{"fontSizes":{"default":"not-a-number","small":10,"extraLarge":30}}`)
	got, iss := cardschema.DeserializeCollect[om.FontTypeDefinition](om.FontTypeDefinitionSchema, n, def)

	want := def
	want.FontSizes.Small = 10
	want.FontSizes.ExtraLarge = 30
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if len(iss) != 1 || !iss.Has(cardschema.CodeInvalidType, "/fontSizes/default") {
		t.Fatalf("issues: %v", iss)
	}
}

func TestFontSizes_Defaulting(t *testing.T) {
	def := om.FontSizesConfig{Small: 1, Default: 2, Medium: 3, Large: 4, ExtraLarge: 5}
	tests := []struct {
		name string
		in   string
		want om.FontSizesConfig
	}{
		{"absent roles", `{"medium":30}`, om.FontSizesConfig{Small: 1, Default: 2, Medium: 30, Large: 4, ExtraLarge: 5}},
		{"negative", `{"large":-1}`, def},
		{"fraction", `{"large":1.5}`, def},
		{"integral float", `{"large":16.0}`, om.FontSizesConfig{Small: 1, Default: 2, Medium: 3, Large: 16, ExtraLarge: 5}},
		{"null role", `{"small":null}`, def},
		{"not an object", `[1,2]`, def},
		{"wrong case key", `{"Small":99}`, def},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := om.FontSizesSchema.Deserialize(value.MustParse(tc.in), def)
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestFontSizes_RoleAccessors(t *testing.T) {
	c := om.DefaultFontSizes()
	for _, tc := range []struct {
		size om.TextSize
		want uint
	}{
		{om.TextSizeSmall, 12},
		{om.TextSizeDefault, 14},
		{om.TextSizeMedium, 17},
		{om.TextSizeLarge, 21},
		{om.TextSizeExtraLarge, 26},
		{om.TextSize(42), 14},
	} {
		if got := c.Size(tc.size); got != tc.want {
			t.Fatalf("Size(%v) = %d, want %d", tc.size, got, tc.want)
		}
	}
	c.SetSize(om.TextSizeLarge, 40)
	if c.Large != 40 {
		t.Fatalf("SetSize: %+v", c)
	}

	w := om.DefaultFontWeights()
	if w.Weight(om.TextWeightLighter) != 200 || w.Weight(om.TextWeightDefault) != 400 || w.Weight(om.TextWeightBolder) != 800 {
		t.Fatalf("weights: %+v", w)
	}
	w.SetWeight(om.TextWeightBolder, 900)
	if w.Bolder != 900 {
		t.Fatalf("SetWeight: %+v", w)
	}
}

func TestFontWeights_LegacyAliasNotAKey(t *testing.T) {
	// role names are member names, so only canonical spellings apply
	got := om.FontWeightsSchema.Deserialize(value.MustParse(`{"normal":500,"bolder":700}`), om.DefaultFontWeights())
	want := om.FontWeightsConfig{Lighter: 200, Default: 400, Bolder: 700}
	if got != want {
		t.Fatalf("got %+v", got)
	}
}

func TestFontTypes_RoundtripAndIdempotence(t *testing.T) {
	def := om.DefaultFontTypes()
	in := value.MustParse(`{"monospace":{"fontFamily":"Consolas","fontWeights":{"bolder":650}}}`)
	first := om.FontTypesSchema.Deserialize(in, def)
	if first.Monospace.FontFamily != "Consolas" || first.Monospace.FontWeights.Bolder != 650 {
		t.Fatalf("decode: %+v", first.Monospace)
	}
	if first.Default.FontFamily != "Segoe UI" {
		t.Fatalf("default entry changed: %+v", first.Default)
	}

	for _, d := range []om.FontTypesDefinition{def, {}} {
		again := om.FontTypesSchema.Deserialize(om.FontTypesSchema.Serialize(first), d)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestFontSizes_SerializeCanonical(t *testing.T) {
	b, err := om.FontSizesSchema.Serialize(om.DefaultFontSizes()).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"default":14,"extraLarge":26,"large":21,"medium":17,"small":12}`
	if string(b) != want {
		t.Fatalf("got %s", b)
	}
}
