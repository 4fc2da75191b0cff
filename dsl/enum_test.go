package dsl_test

import (
	"reflect"
	"testing"

	cardschema "github.com/reoring/cardschema"
	g "github.com/reoring/cardschema/dsl"
	"github.com/reoring/cardschema/value"
)

func TestEnum_ParseAndName(t *testing.T) {
	cases := []struct {
		in   string
		want align
		ok   bool
	}{
		{"Top", alignTop, true},
		{"TOP", alignTop, true},
		{"center", alignCenter, true},
		{"middle", alignCenter, true},
		{"Bottom", alignBottom, true},
		{"", 0, false},
		{"Diagonal", 0, false},
	}
	for _, tc := range cases {
		got, ok := alignEnum.Parse(tc.in)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("%q: got %v,%v", tc.in, got, ok)
		}
	}
	if n, _ := alignEnum.Name(alignCenter); n != "Center" {
		t.Fatalf("canonical name: %q", n)
	}
	if s := alignEnum.String(align(7)); s != "Align(7)" {
		t.Fatalf("unknown value string: %q", s)
	}
	if !reflect.DeepEqual(alignEnum.Names(), []string{"Top", "Center", "Bottom"}) {
		t.Fatalf("names: %v", alignEnum.Names())
	}
}

func TestEnum_ScalarCodes(t *testing.T) {
	if _, code := alignEnum.Decode(value.Of(1)); code != cardschema.CodeInvalidType {
		t.Fatalf("number: %q", code)
	}
	if _, code := alignEnum.Decode(value.Of("left")); code != cardschema.CodeInvalidEnum {
		t.Fatalf("unknown name: %q", code)
	}
	if _, ok := alignEnum.Encode(align(9)); ok {
		t.Fatalf("out-of-table value must not encode")
	}
}

func TestEnum_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	g.NewEnum("Bad",
		g.EnumEntry[int]{Value: 0, Name: "A"},
		g.EnumEntry[int]{Value: 1, Name: "a"},
	)
}
