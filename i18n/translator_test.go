package i18n

import (
	"strings"
	"testing"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg != "invalid type" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == "invalid type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Details(t *testing.T) {
	cases := []struct {
		code string
		data map[string]string
		want string
	}{
		{"invalid_type", map[string]string{"expected": "uint"}, "invalid type (expected: uint)"},
		{"invalid_enum", map[string]string{"expected": "Top, Center, Bottom"}, "unrecognized enum value (expected one of: Top, Center, Bottom)"},
		{"discriminator_unknown", map[string]string{"tag": "Carousel"}, "unknown element type (type: Carousel)"},
		{"required", map[string]string{"expected": "ignored"}, "required property missing"},
		{"no_such_code", nil, "no_such_code"},
	}
	for _, tc := range cases {
		if got := T(tc.code, tc.data); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.code, got, tc.want)
		}
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return strings.ToUpper(code) }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(upper{})
	if got := T("required", nil); got != "REQUIRED" {
		t.Fatalf("custom translator not used: %q", got)
	}
	SetTranslator(nil)
	if got := T("required", nil); got != "required property missing" {
		t.Fatalf("nil should restore default: %q", got)
	}
}
