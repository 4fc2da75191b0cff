package objectmodel

import (
	"strings"
	"time"

	cardschema "github.com/reoring/cardschema"
	"github.com/reoring/cardschema/dsl"
)

// InputFields holds the members every input element shares. The element's
// id names the input's value in a submission.
type InputFields struct {
	Label        string
	IsRequired   bool
	ErrorMessage string
	Placeholder  string
}

func inputFields[T any](b *dsl.ObjectBuilder[T], get func(*T) *InputFields) {
	b.Field("label", dsl.StringOf(func(t *T) *string { return &get(t).Label })).OmitEmpty()
	b.Field("isRequired", dsl.BoolOf(func(t *T) *bool { return &get(t).IsRequired })).OmitEmpty()
	b.Field("errorMessage", dsl.StringOf(func(t *T) *string { return &get(t).ErrorMessage })).OmitEmpty()
	b.Field("placeholder", dsl.StringOf(func(t *T) *string { return &get(t).Placeholder })).OmitEmpty()
}

// DateLayout is the wire form of Input.Date values.
const DateLayout = "2006-01-02"

// DateInput collects a calendar date. Value, Min and Max use DateLayout.
type DateInput struct {
	BaseElement
	InputFields
	Value string
	Min   string
	Max   string
}

func (*DateInput) ElementType() string                                 { return "Input.Date" }
func (*DateInput) GetResourceInformation(*[]RemoteResourceInformation) {}

// Date parses Value. ok is false when Value is empty or malformed.
func (d *DateInput) Date() (time.Time, bool) { return parseDate(d.Value) }

// InRange reports whether t lies within Min and Max. A bound that is empty
// or malformed does not restrict.
func (d *DateInput) InRange(t time.Time) bool {
	if lo, ok := parseDate(d.Min); ok && t.Before(lo) {
		return false
	}
	if hi, ok := parseDate(d.Max); ok && t.After(hi) {
		return false
	}
	return true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	return t, err == nil
}

func newDateInputSchema() *dsl.ObjectSchema[DateInput] {
	b := dsl.ObjectOf[DateInput]("DateInput")
	baseFields(b, func(d *DateInput) *BaseElement { return &d.BaseElement })
	inputFields(b, func(d *DateInput) *InputFields { return &d.InputFields })
	return b.
		Field("value", dsl.StringOf(func(d *DateInput) *string { return &d.Value })).OmitEmpty().
		Field("min", dsl.StringOf(func(d *DateInput) *string { return &d.Min })).OmitEmpty().
		Field("max", dsl.StringOf(func(d *DateInput) *string { return &d.Max })).OmitEmpty().
		Base(func() DateInput { return DateInput{BaseElement: DefaultBaseElement()} }).
		MustBuild()
}

// Choice is one option of a ChoiceSetInput.
type Choice struct {
	Title string
	Value string
}

var ChoiceSchema = dsl.ObjectOf[Choice]("Choice").
	Field("title", dsl.StringOf(func(c *Choice) *string { return &c.Title })).Required().
	Field("value", dsl.StringOf(func(c *Choice) *string { return &c.Value })).Required().
	MustBuild()

// ChoiceSetInput picks one or, with IsMultiSelect, several choices. Value
// holds the selected choice values separated by commas.
type ChoiceSetInput struct {
	BaseElement
	InputFields
	Choices       []Choice
	IsMultiSelect bool
	Style         cardschema.Optional[ChoiceInputStyle]
	Value         string
}

func (*ChoiceSetInput) ElementType() string                                 { return "Input.ChoiceSet" }
func (*ChoiceSetInput) GetResourceInformation(*[]RemoteResourceInformation) {}

// Selected returns the selected choices in the order of Choices. Values that
// match no choice are ignored; a single-select input yields at most one.
func (c *ChoiceSetInput) Selected() []Choice {
	if c.Value == "" {
		return nil
	}
	want := map[string]bool{}
	for _, v := range strings.Split(c.Value, ",") {
		want[strings.TrimSpace(v)] = true
	}
	var out []Choice
	for _, ch := range c.Choices {
		if want[ch.Value] {
			out = append(out, ch)
			if !c.IsMultiSelect {
				break
			}
		}
	}
	return out
}

func newChoiceSetSchema() *dsl.ObjectSchema[ChoiceSetInput] {
	b := dsl.ObjectOf[ChoiceSetInput]("ChoiceSetInput")
	baseFields(b, func(c *ChoiceSetInput) *BaseElement { return &c.BaseElement })
	inputFields(b, func(c *ChoiceSetInput) *InputFields { return &c.InputFields })
	return b.
		Field("choices", dsl.ArrayOf(func(c *ChoiceSetInput) *[]Choice { return &c.Choices }, ChoiceSchema)).
		Field("isMultiSelect", dsl.BoolOf(func(c *ChoiceSetInput) *bool { return &c.IsMultiSelect })).OmitEmpty().
		Field("style", dsl.OptionalEnumOf(func(c *ChoiceSetInput) *cardschema.Optional[ChoiceInputStyle] {
			return &c.Style
		}, ChoiceInputStyleEnum)).
		Field("value", dsl.StringOf(func(c *ChoiceSetInput) *string { return &c.Value })).OmitEmpty().
		Base(func() ChoiceSetInput { return ChoiceSetInput{BaseElement: DefaultBaseElement()} }).
		MustBuild()
}
