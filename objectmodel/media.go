package objectmodel

import (
	"strings"

	"github.com/reoring/cardschema/dsl"
)

// MediaSource is one playable rendition of a Media element.
type MediaSource struct {
	// MimeType is inferred from the URL extension when the document omits it.
	MimeType string
	URL      string
}

// Normalize fills an empty MimeType from the URL extension.
func (s *MediaSource) Normalize() {
	if s.MimeType == "" {
		s.MimeType = InferMimeType(s.URL)
	}
}

// GetResourceInformation appends the source when it has a URL.
func (s *MediaSource) GetResourceInformation(acc *[]RemoteResourceInformation) {
	appendResource(acc, s.URL, s.MimeType)
}

var MediaSourceSchema = dsl.ObjectOf[MediaSource]("MediaSource").
	Field("mimeType", dsl.StringOf(func(s *MediaSource) *string { return &s.MimeType })).
	Field("url", dsl.StringOf(func(s *MediaSource) *string { return &s.URL })).Required().
	MustBuild()

// Media plays audio or video from one of its sources.
type Media struct {
	BaseElement
	Sources []MediaSource
	Poster  string
	AltText string
}

func (*Media) ElementType() string { return "Media" }

// Normalize drops sources whose URL is blank.
func (m *Media) Normalize() {
	kept := m.Sources[:0]
	for _, s := range m.Sources {
		if strings.TrimSpace(s.URL) != "" {
			kept = append(kept, s)
		}
	}
	m.Sources = kept
}

// GetResourceInformation appends every source, then the poster.
func (m *Media) GetResourceInformation(acc *[]RemoteResourceInformation) {
	for i := range m.Sources {
		m.Sources[i].GetResourceInformation(acc)
	}
	appendResource(acc, m.Poster, "")
}

func newMediaSchema() *dsl.ObjectSchema[Media] {
	b := dsl.ObjectOf[Media]("Media")
	baseFields(b, func(m *Media) *BaseElement { return &m.BaseElement })
	return b.
		Field("sources", dsl.ArrayOf(func(m *Media) *[]MediaSource { return &m.Sources }, MediaSourceSchema)).
		Field("poster", dsl.StringOf(func(m *Media) *string { return &m.Poster })).OmitEmpty().
		Field("altText", dsl.StringOf(func(m *Media) *string { return &m.AltText })).OmitEmpty().
		Base(func() Media { return Media{BaseElement: DefaultBaseElement()} }).
		MustBuild()
}
