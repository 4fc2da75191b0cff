package main

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	cardschema "github.com/reoring/cardschema"
	"github.com/reoring/cardschema/codec"
	js "github.com/reoring/cardschema/jsonschema"
	om "github.com/reoring/cardschema/objectmodel"
)

// docType erases the Go type of a schema so commands can pick one by name.
type docType interface {
	normalize(r normalizeRequest, log *logrus.Entry) ([]byte, error)
	jsonSchema() (*js.Schema, error)
}

type normalizeRequest struct {
	input          []byte
	in             codec.Options
	defaults       []byte
	defaultsFormat codec.Format
	out            codec.Options
	preserve       bool
}

type schemaEntry[T any] struct {
	schema cardschema.Schema[T]
}

func (e schemaEntry[T]) normalize(r normalizeRequest, log *logrus.Entry) ([]byte, error) {
	def := e.schema.Base()
	if r.defaults != nil {
		d, iss, err := codec.New(e.schema, codec.Options{Format: r.defaultsFormat}).Decode(r.defaults, def)
		if err != nil {
			return nil, errors.Wrap(err, "defaults")
		}
		logIssues(log.WithField("source", "defaults"), iss)
		def = d
	}
	dec := codec.New(e.schema, r.in)
	enc := codec.New(e.schema, r.out)
	if r.preserve {
		d, iss, err := dec.DecodeWithMeta(r.input, def)
		if err != nil {
			return nil, err
		}
		logIssues(log, iss)
		return enc.EncodePreserving(d)
	}
	v, iss, err := dec.Decode(r.input, def)
	if err != nil {
		return nil, err
	}
	logIssues(log, iss)
	return enc.Encode(v)
}

func (e schemaEntry[T]) jsonSchema() (*js.Schema, error) { return e.schema.JSONSchema() }

var docTypes = map[string]docType{
	"fontSizes":   schemaEntry[om.FontSizesConfig]{om.FontSizesSchema},
	"fontWeights": schemaEntry[om.FontWeightsConfig]{om.FontWeightsSchema},
	"fontType":    schemaEntry[om.FontTypeDefinition]{om.FontTypeDefinitionSchema},
	"fontTypes":   schemaEntry[om.FontTypesDefinition]{om.FontTypesSchema},
	"hostConfig":  schemaEntry[om.HostConfig]{om.HostConfigSchema},
	"mediaSource": schemaEntry[om.MediaSource]{om.MediaSourceSchema},
	"card":        schemaEntry[om.AdaptiveCard]{om.CardSchema},
}

func typeNames() []string {
	out := make([]string, 0, len(docTypes))
	for k := range docTypes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func lookupType(name string) (docType, error) {
	t, ok := docTypes[name]
	if !ok {
		return nil, errors.Errorf("unknown type %q", name)
	}
	return t, nil
}

// logIssues reports recovered decode faults as warnings.
func logIssues(log *logrus.Entry, iss cardschema.Issues) {
	for _, it := range iss {
		log.WithFields(logrus.Fields{"path": it.Path, "code": it.Code}).Warn(it.Message)
	}
}
