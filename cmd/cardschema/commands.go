package main

import (
	"context"
	"io"
	"os"
	"runtime"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/cardschema/codec"
	om "github.com/reoring/cardschema/objectmodel"
)

func (c *cli) normalize(args []string) error {
	var g globalFlags
	fs := newFlagSet("normalize", &g)
	typeName := fs.String("type", "card", "document type")
	defaults := fs.String("defaults", "", "file holding the default value (JSON or YAML)")
	path := fs.String("path", "", "gjson path selecting the sub-document to decode")
	format := fs.String("format", "", "input format json|yaml (default: file extension, then CARDSCHEMA_FORMAT)")
	out := fs.String("out", "json", "output format json|yaml")
	preserve := fs.Bool("preserve", false, "omit members that were only filled from defaults")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := g.apply(c.log); err != nil {
		return err
	}
	dt, err := lookupType(*typeName)
	if err != nil {
		return err
	}

	name := fs.Arg(0)
	input, err := c.readInput(name)
	if err != nil {
		return err
	}
	inFormat, err := inputFormat(*format, name)
	if err != nil {
		return err
	}
	outFormat, err := codec.ParseFormat(*out)
	if err != nil {
		return err
	}
	req := normalizeRequest{
		input:    input,
		in:       codec.Options{Format: inFormat, Path: *path},
		out:      codec.Options{Format: outFormat, Indent: "  "},
		preserve: *preserve,
	}
	if *defaults != "" {
		if req.defaults, err = os.ReadFile(*defaults); err != nil {
			return errors.Wrap(err, "read defaults")
		}
		req.defaultsFormat = codec.FormatFromPath(*defaults)
	}

	log := c.log.WithFields(logrus.Fields{"type": *typeName, "input": displayName(name)})
	b, err := dt.normalize(req, log)
	if err != nil {
		return errors.Wrapf(err, "normalize %s", displayName(name))
	}
	log.Debug("normalized")
	return c.write(b)
}

// fileResources is one entry of the resources command output.
type fileResources struct {
	File      string                         `json:"file"`
	Resources []om.RemoteResourceInformation `json:"resources"`
}

func (c *cli) resources(args []string) error {
	var g globalFlags
	fs := newFlagSet("resources", &g)
	unique := fs.Bool("unique", false, "drop repeated URLs within a file")
	jobs := fs.Int("j", 0, "files processed in parallel (default CARDSCHEMA_JOBS, else GOMAXPROCS)")
	hostFile := fs.String("host", "", "host config; relative URLs resolve against its imageBaseUrl (default CARDSCHEMA_HOST_CONFIG)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := g.apply(c.log); err != nil {
		return err
	}
	files := fs.Args()
	if len(files) == 0 {
		return errors.Wrap(errUsage, "resources: no input files")
	}

	host, err := c.loadHostConfig(firstNonEmpty(*hostFile, os.Getenv("CARDSCHEMA_HOST_CONFIG")))
	if err != nil {
		return err
	}
	limit, err := jobLimit(*jobs)
	if err != nil {
		return err
	}

	results := make([]fileResources, len(files))
	grp, ctx := errgroup.WithContext(context.Background())
	grp.SetLimit(limit)
	for i, f := range files {
		i, f := i, f
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			refs, err := c.cardResources(f, host)
			if err != nil {
				return err
			}
			if *unique {
				refs = om.UniqueResources(refs)
			}
			results[i] = fileResources{File: f, Resources: refs}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}
	c.log.WithField("files", len(files)).Debug("resources extracted")

	b, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	return c.write(b)
}

func (c *cli) cardResources(file string, host om.HostConfig) ([]om.RemoteResourceInformation, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", file)
	}
	card, iss, err := codec.New[om.AdaptiveCard](om.CardSchema, codec.Options{Format: codec.FormatFromPath(file)}).
		Decode(data, om.DefaultAdaptiveCard())
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", file)
	}
	logIssues(c.log.WithField("input", file), iss)
	refs := card.Resources()
	if refs == nil {
		refs = []om.RemoteResourceInformation{}
	}
	return om.ResolveResources(refs, host), nil
}

func (c *cli) loadHostConfig(file string) (om.HostConfig, error) {
	host := om.DefaultHostConfig()
	if file == "" {
		return host, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return host, errors.Wrap(err, "read host config")
	}
	host, iss, err := codec.New[om.HostConfig](om.HostConfigSchema, codec.Options{Format: codec.FormatFromPath(file)}).Decode(data, host)
	if err != nil {
		return host, errors.Wrapf(err, "decode host config %s", file)
	}
	logIssues(c.log.WithField("input", file), iss)
	return host, nil
}

func (c *cli) jsonSchema(args []string) error {
	var g globalFlags
	fs := newFlagSet("jsonschema", &g)
	typeName := fs.String("type", "card", "document type")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := g.apply(c.log); err != nil {
		return err
	}
	dt, err := lookupType(*typeName)
	if err != nil {
		return err
	}
	s, err := dt.jsonSchema()
	if err != nil {
		return errors.Wrapf(err, "export %s", *typeName)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode schema")
	}
	return c.write(b)
}

func (c *cli) readInput(name string) ([]byte, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(c.stdin)
		return b, errors.Wrap(err, "read stdin")
	}
	b, err := os.ReadFile(name)
	return b, errors.Wrapf(err, "read %s", name)
}

func (c *cli) write(b []byte) error {
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	_, err := c.stdout.Write(b)
	return errors.Wrap(err, "write output")
}

func inputFormat(flagValue, name string) (codec.Format, error) {
	if flagValue != "" {
		return codec.ParseFormat(flagValue)
	}
	if name != "" && name != "-" {
		return codec.FormatFromPath(name), nil
	}
	if env := os.Getenv("CARDSCHEMA_FORMAT"); env != "" {
		return codec.ParseFormat(env)
	}
	return codec.JSON, nil
}

func jobLimit(flagValue int) (int, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	if env := os.Getenv("CARDSCHEMA_JOBS"); env != "" {
		n, err := strconv.Atoi(env)
		if err != nil || n <= 0 {
			return 0, errors.Errorf("CARDSCHEMA_JOBS: invalid value %q", env)
		}
		return n, nil
	}
	return runtime.GOMAXPROCS(0), nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
