package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/tidwall/gjson"
)

func newTestCLI(stdin string) (*cli, *bytes.Buffer, *test.Hook) {
	log, hook := test.NewNullLogger()
	var out bytes.Buffer
	return &cli{stdin: strings.NewReader(stdin), stdout: &out, log: log}, &out, hook
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNormalize_StdinWithIssues(t *testing.T) {
	c, out, hook := newTestCLI(`{"small":10,"large":"big"}`)
	if err := c.run([]string{"normalize", "-env", "", "-type", "fontSizes"}); err != nil {
		t.Fatal(err)
	}
	got := gjson.ParseBytes(out.Bytes())
	if got.Get("small").Int() != 10 || got.Get("large").Int() != 21 {
		t.Fatalf("output: %s", out.String())
	}
	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["path"] == "/large" && e.Data["code"] == "invalid_type" {
			warned = true
		}
	}
	if !warned {
		t.Fatalf("no warning logged: %v", hook.AllEntries())
	}
}

func TestNormalize_DefaultsPathPreserveYAML(t *testing.T) {
	dir := t.TempDir()
	defaults := writeFile(t, dir, "defaults.yaml", "fontFamily: Default\nfontSizes:\n  default: 15\n")
	host := writeFile(t, dir, "host.json", `{"fontTypes":{"monospace":{"fontWeights":{"bolder":650}}}}`)

	c, out, _ := newTestCLI("")
	err := c.run([]string{"normalize", "-env", "", "-type", "fontType", "-defaults", defaults, "-path", "fontTypes.monospace", host})
	if err != nil {
		t.Fatal(err)
	}
	got := gjson.ParseBytes(out.Bytes())
	if got.Get("fontFamily").String() != "Default" || got.Get("fontSizes.default").Int() != 15 || got.Get("fontWeights.bolder").Int() != 650 {
		t.Fatalf("output: %s", out.String())
	}

	c, out, _ = newTestCLI("")
	err = c.run([]string{"normalize", "-env", "", "-type", "fontType", "-path", "fontTypes.monospace", "-preserve", "-out", "yaml", host})
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "fontWeights:\n    bolder: 650\n" {
		t.Fatalf("preserving yaml: %q", out.String())
	}
}

func TestResources_ParallelOrderStable(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"type":"AdaptiveCard","backgroundImage":"bg.png","body":[
		{"type":"Image","url":"https://x/logo.png"},
		{"type":"Image","url":"https://x/logo.png"}
	]}`)
	b := writeFile(t, dir, "b.yaml", "type: AdaptiveCard\nbody:\n  - type: Media\n    sources:\n      - url: https://x/v.mp4\n")
	host := writeFile(t, dir, "host.json", `{"imageBaseUrl":"https://cdn.example/"}`)

	c, out, _ := newTestCLI("")
	if err := c.run([]string{"resources", "-env", "", "-unique", "-j", "2", "-host", host, a, b}); err != nil {
		t.Fatal(err)
	}
	var got []fileResources
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("%v: %s", err, out.String())
	}
	if len(got) != 2 || got[0].File != a || got[1].File != b {
		t.Fatalf("files: %+v", got)
	}
	if len(got[0].Resources) != 2 || got[0].Resources[0].URL != "https://cdn.example/bg.png" || got[0].Resources[1].URL != "https://x/logo.png" {
		t.Fatalf("a resources: %+v", got[0].Resources)
	}
	if len(got[1].Resources) != 1 || got[1].Resources[0].MimeType != "video/mp4" {
		t.Fatalf("b resources: %+v", got[1].Resources)
	}
}

func TestResources_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.json", `{"type":`)

	c, _, _ := newTestCLI("")
	if err := c.run([]string{"resources", "-env", ""}); !errors.Is(err, errUsage) {
		t.Fatalf("no files: %v", err)
	}
	err := c.run([]string{"resources", "-env", "", bad})
	if err == nil || !strings.Contains(err.Error(), "decode "+bad) {
		t.Fatalf("bad file: %v", err)
	}
}

func TestJSONSchema(t *testing.T) {
	c, out, _ := newTestCLI("")
	if err := c.run([]string{"jsonschema", "-env", "", "-type", "mediaSource"}); err != nil {
		t.Fatal(err)
	}
	got := gjson.ParseBytes(out.Bytes())
	if got.Get("title").String() != "MediaSource" || got.Get("required.0").String() != "url" {
		t.Fatalf("schema: %s", out.String())
	}

	c, out, _ = newTestCLI("")
	if err := c.run([]string{"jsonschema", "-env", "", "-type", "card"}); err != nil {
		t.Fatal(err)
	}
	if !gjson.GetBytes(out.Bytes(), `$defs.TextBlock`).Exists() {
		t.Fatalf("card schema lacks element defs: %s", out.String())
	}
}

func TestRun_UsageAndConfig(t *testing.T) {
	c, _, _ := newTestCLI("")
	if err := c.run(nil); !errors.Is(err, errUsage) {
		t.Fatalf("empty args: %v", err)
	}
	if err := c.run([]string{"frobnicate"}); !errors.Is(err, errUsage) {
		t.Fatalf("unknown command: %v", err)
	}
	if err := c.run([]string{"jsonschema", "-env", "", "-type", "nope"}); err == nil {
		t.Fatal("unknown type accepted")
	}
	if err := c.run([]string{"jsonschema", "-env", "", "-log-level", "loud"}); err == nil {
		t.Fatal("bad log level accepted")
	}
}

func TestGlobalFlags_EnvFile(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, "test.env", "CARDSCHEMA_LOG_LEVEL=debug\n")
	t.Setenv("CARDSCHEMA_LOG_LEVEL", "")
	os.Unsetenv("CARDSCHEMA_LOG_LEVEL")

	c, _, _ := newTestCLI("")
	if err := c.run([]string{"jsonschema", "-env", env, "-type", "fontSizes"}); err != nil {
		t.Fatal(err)
	}
	if c.log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level: %v", c.log.GetLevel())
	}
}

func TestJobLimit(t *testing.T) {
	t.Setenv("CARDSCHEMA_JOBS", "3")
	if n, err := jobLimit(0); err != nil || n != 3 {
		t.Fatalf("env: %d %v", n, err)
	}
	if n, err := jobLimit(5); err != nil || n != 5 {
		t.Fatalf("flag: %d %v", n, err)
	}
	t.Setenv("CARDSCHEMA_JOBS", "zero")
	if _, err := jobLimit(0); err == nil {
		t.Fatal("invalid env accepted")
	}
}
