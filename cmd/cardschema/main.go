package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage")

// cli carries the process streams so commands can run under test.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	log    *logrus.Logger
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	c := &cli{stdin: os.Stdin, stdout: os.Stdout, log: log}
	if err := c.run(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			usage(os.Stderr)
			os.Exit(2)
		}
		log.WithError(err).Error("cardschema failed")
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, `cardschema

Usage:
  cardschema normalize [-type T] [-defaults file] [-path gjsonPath] [-format json|yaml] [-out json|yaml] [-preserve] [file]
  cardschema resources [-unique] [-j N] [-host hostconfig] files...
  cardschema jsonschema [-type T]

Types: %s

Common flags:
  -env file        environment file with CARDSCHEMA_* defaults (default .env)
  -log-level lvl   debug, info, warn or error (default CARDSCHEMA_LOG_LEVEL, else info)
`, strings.Join(typeNames(), ", "))
}

func (c *cli) run(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "normalize":
		return c.normalize(args[1:])
	case "resources":
		return c.resources(args[1:])
	case "jsonschema":
		return c.jsonSchema(args[1:])
	case "help", "-h", "--help":
		usage(c.stdout)
		return nil
	}
	return errors.Wrapf(errUsage, "unknown command %q", args[0])
}

// globalFlags are accepted by every command.
type globalFlags struct {
	env      string
	logLevel string
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.env, "env", ".env", "environment file with CARDSCHEMA_* defaults")
	fs.StringVar(&g.logLevel, "log-level", "", "log level; overrides CARDSCHEMA_LOG_LEVEL")
}

// apply loads the env file and configures the logger. A missing env file is
// not an error.
func (g *globalFlags) apply(log *logrus.Logger) error {
	var envErr error
	if g.env != "" {
		envErr = godotenv.Load(g.env)
	}
	lvl := g.logLevel
	if lvl == "" {
		lvl = os.Getenv("CARDSCHEMA_LOG_LEVEL")
	}
	if lvl == "" {
		lvl = "info"
	}
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log.SetLevel(level)
	if envErr != nil {
		log.WithField("file", g.env).Debugf("env file not loaded: %v", envErr)
	}
	return nil
}

func newFlagSet(name string, g *globalFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	g.register(fs)
	return fs
}
