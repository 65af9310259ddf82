// Command gqlskema compiles GraphQL SDL into runtime descriptors and uses
// them to inspect schemas, export JSON Schema and validate JSON instances.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/reoring/gqlskema/config"
	"github.com/reoring/gqlskema/graphql"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// cli holds flags shared by every subcommand.
type cli struct {
	configPath string
	logLevel   string
	stderr     io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{logLevel: "warn", stderr: stderr}

	root := &cobra.Command{
		Use:   "gqlskema",
		Short: "Compile GraphQL schemas into runtime-checked types",
		Long: `gqlskema compiles GraphQL type definitions into runtime descriptors.

Identifier fields can be chosen per type with a YAML or JSON config file:

  types:
    Test:
      identifier: bar
    Audit:
      identifier: null`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a YAML or JSON config file")
	root.PersistentFlags().StringVar(&c.logLevel, "log.level", c.logLevel, "Log level. Supported values: debug, info, warn, error")

	root.AddCommand(
		compileCommand(c),
		schemaCommand(c),
		validateCommand(c),
	)
	return root
}

func (c *cli) logger() (log.Logger, error) {
	var opt level.Option
	switch strings.ToLower(c.logLevel) {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, fmt.Errorf("unsupported log level %q", c.logLevel)
	}
	l := log.NewLogfmtLogger(log.NewSyncWriter(c.stderr))
	return level.NewFilter(l, opt), nil
}

// compile loads the config and compiles the schema at path. Warnings are
// logged at warn level.
func (c *cli) compile(path string) (graphql.Types, error) {
	logger, err := c.logger()
	if err != nil {
		return nil, err
	}
	cfg := config.New()
	if c.configPath != "" {
		if err := cfg.LoadFile(c.configPath); err != nil {
			return nil, err
		}
	}
	types, diag, err := graphql.CompileFile(path, cfg.Options(logger))
	if err != nil {
		return nil, err
	}
	for _, w := range diag.Warnings() {
		level.Warn(logger).Log("msg", "schema warning", "detail", w)
	}
	return types, nil
}
