// Package cli implements the circuits command-line interface.
//
// The CLI reads junction points ("x,y,z" per line) from a file or stdin and
// answers two questions about connecting them shortest-first:
//   - bottleneck: which connection finally joins every junction into one circuit
//   - connect:    how large the circuits are after a fixed number of connections
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed to commands through context.Context.
//
// # Configuration
//
// --config (-c) names a TOML file (see Config). Flags set on the command line
// take precedence over values from the file.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/circuits/junction"
)

const appName = "circuits"

// version is overridden at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds state shared by all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        Config
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Circuits connects 3D junction boxes shortest-first",
		Long:          `Circuits reads junction box positions and connects them in order of increasing distance, reporting the connection that joins everything into one circuit or the circuit sizes after a fixed number of connections.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))

			cfg, unknown, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			for _, key := range unknown {
				c.Logger.Warn("Ignoring unknown config key", "key", key, "file", c.configPath)
			}
			c.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(c.bottleneckCommand())
	root.AddCommand(c.connectCommand())

	return root
}

// readPoints parses points from the file named by args[0], the configured input,
// or the command's stdin, in that order of preference.
func (c *CLI) readPoints(cmd *cobra.Command, args []string) ([]junction.Point, error) {
	logger := loggerFromContext(cmd.Context())

	path := c.cfg.Input
	if len(args) > 0 {
		path = args[0]
	}

	var (
		src  io.Reader
		name = path
	)
	if path == "" || path == "-" {
		src, name = cmd.InOrStdin(), "stdin"
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	}

	logger.Debug("Reading junctions", "source", name)
	points, err := parseContext(cmd.Context(), src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	logger.Debug("Parsed junctions", "count", len(points))

	return points, nil
}

type parseResult struct {
	points []junction.Point
	err    error
}

// parseContext runs junction.Parse on src and gives up when ctx is done.
// A read blocked on an open terminal cannot be interrupted, so the parsing
// goroutine is abandoned in that case; it exits once src returns.
func parseContext(ctx context.Context, src io.Reader) ([]junction.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	done := make(chan parseResult, 1)
	go func() {
		points, err := junction.Parse(src)
		done <- parseResult{points: points, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.points, res.err
	}
}
