// Package cli implements the diagraft command-line interface.
//
// This package provides commands for regenerating the relation SVG
// fragment inside the documentation page, validating the diagram model
// without writing, watching the model for changes, and previewing the
// result locally. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render relation paths and splice them into the target page
//   - validate: Run every check of a generation pass without writing
//   - watch: Regenerate whenever the model file changes
//   - preview: Serve the target page over local HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go
// to stderr; the success summary is the only line written to stdout.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/diagraft/diagraft/pkg/buildinfo"
	"github.com/diagraft/diagraft/pkg/config"
	"github.com/diagraft/diagraft/pkg/errors"
)

// appName is the application name used for display and completions.
const appName = "diagraft"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Diagraft renders diagram relation paths into a static page",
		Long:         `Diagraft reads a YAML diagram model (entity positions and relation edges), renders one SVG path per relation, and splices the fragment into the marker-delimited region of a static HTML document.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// resolveConfig loads the project configuration. With an explicit
// --config path the config file is required and its directory becomes
// the project root; otherwise the root is discovered from the working
// directory and a missing config file just means defaults.
func (c *CLI) resolveConfig(configPath string) (config.Config, error) {
	if configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return config.Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolve config path %s", configPath)
		}
		if _, err := os.Stat(abs); err != nil {
			return config.Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", configPath)
		}
		return config.LoadFile(abs, filepath.Dir(abs))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Config{}, errors.Wrap(errors.ErrCodeInternal, err, "determine working directory")
	}
	root := config.FindRoot(cwd)
	c.Logger.Debug("resolved project root", "root", root)
	return config.Load(root)
}
