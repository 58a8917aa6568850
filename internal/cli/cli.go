// Package cli implements the rss command-line interface.
//
// This package provides commands for creating and appending feed item
// files, validating the publishing tree, building the rss.xml document,
// converting dates to and from the base-7 notation, and serving a local
// preview of the feed. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - post: Create a fresh rss_items.json in the current directory
//   - append: Add a new template item to an existing rss_items.json
//   - build: Walk the tree and write the assembled rss.xml
//   - check: Validate item and root files without building
//   - date: Convert between base-7 notation and calendar dates
//   - img: Wrap item descriptions in CDATA blocks with an img tag
//   - serve: Preview the assembled feed over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tylerneylon/rss/pkg/buildinfo"
	"github.com/tylerneylon/rss/pkg/config"
)

// appName is the application name used for directories and display.
const appName = "rss"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration. A broken config file downgrades to defaults with a
// warning rather than making every command unusable.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}

	cfg, err := config.Load()
	if err != nil {
		c.Logger.Warnf("Ignoring config file: %v", err)
	}
	c.Config = cfg
	applyColorMode(cfg.Color)

	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "rss creates and maintains RSS feed files",
		Long: `rss is a feed writer: it maintains per-directory rss_items.json files
and a root rss_root.json file, and assembles them into an rss.xml feed
document. It is a writer, not a reader.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.postCommand())
	root.AddCommand(c.appendCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.dateCommand())
	root.AddCommand(c.imgCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
