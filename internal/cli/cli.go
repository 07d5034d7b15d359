// Package cli implements the ssrbench command-line interface.
//
// This package provides commands for running the benchmark HTTP server,
// generating spiral tile layouts, executing in-process render benchmarks,
// and managing the render cache. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - serve: Run the SSR benchmark HTTP server
//   - tiles: Generate a spiral tile layout and print it
//   - bench: Run an in-process render benchmark
//   - cache: Manage the file render cache
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/benchkit/ssrbench/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "ssrbench"

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
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ssrbench benchmarks server-side page rendering",
		Long:         `ssrbench is a server-side-rendering benchmark: a reactive counter page, an SSR stress page, and a performance showdown page that lays out tiles along a spiral to synthesize a DOM-heavy render workload.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tilesCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// cacheDir returns the cache directory using XDG standard (~/.cache/ssrbench/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
