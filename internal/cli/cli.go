package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/algographics/algographics/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "algographics"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	status      io.Writer // spinner output, the logger's writer
	interactive bool      // status is a terminal
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{
		Logger:      newLogger(w, level),
		status:      w,
		interactive: isTerminal(w),
	}
	c.SetLogLevel(level)
	return c
}

// SetLogLevel updates the logger's level. At debug level the logger also
// receives the raster backend's diagnostics.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		gg.SetLogger(slog.New(c.Logger))
	} else {
		gg.SetLogger(nil)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Algographics draws annotated character arrays",
		Long:         `Algographics renders scene files describing character arrays, arrows, brackets and highlights into SVG and PNG figures for explaining string algorithms.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}
