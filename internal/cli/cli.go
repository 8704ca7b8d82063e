package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/geocore/geocore/pkg/buildinfo"
	"github.com/geocore/geocore/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const appName = buildinfo.Name

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

	// configPath is the --config flag shared by all commands.
	configPath string
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
		Use:   appName,
		Short: "geocore draws stratigraphic drilling profiles",
		Long: `geocore renders drill holes as stacked layer columns, links matching layers of
neighboring holes and exports the profile as SVG, PNG or JPEG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/geocore/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.orderCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// context attaches the CLI logger to ctx.
func (c *CLI) context(ctx context.Context) context.Context {
	return withLogger(ctx, c.Logger)
}

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() (config.Options, error) {
	opts, err := config.Load(c.configPath)
	if err != nil {
		return opts, err
	}
	c.Logger.Debug("config loaded", "path", c.configPath, "direction", opts.Direction)
	return opts, nil
}
