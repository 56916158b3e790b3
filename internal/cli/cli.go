// Package cli implements the portlayout command-line interface.
//
// Running portlayout without arguments places and checks the ports for the
// counts 1, 2, 3, 4, 6 and 8, printing one report block per count. The
// subcommands are:
//   - check: the same report for explicit port counts
//   - device: the report for named device profiles (router, switch, ...)
//   - layout: export a layout as JSON
//   - completion: shell completion scripts
//
// Reports go to stdout. Logs go to stderr through charmbracelet/log; pass
// --verbose (-v) for debug output.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/portlayout/pkg/buildinfo"
	"github.com/matzehuels/portlayout/pkg/config"
)

const appName = "portlayout"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
	config     config.Config
}

// New creates a CLI that writes reports to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Invoked without a subcommand, it runs the default check.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Portlayout places device ports on diagram edges and checks them for overlaps",
		Long: `Portlayout computes where a device's ports sit along the left and right
edges of a diagram node, then verifies that no two ports on the same edge
share a vertical offset.

Without arguments it checks 1, 2, 3, 4, 6 and 8 ports.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), c.config.Counts, c.config.Devices)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML run configuration (counts, devices)")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.deviceCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration file, if any, and attaches the logger to the
// command context.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))

	if c.configPath == "" {
		return nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config", "path", c.configPath, "counts", cfg.Counts, "devices", cfg.Devices)
	return nil
}
