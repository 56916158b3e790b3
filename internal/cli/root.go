package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/portlayout/pkg/buildinfo"
)

// Execute builds the command tree and runs it with args (typically
// os.Args[1:]). Reports are written to out and logs to logw.
//
// Logging:
//   - Default: info level
//   - With --verbose (-v): debug level
func Execute(ctx context.Context, args []string, out, logw io.Writer) error {
	var verbose bool

	buildinfo.Resolve()
	c := New(out, logw, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(logw)

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	setup := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(LogDebug)
		}
		return setup(cmd, args)
	}

	return root.ExecuteContext(ctx)
}
