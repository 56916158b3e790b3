package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/portlayout/pkg/device"
	apperr "github.com/matzehuels/portlayout/pkg/errors"
	"github.com/matzehuels/portlayout/pkg/ports"
)

// layoutCommand creates the layout command for exporting a layout as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		deviceType string
		withCheck  bool
	)

	cmd := &cobra.Command{
		Use:   "layout [count]",
		Short: "Export a port layout as JSON",
		Long: `Export a port layout as JSON.

Pass a port count, or --device to lay out a device profile with named ports.
Each port carries its edge ("left" or "right") and its offset in percent
of the edge length, ready to use as a CSS top: value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var count string
			if len(args) == 1 {
				count = args[0]
			}
			return c.runLayout(cmd.Context(), count, deviceType, output, withCheck)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&deviceType, "device", "d", "", "device type to lay out instead of a port count")
	cmd.Flags().BoolVar(&withCheck, "check", false, "include the overlap check in the output")

	return cmd
}

// runLayout computes the requested layout and writes it as JSON.
func (c *CLI) runLayout(ctx context.Context, count, deviceType, output string, withCheck bool) error {
	logger := loggerFromContext(ctx)

	var (
		l    ports.Layout
		opts []ports.JSONOption
	)
	switch {
	case count != "" && deviceType != "":
		return apperr.New(apperr.ErrCodeInvalidInput, "pass either a port count or --device, not both")
	case deviceType != "":
		p, err := device.Lookup(deviceType)
		if err != nil {
			return err
		}
		named, err := p.Layout()
		if err != nil {
			return err
		}
		l = device.Placements(named)
		opts = append(opts, ports.WithJSONDevice(p.Type), ports.WithJSONNames(p.PortName))
	case count != "":
		n, err := strconv.Atoi(count)
		if err != nil {
			return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "port count %q is not an integer", count)
		}
		if l, err = ports.Calculate(n); err != nil {
			return err
		}
	default:
		return apperr.New(apperr.ErrCodeInvalidInput, "a port count or --device is required")
	}

	if withCheck {
		opts = append(opts, ports.WithJSONCheck())
	}
	data, err := ports.RenderJSON(l, opts...)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "encode layout")
	}

	if output == "" {
		_, err := fmt.Fprintln(c.out, string(data))
		return err
	}
	if err := apperr.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	logger.Info("Wrote layout", "path", output, "ports", len(l))
	return nil
}
