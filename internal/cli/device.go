package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/portlayout/pkg/device"
)

// deviceCommand creates the device command for checking named device profiles.
func (c *CLI) deviceCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "device [type...]",
		Short: "Place and check the ports of device profiles",
		Long: `Place and check the ports of device profiles.

Each device type has a fixed port count and naming scheme:
  router  4 ports  Gig0/0 .. Gig0/3
  switch  8 ports  Fa0/1 .. Fa0/8
  pc, server, hub  1 port  Eth0

Without types, checks the configured devices, or every known type if none
are configured.`,
		ValidArgs: device.Types(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return c.listDevices()
			}
			types := args
			if len(types) == 0 {
				types = c.config.Devices
			}
			if len(types) == 0 {
				types = device.Types()
			}
			return c.runDevices(cmd.Context(), types)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list known device types and exit")
	return cmd
}

// runDevices prints one report block per device type.
func (c *CLI) runDevices(ctx context.Context, types []string) error {
	prog := newProgress(loggerFromContext(ctx))
	r := reporter{ui: newUI(c.out)}

	for _, t := range types {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := c.checkDevice(ctx, r, t); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Checked %d devices", len(types)))
	return nil
}

// listDevices prints the known device types with their port names.
func (c *CLI) listDevices() error {
	u := newUI(c.out)
	for _, t := range device.Types() {
		p, err := device.Lookup(t)
		if err != nil {
			return err
		}
		names := make([]string, p.Ports)
		for i := range names {
			names[i] = p.PortName(i)
		}
		u.printInfo("%-7s %d ports  %s", p.Type, p.Ports, strings.Join(names, " "))
	}
	return nil
}
