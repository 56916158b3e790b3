package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/portlayout/pkg/device"
	apperr "github.com/matzehuels/portlayout/pkg/errors"
	"github.com/matzehuels/portlayout/pkg/ports"
)

// checkCommand creates the check command for explicit port counts.
func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [count...]",
		Short: "Place ports for each count and report same-edge overlaps",
		Long: `Place ports for each count and report same-edge overlaps.

Without counts, checks the configured list (default: 1 2 3 4 6 8).
Overlaps are reported but never change the exit status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.runCheck(cmd.Context(), c.config.Counts, c.config.Devices)
			}
			counts, err := parseCounts(args)
			if err != nil {
				return err
			}
			return c.runCheck(cmd.Context(), counts, nil)
		},
	}
}

// runCheck prints one report block per port count, then one per device type.
func (c *CLI) runCheck(ctx context.Context, counts []int, devices []string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	r := reporter{ui: newUI(c.out)}

	overlaps := 0
	for _, total := range counts {
		if err := ctx.Err(); err != nil {
			return err
		}
		l, err := ports.Calculate(total)
		if err != nil {
			return fmt.Errorf("check %d ports: %w", total, err)
		}
		check := ports.Verify(l)
		if !check.OK() {
			overlaps++
		}
		logger.Debug("checked layout", "total", total, "left", len(check.Left), "right", len(check.Right), "ok", check.OK())
		r.reportCount(total, l, check)
	}

	for _, d := range devices {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := c.checkDevice(ctx, r, d)
		if err != nil {
			return err
		}
		if !ok {
			overlaps++
		}
	}

	if overlaps > 0 {
		logger.Warn("overlapping ports found", "layouts", overlaps)
	}
	prog.done(fmt.Sprintf("Checked %d layouts", len(counts)+len(devices)))
	return nil
}

// checkDevice prints the report block for one device type.
func (c *CLI) checkDevice(ctx context.Context, r reporter, deviceType string) (bool, error) {
	p, err := device.Lookup(deviceType)
	if err != nil {
		return false, err
	}
	named, err := p.Layout()
	if err != nil {
		return false, err
	}
	check := ports.Verify(device.Placements(named))
	loggerFromContext(ctx).Debug("checked device", "type", p.Type, "ports", p.Ports, "ok", check.OK())
	r.reportDevice(p, named, check)
	return check.OK(), nil
}

// parseCounts converts positional arguments to validated port counts.
func parseCounts(args []string) ([]int, error) {
	counts := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "port count %q is not an integer", a)
		}
		if err := apperr.ValidatePortCount(n); err != nil {
			return nil, err
		}
		counts = append(counts, n)
	}
	return counts, nil
}
