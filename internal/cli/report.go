package cli

import (
	"fmt"
	"strings"

	"github.com/matzehuels/portlayout/pkg/device"
	"github.com/matzehuels/portlayout/pkg/ports"
)

const bannerWidth = 60

// reporter prints one verification block per checked layout.
type reporter struct {
	ui *ui
}

// portLine is a single row of a report block.
type portLine struct {
	placement ports.Placement
	name      string
}

// reportCount prints the block for a plain port count.
func (r reporter) reportCount(total int, l ports.Layout, c ports.Check) {
	lines := make([]portLine, len(l))
	for i, p := range l {
		lines[i] = portLine{placement: p}
	}
	r.block(fmt.Sprintf("Testing with %d ports:", total), lines, c)
}

// reportDevice prints the block for a device profile, naming each port.
func (r reporter) reportDevice(p device.Profile, named []device.Port, c ports.Check) {
	lines := make([]portLine, len(named))
	for i, np := range named {
		lines[i] = portLine{placement: np.Placement, name: np.Name}
	}
	r.block(fmt.Sprintf("Testing %s with %d ports:", p.Type, p.Ports), lines, c)
}

func (r reporter) block(title string, lines []portLine, c ports.Check) {
	banner := strings.Repeat("=", bannerWidth)

	r.ui.printNewline()
	r.ui.printDim("%s", banner)
	r.ui.printTitle("%s", title)
	r.ui.printDim("%s", banner)

	for _, ln := range lines {
		p := ln.placement
		label := fmt.Sprintf("Port %d (index %d)", p.PortNumber, p.Index)
		if ln.name != "" {
			label = fmt.Sprintf("Port %d (index %d, %s)", p.PortNumber, p.Index, ln.name)
		}
		r.ui.printLine("%s: %5s side at %6.2f%%", label, p.Edge, p.Offset)
	}

	r.ui.printNewline()
	r.ui.printLine("Checking for overlaps:")
	r.ui.printLine("  Left side: %d ports, unique positions: %t", len(c.Left), c.LeftUnique)
	r.ui.printLine("  Right side: %d ports, unique positions: %t", len(c.Right), c.RightUnique)

	if o := c.Overlaps(ports.Left); o != nil {
		r.ui.printWarning("LEFT OVERLAP DETECTED: %s", formatOffsets(o))
	}
	if o := c.Overlaps(ports.Right); o != nil {
		r.ui.printWarning("RIGHT OVERLAP DETECTED: %s", formatOffsets(o))
	}
	if c.OK() {
		r.ui.printSuccess("No overlaps detected!")
	}
}

// formatOffsets renders offsets as "[25.00, 25.00]".
func formatOffsets(offsets []float64) string {
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = fmt.Sprintf("%.2f", o)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
