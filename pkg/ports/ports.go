package ports

import (
	"fmt"
	"strings"

	apperr "github.com/matzehuels/portlayout/pkg/errors"
)

// Edge names the vertical side of a node a port is attached to.
type Edge int

const (
	Left Edge = iota
	Right
)

// String returns "left" or "right".
func (e Edge) String() string {
	switch e {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}

// MarshalText encodes the edge as its lowercase name.
func (e Edge) MarshalText() ([]byte, error) {
	if e != Left && e != Right {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "unknown edge %d", int(e))
	}
	return []byte(e.String()), nil
}

// UnmarshalText decodes "left" or "right" (case-insensitive).
func (e *Edge) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "left":
		*e = Left
	case "right":
		*e = Right
	default:
		return apperr.New(apperr.ErrCodeInvalidInput, "unknown edge %q", string(b))
	}
	return nil
}

// Placement is the computed position of a single port.
type Placement struct {
	Index      int     // zero-based position in the layout
	PortNumber int     // Index + 1
	Edge       Edge    // edge the port is attached to
	Offset     float64 // percent of edge length from the top, in (0, 100)
}

// Layout is the ordered placement of every port of a node, by ascending Index.
type Layout []Placement

// Count returns how many ports sit on edge e.
func (l Layout) Count(e Edge) int {
	n := 0
	for _, p := range l {
		if p.Edge == e {
			n++
		}
	}
	return n
}

// Offsets returns the offsets of the ports on edge e, in index order.
func (l Layout) Offsets(e Edge) []float64 {
	out := make([]float64, 0, len(l))
	for _, p := range l {
		if p.Edge == e {
			out = append(out, p.Offset)
		}
	}
	return out
}

// EdgeCounts returns how many of total ports go to the left and right edges.
// The left edge takes the extra port when total is odd.
func EdgeCounts(total int) (left, right int) {
	left = (total + 1) / 2
	return left, total - left
}

// Calculate places total ports on the left and right edges, spacing each
// edge's ports evenly. It is a pure function of total.
//
// A negative total returns an error with code INVALID_PORT_COUNT. Zero
// returns an empty layout.
func Calculate(total int) (Layout, error) {
	if err := apperr.ValidatePortCount(total); err != nil {
		return nil, err
	}

	left, right := EdgeCounts(total)
	l := make(Layout, 0, total)
	for i := range total {
		p := Placement{Index: i, PortNumber: i + 1}
		if i < left {
			p.Edge = Left
			p.Offset = offset(i+1, left)
		} else {
			p.Edge = Right
			p.Offset = offset(i-left+1, right)
		}
		l = append(l, p)
	}
	return l, nil
}

// offset returns the rounded position of the slot-th of n evenly spaced ports.
// n+1 is always >= 2 here since the caller only asks for slots on non-empty edges.
func offset(slot, n int) float64 {
	return Round(float64(slot) / float64(n+1) * 100)
}
