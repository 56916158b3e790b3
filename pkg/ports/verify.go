package ports

// Check is the outcome of verifying a layout for same-edge overlaps.
type Check struct {
	Left        []float64 // offsets of left-edge ports, in index order
	Right       []float64 // offsets of right-edge ports, in index order
	LeftUnique  bool
	RightUnique bool
}

// OK reports whether neither edge has overlapping ports.
func (c Check) OK() bool { return c.LeftUnique && c.RightUnique }

// Overlaps returns the full offset sequence of edge e if it contains a
// duplicate, and nil otherwise.
func (c Check) Overlaps(e Edge) []float64 {
	switch {
	case e == Left && !c.LeftUnique:
		return c.Left
	case e == Right && !c.RightUnique:
		return c.Right
	}
	return nil
}

// Verify partitions l by edge and checks each edge for repeated offsets.
// Empty edges are trivially unique. Verify never fails.
func Verify(l Layout) Check {
	left := l.Offsets(Left)
	right := l.Offsets(Right)
	return Check{
		Left:        left,
		Right:       right,
		LeftUnique:  len(left) == distinct(left),
		RightUnique: len(right) == distinct(right),
	}
}

// distinct counts the distinct values in offsets.
func distinct(offsets []float64) int {
	seen := make(map[float64]struct{}, len(offsets))
	for _, o := range offsets {
		seen[o] = struct{}{}
	}
	return len(seen)
}
