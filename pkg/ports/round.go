package ports

import (
	"math"
	"strconv"
)

// MaxDistinctPerEdge is the largest number of ports one edge can carry while
// rounded offsets are still guaranteed distinct: the spacing 100/(n+1) must
// stay above the 0.01 rounding step.
const MaxDistinctPerEdge = 9998

// Round rounds v to two decimal places.
//
// The rule is decimal rounding of the exact binary value of v with ties to
// even, which is what strconv does for a fixed precision. Values such as
// 1.005 whose binary form sits just below the tie round down; exact ties
// such as 0.125 go to the even digit (0.12).
func Round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
