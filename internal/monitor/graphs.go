package monitor

import (
	"fmt"
	"math"
	"strings"
)

// memoryGraphPrefix separates the usage figures from the inline graph.
const memoryGraphPrefix = "  |"

// MemoryGraph renders the inline graph for one round's physical memory
// reading, in gigabytes. prev is the previous round's reading, or nil on the
// first round.
//
// The glyphs encode the change since the previous round:
//
//	o  steady: grew by less than 0.01 GB
//	@  steady: shrank by less than 0.01 GB
//	#  one glyph per 0.01 GB of growth, closed by * and the delta
//	:  one glyph per 0.01 GB of shrink, closed by @ and the delta
//
// The current reading always follows in parentheses.
func MemoryGraph(curr float64, prev *float64) string {
	var b strings.Builder
	b.WriteString(memoryGraphPrefix)

	if prev == nil {
		fmt.Fprintf(&b, "o 0.00 (%.2f)", curr)
		return b.String()
	}

	diff := curr - *prev
	switch {
	case diff >= 0 && diff < 0.01:
		fmt.Fprintf(&b, "o 0.00 (%.2f)", curr)
	case diff <= 0 && diff > -0.01:
		fmt.Fprintf(&b, "@ 0.00 (%.2f)", curr)
	case diff > 0:
		b.WriteString(strings.Repeat("#", fillCount(diff)))
		fmt.Fprintf(&b, "* %.2f (%.2f)", diff, curr)
	default:
		b.WriteString(strings.Repeat(":", fillCount(-diff)))
		fmt.Fprintf(&b, "@ %.2f (%.2f)", diff, curr)
	}
	return b.String()
}

// fillCount converts an absolute delta in gigabytes into a glyph count, one
// glyph per hundredth of a gigabyte.
func fillCount(delta float64) int {
	return int(math.Round(delta * 100))
}

// CPUGraph renders the usage bar for one round's cpu percentage: one bar per
// two full percentage points, followed by the raw value.
func CPUGraph(percent float64) string {
	bars := int(percent) / 2
	if bars < 0 {
		bars = 0
	}
	return "\t" + strings.Repeat("|", bars) + fmt.Sprintf("%f", percent)
}
