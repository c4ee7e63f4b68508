package gcode

import (
	"strconv"
	"strings"
)

// Program is an ordered command sequence. Order is significant; the
// optimization passes are the only thing allowed to rearrange it.
type Program []Command

// Export renders the program back to its textual form, one command per
// line.
func (p Program) Export() string {
	var b strings.Builder
	for i, c := range p {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.Text())
	}
	return b.String()
}

func (p Program) Length() int {
	return len(p)
}

// FormatCoord renders a coordinate with at most p decimal digits, trailing
// zeroes stripped.
func FormatCoord(f float64, p int) string {
	x := strconv.FormatFloat(f, 'f', p, 64)

	if strings.IndexRune(x, '.') != -1 {
		for x[len(x)-1] == '0' {
			x = x[:len(x)-1]
		}
		if x[len(x)-1] == '.' {
			x = x[:len(x)-1]
		}
	}

	return x
}
