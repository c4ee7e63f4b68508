package optimize

import (
	"github.com/razeh/sketchucam-gcode-optimizer/gcode"
)

func distance(a, b *gcode.Move) float64 {
	return a.Vector().Diff(b.Vector()).Norm()
}

// pathLength is the travel along consecutive full-coordinate moves. Partial
// moves and non-moves contribute nothing and break the chain.
func pathLength(cmds gcode.Program) float64 {
	var (
		total float64
		prev  *gcode.Move
	)
	for _, c := range cmds {
		m, ok := c.(*gcode.Move)
		if !ok || !m.HasXYZ() {
			prev = nil
			continue
		}
		if prev != nil {
			total += distance(prev, m)
		}
		prev = m
	}
	return total
}

// collinear reports whether p2 and p3 lie in the same direction from p1,
// using exact floating-point comparison. Coincident points yield NaN
// direction components and therefore never match.
func collinear(p1, p2, p3 *gcode.Move) bool {
	if !p1.HasXYZ() || !p2.HasXYZ() || !p3.HasXYZ() {
		return false
	}
	dir2 := p1.Vector().Diff(p2.Vector()).Unit()
	dir3 := p1.Vector().Diff(p3.Vector()).Unit()
	return dir2 == dir3
}

// fullMove returns the command as a move with all three axes, or nil.
func fullMove(c gcode.Command) *gcode.Move {
	if m, ok := c.(*gcode.Move); ok && m.HasXYZ() {
		return m
	}
	return nil
}
