package optimize

import (
	"github.com/razeh/sketchucam-gcode-optimizer/gcode"
)

// Collinear collapses runs of absolute moves that lie on a straight line
// into their endpoints. The window is re-examined after each removal, so a
// long straight run shrinks one waypoint at a time until the triple is no
// longer collinear. Non-move commands and partial moves interrupt a run.
type Collinear struct{}

func (Collinear) Name() string { return "collinear" }

func (Collinear) Run(cmds gcode.Program) (gcode.Program, error) {
	i := 0
	for i+2 < len(cmds) {
		first, ok1 := cmds[i].(*gcode.Move)
		middle, ok2 := cmds[i+1].(*gcode.Move)
		last, ok3 := cmds[i+2].(*gcode.Move)
		if ok1 && ok2 && ok3 && collinear(first, middle, last) {
			cmds = append(cmds[:i+1], cmds[i+2:]...)
		} else {
			i++
		}
	}
	return cmds, nil
}
