package optimize

import (
	"github.com/razeh/sketchucam-gcode-optimizer/gcode"
)

// Dedup drops every command equal to its immediate predecessor. Only
// adjacency is considered; running it twice is the same as running it once.
type Dedup struct{}

func (Dedup) Name() string { return "dedup" }

func (Dedup) Run(cmds gcode.Program) (gcode.Program, error) {
	var last gcode.Command
	out := make(gcode.Program, 0, len(cmds))
	for _, c := range cmds {
		if last == nil || !last.Equals(c) {
			out = append(out, c)
		}
		last = c
	}
	return out, nil
}
