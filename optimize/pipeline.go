package optimize

import (
	"fmt"
	"log/slog"

	"github.com/razeh/sketchucam-gcode-optimizer/gcode"
)

// Pass is one optimization stage. Each pass consumes a program and produces
// a program of the same shape; ownership of the sequence passes linearly
// from one stage to the next.
type Pass interface {
	Name() string
	Run(cmds gcode.Program) (gcode.Program, error)
}

// Result records what a single pass did to the command count.
type Result struct {
	Pass   string
	Before int
	After  int
}

// Run executes the passes in order and reports per-pass statistics. Any
// pass failure aborts the run; a partially optimized program must never be
// emitted.
func Run(cmds gcode.Program, passes ...Pass) (gcode.Program, []Result, error) {
	results := make([]Result, 0, len(passes))
	for _, p := range passes {
		before := len(cmds)
		out, err := p.Run(cmds)
		if err != nil {
			return nil, results, fmt.Errorf("pass %s: %w", p.Name(), err)
		}
		cmds = out
		results = append(results, Result{Pass: p.Name(), Before: before, After: len(cmds)})
		slog.Debug("pass complete", "pass", p.Name(), "before", before, "after", len(cmds))
	}
	return cmds, results, nil
}

// Passes is the standard pipeline: duplicate removal, collinear reduction,
// repeated-traversal elimination.
func Passes(safeHeight float64, precision int) []Pass {
	return []Pass{
		Dedup{},
		Collinear{},
		Repeat{SafeHeight: safeHeight, Precision: precision},
	}
}
