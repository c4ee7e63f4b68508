package optimize

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/razeh/sketchucam-gcode-optimizer/gcode"
	"github.com/razeh/sketchucam-gcode-optimizer/vector"
)

const (
	// DefaultSafeHeight is the retract height used when none is configured.
	// It must be set above every clamp and fixture on the table.
	DefaultSafeHeight = 1.0

	// DefaultPrecision is the decimal precision for synthesized moves.
	DefaultPrecision = 4
)

// Repeat finds later sub-sequences of full-coordinate moves that retrace a
// path covered earlier in the program and, when the retraced travel costs
// more than a retract, replaces them with a lift to safe height followed by
// a reposition above the segment's end point. The retraced commands are
// kept as comments so the output can be audited against the input line by
// line.
type Repeat struct {
	SafeHeight float64
	Precision  int
}

// span is the inclusive index range of the later occurrence of a repeated
// sub-sequence.
type span struct {
	start, end int
}

func (r Repeat) Name() string { return "repeat" }

func (r Repeat) Run(cmds gcode.Program) (out gcode.Program, err error) {
	// A safe-move destination without X or Y means the range bookkeeping is
	// broken; surface it as an error rather than emit an unsafe program.
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("repeat elimination: %v", rec)
		}
	}()

	spans := r.findSpans(cmds)
	spans = mergeContained(spans)

	// Highest range first, so splicing never invalidates the indices of the
	// ranges still waiting.
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start > spans[j].start
		}
		return spans[i].end > spans[j].end
	})

	for _, s := range spans {
		cmds = r.apply(cmds, s)
	}
	return cmds, nil
}

// findSpans indexes every full-coordinate move by its point and chases each
// later occurrence forward in lock-step with the earlier one. A chase that
// extends past its starting point records the later occurrence's range.
func (r Repeat) findSpans(cmds gcode.Program) []span {
	bins := make(map[vector.Vector][]int)
	for i, c := range cmds {
		if m := fullMove(c); m != nil {
			bins[m.Vector()] = append(bins[m.Vector()], i)
		}
	}

	var (
		spans []span
		seen  = make(map[span]bool)
	)

	i := 0
	for i < len(cmds) {
		m := fullMove(cmds[i])
		if m == nil {
			i++
			continue
		}

		// The candidate set is fixed at loop entry; i moves forward while
		// the candidates are examined.
		var candidates []int
		for _, j := range bins[m.Vector()] {
			if j > i {
				candidates = append(candidates, j)
			}
		}

		for _, j := range candidates {
			first, second := i, j
			for second < len(cmds) && fullMove(cmds[first]) != nil && cmds[first].Equals(cmds[second]) {
				first++
				second++
			}
			first--
			second--

			if first-i > 0 {
				s := span{start: j, end: second}
				if !seen[s] {
					seen[s] = true
					spans = append(spans, s)
				}
				// Resume just before the end of the earlier occurrence, so
				// the same run is not re-detected from an inner index.
				i = first - 1
			}
		}
		i++
	}
	return spans
}

// mergeContained keeps only maximal ranges: a range nested inside another
// is absorbed by it.
func mergeContained(spans []span) []span {
	kept := make([]span, 0, len(spans))
	for _, s := range spans {
		contained := false
		for _, o := range spans {
			if o != s && s.start >= o.start && s.end <= o.end {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, s)
		}
	}
	return kept
}

// apply rewrites a single range if it is profitable: the retraced travel
// must exceed the cost of retracting at both ends, and the endpoints must
// differ in X. A purely vertical or null repeat is left alone.
func (r Repeat) apply(cmds gcode.Program, s span) gcode.Program {
	startMove := fullMove(cmds[s.start])
	endMove := fullMove(cmds[s.end])
	if startMove == nil || endMove == nil {
		// A previously applied overlapping range rewrote part of this one.
		slog.Debug("skipping rewritten range", "start", s.start, "end", s.end)
		return cmds
	}

	dupDistance := pathLength(cmds[s.start:s.end])
	safeDistance := (r.SafeHeight - startMove.Z) + (r.SafeHeight - endMove.Z)
	if dupDistance <= safeDistance || startMove.X == endMove.X {
		slog.Debug("unprofitable repeat range",
			"start", s.start, "end", s.end,
			"dup_distance", dupDistance, "safe_distance", safeDistance)
		return cmds
	}

	lift, travel := r.safeMoves(endMove)

	out := make(gcode.Program, 0, len(cmds)+2)
	out = append(out, cmds[:s.start]...)
	out = append(out, lift, travel)
	for _, c := range cmds[s.start:s.end] {
		out = append(out, gcode.WrapComment(c))
	}
	out = append(out, cmds[s.end:]...)

	slog.Debug("replaced repeated traversal",
		"start", s.start, "end", s.end,
		"dup_distance", dupDistance, "safe_distance", safeDistance)
	return out
}

// safeMoves builds the retract and reposition pair. The lift keeps the
// current X and Y; the reposition travels at safe height to the point the
// program resumes from.
func (r Repeat) safeMoves(destination *gcode.Move) (*gcode.Move, *gcode.Move) {
	if !destination.HasX || !destination.HasY {
		panic(fmt.Sprintf("safe move destination without X/Y: %v", destination))
	}

	precision := r.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}

	height := gcode.FormatCoord(r.SafeHeight, precision)
	lift := mustMove("G0 Z" + height)
	travel := mustMove(fmt.Sprintf("G0 X%s Y%s Z%s",
		gcode.FormatCoord(destination.X, precision),
		gcode.FormatCoord(destination.Y, precision),
		height))
	return lift, travel
}

func mustMove(text string) *gcode.Move {
	m, err := gcode.NewMove(0, text)
	if err != nil {
		panic(err)
	}
	return m
}
