package gcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/razeh/sketchucam-gcode-optimizer/vector"
)

// Command is one emitted program line. The line number is the index of the
// physical line the command came from, retained so that optimized-out lines
// can be traced back to their origin.
type Command interface {
	LineNumber() int
	Text() string
	// Equals reports whether two commands would be interchangeable in the
	// program. Moves compare by coordinates; everything else by text.
	Equals(other Command) bool
}

// Comment is an opaque passthrough line. Never optimized.
type Comment struct {
	line int
	text string
}

func NewComment(line int, text string) *Comment {
	return &Comment{line: line, text: text}
}

func (c *Comment) LineNumber() int { return c.line }
func (c *Comment) Text() string    { return c.text }

func (c *Comment) Equals(other Command) bool {
	if _, ok := other.(*Move); ok {
		return false
	}
	return c.text == other.Text()
}

func (c *Comment) String() string {
	return fmt.Sprintf("%d:%s", c.line, c.text)
}

// Mode is a single-token state directive (G90, G21, G49). Carried through
// unchanged.
type Mode struct {
	line  int
	token string
}

func NewMode(line int, token string) *Mode {
	return &Mode{line: line, token: token}
}

func (m *Mode) LineNumber() int { return m.line }
func (m *Mode) Text() string    { return m.token }

func (m *Mode) Equals(other Command) bool {
	if _, ok := other.(*Move); ok {
		return false
	}
	return m.token == other.Text()
}

func (m *Mode) String() string {
	return fmt.Sprintf("%d:%s", m.line, m.token)
}

// Move is an absolute rapid positioning command (G0). Any subset of the
// three axes may be present; a move only names the axes that changed.
type Move struct {
	line             int
	text             string
	X, Y, Z          float64
	HasX, HasY, HasZ bool
}

// NewMove parses the axis words out of a raw command line. The stored text
// is the whole line, so untouched moves round-trip byte for byte.
func NewMove(line int, text string) (*Move, error) {
	m := &Move{line: line, text: text}
	for _, token := range strings.Fields(text) {
		var val *float64
		var has *bool
		switch token[0] {
		case 'X':
			val, has = &m.X, &m.HasX
		case 'Y':
			val, has = &m.Y, &m.HasY
		case 'Z':
			val, has = &m.Z, &m.HasZ
		default:
			continue
		}
		if *has {
			continue
		}
		f, err := strconv.ParseFloat(token[1:], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad %c coordinate %q: %w", line, token[0], token, err)
		}
		*val, *has = f, true
	}
	return m, nil
}

func (m *Move) LineNumber() int { return m.line }
func (m *Move) Text() string    { return m.text }

// HasXYZ reports whether all three axes are present. Only such moves are
// points in space; partial moves can block, but never join, a collinear run
// or a repeat match.
func (m *Move) HasXYZ() bool {
	return m.HasX && m.HasY && m.HasZ
}

// Vector is only meaningful when HasXYZ is true.
func (m *Move) Vector() vector.Vector {
	return vector.Vector{X: m.X, Y: m.Y, Z: m.Z}
}

// Equals compares coordinate values, not text, so two moves to the same
// point match regardless of token order or formatting.
func (m *Move) Equals(other Command) bool {
	o, ok := other.(*Move)
	if !ok {
		return false
	}
	return axisEqual(m.X, m.HasX, o.X, o.HasX) &&
		axisEqual(m.Y, m.HasY, o.Y, o.HasY) &&
		axisEqual(m.Z, m.HasZ, o.Z, o.HasZ)
}

func axisEqual(a float64, hasA bool, b float64, hasB bool) bool {
	if hasA != hasB {
		return false
	}
	return !hasA || a == b
}

func (m *Move) String() string {
	return fmt.Sprintf("%d:%s", m.line, m.text)
}

// WrapComment preserves an optimized-out command as a comment, keeping its
// original line number and text.
func WrapComment(c Command) *Comment {
	return NewComment(c.LineNumber(), "("+c.Text()+")")
}
