package gcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseMove(t *testing.T, text string) *Move {
	t.Helper()
	m, err := NewMove(0, text)
	require.NoError(t, err)
	return m
}

func TestMoveParsesAxes(t *testing.T) {
	m := mustParseMove(t, "G0 X1.5 Y-2 Z0.25")

	assert.True(t, m.HasXYZ())
	assert.Equal(t, 1.5, m.X)
	assert.Equal(t, -2.0, m.Y)
	assert.Equal(t, 0.25, m.Z)
}

func TestMovePartialAxes(t *testing.T) {
	m := mustParseMove(t, "G0 Z1.0")

	assert.False(t, m.HasXYZ())
	assert.False(t, m.HasX)
	assert.False(t, m.HasY)
	assert.True(t, m.HasZ)
	assert.Equal(t, 1.0, m.Z)
}

func TestMoveBadCoordinate(t *testing.T) {
	_, err := NewMove(3, "G0 Xabc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestMoveEqualityByCoordinates(t *testing.T) {
	a := mustParseMove(t, "G0 X1 Y2 Z3")
	b := mustParseMove(t, "G0 Z3.0 Y2.0 X1.0")

	// Token order and formatting are irrelevant; the point is the same.
	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
}

func TestMoveInequality(t *testing.T) {
	full := mustParseMove(t, "G0 X1 Y2 Z3")

	assert.False(t, full.Equals(mustParseMove(t, "G0 X1 Y2 Z4")))
	assert.False(t, full.Equals(mustParseMove(t, "G0 X1 Y2")))
	assert.False(t, full.Equals(NewComment(0, "G0 X1 Y2 Z3")))
}

func TestTextEqualityForNonMoves(t *testing.T) {
	assert.True(t, NewComment(1, "(foo)").Equals(NewComment(9, "(foo)")))
	assert.False(t, NewComment(1, "(foo)").Equals(NewComment(1, "(bar)")))
	assert.True(t, NewMode(1, "G90").Equals(NewMode(2, "G90")))
	assert.False(t, NewMode(1, "G90").Equals(NewMode(1, "G21")))
	assert.False(t, NewComment(1, "G0 X1").Equals(mustParseMove(t, "G0 X1")))
}

func TestWrapComment(t *testing.T) {
	m, err := NewMove(7, "G0 X1 Y2 Z3")
	require.NoError(t, err)

	c := WrapComment(m)
	assert.Equal(t, "(G0 X1 Y2 Z3)", c.Text())
	assert.Equal(t, 7, c.LineNumber())
}

func TestFormatCoord(t *testing.T) {
	assert.Equal(t, "1", FormatCoord(1.0, 4))
	assert.Equal(t, "10.5", FormatCoord(10.5, 4))
	assert.Equal(t, "1.2346", FormatCoord(1.23456, 4))
	assert.Equal(t, "-0.25", FormatCoord(-0.25, 4))
}

func TestProgramExport(t *testing.T) {
	p := Program{
		NewComment(1, "(test)"),
		NewMode(2, "G90"),
		mustParseMove(t, "G0 X0 Y0 Z0"),
	}
	assert.Equal(t, "(test)\nG90\nG0 X0 Y0 Z0", p.Export())
	assert.Equal(t, 3, p.Length())
	assert.Equal(t, "", Program{}.Export())
}
