package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razeh/sketchucam-gcode-optimizer/gcode"
)

func move(t *testing.T, text string) *gcode.Move {
	t.Helper()
	m, err := gcode.NewMove(0, text)
	require.NoError(t, err)
	return m
}

func texts(p gcode.Program) []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Text()
	}
	return out
}

func TestDedupAdjacent(t *testing.T) {
	in := gcode.Program{
		move(t, "G0 X0 Y0 Z0"),
		move(t, "G0 X0 Y0 Z0"),
		move(t, "G0 X1 Y0 Z0"),
	}

	out, err := Dedup{}.Run(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"G0 X0 Y0 Z0", "G0 X1 Y0 Z0"}, texts(out))
}

func TestDedupEqualityIsByCoordinates(t *testing.T) {
	in := gcode.Program{
		move(t, "G0 X0 Y0 Z0"),
		move(t, "G0 Z0 Y0 X0"),
	}

	out, err := Dedup{}.Run(in)
	require.NoError(t, err)
	require.Len(t, out, 1)
}

func TestDedupOnlyAdjacent(t *testing.T) {
	in := gcode.Program{
		move(t, "G0 X0 Y0 Z0"),
		move(t, "G0 X1 Y0 Z0"),
		move(t, "G0 X0 Y0 Z0"),
	}

	out, err := Dedup{}.Run(in)
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestDedupIdempotent(t *testing.T) {
	in := gcode.Program{
		gcode.NewMode(1, "G90"),
		move(t, "G0 X0 Y0 Z0"),
		move(t, "G0 X0 Y0 Z0"),
		move(t, "G0 X0 Y0 Z0"),
		gcode.NewComment(5, "(done)"),
	}

	once, err := Dedup{}.Run(in)
	require.NoError(t, err)
	twice, err := Dedup{}.Run(once)
	require.NoError(t, err)
	assert.Equal(t, texts(once), texts(twice))
	assert.Len(t, once, 3)
}

func TestDedupEmpty(t *testing.T) {
	out, err := Dedup{}.Run(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
