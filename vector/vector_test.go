package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Vector{X: 3, Y: 4}.Norm())
	assert.Equal(t, 0.0, Vector{}.Norm())
}

func TestDiff(t *testing.T) {
	d := Vector{X: 3, Y: 2, Z: 1}.Diff(Vector{X: 1, Y: 1, Z: 1})
	assert.Equal(t, Vector{X: 2, Y: 1, Z: 0}, d)
}

func TestUnit(t *testing.T) {
	u := Vector{X: 0, Y: 0, Z: 2}.Unit()
	assert.Equal(t, Vector{X: 0, Y: 0, Z: 1}, u)
}

func TestUnitOfZeroVectorNeverMatches(t *testing.T) {
	u := Vector{}.Unit()
	assert.True(t, math.IsNaN(u.X))

	// NaN components make degenerate directions unequal to everything,
	// including themselves.
	assert.False(t, u == Vector{}.Unit())
}
