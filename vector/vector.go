package vector

import (
	"fmt"
	"math"
)

// Vector is a point or direction in machine coordinates.
type Vector struct {
	X, Y, Z float64
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector) Diff(o Vector) Vector {
	return Vector{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

func (v Vector) Divide(d float64) Vector {
	return Vector{
		X: v.X / d,
		Y: v.Y / d,
		Z: v.Z / d,
	}
}

// Unit returns the direction of v. A zero vector divides to NaN
// components, which never compare equal to anything.
func (v Vector) Unit() Vector {
	return v.Divide(v.Norm())
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector{X: %f, Y: %f, Z: %f}", v.X, v.Y, v.Z)
}
