package cubesim

import (
	"fmt"
	"math"
	"strconv"
)

// Axis represents one of the three principal rotation axes.
type Axis int

const (
	AxisX Axis = iota // Right/left axis
	AxisY             // Up/down axis
	AxisZ             // Front/back axis
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Position represents a cubie location in cube coordinates.
// The cube center is at (0, 0, 0); coordinates run from -(N-1)/2 to
// +(N-1)/2 in steps of 1, so even-sized cubes use half-integer values.
type Position struct {
	X float64 // Right/left
	Y float64 // Up/down
	Z float64 // Front/back
}

// NewPosition creates a position, validating that every coordinate lies
// on the half-integer lattice. Returns ErrInvalidGeometry otherwise.
func NewPosition(x, y, z float64) (Position, error) {
	for _, v := range [3]float64{x, y, z} {
		if v*2 != math.Trunc(v*2) {
			return Position{}, fmt.Errorf("%w: (%s, %s, %s) is not a lattice point",
				ErrInvalidGeometry, formatCoord(x), formatCoord(y), formatCoord(z))
		}
	}
	return Position{X: x, Y: y, Z: z}, nil
}

// RotatedAround returns the position rotated by the given angle around a
// principal axis. Coordinates are rounded to a fixed precision so that
// repeated 90-degree rotations always land exactly on lattice points.
func (p Position) RotatedAround(axis Axis, degrees int) Position {
	rad := float64(normalizeDegrees(degrees)) * math.Pi / 180
	sin, cos := math.Sincos(rad)

	var x, y, z float64
	switch axis {
	case AxisX:
		x = p.X
		y = p.Y*cos - p.Z*sin
		z = p.Y*sin + p.Z*cos
	case AxisY:
		x = p.X*cos + p.Z*sin
		y = p.Y
		z = -p.X*sin + p.Z*cos
	case AxisZ:
		x = p.X*cos - p.Y*sin
		y = p.X*sin + p.Y*cos
		z = p.Z
	default:
		return p
	}

	return Position{
		X: roundCoord(x),
		Y: roundCoord(y),
		Z: roundCoord(z),
	}
}

// Faces returns the faces this position touches on a cube of the given
// size. A position touches a face only when the matching coordinate sits
// on the outer boundary.
func (p Position) Faces(size int) []Face {
	half := halfSize(size)
	faces := make([]Face, 0, 3)
	switch {
	case p.Y == half:
		faces = append(faces, FaceU)
	case p.Y == -half:
		faces = append(faces, FaceD)
	}
	switch {
	case p.X == half:
		faces = append(faces, FaceR)
	case p.X == -half:
		faces = append(faces, FaceL)
	}
	switch {
	case p.Z == half:
		faces = append(faces, FaceF)
	case p.Z == -half:
		faces = append(faces, FaceB)
	}
	return faces
}

// IsCorner reports whether the position is a corner of a cube of the
// given size (touches three faces).
func (p Position) IsCorner(size int) bool {
	return len(p.Faces(size)) == 3
}

// IsEdge reports whether the position is an edge piece location
// (touches exactly two faces).
func (p Position) IsEdge(size int) bool {
	return len(p.Faces(size)) == 2
}

// IsCenter reports whether the position is a center piece location
// (touches exactly one face).
func (p Position) IsCenter(size int) bool {
	return len(p.Faces(size)) == 1
}

// IsInterior reports whether the position touches no face at all and is
// therefore invisible.
func (p Position) IsInterior(size int) bool {
	return len(p.Faces(size)) == 0
}

// DistanceFromCenter returns the Euclidean distance from the cube center.
func (p Position) DistanceFromCenter() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// String returns the position as "(x, y, z)".
func (p Position) String() string {
	return "(" + formatCoord(p.X) + ", " + formatCoord(p.Y) + ", " + formatCoord(p.Z) + ")"
}

// halfSize returns the boundary coordinate for a cube of the given size.
func halfSize(size int) float64 {
	return float64(size-1) / 2
}

// roundCoord rounds a coordinate to 10 decimal places, eliminating the
// floating error left by trigonometric rotation, and canonicalises
// negative zero so positions compare and print cleanly.
func roundCoord(v float64) float64 {
	const precision = 1e10
	r := math.Round(v*precision) / precision
	if r == 0 {
		return 0
	}
	return r
}

// normalizeDegrees maps any angle onto [0, 360). The % operator keeps
// the sign of the dividend, so negative inputs need the extra wrap.
func normalizeDegrees(degrees int) int {
	return ((degrees % 360) + 360) % 360
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
