package cubesim

import "fmt"

// Orientation is one of the 24 rotational placements a piece can occupy
// relative to its solved placement. The zero value is the identity
// (solved) orientation.
//
// Internally an orientation is an index into a precomputed table of
// face permutations, so composing quarter turns stays exact for any
// order of axes. Angle triples are a derived view, see Angles.
type Orientation struct {
	r uint8
}

// Face indices for the orientation tables, in OuterFaces order.
const (
	faceIdxU = iota
	faceIdxD
	faceIdxL
	faceIdxR
	faceIdxF
	faceIdxB
)

var faceByIndex = [6]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// facePerm maps an original face index to the face it currently shows
// on.
type facePerm [6]uint8

// The +90 degree generator around each axis. Every rotation cycles four
// faces and fixes the two on its axis.
var quarterTurns = [3]facePerm{
	AxisX: {faceIdxF, faceIdxB, faceIdxL, faceIdxR, faceIdxD, faceIdxU}, // U→F→D→B→U
	AxisY: {faceIdxU, faceIdxD, faceIdxF, faceIdxB, faceIdxR, faceIdxL}, // L→F→R→B→L
	AxisZ: {faceIdxL, faceIdxR, faceIdxD, faceIdxU, faceIdxF, faceIdxB}, // U→L→D→R→U
}

var (
	orientationPerms  [24]facePerm
	orientationIndex  map[facePerm]uint8
	orientationAngles [24][3]int
)

func init() {
	// Walk the rotation group from the identity. The three generators
	// reach all 24 rotations; index 0 stays the identity so the zero
	// Orientation is solved.
	identity := facePerm{faceIdxU, faceIdxD, faceIdxL, faceIdxR, faceIdxF, faceIdxB}
	orientationIndex = map[facePerm]uint8{identity: 0}
	orientationPerms[0] = identity

	count := 1
	for queue := []facePerm{identity}; len(queue) > 0; queue = queue[1:] {
		for _, gen := range quarterTurns {
			next := composePerm(queue[0], gen)
			if _, ok := orientationIndex[next]; ok {
				continue
			}
			orientationIndex[next] = uint8(count)
			orientationPerms[count] = next
			queue = append(queue, next)
			count++
		}
	}

	// Pick a canonical angle triple per rotation: the decomposition
	// with the fewest non-zero angles, smallest angles breaking ties.
	var have [24]bool
	var best [24][4]int
	for x := 0; x < 360; x += 90 {
		for y := 0; y < 360; y += 90 {
			for z := 0; z < 360; z += 90 {
				o := Orientation{}.
					RotatedAround(AxisX, x).
					RotatedAround(AxisY, y).
					RotatedAround(AxisZ, z)
				nonzero := 0
				for _, deg := range [3]int{x, y, z} {
					if deg != 0 {
						nonzero++
					}
				}
				score := [4]int{nonzero, x, y, z}
				if !have[o.r] || lessScore(score, best[o.r]) {
					have[o.r] = true
					best[o.r] = score
					orientationAngles[o.r] = [3]int{x, y, z}
				}
			}
		}
	}
}

func composePerm(base, next facePerm) facePerm {
	var out facePerm
	for i, cur := range base {
		out[i] = next[cur]
	}
	return out
}

func lessScore(a, b [4]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// NewOrientation builds an orientation from rotation angles around the
// X, Y and Z axes, applied in that order. Every angle must be a
// multiple of 90 degrees; it is normalised into [0, 360). Returns
// ErrInvalidGeometry for other angles.
func NewOrientation(x, y, z int) (Orientation, error) {
	for _, deg := range [3]int{x, y, z} {
		if deg%90 != 0 {
			return Orientation{}, fmt.Errorf("%w: rotation %d is not a multiple of 90 degrees",
				ErrInvalidGeometry, deg)
		}
	}
	o := Orientation{}.
		RotatedAround(AxisX, x).
		RotatedAround(AxisY, y).
		RotatedAround(AxisZ, z)
	return o, nil
}

// RotatedAround returns the orientation with an additional rotation
// applied around the given axis. The receiver is not modified. Angles
// are taken in 90-degree steps; fractions of a step are dropped.
func (o Orientation) RotatedAround(axis Axis, degrees int) Orientation {
	quarters := normalizeDegrees(degrees) / 90
	for i := 0; i < quarters; i++ {
		o.r = orientationIndex[composePerm(orientationPerms[o.r], quarterTurns[axis])]
	}
	return o
}

// IsIdentity reports whether the orientation matches the solved state.
func (o Orientation) IsIdentity() bool {
	return o.r == 0
}

// FaceMapping returns where each original face of a piece is showing
// under this orientation: mapping[original] = current.
func (o Orientation) FaceMapping() map[Face]Face {
	perm := orientationPerms[o.r]
	mapping := make(map[Face]Face, len(perm))
	for i, cur := range perm {
		mapping[faceByIndex[i]] = faceByIndex[cur]
	}
	return mapping
}

// Angles returns a canonical decomposition of the orientation: rotating
// a solved piece around X, then Y, then Z by these angles reproduces
// it. Several triples can describe the same orientation; the one with
// the fewest non-zero angles is returned.
func (o Orientation) Angles() (x, y, z int) {
	a := orientationAngles[o.r]
	return a[0], a[1], a[2]
}

// String returns the canonical angles as "(x°, y°, z°)".
func (o Orientation) String() string {
	x, y, z := o.Angles()
	return fmt.Sprintf("(%d°, %d°, %d°)", x, y, z)
}
