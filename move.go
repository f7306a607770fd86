package cubesim

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Face represents a cube face or rotation axis in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back

	FaceM Face = "M" // Middle slice (between L and R, follows L)
	FaceE Face = "E" // Equatorial slice (between U and D, follows D)
	FaceS Face = "S" // Standing slice (between F and B, follows F)

	FaceX Face = "x" // Whole-cube rotation around the X axis
	FaceY Face = "y" // Whole-cube rotation around the Y axis
	FaceZ Face = "z" // Whole-cube rotation around the Z axis
)

// OuterFaces lists the six outer faces in rendering order.
var OuterFaces = [6]Face{FaceU, FaceD, FaceL, FaceR, FaceF, FaceB}

// Opposite returns the face on the other side of the cube.
// Slice and rotation faces have no opposite and return themselves.
func (f Face) Opposite() Face {
	switch f {
	case FaceR:
		return FaceL
	case FaceL:
		return FaceR
	case FaceU:
		return FaceD
	case FaceD:
		return FaceU
	case FaceF:
		return FaceB
	case FaceB:
		return FaceF
	default:
		return f
	}
}

// IsOuter reports whether the face is one of the six outer faces.
func (f Face) IsOuter() bool {
	switch f {
	case FaceR, FaceL, FaceU, FaceD, FaceF, FaceB:
		return true
	default:
		return false
	}
}

// MoveKind classifies a move by which layers it turns.
type MoveKind int

const (
	KindFace     MoveKind = iota // Single outer layer: R, U, L, D, F, B
	KindWide                     // Multiple layers from an outer face: Rw, 3R
	KindSlice                    // Single inner layer: M, E, S
	KindRotation                 // Whole cube: x, y, z
)

func (k MoveKind) String() string {
	switch k {
	case KindFace:
		return "face"
	case KindWide:
		return "wide"
	case KindSlice:
		return "slice"
	case KindRotation:
		return "rotation"
	default:
		return "?"
	}
}

// Move represents a single move in standard WCA notation: a face token,
// an amount in 90-degree clockwise increments (1, 2 or 3), the kind of
// move, and how many layers it turns. Rotation axis, rotation angle and
// the affected-position predicate are derived, never stored.
type Move struct {
	Face   Face
	Amount int
	Kind   MoveKind
	Layers int
}

// ParseMove parses a move from standard WCA notation.
//
// Supported forms: basic face turns (R, U'), double turns (R2), wide
// turns (Rw, Rw', 2R, 3Rw), slice moves (M, E, S) and whole-cube
// rotations (x, y, z). A bare "Rw" turns two layers; a digit prefix
// selects the layer count explicitly. Returns ErrInvalidNotation for
// anything else, including lowercase face letters and "2'" modifiers.
func ParseMove(notation string) (Move, error) {
	s := strings.TrimSpace(notation)
	if s == "" {
		return Move{}, fmt.Errorf("%w: empty move", ErrInvalidNotation)
	}

	// Leading digits select the layer count.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	layers := 1
	if i > 0 {
		n, err := strconv.Atoi(s[:i])
		if err != nil || n < 1 {
			return Move{}, fmt.Errorf("%w: bad layer count in %q", ErrInvalidNotation, notation)
		}
		layers = n
	}
	if i == len(s) {
		return Move{}, fmt.Errorf("%w: %q has no face", ErrInvalidNotation, notation)
	}

	var face Face
	switch s[i] {
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	case 'M':
		face = FaceM
	case 'E':
		face = FaceE
	case 'S':
		face = FaceS
	case 'x':
		face = FaceX
	case 'y':
		face = FaceY
	case 'z':
		face = FaceZ
	default:
		return Move{}, fmt.Errorf("%w: unknown face in %q", ErrInvalidNotation, notation)
	}
	i++

	wide := false
	if i < len(s) && s[i] == 'w' {
		wide = true
		i++
	}

	amount := 1
	switch s[i:] {
	case "":
	case "'":
		amount = 3
	case "2":
		amount = 2
	default:
		return Move{}, fmt.Errorf("%w: bad modifier in %q", ErrInvalidNotation, notation)
	}

	var kind MoveKind
	switch {
	case face.IsOuter():
		if wide || layers > 1 {
			kind = KindWide
			if wide && layers == 1 {
				// Bare "Rw" defaults to two layers.
				layers = 2
			}
		} else {
			kind = KindFace
		}
	case face == FaceM || face == FaceE || face == FaceS:
		kind = KindSlice
		layers = 1
	default:
		kind = KindRotation
		layers = 1
	}

	return Move{Face: face, Amount: amount, Kind: kind, Layers: layers}, nil
}

// Inverse returns the move that undoes this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Amount {
	case 1:
		inv.Amount = 3
	case 3:
		inv.Amount = 1
	// Amount 2 is its own inverse
	}
	return inv
}

// Axis returns the principal axis this move rotates around.
// The second return value is false if the face token is unknown.
func (m Move) Axis() (Axis, bool) {
	switch m.Face {
	case FaceR, FaceL, FaceM, FaceX:
		return AxisX, true
	case FaceU, FaceD, FaceE, FaceY:
		return AxisY, true
	case FaceF, FaceB, FaceS, FaceZ:
		return AxisZ, true
	default:
		return 0, false
	}
}

// Angle returns the rotation angle in degrees, normalised to [0, 360).
// L, D and B turn opposite to their R, U and F counterparts, and the M
// and E slices follow L and D, so their angles are negated before
// normalising. This keeps position rotation consistent for the two
// faces sharing an axis.
func (m Move) Angle() int {
	base := 90 * m.Amount
	switch m.Face {
	case FaceL, FaceD, FaceB, FaceM, FaceE:
		return normalizeDegrees(-base)
	default:
		return base
	}
}

// Affects reports whether this move turns the piece at the given
// position on a cube of the given size. Face and wide turns compare the
// relevant coordinate against a threshold derived from the layer count;
// slices take the single center plane; rotations take everything.
func (m Move) Affects(p Position, size int) bool {
	if m.Kind == KindRotation {
		return true
	}

	half := halfSize(size)
	depth := half - float64(m.Layers) + 1
	switch m.Face {
	case FaceR:
		return p.X >= depth
	case FaceL:
		return p.X <= -depth
	case FaceU:
		return p.Y >= depth
	case FaceD:
		return p.Y <= -depth
	case FaceF:
		return p.Z >= depth
	case FaceB:
		return p.Z <= -depth
	case FaceM:
		return math.Abs(p.X) < 0.5
	case FaceE:
		return math.Abs(p.Y) < 0.5
	case FaceS:
		return math.Abs(p.Z) < 0.5
	default:
		return false
	}
}

// Notation returns the standard notation string for this move.
// Two-layer wide moves render with the "w" suffix, deeper wide moves
// with a digit prefix, so "2R" round-trips as "Rw".
func (m Move) Notation() string {
	n := string(m.Face)
	if m.Kind == KindWide {
		if m.Layers == 2 {
			n += "w"
		} else if m.Layers > 2 {
			n = strconv.Itoa(m.Layers) + n
		}
	}
	switch m.Amount {
	case 2:
		n += "2"
	case 3:
		n += "'"
	}
	return n
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}
