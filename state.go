package cubesim

import (
	"fmt"
	"math"
)

// Supported cube sizes.
const (
	MinSize = 2
	MaxSize = 10
)

// PieceCount holds the number of pieces of each type in a cube.
type PieceCount struct {
	Corners int
	Edges   int
	Centers int
	Total   int
}

// CubeState owns every cubie of a cube plus an index from current
// position to the piece occupying it. The index is kept exactly inverse
// to the pieces' current positions by Apply; nothing else mutates state.
type CubeState struct {
	size   int
	cubies []*Cubie
	index  map[Position]*Cubie
}

// NewCubeState builds a solved cube of the given size. The full N³
// lattice is enumerated and interior points are skipped, so only
// visible pieces exist. Returns ErrInvalidSize outside [2, 10].
func NewCubeState(size int) (*CubeState, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	s := &CubeState{
		size:  size,
		index: make(map[Position]*Cubie),
	}

	half := halfSize(size)
	scheme := SolvedColors()
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			for z := 0; z < size; z++ {
				pos := Position{
					X: float64(x) - half,
					Y: float64(y) - half,
					Z: float64(z) - half,
				}

				faces := pos.Faces(size)
				if len(faces) == 0 {
					continue // interior, never visible
				}

				colors := make(map[Face]Color, len(faces))
				for _, face := range faces {
					colors[face] = scheme[face]
				}

				cubie := NewCubie(pos, colors)
				s.cubies = append(s.cubies, cubie)
				s.index[pos] = cubie
			}
		}
	}
	return s, nil
}

// Size returns the cube dimension N.
func (s *CubeState) Size() int {
	return s.size
}

// PieceAt returns the piece currently occupying the given position.
func (s *CubeState) PieceAt(pos Position) (*Cubie, bool) {
	cubie, ok := s.index[pos]
	return cubie, ok
}

// Cubies returns all pieces. The slice is a copy but the pieces are the
// live objects; treat them as read-only.
func (s *CubeState) Cubies() []*Cubie {
	return append([]*Cubie(nil), s.cubies...)
}

// PiecesByType returns all pieces of one classification.
func (s *CubeState) PiecesByType(t PieceType) []*Cubie {
	var pieces []*Cubie
	for _, cubie := range s.cubies {
		if cubie.pieceType == t {
			pieces = append(pieces, cubie)
		}
	}
	return pieces
}

// PieceCount returns how many pieces of each type the cube has. The
// counts depend only on the cube size, never on the moves applied.
func (s *CubeState) PieceCount() PieceCount {
	var count PieceCount
	for _, cubie := range s.cubies {
		switch cubie.pieceType {
		case PieceCorner:
			count.Corners++
		case PieceEdge:
			count.Edges++
		case PieceCenter:
			count.Centers++
		}
	}
	count.Total = count.Corners + count.Edges + count.Centers
	return count
}

// IsSolved reports whether every piece is home with identity
// orientation.
func (s *CubeState) IsSolved() bool {
	for _, cubie := range s.cubies {
		if !cubie.IsSolved() {
			return false
		}
	}
	return true
}

// FaceColors returns the N×N grid of colors currently showing on a
// face, row by row. A grid cell that resolves to no piece or no color
// falls back to white; on a well-formed cube that never happens.
func (s *CubeState) FaceColors(face Face) ([][]Color, error) {
	if !face.IsOuter() {
		return nil, fmt.Errorf("%w: no face colors for %q", ErrInvalidMove, face)
	}

	n := s.size
	half := halfSize(n)
	grid := make([][]Color, n)
	for j := 0; j < n; j++ {
		grid[j] = make([]Color, n)
		for i := 0; i < n; i++ {
			fi, fj := float64(i), float64(j)

			var pos Position
			switch face {
			case FaceU:
				pos = Position{X: fi - half, Y: half, Z: fj - half}
			case FaceD:
				pos = Position{X: fi - half, Y: -half, Z: half - fj}
			case FaceF:
				pos = Position{X: fi - half, Y: half - fj, Z: half}
			case FaceB:
				pos = Position{X: half - fi, Y: half - fj, Z: -half}
			case FaceR:
				pos = Position{X: half, Y: half - fj, Z: half - fi}
			case FaceL:
				pos = Position{X: -half, Y: half - fj, Z: fi - half}
			}

			color := White
			if piece, ok := s.index[pos]; ok {
				if visible, ok := piece.VisibleColors()[face]; ok {
					color = visible
				}
			}
			grid[j][i] = color
		}
	}
	return grid, nil
}

// Apply executes a move: every affected piece is rotated around the
// move's axis and the index is re-built for the affected set. The
// update is two-phase, all affected pieces leave the index before any
// piece re-enters it, because a turn permutes positions cyclically
// through slots still occupied by other moving pieces.
func (s *CubeState) Apply(m Move) error {
	affected := make([]*Cubie, 0, len(s.cubies))
	for _, cubie := range s.cubies {
		if m.Affects(cubie.current, s.size) {
			affected = append(affected, cubie)
		}
	}
	if len(affected) == 0 {
		// Nothing to turn, e.g. a slice move on an even-sized cube.
		return nil
	}

	axis, ok := m.Axis()
	if !ok {
		return fmt.Errorf("%w: no rotation axis for face %q", ErrInvalidMove, m.Face)
	}
	angle := m.Angle()

	// Compute every new position before touching anything.
	next := make([]Position, len(affected))
	for i, cubie := range affected {
		next[i] = cubie.current.RotatedAround(axis, angle)
	}

	for _, cubie := range affected {
		delete(s.index, cubie.current)
	}
	for i, cubie := range affected {
		cubie.orientation = cubie.orientation.RotatedAround(axis, angle)
		cubie.current = next[i]
		s.index[cubie.current] = cubie
	}
	return nil
}

// Clone returns a deep copy: every piece is copied and the index is
// rebuilt from the copies, so the clone can be mutated independently.
func (s *CubeState) Clone() *CubeState {
	clone := &CubeState{
		size:   s.size,
		cubies: make([]*Cubie, 0, len(s.cubies)),
		index:  make(map[Position]*Cubie, len(s.index)),
	}
	for _, cubie := range s.cubies {
		copied := cubie.Clone()
		clone.cubies = append(clone.cubies, copied)
		clone.index[copied.current] = copied
	}
	return clone
}

// Equal reports whether two states match piece for piece: for every
// piece in s, an equal piece must occupy the same position in other.
func (s *CubeState) Equal(other *CubeState) bool {
	if other == nil || s.size != other.size {
		return false
	}
	for _, cubie := range s.cubies {
		match, ok := other.index[cubie.current]
		if !ok || !cubie.Equal(match) {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants: expected piece counts for
// the cube size, every position on the lattice and inside the cube, and
// the index exactly inverse to the pieces' current positions. A failure
// indicates internal corruption and wraps ErrInvalidGeometry.
func (s *CubeState) Validate() error {
	count := s.PieceCount()
	wantEdges := 12 * (s.size - 2)
	wantCenters := 6 * (s.size - 2) * (s.size - 2)
	if count.Corners != 8 || count.Edges != wantEdges || count.Centers != wantCenters {
		return fmt.Errorf("%w: piece count %+v, want 8 corners, %d edges, %d centers",
			ErrInvalidGeometry, count, wantEdges, wantCenters)
	}

	if len(s.index) != len(s.cubies) {
		return fmt.Errorf("%w: index holds %d entries for %d pieces",
			ErrInvalidGeometry, len(s.index), len(s.cubies))
	}

	half := halfSize(s.size)
	for _, cubie := range s.cubies {
		if got, ok := s.index[cubie.current]; !ok || got != cubie {
			return fmt.Errorf("%w: index out of sync at %s", ErrInvalidGeometry, cubie.current)
		}
		for _, coord := range [3]float64{cubie.current.X, cubie.current.Y, cubie.current.Z} {
			if math.Abs(coord) > half || coord+half != math.Trunc(coord+half) {
				return fmt.Errorf("%w: piece off the lattice at %s", ErrInvalidGeometry, cubie.current)
			}
		}
		if cubie.current.IsInterior(s.size) {
			return fmt.Errorf("%w: piece sunk into the interior at %s", ErrInvalidGeometry, cubie.current)
		}
	}
	return nil
}
