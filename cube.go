package cubesim

import "fmt"

// Cube is a complete NxN puzzle: the piece state plus the history of
// moves applied to it. Create one with NewCube; the zero value is not
// usable.
//
// A Cube is not safe for concurrent mutation. Callers sharing one
// across goroutines must serialise access; Clone gives each goroutine
// an independent copy instead.
type Cube struct {
	size     int
	state    *CubeState
	history  MoveSequence
	redo     MoveSequence
	scramble MoveSequence
}

// NewCube creates a solved cube of the given size (2 to 10).
func NewCube(size int) (*Cube, error) {
	state, err := NewCubeState(size)
	if err != nil {
		return nil, err
	}
	return &Cube{size: size, state: state}, nil
}

// Size returns the cube dimension N.
func (c *Cube) Size() int {
	return c.size
}

// Apply applies one or more moves in order. On error the failing move
// and everything after it are not applied; earlier moves stay applied.
// Applying a fresh move discards any pending redo moves.
func (c *Cube) Apply(moves ...Move) error {
	c.redo = nil
	return c.applyAll(moves)
}

// ApplyNotation parses a move or space-separated sequence and applies
// it. Nothing is applied if parsing fails.
func (c *Cube) ApplyNotation(notation string) error {
	seq, err := ParseSequence(notation)
	if err != nil {
		return fmt.Errorf("failed to apply %q: %w", notation, err)
	}
	return c.ApplySequence(seq)
}

// ApplySequence applies every move of the sequence in order.
func (c *Cube) ApplySequence(seq MoveSequence) error {
	c.redo = nil
	return c.applyAll(seq)
}

func (c *Cube) applyAll(moves []Move) error {
	for _, m := range moves {
		if err := c.applyOne(m); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cube) applyOne(m Move) error {
	if err := c.state.Apply(m); err != nil {
		return err
	}
	c.history = append(c.history, m)
	return nil
}

// Undo reverts the most recently applied move by executing its inverse,
// and returns the move that was undone. The history shrinks by one; the
// inverse itself is not recorded. The undone move can be re-applied
// with Redo until a fresh move is made.
func (c *Cube) Undo() (Move, bool) {
	if len(c.history) == 0 {
		return Move{}, false
	}

	last := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]

	// The inverse of an applied move shares its face, so it always
	// resolves to an axis and cannot fail.
	_ = c.state.Apply(last.Inverse())
	c.redo = append(c.redo, last)
	return last, true
}

// Redo re-applies the most recently undone move. Re-applying after an
// undo is indistinguishable from never having undone.
func (c *Cube) Redo() (Move, bool) {
	if len(c.redo) == 0 {
		return Move{}, false
	}

	m := c.redo[len(c.redo)-1]
	if err := c.applyOne(m); err != nil {
		return Move{}, false
	}
	c.redo = c.redo[:len(c.redo)-1]
	return m, true
}

// UndoMoves reverts up to n most recent moves and returns the moves
// that were undone, most recent first.
func (c *Cube) UndoMoves(n int) MoveSequence {
	var undone MoveSequence
	for len(undone) < n {
		m, ok := c.Undo()
		if !ok {
			break
		}
		undone = append(undone, m)
	}
	return undone
}

// IsSolved reports whether every piece is home in its solved
// orientation.
func (c *Cube) IsSolved() bool {
	return c.state.IsSolved()
}

// FaceColors returns the N×N grid of colors showing on a face.
func (c *Cube) FaceColors(face Face) ([][]Color, error) {
	return c.state.FaceColors(face)
}

// AllFaceColors returns the color grids for all six faces.
func (c *Cube) AllFaceColors() map[Face][][]Color {
	grids := make(map[Face][][]Color, len(OuterFaces))
	for _, face := range OuterFaces {
		grid, err := c.state.FaceColors(face)
		if err != nil {
			continue
		}
		grids[face] = grid
	}
	return grids
}

// PieceAt returns the piece currently occupying the given position.
func (c *Cube) PieceAt(pos Position) (*Cubie, bool) {
	return c.state.PieceAt(pos)
}

// PieceCount returns how many corners, edges and centers the cube has.
func (c *Cube) PieceCount() PieceCount {
	return c.state.PieceCount()
}

// History returns a copy of the applied moves, oldest first. Undone
// moves are not included.
func (c *Cube) History() MoveSequence {
	return c.history.Clone()
}

// MoveCount returns the number of moves in the history.
func (c *Cube) MoveCount() int {
	return len(c.history)
}

// Reset returns the cube to the solved state and clears the history,
// the redo moves and the recorded scramble.
func (c *Cube) Reset() {
	state, _ := NewCubeState(c.size) // size validated at construction
	c.state = state
	c.history = nil
	c.redo = nil
	c.scramble = nil
}

// Clone returns a deep, independent copy of the cube including its
// history. Mutating the clone never affects the original, so clones are
// the way to explore move sequences concurrently.
func (c *Cube) Clone() *Cube {
	return &Cube{
		size:     c.size,
		state:    c.state.Clone(),
		history:  c.history.Clone(),
		redo:     c.redo.Clone(),
		scramble: c.scramble.Clone(),
	}
}

// Equal reports whether two cubes have the same size and identical
// piece state. Histories are not compared.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil {
		return false
	}
	return c.size == other.size && c.state.Equal(other.state)
}

// Validate checks the structural invariants of the underlying state.
func (c *Cube) Validate() error {
	return c.state.Validate()
}

// Info is a summary of a cube's current state.
type Info struct {
	Size      int
	Solved    bool
	MoveCount int
	Pieces    PieceCount
	Scramble  string // Notation of the last scramble, empty if none
}

// Info returns a snapshot summary of the cube.
func (c *Cube) Info() Info {
	return Info{
		Size:      c.size,
		Solved:    c.IsSolved(),
		MoveCount: len(c.history),
		Pieces:    c.PieceCount(),
		Scramble:  c.scramble.Notation(),
	}
}

// String describes the cube, e.g. "3x3x3 cube (solved, 0 moves)".
func (c *Cube) String() string {
	status := "scrambled"
	if c.IsSolved() {
		status = "solved"
	}
	return fmt.Sprintf("%dx%dx%d cube (%s, %d moves)", c.size, c.size, c.size, status, len(c.history))
}
