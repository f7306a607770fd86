package cubesim

import "fmt"

// PieceType classifies a cubie by how many faces it shows.
type PieceType int

const (
	PieceCorner PieceType = iota // Three visible faces
	PieceEdge                    // Two visible faces
	PieceCenter                  // One visible face
	PieceCore                    // No visible faces (invisible)
)

func (t PieceType) String() string {
	switch t {
	case PieceCorner:
		return "corner"
	case PieceEdge:
		return "edge"
	case PieceCenter:
		return "center"
	case PieceCore:
		return "core"
	default:
		return "?"
	}
}

// Cubie represents a single physical piece of the puzzle. Its identity
// is the home position it belongs to when solved; the current position
// and orientation change with every move that turns it. The face colors
// are fixed at creation.
type Cubie struct {
	original    Position
	current     Position
	orientation Orientation
	colors      map[Face]Color
	pieceType   PieceType
}

// NewCubie creates a piece at its home position with the given solved
// colors (one entry per face the piece touches). The piece type follows
// from the number of colored faces.
func NewCubie(original Position, colors map[Face]Color) *Cubie {
	c := &Cubie{
		original: original,
		current:  original,
		colors:   make(map[Face]Color, len(colors)),
	}
	for face, color := range colors {
		c.colors[face] = color
	}

	switch len(c.colors) {
	case 3:
		c.pieceType = PieceCorner
	case 2:
		c.pieceType = PieceEdge
	case 1:
		c.pieceType = PieceCenter
	default:
		c.pieceType = PieceCore
	}
	return c
}

// OriginalPosition returns the piece's home position on a solved cube.
func (c *Cubie) OriginalPosition() Position {
	return c.original
}

// CurrentPosition returns where the piece sits right now.
func (c *Cubie) CurrentPosition() Position {
	return c.current
}

// Orientation returns the piece's rotation relative to solved.
func (c *Cubie) Orientation() Orientation {
	return c.orientation
}

// Type returns the piece classification.
func (c *Cubie) Type() PieceType {
	return c.pieceType
}

// Colors returns a copy of the piece's solved-state colors, keyed by
// the face each color belongs to when the piece is solved.
func (c *Cubie) Colors() map[Face]Color {
	colors := make(map[Face]Color, len(c.colors))
	for face, color := range c.colors {
		colors[face] = color
	}
	return colors
}

// VisibleColors returns which color the piece currently shows on each
// spatial face, obtained by passing the solved-state colors through the
// orientation's face mapping.
func (c *Cubie) VisibleColors() map[Face]Color {
	mapping := c.orientation.FaceMapping()
	visible := make(map[Face]Color, len(c.colors))
	for face, color := range c.colors {
		current, ok := mapping[face]
		if !ok {
			current = face
		}
		visible[current] = color
	}
	return visible
}

// IsSolved reports whether the piece is back at its home position with
// identity orientation.
func (c *Cubie) IsSolved() bool {
	return c.current == c.original && c.orientation.IsIdentity()
}

// Equal reports whether two pieces match in identity, position,
// orientation and colors.
func (c *Cubie) Equal(other *Cubie) bool {
	if other == nil {
		return false
	}
	if c.original != other.original ||
		c.current != other.current ||
		c.orientation != other.orientation ||
		len(c.colors) != len(other.colors) {
		return false
	}
	for face, color := range c.colors {
		if other.colors[face] != color {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the piece.
func (c *Cubie) Clone() *Cubie {
	clone := &Cubie{
		original:    c.original,
		current:     c.current,
		orientation: c.orientation,
		colors:      make(map[Face]Color, len(c.colors)),
		pieceType:   c.pieceType,
	}
	for face, color := range c.colors {
		clone.colors[face] = color
	}
	return clone
}

// String describes the piece, e.g. "corner at (1, 1, 1)".
func (c *Cubie) String() string {
	return fmt.Sprintf("%s at %s", c.pieceType, c.current)
}
