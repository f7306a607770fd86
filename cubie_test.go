package cubesim

import "testing"

func cornerCubie() *Cubie {
	return NewCubie(Position{X: 1, Y: 1, Z: 1}, map[Face]Color{
		FaceU: White, FaceR: Red, FaceF: Green,
	})
}

func TestNewCubieDerivesPieceType(t *testing.T) {
	if got := cornerCubie().Type(); got != PieceCorner {
		t.Errorf("three colors should make a corner, got %v", got)
	}

	edge := NewCubie(Position{X: 1, Y: 1, Z: 0}, map[Face]Color{FaceU: White, FaceR: Red})
	if got := edge.Type(); got != PieceEdge {
		t.Errorf("two colors should make an edge, got %v", got)
	}

	center := NewCubie(Position{X: 0, Y: 1, Z: 0}, map[Face]Color{FaceU: White})
	if got := center.Type(); got != PieceCenter {
		t.Errorf("one color should make a center, got %v", got)
	}
}

func TestNewCubieStartsSolved(t *testing.T) {
	c := cornerCubie()
	if !c.IsSolved() {
		t.Error("fresh cubie should be solved")
	}
	if c.CurrentPosition() != c.OriginalPosition() {
		t.Error("fresh cubie should sit at its home position")
	}
}

func TestVisibleColorsIdentity(t *testing.T) {
	visible := cornerCubie().VisibleColors()
	if visible[FaceU] != White || visible[FaceR] != Red || visible[FaceF] != Green {
		t.Errorf("identity orientation should show solved colors, got %v", visible)
	}
}

func TestVisibleColorsAfterRotation(t *testing.T) {
	c := cornerCubie()
	c.orientation = Orientation{}.RotatedAround(AxisX, 90)

	// X90 moves the U sticker to F and the F sticker to D.
	visible := c.VisibleColors()
	if visible[FaceF] != White {
		t.Errorf("U sticker should show on F, got %v", visible[FaceF])
	}
	if visible[FaceD] != Green {
		t.Errorf("F sticker should show on D, got %v", visible[FaceD])
	}
	if visible[FaceR] != Red {
		t.Errorf("R sticker should stay on R, got %v", visible[FaceR])
	}
}

func TestCubieEqual(t *testing.T) {
	a, b := cornerCubie(), cornerCubie()
	if !a.Equal(b) {
		t.Error("identical cubies should be equal")
	}

	b.current = Position{X: 1, Y: 1, Z: -1}
	if a.Equal(b) {
		t.Error("cubies at different positions should not be equal")
	}

	c := cornerCubie()
	c.orientation = Orientation{}.RotatedAround(AxisZ, 180)
	if a.Equal(c) {
		t.Error("cubies with different orientations should not be equal")
	}

	if a.Equal(nil) {
		t.Error("no cubie equals nil")
	}
}

func TestCubieCloneIsIndependent(t *testing.T) {
	a := cornerCubie()
	clone := a.Clone()
	if !a.Equal(clone) {
		t.Fatal("clone should start equal")
	}

	clone.current = Position{X: -1, Y: 1, Z: 1}
	clone.colors[FaceU] = Yellow
	if a.CurrentPosition() != (Position{X: 1, Y: 1, Z: 1}) {
		t.Error("mutating the clone moved the original")
	}
	if a.colors[FaceU] != White {
		t.Error("mutating the clone's colors changed the original")
	}
}

func TestCubieString(t *testing.T) {
	if got := cornerCubie().String(); got != "corner at (1, 1, 1)" {
		t.Errorf("got %q", got)
	}
}
