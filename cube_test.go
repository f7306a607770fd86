package cubesim

import (
	"errors"
	"strings"
	"testing"
)

func mustCube(t *testing.T, size int) *Cube {
	t.Helper()
	c, err := NewCube(size)
	if err != nil {
		t.Fatalf("failed to build %dx%d cube: %v", size, size, err)
	}
	return c
}

func TestNewCubeIsSolved(t *testing.T) {
	c := mustCube(t, 3)
	if !c.IsSolved() {
		t.Error("new cube should be solved")
	}
	if c.Size() != 3 {
		t.Errorf("got size %d, want 3", c.Size())
	}
	if c.MoveCount() != 0 {
		t.Errorf("got %d moves, want 0", c.MoveCount())
	}
}

func TestNewCubeRejectsInvalidSize(t *testing.T) {
	if _, err := NewCube(1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("got %v, want ErrInvalidSize", err)
	}
	if _, err := NewCube(11); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("got %v, want ErrInvalidSize", err)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.Apply(R); err != nil {
		t.Fatal(err)
	}
	if c.IsSolved() {
		t.Error("cube should not be solved after R")
	}
	if c.MoveCount() != 1 {
		t.Errorf("got %d moves, want 1", c.MoveCount())
	}
}

func TestFourTurnsReturnToSolved(t *testing.T) {
	faces := []string{"R", "L", "U", "D", "F", "B", "M", "E", "S", "x", "y", "z", "Rw"}
	for _, notation := range faces {
		c := mustCube(t, 3)
		for i := 0; i < 4; i++ {
			if err := c.ApplyNotation(notation); err != nil {
				t.Fatal(err)
			}
		}
		if !c.IsSolved() {
			t.Errorf("%s applied four times should return to solved", notation)
		}
	}
}

func TestMoveThenInverseIsIdentity(t *testing.T) {
	moves := []Move{R, RPrime, U2, LPrime, F, B2, M, EPrime, S, X, YPrime, Z}
	for _, m := range moves {
		c := mustCube(t, 3)
		if err := c.Apply(m, m.Inverse()); err != nil {
			t.Fatal(err)
		}
		if !c.IsSolved() {
			t.Errorf("%s followed by %s should return to solved", m, m.Inverse())
		}
	}
}

func TestSexyMoveHasOrderSix(t *testing.T) {
	c := mustCube(t, 3)
	for i := 0; i < 6; i++ {
		if err := c.ApplySequence(SexyMove); err != nil {
			t.Fatal(err)
		}
		if i < 5 && c.IsSolved() {
			t.Fatalf("cube already solved after %d repetitions", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("six sexy moves should return to solved")
	}
}

func TestApplyNotationSequence(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatal(err)
	}
	if got := c.History().Notation(); got != "R U R' U'" {
		t.Errorf("got history %q", got)
	}
}

func TestApplyNotationRejectsBadInput(t *testing.T) {
	c := mustCube(t, 3)
	err := c.ApplyNotation("R U q")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("got %v, want ErrInvalidNotation", err)
	}
	if !c.IsSolved() || c.MoveCount() != 0 {
		t.Error("nothing should be applied when parsing fails")
	}
}

func TestWholeCubeRotationMovesAllFaces(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("z"); err != nil {
		t.Fatal(err)
	}

	// z carries the top face onto the left and the right face on top.
	checks := map[Face]Color{FaceL: White, FaceU: Red}
	for face, want := range checks {
		grid, err := c.FaceColors(face)
		if err != nil {
			t.Fatal(err)
		}
		for j, row := range grid {
			for i, color := range row {
				if color != want {
					t.Errorf("after z, face %s cell (%d,%d): got %v, want %v", face, j, i, color, want)
				}
			}
		}
	}
}

func TestUndoRestoresPreviousState(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.Apply(R); err != nil {
		t.Fatal(err)
	}

	undone, ok := c.Undo()
	if !ok {
		t.Fatal("undo should succeed with one move in history")
	}
	if undone != R {
		t.Errorf("got %s, want R", undone)
	}
	if !c.IsSolved() {
		t.Error("undoing the only move should restore the solved state")
	}
	if c.MoveCount() != 0 {
		t.Errorf("history should be empty after undo, got %d moves", c.MoveCount())
	}
}

func TestUndoOnEmptyHistory(t *testing.T) {
	c := mustCube(t, 3)
	if _, ok := c.Undo(); ok {
		t.Error("undo on a fresh cube should report false")
	}
}

func TestUndoIsIdempotentOnState(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("R U F' D2"); err != nil {
		t.Fatal(err)
	}
	want := c.Clone()

	if err := c.Apply(L2); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Undo(); !ok {
		t.Fatal("undo should succeed")
	}
	if !c.Equal(want) {
		t.Error("undo should restore the exact prior state")
	}
}

func TestUndoMovesReturnsMostRecentFirst(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("R U F"); err != nil {
		t.Fatal(err)
	}

	undone := c.UndoMoves(2)
	if got := undone.Notation(); got != "F U" {
		t.Errorf("got %q, want %q", got, "F U")
	}
	if c.MoveCount() != 1 {
		t.Errorf("one move should remain, got %d", c.MoveCount())
	}

	// Asking for more than the history holds undoes what is there.
	rest := c.UndoMoves(10)
	if got := rest.Notation(); got != "R" {
		t.Errorf("got %q, want %q", got, "R")
	}
	if !c.IsSolved() {
		t.Error("undoing everything should restore the solved state")
	}
}

func TestRedoReappliesUndoneMove(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("R U"); err != nil {
		t.Fatal(err)
	}
	want := c.Clone()

	if _, ok := c.Undo(); !ok {
		t.Fatal("undo should succeed")
	}
	m, ok := c.Redo()
	if !ok {
		t.Fatal("redo should succeed after an undo")
	}
	if m != U {
		t.Errorf("got %s, want U", m)
	}
	if !c.Equal(want) {
		t.Error("redo should restore the pre-undo state")
	}
	if got := c.History().Notation(); got != "R U" {
		t.Errorf("got history %q", got)
	}
}

func TestRedoClearedByFreshMove(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("R U"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Undo(); !ok {
		t.Fatal("undo should succeed")
	}
	if err := c.Apply(F); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Redo(); ok {
		t.Error("a fresh move should discard the redo stack")
	}
}

func TestRedoOnEmptyStack(t *testing.T) {
	c := mustCube(t, 3)
	if _, ok := c.Redo(); ok {
		t.Error("redo with nothing undone should report false")
	}
}

func TestPieceCountsSurviveMoves(t *testing.T) {
	cases := []struct {
		size int
		want PieceCount
	}{
		{2, PieceCount{Corners: 8, Edges: 0, Centers: 0, Total: 8}},
		{3, PieceCount{Corners: 8, Edges: 12, Centers: 6, Total: 26}},
		{4, PieceCount{Corners: 8, Edges: 24, Centers: 24, Total: 56}},
	}
	for _, c := range cases {
		cube := mustCube(t, c.size)
		if _, err := cube.Scramble(15, WithSeed(9)); err != nil {
			t.Fatal(err)
		}
		if got := cube.PieceCount(); got != c.want {
			t.Errorf("size %d: got %+v, want %+v", c.size, got, c.want)
		}
		if err := cube.Validate(); err != nil {
			t.Errorf("size %d: %v", c.size, err)
		}
	}
}

func TestAllFaceColors(t *testing.T) {
	c := mustCube(t, 4)
	grids := c.AllFaceColors()
	if len(grids) != 6 {
		t.Fatalf("got %d faces, want 6", len(grids))
	}
	for _, face := range OuterFaces {
		grid, ok := grids[face]
		if !ok {
			t.Fatalf("missing face %s", face)
		}
		if len(grid) != 4 || len(grid[0]) != 4 {
			t.Errorf("face %s: got %dx%d grid", face, len(grid), len(grid[0]))
		}
	}
}

func TestResetRestoresSolvedAndClearsHistory(t *testing.T) {
	c := mustCube(t, 3)
	if _, err := c.Scramble(10, WithSeed(5)); err != nil {
		t.Fatal(err)
	}
	c.Reset()

	if !c.IsSolved() {
		t.Error("reset should restore the solved state")
	}
	if c.MoveCount() != 0 {
		t.Errorf("reset should clear the history, got %d moves", c.MoveCount())
	}
	if _, ok := c.Undo(); ok {
		t.Error("nothing should be undoable after reset")
	}
}

func TestCubeCloneIsIndependent(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("R U"); err != nil {
		t.Fatal(err)
	}

	clone := c.Clone()
	if !c.Equal(clone) {
		t.Fatal("clone should start equal")
	}
	if got := clone.History().Notation(); got != "R U" {
		t.Errorf("clone history %q", got)
	}

	if err := clone.Apply(F); err != nil {
		t.Fatal(err)
	}
	if c.Equal(clone) {
		t.Error("cubes should diverge after the clone moves")
	}
	if c.MoveCount() != 2 {
		t.Errorf("moving the clone changed the original history: %d", c.MoveCount())
	}
}

func TestCubeEqualIgnoresHistory(t *testing.T) {
	a, b := mustCube(t, 3), mustCube(t, 3)
	if err := a.ApplyNotation("R R'"); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("cubes in the same state should be equal regardless of history")
	}
}

func TestCubeInfo(t *testing.T) {
	c := mustCube(t, 3)
	info := c.Info()
	if info.Size != 3 || !info.Solved || info.MoveCount != 0 {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Pieces.Total != 26 {
		t.Errorf("got %d pieces, want 26", info.Pieces.Total)
	}

	if _, err := c.Scramble(8, WithSeed(2)); err != nil {
		t.Fatal(err)
	}
	info = c.Info()
	if info.Solved || info.MoveCount != 8 || info.Scramble == "" {
		t.Errorf("unexpected info after scramble %+v", info)
	}
}

func TestCubeString(t *testing.T) {
	c := mustCube(t, 3)
	if got := c.String(); got != "3x3x3 cube (solved, 0 moves)" {
		t.Errorf("got %q", got)
	}
	if err := c.Apply(R); err != nil {
		t.Fatal(err)
	}
	got := c.String()
	if !strings.Contains(got, "scrambled") || !strings.Contains(got, "1 move") {
		t.Errorf("got %q", got)
	}
}

func TestHistoryIsACopy(t *testing.T) {
	c := mustCube(t, 3)
	if err := c.ApplyNotation("R U"); err != nil {
		t.Fatal(err)
	}
	history := c.History()
	history[0] = F
	if got := c.History().Notation(); got != "R U" {
		t.Errorf("mutating the returned history changed the cube: %q", got)
	}
}
