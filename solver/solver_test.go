package solver

import (
	"errors"
	"strings"
	"testing"

	"github.com/cubesim/cubesim"
)

var (
	_ Solver = (*LayerByLayer)(nil)
	_ Solver = (*CFOP)(nil)
)

func TestMethodsRegistry(t *testing.T) {
	methods := Methods()
	if len(methods) != 2 {
		t.Fatalf("got %d methods, want 2", len(methods))
	}
	if _, ok := methods["layer_by_layer"]; !ok {
		t.Error("layer_by_layer is not registered")
	}
	if _, ok := methods["cfop"]; !ok {
		t.Error("cfop is not registered")
	}

	names := MethodNames()
	want := []string{"cfop", "layer_by_layer"}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("names[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestByName(t *testing.T) {
	s, err := ByName("cfop")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s.Name(), "CFOP") {
		t.Errorf("cfop resolved to %q", s.Name())
	}

	s, err = ByName("  Layer_By_Layer ")
	if err != nil {
		t.Fatalf("lookup should ignore case and whitespace: %v", err)
	}
	if !strings.Contains(s.Name(), "Layer-by-Layer") {
		t.Errorf("layer_by_layer resolved to %q", s.Name())
	}

	_, err = ByName("kociemba")
	if !errors.Is(err, ErrUnknownMethod) {
		t.Fatalf("got %v, want ErrUnknownMethod", err)
	}
	if !strings.Contains(err.Error(), "cfop") {
		t.Errorf("error should list the known methods, got %q", err)
	}
}

func TestFullSolutionFlattens(t *testing.T) {
	steps := []Step{
		{Phase: PhaseCross, Moves: cubesim.MoveSequence{cubesim.R, cubesim.U}},
		{Phase: PhasePLL, Moves: cubesim.MoveSequence{cubesim.RPrime}},
	}

	all := FullSolution(steps)
	if got, want := all.Notation(), "R U R'"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if TotalMoves(steps) != 3 {
		t.Errorf("got %d total moves, want 3", TotalMoves(steps))
	}

	if len(FullSolution(nil)) != 0 {
		t.Error("no steps should flatten to no moves")
	}
}

func TestSummarize(t *testing.T) {
	steps := []Step{
		{Phase: PhaseOLL, Moves: mustParse("F R U R' U' F'")},
		{Phase: PhaseOLL, Moves: mustParse("R U R' U R U2 R'")},
		{Phase: PhasePLL, Moves: mustParse("R U R' F' R U R' U' R' F R2 U' R'")},
	}

	summary := Summarize("Layer-by-Layer (Beginner's Method)", steps)
	if summary.Solver != "Layer-by-Layer (Beginner's Method)" {
		t.Errorf("solver name %q", summary.Solver)
	}
	if summary.Steps != 3 {
		t.Errorf("got %d steps, want 3", summary.Steps)
	}
	if summary.Moves != 6+7+13 {
		t.Errorf("got %d moves, want %d", summary.Moves, 6+7+13)
	}
	if summary.PhaseMoves[PhaseOLL] != 13 {
		t.Errorf("oll moves = %d, want 13", summary.PhaseMoves[PhaseOLL])
	}
	if summary.PhaseMoves[PhasePLL] != 13 {
		t.Errorf("pll moves = %d, want 13", summary.PhaseMoves[PhasePLL])
	}
}

func TestExplain(t *testing.T) {
	empty := Explain("CFOP (Cross, F2L, OLL, PLL)", nil)
	if !strings.Contains(empty, "already solved") {
		t.Errorf("empty solve should read as already solved, got %q", empty)
	}

	steps := []Step{
		{
			Phase:       PhaseCross,
			Description: "Solve the cross",
			Moves:       mustParse("F'"),
			Explanation: "Bring the four bottom-color edges home",
		},
	}
	text := Explain("CFOP (Cross, F2L, OLL, PLL)", steps)
	for _, want := range []string{
		"CFOP (Cross, F2L, OLL, PLL) solution (1 moves):",
		"Step 1: Solve the cross",
		"Phase: cross",
		"Moves: F'",
		"Bring the four bottom-color edges home",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("explanation is missing %q:\n%s", want, text)
		}
	}
}
