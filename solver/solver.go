// Package solver implements solving strategies for the 3x3x3 cube: the
// beginner layer-by-layer method and CFOP. Both work by repeatedly
// applying fixed algorithms and re-checking the cube state, so the
// solutions they produce are long but human-followable. Neither
// searches for optimal solutions; when the bounded heuristics run out
// of attempts they give up with ErrNoSolution.
package solver

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cubesim/cubesim"
)

// Sentinel errors for the solver package.
var (
	// ErrUnsupportedCube means the solver cannot handle the given cube,
	// for example a size other than 3x3x3.
	ErrUnsupportedCube = errors.New("solver: unsupported cube")

	// ErrNoSolution means the bounded heuristics gave up before the
	// cube reached the solved state.
	ErrNoSolution = errors.New("solver: no solution found")

	// ErrUnknownMethod means no solver is registered under the
	// requested name.
	ErrUnknownMethod = errors.New("solver: unknown method")
)

// Phase identifies the stage of a solve a step belongs to.
type Phase string

const (
	PhaseCross  Phase = "cross"  // Cross on the bottom face
	PhaseLayer1 Phase = "layer1" // First layer corners
	PhaseLayer2 Phase = "layer2" // Middle layer edges
	PhaseF2L    Phase = "f2l"    // First two layers as corner-edge pairs
	PhaseOLL    Phase = "oll"    // Orient the last layer
	PhasePLL    Phase = "pll"    // Permute the last layer
)

// Step is one stage of a solution: which phase it belongs to, what it
// achieved, and the moves it took.
type Step struct {
	Phase       Phase
	Description string
	Moves       cubesim.MoveSequence
	Explanation string
}

// Solver is a solving strategy. Solve never mutates the cube it is
// given; implementations work on a clone and report the steps that
// would bring the original to the solved state.
type Solver interface {
	// Name returns the human-readable name of the method.
	Name() string

	// CanSolve reports whether this solver can handle the cube.
	CanSolve(cube *cubesim.Cube) bool

	// Solve returns the solution steps. An empty step list with a nil
	// error means the cube was already solved. When a phase runs out
	// of attempts the steps completed so far are returned together
	// with an error wrapping ErrNoSolution.
	Solve(cube *cubesim.Cube) ([]Step, error)
}

// Methods returns the built-in solvers keyed by the identifier used on
// the command line and in the API.
func Methods() map[string]Solver {
	return map[string]Solver{
		"layer_by_layer": NewLayerByLayer(),
		"cfop":           NewCFOP(),
	}
}

// MethodNames returns the registered solver identifiers, sorted.
func MethodNames() []string {
	methods := Methods()
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the solver registered under the given identifier.
func ByName(name string) (Solver, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	s, ok := Methods()[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownMethod, name, strings.Join(MethodNames(), ", "))
	}
	return s, nil
}

// FullSolution flattens the steps of a solve into one move sequence.
func FullSolution(steps []Step) cubesim.MoveSequence {
	var all cubesim.MoveSequence
	for _, step := range steps {
		all = append(all, step.Moves...)
	}
	return all
}

// TotalMoves returns the number of moves across all steps.
func TotalMoves(steps []Step) int {
	total := 0
	for _, step := range steps {
		total += len(step.Moves)
	}
	return total
}

// Summary holds the statistics of a completed solve.
type Summary struct {
	Solver     string
	Steps      int
	Moves      int
	PhaseMoves map[Phase]int
}

// Summarize computes the summary for the steps a solver returned.
func Summarize(solverName string, steps []Step) Summary {
	summary := Summary{
		Solver:     solverName,
		Steps:      len(steps),
		Moves:      TotalMoves(steps),
		PhaseMoves: make(map[Phase]int),
	}
	for _, step := range steps {
		summary.PhaseMoves[step.Phase] += len(step.Moves)
	}
	return summary
}

// applySequence applies a fixed algorithm to the work cube and appends
// its moves to the collected sequence. Catalog moves always resolve to
// a rotation axis, so Apply cannot fail here.
func applySequence(work *cubesim.Cube, alg cubesim.MoveSequence, collected cubesim.MoveSequence) cubesim.MoveSequence {
	_ = work.ApplySequence(alg)
	return append(collected, alg...)
}

// Explain formats the steps as a numbered human-readable walkthrough.
func Explain(solverName string, steps []Step) string {
	if len(steps) == 0 {
		return fmt.Sprintf("%s: nothing to do, the cube is already solved", solverName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s solution (%d moves):\n", solverName, TotalMoves(steps))
	for i, step := range steps {
		fmt.Fprintf(&b, "\nStep %d: %s\n", i+1, step.Description)
		fmt.Fprintf(&b, "  Phase: %s\n", step.Phase)
		fmt.Fprintf(&b, "  Moves: %s\n", step.Moves)
		fmt.Fprintf(&b, "  %s\n", step.Explanation)
	}
	return b.String()
}
