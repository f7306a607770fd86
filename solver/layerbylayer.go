package solver

import (
	"fmt"

	"github.com/cubesim/cubesim"
)

// Attempt caps for the layer-by-layer phases. Every phase applies a
// fixed algorithm and re-checks the state, so the caps bound how long a
// phase may churn before it gives up.
const (
	lblCrossAttempts    = 20
	lblCornerAttempts   = 20
	lblMiddleAttempts   = 30
	lblTopCrossAttempts = 3
	lblOrientAttempts   = 6
	lblPermuteAttempts  = 12
)

// middleInsert sends an upper-layer edge into the middle layer on the
// right-hand side.
var middleInsert = mustParse("R U R' U' F' U' F")

// LayerByLayer is the beginner method: bottom cross, first layer
// corners, middle layer edges, then orient and permute the last layer.
type LayerByLayer struct {
	catalog *Catalog
}

// NewLayerByLayer creates the beginner-method solver.
func NewLayerByLayer() *LayerByLayer {
	return &LayerByLayer{catalog: NewCatalog()}
}

// Name returns the method name.
func (s *LayerByLayer) Name() string {
	return "Layer-by-Layer (Beginner's Method)"
}

// CanSolve reports whether the cube is a 3x3x3; the fixed algorithms
// the method applies are specific to that size.
func (s *LayerByLayer) CanSolve(cube *cubesim.Cube) bool {
	return cube != nil && cube.Size() == 3
}

// Solve runs the six phases on a clone of the cube. Phases that find
// nothing to do contribute no step. When a phase runs out of attempts
// the steps completed so far are returned together with an error
// wrapping ErrNoSolution.
func (s *LayerByLayer) Solve(cube *cubesim.Cube) ([]Step, error) {
	if cube == nil {
		return nil, fmt.Errorf("%w: no cube", ErrUnsupportedCube)
	}
	if cube.Size() != 3 {
		return nil, fmt.Errorf("%w: layer-by-layer handles 3x3x3 only, got %dx%dx%d",
			ErrUnsupportedCube, cube.Size(), cube.Size(), cube.Size())
	}

	work := cube.Clone()
	phases := []func(*cubesim.Cube) (*Step, error){
		s.bottomCross,
		s.firstLayer,
		s.middleLayer,
		s.topCross,
		s.orientTop,
		s.permuteTop,
	}

	var steps []Step
	for _, phase := range phases {
		step, err := phase(work)
		if err != nil {
			return steps, err
		}
		if step != nil {
			steps = append(steps, *step)
		}
	}
	return steps, nil
}

// bottomCross forms the cross on the bottom face: the four bottom edge
// stickers must match the bottom center. The beginner cross sequence
// is applied move by move, fishing until the cross appears.
func (s *LayerByLayer) bottomCross(work *cubesim.Cube) (*Step, error) {
	if hasCross(work, cubesim.FaceD) {
		return nil, nil
	}

	var moves cubesim.MoveSequence
	for attempt := 0; attempt < lblCrossAttempts && !hasCross(work, cubesim.FaceD); attempt++ {
		for _, m := range cubesim.BeginnersCross {
			_ = work.Apply(m) // predefined move, cannot fail
			moves = append(moves, m)
			if hasCross(work, cubesim.FaceD) {
				break
			}
		}
	}
	if !hasCross(work, cubesim.FaceD) {
		return nil, fmt.Errorf("%w: no bottom cross after %d rounds of %s",
			ErrNoSolution, lblCrossAttempts, cubesim.BeginnersCross)
	}

	return &Step{
		Phase:       PhaseCross,
		Description: "Form the bottom cross",
		Moves:       moves,
		Explanation: "Bring the four bottom-color edges home so each matches the bottom center",
	}, nil
}

// firstLayer completes the bottom face by cycling corners with the sexy
// move until every bottom sticker matches the center.
func (s *LayerByLayer) firstLayer(work *cubesim.Cube) (*Step, error) {
	if faceUniform(work, cubesim.FaceD) {
		return nil, nil
	}

	sexy := s.catalog.mustLookup(CategoryCommon, "Sexy Move").Moves
	var moves cubesim.MoveSequence
	for attempt := 0; attempt < lblCornerAttempts; attempt++ {
		if faceUniform(work, cubesim.FaceD) {
			break
		}
		moves = applySequence(work, sexy, moves)
	}
	if !faceUniform(work, cubesim.FaceD) {
		return nil, fmt.Errorf("%w: first layer incomplete after %d rounds of %s",
			ErrNoSolution, lblCornerAttempts, sexy)
	}

	return &Step{
		Phase:       PhaseLayer1,
		Description: "Complete the first layer",
		Moves:       moves,
		Explanation: "Cycle the bottom-layer corners into place to finish the bottom face",
	}, nil
}

// middleLayer fills the four middle-layer edge slots with the
// right-hand edge insert.
func (s *LayerByLayer) middleLayer(work *cubesim.Cube) (*Step, error) {
	if middleLayerSolved(work) {
		return nil, nil
	}

	var moves cubesim.MoveSequence
	for attempt := 0; attempt < lblMiddleAttempts; attempt++ {
		if middleLayerSolved(work) {
			break
		}
		moves = applySequence(work, middleInsert, moves)
	}
	if !middleLayerSolved(work) {
		return nil, fmt.Errorf("%w: middle layer incomplete after %d edge inserts",
			ErrNoSolution, lblMiddleAttempts)
	}

	return &Step{
		Phase:       PhaseLayer2,
		Description: "Solve the middle layer edges",
		Moves:       moves,
		Explanation: "Insert the four middle-layer edges so they match their side centers",
	}, nil
}

// topCross forms the cross on the top face, the first half of orienting
// the last layer. Repeating the line algorithm walks the edges from dot
// to line to cross.
func (s *LayerByLayer) topCross(work *cubesim.Cube) (*Step, error) {
	if hasCross(work, cubesim.FaceU) {
		return nil, nil
	}

	line := s.catalog.mustLookup(CategoryOLL, "OLL 45").Moves
	var moves cubesim.MoveSequence
	for attempt := 0; attempt < lblTopCrossAttempts; attempt++ {
		if hasCross(work, cubesim.FaceU) {
			break
		}
		moves = applySequence(work, line, moves)
	}
	if !hasCross(work, cubesim.FaceU) {
		return nil, fmt.Errorf("%w: no top cross after %d rounds of %s",
			ErrNoSolution, lblTopCrossAttempts, line)
	}

	return &Step{
		Phase:       PhaseOLL,
		Description: "Form the top cross",
		Moves:       moves,
		Explanation: "Orient the top-layer edges into a cross on the top face",
	}, nil
}

// orientTop finishes orienting the last layer: every top sticker must
// match the top center. Each attempt applies Sune and then turns the
// top face to present the corners differently.
func (s *LayerByLayer) orientTop(work *cubesim.Cube) (*Step, error) {
	if faceUniform(work, cubesim.FaceU) {
		return nil, nil
	}

	sune := s.catalog.mustLookup(CategoryCommon, "Sune").Moves
	var moves cubesim.MoveSequence
	for attempt := 0; attempt < lblOrientAttempts; attempt++ {
		if faceUniform(work, cubesim.FaceU) {
			break
		}
		moves = applySequence(work, sune, moves)
		if faceUniform(work, cubesim.FaceU) {
			break
		}
		// Turn the top face so the next Sune hits a different corner
		// arrangement.
		_ = work.Apply(cubesim.U)
		moves = append(moves, cubesim.U)
	}
	if !faceUniform(work, cubesim.FaceU) {
		return nil, fmt.Errorf("%w: last layer not oriented after %d rounds of %s",
			ErrNoSolution, lblOrientAttempts, sune)
	}

	return &Step{
		Phase:       PhaseOLL,
		Description: "Orient the last layer",
		Moves:       moves,
		Explanation: "Twist the top-layer corners until the whole top face shows the top color",
	}, nil
}

// permuteTop cycles the last-layer pieces with the T permutation until
// the cube is solved, turning the top face between attempts to present
// a new arrangement.
func (s *LayerByLayer) permuteTop(work *cubesim.Cube) (*Step, error) {
	if work.IsSolved() {
		return nil, nil
	}

	tPerm := s.catalog.mustLookup(CategoryPLL, "T-Perm").Moves
	var moves cubesim.MoveSequence
	for attempt := 0; attempt < lblPermuteAttempts; attempt++ {
		if work.IsSolved() {
			break
		}
		moves = applySequence(work, tPerm, moves)
		if work.IsSolved() {
			break
		}
		// Checked again before the turn: a trailing U on a solved cube
		// would unsolve it.
		_ = work.Apply(cubesim.U)
		moves = append(moves, cubesim.U)
	}
	if !work.IsSolved() {
		return nil, fmt.Errorf("%w: last layer not permuted after %d rounds of %s",
			ErrNoSolution, lblPermuteAttempts, tPerm)
	}

	return &Step{
		Phase:       PhasePLL,
		Description: "Permute the last layer",
		Moves:       moves,
		Explanation: "Move the last-layer pieces to their home positions to finish the solve",
	}, nil
}
