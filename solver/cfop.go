package solver

import (
	"fmt"

	"github.com/cubesim/cubesim"
)

// Bounds for the CFOP phases.
const (
	cfopCrossMoves     = 15 // Greedy cross search budget
	cfopPairInserts    = 4  // One insert per corner-edge pair
	cfopTopCrossRounds = 3  // Two-look OLL, first look
	cfopSuneRounds     = 6  // Two-look OLL, second look
	cfopPermuteRounds  = 4  // Top-face orientations tried per PLL algorithm
)

// crossCandidates are the face turns the greedy cross search tries, in
// preference order.
var crossCandidates = []cubesim.Move{
	cubesim.F, cubesim.R, cubesim.U, cubesim.L, cubesim.B, cubesim.D,
	cubesim.FPrime, cubesim.RPrime, cubesim.UPrime, cubesim.LPrime, cubesim.BPrime, cubesim.DPrime,
}

// CFOP is the speedcubing method: cross, F2L pairs, OLL, PLL. Case
// recognition is coarse (sticker counts and solved side rows) and each
// last-layer phase falls back to a bounded two-look routine when the
// one-look algorithm does not finish the job.
type CFOP struct {
	catalog *Catalog
}

// NewCFOP creates the CFOP solver.
func NewCFOP() *CFOP {
	return &CFOP{catalog: NewCatalog()}
}

// Name returns the method name.
func (s *CFOP) Name() string {
	return "CFOP (Cross, F2L, OLL, PLL)"
}

// CanSolve reports whether the cube is a 3x3x3.
func (s *CFOP) CanSolve(cube *cubesim.Cube) bool {
	return cube != nil && cube.Size() == 3
}

// Solve runs the four phases on a clone of the cube. Phases that find
// nothing to do contribute no step; a phase that cannot finish returns
// the steps so far together with an error wrapping ErrNoSolution.
func (s *CFOP) Solve(cube *cubesim.Cube) ([]Step, error) {
	if cube == nil {
		return nil, fmt.Errorf("%w: no cube", ErrUnsupportedCube)
	}
	if cube.Size() != 3 {
		return nil, fmt.Errorf("%w: CFOP handles 3x3x3 only, got %dx%dx%d",
			ErrUnsupportedCube, cube.Size(), cube.Size(), cube.Size())
	}

	work := cube.Clone()
	phases := []func(*cubesim.Cube) (*Step, error){
		s.cross,
		s.firstTwoLayers,
		s.orientLastLayer,
		s.permuteLastLayer,
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

// cross builds the bottom cross greedily: each round tries every face
// turn on a scratch clone and keeps the first one that brings another
// cross edge home; when nothing improves it turns the top face to
// reshuffle and tries again.
func (s *CFOP) cross(work *cubesim.Cube) (*Step, error) {
	if hasCross(work, cubesim.FaceD) {
		return nil, nil
	}

	var moves cubesim.MoveSequence
	for len(moves) < cfopCrossMoves && !hasCross(work, cubesim.FaceD) {
		current := crossEdgeCount(work, cubesim.FaceD)
		improved := false
		for _, m := range crossCandidates {
			test := work.Clone()
			_ = test.Apply(m)
			if crossEdgeCount(test, cubesim.FaceD) > current {
				_ = work.Apply(m)
				moves = append(moves, m)
				improved = true
				break
			}
		}
		if !improved {
			_ = work.Apply(cubesim.U)
			moves = append(moves, cubesim.U)
		}
	}
	if !hasCross(work, cubesim.FaceD) {
		return nil, fmt.Errorf("%w: no cross within %d moves", ErrNoSolution, cfopCrossMoves)
	}

	return &Step{
		Phase:       PhaseCross,
		Description: "Solve the cross",
		Moves:       moves,
		Explanation: "Bring the four bottom-color edges home, one greedy face turn at a time",
	}, nil
}

// firstTwoLayers pairs up corners and edges slot by slot using the
// basic catalog inserts, one insert per pair.
func (s *CFOP) firstTwoLayers(work *cubesim.Cube) (*Step, error) {
	if firstTwoLayersSolved(work) {
		return nil, nil
	}

	inserts := []cubesim.MoveSequence{
		s.catalog.mustLookup(CategoryF2L, "F2L-1").Moves,
		s.catalog.mustLookup(CategoryF2L, "F2L-2").Moves,
		s.catalog.mustLookup(CategoryF2L, "F2L-3").Moves,
	}

	var moves cubesim.MoveSequence
	for pair := 0; pair < cfopPairInserts; pair++ {
		if firstTwoLayersSolved(work) {
			break
		}
		moves = applySequence(work, inserts[pair%len(inserts)], moves)
	}
	if !firstTwoLayersSolved(work) {
		return nil, fmt.Errorf("%w: first two layers incomplete after %d pair inserts",
			ErrNoSolution, cfopPairInserts)
	}

	return &Step{
		Phase:       PhaseF2L,
		Description: "Solve the first two layers",
		Moves:       moves,
		Explanation: "Insert corner-edge pairs to finish the bottom two layers together",
	}, nil
}

// orientLastLayer makes the whole top face match its center: recognize
// the case, apply its algorithm once, and fall back to two-look OLL
// when that is not enough.
func (s *CFOP) orientLastLayer(work *cubesim.Cube) (*Step, error) {
	if faceUniform(work, cubesim.FaceU) {
		return nil, nil
	}

	caseName := recognizeOLL(work)
	var moves cubesim.MoveSequence
	if alg, ok := s.ollAlgorithm(caseName); ok {
		moves = applySequence(work, alg.Moves, moves)
	}
	if !faceUniform(work, cubesim.FaceU) {
		moves = s.twoLookOLL(work, moves)
	}
	if !faceUniform(work, cubesim.FaceU) {
		return nil, fmt.Errorf("%w: last layer not oriented (%s case)", ErrNoSolution, caseName)
	}

	return &Step{
		Phase:       PhaseOLL,
		Description: fmt.Sprintf("Orient the last layer (%s case)", caseName),
		Moves:       moves,
		Explanation: "Turn every top-layer sticker to the top color",
	}, nil
}

// permuteLastLayer finishes the solve: recognize the permutation case,
// apply its algorithm once, and fall back to cycling the T and A
// permutations through the four top-face orientations.
func (s *CFOP) permuteLastLayer(work *cubesim.Cube) (*Step, error) {
	if work.IsSolved() {
		return nil, nil
	}

	caseName := recognizePLL(work)
	var moves cubesim.MoveSequence
	if alg, ok := s.pllAlgorithm(caseName); ok {
		moves = applySequence(work, alg.Moves, moves)
	}
	if !work.IsSolved() {
		moves = s.twoLookPLL(work, moves)
	}
	if !work.IsSolved() {
		return nil, fmt.Errorf("%w: last layer not permuted (%s case)", ErrNoSolution, caseName)
	}

	return &Step{
		Phase:       PhasePLL,
		Description: fmt.Sprintf("Permute the last layer (%s case)", caseName),
		Moves:       moves,
		Explanation: "Move the last-layer pieces to their home positions to finish the solve",
	}, nil
}

// twoLookOLL is the fallback orientation routine: form the top cross
// with the line algorithm, then orient the corners with Sune.
func (s *CFOP) twoLookOLL(work *cubesim.Cube, moves cubesim.MoveSequence) cubesim.MoveSequence {
	line := s.catalog.mustLookup(CategoryOLL, "OLL 45").Moves
	for attempt := 0; attempt < cfopTopCrossRounds && !hasCross(work, cubesim.FaceU); attempt++ {
		moves = applySequence(work, line, moves)
	}

	sune := s.catalog.mustLookup(CategoryCommon, "Sune").Moves
	for attempt := 0; attempt < cfopSuneRounds; attempt++ {
		if faceUniform(work, cubesim.FaceU) {
			break
		}
		moves = applySequence(work, sune, moves)
		if faceUniform(work, cubesim.FaceU) {
			break
		}
		_ = work.Apply(cubesim.U)
		moves = append(moves, cubesim.U)
	}
	return moves
}

// twoLookPLL cycles the T and A permutations through the four top-face
// orientations until the cube is solved or the rotations run out.
func (s *CFOP) twoLookPLL(work *cubesim.Cube, moves cubesim.MoveSequence) cubesim.MoveSequence {
	algs := []cubesim.MoveSequence{
		s.catalog.mustLookup(CategoryPLL, "T-Perm").Moves,
		s.catalog.mustLookup(CategoryPLL, "A-Perm A").Moves,
	}
	for _, alg := range algs {
		for rotation := 0; rotation < cfopPermuteRounds; rotation++ {
			if work.IsSolved() {
				return moves
			}
			moves = applySequence(work, alg, moves)
			if work.IsSolved() {
				return moves
			}
			_ = work.Apply(cubesim.U)
			moves = append(moves, cubesim.U)
		}
	}
	return moves
}

// recognizeOLL classifies the top face by how many stickers already
// match its center: 9 means the layer is oriented, 5 is a cross, 3 is
// a line, anything else counts as a dot.
func recognizeOLL(cube *cubesim.Cube) string {
	switch faceMatchCount(cube, cubesim.FaceU) {
	case 9:
		return "Skip"
	case 5:
		return "Cross"
	case 3:
		return "Line"
	default:
		return "Dot"
	}
}

// recognizePLL classifies the last-layer permutation by how many side
// faces already have a solved top row.
func recognizePLL(cube *cubesim.Cube) string {
	if cube.IsSolved() {
		return "Skip"
	}
	switch solvedSideCount(cube) {
	case 0:
		return "H-Perm"
	case 1:
		return "T-Perm"
	case 2:
		return "U-Perm"
	default:
		return "A-Perm"
	}
}

// ollAlgorithm maps a recognized orientation case to its one-look
// algorithm; the Skip case has none.
func (s *CFOP) ollAlgorithm(caseName string) (Algorithm, bool) {
	switch caseName {
	case "Cross":
		return s.catalog.Lookup(CategoryOLL, "OLL 21")
	case "Line":
		return s.catalog.Lookup(CategoryOLL, "OLL 45")
	case "Dot":
		return s.catalog.Lookup(CategoryOLL, "OLL 1")
	default:
		return Algorithm{}, false
	}
}

// pllAlgorithm maps a recognized permutation case to its one-look
// algorithm; the Skip case has none.
func (s *CFOP) pllAlgorithm(caseName string) (Algorithm, bool) {
	switch caseName {
	case "T-Perm":
		return s.catalog.Lookup(CategoryPLL, "T-Perm")
	case "U-Perm":
		return s.catalog.Lookup(CategoryPLL, "U-Perm A")
	case "A-Perm":
		return s.catalog.Lookup(CategoryPLL, "A-Perm A")
	case "H-Perm":
		return s.catalog.Lookup(CategoryPLL, "H-Perm")
	default:
		return Algorithm{}, false
	}
}
