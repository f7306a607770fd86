package solver

import "github.com/cubesim/cubesim"

// Stage identifies how far a 3x3x3 cube has progressed through a
// layer-by-layer solve. Stages are ordered from StageScrambled to
// StageSolved, so they compare with < and >.
type Stage int

const (
	// StageScrambled means no layer milestone is complete.
	StageScrambled Stage = iota

	// StageBottomCross means the four bottom edges match the bottom
	// center.
	StageBottomCross

	// StageFirstLayer means the bottom face is uniform and the bottom
	// row of every side face matches its center.
	StageFirstLayer

	// StageMiddleLayer means the middle-layer edges are home too.
	StageMiddleLayer

	// StageTopCross means the top-face edge stickers additionally match
	// the top center.
	StageTopCross

	// StageTopFace means the whole top face is uniform; only the
	// last-layer permutation remains.
	StageTopFace

	// StageSolved means every piece is home.
	StageSolved
)

// String returns a short identifier for the stage.
func (s Stage) String() string {
	switch s {
	case StageScrambled:
		return "scrambled"
	case StageBottomCross:
		return "bottom_cross"
	case StageFirstLayer:
		return "first_layer"
	case StageMiddleLayer:
		return "middle_layer"
	case StageTopCross:
		return "top_cross"
	case StageTopFace:
		return "top_face"
	case StageSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the stage.
func (s Stage) DisplayName() string {
	switch s {
	case StageScrambled:
		return "Scrambled"
	case StageBottomCross:
		return "Bottom Cross"
	case StageFirstLayer:
		return "First Layer"
	case StageMiddleLayer:
		return "Middle Layer"
	case StageTopCross:
		return "Top Cross"
	case StageTopFace:
		return "Top Face Oriented"
	case StageSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// Next returns the stage a solver works toward from this one.
func (s Stage) Next() Stage {
	if s >= StageSolved {
		return StageSolved
	}
	return s + 1
}

// Progress reports which solve milestones a cube has reached. Each
// field subsumes the ones above it.
type Progress struct {
	BottomCross bool
	FirstLayer  bool
	MiddleLayer bool
	TopCross    bool
	TopFace     bool
	Solved      bool
}

// firstLayerSolved reports whether the bottom face is uniform and the
// bottom sticker row of every side face matches its center.
func firstLayerSolved(cube *cubesim.Cube) bool {
	if !faceUniform(cube, cubesim.FaceD) {
		return false
	}
	for _, face := range sideFaces {
		grid := faceGrid(cube, face)
		center := grid[1][1]
		if grid[2][0] != center || grid[2][1] != center || grid[2][2] != center {
			return false
		}
	}
	return true
}

// GetProgress checks every milestone on a 3x3x3 cube. The sticker
// predicates index a 3x3 face grid, so for any other size only the
// Solved field is meaningful.
func GetProgress(cube *cubesim.Cube) Progress {
	solved := cube.IsSolved()
	if cube.Size() != 3 {
		return Progress{
			BottomCross: solved,
			FirstLayer:  solved,
			MiddleLayer: solved,
			TopCross:    solved,
			TopFace:     solved,
			Solved:      solved,
		}
	}

	return Progress{
		BottomCross: hasCross(cube, cubesim.FaceD),
		FirstLayer:  firstLayerSolved(cube),
		MiddleLayer: firstLayerSolved(cube) && middleLayerSolved(cube),
		TopCross:    firstLayerSolved(cube) && middleLayerSolved(cube) && hasCross(cube, cubesim.FaceU),
		TopFace:     firstLayerSolved(cube) && middleLayerSolved(cube) && faceUniform(cube, cubesim.FaceU),
		Solved:      solved,
	}
}

// DetectStage returns the furthest stage the cube has reached.
func DetectStage(cube *cubesim.Cube) Stage {
	p := GetProgress(cube)
	switch {
	case p.Solved:
		return StageSolved
	case p.TopFace:
		return StageTopFace
	case p.TopCross:
		return StageTopCross
	case p.MiddleLayer:
		return StageMiddleLayer
	case p.FirstLayer:
		return StageFirstLayer
	case p.BottomCross:
		return StageBottomCross
	default:
		return StageScrambled
	}
}

// Tracker watches a cube and remembers the highest solve stage it has
// reached. The current stage can drop while an algorithm tears the cube
// apart mid-solve; the highest stage only ever advances, which makes it
// the right value for progress display.
type Tracker struct {
	cube      *cubesim.Cube
	highest   Stage
	onAdvance func(Stage)
}

// NewTracker creates a tracker around the given cube. The highest stage
// starts at whatever the cube currently shows.
func NewTracker(cube *cubesim.Cube) *Tracker {
	return &Tracker{cube: cube, highest: DetectStage(cube)}
}

// OnAdvance registers a callback that fires whenever the highest stage
// moves up, with the stage that was just reached.
func (t *Tracker) OnAdvance(fn func(Stage)) {
	t.onAdvance = fn
}

// Apply applies moves to the tracked cube and updates the high-water
// mark after each one.
func (t *Tracker) Apply(moves ...cubesim.Move) error {
	for _, m := range moves {
		if err := t.cube.Apply(m); err != nil {
			return err
		}
		t.advance()
	}
	return nil
}

// ApplyNotation parses a move sequence and applies it move by move.
func (t *Tracker) ApplyNotation(notation string) error {
	seq, err := cubesim.ParseSequence(notation)
	if err != nil {
		return err
	}
	return t.Apply(seq...)
}

// Observe re-checks the cube after it was moved outside the tracker,
// for example by an undo, and raises the high-water mark if needed.
func (t *Tracker) Observe() Stage {
	t.advance()
	return t.highest
}

func (t *Tracker) advance() {
	stage := DetectStage(t.cube)
	if stage > t.highest {
		t.highest = stage
		if t.onAdvance != nil {
			t.onAdvance(stage)
		}
	}
}

// Reset clears the high-water mark back to the cube's current stage,
// for example after the cube itself was reset or re-scrambled.
func (t *Tracker) Reset() {
	t.highest = DetectStage(t.cube)
}

// Stage returns the stage the cube shows right now. This can move
// backwards between calls.
func (t *Tracker) Stage() Stage {
	return DetectStage(t.cube)
}

// Highest returns the highest stage reached since the last Reset.
func (t *Tracker) Highest() Stage {
	return t.highest
}

// Cube returns the tracked cube.
func (t *Tracker) Cube() *cubesim.Cube {
	return t.cube
}
