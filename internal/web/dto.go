package web

import (
	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/solver"
)

// CubeState is the wire representation of a cube: its size, progress
// counters and the six face grids as hex color strings keyed by face
// letter.
type CubeState struct {
	Size       int                   `json:"size"`
	IsSolved   bool                  `json:"is_solved"`
	MoveCount  int                   `json:"move_count"`
	FaceColors map[string][][]string `json:"face_colors"`
}

// snapshotState copies a cube's visible state into plain wire values;
// nothing of the cube itself escapes the manager's lock.
func snapshotState(cube *cubesim.Cube) CubeState {
	faceColors := make(map[string][][]string, len(cubesim.OuterFaces))
	for face, grid := range cube.AllFaceColors() {
		rows := make([][]string, len(grid))
		for i, row := range grid {
			cells := make([]string, len(row))
			for j, color := range row {
				cells[j] = color.Hex()
			}
			rows[i] = cells
		}
		faceColors[string(face)] = rows
	}

	return CubeState{
		Size:       cube.Size(),
		IsSolved:   cube.IsSolved(),
		MoveCount:  cube.MoveCount(),
		FaceColors: faceColors,
	}
}

// SolutionStep is one phase of a solve on the wire.
type SolutionStep struct {
	Phase       string `json:"phase"`
	Description string `json:"description"`
	Moves       string `json:"moves"`
	Explanation string `json:"explanation"`
	MoveCount   int    `json:"move_count"`
}

// SolutionSummary aggregates a solve's statistics.
type SolutionSummary struct {
	Solver         string         `json:"solver"`
	TotalSteps     int            `json:"total_steps"`
	TotalMoves     int            `json:"total_moves"`
	PhaseBreakdown map[string]int `json:"phase_breakdown"`
}

// Solution is the response of the solve endpoint.
type Solution struct {
	Method     string          `json:"method"`
	Steps      []SolutionStep  `json:"steps"`
	TotalMoves int             `json:"total_moves"`
	SolveTime  float64         `json:"solve_time"`
	Summary    SolutionSummary `json:"summary"`
}

// buildSolution converts solver steps into the wire shape.
func buildSolution(method, solverName string, steps []solver.Step, solveTime float64) Solution {
	wireSteps := make([]SolutionStep, len(steps))
	for i, step := range steps {
		wireSteps[i] = SolutionStep{
			Phase:       string(step.Phase),
			Description: step.Description,
			Moves:       step.Moves.Notation(),
			Explanation: step.Explanation,
			MoveCount:   len(step.Moves),
		}
	}

	summary := solver.Summarize(solverName, steps)
	breakdown := make(map[string]int, len(summary.PhaseMoves))
	for phase, moves := range summary.PhaseMoves {
		breakdown[string(phase)] = moves
	}

	return Solution{
		Method:     method,
		Steps:      wireSteps,
		TotalMoves: summary.Moves,
		SolveTime:  solveTime,
		Summary: SolutionSummary{
			Solver:         solverName,
			TotalSteps:     summary.Steps,
			TotalMoves:     summary.Moves,
			PhaseBreakdown: breakdown,
		},
	}
}

// Request bodies.

type moveRequest struct {
	Moves   string `json:"moves"`
	Animate bool   `json:"animate"`
}

type scrambleRequest struct {
	NumMoves int `json:"num_moves"`
}

type solveRequest struct {
	Method string `json:"method"`
}

// Broadcast events; one type per message so each carries exactly the
// fields its consumers expect.

type moveEvent struct {
	Type         string    `json:"type"`
	CubeID       string    `json:"cube_id"`
	State        CubeState `json:"state"`
	MovesApplied string    `json:"moves_applied"`
	Animate      bool      `json:"animate"`
}

type scrambleEvent struct {
	Type          string    `json:"type"`
	CubeID        string    `json:"cube_id"`
	State         CubeState `json:"state"`
	ScrambleMoves int       `json:"scramble_moves"`
}

type resetEvent struct {
	Type   string    `json:"type"`
	CubeID string    `json:"cube_id"`
	State  CubeState `json:"state"`
}

type solutionEvent struct {
	Type     string   `json:"type"`
	CubeID   string   `json:"cube_id"`
	Solution Solution `json:"solution"`
}

// wsReply answers client messages on the socket itself.
type wsReply struct {
	Type  string     `json:"type"`
	State *CubeState `json:"state,omitempty"`
}
