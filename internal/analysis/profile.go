// Package analysis inspects move sequences: usage profiles, wasted
// motion, repeated n-grams and occurrences of known algorithms.
package analysis

import (
	"github.com/cubesim/cubesim"
)

// MovementProfile summarises which faces and turn amounts a sequence uses.
type MovementProfile struct {
	FaceCounts   map[cubesim.Face]int `json:"face_counts"`
	AmountCounts map[int]int          `json:"amount_counts"`
	MostUsedFace cubesim.Face         `json:"most_used_face"`
	Transitions  map[string]int       `json:"transitions"` // e.g. "RU" -> count
}

// AnalyzeMovement counts face and amount usage plus two-move face
// transitions.
func AnalyzeMovement(moves []cubesim.Move) *MovementProfile {
	p := &MovementProfile{
		FaceCounts:   make(map[cubesim.Face]int),
		AmountCounts: make(map[int]int),
		Transitions:  make(map[string]int),
	}

	for i, m := range moves {
		p.FaceCounts[m.Face]++
		p.AmountCounts[m.Amount]++
		if i > 0 {
			p.Transitions[string(moves[i-1].Face)+string(m.Face)]++
		}
	}

	best := 0
	for face, count := range p.FaceCounts {
		if count > best || (count == best && face < p.MostUsedFace) {
			best = count
			p.MostUsedFace = face
		}
	}
	return p
}

// EfficiencyReport compares a sequence against its optimized form.
type EfficiencyReport struct {
	OriginalMoves  int     `json:"original_moves"`
	OptimizedMoves int     `json:"optimized_moves"`
	Efficiency     float64 `json:"efficiency"`
	WastedMoves    int     `json:"wasted_moves"`
}

// AnalyzeEfficiency measures how much shorter a sequence becomes after
// merging and cancelling adjacent same-layer turns.
func AnalyzeEfficiency(seq cubesim.MoveSequence) EfficiencyReport {
	optimized := seq.Optimize()
	r := EfficiencyReport{
		OriginalMoves:  len(seq),
		OptimizedMoves: len(optimized),
		WastedMoves:    len(seq) - len(optimized),
		Efficiency:     1,
	}
	if len(seq) > 0 {
		r.Efficiency = float64(len(optimized)) / float64(len(seq))
	}
	return r
}

// Cancellation is a move immediately undone by the next one.
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
}

// MergeOpportunity is a pair of adjacent same-layer moves that could be
// a single turn.
type MergeOpportunity struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
	Merged string `json:"merged"`
}

// BackAndForth is an alternating two-move pattern such as R U R U R U.
type BackAndForth struct {
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
}

// RepetitionReport collects wasted-motion findings for a sequence.
type RepetitionReport struct {
	Cancellations      []Cancellation     `json:"cancellations"`
	MergeOpportunities []MergeOpportunity `json:"merge_opportunities"`
	BackAndForth       []BackAndForth     `json:"back_and_forth"`
	TotalWastedMoves   int                `json:"total_wasted_moves"`
}

// AnalyzeRepetitions scans a sequence for immediate cancellations,
// mergeable pairs and alternating patterns.
func AnalyzeRepetitions(moves []cubesim.Move) *RepetitionReport {
	report := &RepetitionReport{
		Cancellations:      []Cancellation{},
		MergeOpportunities: []MergeOpportunity{},
		BackAndForth:       []BackAndForth{},
	}

	for i := 0; i+1 < len(moves); i++ {
		m1, m2 := moves[i], moves[i+1]
		if !sameLayer(m1, m2) {
			continue
		}

		if (m1.Amount+m2.Amount)%4 == 0 {
			report.Cancellations = append(report.Cancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
			})
			report.TotalWastedMoves += 2
			continue
		}

		merged := m1
		merged.Amount = (m1.Amount + m2.Amount) % 4
		report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
			Index1: i,
			Index2: i + 1,
			Move1:  m1.Notation(),
			Move2:  m2.Notation(),
			Merged: merged.Notation(),
		})
		report.TotalWastedMoves++
	}

	report.BackAndForth = findBackAndForth(moves)
	return report
}

// sameLayer reports whether two moves turn the same physical layers,
// matching the merge rule the sequence optimizer uses.
func sameLayer(a, b cubesim.Move) bool {
	return a.Face == b.Face && a.Kind == b.Kind && a.Layers == b.Layers
}

// findBackAndForth finds two-move patterns repeated at least three
// times in a row.
func findBackAndForth(moves []cubesim.Move) []BackAndForth {
	patterns := []BackAndForth{}

	i := 0
	for i+3 < len(moves) {
		a, b := moves[i], moves[i+1]

		count := 1
		j := i + 2
		for j+1 < len(moves) && moves[j] == a && moves[j+1] == b {
			count++
			j += 2
		}

		if count >= 3 {
			patterns = append(patterns, BackAndForth{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.Notation(), b.Notation()},
				Count:      count,
			})
			i = j
		} else {
			i++
		}
	}
	return patterns
}

// Report bundles every analysis over a single move sequence.
type Report struct {
	MoveCount  int               `json:"move_count"`
	Movement   *MovementProfile  `json:"movement"`
	Efficiency EfficiencyReport  `json:"efficiency"`
	Repetition *RepetitionReport `json:"repetition"`
	NGrams     *NGramReport      `json:"ngrams,omitempty"`
	Algorithms *AlgorithmReport  `json:"algorithms,omitempty"`
}

// Analyze runs the full battery over a sequence with default settings:
// n-grams of length 3 to 8 with the top five per length, and detection
// against the standard algorithm catalog.
func Analyze(seq cubesim.MoveSequence) *Report {
	return &Report{
		MoveCount:  len(seq),
		Movement:   AnalyzeMovement(seq),
		Efficiency: AnalyzeEfficiency(seq),
		Repetition: AnalyzeRepetitions(seq),
		NGrams:     MineNGrams(seq, 3, 8, 5),
		Algorithms: DetectAlgorithms(seq, nil),
	}
}
