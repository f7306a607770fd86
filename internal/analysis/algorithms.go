package analysis

import (
	"sort"

	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/solver"
)

// AlgorithmMatch locates a named algorithm inside a longer sequence.
type AlgorithmMatch struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// AlgorithmReport summarises which known algorithms a sequence uses.
type AlgorithmReport struct {
	Matches        []AlgorithmMatch `json:"matches"`
	Counts         map[string]int   `json:"counts"`
	MatchedMoves   int              `json:"matched_moves"`
	UnmatchedMoves int              `json:"unmatched_moves"`
}

// DetectAlgorithms scans a sequence for occurrences of the given
// algorithms. Longer algorithms are tried first so a trigger embedded
// in a full case does not hide it, and matches never overlap. Passing
// nil scans against the whole standard catalog.
func DetectAlgorithms(moves []cubesim.Move, algorithms []solver.Algorithm) *AlgorithmReport {
	if algorithms == nil {
		algorithms = catalogAlgorithms()
	}
	candidates := append([]solver.Algorithm(nil), algorithms...)
	sort.SliceStable(candidates, func(i, j int) bool {
		if len(candidates[i].Moves) != len(candidates[j].Moves) {
			return len(candidates[i].Moves) > len(candidates[j].Moves)
		}
		return candidates[i].Name < candidates[j].Name
	})

	report := &AlgorithmReport{
		Matches: []AlgorithmMatch{},
		Counts:  make(map[string]int),
	}
	matched := make([]bool, len(moves))

	for i := 0; i < len(moves); i++ {
		if matched[i] {
			continue
		}
		for _, alg := range candidates {
			if len(alg.Moves) == 0 || !matchesAt(moves, i, alg.Moves) {
				continue
			}

			end := i + len(alg.Moves) - 1
			report.Matches = append(report.Matches, AlgorithmMatch{
				Name:       alg.Name,
				Category:   string(alg.Category),
				StartIndex: i,
				EndIndex:   end,
			})
			report.Counts[alg.Name]++
			for j := i; j <= end; j++ {
				matched[j] = true
			}
			i = end
			break
		}
	}

	for _, m := range matched {
		if m {
			report.MatchedMoves++
		} else {
			report.UnmatchedMoves++
		}
	}
	return report
}

func matchesAt(moves []cubesim.Move, start int, alg cubesim.MoveSequence) bool {
	if start+len(alg) > len(moves) {
		return false
	}
	for i, want := range alg {
		if moves[start+i] != want {
			return false
		}
	}
	return true
}

func catalogAlgorithms() []solver.Algorithm {
	catalog := solver.NewCatalog()
	var all []solver.Algorithm
	for _, category := range catalog.Categories() {
		all = append(all, catalog.Category(category)...)
	}
	return all
}
