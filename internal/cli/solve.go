package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/internal/analysis"
	"github.com/cubesim/cubesim/internal/storage"
	"github.com/cubesim/cubesim/solver"
)

var (
	solveMethod   string
	solveScramble string
	solveMoves    int
	solveSeed     int64
	solveSize     int
	solveSave     bool
	solveAnalyze  bool
	solveExplain  bool
	solveJSON     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and solve it",
	Long: `Scramble a cube (randomly, or with --scramble NOTATION) and solve it
with the chosen method, printing the solution step by step.

Methods:
  layer_by_layer - the beginner method, one layer at a time
  cfop           - cross, F2L pairs, OLL, PLL

Use --analyze for a breakdown of the solution sequence, --save to
record the attempt in the database, --json for machine-readable
output.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveMethod, "method", "layer_by_layer", "Solving method (layer_by_layer, cfop)")
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble notation (default: random scramble)")
	solveCmd.Flags().IntVar(&solveMoves, "moves", 25, "Random scramble length")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for a reproducible scramble")
	solveCmd.Flags().IntVar(&solveSize, "size", 3, "Cube size (solvers support 3)")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Store the attempt in the database")
	solveCmd.Flags().BoolVar(&solveAnalyze, "analyze", false, "Analyze the solution sequence")
	solveCmd.Flags().BoolVar(&solveExplain, "explain", false, "Print the full step-by-step walkthrough")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Emit JSON instead of text")
}

// solveResult is the JSON shape of a solve attempt.
type solveResult struct {
	Method     string           `json:"method"`
	CubeSize   int              `json:"cube_size"`
	Scramble   string           `json:"scramble"`
	Steps      []solveStep      `json:"steps"`
	Solution   string           `json:"solution"`
	MoveCount  int              `json:"move_count"`
	Solved     bool             `json:"solved"`
	DurationMs int64            `json:"duration_ms"`
	Analysis   *analysis.Report `json:"analysis,omitempty"`
}

type solveStep struct {
	Phase       string `json:"phase"`
	Description string `json:"description"`
	Moves       string `json:"moves"`
	MoveCount   int    `json:"move_count"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	cube, err := cubesim.NewCube(solveSize)
	if err != nil {
		return err
	}

	// Scramble: explicit notation wins over a random sequence.
	var scramble cubesim.MoveSequence
	if solveScramble != "" {
		scramble, err = cubesim.ParseSequence(solveScramble)
		if err != nil {
			return err
		}
		if err := cube.ApplySequence(scramble); err != nil {
			return err
		}
	} else {
		var opts []cubesim.ScrambleOption
		if cmd.Flags().Changed("seed") {
			opts = append(opts, cubesim.WithSeed(solveSeed))
		}
		scramble, err = cube.Scramble(solveMoves, opts...)
		if err != nil {
			return err
		}
	}

	method, err := solver.ByName(solveMethod)
	if err != nil {
		return err
	}

	start := time.Now()
	steps, solveErr := method.Solve(cube)
	elapsed := time.Since(start)
	if solveErr != nil && !errors.Is(solveErr, solver.ErrNoSolution) {
		return solveErr
	}

	solution := solver.FullSolution(steps)
	if err := cube.ApplySequence(solution); err != nil {
		return err
	}
	solved := cube.IsSolved()

	var report *analysis.Report
	if solveAnalyze {
		report = analysis.Analyze(solution)
	}

	if solveJSON {
		result := solveResult{
			Method:     method.Name(),
			CubeSize:   solveSize,
			Scramble:   scramble.Notation(),
			Steps:      make([]solveStep, len(steps)),
			Solution:   solution.Notation(),
			MoveCount:  len(solution),
			Solved:     solved,
			DurationMs: elapsed.Milliseconds(),
			Analysis:   report,
		}
		for i, step := range steps {
			result.Steps[i] = solveStep{
				Phase:       string(step.Phase),
				Description: step.Description,
				Moves:       step.Moves.Notation(),
				MoveCount:   len(step.Moves),
			}
		}

		data, err := sonic.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printSolve(method.Name(), scramble, steps, solution, solved, elapsed, cube)
		if report != nil {
			fmt.Println()
			printAnalysis(report)
		}
	}

	if solveSave {
		if err := saveSolve(scramble, method.Name(), solution, len(steps), solved, elapsed); err != nil {
			return err
		}
	}

	if solveErr != nil {
		return solveErr
	}
	return nil
}

func printSolve(methodName string, scramble cubesim.MoveSequence, steps []solver.Step, solution cubesim.MoveSequence, solved bool, elapsed time.Duration, cube *cubesim.Cube) {
	fmt.Printf("Scramble: %s\n", scramble.Notation())
	fmt.Printf("Method:   %s\n", methodName)
	fmt.Println()

	if solveExplain {
		fmt.Println(solver.Explain(methodName, steps))
	} else {
		for i, step := range steps {
			fmt.Printf("Step %d [%s] %s (%d moves)\n", i+1, step.Phase, step.Description, len(step.Moves))
			if len(step.Moves) > 0 {
				fmt.Printf("  %s\n", step.Moves)
			}
		}
	}
	fmt.Println()

	if solved {
		fmt.Printf("Solved in %d moves (%.1fms)\n", len(solution), float64(elapsed.Microseconds())/1000.0)
	} else {
		fmt.Printf("Gave up after %d moves (%.1fms)\n", len(solution), float64(elapsed.Microseconds())/1000.0)
	}
	fmt.Println()
	fmt.Println(renderNet(cube))
}

func printAnalysis(report *analysis.Report) {
	fmt.Println("Analysis")
	fmt.Println("--------")
	fmt.Printf("Moves:      %d (%d after optimizing, %.0f%% efficient)\n",
		report.Efficiency.OriginalMoves,
		report.Efficiency.OptimizedMoves,
		report.Efficiency.Efficiency*100)
	if report.Movement != nil && report.Movement.MostUsedFace != "" {
		fmt.Printf("Top face:   %s (%d turns)\n",
			report.Movement.MostUsedFace,
			report.Movement.FaceCounts[report.Movement.MostUsedFace])
	}
	if report.Repetition != nil && report.Repetition.TotalWastedMoves > 0 {
		fmt.Printf("Wasted:     %d moves (%d cancellations, %d mergeable pairs)\n",
			report.Repetition.TotalWastedMoves,
			len(report.Repetition.Cancellations),
			len(report.Repetition.MergeOpportunities))
	}

	if report.Algorithms != nil && len(report.Algorithms.Counts) > 0 {
		names := make([]string, 0, len(report.Algorithms.Counts))
		for name := range report.Algorithms.Counts {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			ci, cj := report.Algorithms.Counts[names[i]], report.Algorithms.Counts[names[j]]
			if ci != cj {
				return ci > cj
			}
			return names[i] < names[j]
		})

		fmt.Println()
		fmt.Println("Known algorithms used:")
		for _, name := range names {
			fmt.Printf("  %-20s x%d\n", name, report.Algorithms.Counts[name])
		}
	}

	if report.NGrams != nil && len(report.NGrams.TopNGrams) > 0 {
		lengths := make([]int, 0, len(report.NGrams.TopNGrams))
		for n := range report.NGrams.TopNGrams {
			lengths = append(lengths, n)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

		fmt.Println()
		fmt.Println("Repeated patterns:")
		shown := 0
		for _, n := range lengths {
			for _, ng := range report.NGrams.TopNGrams[n] {
				if shown >= 5 {
					return
				}
				fmt.Printf("  %-40s x%d\n", strings.Join(ng.Sequence, " "), ng.Count)
				shown++
			}
		}
	}
}

func saveSolve(scramble cubesim.MoveSequence, methodName string, solution cubesim.MoveSequence, stepCount int, solved bool, elapsed time.Duration) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scrambleRepo := storage.NewScrambleRepository(db)
	scrambleID, err := scrambleRepo.Save(solveSize, scramble.Notation(), len(scramble), nil)
	if err != nil {
		return err
	}

	solveRepo := storage.NewSolveRepository(db)
	solveID, err := solveRepo.Save(&scrambleID, solveSize, methodName, solution.Notation(), stepCount, solved, elapsed.Milliseconds())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Saved solve: %s\n", solveID)
	return nil
}
