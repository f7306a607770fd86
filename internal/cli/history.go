package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim/internal/storage"
)

var (
	historyLimit  int
	exportLimit   int
	historyOutput string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored scrambles and solve attempts",
	Long:  `Display recent scrambles and solve attempts from the database.`,
	RunE:  runHistory,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored history as JSON",
	Long: `Export recent scrambles and solve attempts as JSON.

Examples:
  cubesim history export
  cubesim history export --limit 100 -o history.json`,
	RunE: runHistoryExport,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum entries per section")

	historyCmd.AddCommand(historyExportCmd)
	historyExportCmd.Flags().IntVar(&exportLimit, "limit", 50, "Maximum entries per section")
	historyExportCmd.Flags().StringVarP(&historyOutput, "output", "o", "", "Output file (default: stdout)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scrambleRepo := storage.NewScrambleRepository(db)
	solveRepo := storage.NewSolveRepository(db)

	scrambleCount, err := scrambleRepo.Count()
	if err != nil {
		return err
	}
	solveCount, err := solveRepo.Count()
	if err != nil {
		return err
	}
	solvedCount, err := solveRepo.CountSolved()
	if err != nil {
		return err
	}

	fmt.Printf("Stored: %d scrambles, %d solve attempts (%d solved)\n", scrambleCount, solveCount, solvedCount)

	scrambles, err := scrambleRepo.ListRecent(historyLimit)
	if err != nil {
		return err
	}
	if len(scrambles) > 0 {
		fmt.Println()
		fmt.Println("Recent scrambles:")
		fmt.Printf("%-8s  %-19s  %-4s  %-5s  %s\n", "ID", "Created", "Size", "Moves", "Notation")
		for _, s := range scrambles {
			notation := s.Notation
			if len(notation) > 40 {
				notation = notation[:37] + "..."
			}
			fmt.Printf("%-8s  %-19s  %-4d  %-5d  %s\n",
				shortID(s.ScrambleID),
				s.CreatedAt.Format("2006-01-02 15:04:05"),
				s.CubeSize,
				s.MoveCount,
				notation,
			)
		}
	}

	solves, err := solveRepo.ListRecent(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) > 0 {
		fmt.Println()
		fmt.Println("Recent solves:")
		fmt.Printf("%-8s  %-19s  %-4s  %-14s  %-5s  %-8s  %s\n", "ID", "Created", "Size", "Method", "Moves", "Time", "Result")
		for _, s := range solves {
			result := "gave up"
			if s.Solved {
				result = "solved"
			}
			fmt.Printf("%-8s  %-19s  %-4d  %-14s  %-5d  %-8s  %s\n",
				shortID(s.SolveID),
				s.CreatedAt.Format("2006-01-02 15:04:05"),
				s.CubeSize,
				s.Method,
				moveCountOf(s.Solution),
				formatMillis(s.DurationMs),
				result,
			)
		}
	}

	if len(scrambles) == 0 && len(solves) == 0 {
		fmt.Println()
		fmt.Println("Nothing stored yet. Try: cubesim solve --save")
	}

	return nil
}

// historyExport is the JSON shape of an exported history.
type historyExport struct {
	ExportedAt string             `json:"exported_at"`
	Scrambles  []scrambleExport   `json:"scrambles"`
	Solves     []solveExportEntry `json:"solves"`
}

type scrambleExport struct {
	ID        string `json:"id"`
	CubeSize  int    `json:"cube_size"`
	MoveCount int    `json:"move_count"`
	Notation  string `json:"notation"`
	Seed      *int64 `json:"seed,omitempty"`
	CreatedAt string `json:"created_at"`
}

type solveExportEntry struct {
	ID         string  `json:"id"`
	ScrambleID *string `json:"scramble_id,omitempty"`
	CubeSize   int     `json:"cube_size"`
	Method     string  `json:"method"`
	Solution   string  `json:"solution"`
	StepCount  int     `json:"step_count"`
	Solved     bool    `json:"solved"`
	DurationMs int64   `json:"duration_ms"`
	CreatedAt  string  `json:"created_at"`
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scrambles, err := storage.NewScrambleRepository(db).ListRecent(exportLimit)
	if err != nil {
		return err
	}
	solves, err := storage.NewSolveRepository(db).ListRecent(exportLimit)
	if err != nil {
		return err
	}

	export := historyExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Scrambles:  make([]scrambleExport, len(scrambles)),
		Solves:     make([]solveExportEntry, len(solves)),
	}
	for i, s := range scrambles {
		export.Scrambles[i] = scrambleExport{
			ID:        s.ScrambleID,
			CubeSize:  s.CubeSize,
			MoveCount: s.MoveCount,
			Notation:  s.Notation,
			Seed:      s.Seed,
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		}
	}
	for i, s := range solves {
		export.Solves[i] = solveExportEntry{
			ID:         s.SolveID,
			ScrambleID: s.ScrambleID,
			CubeSize:   s.CubeSize,
			Method:     s.Method,
			Solution:   s.Solution,
			StepCount:  s.StepCount,
			Solved:     s.Solved,
			DurationMs: s.DurationMs,
			CreatedAt:  s.CreatedAt.Format(time.RFC3339),
		}
	}

	data, err := sonic.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if historyOutput == "" {
		fmt.Println(string(data))
		return nil
	}

	dir := filepath.Dir(historyOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(historyOutput, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Exported %d scrambles and %d solves to %s\n", len(scrambles), len(solves), historyOutput)
	return nil
}

// shortID truncates a UUID to its first block for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// moveCountOf counts the moves in a space-separated notation string.
func moveCountOf(notation string) int {
	return len(strings.Fields(notation))
}

// formatMillis renders a millisecond duration compactly.
func formatMillis(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	if d < time.Second {
		return fmt.Sprintf("%dms", ms)
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	return fmt.Sprintf("%dm%.1fs", mins, d.Seconds()-float64(mins*60))
}
