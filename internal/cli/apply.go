package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
)

var (
	applySize     int
	applyOptimize bool
)

var applyCmd = &cobra.Command{
	Use:   "apply NOTATION...",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a sequence in standard WCA notation to a solved cube and print
the resulting face colors.

Examples:
  cubesim apply "R U R' U'"
  cubesim apply --size 4 "Rw U2 3R'"
  cubesim apply --optimize "R R R U U'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().IntVar(&applySize, "size", 3, "Cube size (2-10)")
	applyCmd.Flags().BoolVar(&applyOptimize, "optimize", false, "Merge and cancel adjacent turns before applying")
}

func runApply(cmd *cobra.Command, args []string) error {
	notation := strings.Join(args, " ")
	seq, err := cubesim.ParseSequence(notation)
	if err != nil {
		return err
	}

	if applyOptimize {
		optimized := seq.Optimize()
		if len(optimized) < len(seq) {
			fmt.Printf("Optimized %d moves to %d: %s\n", len(seq), len(optimized), optimized)
			fmt.Println()
		}
		seq = optimized
	}

	cube, err := cubesim.NewCube(applySize)
	if err != nil {
		return err
	}
	if err := cube.ApplySequence(seq); err != nil {
		return err
	}

	fmt.Println(renderNet(cube))
	fmt.Println()
	fmt.Println(cube)

	return nil
}
