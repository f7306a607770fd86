package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubesim/cubesim"
	"github.com/cubesim/cubesim/internal/storage"
)

var (
	scrambleSize  int
	scrambleMoves int
	scrambleSeed  int64
	scrambleSave  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and apply a random scramble",
	Long: `Generate a random scramble sequence, apply it to a solved cube and
print the sequence together with the resulting face colors.

The generator never repeats a face twice in a row and never follows a
face directly with its opposite. Pass --seed for a reproducible
scramble, --save to store it in the database.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)

	scrambleCmd.Flags().IntVar(&scrambleSize, "size", 3, "Cube size (2-10)")
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 25, "Number of scramble moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Store the scramble in the database")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cube, err := cubesim.NewCube(scrambleSize)
	if err != nil {
		return err
	}

	var opts []cubesim.ScrambleOption
	if cmd.Flags().Changed("seed") {
		opts = append(opts, cubesim.WithSeed(scrambleSeed))
	}

	seq, err := cube.Scramble(scrambleMoves, opts...)
	if err != nil {
		return fmt.Errorf("failed to scramble: %w", err)
	}

	fmt.Printf("Scramble (%dx%dx%d, %d moves):\n", scrambleSize, scrambleSize, scrambleSize, len(seq))
	fmt.Println(renderMoves(seq))
	fmt.Println()
	fmt.Println(renderNet(cube))

	if scrambleSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		var seed *int64
		if cmd.Flags().Changed("seed") {
			seed = &scrambleSeed
		}

		repo := storage.NewScrambleRepository(db)
		id, err := repo.Save(scrambleSize, seq.Notation(), len(seq), seed)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Saved scramble: %s\n", id)
	}

	return nil
}
