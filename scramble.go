package cubesim

import (
	"fmt"
	"math/rand"
	"time"
)

// ScrambleOption configures scramble generation.
type ScrambleOption func(*scrambleConfig)

type scrambleConfig struct {
	seed   int64
	seeded bool
}

// WithSeed fixes the random seed so the scramble is reproducible.
func WithSeed(seed int64) ScrambleOption {
	return func(c *scrambleConfig) {
		c.seed = seed
		c.seeded = true
	}
}

// scrambleFaces are the faces a scramble draws from, each with a random
// amount of 1, 2 or 3.
var scrambleFaces = [6]Face{FaceR, FaceU, FaceL, FaceD, FaceF, FaceB}

// newScramble generates a scramble of the given length. The same face
// never appears twice in a row, and a face is never directly followed
// by its opposite; both patterns reduce to fewer effective moves.
func newScramble(numMoves int, rng *rand.Rand) MoveSequence {
	seq := make(MoveSequence, 0, numMoves)

	var last Face
	for len(seq) < numMoves {
		candidates := make([]Face, 0, len(scrambleFaces))
		for _, face := range scrambleFaces {
			if face == last || (last != "" && face == last.Opposite()) {
				continue
			}
			candidates = append(candidates, face)
		}

		face := candidates[rng.Intn(len(candidates))]
		amount := rng.Intn(3) + 1
		seq = append(seq, Move{Face: face, Amount: amount, Kind: KindFace, Layers: 1})
		last = face
	}
	return seq
}

// Scramble generates a random scramble, applies it to the cube and
// returns it. Pass WithSeed for a reproducible scramble. The sequence
// is also remembered and available via ScrambleSequence.
func (c *Cube) Scramble(numMoves int, opts ...ScrambleOption) (MoveSequence, error) {
	if numMoves < 1 {
		return nil, fmt.Errorf("cubesim: scramble length must be at least 1, got %d", numMoves)
	}

	cfg := &scrambleConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	seed := cfg.seed
	if !cfg.seeded {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	seq := newScramble(numMoves, rng)
	c.scramble = seq.Clone()
	if err := c.ApplySequence(seq); err != nil {
		return nil, err
	}
	return seq, nil
}

// ScrambleSequence returns the most recent scramble applied to this
// cube, or false if it has never been scrambled (or was reset since).
func (c *Cube) ScrambleSequence() (MoveSequence, bool) {
	if len(c.scramble) == 0 {
		return nil, false
	}
	return c.scramble.Clone(), true
}
