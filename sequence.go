package cubesim

import (
	"fmt"
	"strings"
)

// MoveSequence is an ordered list of moves (an algorithm).
type MoveSequence []Move

// ParseSequence parses a whitespace-separated move sequence.
// Example: "R U R' U'"
// If any move fails to parse, the error names its index and nothing is
// returned; an empty or blank string parses as an empty sequence.
func ParseSequence(notation string) (MoveSequence, error) {
	fields := strings.Fields(notation)
	if len(fields) == 0 {
		return MoveSequence{}, nil
	}

	seq := make(MoveSequence, 0, len(fields))
	for i, field := range fields {
		m, err := ParseMove(field)
		if err != nil {
			return nil, fmt.Errorf("move %d of sequence: %w", i+1, err)
		}
		seq = append(seq, m)
	}
	return seq, nil
}

// Inverse returns the sequence that undoes this sequence: the moves in
// reverse order, each inverted.
func (s MoveSequence) Inverse() MoveSequence {
	inv := make(MoveSequence, len(s))
	for i, m := range s {
		inv[len(s)-1-i] = m.Inverse()
	}
	return inv
}

// Optimize merges runs of consecutive moves that share face, kind and
// layer count, summing their amounts mod 4. Runs that cancel completely
// are dropped. Moves are only merged when immediately adjacent; the
// optimizer never reorders.
func (s MoveSequence) Optimize() MoveSequence {
	if len(s) == 0 {
		return MoveSequence{}
	}

	optimized := make(MoveSequence, 0, len(s))
	for i := 0; i < len(s); {
		current := s[i]
		total := current.Amount

		j := i + 1
		for j < len(s) &&
			s[j].Face == current.Face &&
			s[j].Kind == current.Kind &&
			s[j].Layers == current.Layers {
			total += s[j].Amount
			j++
		}

		if amount := total % 4; amount != 0 {
			merged := current
			merged.Amount = amount
			optimized = append(optimized, merged)
		}
		i = j
	}
	return optimized
}

// Concat returns a new sequence with other appended to s.
func (s MoveSequence) Concat(other MoveSequence) MoveSequence {
	joined := make(MoveSequence, 0, len(s)+len(other))
	joined = append(joined, s...)
	return append(joined, other...)
}

// Clone returns an independent copy of the sequence.
func (s MoveSequence) Clone() MoveSequence {
	return append(MoveSequence(nil), s...)
}

// Equal reports whether two sequences contain the same moves in the
// same order.
func (s MoveSequence) Equal(other MoveSequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Notation returns the sequence as space-separated standard notation.
func (s MoveSequence) Notation() string {
	if len(s) == 0 {
		return ""
	}
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// String returns the notation string (alias for Notation).
func (s MoveSequence) String() string {
	return s.Notation()
}
