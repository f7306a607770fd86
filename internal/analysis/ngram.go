package analysis

import (
	"bytes"
	"sort"

	"github.com/cubesim/cubesim"
)

// maxOccurrenceSamples caps how many start positions are kept per n-gram.
const maxOccurrenceSamples = 10

// NGram is a move subsequence that occurred more than once.
type NGram struct {
	N           int      `json:"n"`
	Sequence    []string `json:"sequence"`
	Tokens      []uint8  `json:"-"`
	Count       int      `json:"count"`
	Occurrences []int    `json:"occurrences,omitempty"`
}

// NGramReport holds the most frequent n-grams keyed by length.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

// RollingHash is a Rabin-Karp hash over a fixed-size token window.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1), for evicting the oldest token
	window []uint8
	n      int
}

// NewRollingHash creates a rolling hash with window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{base: 31, n: n, window: make([]uint8, 0, n)}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Push adds a token, evicting the oldest one once the window is full.
func (rh *RollingHash) Push(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}
	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Ready reports whether the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// Hash returns the hash of the current window.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	return append([]uint8(nil), rh.window...)
}

type ngramEntry struct {
	tokens      []uint8
	sequence    []string
	count       int
	occurrences []int
}

// MineNGrams finds the topK most frequent n-grams for each length in
// [minN, maxN]. Only subsequences seen at least twice are reported;
// occurrences may overlap.
func MineNGrams(moves []cubesim.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}
	if len(moves) < minN {
		return report
	}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = moveToken(m)
	}

	for n := minN; n <= maxN && n <= len(moves); n++ {
		if ngrams := mineLength(tokens, moves, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineLength(tokens []uint8, moves []cubesim.Move, n, topK int) []NGram {
	counts := make(map[uint64]*ngramEntry)
	rh := NewRollingHash(n)

	for i, token := range tokens {
		rh.Push(token)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		if entry, ok := counts[rh.Hash()]; ok {
			// Distinct windows can collide on the hash; verify.
			if bytes.Equal(entry.tokens, rh.window) {
				entry.count++
				if len(entry.occurrences) < maxOccurrenceSamples {
					entry.occurrences = append(entry.occurrences, start)
				}
			}
			continue
		}

		sequence := make([]string, n)
		for j, m := range moves[start : start+n] {
			sequence[j] = m.Notation()
		}
		counts[rh.Hash()] = &ngramEntry{
			tokens:      rh.Window(),
			sequence:    sequence,
			count:       1,
			occurrences: []int{start},
		}
	}

	entries := make([]*ngramEntry, 0, len(counts))
	for _, entry := range counts {
		if entry.count >= 2 {
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].occurrences[0] < entries[j].occurrences[0]
	})
	if len(entries) > topK {
		entries = entries[:topK]
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		result[i] = NGram{
			N:           n,
			Sequence:    entry.sequence,
			Tokens:      entry.tokens,
			Count:       entry.count,
			Occurrences: entry.occurrences,
		}
	}
	return result
}
