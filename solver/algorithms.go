package solver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cubesim/cubesim"
)

// Category groups algorithms by the solving stage they serve.
type Category string

const (
	CategoryOLL    Category = "OLL"    // Orient-last-layer cases
	CategoryPLL    Category = "PLL"    // Permute-last-layer cases
	CategoryF2L    Category = "F2L"    // First-two-layers pair inserts
	CategoryCommon Category = "Common" // Triggers and other well-known sequences
)

// Algorithm is a named move sequence with speedcubing metadata.
type Algorithm struct {
	Name        string
	Moves       cubesim.MoveSequence
	Description string
	Category    Category
	Difficulty  int     // 1 (trivial) to 5 (expert)
	Frequency   float64 // How often the case appears in practice, 0 to 1
}

// String returns the algorithm as "name: moves".
func (a Algorithm) String() string {
	return fmt.Sprintf("%s: %s", a.Name, a.Moves)
}

// Catalog is a lookup table of named solving algorithms, grouped by
// category. NewCatalog builds the standard set; Add extends it.
type Catalog struct {
	byCategory map[Category]map[string]Algorithm
}

// NewCatalog builds the standard catalog: the OLL, PLL and F2L cases
// the solvers draw on, plus the common trigger sequences.
func NewCatalog() *Catalog {
	c := &Catalog{byCategory: make(map[Category]map[string]Algorithm)}
	for _, alg := range standardAlgorithms() {
		c.Add(alg)
	}
	return c
}

// Add inserts an algorithm under its category and name, replacing any
// existing entry with the same name.
func (c *Catalog) Add(alg Algorithm) {
	algs, ok := c.byCategory[alg.Category]
	if !ok {
		algs = make(map[string]Algorithm)
		c.byCategory[alg.Category] = algs
	}
	algs[alg.Name] = alg
}

// Lookup returns the algorithm stored under a category and name.
func (c *Catalog) Lookup(category Category, name string) (Algorithm, bool) {
	alg, ok := c.byCategory[category][name]
	return alg, ok
}

// mustLookup fetches an entry the solvers are built against; a miss is
// a programming error in the standard catalog.
func (c *Catalog) mustLookup(category Category, name string) Algorithm {
	alg, ok := c.Lookup(category, name)
	if !ok {
		panic(fmt.Sprintf("solver: catalog is missing %s/%s", category, name))
	}
	return alg
}

// Category returns all algorithms of one category, sorted by name.
func (c *Catalog) Category(category Category) []Algorithm {
	algs := make([]Algorithm, 0, len(c.byCategory[category]))
	for _, alg := range c.byCategory[category] {
		algs = append(algs, alg)
	}
	sort.Slice(algs, func(i, j int) bool { return algs[i].Name < algs[j].Name })
	return algs
}

// Categories returns the known categories, sorted.
func (c *Catalog) Categories() []Category {
	categories := make([]Category, 0, len(c.byCategory))
	for category := range c.byCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

// Counts returns the number of algorithms per category.
func (c *Catalog) Counts() map[Category]int {
	counts := make(map[Category]int, len(c.byCategory))
	for category, algs := range c.byCategory {
		counts[category] = len(algs)
	}
	return counts
}

// Len returns the total number of algorithms in the catalog.
func (c *Catalog) Len() int {
	total := 0
	for _, algs := range c.byCategory {
		total += len(algs)
	}
	return total
}

// Search returns the algorithms whose name or description contains the
// query, case-insensitively, most frequent first.
func (c *Catalog) Search(query string) []Algorithm {
	query = strings.ToLower(query)
	var results []Algorithm
	for _, algs := range c.byCategory {
		for _, alg := range algs {
			if strings.Contains(strings.ToLower(alg.Name), query) ||
				strings.Contains(strings.ToLower(alg.Description), query) {
				results = append(results, alg)
			}
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Frequency != results[j].Frequency {
			return results[i].Frequency > results[j].Frequency
		}
		return results[i].Name < results[j].Name
	})
	return results
}

// standardAlgorithms lists the built-in catalog entries.
func standardAlgorithms() []Algorithm {
	return []Algorithm{
		// OLL: dot cases.
		{Name: "OLL 1", Moves: mustParse("R U2 R2 F R F' U2 R' F R F'"),
			Description: "Dot case - all edges flipped", Category: CategoryOLL, Difficulty: 3, Frequency: 0.02},
		{Name: "OLL 2", Moves: mustParse("F R U R' U' F' R U R' U' R U R' U' F R U R' U' F'"),
			Description: "Dot case - alternate", Category: CategoryOLL, Difficulty: 4, Frequency: 0.02},

		// OLL: cross cases.
		{Name: "OLL 21", Moves: mustParse("R U R' U R U' R' U R U2 R'"),
			Description: "Cross case - H shape", Category: CategoryOLL, Difficulty: 2, Frequency: 0.04},
		{Name: "OLL 22", Moves: mustParse("R U2 R2 U' R2 U' R2 U2 R"),
			Description: "Cross case - Pi shape", Category: CategoryOLL, Difficulty: 2, Frequency: 0.04},

		// OLL: line cases.
		{Name: "OLL 45", Moves: mustParse("F R U R' U' F'"),
			Description: "Line case - simple", Category: CategoryOLL, Difficulty: 1, Frequency: 0.08},
		{Name: "OLL 46", Moves: mustParse("R' U' R' F R F' U R"),
			Description: "Line case - alternate", Category: CategoryOLL, Difficulty: 2, Frequency: 0.08},

		// OLL: L-shape cases.
		{Name: "OLL 47", Moves: mustParse("F' L' U' L U F"),
			Description: "L shape case", Category: CategoryOLL, Difficulty: 2, Frequency: 0.04},
		{Name: "OLL 48", Moves: mustParse("F R U R' U' F'"),
			Description: "L shape case - mirror", Category: CategoryOLL, Difficulty: 2, Frequency: 0.04},

		// OLL: T-shape cases.
		{Name: "OLL 33", Moves: mustParse("R U R' U' R' F R F'"),
			Description: "T shape case", Category: CategoryOLL, Difficulty: 2, Frequency: 0.04},
		{Name: "OLL 34", Moves: mustParse("R U R2 U' R' F R U R U' F'"),
			Description: "T shape case - alternate", Category: CategoryOLL, Difficulty: 3, Frequency: 0.04},

		// PLL: adjacent corner swaps.
		{Name: "T-Perm", Moves: mustParse("R U R' F' R U R' U' R' F R2 U' R'"),
			Description: "T permutation - adjacent corners", Category: CategoryPLL, Difficulty: 2, Frequency: 0.08},
		{Name: "J-Perm A", Moves: mustParse("R' U L' U2 R U' R' U2 R L U'"),
			Description: "J permutation - adjacent corners", Category: CategoryPLL, Difficulty: 3, Frequency: 0.08},
		{Name: "J-Perm B", Moves: mustParse("R U R' F' R U R' U' R' F R2 U' R'"),
			Description: "J permutation - adjacent corners", Category: CategoryPLL, Difficulty: 3, Frequency: 0.08},

		// PLL: diagonal corner swaps.
		{Name: "Y-Perm", Moves: mustParse("F R U' R' U' R U R' F' R U R' U' R' F R F'"),
			Description: "Y permutation - diagonal corners", Category: CategoryPLL, Difficulty: 4, Frequency: 0.04},
		{Name: "V-Perm", Moves: mustParse("R' U R' U' B' R' B2 U' R' U R' B R B"),
			Description: "V permutation - diagonal corners", Category: CategoryPLL, Difficulty: 4, Frequency: 0.04},

		// PLL: edge cycles.
		{Name: "U-Perm A", Moves: mustParse("R U' R U R U R U' R' U' R2"),
			Description: "U permutation - 3-cycle of edges", Category: CategoryPLL, Difficulty: 2, Frequency: 0.08},
		{Name: "U-Perm B", Moves: mustParse("R2 U R U R' U' R' U' R' U R'"),
			Description: "U permutation - 3-cycle of edges", Category: CategoryPLL, Difficulty: 2, Frequency: 0.08},
		{Name: "Z-Perm", Moves: mustParse("R' U' R U' R U R U' R' U R U R2 U' R'"),
			Description: "Z permutation - adjacent edge swap", Category: CategoryPLL, Difficulty: 4, Frequency: 0.04},
		{Name: "H-Perm", Moves: mustParse("R U R' U R U' R D R' U' R D' R' U2 R'"),
			Description: "H permutation - opposite edge swap", Category: CategoryPLL, Difficulty: 4, Frequency: 0.04},

		// PLL: corner and edge 3-cycles.
		{Name: "A-Perm A", Moves: mustParse("R' F R' B2 R F' R' B2 R2"),
			Description: "A permutation - corner 3-cycle", Category: CategoryPLL, Difficulty: 2, Frequency: 0.08},
		{Name: "A-Perm B", Moves: mustParse("R B' R F2 R' B R F2 R2"),
			Description: "A permutation - corner 3-cycle", Category: CategoryPLL, Difficulty: 2, Frequency: 0.08},

		// F2L: basic pair inserts.
		{Name: "F2L-1", Moves: mustParse("R U' R'"),
			Description: "Basic insert - corner above slot, edge in place", Category: CategoryF2L, Difficulty: 1, Frequency: 0.1},
		{Name: "F2L-2", Moves: mustParse("F R F'"),
			Description: "Basic insert - edge above slot, corner in place", Category: CategoryF2L, Difficulty: 1, Frequency: 0.1},
		{Name: "F2L-3", Moves: mustParse("R U R' U' R U R'"),
			Description: "Basic insert - both pieces above", Category: CategoryF2L, Difficulty: 1, Frequency: 0.05},

		// F2L: common cases.
		{Name: "F2L-27", Moves: mustParse("R U2 R' U' R U R'"),
			Description: "Corner and edge separated", Category: CategoryF2L, Difficulty: 2, Frequency: 0.03},
		{Name: "F2L-32", Moves: mustParse("R U R' U2 R U' R'"),
			Description: "Edge flipped", Category: CategoryF2L, Difficulty: 2, Frequency: 0.03},
		{Name: "F2L-37", Moves: mustParse("R U' R' U R U' R'"),
			Description: "Corner twisted", Category: CategoryF2L, Difficulty: 2, Frequency: 0.03},

		// Common triggers and commutators.
		{Name: "Sexy Move", Moves: mustParse("R U R' U'"),
			Description: "Most common trigger sequence", Category: CategoryCommon, Difficulty: 1, Frequency: 1.0},
		{Name: "Sledgehammer", Moves: mustParse("R' F R F'"),
			Description: "Another common trigger", Category: CategoryCommon, Difficulty: 1, Frequency: 0.8},
		{Name: "Left Hand", Moves: mustParse("L' U' L U"),
			Description: "Left hand trigger", Category: CategoryCommon, Difficulty: 1, Frequency: 0.8},
		{Name: "Sune", Moves: mustParse("R U R' U R U2 R'"),
			Description: "Classic corner orientation sequence", Category: CategoryCommon, Difficulty: 1, Frequency: 0.6},
		{Name: "Anti-Sune", Moves: mustParse("R U2 R' U' R U' R'"),
			Description: "Reverse of Sune", Category: CategoryCommon, Difficulty: 1, Frequency: 0.6},
		{Name: "Niklas", Moves: mustParse("R U' L' U R' U' L"),
			Description: "Niklas commutator", Category: CategoryCommon, Difficulty: 2, Frequency: 0.3},
	}
}

// mustParse parses a known-good notation string for the catalog; it
// panics if the notation is ever wrong.
func mustParse(notation string) cubesim.MoveSequence {
	seq, err := cubesim.ParseSequence(notation)
	if err != nil {
		panic(err)
	}
	return seq
}
