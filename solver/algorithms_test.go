package solver

import (
	"strings"
	"testing"
)

func TestNewCatalogCounts(t *testing.T) {
	c := NewCatalog()

	counts := c.Counts()
	want := map[Category]int{
		CategoryOLL:    10,
		CategoryPLL:    11,
		CategoryF2L:    6,
		CategoryCommon: 6,
	}
	for category, n := range want {
		if counts[category] != n {
			t.Errorf("%s has %d algorithms, want %d", category, counts[category], n)
		}
	}
	if c.Len() != 33 {
		t.Errorf("catalog holds %d algorithms, want 33", c.Len())
	}
}

func TestCatalogCategoriesSorted(t *testing.T) {
	c := NewCatalog()

	got := c.Categories()
	want := []Category{CategoryCommon, CategoryF2L, CategoryOLL, CategoryPLL}
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i, category := range want {
		if got[i] != category {
			t.Errorf("categories[%d] = %s, want %s", i, got[i], category)
		}
	}
}

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog()

	alg, ok := c.Lookup(CategoryPLL, "T-Perm")
	if !ok {
		t.Fatal("T-Perm should be in the standard catalog")
	}
	if got, want := alg.Moves.Notation(), "R U R' F' R U R' U' R' F R2 U' R'"; got != want {
		t.Errorf("T-Perm moves = %q, want %q", got, want)
	}

	if _, ok := c.Lookup(CategoryOLL, "T-Perm"); ok {
		t.Error("T-Perm should not be filed under OLL")
	}
	if _, ok := c.Lookup(CategoryPLL, "No Such Perm"); ok {
		t.Error("lookup of an unknown name should miss")
	}
}

func TestCatalogCategorySortedByName(t *testing.T) {
	c := NewCatalog()

	algs := c.Category(CategoryOLL)
	want := []string{
		"OLL 1", "OLL 2", "OLL 21", "OLL 22", "OLL 33",
		"OLL 34", "OLL 45", "OLL 46", "OLL 47", "OLL 48",
	}
	if len(algs) != len(want) {
		t.Fatalf("got %d OLL algorithms, want %d", len(algs), len(want))
	}
	for i, name := range want {
		if algs[i].Name != name {
			t.Errorf("oll[%d] = %q, want %q", i, algs[i].Name, name)
		}
	}
}

func TestCatalogSearch(t *testing.T) {
	c := NewCatalog()

	perms := c.Search("perm")
	if len(perms) != 11 {
		t.Fatalf("got %d results for %q, want 11", len(perms), "perm")
	}
	if perms[0].Name != "A-Perm A" {
		t.Errorf("first result %q, want A-Perm A", perms[0].Name)
	}
	for i := 1; i < len(perms); i++ {
		if perms[i].Frequency > perms[i-1].Frequency {
			t.Errorf("results out of frequency order at %d: %q after %q",
				i, perms[i].Name, perms[i-1].Name)
		}
	}

	triggers := c.Search("trigger")
	wantTriggers := []string{"Sexy Move", "Left Hand", "Sledgehammer"}
	if len(triggers) != len(wantTriggers) {
		t.Fatalf("got %d trigger results, want %d", len(triggers), len(wantTriggers))
	}
	for i, name := range wantTriggers {
		if triggers[i].Name != name {
			t.Errorf("triggers[%d] = %q, want %q", i, triggers[i].Name, name)
		}
	}

	if got := c.Search("no such algorithm"); len(got) != 0 {
		t.Errorf("search for nonsense returned %d results", len(got))
	}
}

func TestCatalogAddReplaces(t *testing.T) {
	c := NewCatalog()

	c.Add(Algorithm{
		Name:        "Double Sexy",
		Moves:       mustParse("R U R' U' R U R' U'"),
		Description: "Two triggers back to back",
		Category:    CategoryCommon,
		Difficulty:  1,
		Frequency:   0.2,
	})
	if c.Len() != 34 {
		t.Errorf("catalog holds %d algorithms after add, want 34", c.Len())
	}

	c.Add(Algorithm{
		Name:       "Double Sexy",
		Moves:      mustParse("R U R' U' R U R' U'"),
		Category:   CategoryCommon,
		Difficulty: 2,
	})
	if c.Len() != 34 {
		t.Errorf("re-adding the same name grew the catalog to %d", c.Len())
	}
	alg, ok := c.Lookup(CategoryCommon, "Double Sexy")
	if !ok || alg.Difficulty != 2 {
		t.Errorf("re-add should replace the entry, got %+v", alg)
	}
}

func TestAlgorithmString(t *testing.T) {
	c := NewCatalog()

	sune := c.mustLookup(CategoryCommon, "Sune")
	if got, want := sune.String(), "Sune: R U R' U R U2 R'"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCatalogMustLookupPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("mustLookup on a missing entry should panic")
		}
	}()
	NewCatalog().mustLookup(CategoryOLL, "OLL 999")
}

func TestStandardAlgorithmsParse(t *testing.T) {
	for _, alg := range standardAlgorithms() {
		if len(alg.Moves) == 0 {
			t.Errorf("%s has no moves", alg.Name)
		}
		if alg.Category == "" {
			t.Errorf("%s has no category", alg.Name)
		}
		if alg.Difficulty < 1 || alg.Difficulty > 5 {
			t.Errorf("%s has difficulty %d", alg.Name, alg.Difficulty)
		}
		if alg.Frequency <= 0 || alg.Frequency > 1 {
			t.Errorf("%s has frequency %g", alg.Name, alg.Frequency)
		}
		if !strings.Contains(alg.String(), alg.Name) {
			t.Errorf("%s does not stringify with its name", alg.Name)
		}
	}
}
