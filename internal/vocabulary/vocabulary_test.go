package vocabulary

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDefault(t *testing.T) {
	v := Default()

	concepts := v.Concepts()
	if len(concepts) != 71 {
		t.Errorf("len(Concepts()) = %d, want 71", len(concepts))
	}
	if !sort.StringsAreSorted(concepts) {
		t.Error("concepts are not in ascending order")
	}
	for _, c := range []string{"probabilità", "variabile aleatoria", "catena markov", "levy"} {
		if !v.Contains(c) {
			t.Errorf("Contains(%q) = false", c)
		}
	}

	var names []string
	for _, c := range v.Categories() {
		names = append(names, c.Name)
	}
	want := []string{
		"Concetti Base",
		"Eventi e Operazioni",
		"Probabilità Condizionata",
		"Variabili Aleatorie",
		"Distribuzioni",
		"Momenti e Statistiche",
		"Teoremi Limite",
		"Processi Stocastici",
	}
	if len(names) != len(want) {
		t.Fatalf("categories = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("category[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestClassify(t *testing.T) {
	v := Default()

	tests := []struct {
		concept string
		want    string
	}{
		{"bayes", "Probabilità Condizionata"},
		{"probabilità", "Probabilità Condizionata"},
		{"evento", "Concetti Base"},
		{"catena markov", "Processi Stocastici"},
		{"markov", OtherCategory},
		{"sigma algebra", OtherCategory},
		{"gaussiana", "Distribuzioni"},
		{"valore atteso", "Momenti e Statistiche"},
		{"limite centrale", "Teoremi Limite"},
	}

	for _, tt := range tests {
		t.Run(tt.concept, func(t *testing.T) {
			if got := v.Classify(tt.concept); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.concept, got, tt.want)
			}
		})
	}
}

func TestClassifyFirstDeclaredCategoryWins(t *testing.T) {
	v, err := Parse([]byte(`
concepts: [media normale]
categories:
  - name: Prima
    terms: [normale]
  - name: Seconda
    terms: [media]
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := v.Classify("media normale"); got != "Prima" {
		t.Errorf("Classify() = %q, want Prima", got)
	}
}

func TestLabel(t *testing.T) {
	v := Default()

	tests := []struct {
		name string
		want string
	}{
		{"Distribuzioni", "Distribuzioni di Probabilità"},
		{"Probabilità Condizionata", "Probabilità Condizionata e Indipendenza"},
		{"Variabili Aleatorie", "Variabili Aleatorie"},
		{"Teoremi Limite", "Teoremi Limite"},
		{"Processi Stocastici", "Processi Stocastici"},
		{"Concetti Base", "Concetti Base"},
		{OtherCategory, OtherCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Label(tt.name); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseNormalizesConcepts(t *testing.T) {
	v, err := Parse([]byte(`
concepts: ["  Zeta ", "Alfa Beta"]
categories:
  - name: Lettere
    terms: [" ALFA "]
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got := v.Concepts()
	if len(got) != 2 || got[0] != "alfa beta" || got[1] != "zeta" {
		t.Errorf("Concepts() = %q", got)
	}
	c, ok := v.Category("Lettere")
	if !ok {
		t.Fatal("Category(Lettere) not found")
	}
	if c.Terms[0] != "alfa" {
		t.Errorf("term = %q, want alfa", c.Terms[0])
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "concepts: [unterminated"},
		{"no concepts", "categories: []"},
		{"empty concept", "concepts: [a, ' ']"},
		{"duplicate concept", "concepts: [a, A]"},
		{"duplicate category", `
concepts: [a]
categories:
  - {name: X, terms: [a]}
  - {name: X, terms: [b]}
`},
		{"empty term list", `
concepts: [a]
categories:
  - {name: X, terms: []}
`},
		{"empty term", `
concepts: [a]
categories:
  - {name: X, terms: [a, ""]}
`},
		{"missing name", `
concepts: [a]
categories:
  - {terms: [a]}
`},
		{"reserved name", `
concepts: [a]
categories:
  - {name: Altro, terms: [a]}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	if err := os.WriteFile(path, defaultVocabulary, 0644); err != nil {
		t.Fatal(err)
	}

	v, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(v.Concepts()) != len(Default().Concepts()) {
		t.Errorf("Load() concepts = %d, want %d", len(v.Concepts()), len(Default().Concepts()))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestCategoriesReturnsCopy(t *testing.T) {
	v := Default()
	cats := v.Categories()
	cats[0].Terms[0] = "mutated"

	if v.Categories()[0].Terms[0] == "mutated" {
		t.Error("Categories() exposes internal term slices")
	}
}
