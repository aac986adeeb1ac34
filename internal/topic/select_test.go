package topic

import (
	"strings"
	"testing"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nguyentantai21042004/lecture-topics/internal/vocabulary"
)

func TestCategorize(t *testing.T) {
	vocab := vocabulary.Default()
	hits := []ConceptHit{
		{"markov", 5},
		{"bayes", 4},
		{"varianza", 3},
		{"posteriore", 2},
		{"sigma algebra", 1},
	}

	got := Categorize(vocab, hits)

	wantNames := []string{vocabulary.OtherCategory, "Probabilità Condizionata", "Momenti e Statistiche"}
	names := got.Names()
	if strings.Join(names, "|") != strings.Join(wantNames, "|") {
		t.Fatalf("Names() = %v, want %v", names, wantNames)
	}

	other, _ := got.Get(vocabulary.OtherCategory)
	assertHits(t, other, []ConceptHit{{"markov", 5}, {"sigma algebra", 1}})

	cond, _ := got.Get("Probabilità Condizionata")
	assertHits(t, cond, []ConceptHit{{"bayes", 4}, {"posteriore", 2}})

	if _, ok := got.Get("Distribuzioni"); ok {
		t.Error("empty category should be absent")
	}
}

func TestCategorizeEmpty(t *testing.T) {
	if got := Categorize(vocabulary.Default(), nil); len(got) != 0 {
		t.Errorf("Categorize(nil) = %v, want empty", got)
	}
}

func TestWeigh(t *testing.T) {
	categories := Categorized{
		{Category: "A", Hits: []ConceptHit{{"a", 5}}},
		{Category: "B", Hits: nil},
		{Category: "C", Hits: []ConceptHit{{"c1", 2}, {"c2", 1}}},
	}

	got := Weigh(categories)
	want := []CategoryWeight{
		{Category: "A", Concepts: 1, Occurrences: 5, Weight: 5},
		{Category: "C", Concepts: 2, Occurrences: 3, Weight: 6},
	}
	if len(got) != len(want) {
		t.Fatalf("Weigh() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("weight[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSelectCategory(t *testing.T) {
	tests := []struct {
		name       string
		categories Categorized
		want       string
		wantOK     bool
	}{
		{
			name: "breadth beats a single repeated term",
			categories: Categorized{
				{Category: "A", Hits: []ConceptHit{{"a", 5}}},
				{Category: "C", Hits: []ConceptHit{{"c1", 2}, {"c2", 1}}},
			},
			want:   "C",
			wantOK: true,
		},
		{
			name: "tie goes to first inserted",
			categories: Categorized{
				{Category: "Second", Hits: []ConceptHit{{"x", 2}, {"y", 2}}},
				{Category: "First", Hits: []ConceptHit{{"z", 8}}},
			},
			want:   "Second",
			wantOK: true,
		},
		{
			name:       "empty",
			categories: nil,
			want:       "",
			wantOK:     false,
		},
		{
			name:       "only empty buckets",
			categories: Categorized{{Category: "A"}},
			want:       "",
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectCategory(tt.categories)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SelectCategory() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSelectLabel(t *testing.T) {
	vocab := vocabulary.Default()

	tests := []struct {
		name       string
		categories Categorized
		want       string
	}{
		{
			name:       "nothing found",
			categories: nil,
			want:       LabelNotIdentified,
		},
		{
			name:       "populated map without hits",
			categories: Categorized{{Category: "Distribuzioni"}},
			want:       LabelMixed,
		},
		{
			name: "distributions prefix",
			categories: Categorized{
				{Category: "Distribuzioni", Hits: []ConceptHit{{"poisson", 3}, {"binomiale", 1}}},
			},
			want: "Distribuzioni di Probabilità: Poisson, Binomiale",
		},
		{
			name: "top three only, stable on ties",
			categories: Categorized{
				{Category: "Variabili Aleatorie", Hits: []ConceptHit{
					{"densità", 1},
					{"variabile aleatoria", 4},
					{"discreta", 1},
					{"continua", 1},
				}},
			},
			want: "Variabili Aleatorie: Variabile Aleatoria, Densità, Discreta",
		},
		{
			name: "other category uses its own name",
			categories: Categorized{
				{Category: vocabulary.OtherCategory, Hits: []ConceptHit{{"sigma algebra", 2}}},
			},
			want: "Altro: Sigma Algebra",
		},
		{
			name: "undecorated category",
			categories: Categorized{
				{Category: "Concetti Base", Hits: []ConceptHit{{"evento", 2}, {"omega", 1}}},
			},
			want: "Concetti Base: Evento, Omega",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectLabel(vocab, tt.categories); got != tt.want {
				t.Errorf("SelectLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSelectLabelApostrophe(t *testing.T) {
	vocab, err := vocabulary.Parse([]byte(`concepts: ["l'evento"]
categories:
  - name: Eventi
    terms: [evento]
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// the letter after an apostrophe stays lower case
	got := SelectLabel(vocab, Categorized{
		{Category: "Eventi", Hits: []ConceptHit{{"l'evento", 2}}},
	})
	if want := "Eventi: L'evento"; got != want {
		t.Errorf("SelectLabel() = %q, want %q", got, want)
	}
}

func TestClassify(t *testing.T) {
	c := New(vocabulary.Default())

	text := "La probabilità condizionata è definita tramite bayes. " +
		"bayes permette di calcolare la probabilità posteriore."
	res := c.Classify(text)

	if res.Category != "Probabilità Condizionata" {
		t.Errorf("Category = %q, want Probabilità Condizionata", res.Category)
	}
	if len(res.Weights) != 1 || res.Weights[0].Weight != 24 {
		t.Errorf("Weights = %+v, want a single weight of 24", res.Weights)
	}
	want := "Probabilità Condizionata e Indipendenza: Bayes, Probabilità, Condizionata"
	if res.Label != want {
		t.Errorf("Label = %q, want %q", res.Label, want)
	}
}

func TestClassifyNoMatches(t *testing.T) {
	res := New(vocabulary.Default()).Classify("nessun termine rilevante qui")

	if res.Label != LabelNotIdentified {
		t.Errorf("Label = %q, want %q", res.Label, LabelNotIdentified)
	}
	if res.Category != "" {
		t.Errorf("Category = %q, want empty", res.Category)
	}
}

func TestClassifySingleRepeatedConcept(t *testing.T) {
	vocab := vocabulary.Default()
	c := New(vocab)
	caser := cases.Title(language.Italian)

	for _, concept := range vocab.Concepts() {
		t.Run(concept, func(t *testing.T) {
			text := strings.Repeat(concept+". ", 3)
			res := c.Classify(text)
			if len(res.Hits) != 1 {
				// the concept contains another vocabulary term
				t.Skipf("hits = %v", res.Hits)
			}

			if want := vocab.Classify(concept); res.Category != want {
				t.Errorf("Category = %q, want %q", res.Category, want)
			}
			want := vocab.Label(res.Category) + ": " + caser.String(concept)
			if res.Label != want {
				t.Errorf("Label = %q, want %q", res.Label, want)
			}
		})
	}
}
