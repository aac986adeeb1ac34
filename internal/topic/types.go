package topic

const (
	// MaxConcepts is how many concept hits extraction keeps per transcript
	MaxConcepts = 10
	// LabelConcepts is how many concepts are named in a topic label
	LabelConcepts = 3

	LabelNotIdentified = "Argomento non identificato"
	LabelMixed         = "Contenuti Vari di Probabilità"
)

// ConceptHit is a vocabulary concept and how often it occurs in one transcript
type ConceptHit struct {
	Concept string
	Count   int
}

// Bucket holds the hits filed under one category, in extraction order
type Bucket struct {
	Category string
	Hits     []ConceptHit
}

// Categorized maps categories to their hits, ordered by first insertion
type Categorized []Bucket

// Get returns the hits filed under category
func (c Categorized) Get(category string) ([]ConceptHit, bool) {
	for _, b := range c {
		if b.Category == category {
			return b.Hits, true
		}
	}
	return nil, false
}

// Names returns the category names in insertion order
func (c Categorized) Names() []string {
	names := make([]string, len(c))
	for i, b := range c {
		names[i] = b.Category
	}
	return names
}

// CategoryWeight is the score of one populated category:
// distinct concepts times total occurrences.
type CategoryWeight struct {
	Category    string
	Concepts    int
	Occurrences int
	Weight      int
}

// Result is everything the classifier derived from one transcript
type Result struct {
	Hits       []ConceptHit
	Categories Categorized
	Weights    []CategoryWeight
	// Category is empty when no category won
	Category string
	Label    string
}
