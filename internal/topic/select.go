package topic

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nguyentantai21042004/lecture-topics/internal/vocabulary"
)

// Weigh scores every populated category in insertion order
func Weigh(categories Categorized) []CategoryWeight {
	weights := make([]CategoryWeight, 0, len(categories))
	for _, b := range categories {
		if len(b.Hits) == 0 {
			continue
		}
		total := 0
		for _, h := range b.Hits {
			total += h.Count
		}
		weights = append(weights, CategoryWeight{
			Category:    b.Category,
			Concepts:    len(b.Hits),
			Occurrences: total,
			Weight:      len(b.Hits) * total,
		})
	}
	return weights
}

// SelectCategory returns the category with the strictly greatest weight.
// Ties go to the category inserted first.
func SelectCategory(categories Categorized) (string, bool) {
	winner := ""
	best := 0
	for _, w := range Weigh(categories) {
		if w.Weight > best {
			best = w.Weight
			winner = w.Category
		}
	}
	return winner, winner != ""
}

// SelectLabel renders the topic label for the dominant category
func SelectLabel(vocab *vocabulary.Vocabulary, categories Categorized) string {
	if len(categories) == 0 {
		return LabelNotIdentified
	}

	winner, ok := SelectCategory(categories)
	if !ok {
		return LabelMixed
	}

	hits, _ := categories.Get(winner)
	top := topHits(hits, LabelConcepts)
	if len(top) == 0 {
		return LabelMixed
	}

	// Casers are stateful, one per call
	caser := cases.Title(language.Italian)
	names := make([]string, len(top))
	for i, h := range top {
		names[i] = caser.String(h.Concept)
	}

	return fmt.Sprintf("%s: %s", vocab.Label(winner), strings.Join(names, ", "))
}

// topHits returns the n most frequent hits, keeping relative order on ties
func topHits(hits []ConceptHit, n int) []ConceptHit {
	sorted := make([]ConceptHit, len(hits))
	copy(sorted, hits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
