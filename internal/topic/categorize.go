package topic

import (
	"github.com/nguyentantai21042004/lecture-topics/internal/vocabulary"
)

// Categorize files each hit under the first declared category with a term
// contained in the concept, or under vocabulary.OtherCategory. Buckets appear
// in the order their first hit was filed.
func Categorize(vocab *vocabulary.Vocabulary, hits []ConceptHit) Categorized {
	var out Categorized
	slot := make(map[string]int)

	for _, hit := range hits {
		name := vocab.Classify(hit.Concept)
		i, ok := slot[name]
		if !ok {
			i = len(out)
			slot[name] = i
			out = append(out, Bucket{Category: name})
		}
		out[i].Hits = append(out[i].Hits, hit)
	}
	return out
}
