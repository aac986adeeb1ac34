package topic

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nguyentantai21042004/lecture-topics/internal/vocabulary"
)

// Extract counts whole-word occurrences of every vocabulary concept in text
// and returns the MaxConcepts most frequent. Equal counts keep vocabulary order.
func Extract(vocab *vocabulary.Vocabulary, text string) []ConceptHit {
	lowered := strings.ToLower(text)

	var hits []ConceptHit
	for _, concept := range vocab.Concepts() {
		if n := countWord(lowered, concept); n > 0 {
			hits = append(hits, ConceptHit{Concept: concept, Count: n})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Count > hits[j].Count
	})
	if len(hits) > MaxConcepts {
		hits = hits[:MaxConcepts]
	}
	return hits
}

// countWord counts non-overlapping occurrences of phrase in text that are not
// adjacent to another word rune.
func countWord(text, phrase string) int {
	if phrase == "" {
		return 0
	}

	count := 0
	for i := 0; i <= len(text)-len(phrase); {
		j := strings.Index(text[i:], phrase)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(phrase)

		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		i = start + size
	}
	return count
}

func boundaryBefore(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return !isWordRune(r)
}

func boundaryAfter(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
