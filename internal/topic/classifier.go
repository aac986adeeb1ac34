package topic

// Classify runs extraction, categorization and label selection over text
func (c *implClassifier) Classify(text string) Result {
	hits := Extract(c.vocab, text)
	categories := Categorize(c.vocab, hits)
	category, _ := SelectCategory(categories)

	return Result{
		Hits:       hits,
		Categories: categories,
		Weights:    Weigh(categories),
		Category:   category,
		Label:      SelectLabel(c.vocab, categories),
	}
}
