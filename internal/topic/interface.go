package topic

// Classifier turns transcript text into a topic label
type Classifier interface {
	Classify(text string) Result
}
