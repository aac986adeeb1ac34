package topic

import (
	"github.com/nguyentantai21042004/lecture-topics/internal/vocabulary"
)

type implClassifier struct {
	vocab *vocabulary.Vocabulary
}

// New creates a Classifier over the given vocabulary
func New(vocab *vocabulary.Vocabulary) Classifier {
	return &implClassifier{
		vocab: vocab,
	}
}
