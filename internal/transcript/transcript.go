// Package transcript reads speech-to-text JSON documents from a folder.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"
)

// Ext is the extension of transcript documents
const Ext = ".json"

var (
	// ErrInputMissing means the target directory does not exist or is not a directory
	ErrInputMissing = errors.New("input directory missing")
	// ErrNoTranscripts means the directory holds no transcript documents
	ErrNoTranscripts = errors.New("no transcript files")
	// ErrMalformed means a document could not be decoded
	ErrMalformed = errors.New("malformed transcript")
	// ErrMissingText means a document has no usable text field
	ErrMissingText = errors.New("transcript has no text")
)

// Segment is a timed slice of the transcript. Not used for labelling.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Document is the decoded body of a transcript file
type Document struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments,omitempty"`
}

// rawDocument keeps text untyped so a non-string value is reported, not coerced
type rawDocument struct {
	Text     json.RawMessage `json:"text"`
	Segments json.RawMessage `json:"segments"`
}

// Read loads and decodes the document at path
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read transcript: %w", err)
	}
	return Decode(data)
}

// Decode parses a transcript body. Missing, non-string or empty text is ErrMissingText.
// A body that is not valid UTF-8 is ErrMalformed.
func Decode(data []byte) (Document, error) {
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("%w: not valid UTF-8", ErrMalformed)
	}

	var raw rawDocument
	if err := json.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(raw.Text) == 0 || string(raw.Text) == "null" {
		return Document{}, ErrMissingText
	}

	var doc Document
	if err := json.Unmarshal(raw.Text, &doc.Text); err != nil {
		return Document{}, fmt.Errorf("%w: text is not a string", ErrMissingText)
	}
	if doc.Text == "" {
		return Document{}, ErrMissingText
	}

	// segments belong to the text converter; a bad shape does not make the text unusable
	if len(raw.Segments) > 0 {
		_ = json.Unmarshal(raw.Segments, &doc.Segments)
	}

	return doc, nil
}

// Stem returns the file name without directory and transcript extension
func Stem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Ext)
}

// IsTranscript reports whether name carries the transcript extension
func IsTranscript(name string) bool {
	return filepath.Ext(name) == Ext
}

// Discover lists transcript files in dir sorted by file name
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputMissing, dir)
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInputMissing, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsTranscript(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTranscripts, dir)
	}

	sort.Strings(files)
	return files, nil
}
