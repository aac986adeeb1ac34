package reporter

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	// Title heads every report
	Title = "ARGOMENTI DELLE LEZIONI DI PROBABILITÀ"
	// ErrorLabel replaces the topic of a file that could not be processed
	ErrorLabel = "Errore nel processamento del file"

	dividerWidth = 50
	totalPrefix  = "Totale lezioni processate: "
)

// Entry is the outcome for one transcript file
type Entry struct {
	Stem     string
	Label    string
	Category string
	// Err is set when the file could not be read or parsed
	Err error
}

// Failed reports whether the file could not be processed
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Line renders the entry as it appears in the report
func (e Entry) Line() string {
	return fmt.Sprintf("%s: %s", e.Stem, e.Label)
}

// Summary describes a completed batch
type Summary struct {
	Entries    []Entry
	Processed  int
	Failed     int
	OutputPath string
	// Topics counts the files won by each category
	Topics map[string]int
}

func summarize(entries []Entry, outputPath string) Summary {
	s := Summary{
		Entries:    entries,
		Processed:  len(entries),
		OutputPath: outputPath,
		Topics:     make(map[string]int),
	}
	for _, e := range entries {
		switch {
		case e.Failed():
			s.Failed++
		case e.Category != "":
			s.Topics[e.Category]++
		}
	}
	return s
}

// Render produces the report body: header, divider, one line per entry
// and the trailing count.
func Render(entries []Entry) []byte {
	var buf bytes.Buffer
	buf.WriteString(Title + "\n")
	buf.WriteString(strings.Repeat("=", dividerWidth) + "\n")
	buf.WriteString("\n")

	for _, e := range entries {
		buf.WriteString(e.Line() + "\n")
	}

	buf.WriteString("\n")
	fmt.Fprintf(&buf, "%s%d\n", totalPrefix, len(entries))
	return buf.Bytes()
}
