package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-topics/internal/topic"
	"github.com/nguyentantai21042004/lecture-topics/internal/transcript"
)

func newExplainCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <file.json>",
		Short: "Show the concepts, category weights and label derived from one transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := ctx.ensureVocabulary()
			if err != nil {
				return err
			}

			doc, err := transcript.Read(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(args[0]), err)
			}

			res := topic.New(vocab).Classify(doc.Text)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s\n\n", transcript.Stem(args[0]))
			if len(res.Hits) > 0 {
				rows := make([][]string, 0, len(res.Hits))
				for _, h := range res.Hits {
					rows = append(rows, []string{h.Concept, strconv.Itoa(h.Count), vocab.Classify(h.Concept)})
				}
				fmt.Fprintln(out, renderTable([]string{"Concept", "Count", "Category"}, rows,
					[]columnAlignment{alignLeft, alignRight, alignLeft}))

				rows = rows[:0]
				for _, w := range res.Weights {
					mark := ""
					if w.Category == res.Category {
						mark = "*"
					}
					rows = append(rows, []string{
						mark,
						w.Category,
						strconv.Itoa(w.Concepts),
						strconv.Itoa(w.Occurrences),
						strconv.Itoa(w.Weight),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"", "Category", "Concepts", "Occurrences", "Weight"}, rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight}))
				fmt.Fprintln(out)
			}

			fmt.Fprintf(out, "Label: %s\n", res.Label)
			return nil
		},
	}
}
