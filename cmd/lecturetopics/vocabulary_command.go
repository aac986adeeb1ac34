package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-topics/internal/vocabulary"
)

func newVocabularyCommand(ctx *commandContext) *cobra.Command {
	var showConcepts bool

	cmd := &cobra.Command{
		Use:     "vocabulary",
		Aliases: []string{"vocab"},
		Short:   "Validate and print the active vocabulary",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := ctx.ensureVocabulary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			categories := vocab.Categories()
			rows := make([][]string, 0, len(categories)+1)
			for i, c := range categories {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					c.Name,
					c.DisplayLabel(),
					strings.Join(c.Terms, ", "),
				})
			}
			rows = append(rows, []string{"", vocabulary.OtherCategory, vocabulary.OtherCategory, "(unmatched concepts)"})

			fmt.Fprintln(out, renderTable([]string{"#", "Category", "Label", "Terms"}, rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft}))

			concepts := vocab.Concepts()
			fmt.Fprintf(out, "%d concepts, %d categories\n", len(concepts), len(categories))

			if showConcepts {
				rows = rows[:0]
				for _, c := range concepts {
					rows = append(rows, []string{c, vocab.Classify(c)})
				}
				fmt.Fprintln(out, renderTable([]string{"Concept", "Category"}, rows, nil))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showConcepts, "concepts", false, "Also list every concept with its category")
	return cmd
}
