package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:   "lecturetopics [folder] [output]",
		Short: "Label probability lecture transcripts by topic",
		Long: "Reads every transcript JSON file in <folder>, derives the dominant probability topic of\n" +
			"each lecture and writes a consolidated report (default: argomenti_lezioni.txt).",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, ctx, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	flags.StringVar(&ctx.vocabularyFlag, "vocabulary", "", "Vocabulary file (default: built-in probability vocabulary)")
	flags.StringVar(&ctx.logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	flags.IntVar(&ctx.concurrencyFlag, "concurrency", 0, "Transcripts processed at once")
	flags.StringVar(&ctx.docxFlag, "docx", "", "Also write the report as a DOCX file")

	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newExplainCommand(ctx))
	rootCmd.AddCommand(newVocabularyCommand(ctx))

	return rootCmd
}

var errNoFolder = errors.New("the transcript folder path is required (argument or paths.input)")
