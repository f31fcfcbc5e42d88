package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/moodcheck/internal/questionnaire"
)

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the questions and answer choices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, q, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer log.Close()

			printQuestions(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func printQuestions(w io.Writer, q *questionnaire.Questionnaire) {
	fmt.Fprintln(w, q.Title)
	fmt.Fprintln(w, q.Instructions)
	fmt.Fprintln(w)

	for _, qu := range q.Questions {
		fmt.Fprintf(w, "%-3s %s\n", qu.ID, qu.Text)
	}

	fmt.Fprintln(w)
	for _, c := range q.Choices {
		fmt.Fprintf(w, "  %s  %s\n", c.Value, c.Label)
	}
}
