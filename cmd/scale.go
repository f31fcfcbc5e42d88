package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/moodcheck/internal/assessment"
	"github.com/abhisek/moodcheck/internal/questionnaire"
)

func newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Print the score ranges of each severity category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, q, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer log.Close()

			printScale(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func printScale(w io.Writer, q *questionnaire.Questionnaire) {
	fmt.Fprintf(w, "%-7s  %-12s  %s\n", "Score", "Category", "Label")
	for _, b := range assessment.Bands() {
		fmt.Fprintf(w, "%-7s  %-12s  %s\n",
			fmt.Sprintf("%d-%d", b.Min, b.Max), string(b.Severity), q.SeverityLabel(b.Severity))
	}
}
