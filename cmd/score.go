package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/moodcheck/internal/answerfile"
	"github.com/abhisek/moodcheck/internal/assessment"
	"github.com/abhisek/moodcheck/internal/logging"
	"github.com/abhisek/moodcheck/internal/questionnaire"
	"github.com/abhisek/moodcheck/internal/report"
)

// exitIncomplete is the exit status when answers are missing.
const exitIncomplete = 2

type scoreInput struct {
	File  string
	Pairs []string
}

func newScoreCmd() *cobra.Command {
	var in scoreInput

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score answers from a file or flags without the interactive form",
		Example: `  moodcheck score --file answers.yaml
  moodcheck score -a q1=2 -a q2=1 ... -a q9=0 --format json
  echo '{"q1":"3", ...}' | moodcheck score --file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, q, err := setup(cmd, false)
			if err != nil {
				return err
			}
			defer log.Close()

			return runScore(cmd.InOrStdin(), cmd.OutOrStdout(), in, report.Format(cfg.Format), q, log)
		},
	}

	cmd.Flags().StringVarP(&in.File, "file", "f", "", `JSON or YAML answer file ("-" reads JSON from stdin)`)
	cmd.Flags().StringArrayVarP(&in.Pairs, "answer", "a", nil, "Answer as question=value, e.g. q3=2 (repeatable, overrides --file)")
	cmd.Flags().String("format", "", "Output format: text, md or json (overrides MOODCHECK_FORMAT)")

	return cmd
}

// runScore records the answers, evaluates and writes the result. It returns
// an *ExitError with exitIncomplete after writing the prompt when any
// question is unanswered.
func runScore(stdin io.Reader, w io.Writer, in scoreInput, format report.Format, q *questionnaire.Questionnaire, log *logging.Logger) error {
	answers, err := collectAnswers(stdin, in)
	if err != nil {
		return err
	}

	e := assessment.New()
	if err := answers.Apply(e); err != nil {
		return err
	}
	log.Debug("answers recorded", "event", "record", "answered", e.Answered())

	score, ok := e.Evaluate()
	if !ok {
		inc := report.BuildIncomplete(e, q)
		log.Info("evaluation incomplete", "event", "evaluate", "answered", e.Answered(), "missing", len(inc.Missing))
		if err := report.RenderIncomplete(w, format, inc, q); err != nil {
			return err
		}
		return &ExitError{Code: exitIncomplete}
	}

	r, _ := report.Build(e, q)
	log.Info("evaluated", "event", "evaluate", "answered", e.Answered(), "score", score, "category", string(r.Severity))
	return report.Render(w, format, r, q)
}

func collectAnswers(stdin io.Reader, in scoreInput) (answerfile.Answers, error) {
	answers := answerfile.Answers{}

	switch in.File {
	case "":
	case "-":
		a, err := answerfile.Decode(stdin, answerfile.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		answers = a
	default:
		a, err := answerfile.ReadFile(in.File)
		if err != nil {
			return nil, err
		}
		answers = a
	}

	if len(in.Pairs) > 0 {
		pairs, err := answerfile.ParsePairs(in.Pairs)
		if err != nil {
			return nil, err
		}
		answers = answers.Merge(pairs)
	}

	return answers, nil
}
