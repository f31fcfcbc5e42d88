package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/moodcheck/internal/app"
	"github.com/abhisek/moodcheck/internal/config"
	"github.com/abhisek/moodcheck/internal/logging"
	"github.com/abhisek/moodcheck/internal/questionnaire"
)

// ExitError carries a process exit status out of Execute. Err is nil when
// the command already reported the problem on its own output.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewRootCmd builds the moodcheck command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "moodcheck",
		Short: "PHQ-9 depression self-check for the terminal",
		Long: "moodcheck walks through the nine PHQ-9 questions, adds up the answers and " +
			"maps the score to a severity category. Nothing leaves your machine.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, false)
		},
	}

	root.PersistentFlags().String("locale", "", "Questionnaire language (overrides MOODCHECK_LOCALE env var)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides MOODCHECK_LOG_LEVEL)")
	root.PersistentFlags().String("log-file", "", "Write JSON logs to this file (overrides MOODCHECK_LOG_FILE)")

	root.AddCommand(newTakeCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newScaleCmd())
	root.AddCommand(newQuestionsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig resolves settings: defaults, then environment, then flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.FromEnv()

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale, _ = flags.GetString("locale")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// setup loads the config, the logger and the questionnaire. quiet keeps
// logs off the terminal. The caller closes the logger.
func setup(cmd *cobra.Command, quiet bool) (config.Config, *logging.Logger, *questionnaire.Questionnaire, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, nil, err
	}

	log, err := logging.New(logging.Config{
		Level:  cfg.Level(),
		File:   cfg.LogFile,
		Writer: cmd.ErrOrStderr(),
		Quiet:  quiet,
	})
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("set up logging: %w", err)
	}

	q, err := questionnaire.Load(cfg.Locale)
	if err != nil {
		log.Close()
		return cfg, nil, nil, err
	}
	log.Debug("questionnaire loaded", "locale", q.Locale, "version", q.Version)

	return cfg, log, q, nil
}

// runTUI launches the interactive app.
func runTUI(cmd *cobra.Command, startInForm bool) error {
	_, log, q, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer log.Close()

	return app.Run(app.Options{
		Questionnaire: q,
		Logger:        log,
		StartInForm:   startInForm,
	})
}
