package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/abhisek/moodcheck/internal/questionnaire"
)

// version is set via -ldflags at build time.
var version = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printVersion(cmd.OutOrStdout(), version)
		},
	}
}

// printVersion prints the build version, canonicalised when it is a
// semantic version, and the version of each built-in questionnaire.
func printVersion(w io.Writer, v string) error {
	if semver.IsValid(v) {
		v = semver.Canonical(v)
	}
	fmt.Fprintln(w, "moodcheck", v)

	locales, err := questionnaire.Locales()
	if err != nil {
		return err
	}
	for _, l := range locales {
		q, err := questionnaire.Load(l)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  questionnaire %s %s\n", l, q.Version)
	}
	return nil
}
