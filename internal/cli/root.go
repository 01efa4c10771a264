package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/new-component/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbose bool
	noColor bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print debug traces to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(branding.CLIName() + " version {{.Version}}\n")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <componentName>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a component directory with a component, story, documentation,
test, styles, index and localization file, named after <componentName>.

Examples:
  new-component Avatar
  new-component Avatar --dir app/ui --lang fr-fr

Report issues at https://github.com/` + branding.GitHubRepo() + `.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

// ExitError carries the exit code of a failure that was already reported.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps the error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// Execute runs the root command with build info injected via ldflags.
// Errors that were not already reported are printed to stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	err := rootCmd.Execute()
	report(rootCmd, err)
	return err
}

func report(cmd *cobra.Command, err error) {
	var exitErr *ExitError
	if err == nil || errors.As(err, &exitErr) {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), err)
}
