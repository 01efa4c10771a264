package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/new-component/internal/config"
	"github.com/agentx-labs/new-component/internal/console"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/fsys"
	"github.com/agentx-labs/new-component/internal/generator"
	"github.com/agentx-labs/new-component/internal/templates"
)

// usageExitCode is returned for reported usage errors when strictExit is on.
const usageExitCode = 2

var (
	genDir        string
	genLang       string
	genDryRun     bool
	genStrictExit bool
	genCheck      bool
)

func init() {
	rootCmd.Flags().StringVarP(&genDir, "dir", "d", "", "Path to the components directory (default \""+config.DefaultDir+"\")")
	rootCmd.Flags().StringVarP(&genLang, "lang", "l", "", "Language code of the localization file (default \"en-en\")")
	rootCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Render every file in memory and list what would be written")
	rootCmd.Flags().BoolVar(&genCheck, "check", false, "Read the generated files back and fail if a placeholder is left")
	rootCmd.Flags().BoolVar(&genStrictExit, "strict-exit", false, "Exit with status 2 when the component cannot be created")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out, errw := cmd.OutOrStdout(), cmd.ErrOrStderr()
	logger := console.NewDebugLogger(errw, verbose)
	con := console.New(out, errw, !noColor)

	cfg, err := config.Resolve(config.DefaultResolveOptions(cmd.Flags()))
	if err != nil {
		return err
	}
	logger.Debug("resolved configuration",
		"sources", cfg.Sources, "dir", cfg.Dir, "lang", cfg.Lang,
		"formatter", cfg.Formatter.Engine, "templatesDir", cfg.TemplatesDir)

	if err := checkRequiredVersion(cfg); err != nil {
		return usageFailure(con, cfg, err)
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}
	req, err := generator.NewRequest(name, cfg.Lang)
	if err != nil {
		return usageFailure(con, cfg, err)
	}

	opts := []generator.Option{
		generator.WithTemplates(templates.Source(cfg.TemplatesDir)),
		generator.WithFormatter(format.Dispatch(cfg.Formatter)),
		generator.WithLogger(logger),
	}
	gw := fsys.New()
	if genDryRun {
		gw = fsys.NewDryRun()
	} else {
		opts = append(opts, generator.WithNotifier(con))
	}
	opts = append(opts, generator.WithFilesystem(gw))

	result, err := generator.New(cfg.Dir, opts...).Generate(cmd.Context(), req)
	if err != nil {
		return usageFailure(con, cfg, err)
	}

	if genCheck {
		if err := checkPlaceholders(gw, result); err != nil {
			return err
		}
		con.ItemCompleted("No placeholders left.")
	}
	if genDryRun {
		con.Files("Dry run, nothing written. Would create", result.Dir, result.Files)
	}
	return nil
}

// checkPlaceholders reads every generated file back and reports the first
// one that still contains a placeholder token.
func checkPlaceholders(gw *fsys.Gateway, result *generator.Result) error {
	for _, name := range result.Files {
		path := filepath.Join(result.Dir, name)
		content, err := gw.ReadFile(path)
		if err != nil {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		if left := templates.Placeholders(content); len(left) > 0 {
			return fmt.Errorf("%s still contains placeholders: %s", path, strings.Join(left, ", "))
		}
	}
	return nil
}

// checkRequiredVersion turns a requiredVersion mismatch into a usage error.
func checkRequiredVersion(cfg config.Config) error {
	err := config.CheckVersion(cfg.RequiredVersion, buildVersion)
	var versionErr *config.VersionError
	if errors.As(err, &versionErr) {
		return &generator.UsageError{Message: versionErr.Error()}
	}
	return err
}

// usageFailure reports usage errors through the console and returns the
// configured exit code. Every other error is passed through unchanged.
func usageFailure(con *console.Logger, cfg config.Config, err error) error {
	var usageErr *generator.UsageError
	if !errors.As(err, &usageErr) {
		return err
	}
	con.Error(usageErr.Message)
	if cfg.StrictExit {
		return &ExitError{Code: usageExitCode}
	}
	return nil
}
