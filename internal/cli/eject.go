package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/console"
	"github.com/agentx-labs/new-component/internal/templates"
)

var ejectForce bool

func init() {
	ejectCmd.Flags().BoolVar(&ejectForce, "force", false, "Overwrite files in a non-empty destination")
	rootCmd.AddCommand(ejectCmd)
}

var ejectCmd = &cobra.Command{
	Use:   "eject [dest]",
	Short: "Copy the bundled templates into the project for editing",
	Long: `Copies the bundled templates to dest (default ./` + branding.TemplatesDir() + `).
Point the templatesDir setting at the copy to generate from the edited files:

  new-component eject
  new-component config set templatesDir ` + branding.TemplatesDir(),
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := branding.TemplatesDir()
		if len(args) > 0 {
			dest = args[0]
		}

		files, err := templates.Eject(dest, ejectForce)
		if err != nil {
			return err
		}

		con := console.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), !noColor)
		con.Files("Templates copied to", dest, files)
		fmt.Fprintf(cmd.OutOrStdout(), "\nSet \"templatesDir\": %q in %s to use them.\n", dest, branding.ConfigFile())
		return nil
	},
}
