package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/config"
)

var configFormat string

func init() {
	configShowCmd.Flags().StringVarP(&configFormat, "format", "o", "yaml", "Output format: yaml, json or toml")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
	Long: `Read the effective configuration and write the global settings stored at
~/` + branding.ConfigFile() + `. A ` + branding.ConfigFile() + ` in the current
directory overrides the global file for that project. Environment variables
prefixed with ` + branding.EnvPrefix() + `_ (e.g. ` + branding.EnvVar("dir") + `) override both.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(config.DefaultResolveOptions(nil))
		if err != nil {
			return err
		}
		data, err := config.Render(cfg, configFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve(config.DefaultResolveOptions(nil))
		if err != nil {
			return err
		}
		value, err := cfg.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a value in the global configuration file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locating home directory: %w", err)
		}
		key, value := args[0], args[1]
		path, err := config.SetGlobal(home, key, value)
		if err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := config.DefaultResolveOptions(nil)
		out := cmd.OutOrStdout()
		for _, p := range []struct{ label, path string }{
			{"global", config.GlobalPath(opts.HomeDir)},
			{"local", config.LocalPath(opts.WorkDir)},
		} {
			if p.path == "" {
				continue
			}
			state := "missing"
			if _, err := os.Stat(p.path); err == nil {
				state = "found"
			}
			fmt.Fprintf(out, "%-7s %s (%s)\n", p.label, p.path, state)
		}
		return nil
	},
}
