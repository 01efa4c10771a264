// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a fork can rename the tool and its config files
// without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	ConfigFile   string `yaml:"config_file"`
	TemplatesDir string `yaml:"templates_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GitHubRepo   string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:      "new-component",
			DisplayName:  "new-component",
			Description:  "Generate the boilerplate for a new React component",
			ConfigFile:   ".new-component-config.json",
			TemplatesDir: ".new-component-templates",
			EnvPrefix:    "NEW_COMPONENT",
			GitHubRepo:   "agentx-labs/new-component",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "new-component").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// ConfigFile returns the override file name looked up in the home and
// project directories (e.g., ".new-component-config.json").
func ConfigFile() string { load(); return defaults.ConfigFile }

// TemplatesDir returns the default destination of "eject".
func TemplatesDir() string { load(); return defaults.TemplatesDir }

// EnvPrefix returns the environment variable prefix (e.g., "NEW_COMPONENT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("dir") → "NEW_COMPONENT_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
