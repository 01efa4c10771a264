package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/naming"
)

// DefaultDir is the components directory used when nothing is configured.
const DefaultDir = "src/components"

// legacyFormatterKey is the key older configuration files used for the
// formatter block.
const legacyFormatterKey = "prettierConfig"

// Config is the effective configuration of one run.
type Config struct {
	Dir             string         `mapstructure:"dir" json:"dir" yaml:"dir" toml:"dir"`
	Lang            string         `mapstructure:"lang" json:"lang" yaml:"lang" toml:"lang"`
	TemplatesDir    string         `mapstructure:"templatesDir" json:"templatesDir,omitempty" yaml:"templatesDir,omitempty" toml:"templatesDir,omitempty"`
	RequiredVersion string         `mapstructure:"requiredVersion" json:"requiredVersion,omitempty" yaml:"requiredVersion,omitempty" toml:"requiredVersion,omitempty"`
	StrictExit      bool           `mapstructure:"strictExit" json:"strictExit" yaml:"strictExit" toml:"strictExit"`
	Formatter       format.Options `mapstructure:"formatter" json:"formatter" yaml:"formatter" toml:"formatter"`

	// Sources lists the override files that were merged, lowest precedence first.
	Sources []string `mapstructure:"-" json:"-" yaml:"-" toml:"-"`
}

// ResolveOptions locates the override files and carries the command-line
// flags. Empty directories skip the corresponding file.
type ResolveOptions struct {
	HomeDir string
	WorkDir string
	Flags   *pflag.FlagSet
}

// DefaultResolveOptions uses the user's home and the current directory.
func DefaultResolveOptions(flags *pflag.FlagSet) ResolveOptions {
	opts := ResolveOptions{Flags: flags}
	if home, err := os.UserHomeDir(); err == nil {
		opts.HomeDir = home
	}
	if wd, err := os.Getwd(); err == nil {
		opts.WorkDir = wd
	}
	return opts
}

// GlobalPath returns the path of the global override file.
func GlobalPath(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, branding.ConfigFile())
}

// LocalPath returns the path of the project override file.
func LocalPath(workDir string) string {
	if workDir == "" {
		return ""
	}
	return filepath.Join(workDir, branding.ConfigFile())
}

// flagKeys maps configuration keys to the flags that override them.
var flagKeys = map[string]string{
	"dir":        "dir",
	"lang":       "lang",
	"strictExit": "strict-exit",
}

// Resolve merges defaults, override files, environment and flags. It never
// touches process-wide viper state.
func Resolve(opts ResolveOptions) (Config, error) {
	v := viper.New()
	setDefaults(v)

	var sources []string
	paths := []string{GlobalPath(opts.HomeDir), LocalPath(opts.WorkDir)}
	if paths[0] == paths[1] {
		paths = paths[:1]
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		settings, err := readFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, err
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return Config{}, fmt.Errorf("merging config file %s: %w", path, err)
		}
		sources = append(sources, path)
	}

	for _, key := range Keys() {
		if err := v.BindEnv(key, envName(key)); err != nil {
			return Config{}, fmt.Errorf("binding environment for %s: %w", key, err)
		}
	}

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.Lang == "" {
		cfg.Lang = naming.DefaultLanguage
	}
	cfg.Sources = sources
	return cfg, nil
}

// envName returns the variable that overrides key, e.g.
// "formatter.tabWidth" → "NEW_COMPONENT_FORMATTER_TABWIDTH".
func envName(key string) string {
	return branding.EnvVar(strings.ReplaceAll(key, ".", "_"))
}

func setDefaults(v *viper.Viper) {
	d := format.DefaultOptions()
	v.SetDefault("dir", DefaultDir)
	v.SetDefault("lang", naming.DefaultLanguage)
	v.SetDefault("templatesDir", "")
	v.SetDefault("requiredVersion", "")
	v.SetDefault("strictExit", false)
	v.SetDefault("formatter.engine", d.Engine)
	v.SetDefault("formatter.command", d.Command)
	v.SetDefault("formatter.tabWidth", d.TabWidth)
	v.SetDefault("formatter.useTabs", d.UseTabs)
	v.SetDefault("formatter.printWidth", d.PrintWidth)
	v.SetDefault("formatter.semi", d.Semi)
	v.SetDefault("formatter.singleQuote", d.SingleQuote)
}

// readFile loads, validates and normalizes one override file.
func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &ValidationError{Path: path, Issues: result.Issues}
	}

	var settings map[string]any
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&settings); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if legacy, ok := settings[legacyFormatterKey]; ok {
		if _, ok := settings["formatter"]; !ok {
			settings["formatter"] = legacy
		}
		delete(settings, legacyFormatterKey)
	}
	delete(settings, "type")
	return settings, nil
}
