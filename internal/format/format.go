package format

import (
	"context"
	"fmt"
)

// Supported engine identifiers.
const (
	EngineBuiltin  = "builtin"
	EnginePrettier = "prettier"
	EngineNone     = "none"
)

// Options configures a formatter. The field names follow prettier's so an
// existing prettier configuration block can be reused as-is.
type Options struct {
	Engine      string `mapstructure:"engine" json:"engine" yaml:"engine" toml:"engine"`
	Command     string `mapstructure:"command" json:"command" yaml:"command" toml:"command"`
	TabWidth    int    `mapstructure:"tabWidth" json:"tabWidth" yaml:"tabWidth" toml:"tabWidth"`
	UseTabs     bool   `mapstructure:"useTabs" json:"useTabs" yaml:"useTabs" toml:"useTabs"`
	PrintWidth  int    `mapstructure:"printWidth" json:"printWidth" yaml:"printWidth" toml:"printWidth"`
	Semi        bool   `mapstructure:"semi" json:"semi" yaml:"semi" toml:"semi"`
	SingleQuote bool   `mapstructure:"singleQuote" json:"singleQuote" yaml:"singleQuote" toml:"singleQuote"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Engine:     EngineBuiltin,
		Command:    "prettier",
		TabWidth:   2,
		PrintWidth: 80,
		Semi:       true,
	}
}

// Formatter rewrites the source of a single file.
type Formatter interface {
	// Format returns the formatted src. filename is used for diagnostics and
	// to let external tools infer the parser.
	Format(ctx context.Context, filename, src string) (string, error)
}

// Dispatch returns the Formatter for opts.Engine. Unknown engines yield a
// formatter that always fails, so the error surfaces on first use.
func Dispatch(opts Options) Formatter {
	switch opts.Engine {
	case EngineBuiltin, "":
		return &Builtin{opts: opts}
	case EnginePrettier:
		return &Prettier{opts: opts}
	case EngineNone:
		return nop{}
	default:
		return &unknownEngine{name: opts.Engine}
	}
}

type nop struct{}

func (nop) Format(_ context.Context, _, src string) (string, error) {
	return src, nil
}

type unknownEngine struct {
	name string
}

func (u *unknownEngine) Format(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("unsupported formatter engine %q (supported: %s, %s, %s)",
		u.name, EngineBuiltin, EnginePrettier, EngineNone)
}
