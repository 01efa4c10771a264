package config

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Render formats cfg as yaml (the default), json or toml.
func Render(cfg Config, format string) ([]byte, error) {
	switch format {
	case "", "yaml":
		return yaml.Marshal(cfg)
	case "json":
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "toml":
		return toml.Marshal(cfg)
	default:
		return nil, fmt.Errorf("unsupported output format %q (supported: yaml, json, toml)", format)
	}
}
