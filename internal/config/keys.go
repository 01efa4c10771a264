package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindInt
)

// keys lists every settable key in its canonical spelling.
var keys = map[string]keyKind{
	"dir":                   kindString,
	"lang":                  kindString,
	"templatesDir":          kindString,
	"requiredVersion":       kindString,
	"strictExit":            kindBool,
	"formatter.engine":      kindString,
	"formatter.command":     kindString,
	"formatter.tabWidth":    kindInt,
	"formatter.useTabs":     kindBool,
	"formatter.printWidth":  kindInt,
	"formatter.semi":        kindBool,
	"formatter.singleQuote": kindBool,
}

// Keys returns the known configuration keys, sorted.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// canonicalKey matches key case-insensitively against the known keys.
func canonicalKey(key string) (string, keyKind, bool) {
	for k, kind := range keys {
		if strings.EqualFold(k, key) {
			return k, kind, true
		}
	}
	return "", 0, false
}

// Lookup returns the value of key in cfg formatted as a string.
func (c Config) Lookup(key string) (string, error) {
	k, _, ok := canonicalKey(key)
	if !ok {
		return "", fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	f := c.Formatter
	switch k {
	case "dir":
		return c.Dir, nil
	case "lang":
		return c.Lang, nil
	case "templatesDir":
		return c.TemplatesDir, nil
	case "requiredVersion":
		return c.RequiredVersion, nil
	case "strictExit":
		return strconv.FormatBool(c.StrictExit), nil
	case "formatter.engine":
		return f.Engine, nil
	case "formatter.command":
		return f.Command, nil
	case "formatter.tabWidth":
		return strconv.Itoa(f.TabWidth), nil
	case "formatter.useTabs":
		return strconv.FormatBool(f.UseTabs), nil
	case "formatter.printWidth":
		return strconv.Itoa(f.PrintWidth), nil
	case "formatter.semi":
		return strconv.FormatBool(f.Semi), nil
	default:
		return strconv.FormatBool(f.SingleQuote), nil
	}
}

// SetGlobal writes key=value into the global override file in home,
// creating it when missing. The updated file is validated before it is
// written, so an invalid value leaves the file untouched.
func SetGlobal(home, key, value string) (string, error) {
	path := GlobalPath(home)
	if path == "" {
		return "", errors.New("cannot locate the home directory")
	}

	k, kind, ok := canonicalKey(key)
	if !ok {
		return "", fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	typed, err := parseValue(kind, value)
	if err != nil {
		return "", fmt.Errorf("invalid value for %s: %w", k, err)
	}

	settings := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &settings); err != nil {
			return "", fmt.Errorf("parsing config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return "", fmt.Errorf("reading config file %s: %w", path, err)
	}

	setNested(settings, strings.Split(k, "."), typed)

	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}
	result, err := Validate(out)
	if err != nil {
		return "", err
	}
	if !result.Valid {
		return "", &ValidationError{Path: path, Issues: result.Issues}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing config file %s: %w", path, err)
	}
	return path, nil
}

func parseValue(kind keyKind, value string) (any, error) {
	switch kind {
	case kindBool:
		return strconv.ParseBool(value)
	case kindInt:
		return strconv.Atoi(value)
	default:
		return value, nil
	}
}

func setNested(m map[string]any, path []string, value any) {
	if len(path) == 1 {
		m[path[0]] = value
		return
	}
	child, ok := m[path[0]].(map[string]any)
	if !ok {
		child = map[string]any{}
		m[path[0]] = child
	}
	setNested(child, path[1:], value)
}
