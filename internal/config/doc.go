// Package config resolves the effective settings of a run. Built-in defaults
// are overlaid by the global override file in the home directory, the
// project override file in the working directory, NEW_COMPONENT_*
// environment variables and finally command-line flags. Override files are
// validated against an embedded JSON Schema before they are merged.
package config
