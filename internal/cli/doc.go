// Package cli defines the Cobra command tree for the new-component CLI. The
// root command generates a component; each other file registers one
// subcommand (version, config, eject) with it. Commands delegate to the
// internal packages and only handle flags, output and exit codes.
package cli
