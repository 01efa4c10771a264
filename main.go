package main

import (
	"os"

	"github.com/agentx-labs/new-component/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	err := cli.Execute(version, commit, date)
	os.Exit(cli.ExitCode(err))
}
