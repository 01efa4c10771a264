package format

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Prettier formats by piping the source through an external prettier
// command. Command may carry leading arguments, e.g. "npx prettier".
type Prettier struct {
	opts Options
}

// Format implements Formatter.
func (p *Prettier) Format(ctx context.Context, filename, src string) (string, error) {
	fields := strings.Fields(p.opts.Command)
	if len(fields) == 0 {
		return "", fmt.Errorf("prettier formatter requires a command")
	}

	bin, err := exec.LookPath(fields[0])
	if err != nil {
		return "", fmt.Errorf("prettier formatter requires %s on PATH: %w", fields[0], err)
	}

	args := append(fields[1:], p.args(filename)...)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(src)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("running %s on %s: %w", fields[0], filename, err)
		}
		return "", fmt.Errorf("running %s on %s: %w: %s", fields[0], filename, err, msg)
	}
	return stdout.String(), nil
}

// args translates Options into prettier CLI flags.
func (p *Prettier) args(filename string) []string {
	args := []string{"--stdin-filepath", filename}
	if p.opts.TabWidth > 0 {
		args = append(args, "--tab-width", strconv.Itoa(p.opts.TabWidth))
	}
	if p.opts.UseTabs {
		args = append(args, "--use-tabs")
	}
	if p.opts.PrintWidth > 0 {
		args = append(args, "--print-width", strconv.Itoa(p.opts.PrintWidth))
	}
	if !p.opts.Semi {
		args = append(args, "--no-semi")
	}
	if p.opts.SingleQuote {
		args = append(args, "--single-quote")
	}
	return args
}
