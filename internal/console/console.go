// Package console prints the progress and error messages of a generation run
// and builds the debug logger behind --verbose.
package console

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/agentx-labs/new-component/internal/branding"
)

// Logger writes human-oriented messages. Progress goes to Out, errors to Err.
type Logger struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New returns a Logger. Color is dropped when NO_COLOR is set.
func New(out, errw io.Writer, useColor bool) *Logger {
	if os.Getenv("NO_COLOR") != "" {
		useColor = false
	}
	return &Logger{Out: out, Err: errw, Color: useColor}
}

func (l *Logger) paint(style color.Style, s string) string {
	if !l.Color {
		return s
	}
	return style.Sprint(s)
}

// Intro announces the component about to be generated.
func (l *Logger) Intro(name, dir string) {
	fmt.Fprintln(l.Out)
	fmt.Fprintf(l.Out, "✨  Creating the %s component ✨\n", l.paint(color.New(color.FgCyan, color.OpBold), name))
	fmt.Fprintln(l.Out)
	fmt.Fprintf(l.Out, "Directory:  %s\n", l.paint(color.New(color.FgCyan), dir))
	fmt.Fprintln(l.Out, l.paint(color.New(color.FgGray), strings.Repeat("=", 41)))
	fmt.Fprintln(l.Out)
}

// ItemCompleted reports one finished step.
func (l *Logger) ItemCompleted(msg string) {
	fmt.Fprintf(l.Out, "%s %s\n", l.paint(color.New(color.FgGreen), "✓"), msg)
}

// Conclusion closes a successful run.
func (l *Logger) Conclusion() {
	fmt.Fprintln(l.Out)
	fmt.Fprintln(l.Out, l.paint(color.New(color.FgGreen, color.OpBold), "✨  Component created!  ✨"))
	fmt.Fprintf(l.Out, "Thanks for using %s.\n", branding.CLIName())
	fmt.Fprintln(l.Out)
}

// Error reports a message the user has to act on.
func (l *Logger) Error(msg string) {
	fmt.Fprintln(l.Err)
	fmt.Fprintln(l.Err, l.paint(color.New(color.FgRed, color.OpBold), "Error creating component."))
	fmt.Fprintln(l.Err, l.paint(color.New(color.FgRed), msg))
	fmt.Fprintln(l.Err)
}

// Files lists paths, used by --dry-run and eject.
func (l *Logger) Files(header, dir string, files []string) {
	fmt.Fprintf(l.Out, "%s %s/\n", header, dir)
	for _, f := range files {
		fmt.Fprintf(l.Out, "  %s\n", f)
	}
}

// NewDebugLogger returns the logger used for --verbose traces. Without
// verbose only warnings and errors are emitted.
func NewDebugLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
