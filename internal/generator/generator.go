package generator

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/new-component/internal/branding"
	"github.com/agentx-labs/new-component/internal/format"
	"github.com/agentx-labs/new-component/internal/fsys"
	"github.com/agentx-labs/new-component/internal/templates"
)

// Notifier receives progress events. console.Logger implements it.
type Notifier interface {
	Intro(name, dir string)
	ItemCompleted(msg string)
	Conclusion()
}

type nopNotifier struct{}

func (nopNotifier) Intro(string, string)  {}
func (nopNotifier) ItemCompleted(string) {}
func (nopNotifier) Conclusion()          {}

// Target is one rendered file on its way to disk.
type Target struct {
	Asset       templates.Asset
	OutputPath  string
	Raw         string
	Substituted string
	Formatted   string
}

// Result describes a completed generation.
type Result struct {
	Dir   string
	Files []string // written file names, in generation order
}

// Generator renders the template assets into <dir>/<ComponentName>.
type Generator struct {
	dir       string
	fs        *fsys.Gateway
	source    fs.FS
	formatter format.Formatter
	notify    Notifier
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithFilesystem sets the gateway used for checks and writes.
func WithFilesystem(g *fsys.Gateway) Option {
	return func(gen *Generator) { gen.fs = g }
}

// WithTemplates sets the file system templates are read from.
func WithTemplates(src fs.FS) Option {
	return func(gen *Generator) { gen.source = src }
}

// WithFormatter sets the formatter applied to every code asset.
func WithFormatter(f format.Formatter) Option {
	return func(gen *Generator) { gen.formatter = f }
}

// WithNotifier sets the receiver of progress events.
func WithNotifier(n Notifier) Option {
	return func(gen *Generator) { gen.notify = n }
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(gen *Generator) { gen.logger = l }
}

// New creates a Generator writing components below dir. Without options it
// uses the OS file system, the bundled templates and the built-in formatter.
func New(dir string, opts ...Option) *Generator {
	g := &Generator{
		dir:       dir,
		fs:        fsys.New(),
		source:    templates.Bundled(),
		formatter: format.Dispatch(format.DefaultOptions()),
		notify:    nopNotifier{},
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ComponentDir returns the directory the request generates into.
func (g *Generator) ComponentDir(req Request) string {
	return filepath.Join(g.dir, req.ComponentName)
}

// Check verifies the preconditions of req without touching the file system.
func (g *Generator) Check(req Request) error {
	if strings.TrimSpace(req.ComponentName) == "" {
		return missingNameError()
	}
	if !g.fs.IsDir(g.dir) {
		return &UsageError{Message: fmt.Sprintf(
			"Sorry, you need to create a parent \"components\" directory.\n(%s is looking for a directory at %s).",
			branding.CLIName(), g.dir)}
	}
	if dir := g.ComponentDir(req); g.fs.Exists(dir) {
		return &UsageError{Message: fmt.Sprintf(
			"Looks like this component already exists! There's already a component at %s.\nPlease delete this directory and try again.",
			dir)}
	}
	return nil
}

// Generate checks the preconditions, creates the component directory and
// writes every asset in order. On error the returned Result lists the files
// written so far.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := g.Check(req); err != nil {
		return nil, err
	}

	dir := g.ComponentDir(req)
	g.notify.Intro(req.ComponentName, dir)

	if err := g.fs.Mkdir(dir); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}
	g.notify.ItemCompleted("Directory created.")

	result := &Result{Dir: dir}
	replacer := templates.NewReplacer(req.values())

	for _, asset := range templates.Assets() {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("generating %s: %w", req.ComponentName, err)
		}

		target, err := g.render(ctx, asset, req, replacer)
		if err != nil {
			return result, err
		}

		g.logger.Debug("writing asset", "asset", string(asset.Kind), "path", target.OutputPath, "formatted", asset.Format)
		if err := g.fs.WriteFile(target.OutputPath, target.Formatted); err != nil {
			return result, &WriteError{Asset: asset.Kind, Path: target.OutputPath, Err: err}
		}

		result.Files = append(result.Files, filepath.Base(target.OutputPath))
		g.notify.ItemCompleted(asset.Done(req.LanguageCode))
	}

	g.notify.Conclusion()
	return result, nil
}

// Render produces the target for a single asset without writing it.
func (g *Generator) Render(ctx context.Context, asset templates.Asset, req Request) (Target, error) {
	return g.render(ctx, asset, req, templates.NewReplacer(req.values()))
}

func (g *Generator) render(ctx context.Context, asset templates.Asset, req Request, replacer *strings.Replacer) (Target, error) {
	raw, err := fs.ReadFile(g.source, asset.Source)
	if err != nil {
		return Target{}, &TemplateReadError{Asset: asset.Kind, Path: asset.Source, Err: err}
	}

	t := Target{
		Asset:      asset,
		OutputPath: filepath.Join(g.ComponentDir(req), asset.OutputName(req.ComponentName, req.LanguageCode)),
		Raw:        string(raw),
	}
	t.Substituted = replacer.Replace(t.Raw)
	t.Formatted = t.Substituted

	if asset.Format {
		out, err := g.formatter.Format(ctx, t.OutputPath, t.Substituted)
		if err != nil {
			return t, &FormatError{Asset: asset.Kind, Path: t.OutputPath, Err: err}
		}
		t.Formatted = out
	}
	return t, nil
}
