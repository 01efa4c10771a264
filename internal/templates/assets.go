package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed assets/*
var assetFS embed.FS

const assetsRoot = "assets"

// Kind identifies one of the generated files.
type Kind string

// Asset kinds, in generation order.
const (
	KindComponent    Kind = "component"
	KindStory        Kind = "story"
	KindDoc          Kind = "doc"
	KindTest         Kind = "test"
	KindStyles       Kind = "styles"
	KindIndex        Kind = "index"
	KindLocalization Kind = "localization"
)

// Asset describes how one template file becomes one output file.
type Asset struct {
	Kind   Kind
	Source string // path inside the template FS
	Label  string // used in the completion message
	Format bool   // run through the code formatter before writing

	output func(name, lang string) string
}

// OutputName returns the file name written inside the component directory.
func (a Asset) OutputName(name, lang string) string {
	return a.output(name, lang)
}

// Done returns the progress message reported after the asset is written.
func (a Asset) Done(lang string) string {
	if a.Kind == KindLocalization {
		return fmt.Sprintf("Lang %s created.", lang)
	}
	return a.Label + " created."
}

func suffixed(suffix string) func(name, lang string) string {
	return func(name, _ string) string { return name + suffix }
}

var assets = []Asset{
	{Kind: KindComponent, Source: "component.js", Label: "Component", Format: true, output: suffixed(".js")},
	{Kind: KindStory, Source: "component.stories.js", Label: "Story", Format: true, output: suffixed(".stories.js")},
	{Kind: KindDoc, Source: "component.md", Label: "Doc", Format: false, output: suffixed(".md")},
	{Kind: KindTest, Source: "component.test.js", Label: "Test", Format: true, output: suffixed(".test.js")},
	{Kind: KindStyles, Source: "component.styles.js", Label: "Styles", Format: true, output: suffixed(".styles.js")},
	{Kind: KindIndex, Source: "index.js", Label: "Index", Format: true, output: func(string, string) string { return "index.js" }},
	{Kind: KindLocalization, Source: "component.lang.js", Label: "Lang", Format: true, output: func(name, lang string) string {
		return name + ".lang." + lang + ".js"
	}},
}

// Assets returns the template assets in generation order.
func Assets() []Asset {
	out := make([]Asset, len(assets))
	copy(out, assets)
	return out
}

// Source returns the file system templates are read from: the bundled
// assets, or dir when a custom template directory is configured.
func Source(dir string) fs.FS {
	if dir != "" {
		return os.DirFS(dir)
	}
	return Bundled()
}

// Bundled returns the templates compiled into the binary.
func Bundled() fs.FS {
	sub, err := fs.Sub(assetFS, assetsRoot)
	if err != nil {
		// assetsRoot is a constant embedded directory.
		panic(err)
	}
	return sub
}
