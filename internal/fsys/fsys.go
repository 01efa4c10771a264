// Package fsys is the file system gateway used by the generator. It wraps an
// afero.Fs so generation can run against the real disk, an in-memory file
// system in tests, or a copy-on-write overlay for dry runs.
package fsys

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"
)

// Permission constants for generated output.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// Gateway performs the directory and file operations of a generation run.
type Gateway struct {
	fs afero.Fs
}

// New returns a Gateway over the operating system file system.
func New() *Gateway {
	return NewWithFs(afero.NewOsFs())
}

// NewDryRun returns a Gateway that reads from disk but keeps every write in
// memory.
func NewDryRun() *Gateway {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	return NewWithFs(afero.NewCopyOnWriteFs(base, afero.NewMemMapFs()))
}

// NewWithFs returns a Gateway over fs.
func NewWithFs(fs afero.Fs) *Gateway {
	return &Gateway{fs: fs}
}

// Exists reports whether anything exists at path.
func (g *Gateway) Exists(path string) bool {
	ok, err := afero.Exists(g.fs, path)
	return err == nil && ok
}

// IsDir reports whether path is an existing directory.
func (g *Gateway) IsDir(path string) bool {
	ok, err := afero.DirExists(g.fs, path)
	return err == nil && ok
}

// Mkdir creates a single directory. The parent must already exist.
func (g *Gateway) Mkdir(path string) error {
	if err := g.fs.Mkdir(path, DirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// ReadFile returns the content of path.
func (g *Gateway) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(g.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile creates or truncates path and writes content to it.
func (g *Gateway) WriteFile(path, content string) error {
	if err := afero.WriteFile(g.fs, path, []byte(content), FilePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// List returns the sorted names of the regular files in dir.
func (g *Gateway) List(dir string) ([]string, error) {
	infos, err := afero.ReadDir(g.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var names []string
	for _, info := range infos {
		if info.Mode().IsRegular() {
			names = append(names, info.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
