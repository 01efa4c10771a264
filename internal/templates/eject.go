package templates

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/otiai10/copy"
)

// Eject copies the bundled templates to dest so a project can edit them and
// point the templatesDir setting at the copy. It refuses to touch a non-empty
// dest unless force is set. The copied file names are returned sorted.
func Eject(dest string, force bool) ([]string, error) {
	if entries, err := os.ReadDir(dest); err == nil && len(entries) > 0 && !force {
		return nil, fmt.Errorf("template directory %s is not empty; use --force to overwrite", dest)
	}

	opts := copy.Options{
		FS:                assetFS,
		PermissionControl: copy.AddPermission(0644),
	}
	if err := copy.Copy(assetsRoot, dest, opts); err != nil {
		return nil, fmt.Errorf("copying templates to %s: %w", dest, err)
	}

	entries, err := fs.ReadDir(assetFS, assetsRoot)
	if err != nil {
		return nil, fmt.Errorf("listing bundled templates: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
