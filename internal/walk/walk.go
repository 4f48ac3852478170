package walk

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/medianame/internal/errors"
	"github.com/thoreinstein/medianame/internal/rename"
)

// Walk traverses the tree rooted at root top-down, delegating every
// kept entity to r. It returns an error only when the root itself
// cannot be read; per-entity failures are logged by the renamer and
// never propagate.
func Walk(root string, r *rename.Renamer, log *slog.Logger) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		return errors.Wrapf(err, "reading root directory %s", root)
	}
	walkLevel(root, entries, r, log)
	return nil
}

// walkLevel processes one directory level: files first, then
// directories, then descent into the surviving subdirectories under
// their pre-rename names.
func walkLevel(dir string, entries []os.DirEntry, r *rename.Renamer, log *slog.Logger) {
	var files, dirs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			if strings.HasPrefix(name, ".") || r.IgnoresDir(name) {
				log.Debug("pruning directory from traversal", "name", name)
				continue
			}
			dirs = append(dirs, name)
			continue
		}
		if strings.HasPrefix(name, ".") {
			log.Debug("dropping hidden file from traversal", "name", name)
			continue
		}
		files = append(files, name)
	}

	for _, name := range files {
		r.Rename(dir, name, true)
	}
	for _, name := range dirs {
		r.Rename(dir, name, false)
	}

	for _, name := range dirs {
		child := filepath.Join(dir, name)
		childEntries, err := os.ReadDir(child)
		if err != nil {
			// The directory was just renamed at this level; its old
			// path is gone and the new one is not revisited this run.
			log.Debug("skipping unreadable subdirectory", "path", child, "error", err)
			continue
		}
		walkLevel(child, childEntries, r, log)
	}
}
