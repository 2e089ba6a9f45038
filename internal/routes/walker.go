package routes

import (
	"path"

	"github.com/pellrad/sitegen/internal/fsys"
)

// Walk traverses root depth-first and calls fn with the slash-separated
// path of every file, relative to root. Siblings are visited in
// lexicographic order, so traversal order is stable across runs on an
// unchanged tree. Listing errors abort the walk.
func Walk(fs fsys.FS, root string, fn func(relPath string) error) error {
	return walkDir(fs, root, "", fn)
}

func walkDir(fs fsys.FS, root, rel string, fn func(string) error) error {
	dir := root
	if rel != "" {
		dir = path.Join(root, rel)
	}

	entries, err := fs.ListEntries(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		childRel := entry.Name
		if rel != "" {
			childRel = rel + "/" + entry.Name
		}

		if entry.IsDir {
			if err := walkDir(fs, root, childRel, fn); err != nil {
				return err
			}
			continue
		}

		if err := fn(childRel); err != nil {
			return err
		}
	}

	return nil
}
