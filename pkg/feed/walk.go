package feed

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tylerneylon/rss/pkg/errors"
)

// Collect walks the publishing tree rooted at dir and returns every item
// file found, sorted by path for deterministic output. Hidden directories
// (dotfiles) are skipped. A tree with no item files at all is an
// INVALID_ITEMS error; an empty feed is almost always a wrong directory.
func Collect(dir string) ([]Source, error) {
	var sources []Source
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() != ItemsFilename {
			return nil
		}
		items, err := ReadItems(path)
		if err != nil {
			return err
		}
		sources = append(sources, Source{Path: path, Items: items})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidItems, "no %s files under %s", ItemsFilename, dir)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })
	return sources, nil
}
