package finder

import (
	"os"
	"path/filepath"
	"strings"
)

var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"bin":          true,
}

// Finder implements domain.CandidateFinder by walking the configured paths.
type Finder struct{}

func New() *Finder {
	return &Finder{}
}

// Find returns candidate .json files under the configured paths, as
// slash-separated paths relative to root, in walk order. A configured path
// may also name a single file; paths that do not exist are skipped so a
// default config works in repos without a locales directory.
func (f *Finder) Find(root string, paths []string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, p := range paths {
		base := filepath.Join(absRoot, p)

		info, err := os.Stat(base)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}

		if !info.IsDir() {
			rel, err := filepath.Rel(absRoot, base)
			if err != nil {
				return nil, err
			}
			out = append(out, filepath.ToSlash(rel))
			continue
		}

		err = filepath.WalkDir(base, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if skipDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}
			if !strings.EqualFold(filepath.Ext(d.Name()), ".json") {
				return nil
			}
			rel, err := filepath.Rel(absRoot, path)
			if err != nil {
				return err
			}
			out = append(out, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
