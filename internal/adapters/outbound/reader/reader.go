package reader

import (
	"os"
	"path/filepath"
)

// FileReader implements domain.FileReader against the local filesystem.
// Relative candidate paths are resolved against the project root so report
// entries keep the short path the author recognizes.
type FileReader struct {
	root string
}

// New creates a FileReader rooted at root.
func New(root string) *FileReader {
	return &FileReader{root: root}
}

func (r *FileReader) ReadFile(path string) ([]byte, error) {
	if !filepath.IsAbs(path) && r.root != "" {
		path = filepath.Join(r.root, path)
	}
	return os.ReadFile(path)
}
