package locale

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"i18next-typesafe/core/catalog"

	"github.com/spf13/afero"
)

// FSSource reads `<dir>/<lang><ext>` from a filesystem.
type FSSource struct {
	fs  afero.Fs
	dir string
	ext string
}

// NewFSSource creates a filesystem source. ext includes the dot, e.g. ".json".
func NewFSSource(fsys afero.Fs, dir, ext string) *FSSource {
	return &FSSource{fs: fsys, dir: dir, ext: ext}
}

// Location returns the file path for lang.
func (s *FSSource) Location(lang string) string {
	return filepath.Join(s.dir, lang+s.ext)
}

// Load reads and decodes the file for lang.
func (s *FSSource) Load(ctx context.Context, lang string) (*catalog.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadFile(s.fs, s.Location(lang))
}

// LoadFile reads and decodes a single catalog file.
func LoadFile(fsys afero.Fs, path string) (*catalog.Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(path)
		}
		return nil, err
	}
	doc, err := catalog.Decode(path, data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}
