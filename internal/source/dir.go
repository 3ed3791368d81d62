package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/five82/liftbook/internal/program"
)

// DirSource reads program documents from a local site root.
type DirSource struct {
	fsys fs.FS
}

// lookup order for data/<id>.<ext>
var dirExtensions = []string{"json", "yaml", "yml"}

// NewDir builds a DirSource over the directory at root.
func NewDir(root string) (*DirSource, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %s is not a directory", root)
	}
	return &DirSource{fsys: os.DirFS(root)}, nil
}

// NewFS builds a DirSource over an arbitrary filesystem.
func NewFS(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// FetchProgram reads data/<id>.json, falling back to YAML variants.
func (s *DirSource) FetchProgram(ctx context.Context, id string) (*program.Document, error) {
	if s == nil {
		return nil, fmt.Errorf("source is nil")
	}
	if err := checkID(id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &Error{Kind: KindFetch, ProgramID: id, Err: err}
	}

	for _, ext := range dirExtensions {
		name := DocumentPath(id, ext)
		f, err := s.fsys.Open(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, &Error{Kind: KindFetch, ProgramID: id, Err: fmt.Errorf("open %s: %w", name, err)}
		}
		format, _ := program.FormatForExt(ext)
		doc, err := program.Decode(f, format)
		_ = f.Close()
		if err != nil {
			return nil, &Error{Kind: KindParse, ProgramID: id, Err: fmt.Errorf("%s: %w", name, err)}
		}
		return doc, nil
	}
	return nil, &Error{Kind: KindFetch, ProgramID: id, Err: fmt.Errorf("%s: %w", DocumentPath(id, "json"), fs.ErrNotExist)}
}
