package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/five82/liftbook/internal/program"
)

// Fetcher loads full program documents by identifier.
// Implemented by *HTTPSource and *DirSource.
type Fetcher interface {
	FetchProgram(ctx context.Context, id string) (*program.Document, error)
}

// Ensure both sources implement Fetcher at compile time.
var (
	_ Fetcher = (*HTTPSource)(nil)
	_ Fetcher = (*DirSource)(nil)
)

// Kind classifies why a document could not be loaded.
type Kind int

const (
	// KindFetch covers transport failures, missing files and HTTP errors.
	KindFetch Kind = iota
	// KindParse covers malformed content and documents that fail shape checks.
	KindParse
)

func (k Kind) String() string {
	if k == KindParse {
		return "parse"
	}
	return "fetch"
}

// Error reports a failed program load.
type Error struct {
	Kind      Kind
	ProgramID string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s program %q: %v", e.Kind, e.ProgramID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsParse reports whether err is a parse failure.
func IsParse(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindParse
}

// IsFetch reports whether err is a fetch failure.
func IsFetch(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindFetch
}

// DocumentPath returns the slash-separated resource path for a program.
func DocumentPath(id, ext string) string {
	return "data/" + id + "." + ext
}

func checkID(id string) error {
	if !program.ValidID(id) {
		return &Error{Kind: KindFetch, ProgramID: id, Err: fmt.Errorf("invalid program id")}
	}
	return nil
}
