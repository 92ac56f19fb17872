package source

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Egor213/LogLens/internal/domain"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
)

type Local struct {
	dir string
}

// NewLocal returns a source over the regular files directly inside dir.
func NewLocal(dir string) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return &Local{dir: filepath.Clean(abs)}, nil
}

func (l *Local) Kind() domain.SourceKind {
	return domain.SourceLocal
}

func (l *Local) Path() string {
	return l.dir
}

func (l *Local) List(ctx context.Context) ([]domain.FileRef, error) {
	if err := ctx.Err(); err != nil {
		return nil, &EnumerationError{Source: l.dir, Err: err}
	}

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, &EnumerationError{Source: l.dir, Err: err}
	}

	refs := make([]domain.FileRef, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		refs = append(refs, domain.FileRef{
			Locator:  filepath.Join(l.dir, e.Name()),
			Filename: e.Name(),
		})
	}
	return refs, nil
}

func (l *Local) Fetch(ctx context.Context, ref domain.FileRef) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Locator: ref.Locator, Err: err}
	}

	data, err := os.ReadFile(ref.Locator)
	if err != nil {
		return nil, &FetchError{Locator: ref.Locator, Err: err}
	}
	return data, nil
}
