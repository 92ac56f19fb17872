// Package source enumerates candidate log files and reads their bytes, from
// a local directory or from an HTTP directory listing.
package source

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Egor213/LogLens/internal/domain"
)

type Source interface {
	Kind() domain.SourceKind
	// Path identifies the source on stored sessions.
	Path() string
	List(ctx context.Context) ([]domain.FileRef, error)
	Fetch(ctx context.Context, ref domain.FileRef) ([]byte, error)
}

const defaultHTTPTimeout = 30 * time.Second

type Options struct {
	HTTPClient  *http.Client
	HTTPTimeout time.Duration
}

// Open picks the source variant for location: http(s) URLs are listings,
// anything else is a local directory.
func Open(location string, opts Options) (Source, error) {
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		client := opts.HTTPClient
		if client == nil {
			timeout := opts.HTTPTimeout
			if timeout <= 0 {
				timeout = defaultHTTPTimeout
			}
			client = &http.Client{Timeout: timeout}
		}
		return NewHTTP(location, client)
	}
	return NewLocal(location)
}
