package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Egor213/LogLens/internal/broker"
	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/htmlparser"
	"github.com/Egor213/LogLens/internal/metrics"
	"github.com/Egor213/LogLens/internal/repo"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/Egor213/LogLens/internal/source"
	"github.com/Egor213/LogLens/internal/testdb"
)

func row(ts, level, message string) string {
	return fmt.Sprintf("<tr><td class=\"date\">%s</td><td class=\"level\">%s</td><td class=\"message\">%s</td></tr>", ts, level, message)
}

func logPage(rows ...string) string {
	return "<html><body><table><tr><th>Time</th><th>Level</th><th>Message</th></tr>" +
		strings.Join(rows, "\n") + "</table></body></html>"
}

var errUnavailable = errors.New("unavailable")

// memSource serves files from memory. failing[name] is the number of
// fetches of name that fail before one succeeds; -1 fails forever. onFetch,
// when set, runs before every fetch and fails it by returning an error.
type memSource struct {
	path    string
	files   map[string]string
	listErr error
	onFetch func(ctx context.Context, name string) error

	mu      sync.Mutex
	failing map[string]int
	fetches map[string]int
}

func newMemSource(files map[string]string) *memSource {
	return &memSource{
		path:    "mem://logs/",
		files:   files,
		failing: map[string]int{},
		fetches: map[string]int{},
	}
}

func (m *memSource) Kind() domain.SourceKind { return domain.SourceHTTP }

func (m *memSource) Path() string { return m.path }

func (m *memSource) List(context.Context) ([]domain.FileRef, error) {
	if m.listErr != nil {
		return nil, &source.EnumerationError{Source: m.path, Err: m.listErr}
	}
	refs := make([]domain.FileRef, 0, len(m.files))
	for name := range m.files {
		refs = append(refs, domain.FileRef{Locator: m.path + name, Filename: name})
	}
	return refs, nil
}

func (m *memSource) Fetch(ctx context.Context, ref domain.FileRef) ([]byte, error) {
	m.mu.Lock()
	m.fetches[ref.Filename]++
	m.mu.Unlock()

	if m.onFetch != nil {
		if err := m.onFetch(ctx, ref.Filename); err != nil {
			return nil, &source.FetchError{Locator: ref.Locator, Err: err}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if n := m.failing[ref.Filename]; n != 0 {
		if n > 0 {
			m.failing[ref.Filename] = n - 1
		}
		return nil, &source.FetchError{Locator: ref.Locator, Err: errUnavailable}
	}
	return []byte(m.files[ref.Filename]), nil
}

func (m *memSource) fetchCount(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[name]
}

type env struct {
	repos  *repo.Repositories
	ingest *service.IngestService
}

func newEnv(t *testing.T, events broker.Producer) env {
	t.Helper()

	db := testdb.New(t)
	repos := repo.NewRepositories(db)
	services := service.NewServices(service.ServicesDependencies{
		Repos:     repos,
		TxManager: db.TrManager,
		Parser:    htmlparser.New(),
		Counters:  metrics.NewTestCounters(),
		Events:    events,
		Ingest: service.IngestOptions{
			FileConcurrency:    3,
			SessionConcurrency: 2,
			FetchAttempts:      3,
			FetchBackoff:       time.Millisecond,
		},
	})
	return env{repos: repos, ingest: services.Ingest}
}
