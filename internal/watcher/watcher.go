// Package watcher re-ingests the sessions of a local directory as their
// files appear or change.
package watcher

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/Egor213/LogLens/internal/classifier"
	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/source"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

const DefaultDebounce = 500 * time.Millisecond

type Ingester interface {
	Ingest(ctx context.Context, src source.Source, keys []string) (*domain.IngestReport, error)
}

// ReportFunc receives the outcome of every ingestion the watcher runs.
type ReportFunc func(report *domain.IngestReport, err error)

type Watcher struct {
	src      source.Source
	dir      string
	ingester Ingester
	debounce time.Duration
	onReport ReportFunc

	mu      sync.Mutex
	pending map[string]struct{}
}

func New(src *source.Local, ingester Ingester, debounce time.Duration, onReport ReportFunc) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if onReport == nil {
		onReport = func(*domain.IngestReport, error) {}
	}
	return &Watcher{
		src:      src,
		dir:      src.Path(),
		ingester: ingester,
		debounce: debounce,
		onReport: onReport,
		pending:  make(map[string]struct{}),
	}
}

// Run ingests the whole directory once, then re-ingests the sessions whose
// files are created or written, after debounce of quiet. It returns when
// ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	log.WithField("dir", w.dir).Info("Watching directory")

	report, err := w.ingester.Ingest(ctx, w.src, nil)
	w.onReport(report, err)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.Handle(ev) {
				timer.Reset(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.WithField("dir", w.dir).Warnf("Watcher error: %v", err)
		case <-timer.C:
			w.Flush(ctx)
		}
	}
}

// Handle records the session touched by ev and reports whether it was a
// test-log file.
func (w *Watcher) Handle(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
		return false
	}
	if filepath.Dir(ev.Name) != w.dir {
		return false
	}

	res, ok := classifier.Classify(filepath.Base(ev.Name))
	if !ok {
		return false
	}

	w.mu.Lock()
	w.pending[res.SessionKey] = struct{}{}
	w.mu.Unlock()

	return true
}

// Flush re-ingests the recorded sessions, if any.
func (w *Watcher) Flush(ctx context.Context) {
	w.mu.Lock()
	keys := make([]string, 0, len(w.pending))
	for k := range w.pending {
		keys = append(keys, k)
	}
	clear(w.pending)
	w.mu.Unlock()

	if len(keys) == 0 {
		return
	}
	slices.Sort(keys)

	log.WithField("sessions", keys).Debug("Re-ingesting changed sessions")
	report, err := w.ingester.Ingest(ctx, w.src, keys)
	w.onReport(report, err)
}
