package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/source"
	"github.com/Egor213/LogLens/internal/watcher"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingIngester struct {
	mu    sync.Mutex
	calls [][]string
	done  chan []string
}

func newRecordingIngester() *recordingIngester {
	return &recordingIngester{done: make(chan []string, 16)}
}

func (r *recordingIngester) Ingest(_ context.Context, src source.Source, keys []string) (*domain.IngestReport, error) {
	r.mu.Lock()
	r.calls = append(r.calls, keys)
	r.mu.Unlock()

	r.done <- keys
	return &domain.IngestReport{Source: src.Path()}, nil
}

func TestWatcher_HandleAndFlush(t *testing.T) {
	dir := t.TempDir()
	src, err := source.NewLocal(dir)
	require.NoError(t, err)

	ing := newRecordingIngester()
	w := watcher.New(src, ing, time.Millisecond, nil)

	testCases := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{name: "create", ev: fsnotify.Event{Name: filepath.Join(dir, "TestB_ID_1---0.html"), Op: fsnotify.Create}, want: true},
		{name: "write", ev: fsnotify.Event{Name: filepath.Join(dir, "TestA_ID_1---3.html"), Op: fsnotify.Write}, want: true},
		{name: "same session again", ev: fsnotify.Event{Name: filepath.Join(dir, "TestA_ID_1---4.html"), Op: fsnotify.Create}, want: true},
		{name: "remove", ev: fsnotify.Event{Name: filepath.Join(dir, "TestC_ID_1---0.html"), Op: fsnotify.Remove}, want: false},
		{name: "chmod", ev: fsnotify.Event{Name: filepath.Join(dir, "TestC_ID_1---0.html"), Op: fsnotify.Chmod}, want: false},
		{name: "not a test log", ev: fsnotify.Event{Name: filepath.Join(dir, "MainRollup.html"), Op: fsnotify.Create}, want: false},
		{name: "other directory", ev: fsnotify.Event{Name: filepath.Join(dir, "sub", "TestD_ID_1---0.html"), Op: fsnotify.Create}, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, w.Handle(tc.ev))
		})
	}

	w.Flush(context.Background())
	w.Flush(context.Background())

	assert.Equal(t, [][]string{{"TestA_ID_1", "TestB_ID_1"}}, ing.calls)
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	src, err := source.NewLocal(dir)
	require.NoError(t, err)

	ing := newRecordingIngester()
	w := watcher.New(src, ing, 20*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	select {
	case keys := <-ing.done:
		assert.Nil(t, keys)
	case <-time.After(5 * time.Second):
		t.Fatal("initial ingestion did not run")
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "TestA_ID_1---0.html"), []byte("<table></table>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case keys := <-ing.done:
		assert.Equal(t, []string{"TestA_ID_1"}, keys)
	case <-time.After(5 * time.Second):
		t.Fatal("changed session was not re-ingested")
	}

	cancel()
	assert.NoError(t, <-errCh)
}
