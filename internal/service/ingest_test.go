package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/LogLens/internal/broker"
	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/htmlparser"
	"github.com/Egor213/LogLens/internal/metrics"
	brokermocks "github.com/Egor213/LogLens/internal/mocks/broker"
	countermocks "github.com/Egor213/LogLens/internal/mocks/counters"
	repomocks "github.com/Egor213/LogLens/internal/mocks/repository"
	sourcemocks "github.com/Egor213/LogLens/internal/mocks/source"
	"github.com/Egor213/LogLens/internal/repo"
	"github.com/Egor213/LogLens/internal/repo/repoerrs"
	"github.com/Egor213/LogLens/internal/repo/repotypes"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/Egor213/LogLens/internal/source"
	"github.com/Egor213/LogLens/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngest_EndToEnd(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)

	dir := t.TempDir()
	files := map[string]string{
		"TestA_ID_1---0.html": logPage(
			row("10:00:00", "INFO", "Opening app"),
			row("10:00:01", "ERROR", `<a id="failure"></a>Button not found`),
		),
		"TestA_ID_1---1.html": logPage(row("10:00:02", "INFO", "Closing app")),
		"MainRollup.html":     "<html><body>summary</body></html>",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	src, err := source.NewLocal(dir)
	require.NoError(t, err)

	report, err := e.ingest.Ingest(ctx, src, nil)
	require.NoError(t, err)
	require.Len(t, report.Sessions, 1)

	res := report.Sessions[0]
	assert.Equal(t, domain.SessionCreated, res.Status)
	assert.Equal(t, "TestA_ID_1", res.Key)
	assert.Equal(t, 2, res.FilesParsed)
	assert.Equal(t, 3, res.Entries)
	assert.Equal(t, 1, res.Bookmarks)
	assert.Empty(t, res.Failures)

	session, err := e.repos.Session.FindSession(ctx, "TestA_ID_1", src.Path())
	require.NoError(t, err)
	assert.Equal(t, res.SessionID, session.ID)
	assert.Equal(t, 2, session.FileCount)
	assert.Equal(t, 3, session.TotalEntries)
	assert.Equal(t, domain.SourceLocal, session.SourceKind)

	entries, err := e.repos.LogEntry.GetEntries(ctx, repotypes.EntryFilter{SessionID: session.ID})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"Opening app", "Button not found", "Closing app"},
		[]string{entries[0].Message, entries[1].Message, entries[2].Message})
	assert.Equal(t, [2]int{0, 1}, [2]int{entries[1].SourceFileIndex, entries[1].LineNumber})
	assert.Equal(t, [2]int{1, 0}, [2]int{entries[2].SourceFileIndex, entries[2].LineNumber})
	assert.True(t, entries[1].IsFailureMarker)

	bookmarks, err := e.repos.Bookmark.ListBookmarks(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, domain.FailureBookmarkTitle, bookmarks[0].Title)
	assert.Equal(t, domain.FailureColor, bookmarks[0].Color)
	assert.Equal(t, entries[1].ID, bookmarks[0].LogEntryID)
	assert.True(t, bookmarks[0].Auto)
}

func TestIngest_ReingestReplaces(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "###Start###"), row("t1", "INFO", "two")),
	})

	first, err := e.ingest.Ingest(ctx, src, nil)
	require.NoError(t, err)
	require.Equal(t, domain.SessionCreated, first.Sessions[0].Status)

	before, err := e.repos.Session.GetSession(ctx, first.Sessions[0].SessionID)
	require.NoError(t, err)

	entries, err := e.repos.LogEntry.GetEntries(ctx, repotypes.EntryFilter{SessionID: before.ID})
	require.NoError(t, err)
	_, err = e.repos.Bookmark.AddBookmark(ctx, &domain.Bookmark{LogEntryID: entries[1].ID, Title: "mine", Color: domain.DefaultColor})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	second, err := e.ingest.Ingest(ctx, src, nil)
	require.NoError(t, err)
	require.Equal(t, domain.SessionReplaced, second.Sessions[0].Status)
	assert.Equal(t, first.Sessions[0].SessionID, second.Sessions[0].SessionID)

	sessions, err := e.repos.Session.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, 2, sessions[0].TotalEntries)
	assert.True(t, before.CreatedAt.Equal(sessions[0].CreatedAt))
	assert.True(t, sessions[0].LastIngestedAt.After(before.LastIngestedAt))

	n, err := e.repos.LogEntry.CountEntries(ctx, repotypes.EntryFilter{SessionID: before.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	bookmarks, err := e.repos.Bookmark.ListBookmarks(ctx, before.ID)
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, "Start", bookmarks[0].Title)
}

func TestIngest_PartialFailure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "zero")),
		"TestA_ID_1---1.html": logPage(row("t1", "INFO", "one")),
		"TestA_ID_1---2.html": logPage(row("t2", "INFO", "two"), row("t3", "DEBUG", "three")),
	})
	src.failing["TestA_ID_1---1.html"] = -1

	report, err := e.ingest.Ingest(ctx, src, nil)
	require.NoError(t, err)

	res := report.Sessions[0]
	assert.Equal(t, domain.SessionCreated, res.Status)
	assert.Equal(t, 3, res.FilesTotal)
	assert.Equal(t, 2, res.FilesParsed)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, domain.StageFetch, res.Failures[0].Stage)
	assert.Equal(t, 1, res.Failures[0].SequenceIndex)
	assert.Equal(t, 3, res.Failures[0].Attempts)
	assert.Equal(t, 3, src.fetchCount("TestA_ID_1---1.html"))
	assert.Equal(t, "1 sessions stored, 0 empty, 0 failed; 1 of 3 files failed", report.Summary())

	session, err := e.repos.Session.GetSession(ctx, res.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, session.FileCount)

	entries, err := e.repos.LogEntry.GetEntries(ctx, repotypes.EntryFilter{SessionID: session.ID})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, 0, entries[0].SourceFileIndex)
	assert.Equal(t, 2, entries[1].SourceFileIndex)
	assert.Equal(t, 1, entries[2].LineNumber)
}

func TestIngest_RetryRecovers(t *testing.T) {
	e := newEnv(t, nil)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "zero")),
	})
	src.failing["TestA_ID_1---0.html"] = 2

	report, err := e.ingest.Ingest(context.Background(), src, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCreated, report.Sessions[0].Status)
	assert.Empty(t, report.Sessions[0].Failures)
	assert.Equal(t, 3, src.fetchCount("TestA_ID_1---0.html"))
}

func TestIngest_AllFilesFailKeepsPriorSession(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "zero")),
		"TestA_ID_1---1.html": "not html at all",
	})

	first, err := e.ingest.Ingest(ctx, src, nil)
	require.NoError(t, err)
	require.Equal(t, domain.SessionCreated, first.Sessions[0].Status)
	require.Len(t, first.Sessions[0].Failures, 1)
	assert.Equal(t, domain.StageParse, first.Sessions[0].Failures[0].Stage)

	src.failing["TestA_ID_1---0.html"] = -1
	second, err := e.ingest.Ingest(ctx, src, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionEmpty, second.Sessions[0].Status)
	assert.Empty(t, second.Sessions[0].SessionID)
	assert.Len(t, second.Sessions[0].Failures, 2)

	session, err := e.repos.Session.GetSession(ctx, first.Sessions[0].SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, session.TotalEntries)
}

func TestIngest_NoSessionForFailedFiles(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "zero")),
	})
	src.failing["TestA_ID_1---0.html"] = -1

	report, err := e.ingest.Ingest(ctx, src, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionEmpty, report.Sessions[0].Status)

	sessions, err := e.repos.Session.ListSessions(ctx)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestIngest_SelectedSessionsAndDuplicates(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html":  logPage(row("t0", "INFO", "a")),
		"TestA_ID_1---00.html": logPage(row("t0", "INFO", "dup")),
		"TestB_ID_1---0.html":  logPage(row("t0", "INFO", "b")),
	})

	report, err := e.ingest.Ingest(ctx, src, []string{"TestA_ID_1"})
	require.NoError(t, err)
	require.Len(t, report.Sessions, 1)

	res := report.Sessions[0]
	assert.Equal(t, "TestA_ID_1", res.Key)
	assert.Equal(t, 1, res.FilesParsed)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, domain.StageGroup, res.Failures[0].Stage)
	assert.Equal(t, src.Path()+"TestA_ID_1---00.html", res.Failures[0].Locator)

	_, err = e.repos.Session.FindSession(ctx, "TestB_ID_1", src.Path())
	assert.ErrorIs(t, err, repoerrs.ErrNotFound)
}

func TestIngest_EnumerationError(t *testing.T) {
	e := newEnv(t, nil)

	src := newMemSource(nil)
	src.listErr = errors.New("connection refused")

	report, err := e.ingest.Ingest(context.Background(), src, nil)
	assert.Nil(t, report)

	var enumErr *source.EnumerationError
	assert.ErrorAs(t, err, &enumErr)
}

func TestIngest_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	producer := brokermocks.NewMockProducer(ctrl)
	e := newEnv(t, producer)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "ERROR", `<a name="failure"></a>x`)),
	})
	wantID := domain.NewSessionID(src.Path(), "TestA_ID_1")

	producer.EXPECT().
		SendMessage(gomock.Any(), []byte(wantID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value []byte) error {
			var event broker.SessionIngested
			assert.NoError(t, json.Unmarshal(value, &event))
			assert.Equal(t, broker.SessionIngestedEvent, event.Event)
			assert.Equal(t, "TestA_ID_1", event.Name)
			assert.Equal(t, 1, event.TotalEntries)
			assert.Equal(t, 1, event.Bookmarks)
			assert.False(t, event.Replaced)
			return errors.New("broker down")
		})

	report, err := e.ingest.Ingest(context.Background(), src, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCreated, report.Sessions[0].Status)
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestIngest_PersistenceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := repomocks.NewMockSession(ctrl)
	repos := &repo.Repositories{
		Session:  sessions,
		LogEntry: repomocks.NewMockLogEntry(ctrl),
		Bookmark: repomocks.NewMockBookmark(ctrl),
	}
	ingest := service.NewIngestService(repos, passthroughTx{}, htmlparser.New(), metrics.NewTestCounters(), nil,
		service.IngestOptions{FetchAttempts: 1})

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "a")),
	})
	sessions.EXPECT().
		FindSession(gomock.Any(), "TestA_ID_1", src.Path()).
		Return(nil, errors.New("disk I/O error"))

	report, err := ingest.Ingest(context.Background(), src, nil)
	require.NoError(t, err)

	res := report.Sessions[0]
	assert.Equal(t, domain.SessionFailed, res.Status)
	assert.True(t, errors.Is(res.Err, service.ErrCannotPersistSession))
	assert.NotEmpty(t, res.ErrText)
}

func TestScan(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, nil)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "a")),
		"TestA_ID_1---1.html": logPage(row("t1", "INFO", "b")),
		"TestB_ID_2---0.html": logPage(row("t0", "INFO", "c")),
		"index.html":          "<html></html>",
	})

	_, err := e.ingest.Ingest(ctx, src, []string{"TestB_ID_2"})
	require.NoError(t, err)

	candidates, err := e.ingest.Scan(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, []domain.SessionCandidate{
		{Key: "TestA_ID_1", FileCount: 2},
		{Key: "TestB_ID_2", FileCount: 1, AlreadyLoaded: true, SessionID: domain.NewSessionID(src.Path(), "TestB_ID_2")},
	}, candidates)
	assert.Zero(t, src.fetchCount("TestA_ID_1---0.html"))
}

func TestIngest_FetchAttemptsExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := newEnv(t, nil)
	src := sourcemocks.NewMockSource(ctrl)

	ok := domain.FileRef{Locator: "http://logs/TestA_ID_1---0.html", Filename: "TestA_ID_1---0.html"}
	broken := domain.FileRef{Locator: "http://logs/TestA_ID_1---1.html", Filename: "TestA_ID_1---1.html"}

	src.EXPECT().Path().Return("http://logs/").AnyTimes()
	src.EXPECT().Kind().Return(domain.SourceHTTP).AnyTimes()
	src.EXPECT().List(gomock.Any()).Return([]domain.FileRef{broken, ok}, nil)
	src.EXPECT().Fetch(gomock.Any(), ok).Return([]byte(logPage(row("t0", "INFO", "start"))), nil)
	src.EXPECT().Fetch(gomock.Any(), broken).
		Return(nil, &source.FetchError{Locator: broken.Locator, StatusCode: 503, Err: source.ErrUnexpectedStatus}).
		Times(3)

	report, err := e.ingest.Ingest(context.Background(), src, nil)
	require.NoError(t, err)
	require.Len(t, report.Sessions, 1)

	res := report.Sessions[0]
	assert.Equal(t, domain.SessionCreated, res.Status)
	assert.Equal(t, 1, res.FilesParsed)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, domain.StageFetch, res.Failures[0].Stage)
	assert.Equal(t, 3, res.Failures[0].Attempts)
	assert.Equal(t, 1, res.Failures[0].SequenceIndex)
}

func TestIngest_Counters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetched := countermocks.NewMockCounter(ctrl)
	parsed := countermocks.NewMockCounter(ctrl)
	sessions := countermocks.NewMockCounter(ctrl)
	entries := countermocks.NewMockCounter(ctrl)

	fetched.EXPECT().Inc("ok").Times(2)
	parsed.EXPECT().Inc("ok")
	parsed.EXPECT().Inc("error")
	sessions.EXPECT().Inc(string(domain.SessionCreated))
	entries.EXPECT().Add(float64(2))

	db := testdb.New(t)
	ingest := service.NewIngestService(
		repo.NewRepositories(db),
		db.TrManager,
		htmlparser.New(),
		&metrics.Counters{
			FilesFetched:     fetched,
			FilesParsed:      parsed,
			SessionsIngested: sessions,
			EntriesIngested:  entries,
		},
		nil,
		service.IngestOptions{FetchAttempts: 1},
	)

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "a"), row("t1", "INFO", "b")),
		"TestA_ID_1---1.html": "<p>not a log</p>",
	})

	report, err := ingest.Ingest(context.Background(), src, nil)
	require.NoError(t, err)
	assert.Equal(t, "1 sessions stored, 0 empty, 0 failed; 1 of 2 files failed", report.Summary())
}

func TestIngest_CancelledMidSession(t *testing.T) {
	e := newEnv(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "zero")),
		"TestA_ID_1---1.html": logPage(row("t1", "INFO", "one")),
		"TestA_ID_1---2.html": logPage(row("t2", "INFO", "two")),
	})
	src.onFetch = func(ctx context.Context, name string) error {
		if name != "TestA_ID_1---1.html" {
			return nil
		}
		cancel()
		<-ctx.Done()
		return ctx.Err()
	}

	report, err := e.ingest.Ingest(ctx, src, nil)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	require.Len(t, report.Sessions, 1)
	assert.NotEqual(t, domain.SessionCreated, report.Sessions[0].Status)
	assert.Equal(t, 1, src.fetchCount("TestA_ID_1---1.html"))

	sessions, err := e.repos.Session.ListSessions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestIngest_MergesOutOfOrderFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := repomocks.NewMockSession(ctrl)
	entries := repomocks.NewMockLogEntry(ctrl)
	repos := &repo.Repositories{
		Session:  sessions,
		LogEntry: entries,
		Bookmark: repomocks.NewMockBookmark(ctrl),
	}
	ingest := service.NewIngestService(repos, passthroughTx{}, htmlparser.New(), metrics.NewTestCounters(), nil,
		service.IngestOptions{FileConcurrency: 3, FetchAttempts: 1})

	src := newMemSource(map[string]string{
		"TestA_ID_1---0.html": logPage(row("t0", "INFO", "zero"), row("t1", "INFO", "zero again")),
		"TestA_ID_1---1.html": logPage(row("t2", "INFO", "one"), row("t3", "INFO", "one again")),
		"TestA_ID_1---2.html": logPage(row("t4", "INFO", "two")),
	})

	// Fetches finish in reverse order: 2, then 1, then 0.
	done1, done2 := make(chan struct{}), make(chan struct{})
	src.onFetch = func(ctx context.Context, name string) error {
		switch name {
		case "TestA_ID_1---2.html":
			close(done2)
		case "TestA_ID_1---1.html":
			<-done2
			close(done1)
		case "TestA_ID_1---0.html":
			<-done1
		}
		return nil
	}

	sessions.EXPECT().FindSession(gomock.Any(), "TestA_ID_1", src.Path()).Return(nil, repoerrs.ErrNotFound)
	sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return("", nil)

	var inserted []domain.LogEntry
	entries.EXPECT().
		InsertEntries(gomock.Any(), domain.NewSessionID(src.Path(), "TestA_ID_1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, got []domain.LogEntry) error {
			inserted = append(inserted, got...)
			return nil
		})

	report, err := ingest.Ingest(context.Background(), src, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCreated, report.Sessions[0].Status)

	type position struct{ file, line int }
	got := make([]position, 0, len(inserted))
	for _, entry := range inserted {
		got = append(got, position{entry.SourceFileIndex, entry.LineNumber})
	}
	assert.Equal(t, []position{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}, got)
}
