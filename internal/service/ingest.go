package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Egor213/LogLens/internal/broker"
	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/metrics"
	"github.com/Egor213/LogLens/internal/repo"
	"github.com/Egor213/LogLens/internal/repo/repoerrs"
	"github.com/Egor213/LogLens/internal/source"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type EntryParser interface {
	Parse(data []byte, fileIndex int) ([]domain.LogEntry, error)
}

type IngestOptions struct {
	FileConcurrency    int
	SessionConcurrency int
	FetchAttempts      int
	FetchBackoff       time.Duration
}

func (o IngestOptions) withDefaults() IngestOptions {
	if o.FileConcurrency < 1 {
		o.FileConcurrency = 1
	}
	if o.SessionConcurrency < 1 {
		o.SessionConcurrency = 1
	}
	if o.FetchAttempts < 1 {
		o.FetchAttempts = 1
	}
	return o
}

type IngestService struct {
	sessions  repo.Session
	entries   repo.LogEntry
	bookmarks repo.Bookmark
	tx        TxManager
	parser    EntryParser
	counters  *metrics.Counters
	events    broker.Producer
	opts      IngestOptions
	locks     *keyedMutex
	now       func() time.Time
}

func NewIngestService(
	repos *repo.Repositories,
	tx TxManager,
	parser EntryParser,
	counters *metrics.Counters,
	events broker.Producer,
	opts IngestOptions,
) *IngestService {
	return &IngestService{
		sessions:  repos.Session,
		entries:   repos.LogEntry,
		bookmarks: repos.Bookmark,
		tx:        tx,
		parser:    parser,
		counters:  counters,
		events:    events,
		opts:      opts.withDefaults(),
		locks:     newKeyedMutex(),
		now:       time.Now,
	}
}

// Ingest loads the test sessions found in src, or only those named in keys.
// An enumeration failure aborts the attempt; everything below it is
// reported per session and per file in the returned report.
func (s *IngestService) Ingest(ctx context.Context, src source.Source, keys []string) (*domain.IngestReport, error) {
	refs, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := GroupFiles(refs, keys)
	report := &domain.IngestReport{
		Source:     src.Path(),
		SourceKind: src.Kind(),
		Sessions:   make([]domain.SessionResult, len(groups)),
	}

	g := new(errgroup.Group)
	g.SetLimit(s.opts.SessionConcurrency)
	for i, group := range groups {
		g.Go(func() error {
			report.Sessions[i] = s.ingestSession(ctx, src, group)
			return nil
		})
	}
	_ = g.Wait()

	return report, ctx.Err()
}

// Scan lists the sessions of src without fetching any file and tells which
// of them are already stored.
func (s *IngestService) Scan(ctx context.Context, src source.Source) ([]domain.SessionCandidate, error) {
	refs, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	groups := GroupFiles(refs, nil)
	candidates := make([]domain.SessionCandidate, 0, len(groups))
	for _, group := range groups {
		c := domain.SessionCandidate{Key: group.Key, FileCount: len(group.Files)}

		existing, err := s.sessions.FindSession(ctx, group.Key, src.Path())
		switch {
		case err == nil:
			c.AlreadyLoaded = true
			c.SessionID = existing.ID
		case !errors.Is(err, repoerrs.ErrNotFound):
			return nil, errorsUtils.WrapPathErr(err)
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

type fileOutcome struct {
	entries []domain.LogEntry
	failure *domain.FileFailure
}

func (s *IngestService) ingestSession(ctx context.Context, src source.Source, group domain.SessionGroup) domain.SessionResult {
	res := domain.SessionResult{Key: group.Key, FilesTotal: len(group.Files)}

	unlock := s.locks.Lock(src.Path() + "\x00" + group.Key)
	defer unlock()

	files, dropped := dedupeSequence(group.Files)
	res.Failures = append(res.Failures, dropped...)

	outcomes := make([]fileOutcome, len(files))
	g := new(errgroup.Group)
	g.SetLimit(s.opts.FileConcurrency)
	for i, f := range files {
		g.Go(func() error {
			outcomes[i] = s.loadFile(ctx, src, f)
			return nil
		})
	}
	_ = g.Wait()

	var entries []domain.LogEntry
	for _, o := range outcomes {
		if o.failure != nil {
			res.Failures = append(res.Failures, *o.failure)
			continue
		}
		res.FilesParsed++
		entries = append(entries, o.entries...)
	}
	slices.SortStableFunc(entries, func(a, b domain.LogEntry) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})

	if res.FilesParsed == 0 {
		res.Status = domain.SessionEmpty
		s.counters.SessionsIngested.Inc(string(res.Status))
		return res
	}

	now := s.now().UTC()
	session := &domain.TestSession{
		ID:             domain.NewSessionID(src.Path(), group.Key),
		Name:           group.Key,
		SourcePath:     src.Path(),
		SourceKind:     src.Kind(),
		FileCount:      res.FilesParsed,
		TotalEntries:   len(entries),
		CreatedAt:      now,
		LastIngestedAt: now,
	}

	replaced, bookmarks, err := s.store(ctx, session, entries)
	if err != nil {
		res.Status = domain.SessionFailed
		res.Err = fmt.Errorf("%w: %w", ErrCannotPersistSession, err)
		res.ErrText = res.Err.Error()
		s.counters.SessionsIngested.Inc(string(res.Status))
		return res
	}

	res.SessionID = session.ID
	res.Entries = len(entries)
	res.Bookmarks = bookmarks
	res.Status = domain.SessionCreated
	if replaced {
		res.Status = domain.SessionReplaced
	}

	s.counters.SessionsIngested.Inc(string(res.Status))
	s.counters.EntriesIngested.Add(float64(len(entries)))
	s.publish(ctx, session, res)

	return res
}

// store replaces the (name, source) session in one transaction. The stored
// session keeps the creation time of the one it replaces.
func (s *IngestService) store(ctx context.Context, session *domain.TestSession, entries []domain.LogEntry) (bool, int, error) {
	var (
		replaced  bool
		bookmarks int
	)

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		replaced, bookmarks = false, 0

		existing, err := s.sessions.FindSession(ctx, session.Name, session.SourcePath)
		switch {
		case err == nil:
			replaced = true
			session.CreatedAt = existing.CreatedAt
			if err := s.sessions.DeleteSession(ctx, existing.ID); err != nil {
				return err
			}
		case !errors.Is(err, repoerrs.ErrNotFound):
			return err
		}

		if _, err := s.sessions.CreateSession(ctx, session); err != nil {
			return err
		}
		if err := s.entries.InsertEntries(ctx, session.ID, entries); err != nil {
			return err
		}

		bookmarks, err = AutoBookmarks(ctx, s.bookmarks, entries)
		return err
	})

	return replaced, bookmarks, err
}

func (s *IngestService) loadFile(ctx context.Context, src source.Source, f domain.ClassifiedFile) fileOutcome {
	data, attempts, err := s.fetch(ctx, src, f.FileRef)
	if err != nil {
		s.counters.FilesFetched.Inc("error")
		return fileOutcome{failure: &domain.FileFailure{
			Locator:       f.Locator,
			SequenceIndex: f.SequenceIndex,
			Stage:         domain.StageFetch,
			Attempts:      attempts,
			Err:           err.Error(),
		}}
	}
	s.counters.FilesFetched.Inc("ok")

	entries, err := s.parser.Parse(data, f.SequenceIndex)
	if err != nil {
		s.counters.FilesParsed.Inc("error")
		return fileOutcome{failure: &domain.FileFailure{
			Locator:       f.Locator,
			SequenceIndex: f.SequenceIndex,
			Stage:         domain.StageParse,
			Attempts:      attempts,
			Err:           err.Error(),
		}}
	}
	s.counters.FilesParsed.Inc("ok")

	return fileOutcome{entries: entries}
}

// fetch tries FetchAttempts times, waiting attempt*FetchBackoff between
// tries. It returns the number of attempts made.
func (s *IngestService) fetch(ctx context.Context, src source.Source, ref domain.FileRef) ([]byte, int, error) {
	for attempt := 1; ; attempt++ {
		data, err := src.Fetch(ctx, ref)
		if err == nil {
			return data, attempt, nil
		}
		if attempt >= s.opts.FetchAttempts || ctx.Err() != nil {
			return nil, attempt, err
		}

		log.WithFields(log.Fields{
			"locator": ref.Locator,
			"attempt": attempt,
			"error":   err,
		}).Debug("Fetch failed, retrying")

		select {
		case <-ctx.Done():
			return nil, attempt, err
		case <-time.After(time.Duration(attempt) * s.opts.FetchBackoff):
		}
	}
}

// dedupeSequence keeps the first file of each sequence index. Files must be
// sorted by index.
func dedupeSequence(files []domain.ClassifiedFile) ([]domain.ClassifiedFile, []domain.FileFailure) {
	kept := make([]domain.ClassifiedFile, 0, len(files))
	var dropped []domain.FileFailure
	for i, f := range files {
		if i > 0 && f.SequenceIndex == files[i-1].SequenceIndex {
			dropped = append(dropped, domain.FileFailure{
				Locator:       f.Locator,
				SequenceIndex: f.SequenceIndex,
				Stage:         domain.StageGroup,
				Err:           ErrDuplicateSequence.Error(),
			})
			continue
		}
		kept = append(kept, f)
	}
	return kept, dropped
}

// publish emits the ingestion event. Delivery is best effort: the session is
// already committed.
func (s *IngestService) publish(ctx context.Context, session *domain.TestSession, res domain.SessionResult) {
	if s.events == nil {
		return
	}

	value, err := json.Marshal(broker.SessionIngested{
		Event:        broker.SessionIngestedEvent,
		SessionID:    session.ID,
		Name:         session.Name,
		SourcePath:   session.SourcePath,
		SourceKind:   string(session.SourceKind),
		Replaced:     res.Status == domain.SessionReplaced,
		FileCount:    session.FileCount,
		FilesFailed:  len(res.Failures),
		TotalEntries: session.TotalEntries,
		Bookmarks:    res.Bookmarks,
		IngestedAt:   session.LastIngestedAt,
	})
	if err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
		return
	}

	if err := s.events.SendMessage(ctx, []byte(session.ID), value); err != nil {
		log.WithField("session_id", session.ID).Warnf("Ingestion event not delivered: %v", err)
	}
}
