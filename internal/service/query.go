package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/repo"
	"github.com/Egor213/LogLens/internal/repo/repoerrs"
	"github.com/Egor213/LogLens/internal/repo/repotypes"
	log "github.com/sirupsen/logrus"
)

type EntryPage struct {
	Entries []domain.LogEntry `json:"entries"`
	Total   int               `json:"total"`
}

type QueryService struct {
	sessions      repo.Session
	entries       repo.LogEntry
	bookmarks     repo.Bookmark
	levelPriority map[string]int
}

// NewQueryService orders level facets by levelPriority (case-insensitive);
// unknown levels sort after known ones, alphabetically.
func NewQueryService(repos *repo.Repositories, levelPriority []string) *QueryService {
	priority := make(map[string]int, len(levelPriority))
	for i, l := range levelPriority {
		l = strings.ToUpper(strings.TrimSpace(l))
		if _, ok := priority[l]; !ok {
			priority[l] = i
		}
	}
	return &QueryService{
		sessions:      repos.Session,
		entries:       repos.LogEntry,
		bookmarks:     repos.Bookmark,
		levelPriority: priority,
	}
}

func (s *QueryService) ListSessions(ctx context.Context) ([]domain.TestSession, error) {
	sessions, err := s.sessions.ListSessions(ctx)
	if err != nil {
		log.Error(err)
		return nil, ErrCannotLoadSession
	}
	return sessions, nil
}

func (s *QueryService) GetSession(ctx context.Context, id string) (*domain.TestSession, error) {
	session, err := s.sessions.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		log.Error(err)
		return nil, ErrCannotLoadSession
	}
	return session, nil
}

func (s *QueryService) DeleteSession(ctx context.Context, id string) error {
	if err := s.sessions.DeleteSession(ctx, id); err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return ErrSessionNotFound
		}
		log.Error(err)
		return ErrCannotDeleteSession
	}
	return nil
}

// GetEntries returns one page of a session's entries, in session order, and
// the number of entries matching the filter.
func (s *QueryService) GetEntries(ctx context.Context, filter repotypes.EntryFilter) (EntryPage, error) {
	if _, err := s.GetSession(ctx, filter.SessionID); err != nil {
		return EntryPage{}, err
	}

	entries, err := s.entries.GetEntries(ctx, filter)
	if err != nil {
		log.Error(err)
		return EntryPage{}, ErrCannotLoadEntries
	}

	total, err := s.entries.CountEntries(ctx, filter)
	if err != nil {
		log.Error(err)
		return EntryPage{}, ErrCannotLoadEntries
	}

	return EntryPage{Entries: entries, Total: total}, nil
}

// GetLevels returns the per-level entry counts of a session in display
// order.
func (s *QueryService) GetLevels(ctx context.Context, sessionID string) ([]domain.LevelStats, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	stats, err := s.entries.GetLevelStats(ctx, sessionID)
	if err != nil {
		log.Error(err)
		return nil, ErrCannotLoadEntries
	}

	slices.SortFunc(stats, func(a, b domain.LevelStats) int {
		pa, okA := s.levelPriority[strings.ToUpper(a.Level)]
		pb, okB := s.levelPriority[strings.ToUpper(b.Level)]
		switch {
		case okA && okB:
			return cmp.Or(cmp.Compare(pa, pb), cmp.Compare(a.Level, b.Level))
		case okA:
			return -1
		case okB:
			return 1
		}
		return cmp.Compare(a.Level, b.Level)
	})

	return stats, nil
}

func (s *QueryService) ListBookmarks(ctx context.Context, sessionID string) ([]domain.Bookmark, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	bookmarks, err := s.bookmarks.ListBookmarks(ctx, sessionID)
	if err != nil {
		log.Error(err)
		return nil, ErrCannotLoadEntries
	}
	return bookmarks, nil
}
