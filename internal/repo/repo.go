package repo

import (
	"context"

	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/repo/repotypes"
	"github.com/Egor213/LogLens/internal/repo/sqldb"
	"github.com/Egor213/LogLens/pkg/database"
)

type Session interface {
	FindSession(ctx context.Context, name, sourcePath string) (*domain.TestSession, error)
	CreateSession(ctx context.Context, session *domain.TestSession) (string, error)
	DeleteSession(ctx context.Context, id string) error
	GetSession(ctx context.Context, id string) (*domain.TestSession, error)
	ListSessions(ctx context.Context) ([]domain.TestSession, error)
}

type LogEntry interface {
	InsertEntries(ctx context.Context, sessionID string, entries []domain.LogEntry) error
	GetEntries(ctx context.Context, filter repotypes.EntryFilter) ([]domain.LogEntry, error)
	CountEntries(ctx context.Context, filter repotypes.EntryFilter) (int, error)
	GetEntry(ctx context.Context, id int64) (domain.LogEntry, error)
	GetLevelStats(ctx context.Context, sessionID string) ([]domain.LevelStats, error)
}

type Bookmark interface {
	AddBookmark(ctx context.Context, bookmark *domain.Bookmark) (int64, error)
	FindBookmarkByEntry(ctx context.Context, entryID int64) (int64, error)
	UpdateBookmark(ctx context.Context, id int64, title, color string) error
	SetBookmarkNotes(ctx context.Context, id int64, notes string) error
	GetBookmark(ctx context.Context, id int64) (domain.Bookmark, error)
	DeleteBookmark(ctx context.Context, id int64) error
	ListBookmarks(ctx context.Context, sessionID string) ([]domain.Bookmark, error)
}

type Repositories struct {
	Session
	LogEntry
	Bookmark
}

func NewRepositories(db *database.Database) *Repositories {
	return &Repositories{
		Session:  sqldb.NewSessionRepo(db),
		LogEntry: sqldb.NewLogEntryRepo(db),
		Bookmark: sqldb.NewBookmarkRepo(db),
	}
}
