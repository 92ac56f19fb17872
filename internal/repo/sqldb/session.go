package sqldb

import (
	"context"

	"github.com/Egor213/LogLens/internal/domain"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
	"github.com/Egor213/LogLens/pkg/database"
	sq "github.com/Masterminds/squirrel"
)

var sessionColumns = []string{
	"id", "name", "source_path", "source_kind", "file_count",
	"total_entries", "created_at", "last_ingested_at",
}

type SessionRepo struct {
	*database.Database
}

func NewSessionRepo(db *database.Database) *SessionRepo {
	return &SessionRepo{db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (domain.TestSession, error) {
	var s domain.TestSession
	err := row.Scan(&s.ID, &s.Name, &s.SourcePath, &s.SourceKind, &s.FileCount,
		&s.TotalEntries, &s.CreatedAt, &s.LastIngestedAt)
	return s, err
}

func (r *SessionRepo) FindSession(ctx context.Context, name, sourcePath string) (*domain.TestSession, error) {
	return r.getOne(ctx, sq.Eq{"name": name, "source_path": sourcePath})
}

func (r *SessionRepo) GetSession(ctx context.Context, id string) (*domain.TestSession, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *SessionRepo) getOne(ctx context.Context, cond sq.Sqlizer) (*domain.TestSession, error) {
	sql, args, err := r.Builder.
		Select(sessionColumns...).
		From("test_sessions").
		Where(cond).
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	s, err := scanSession(r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryRowContext(ctx, sql, args...))
	if err != nil {
		return nil, mapErr(err)
	}
	return &s, nil
}

func (r *SessionRepo) CreateSession(ctx context.Context, s *domain.TestSession) (string, error) {
	sql, args, err := r.Builder.
		Insert("test_sessions").
		Columns(sessionColumns...).
		Values(s.ID, s.Name, s.SourcePath, string(s.SourceKind), s.FileCount,
			s.TotalEntries, s.CreatedAt.UTC(), s.LastIngestedAt.UTC()).
		ToSql()
	if err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	if _, err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).ExecContext(ctx, sql, args...); err != nil {
		return "", mapErr(err)
	}
	return s.ID, nil
}

// DeleteSession removes the session with its entries and their bookmarks.
// The explicit deletes do not depend on the connection enforcing cascades.
func (r *SessionRepo) DeleteSession(ctx context.Context, id string) error {
	tr := r.CtxGetter.DefaultTrOrDB(ctx, r.DB)

	entryIDs := r.Builder.Select("id").From("log_entries").Where(sq.Eq{"session_id": id})
	bookmarksSQL, bookmarksArgs, err := r.Builder.
		Delete("bookmarks").
		Where(sq.Expr("log_entry_id IN (?)", entryIDs)).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if _, err := tr.ExecContext(ctx, bookmarksSQL, bookmarksArgs...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	entriesSQL, entriesArgs, err := r.Builder.Delete("log_entries").Where(sq.Eq{"session_id": id}).ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if _, err := tr.ExecContext(ctx, entriesSQL, entriesArgs...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	sessionSQL, sessionArgs, err := r.Builder.Delete("test_sessions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	res, err := tr.ExecContext(ctx, sessionSQL, sessionArgs...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return requireAffected(res)
}

func (r *SessionRepo) ListSessions(ctx context.Context) ([]domain.TestSession, error) {
	sql, args, err := r.Builder.
		Select(sessionColumns...).
		From("test_sessions").
		OrderBy("last_ingested_at DESC", "name").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	sessions := []domain.TestSession{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return sessions, nil
}
