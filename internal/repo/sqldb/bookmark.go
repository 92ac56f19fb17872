package sqldb

import (
	"context"
	"time"

	"github.com/Egor213/LogLens/internal/domain"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
	"github.com/Egor213/LogLens/pkg/database"
	sq "github.com/Masterminds/squirrel"
)

var bookmarkColumns = []string{
	"b.id", "b.log_entry_id", "b.title", "b.notes", "b.color", "b.auto", "b.created_at",
}

type BookmarkRepo struct {
	*database.Database
}

func NewBookmarkRepo(db *database.Database) *BookmarkRepo {
	return &BookmarkRepo{db}
}

func scanBookmark(row rowScanner) (domain.Bookmark, error) {
	var b domain.Bookmark
	err := row.Scan(&b.ID, &b.LogEntryID, &b.Title, &b.Notes, &b.Color, &b.Auto, &b.CreatedAt)
	return b, err
}

// AddBookmark stores b and returns its id. An entry holds at most one
// bookmark (repoerrs.ErrAlreadyExists); a missing entry is repoerrs.ErrNotFound.
func (r *BookmarkRepo) AddBookmark(ctx context.Context, b *domain.Bookmark) (int64, error) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	sql, args, err := r.Builder.
		Insert("bookmarks").
		Columns("log_entry_id", "title", "notes", "color", "auto", "created_at").
		Values(b.LogEntryID, b.Title, b.Notes, b.Color, b.Auto, b.CreatedAt.UTC()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryRowContext(ctx, sql, args...).Scan(&b.ID); err != nil {
		return 0, mapErr(err)
	}
	return b.ID, nil
}

func (r *BookmarkRepo) FindBookmarkByEntry(ctx context.Context, entryID int64) (int64, error) {
	sql, args, err := r.Builder.
		Select("id").
		From("bookmarks").
		Where(sq.Eq{"log_entry_id": entryID}).
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var id int64
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryRowContext(ctx, sql, args...).Scan(&id); err != nil {
		return 0, mapErr(err)
	}
	return id, nil
}

func (r *BookmarkRepo) UpdateBookmark(ctx context.Context, id int64, title, color string) error {
	return r.update(ctx, id, map[string]any{"title": title, "color": color})
}

func (r *BookmarkRepo) SetBookmarkNotes(ctx context.Context, id int64, notes string) error {
	return r.update(ctx, id, map[string]any{"notes": notes})
}

func (r *BookmarkRepo) update(ctx context.Context, id int64, values map[string]any) error {
	sql, args, err := r.Builder.
		Update("bookmarks").
		SetMap(values).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	res, err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).ExecContext(ctx, sql, args...)
	if err != nil {
		return mapErr(err)
	}
	return requireAffected(res)
}

func (r *BookmarkRepo) GetBookmark(ctx context.Context, id int64) (domain.Bookmark, error) {
	sql, args, err := r.Builder.
		Select(bookmarkColumns...).
		From("bookmarks b").
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return domain.Bookmark{}, errorsUtils.WrapPathErr(err)
	}

	b, err := scanBookmark(r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryRowContext(ctx, sql, args...))
	if err != nil {
		return domain.Bookmark{}, mapErr(err)
	}
	return b, nil
}

func (r *BookmarkRepo) DeleteBookmark(ctx context.Context, id int64) error {
	sql, args, err := r.Builder.Delete("bookmarks").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	res, err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).ExecContext(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return requireAffected(res)
}

// ListBookmarks returns the bookmarks of a session in entry order.
func (r *BookmarkRepo) ListBookmarks(ctx context.Context, sessionID string) ([]domain.Bookmark, error) {
	sql, args, err := r.Builder.
		Select(bookmarkColumns...).
		From("bookmarks b").
		Join("log_entries e ON e.id = b.log_entry_id").
		Where(sq.Eq{"e.session_id": sessionID}).
		OrderBy("e.source_file_index", "e.line_number").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	bookmarks := []domain.Bookmark{}
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return bookmarks, nil
}
