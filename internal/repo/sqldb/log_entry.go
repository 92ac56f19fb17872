package sqldb

import (
	"context"

	"github.com/Egor213/LogLens/internal/domain"
	"github.com/Egor213/LogLens/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
	"github.com/Egor213/LogLens/pkg/database"
	sq "github.com/Masterminds/squirrel"
)

var entryColumns = []string{
	"e.id", "e.session_id", "e.source_file_index", "e.line_number",
	"e.timestamp", "e.level", "e.message", "e.stack", "e.is_failure_marker",
}

type LogEntryRepo struct {
	*database.Database
}

func NewLogEntryRepo(db *database.Database) *LogEntryRepo {
	return &LogEntryRepo{db}
}

func scanEntry(row rowScanner) (domain.LogEntry, error) {
	var e domain.LogEntry
	err := row.Scan(&e.ID, &e.SessionID, &e.SourceFileIndex, &e.LineNumber,
		&e.Timestamp, &e.Level, &e.Message, &e.Stack, &e.IsFailureMarker)
	return e, err
}

// InsertEntries stores entries in slice order and writes the assigned ids
// and sessionID back into the slice.
func (r *LogEntryRepo) InsertEntries(ctx context.Context, sessionID string, entries []domain.LogEntry) error {
	tr := r.CtxGetter.DefaultTrOrDB(ctx, r.DB)

	for i := range entries {
		e := &entries[i]
		e.SessionID = sessionID

		sql, args, err := r.Builder.
			Insert("log_entries").
			Columns("session_id", "source_file_index", "line_number", "timestamp",
				"level", "message", "stack", "is_failure_marker").
			Values(e.SessionID, e.SourceFileIndex, e.LineNumber, e.Timestamp,
				e.Level, e.Message, e.Stack, e.IsFailureMarker).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}

		if err := tr.QueryRowContext(ctx, sql, args...).Scan(&e.ID); err != nil {
			return mapErr(err)
		}
	}

	return nil
}

// GetEntries returns matching entries in session order.
func (r *LogEntryRepo) GetEntries(ctx context.Context, filter repotypes.EntryFilter) ([]domain.LogEntry, error) {
	query := r.Builder.
		Select(entryColumns...).
		From("log_entries e").
		Where(sq.And(BuildEntryQueryFilters(filter))).
		OrderBy("e.source_file_index", "e.line_number")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			// SQLite only accepts OFFSET after a LIMIT.
			query = query.Limit(1<<63 - 1)
		}
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	entries := []domain.LogEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return entries, nil
}

// CountEntries counts matching entries, ignoring Limit and Offset.
func (r *LogEntryRepo) CountEntries(ctx context.Context, filter repotypes.EntryFilter) (int, error) {
	sql, args, err := r.Builder.
		Select("COUNT(*)").
		From("log_entries e").
		Where(sq.And(BuildEntryQueryFilters(filter))).
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var n int
	if err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryRowContext(ctx, sql, args...).Scan(&n); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return n, nil
}

func (r *LogEntryRepo) GetEntry(ctx context.Context, id int64) (domain.LogEntry, error) {
	sql, args, err := r.Builder.
		Select(entryColumns...).
		From("log_entries e").
		Where(sq.Eq{"e.id": id}).
		ToSql()
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(err)
	}

	e, err := scanEntry(r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryRowContext(ctx, sql, args...))
	if err != nil {
		return domain.LogEntry{}, mapErr(err)
	}
	return e, nil
}

// GetLevelStats counts the entries of a session per level, unordered.
func (r *LogEntryRepo) GetLevelStats(ctx context.Context, sessionID string) ([]domain.LevelStats, error) {
	sql, args, err := r.Builder.
		Select("level", "COUNT(*) AS count_entries").
		From("log_entries").
		Where(sq.Eq{"session_id": sessionID}).
		GroupBy("level").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.DB).QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	stats := []domain.LevelStats{}
	for rows.Next() {
		var ls domain.LevelStats
		if err := rows.Scan(&ls.Level, &ls.Count); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		stats = append(stats, ls)
	}
	if err := rows.Err(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return stats, nil
}
