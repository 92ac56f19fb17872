package sqldb

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/Egor213/LogLens/internal/repo/repoerrs"
	"github.com/Egor213/LogLens/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
	sq "github.com/Masterminds/squirrel"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func BuildEntryQueryFilters(filter repotypes.EntryFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{sq.Eq{"e.session_id": filter.SessionID}}

	if len(filter.Levels) > 0 {
		conds = append(conds, sq.Eq{"e.level": filter.Levels})
	}
	if filter.FailuresOnly {
		conds = append(conds, sq.Eq{"e.is_failure_marker": true})
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		conds = append(conds, sq.Or{
			sq.Expr(`LOWER(e.message) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(COALESCE(e.stack, '')) LIKE ? ESCAPE '\'`, pattern),
		})
	}

	return conds
}

// mapErr translates driver errors into repoerrs sentinels, wrapping the rest.
func mapErr(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return repoerrs.ErrNotFound
	case errorsUtils.IsUniqueViolation(err):
		return repoerrs.ErrAlreadyExists
	case errorsUtils.IsForeignKeyViolation(err):
		return repoerrs.ErrNotFound
	default:
		return errorsUtils.WrapPathErr(err)
	}
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if n == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}
