package errorsUtils

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
)

func Is(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

func isSqlite(err error, codes ...sqlite3.ErrNoExtended) bool {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return false
	}
	for _, c := range codes {
		if liteErr.ExtendedCode == c {
			return true
		}
	}
	return false
}

func IsUniqueViolation(err error) bool {
	return Is(err, CodeUniqueViolation) ||
		isSqlite(err, sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey)
}

func IsForeignKeyViolation(err error) bool {
	return Is(err, CodeForeignKeyViolation) || isSqlite(err, sqlite3.ErrConstraintForeignKey)
}

func IsNotNullViolation(err error) bool {
	return Is(err, CodeNotNullViolation) || isSqlite(err, sqlite3.ErrConstraintNotNull)
}

func WrapPathErr(err error) error {
	pc, _, line, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc).Name()
	return fmt.Errorf("[%s:%d] %w", fn, line, err)
}
