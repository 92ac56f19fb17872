package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	errorsUtils "github.com/Egor213/LogLens/pkg/errors"

	"github.com/Masterminds/squirrel"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	DefaultMaxPoolSize  = 4
	DefaultConnAttempts = 10
	DefaultConnTimeout  = time.Second

	sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"
)

type Database struct {
	driver       string
	maxPoolSize  int
	connAttempts int
	connTimeout  time.Duration

	Builder   squirrel.StatementBuilderType
	CtxGetter *trmsql.CtxGetter
	TrManager *manager.Manager
	DB        *sql.DB
}

// New opens the embedded SQLite file (driver "sqlite", dsn is a file path)
// or a PostgreSQL server (driver "postgres", dsn is a connection URL).
func New(driver, dsn string, opts ...Option) (*Database, error) {
	d := &Database{
		driver:       driver,
		maxPoolSize:  DefaultMaxPoolSize,
		connAttempts: DefaultConnAttempts,
		connTimeout:  DefaultConnTimeout,
		CtxGetter:    trmsql.DefaultCtxGetter,
	}

	for _, opt := range opts {
		opt(d)
	}

	var (
		sqlDriver string
		err       error
	)

	switch driver {
	case DriverSQLite:
		sqlDriver = "sqlite3"
		dsn = SQLiteDSN(dsn)
		d.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	case DriverPostgres:
		sqlDriver = "pgx"
		d.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	default:
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("unsupported database driver %q", driver))
	}

	d.DB, err = sql.Open(sqlDriver, dsn)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	// SQLite allows a single writer; one connection keeps transactions from
	// failing with SQLITE_BUSY and lets them queue instead.
	if driver == DriverSQLite {
		d.DB.SetMaxOpenConns(1)
	} else {
		d.DB.SetMaxOpenConns(d.maxPoolSize)
	}

	for d.connAttempts > 0 {
		if err = d.DB.PingContext(context.Background()); err == nil {
			break
		}

		d.connAttempts--
		log.Infof("Database trying to connect, attempts left: %d", d.connAttempts)
		time.Sleep(d.connTimeout)
	}

	if err != nil {
		_ = d.DB.Close()
		return nil, errorsUtils.WrapPathErr(err)
	}

	d.TrManager = manager.Must(trmsql.NewDefaultFactory(d.DB))

	return d, nil
}

func (d *Database) Driver() string {
	return d.driver
}

func (d *Database) Close() {
	if d.DB != nil {
		_ = d.DB.Close()
	}
}

// SQLiteDSN appends the connection parameters the repositories rely on
// (foreign keys for cascades, busy timeout, WAL).
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqliteParams
	}
	return path + "?" + sqliteParams
}
