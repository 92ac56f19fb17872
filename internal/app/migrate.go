package app

import (
	"errors"
	"time"

	"github.com/Egor213/LogLens/migrations"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
)

// Migrate applies the embedded schema of driver to dsn, retrying while the
// database is unreachable.
func Migrate(driver, dsn string) error {
	log.WithField("driver", driver).Info("Migrate")

	var (
		connAttempts = defaultAttempts
		err          error
		mgrt         *migrate.Migrate
	)

	for connAttempts > 0 {
		mgrt, err = migrations.New(driver, dsn)
		if err == nil {
			break
		}

		connAttempts--
		log.Infof("Database trying to connect, attempts left: %d", connAttempts)
		if connAttempts > 0 {
			time.Sleep(defaultTimeout)
		}
	}

	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer mgrt.Close()

	if err = mgrt.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errorsUtils.WrapPathErr(err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}

	log.Info("Migration successful up")
	return nil
}
