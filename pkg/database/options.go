package database

import "time"

type Option func(*Database)

func MaxPoolSize(size int) Option {
	return func(d *Database) {
		d.maxPoolSize = size
	}
}

func ConnAttempts(attempts int) Option {
	return func(d *Database) {
		d.connAttempts = attempts
	}
}

func ConnTimeout(timeout time.Duration) Option {
	return func(d *Database) {
		d.connTimeout = timeout
	}
}
