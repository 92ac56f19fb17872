package app

import (
	"sync"

	"github.com/Egor213/LogLens/internal/broker"
	kafkabroker "github.com/Egor213/LogLens/internal/broker/kafka"
	"github.com/Egor213/LogLens/internal/config"
	"github.com/Egor213/LogLens/internal/htmlparser"
	"github.com/Egor213/LogLens/internal/metrics"
	"github.com/Egor213/LogLens/internal/repo"
	"github.com/Egor213/LogLens/internal/service"
	"github.com/Egor213/LogLens/internal/source"
	"github.com/Egor213/LogLens/pkg/database"
	errorsUtils "github.com/Egor213/LogLens/pkg/errors"
	"github.com/Egor213/LogLens/pkg/logger"

	log "github.com/sirupsen/logrus"
)

// Counters live in the default registry, which accepts them once per process.
var defaultCounters = sync.OnceValue(metrics.New)

type container struct {
	cfg      *config.Config
	db       *database.Database
	producer *kafkabroker.Producer
	counters *metrics.Counters
	services *service.Services
}

func bootstrap(configPath string) (*container, error) {
	// Config
	cfg, err := config.New(configPath)
	if err != nil {
		return nil, err
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level, cfg.Log.Format)
	log.Debug("Logger has been set up")

	// Migrations
	if err := Migrate(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		return nil, err
	}

	// DB connecting
	log.WithField("driver", cfg.Database.Driver).Debug("Connecting to DB")
	db, err := database.New(cfg.Database.Driver, cfg.Database.DSN, database.MaxPoolSize(cfg.Database.MaxPoolSize))
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	log.Debug("Connected to DB")

	c := &container{
		cfg:      cfg,
		db:       db,
		counters: defaultCounters(),
	}

	// Events
	var events broker.Producer
	if cfg.Kafka.Enabled {
		c.producer = kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		events = c.producer
		log.WithField("topic", cfg.Kafka.Topic).Info("Publishing ingestion events")
	}

	// Services
	deps := service.ServicesDependencies{
		Repos:     repo.NewRepositories(db),
		TxManager: db.TrManager,
		Parser:    htmlparser.New(cfg.Ingest.FailureAnchors...),
		Counters:  c.counters,
		Events:    events,
		Ingest: service.IngestOptions{
			FileConcurrency:    cfg.Ingest.FileConcurrency,
			SessionConcurrency: cfg.Ingest.SessionConcurrency,
			FetchAttempts:      cfg.Ingest.FetchAttempts,
			FetchBackoff:       cfg.Ingest.FetchBackoff,
		},
		LevelPriority: cfg.Ingest.LevelPriority,
	}
	c.services = service.NewServices(deps)

	return c, nil
}

// openSource resolves a directory path or http(s) URL.
func (c *container) openSource(location string) (source.Source, error) {
	return source.Open(location, source.Options{HTTPTimeout: c.cfg.Ingest.HTTPTimeout})
}

func (c *container) Close() {
	if c.producer != nil {
		if err := c.producer.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
	c.db.Close()
}
