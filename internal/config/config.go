package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	errorsUtils "github.com/Egor213/LogLens/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type (
	Config struct {
		App      `yaml:"app"`
		Log      `yaml:"log"`
		Database `yaml:"database"`
		Ingest   `yaml:"ingest"`
		HTTP     `yaml:"http"`
		Kafka    `yaml:"kafka"`
	}

	App struct {
		Name    string `yaml:"name" env:"APP_NAME" env-default:"loglens"`
		Version string `yaml:"version" env:"APP_VERSION" env-default:"dev"`
	}

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=trace debug info warn warning error fatal panic"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text" validate:"oneof=text json"`
	}

	Database struct {
		Driver      string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite" validate:"oneof=sqlite postgres"`
		DSN         string `yaml:"dsn" env:"DB_DSN" env-default:"loglens.db" validate:"required"`
		MaxPoolSize int    `yaml:"max_pool_size" env:"DB_MAX_POOL_SIZE" env-default:"4" validate:"min=1"`
	}

	Ingest struct {
		FileConcurrency    int           `yaml:"file_concurrency" env:"INGEST_FILE_CONCURRENCY" env-default:"4" validate:"min=1"`
		SessionConcurrency int           `yaml:"session_concurrency" env:"INGEST_SESSION_CONCURRENCY" env-default:"2" validate:"min=1"`
		FetchAttempts      int           `yaml:"fetch_attempts" env:"INGEST_FETCH_ATTEMPTS" env-default:"3" validate:"min=1"`
		FetchBackoff       time.Duration `yaml:"fetch_backoff" env:"INGEST_FETCH_BACKOFF" env-default:"200ms"`
		HTTPTimeout        time.Duration `yaml:"http_timeout" env:"INGEST_HTTP_TIMEOUT" env-default:"30s"`
		WatchDebounce      time.Duration `yaml:"watch_debounce" env:"INGEST_WATCH_DEBOUNCE" env-default:"500ms"`
		FailureAnchors     []string      `yaml:"failure_anchors" env:"INGEST_FAILURE_ANCHORS" env-default:"failure" validate:"min=1"`
		LevelPriority      []string      `yaml:"level_priority" env:"INGEST_LEVEL_PRIORITY" env-default:"ERROR,WARNING,WARN,INFO,DEBUG,TRACE,MARKER"`
	}

	HTTP struct {
		Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080" validate:"required"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:"localhost:9092"`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"loglens.sessions"`
	}
)

const (
	ENV_PATH            = ".env"
	DEFAULT_CONFIG_PATH = "config.yaml"
)

// New reads the config file at path, APP_CONFIG_PATH or DEFAULT_CONFIG_PATH,
// in that order. A missing file is not an error: env and defaults apply.
func New(path string) (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if path == "" {
		path = os.Getenv("APP_CONFIG_PATH")
	}
	if path == "" {
		path = DEFAULT_CONFIG_PATH
	}

	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
	} else {
		log.WithField("path", path).Debug("Config file not found, using env and defaults")
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
