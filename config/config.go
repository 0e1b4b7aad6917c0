package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	APIBaseURL     string        `env:"RUNNER_API_URL" envDefault:"https://horizon777api-production.up.railway.app"`
	APIToken       string        `env:"RUNNER_API_TOKEN"`
	RequestTimeout time.Duration `env:"RUNNER_REQUEST_TIMEOUT" envDefault:"5s"`
	DepositURL     string        `env:"RUNNER_DEPOSIT_URL" envDefault:"/deposit"`

	AssetDir   string `env:"RUNNER_ASSET_DIR" envDefault:"assets"`
	TuningFile string `env:"RUNNER_TUNING_FILE"`
	Title      string `env:"RUNNER_WINDOW_TITLE" envDefault:"Horizon777 Dino Rex"`

	HTTPPort string `env:"RUNNER_HTTP_PORT" envDefault:"8080"`
	GRPCPort string `env:"RUNNER_GRPC_PORT" envDefault:"8081"`

	NatsURL        string `env:"RUNNER_NATS_URL"`
	BackupRedisURL string `env:"RUNNER_BACKUP_REDIS_URL"`
	OtelEndpoint   string `env:"RUNNER_OTEL_ENDPOINT"`

	LogJSON  bool   `env:"RUNNER_LOG_JSON" envDefault:"false"`
	LogLevel string `env:"RUNNER_LOG_LEVEL" envDefault:"info"`
}

// Init loads an optional .env file and parses the environment into a Config.
func Init() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("Failed to load .env file")
	}

	conf, err := Parse()
	if err != nil {
		log.WithError(err).Fatal("Failed to parse config")
	}

	return conf
}

func Parse() (Config, error) {
	var conf Config
	if err := env.Parse(&conf); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return conf, nil
}

// SetupLogging applies the log format and level from the config.
func SetupLogging(conf Config) {
	if conf.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		log.WithError(err).Warn("Unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
