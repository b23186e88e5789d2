package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
)

// Config is read from the environment; main loads .env beforehand.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"capacidade.db"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	Tables Tables

	NationalHolidays bool `env:"NATIONAL_HOLIDAYS" envDefault:"true"`
	FetchConcurrency int  `env:"FETCH_CONCURRENCY" envDefault:"8"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"LOG_FILE"`
}

// Tables names the DynamoDB tables backing each record kind.
type Tables struct {
	Collaborators string `env:"COLLABORATORS_TABLE" envDefault:"membro"`
	TimeRecords   string `env:"TIME_RECORDS_TABLE" envDefault:"registro_tempo"`
	Estimates     string `env:"ESTIMATES_TABLE" envDefault:"tempo_estimado"`
	Vigencias     string `env:"VIGENCIAS_TABLE" envDefault:"vigencia"`
	Holidays      string `env:"HOLIDAYS_TABLE" envDefault:"feriado"`
	Catalog       string `env:"CATALOG_TABLE" envDefault:"catalogo"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverDynamoDB, DriverSQLite:
	default:
		return fmt.Errorf("invalid STORAGE_DRIVER %q (want %s or %s)", c.StorageDriver, DriverDynamoDB, DriverSQLite)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q (want debug, release or test)", c.GinMode)
	}
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("FETCH_CONCURRENCY must be at least 1, got %d", c.FetchConcurrency)
	}
	return nil
}

// Addr is the HTTP listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}
