package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

// Storage backend names accepted by STORAGE_BACKEND.
const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"9446"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// StorageBackend selects the ledger store. The memory backend keeps
	// everything in process and is meant for tests and local runs.
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"postgres"`

	// Defaults match the docker compose setup.
	PostgresAddress  string `env:"POSTGRES_ADDRESS" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5433"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"postgres"`
	PostgresUsername string `env:"POSTGRES_USERNAME" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"testpassword"`

	// StrictReferences makes posting fail outright when a referenced
	// account does not resolve, instead of skipping that side's balance
	// update and still logging the transaction.
	StrictReferences bool `env:"STRICT_REFERENCES" envDefault:"false"`

	// OperatorWorkers is the number of workers draining the write queue.
	// The memory backend is always run with a single worker regardless of
	// this value, since it relies on the queue for write serialization.
	OperatorWorkers int `env:"OPERATOR_WORKERS" envDefault:"4"`

	// KafkaBrokers enables transaction-posted event publishing when
	// non-empty.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"transaction_posted"`
}

// ProcessEnvironmentVariables loads the configuration from the process
// environment.
func ProcessEnvironmentVariables() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.StorageBackend != BackendPostgres && cfg.StorageBackend != BackendMemory {
		return nil, fmt.Errorf("config: STORAGE_BACKEND must be %q or %q, got %q",
			BackendPostgres, BackendMemory, cfg.StorageBackend)
	}
	if cfg.OperatorWorkers < 1 {
		cfg.OperatorWorkers = 1
	}
	return &cfg, nil
}

// PostgresDSN builds the connection string for the postgres backend.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
