package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	BackendJSON     = "json"
	BackendPostgres = "postgres"

	EnvDevelopment = "development"
)

// Config is read from POS_* environment variables.
type Config struct {
	Env      string `envconfig:"ENV" default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL"` // empty means debug in development, info otherwise

	Backend string `envconfig:"BACKEND" default:"json"` // json or postgres

	DataDir     string `envconfig:"DATA_DIR" default:"."`
	CatalogFile string `envconfig:"CATALOG_FILE" default:"catalog.json"`
	SalesFile   string `envconfig:"SALES_FILE" default:"sales.json"`

	DatabaseURL string `envconfig:"DATABASE_URL"` // required for postgres
}

// Load reads envFile when it exists, then the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, errors.Wrapf(err, "load %s", envFile)
		}
	}

	var cfg Config
	if err := envconfig.Process("POS", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the combinations envconfig cannot express.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON:
		if c.CatalogFile == "" || c.SalesFile == "" {
			return errors.New("POS_CATALOG_FILE and POS_SALES_FILE must not be empty")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("POS_DATABASE_URL is required for the postgres backend")
		}
	default:
		return errors.Errorf("POS_BACKEND must be %q or %q, got %q", BackendJSON, BackendPostgres, c.Backend)
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func (c Config) CatalogPath() string {
	return filepath.Join(c.DataDir, c.CatalogFile)
}

func (c Config) SalesPath() string {
	return filepath.Join(c.DataDir, c.SalesFile)
}
