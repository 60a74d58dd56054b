package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config holds process-level settings, loaded from the environment with
// the POKERSIM prefix (POKERSIM_LISTEN, POKERSIM_PG_DSN, ...).
type Config struct {
	Listen         string `envconfig:"listen" default:":8080"`
	PGDSN          string `envconfig:"pg_dsn" default:"postgres://postgres@localhost:5432/poker?sslmode=disable"`
	MigrationsPath string `envconfig:"migrations_path" default:"./sql"`
	TableProfile   string `envconfig:"table_profile"`
	Debug          bool   `envconfig:"debug"`
}

// Load reads configuration from the environment
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("pokersim", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
