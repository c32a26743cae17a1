package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"team-registry/internal/identity"
	"team-registry/internal/logger"
	"team-registry/internal/repository/postgres"
	"team-registry/internal/server"
)

type Config struct {
	Logger   logger.Config
	Postgres postgres.Config
	HTTP     server.Config
	Identity identity.Config
}

func New(path string) (*Config, error) {
	cfg := &Config{}

	err := cleanenv.ReadConfig(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return cfg, nil
}
