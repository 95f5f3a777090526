// Package config loads server settings from the environment and the
// archetype stat table from YAML
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/vadim010975/retro-tactics/internal/errors"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

const (
	minBoardSize = 4
	maxBoardSize = 26
)

// Config holds the server settings
type Config struct {
	GRPCPort       int           `env:"TACTICS_GRPC_PORT"        envDefault:"50051"`
	HTTPAddr       string        `env:"TACTICS_HTTP_ADDR"        envDefault:":8080"`
	Store          string        `env:"TACTICS_STORE"            envDefault:"memory"`
	RedisAddr      string        `env:"TACTICS_REDIS_ADDR"       envDefault:"localhost:6379"`
	SQLitePath     string        `env:"TACTICS_SQLITE_PATH"      envDefault:"tactics.db"`
	BoardSize      int           `env:"TACTICS_BOARD_SIZE"       envDefault:"8"`
	TeamSize       int           `env:"TACTICS_TEAM_SIZE"        envDefault:"4"`
	TickInterval   time.Duration `env:"TACTICS_TICK_INTERVAL"    envDefault:"50ms"`
	SnapshotTTL    time.Duration `env:"TACTICS_SNAPSHOT_TTL"     envDefault:"720h"`
	ArchetypesFile string        `env:"TACTICS_ARCHETYPES_FILE"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and the store choice
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateEnum("store", c.Store, []string{StoreMemory, StoreRedis, StoreSQLite}, vb)
	errors.ValidateRange("board_size", c.BoardSize, minBoardSize, maxBoardSize, vb)
	errors.ValidateRange("team_size", c.TeamSize, 1, 2*c.BoardSize, vb)

	if c.HTTPAddr == "" {
		vb.RequiredField("http_addr")
	}
	if c.Store == StoreRedis && c.RedisAddr == "" {
		vb.Field("redis_addr", "is required for the redis store")
	}
	if c.Store == StoreSQLite && c.SQLitePath == "" {
		vb.Field("sqlite_path", "is required for the sqlite store")
	}
	if c.TickInterval < 0 {
		vb.Field("tick_interval", "must not be negative")
	}
	if c.SnapshotTTL < 0 {
		vb.Field("snapshot_ttl", "must not be negative")
	}

	return vb.Build()
}
