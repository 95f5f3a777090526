package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadim010975/retro-tactics/internal/config"
	"github.com/vadim010975/retro-tactics/internal/entities"
	"github.com/vadim010975/retro-tactics/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, 8, cfg.BoardSize)
	assert.Equal(t, 4, cfg.TeamSize)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 720*time.Hour, cfg.SnapshotTTL)
	assert.Empty(t, cfg.ArchetypesFile)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TACTICS_STORE", "sqlite")
	t.Setenv("TACTICS_SQLITE_PATH", "/tmp/games.db")
	t.Setenv("TACTICS_TICK_INTERVAL", "0s")
	t.Setenv("TACTICS_BOARD_SIZE", "10")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/games.db", cfg.SQLitePath)
	assert.Zero(t, cfg.TickInterval)
	assert.Equal(t, 10, cfg.BoardSize)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("TACTICS_GRPC_PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			GRPCPort:   50051,
			HTTPAddr:   ":8080",
			Store:      config.StoreMemory,
			BoardSize:  8,
			TeamSize:   4,
			SQLitePath: "tactics.db",
			RedisAddr:  "localhost:6379",
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "unknown store", mutate: func(c *config.Config) { c.Store = "etcd" }, wantErr: "store: must be one of"},
		{name: "small board", mutate: func(c *config.Config) { c.BoardSize = 3 }, wantErr: "board_size"},
		{name: "team larger than start columns", mutate: func(c *config.Config) { c.TeamSize = 17 }, wantErr: "team_size"},
		{name: "bad port", mutate: func(c *config.Config) { c.GRPCPort = 0 }, wantErr: "grpc_port"},
		{name: "redis without address", mutate: func(c *config.Config) {
			c.Store = config.StoreRedis
			c.RedisAddr = ""
		}, wantErr: "redis_addr"},
		{name: "sqlite without path", mutate: func(c *config.Config) {
			c.Store = config.StoreSQLite
			c.SQLitePath = ""
		}, wantErr: "sqlite_path"},
		{name: "negative tick", mutate: func(c *config.Config) { c.TickInterval = -time.Second }, wantErr: "tick_interval"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadArchetypesEmbedded(t *testing.T) {
	table, err := config.LoadArchetypes("")
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultArchetypes(), table)
}

func TestLoadArchetypesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archetypes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
archetypes:
  - name: swordsman
    side: own
    attack: 70
    defence: 15
    hike_range: 3
    attack_range: 1
`), 0o600))

	table, err := config.LoadArchetypes(path)
	require.NoError(t, err)

	swordsman, err := table.Lookup(entities.ArchetypeSwordsman)
	require.NoError(t, err)
	assert.Equal(t, 70.0, swordsman.Attack)
	assert.Equal(t, 3, swordsman.HikeRange)

	bowman, err := table.Lookup(entities.ArchetypeBowman)
	require.NoError(t, err)
	assert.Equal(t, 25.0, bowman.Attack)
}

func TestLoadArchetypesErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	testCases := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "nope.yaml")},
		{name: "bad yaml", path: write("bad.yaml", "archetypes: [")},
		{name: "unknown side", path: write("side.yaml", "archetypes:\n  - name: knight\n    side: neutral\n    attack: 1\n    hike_range: 1\n    attack_range: 1\n")},
		{name: "zero attack", path: write("zero.yaml", "archetypes:\n  - name: bowman\n    side: own\n    attack: 0\n    hike_range: 1\n    attack_range: 1\n")},
		{name: "unnamed", path: write("unnamed.yaml", "archetypes:\n  - side: own\n    attack: 5\n")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadArchetypes(tc.path)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}
