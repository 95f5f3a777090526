package snapshots

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/vadim010975/retro-tactics/internal/errors"
	redisclient "github.com/vadim010975/retro-tactics/internal/redis"
)

const (
	// Key pattern: snapshot:{game_id}
	snapshotKeyPrefix = "snapshot:"
	// DefaultTTL keeps a saved game for a month
	DefaultTTL = 30 * 24 * time.Hour
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL is the lifetime of a saved game. Zero means DefaultTTL.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis repository for saved games
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores the snapshot under the game key, resetting its TTL
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := encode(input.Snapshot)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, snapshotKey(input.GameID), data, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot for game %s", input.GameID)
	}

	return &SaveOutput{Success: true}, nil
}

// Get retrieves the snapshot of a game
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGameID(input.GameID); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, snapshotKey(input.GameID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, notFound(input.GameID)
		}
		return nil, errors.Wrapf(err, "failed to get snapshot for game %s", input.GameID)
	}

	snap, err := decode(input.GameID, data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Snapshot: snap}, nil
}

// Delete removes the snapshot of a game
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGameID(input.GameID); err != nil {
		return nil, err
	}

	deleted, err := r.client.Del(ctx, snapshotKey(input.GameID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete snapshot for game %s", input.GameID)
	}
	if deleted == 0 {
		return nil, notFound(input.GameID)
	}

	return &DeleteOutput{Success: true}, nil
}

func snapshotKey(gameID string) string {
	return snapshotKeyPrefix + gameID
}
