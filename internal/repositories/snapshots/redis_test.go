package snapshots_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/vadim010975/retro-tactics/internal/errors"
	"github.com/vadim010975/retro-tactics/internal/redis"
	"github.com/vadim010975/retro-tactics/internal/repositories/snapshots"
	"github.com/vadim010975/retro-tactics/internal/testutils"
)

const testSnapshotKey = "snapshot:game_test_001"

type RedisSnapshotTestSuite struct {
	suite.Suite
	client redis.Client
	mr     *miniredis.Miniredis
	ctx    context.Context
}

func (s *RedisSnapshotTestSuite) SetupTest() {
	s.client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.ctx = context.Background()
}

func (s *RedisSnapshotTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *snapshots.RedisConfig
		wantErr bool
	}{
		{name: "valid config", config: &snapshots.RedisConfig{Client: s.client}},
		{name: "nil config", config: nil, wantErr: true},
		{name: "missing client", config: &snapshots.RedisConfig{}, wantErr: true},
		{name: "negative ttl", config: &snapshots.RedisConfig{Client: s.client, TTL: -time.Second}, wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := snapshots.NewRedis(tc.config)
			if tc.wantErr {
				s.Require().Error(err)
				s.Nil(repo)
				s.Contains(err.Error(), "invalid config")
				return
			}
			s.Require().NoError(err)
			s.NotNil(repo)
		})
	}
}

func (s *RedisSnapshotTestSuite) TestSaveUsesKeyAndTTL() {
	repo, err := snapshots.NewRedis(&snapshots.RedisConfig{Client: s.client, TTL: time.Hour})
	s.Require().NoError(err)

	_, err = repo.Save(s.ctx, &snapshots.SaveInput{
		GameID:   testutils.TestGameID,
		Snapshot: testutils.CreateTestSnapshot(),
	})
	s.Require().NoError(err)

	s.True(s.mr.Exists(testSnapshotKey))
	s.Equal(time.Hour, s.mr.TTL(testSnapshotKey))

	s.mr.FastForward(2 * time.Hour)
	_, err = repo.Get(s.ctx, &snapshots.GetInput{GameID: testutils.TestGameID})
	s.True(errors.IsNotFound(err))
}

func (s *RedisSnapshotTestSuite) TestDefaultTTL() {
	repo, err := snapshots.NewRedis(&snapshots.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	_, err = repo.Save(s.ctx, &snapshots.SaveInput{
		GameID:   testutils.TestGameID,
		Snapshot: testutils.CreateTestSnapshot(),
	})
	s.Require().NoError(err)
	s.Equal(snapshots.DefaultTTL, s.mr.TTL(testSnapshotKey))
}

func (s *RedisSnapshotTestSuite) TestCorruptRecord() {
	repo, err := snapshots.NewRedis(&snapshots.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.Require().NoError(s.mr.Set(testSnapshotKey, "{not json"))

	_, err = repo.Get(s.ctx, &snapshots.GetInput{GameID: testutils.TestGameID})
	s.Require().Error(err)
	s.True(errors.IsDataLoss(err))
}

func (s *RedisSnapshotTestSuite) TestServerDown() {
	repo, err := snapshots.NewRedis(&snapshots.RedisConfig{Client: s.client})
	s.Require().NoError(err)
	s.mr.Close()

	_, err = repo.Get(s.ctx, &snapshots.GetInput{GameID: testutils.TestGameID})
	s.Require().Error(err)
	s.False(errors.IsNotFound(err))
}

func TestRedisSnapshotTestSuite(t *testing.T) {
	suite.Run(t, new(RedisSnapshotTestSuite))
}
