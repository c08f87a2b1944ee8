package localstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	store  Store
}

func (s *RedisStoreTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	store, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

func (s *RedisStoreTestSuite) TestSetAndGet() {
	err := s.store.Set(context.Background(), &SetInput{
		Key:   "42",
		Value: "2025-04-19T12:00:00Z",
	})
	s.Require().NoError(err)

	output, err := s.store.Get(context.Background(), &GetInput{Key: "42"})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal("2025-04-19T12:00:00Z", output.Value)
}

func (s *RedisStoreTestSuite) TestGet_MissingKey() {
	output, err := s.store.Get(context.Background(), &GetInput{Key: "42"})
	s.Require().NoError(err)
	s.False(output.Found)
	s.Empty(output.Value)
}

func (s *RedisStoreTestSuite) TestRemove() {
	err := s.store.Set(context.Background(), &SetInput{Key: "42", Value: "x"})
	s.Require().NoError(err)

	err = s.store.Remove(context.Background(), &RemoveInput{Key: "42"})
	s.Require().NoError(err)

	output, err := s.store.Get(context.Background(), &GetInput{Key: "42"})
	s.Require().NoError(err)
	s.False(output.Found)
}

func (s *RedisStoreTestSuite) TestRemove_MissingKeyIsNoop() {
	err := s.store.Remove(context.Background(), &RemoveInput{Key: "42"})
	s.NoError(err)
}

func (s *RedisStoreTestSuite) TestClear() {
	for _, key := range []string{"1", "2", "3"} {
		err := s.store.Set(context.Background(), &SetInput{Key: key, Value: "x"})
		s.Require().NoError(err)
	}

	// A foreign key outside the store's prefix must survive Clear
	s.Require().NoError(s.client.Set(context.Background(), "other:key", "y", 0).Err())

	err := s.store.Clear(context.Background(), &ClearInput{})
	s.Require().NoError(err)

	for _, key := range []string{"1", "2", "3"} {
		output, err := s.store.Get(context.Background(), &GetInput{Key: key})
		s.Require().NoError(err)
		s.False(output.Found)
	}

	s.True(s.mr.Exists("other:key"))
}

func (s *RedisStoreTestSuite) TestClear_EmptyStore() {
	err := s.store.Clear(context.Background(), &ClearInput{})
	s.NoError(err)
}
