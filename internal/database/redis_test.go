package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-chef/config"
)

func TestRedisOptions(t *testing.T) {
	t.Run("should prefer Redis URL", func(t *testing.T) {
		opts, err := RedisOptions(&config.Config{
			RedisURL:  "redis://:secret@cache.internal:6380/2",
			RedisHost: "ignored",
			RedisPort: "1",
		})
		require.NoError(t, err)
		assert.Equal(t, "cache.internal:6380", opts.Addr)
		assert.Equal(t, "secret", opts.Password)
		assert.Equal(t, 2, opts.DB)
	})

	t.Run("should build address from host and port", func(t *testing.T) {
		opts, err := RedisOptions(&config.Config{
			RedisHost:     "localhost",
			RedisPort:     "6379",
			RedisPassword: "pw",
			RedisDB:       3,
		})
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Equal(t, 3, opts.DB)
	})

	t.Run("should reject malformed URL", func(t *testing.T) {
		_, err := RedisOptions(&config.Config{RedisURL: "http://not-redis"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse Redis URL")
	})
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	client, err := NewRedisClient(context.Background(), &config.Config{RedisHost: "127.0.0.1", RedisPort: "1"})
	assert.Nil(t, client)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
