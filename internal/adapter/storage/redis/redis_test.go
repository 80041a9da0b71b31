package redis

import (
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheURL_ParsesAddrAndDB(t *testing.T) {
	opts, err := goredis.ParseURL("redis://:secret@cache.example.com:6380/2")
	require.NoError(t, err)

	assert.Equal(t, "cache.example.com:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestCacheURL_DefaultDB(t *testing.T) {
	opts, err := goredis.ParseURL("redis://localhost:6379")
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 0, opts.DB)
}

// NewClient itself requires a reachable Redis instance and is
// exercised by the integration suite, not here.
