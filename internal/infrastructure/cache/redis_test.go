package cache

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"career-guide/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_BypassesWhenUnreachable(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	r := NewRedis(config.RedisConfig{Host: "127.0.0.1", Port: "1"}, logger)
	require.NotNil(t, r)
	assert.False(t, r.Available())
	assert.Contains(t, buf.String(), "[Cache] Redis unavailable")

	ctx := context.Background()
	var out map[string]string
	hit, err := r.GetJSON(ctx, "k", &out)
	assert.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.SetJSON(ctx, "k", map[string]string{"a": "b"}, time.Second))
	assert.NoError(t, r.Delete(ctx, "k"))
	assert.Error(t, r.Ping(ctx))

	ok, err := r.SetIfNotExists(ctx, "lock", "1", 0)
	assert.False(t, ok)
	assert.ErrorIs(t, err, errUnavailable)
	assert.NoError(t, r.Close())
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	assert.False(t, r.Available())
	hit, err := r.GetJSON(context.Background(), "k", &struct{}{})
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, r.Close())
}
