package main

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concerts/pkg/concert/memory"
	redisconcert "concerts/pkg/concert/redis"
	"concerts/pkg/config"
)

func TestOpenConcerts(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		repo, closeStore, err := openConcerts(ctx, config.Default(), nil)
		require.NoError(t, err)
		defer closeStore()
		assert.IsType(t, &memory.Repository{}, repo)
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := config.Default()
		cfg.Store = config.StoreRedis
		cfg.RedisAddr = mr.Addr()
		repo, closeStore, err := openConcerts(ctx, cfg, nil)
		require.NoError(t, err)
		defer closeStore()
		assert.IsType(t, &redisconcert.Repository{}, repo)
	})

	t.Run("postgres without db", func(t *testing.T) {
		cfg := config.Default()
		cfg.Store = config.StorePostgres
		_, _, err := openConcerts(ctx, cfg, nil)
		assert.Error(t, err)
	})
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--addr", ":9999", "--config", "x.yaml"}))
	addr, err := cmd.Flags().GetString("addr")
	require.NoError(t, err)
	assert.Equal(t, ":9999", addr)
}

func TestFlushTracingDeadline(t *testing.T) {
	stuck := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	start := time.Now()
	err := flushTracing(50*time.Millisecond, stuck)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
