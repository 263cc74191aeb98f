package cache

import (
	"context"
	"testing"

	"github.com/alexferreiraaf/osmaster/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client := NewRedisClient(config.RedisConfig{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, Ping(context.Background(), client))

	mr.Close()
	require.Error(t, Ping(context.Background(), client))
}
