package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestCheckHealthReportsRedisAndMissingMongo(t *testing.T) {
	mr := miniredis.RunT(t)
	up := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer up.Close()

	status := CheckHealth(context.Background(), []*redis.Client{up, nil}, nil)

	assert.Equal(t, []bool{true, false}, status.Redis)
	assert.False(t, status.Mongo)
	assert.False(t, status.Healthy())
	assert.Equal(t, status.CheckedAt, GetHealthStatus().CheckedAt)
}

func TestHealthyRequiresEveryDependency(t *testing.T) {
	assert.True(t, HealthStatus{Mongo: true, Redis: []bool{true, true}}.Healthy())
	assert.False(t, HealthStatus{Mongo: true, Redis: []bool{true, false}}.Healthy())
}
