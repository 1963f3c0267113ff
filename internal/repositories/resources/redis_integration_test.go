//go:build integration

package resources_test

import (
	"testing"

	"github.com/KirkDiggler/dnd-character-engine/internal/repositories/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/testutils"
)

func TestRedisRepository_Container(t *testing.T) {
	rc := testutils.NewRedisContainer(t)
	runRepositoryContract(t, resources.NewRedis(rc.Client, 0))
}

// Uses a Redis on localhost:6379 (DB 15) when one is running
func TestRedisRepository_LocalRedis(t *testing.T) {
	client := testutils.CreateTestRedisClient(t, nil)
	runRepositoryContract(t, resources.NewRedisRepository(&resources.RedisRepoConfig{
		Client:    client,
		KeyPrefix: "engine-test",
	}))
}
