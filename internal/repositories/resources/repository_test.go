package resources_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	domain "github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
	"github.com/KirkDiggler/dnd-character-engine/internal/repositories/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/testutils"
)

// runRepositoryContract exercises behaviour every Repository must share
func runRepositoryContract(t *testing.T, repo resources.Repository) {
	ctx := context.Background()
	state := domain.Initialize(domain.InitializeInput{
		ID:    "incarnation-1",
		Class: "Cleric",
		Level: 5,
		Scores: character.AbilityScores{
			Strength: 10, Dexterity: 10, Constitution: 12,
			Intelligence: 10, Wisdom: 16, Charisma: 10,
		},
	})

	t.Run("missing state is not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "nobody")
		assert.True(t, engineerr.IsNotFound(err))
	})

	t.Run("save then get", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, "char-1", state))

		got, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, "char-1", got.CharacterID)
		assert.Equal(t, state.ID, got.ID)
		assert.Equal(t, state.SpellSlots, got.SpellSlots)
		assert.Equal(t, state.Features, got.Features)
	})

	t.Run("save replaces", func(t *testing.T) {
		spent := domain.Apply(state, domain.UseResource{Pool: "spell:3", Amount: 2})
		require.NoError(t, repo.Save(ctx, "char-1", spent))

		got, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.SpellSlots[3].Used)
	})

	t.Run("returned states are independent", func(t *testing.T) {
		got, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		got.SpellSlots[1] = domain.Pool{Used: 4, Max: 4}

		again, err := repo.Get(ctx, "char-1")
		require.NoError(t, err)
		assert.Equal(t, 0, again.SpellSlots[1].Used)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "char-1"))
		require.NoError(t, repo.Delete(ctx, "char-1"))

		_, err := repo.Get(ctx, "char-1")
		assert.True(t, engineerr.IsNotFound(err))
	})
}

func TestInMemoryRepository(t *testing.T) {
	runRepositoryContract(t, resources.NewInMemoryRepository())
}

func TestRedisRepository_MiniRedis(t *testing.T) {
	_, client := testutils.CreateMiniRedisClient(t)
	runRepositoryContract(t, resources.NewRedis(client, 0))
}

func TestRedisRepository_TTLExpires(t *testing.T) {
	mr, client := testutils.CreateMiniRedisClient(t)
	repo := resources.NewRedis(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "char-1", &domain.State{ID: "x", Class: "Fighter", Level: 1, MaxHP: 10}))
	assert.True(t, mr.Exists("engine:resources:char-1"))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "char-1")
	assert.True(t, engineerr.IsNotFound(err))
}
