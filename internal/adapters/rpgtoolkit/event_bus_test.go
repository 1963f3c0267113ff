package rpgtoolkit_test

import (
	"context"
	"testing"

	rpgevents "github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-character-engine/internal/adapters/rpgtoolkit"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

func fighterState() *resources.State {
	return resources.Initialize(resources.InitializeInput{
		ID:    "incarnation-1",
		Class: "Fighter",
		Level: 3,
		MaxHP: 28,
		Scores: character.AbilityScores{
			Strength: 16, Dexterity: 12, Constitution: 14,
			Intelligence: 10, Wisdom: 10, Charisma: 10,
		},
	})
}

func TestEventBusAdapter_RoundTripsThroughToolkitBus(t *testing.T) {
	adapter := rpgtoolkit.NewEventBusAdapter(nil)

	var received []rpgtoolkit.ResourceEvent
	adapter.Subscribe(rpgtoolkit.EventResourcesRest, 100, func(_ context.Context, e rpgtoolkit.ResourceEvent) error {
		received = append(received, e)
		return nil
	})

	err := adapter.Publish(context.Background(), rpgtoolkit.ResourceEvent{
		Type:        rpgtoolkit.EventResourcesRest,
		CharacterID: "char-1",
		StateID:     "incarnation-1",
		Operation:   resources.OpShortRest,
		Rest:        shared.RestTypeShort,
		CurrentHP:   21,
	})

	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, rpgtoolkit.ResourceEvent{
		Type:        rpgtoolkit.EventResourcesRest,
		CharacterID: "char-1",
		StateID:     "incarnation-1",
		Operation:   resources.OpShortRest,
		Rest:        shared.RestTypeShort,
		CurrentHP:   21,
	}, received[0])
}

func TestEventBusAdapter_SourceIsTheCharacter(t *testing.T) {
	bus := rpgevents.NewBus()
	adapter := rpgtoolkit.NewEventBusAdapter(bus)

	var sourceType, sourceID string
	bus.SubscribeFunc(rpgtoolkit.EventCharacterDied, 50, func(_ context.Context, e rpgevents.Event) error {
		sourceType = e.Source().GetType()
		sourceID = e.Source().GetID()
		return nil
	})

	require.NoError(t, adapter.Publish(context.Background(), rpgtoolkit.ResourceEvent{
		Type:        rpgtoolkit.EventCharacterDied,
		CharacterID: "char-9",
		Dead:        true,
	}))

	assert.Equal(t, rpgtoolkit.EntityTypeCharacter, sourceType)
	assert.Equal(t, "char-9", sourceID)
}

func TestEventBusAdapter_RequiresType(t *testing.T) {
	adapter := rpgtoolkit.NewEventBusAdapter(nil)

	err := adapter.Publish(context.Background(), rpgtoolkit.ResourceEvent{CharacterID: "char-1"})

	assert.True(t, engineerr.IsInvalidArgument(err))
}

func TestMutationEvents(t *testing.T) {
	before := fighterState()

	t.Run("plain mutation", func(t *testing.T) {
		op := resources.UseResource{Pool: "feature:second-wind"}
		events := rpgtoolkit.MutationEvents("char-1", op, before, resources.Apply(before, op))

		require.Len(t, events, 1)
		assert.Equal(t, rpgtoolkit.EventResourcesMutated, events[0].Type)
		assert.Equal(t, resources.OpUseResource, events[0].Operation)
		assert.Equal(t, "incarnation-1", events[0].StateID)
	})

	t.Run("long rest adds a rest event", func(t *testing.T) {
		op := resources.LongRest{}
		events := rpgtoolkit.MutationEvents("char-1", op, before, resources.Apply(before, op))

		require.Len(t, events, 2)
		assert.Equal(t, rpgtoolkit.EventResourcesRest, events[1].Type)
		assert.Equal(t, shared.RestTypeLong, events[1].Rest)
	})

	t.Run("death is reported once", func(t *testing.T) {
		op := resources.UpdateDeathSaves{Failures: 3}
		after := resources.Apply(before, op)

		events := rpgtoolkit.MutationEvents("char-1", op, before, after)
		require.Len(t, events, 2)
		assert.Equal(t, rpgtoolkit.EventCharacterDied, events[1].Type)
		assert.True(t, events[1].Dead)

		again := rpgtoolkit.MutationEvents("char-1", op, after, resources.Apply(after, op))
		assert.Len(t, again, 1)
	})
}

func TestInitializedEvent(t *testing.T) {
	event := rpgtoolkit.InitializedEvent("char-1", fighterState())

	assert.Equal(t, rpgtoolkit.EventResourcesInitialized, event.Type)
	assert.Equal(t, 28, event.CurrentHP)
	assert.False(t, event.Dead)
}
