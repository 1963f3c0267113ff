package dnd5e_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-character-engine/internal/clients/dnd5e"
	mockdnd5e "github.com/KirkDiggler/dnd-character-engine/internal/clients/dnd5e/mock"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

func TestHydrate_FetchesOnlyWhatIsMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnd5e.NewMockClient(ctrl)
	catalog, err := rulebook.LoadSRD()
	require.NoError(t, err)

	client.EXPECT().GetClass(gomock.Any(), "Artificer").
		Return(&rulebook.ClassDefinition{Key: "artificer", Name: "Artificer", HitDie: 8}, nil)
	client.EXPECT().GetRace(gomock.Any(), "Firbolg").
		Return(&rulebook.RaceDefinition{Key: "firbolg", Name: "Firbolg", Speed: 30}, nil)
	client.EXPECT().GetSpell(gomock.Any(), "lightning-bolt").
		Return(&rulebook.Spell{Key: "lightning-bolt", Name: "Lightning Bolt", Level: 3}, nil)
	client.EXPECT().GetSpell(gomock.Any(), "made-up-spell").
		Return(nil, engineerr.NotFound("spell 'made-up-spell' not found"))

	result, err := dnd5e.Hydrate(context.Background(), client, catalog, dnd5e.HydrateInput{
		Class:  "Artificer",
		Race:   "Firbolg",
		Spells: []string{"Fire Bolt", "Lightning Bolt", "lightning bolt", "Made Up Spell"},
	})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"class:artificer", "race:firbolg", "spell:lightning-bolt"}, result.Fetched)
	assert.Equal(t, []string{"Made Up Spell"}, result.Missing)

	assert.True(t, catalog.HasClass("artificer"))
	assert.True(t, catalog.HasRace("Firbolg"))
	_, ok := catalog.Spell("Lightning Bolt")
	assert.True(t, ok)
}

func TestHydrate_KnownEntriesSkipTheClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnd5e.NewMockClient(ctrl)
	catalog, err := rulebook.LoadSRD()
	require.NoError(t, err)

	result, err := dnd5e.Hydrate(context.Background(), client, catalog, dnd5e.HydrateInput{
		Class:  "Wizard",
		Race:   "High Elf",
		Spells: []string{"Fireball", "Shield"},
	})

	require.NoError(t, err)
	assert.Empty(t, result.Fetched)
	assert.Empty(t, result.Missing)
}

func TestHydrate_PropagatesFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockdnd5e.NewMockClient(ctrl)
	catalog := rulebook.NewCatalog()

	client.EXPECT().GetClass(gomock.Any(), "Wizard").
		Return(nil, engineerr.WrapWithCode(errors.New("timeout"), engineerr.CodeUnavailable, "failed to get class wizard"))

	_, err := dnd5e.Hydrate(context.Background(), client, catalog, dnd5e.HydrateInput{Class: "Wizard"})

	assert.Equal(t, engineerr.CodeUnavailable, engineerr.GetCode(err))
	assert.False(t, catalog.HasClass("wizard"))
}
