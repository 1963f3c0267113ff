//go:build integration

package dnd5e_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-character-engine/internal/clients/dnd5e"
)

func TestClient_GetSpell_Integration(t *testing.T) {
	// This test requires network access to the D&D 5e API
	client, err := dnd5e.New(&dnd5e.Config{})
	require.NoError(t, err)

	spell, err := client.GetSpell(context.Background(), "fireball")
	require.NoError(t, err)

	assert.Equal(t, 3, spell.Level)
	assert.Equal(t, "8d6", spell.DamageAt(3))
	assert.Equal(t, "fire", spell.DamageType)
}

func TestClient_ListSpells_Integration(t *testing.T) {
	client, err := dnd5e.New(&dnd5e.Config{})
	require.NoError(t, err)

	level := 0
	keys, err := client.ListSpells(context.Background(), "wizard", &level)
	require.NoError(t, err)
	assert.Contains(t, keys, "fire-bolt")
}
