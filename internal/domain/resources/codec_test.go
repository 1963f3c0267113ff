package resources_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

func TestDecodeOperation(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected resources.Operation
	}{
		{
			name:     "short rest",
			input:    `{"type":"short_rest","hit_dice":[{"die":10,"count":2}]}`,
			expected: resources.ShortRest{HitDice: []resources.HitDiceSpend{{Die: 10, Count: 2}}},
		},
		{
			name:     "short rest with named dice",
			input:    `{"type":"short_rest","hit_dice":[{"die":"d10","count":2},{"die":"8","count":1,"rolls":[5]}]}`,
			expected: resources.ShortRest{HitDice: []resources.HitDiceSpend{{Die: 10, Count: 2}, {Die: 8, Count: 1, Rolls: []int{5}}}},
		},
		{
			name:     "use resource",
			input:    `{"type":"use_resource","pool":"spell:2","amount":1}`,
			expected: resources.UseResource{Pool: "spell:2", Amount: 1},
		},
		{
			name:     "long rest ignores extra fields",
			input:    `{"type":"long_rest","note":"camp"}`,
			expected: resources.LongRest{},
		},
		{
			name:     "death saves",
			input:    `{"type":"update_death_saves","successes":1,"failures":2}`,
			expected: resources.UpdateDeathSaves{Successes: 1, Failures: 2},
		},
		{
			name:     "concentration",
			input:    `{"type":"set_concentration","spell":"Bless"}`,
			expected: resources.SetConcentration{Spell: "Bless"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			op, err := resources.DecodeOperation([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, op)
		})
	}
}

func TestDecodeOperation_ZeroAmountMovesOneUse(t *testing.T) {
	state := resources.Initialize(resources.InitializeInput{
		ID:     "incarnation-1",
		Class:  "Fighter",
		Level:  5,
		Scores: averageScores,
	})

	for _, input := range []string{
		`{"type":"use_resource","pool":"hitdie:d10","amount":0}`,
		`{"type":"use_resource","pool":"hitdie:d10"}`,
	} {
		op, err := resources.DecodeOperation([]byte(input))
		require.NoError(t, err)
		assert.Equal(t, 1, resources.Apply(state, op).HitDice[10].Used, input)
	}

	op, err := resources.DecodeOperation([]byte(`{"type":"use_resource","pool":"hitdie:d10","amount":-2}`))
	require.NoError(t, err)
	assert.Equal(t, 0, resources.Apply(state, op).HitDice[10].Used)
}

func TestDecodeOperation_Errors(t *testing.T) {
	for _, input := range []string{
		`{}`,
		`{"type":"teleport"}`,
		`not json`,
		`{"type":"damage","amount":"lots"}`,
		`{"type":"short_rest","hit_dice":[{"die":"dx","count":1}]}`,
		`{"type":"short_rest","hit_dice":[{"die":true,"count":1}]}`,
	} {
		_, err := resources.DecodeOperation([]byte(input))
		assert.True(t, engineerr.IsInvalidArgument(err), input)
	}
}

func TestEncodeOperation(t *testing.T) {
	data, err := resources.EncodeOperation(resources.Heal{Amount: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"heal","amount":7}`, string(data))

	data, err = resources.EncodeOperation(resources.LongRest{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"long_rest"}`, string(data))
}
