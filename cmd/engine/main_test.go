package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	"github.com/KirkDiggler/dnd-character-engine/internal/testutils"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	outputFormat = "json"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func writeJSON(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestProgressionCommand_YAML(t *testing.T) {
	out := execute(t, "progression", "--class", "wizard", "-o", "yaml")

	var table struct {
		HitDie int `yaml:"hit_die"`
		Levels []struct {
			Level      int   `yaml:"level"`
			SpellSlots []int `yaml:"spell_slots"`
		} `yaml:"levels"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &table))

	assert.Equal(t, 6, table.HitDie)
	require.Len(t, table.Levels, 20)
	assert.Equal(t, []int{4, 3, 2}, table.Levels[4].SpellSlots)
}

func TestInitThenApply(t *testing.T) {
	snapshotFile := writeJSON(t, testutils.CreateTestFighter("char-1", 5))

	var state resources.State
	require.NoError(t, json.Unmarshal([]byte(execute(t, "init", "-f", snapshotFile)), &state))
	assert.Equal(t, 44, state.MaxHP)

	stateFile := writeJSON(t, state)
	out := execute(t, "apply", "--state", stateFile, "--op", `{"type":"damage","amount":100}`)

	var next resources.State
	require.NoError(t, json.Unmarshal([]byte(out), &next))
	assert.Equal(t, 0, next.CurrentHP)
	assert.True(t, next.IsDead())
}

func TestTrimZeros(t *testing.T) {
	assert.Equal(t, []int{4, 2}, trimZeros([]int{4, 2, 0, 0}))
	assert.Empty(t, trimZeros([]int{0, 0}))
}
