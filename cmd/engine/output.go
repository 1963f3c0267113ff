package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
)

// readJSON decodes a file, or stdin when path is "-"
func readJSON(path string, v any) error {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func readSnapshot(path string) (*character.Snapshot, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot file is required")
	}
	snap := &character.Snapshot{}
	if err := readJSON(path, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func readState(path string) (*resources.State, error) {
	state := &resources.State{}
	if err := readJSON(path, state); err != nil {
		return nil, err
	}
	state.Normalize()
	return state, nil
}

// printOutput writes v to w in the selected output format
func printOutput(w io.Writer, v any) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		// round-trip through JSON so field names follow the json tags
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		var generic any
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(generic)
	default:
		return fmt.Errorf("unknown output format %q (use json or yaml)", outputFormat)
	}
}
