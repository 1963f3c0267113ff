package dnd5e

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

const maxConcurrentFetches = 4

// HydrateInput names the reference data one character needs
type HydrateInput struct {
	Class  string
	Race   string
	Spells []string
}

// HydrateResult reports what was fetched and which spells the API does not know
type HydrateResult struct {
	Fetched []string
	Missing []string
}

// Hydrate fetches the class, race and spells the catalog does not already
// hold and adds them to it. Entries already in the catalog are never
// fetched. Unknown spells are reported, not returned as errors.
func Hydrate(ctx context.Context, client Client, catalog *rulebook.Catalog, in HydrateInput) (*HydrateResult, error) {
	if client == nil || catalog == nil {
		return nil, engineerr.InvalidArgument("client and catalog are required")
	}

	var (
		mu     sync.Mutex
		result HydrateResult
	)
	record := func(fetched, missing string) {
		mu.Lock()
		defer mu.Unlock()
		if fetched != "" {
			result.Fetched = append(result.Fetched, fetched)
		}
		if missing != "" {
			result.Missing = append(result.Missing, missing)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	if in.Class != "" && !catalog.HasClass(in.Class) {
		g.Go(func() error {
			def, err := client.GetClass(gctx, in.Class)
			if engineerr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := catalog.AddClass(*def); err != nil {
				return engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to add remote class")
			}
			record("class:"+def.Key, "")
			return nil
		})
	}

	if in.Race != "" && !catalog.HasRace(in.Race) {
		g.Go(func() error {
			def, err := client.GetRace(gctx, in.Race)
			if engineerr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return err
			}
			if err := catalog.AddRace(*def); err != nil {
				return engineerr.WrapWithCode(err, engineerr.CodeInternal, "failed to add remote race")
			}
			record("race:"+def.Key, "")
			return nil
		})
	}

	seen := make(map[string]bool)
	for _, name := range in.Spells {
		key := rulebook.Key(name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if _, ok := catalog.Spell(key); ok {
			continue
		}

		g.Go(func() error {
			spell, err := client.GetSpell(gctx, key)
			if engineerr.IsNotFound(err) {
				record("", name)
				return nil
			}
			if err != nil {
				return err
			}
			catalog.AddSpell(*spell)
			record("spell:"+spell.Key, "")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &result, nil
}
