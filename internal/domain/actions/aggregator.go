package actions

import (
	"slices"
	"strings"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e/calculators"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// Aggregator builds the action list from reference data, derived stats and
// resource state. It never mutates the state.
type Aggregator struct {
	catalog    *rulebook.Catalog
	calculator *calculators.Calculator
}

// NewAggregator creates an aggregator over a loaded catalog. A nil catalog
// yields no class, subclass or racial features.
func NewAggregator(catalog *rulebook.Catalog) *Aggregator {
	if catalog == nil {
		catalog = rulebook.NewCatalog()
	}
	return &Aggregator{
		catalog:    catalog,
		calculator: calculators.NewCalculator(catalog),
	}
}

// Aggregate lists every action in order: standard actions, unarmed strike,
// weapon attacks, spells by level then name, class features, subclass
// features and racial traits. A nil state is treated as freshly initialized.
func (a *Aggregator) Aggregate(s *character.Snapshot, spells []*rulebook.Spell, state *resources.State) ([]Descriptor, error) {
	stats, err := a.calculator.Compute(s)
	if err != nil {
		return nil, err
	}
	return a.AggregateWithStats(s, stats, spells, state), nil
}

// AggregateWithStats is Aggregate for callers that already hold the derived
// stats of a validated snapshot
func (a *Aggregator) AggregateWithStats(s *character.Snapshot, stats *calculators.DerivedStats, spells []*rulebook.Spell, state *resources.State) []Descriptor {
	if state == nil {
		state = resources.Initialize(resources.InitializeInput{
			Class:    s.Class,
			Subclass: s.Subclass,
			Race:     s.Race,
			Level:    s.Level,
			MaxHP:    stats.MaxHP.Value,
			Scores:   s.AbilityScores.Final,
		})
	}

	out := standardDescriptors(stats.Melee.Attack.Value)
	out = append(out, weaponDescriptor(stats.UnarmedStrike, SourceStandard))
	for _, w := range stats.Weapons {
		out = append(out, weaponDescriptor(w, SourceWeapon))
	}
	out = append(out, spellDescriptors(s, stats, spells, state)...)

	ctx := features.Context{
		Class:            s.Class,
		Subclass:         s.Subclass,
		Race:             s.Race,
		Level:            s.Level,
		ProficiencyBonus: stats.ProficiencyBonus,
		Modifiers:        stats.AbilityModifiers,
	}

	class := a.catalog.Class(s.Class)
	for _, f := range rulebook.FeaturesAt(class.Features, s.Level) {
		out = append(out, featureDescriptor(f, SourceClass, class.Name, ctx, state))
	}
	if s.Subclass != "" {
		subclass := a.catalog.Subclass(s.Subclass)
		for _, f := range rulebook.FeaturesAt(subclass.Features, s.Level) {
			out = append(out, featureDescriptor(f, SourceSubclass, subclass.Name, ctx, state))
		}
	}
	if s.Race != "" {
		race := a.catalog.Race(s.Race)
		for _, f := range rulebook.FeaturesAt(race.Traits, s.Level) {
			out = append(out, featureDescriptor(f, SourceRace, race.Name, ctx, state))
		}
	}

	return out
}

func weaponDescriptor(w calculators.WeaponAttack, source Source) Descriptor {
	description := "Melee weapon attack"
	if w.Range == calculators.RangeRanged {
		description = "Ranged weapon attack"
	}
	if len(w.Properties) > 0 {
		description += " (" + strings.Join(w.Properties, ", ") + ")"
	}

	return Descriptor{
		Key:         string(source) + ":" + w.Key,
		Name:        w.Name,
		Description: description,
		Timing:      shared.TimingAction,
		Source:      source,
		Origin:      w.Name,
		AttackBonus: intPtr(w.Attack.Value),
		Damage:      w.Damage,
		DamageType:  w.DamageType,
		Available:   true,
	}
}

func spellDescriptors(s *character.Snapshot, stats *calculators.DerivedStats, spells []*rulebook.Spell, state *resources.State) []Descriptor {
	sorted := slices.DeleteFunc(slices.Clone(spells), func(sp *rulebook.Spell) bool { return sp == nil })
	slices.SortStableFunc(sorted, func(a, b *rulebook.Spell) int {
		if a.Level != b.Level {
			return a.Level - b.Level
		}
		return strings.Compare(a.Name, b.Name)
	})

	slotLevels := castableSlotLevels(state)

	out := make([]Descriptor, 0, len(sorted))
	for _, sp := range sorted {
		d := Descriptor{
			Key:           string(SourceSpell) + ":" + sp.Key,
			Name:          sp.Name,
			Description:   sp.Description,
			Timing:        sp.Timing(),
			Source:        SourceSpell,
			Origin:        sp.School,
			Level:         sp.Level,
			DamageType:    sp.DamageType,
			Concentration: sp.RequiresConcentration(),
			Ritual:        sp.Ritual,
		}

		if stats.Spellcasting != nil {
			if sp.AttackType != "" {
				d.AttackBonus = intPtr(stats.Spellcasting.Attack.Value)
			}
			if sp.SaveAbility != shared.AttributeNone {
				d.SaveDC = intPtr(stats.Spellcasting.SaveDC.Value)
			}
		}
		d.SaveAbility = sp.SaveAbility

		if sp.IsCantrip() {
			d.Damage = sp.CantripDamage(s.Level)
			d.Available = true
			out = append(out, d)
			continue
		}

		d.Limited = true
		d.ResourceKey = resources.SpellSlotKey(sp.Level)
		d.Available = state.SpellSlotAvailable(sp.Level)

		castAt, higher := sp.Level, []int(nil)
		if usable := slices.DeleteFunc(slices.Clone(slotLevels), func(l int) bool { return l < sp.Level }); len(usable) > 0 {
			castAt, higher = usable[0], usable[1:]
		}
		d.Damage = sp.DamageAt(castAt)
		d.Healing = sp.HealingAt(castAt)

		for _, level := range higher {
			amount := sp.DamageAt(level)
			if amount == "" {
				amount = sp.HealingAt(level)
			}
			if amount == "" {
				continue
			}
			if d.UpCast == nil {
				d.UpCast = make(map[int]string)
			}
			d.UpCast[level] = amount
		}
		out = append(out, d)
	}
	return out
}

// castableSlotLevels lists, ascending, every slot level the character has at
// least one free slot of, pact slots included
func castableSlotLevels(state *resources.State) []int {
	var levels []int
	for level, pool := range state.SpellSlots {
		if pool.Available() {
			levels = append(levels, level)
		}
	}
	if state.Pact != nil && state.Pact.Used < state.Pact.Max && !slices.Contains(levels, state.Pact.SlotLevel) {
		levels = append(levels, state.Pact.SlotLevel)
	}
	slices.Sort(levels)
	return levels
}

// scaleToSlots keeps the scaling entries the character has free slots for.
// The lowest becomes the base amount, the rest are listed as up-casts.
func scaleToSlots(base string, scaling map[int]string, state *resources.State) (string, map[int]string) {
	var upCast map[int]string
	for _, level := range castableSlotLevels(state) {
		amount, ok := scaling[level]
		if !ok {
			continue
		}
		if upCast == nil {
			base, upCast = amount, make(map[int]string)
			continue
		}
		upCast[level] = amount
	}
	if len(upCast) == 0 {
		upCast = nil
	}
	return base, upCast
}

func featureDescriptor(f rulebook.FeatureDefinition, source Source, origin string, ctx features.Context, state *resources.State) Descriptor {
	d := Descriptor{
		Key:         string(source) + ":" + f.Key,
		Name:        f.Name,
		Description: f.Description,
		Timing:      shared.TimingSpecial,
		Source:      source,
		Origin:      origin,
		Level:       f.Level,
		Mechanic:    f.Mechanic,
		Available:   true,
	}

	m, ok := features.Compute(f.Mechanic, ctx)
	if !ok {
		return d
	}

	d.Timing = m.Timing
	d.Damage = m.Damage
	d.DamageType = m.DamageType
	d.Healing = m.Healing
	d.SaveAbility = m.SaveAbility
	d.Summary = m.Summary
	if m.SaveDC > 0 {
		d.SaveDC = intPtr(m.SaveDC)
	}
	if len(m.Scaling) > 0 {
		d.Damage, d.UpCast = scaleToSlots(m.Damage, m.Scaling, state)
	}

	if m.ResourceKey != "" {
		d.ResourceKey = m.ResourceKey
		d.Limited = true
		d.Available = resourceAvailable(state, m.ResourceKey)
	}
	return d
}

// resourceAvailable treats a spell-slot key as "this level or higher"
func resourceAvailable(state *resources.State, key string) bool {
	if parsed, ok := resources.ParsePoolKey(key); ok && parsed.Kind == resources.PoolKindSpellSlot {
		return state.SpellSlotAvailable(parsed.Level)
	}
	return state.Available(key)
}
