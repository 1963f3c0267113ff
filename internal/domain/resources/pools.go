package resources

import (
	"fmt"
	"strconv"
	"strings"
)

// PoolKind identifies which family of pool a key addresses
type PoolKind string

const (
	PoolKindSpellSlot PoolKind = "spell"
	PoolKindPact      PoolKind = "pact"
	PoolKindHitDie    PoolKind = "hitdie"
	PoolKindFeature   PoolKind = "feature"
)

// PoolKey addresses one pool: "spell:3", "pact", "hitdie:10" or "feature:rage".
// A bare feature key such as "rage" is accepted as well.
type PoolKey struct {
	Kind PoolKind
	// Level is the spell level for spell slots and the die size for hit dice
	Level   int
	Feature string
}

func (k PoolKey) String() string {
	switch k.Kind {
	case PoolKindSpellSlot, PoolKindHitDie:
		return fmt.Sprintf("%s:%d", k.Kind, k.Level)
	case PoolKindPact:
		return string(PoolKindPact)
	default:
		return string(PoolKindFeature) + ":" + k.Feature
	}
}

// SpellSlotKey returns the key of the spell slot pool for a level
func SpellSlotKey(level int) string {
	return PoolKey{Kind: PoolKindSpellSlot, Level: level}.String()
}

// HitDieKey returns the key of the hit dice pool for a die size
func HitDieKey(die int) string {
	return PoolKey{Kind: PoolKindHitDie, Level: die}.String()
}

// FeatureKey returns the key of a limited feature pool
func FeatureKey(feature string) string {
	return PoolKey{Kind: PoolKindFeature, Feature: feature}.String()
}

// ParsePoolKey parses a pool key. Hit dice accept "hitdie:d10" as well as "hitdie:10".
func ParsePoolKey(raw string) (PoolKey, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return PoolKey{}, false
	}
	if raw == string(PoolKindPact) {
		return PoolKey{Kind: PoolKindPact}, true
	}

	kind, rest, found := strings.Cut(raw, ":")
	if !found {
		return PoolKey{Kind: PoolKindFeature, Feature: raw}, true
	}

	switch PoolKind(kind) {
	case PoolKindSpellSlot:
		level, err := strconv.Atoi(rest)
		if err != nil || level < 1 || level > 9 {
			return PoolKey{}, false
		}
		return PoolKey{Kind: PoolKindSpellSlot, Level: level}, true
	case PoolKindHitDie:
		die, ok := ParseDie(rest)
		if !ok {
			return PoolKey{}, false
		}
		return PoolKey{Kind: PoolKindHitDie, Level: die}, true
	case PoolKindFeature:
		if rest == "" {
			return PoolKey{}, false
		}
		return PoolKey{Kind: PoolKindFeature, Feature: rest}, true
	}
	return PoolKey{}, false
}

// ParseDie parses "d10" or "10" into a die size
func ParseDie(raw string) (int, bool) {
	raw = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(raw)), "d")
	die, err := strconv.Atoi(raw)
	if err != nil || die < 2 {
		return 0, false
	}
	return die, true
}

// Lookup returns the counts of the addressed pool. Unlimited features report
// ok with an always-available pool of zero size.
func (s *State) Lookup(raw string) (pool Pool, unlimited, ok bool) {
	key, valid := ParsePoolKey(raw)
	if !valid {
		return Pool{}, false, false
	}

	switch key.Kind {
	case PoolKindSpellSlot:
		pool, ok = s.SpellSlots[key.Level]
		return pool, false, ok
	case PoolKindPact:
		if s.Pact == nil {
			return Pool{}, false, false
		}
		return s.Pact.Pool(), false, true
	case PoolKindHitDie:
		pool, ok = s.HitDice[key.Level]
		return pool, false, ok
	default:
		feature, found := s.Features[key.Feature]
		if !found {
			return Pool{}, false, false
		}
		return feature.Pool(), feature.Unlimited, true
	}
}

// Available reports whether the addressed pool has an unused charge.
// Unknown pools are unavailable.
func (s *State) Available(raw string) bool {
	pool, unlimited, ok := s.Lookup(raw)
	return ok && (unlimited || pool.Available())
}

// SpellSlotAvailable reports whether a spell of the given level can be cast
// with any standard slot of that level or higher, or with a pact slot
func (s *State) SpellSlotAvailable(level int) bool {
	for slotLevel, pool := range s.SpellSlots {
		if slotLevel >= level && pool.Available() {
			return true
		}
	}
	return s.Pact != nil && s.Pact.SlotLevel >= level && s.Pact.Used < s.Pact.Max
}

// adjust moves the used counter of the addressed pool by delta, clamped to
// [0, max]. Unknown pools and unlimited features are left untouched.
func (s *State) adjust(raw string, delta int) {
	key, ok := ParsePoolKey(raw)
	if !ok {
		return
	}

	switch key.Kind {
	case PoolKindSpellSlot:
		if pool, found := s.SpellSlots[key.Level]; found {
			s.SpellSlots[key.Level] = pool.use(delta)
		}
	case PoolKindPact:
		if s.Pact != nil {
			s.Pact.Used = clamp(s.Pact.Used+delta, 0, s.Pact.Max)
		}
	case PoolKindHitDie:
		if pool, found := s.HitDice[key.Level]; found {
			s.HitDice[key.Level] = pool.use(delta)
		}
	case PoolKindFeature:
		feature, found := s.Features[key.Feature]
		if !found || feature.Unlimited {
			return
		}
		feature.Used = clamp(feature.Used+delta, 0, feature.Max)
		s.Features[key.Feature] = feature
	}
}
