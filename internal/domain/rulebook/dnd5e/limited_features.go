package rulebook

import (
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// Limited feature pool keys
const (
	PoolRage                = "rage"
	PoolBardicInspiration   = "bardic-inspiration"
	PoolChannelDivinity     = "channel-divinity"
	PoolWildShape           = "wild-shape"
	PoolSecondWind          = "second-wind"
	PoolActionSurge         = "action-surge"
	PoolIndomitable         = "indomitable"
	PoolKi                  = "ki"
	PoolLayOnHands          = "lay-on-hands"
	PoolDivineSense         = "divine-sense"
	PoolSorceryPoints       = "sorcery-points"
	PoolArcaneRecovery      = "arcane-recovery"
	PoolSuperiorityDice     = "superiority-dice"
	PoolStrokeOfLuck        = "stroke-of-luck"
	PoolBreathWeapon        = "breath-weapon"
	PoolRelentlessEndurance = "relentless-endurance"
	PoolFeyStep             = "fey-step"
	PoolHellishRebuke       = "hellish-rebuke"
	PoolStonesEndurance     = "stones-endurance"
)

// LimitedFeature sizes one per-rest pool for a character
type LimitedFeature struct {
	Key       string          `json:"key"`
	Name      string          `json:"name"`
	Max       int             `json:"max"`
	Recharge  shared.RestType `json:"recharge"`
	Unlimited bool            `json:"unlimited,omitempty"`
}

// LimitedFeatureInput describes the character a pool set is built for
type LimitedFeatureInput struct {
	Class    string
	Subclass string
	Race     string
	Level    int
	// Modifiers holds the final ability modifiers
	Modifiers map[shared.Attribute]int
}

// LimitedFeatures returns every per-rest pool the class, subclass and race grant at level.
// Unknown names contribute nothing.
func LimitedFeatures(in LimitedFeatureInput) []LimitedFeature {
	level := ClampLevel(in.Level)
	mod := func(a shared.Attribute) int { return in.Modifiers[a] }

	var out []LimitedFeature
	add := func(key, name string, maxUses int, recharge shared.RestType) {
		if maxUses > 0 {
			out = append(out, LimitedFeature{Key: key, Name: name, Max: maxUses, Recharge: recharge})
		}
	}

	switch Key(in.Class) {
	case "barbarian":
		if level == MaxLevel {
			out = append(out, LimitedFeature{Key: PoolRage, Name: "Rage", Recharge: shared.RestTypeLong, Unlimited: true})
		} else {
			add(PoolRage, "Rage", RageUses(level), shared.RestTypeLong)
		}
	case "bard":
		recharge := shared.RestTypeLong
		if level >= 5 {
			// Font of Inspiration
			recharge = shared.RestTypeShort
		}
		add(PoolBardicInspiration, "Bardic Inspiration", max(1, mod(shared.AttributeCharisma)), recharge)
	case "cleric":
		add(PoolChannelDivinity, "Channel Divinity", clericChannelDivinity(level), shared.RestTypeShort)
	case "druid":
		if level >= 2 {
			add(PoolWildShape, "Wild Shape", 2, shared.RestTypeShort)
		}
	case "fighter":
		add(PoolSecondWind, "Second Wind", 1, shared.RestTypeShort)
		add(PoolActionSurge, "Action Surge", fighterActionSurges(level), shared.RestTypeShort)
		add(PoolIndomitable, "Indomitable", fighterIndomitable(level), shared.RestTypeLong)
	case "monk":
		if level >= 2 {
			add(PoolKi, "Ki", level, shared.RestTypeShort)
		}
	case "paladin":
		add(PoolLayOnHands, "Lay on Hands", 5*level, shared.RestTypeLong)
		add(PoolDivineSense, "Divine Sense", max(1, 1+mod(shared.AttributeCharisma)), shared.RestTypeLong)
		if level >= 3 {
			add(PoolChannelDivinity, "Channel Divinity", 1, shared.RestTypeShort)
		}
	case "rogue":
		if level == MaxLevel {
			add(PoolStrokeOfLuck, "Stroke of Luck", 1, shared.RestTypeShort)
		}
	case "sorcerer":
		if level >= 2 {
			add(PoolSorceryPoints, "Sorcery Points", level, shared.RestTypeLong)
		}
	case "wizard":
		add(PoolArcaneRecovery, "Arcane Recovery", 1, shared.RestTypeLong)
	}

	switch Key(in.Subclass) {
	case "battle-master":
		add(PoolSuperiorityDice, "Superiority Dice", battleMasterDice(level), shared.RestTypeShort)
	}

	switch Key(in.Race) {
	case "dragonborn":
		add(PoolBreathWeapon, "Breath Weapon", 1, shared.RestTypeShort)
	case "half-orc":
		add(PoolRelentlessEndurance, "Relentless Endurance", 1, shared.RestTypeLong)
	case "eladrin":
		add(PoolFeyStep, "Fey Step", 1, shared.RestTypeShort)
	case "tiefling":
		if level >= 3 {
			add(PoolHellishRebuke, "Hellish Rebuke", 1, shared.RestTypeLong)
		}
	case "goliath":
		add(PoolStonesEndurance, "Stone's Endurance", 1, shared.RestTypeShort)
	}

	return out
}

// RageUses returns rages per long rest below 20th level
func RageUses(level int) int {
	switch {
	case level >= 17:
		return 6
	case level >= 12:
		return 5
	case level >= 6:
		return 4
	case level >= 3:
		return 3
	default:
		return 2
	}
}

// RageDamageBonus returns the melee damage bonus while raging
func RageDamageBonus(level int) int {
	switch {
	case level >= 16:
		return 4
	case level >= 9:
		return 3
	default:
		return 2
	}
}

func clericChannelDivinity(level int) int {
	switch {
	case level >= 18:
		return 3
	case level >= 6:
		return 2
	case level >= 2:
		return 1
	default:
		return 0
	}
}

func fighterActionSurges(level int) int {
	switch {
	case level >= 17:
		return 2
	case level >= 2:
		return 1
	default:
		return 0
	}
}

func fighterIndomitable(level int) int {
	switch {
	case level >= 17:
		return 3
	case level >= 13:
		return 2
	case level >= 9:
		return 1
	default:
		return 0
	}
}

func battleMasterDice(level int) int {
	switch {
	case level >= 15:
		return 6
	case level >= 7:
		return 5
	case level >= 3:
		return 4
	default:
		return 0
	}
}
