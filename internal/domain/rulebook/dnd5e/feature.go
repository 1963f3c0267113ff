package rulebook

// FeatureType identifies where a feature comes from
type FeatureType string

const (
	FeatureTypeClass    FeatureType = "class"
	FeatureTypeSubclass FeatureType = "subclass"
	FeatureTypeRacial   FeatureType = "racial"
)

// Mechanic is the enumerated mechanical template a feature maps to.
// It is assigned when reference data is loaded; MechanicNone means the
// feature is descriptive only.
type Mechanic string

const (
	MechanicNone                Mechanic = ""
	MechanicSecondWind          Mechanic = "second-wind"
	MechanicRage                Mechanic = "rage"
	MechanicChannelDivinity     Mechanic = "channel-divinity"
	MechanicSneakAttack         Mechanic = "sneak-attack"
	MechanicMartialArts         Mechanic = "martial-arts"
	MechanicFlurryOfBlows       Mechanic = "flurry-of-blows"
	MechanicDivineSmite         Mechanic = "divine-smite"
	MechanicLayOnHands          Mechanic = "lay-on-hands"
	MechanicBardicInspiration   Mechanic = "bardic-inspiration"
	MechanicActionSurge         Mechanic = "action-surge"
	MechanicWildShape           Mechanic = "wild-shape"
	MechanicDivineSense         Mechanic = "divine-sense"
	MechanicCunningAction       Mechanic = "cunning-action"
	MechanicArcaneRecovery      Mechanic = "arcane-recovery"
	MechanicIndomitable         Mechanic = "indomitable"
	MechanicUncannyDodge        Mechanic = "uncanny-dodge"
	MechanicCombatSuperiority   Mechanic = "combat-superiority"
	MechanicBreathWeapon        Mechanic = "breath-weapon"
	MechanicFeyStep             Mechanic = "fey-step"
	MechanicRelentlessEndurance Mechanic = "relentless-endurance"
	MechanicHellishRebuke       Mechanic = "hellish-rebuke"
	MechanicStonesEndurance     Mechanic = "stones-endurance"
)

// Names (as keys) that map onto a mechanic when the data does not tag one explicitly
var mechanicNames = map[string]Mechanic{
	"second-wind":          MechanicSecondWind,
	"rage":                 MechanicRage,
	"channel-divinity":     MechanicChannelDivinity,
	"turn-undead":          MechanicChannelDivinity,
	"sneak-attack":         MechanicSneakAttack,
	"martial-arts":         MechanicMartialArts,
	"flurry-of-blows":      MechanicFlurryOfBlows,
	"ki":                   MechanicFlurryOfBlows,
	"divine-smite":         MechanicDivineSmite,
	"lay-on-hands":         MechanicLayOnHands,
	"bardic-inspiration":   MechanicBardicInspiration,
	"action-surge":         MechanicActionSurge,
	"wild-shape":           MechanicWildShape,
	"divine-sense":         MechanicDivineSense,
	"cunning-action":       MechanicCunningAction,
	"arcane-recovery":      MechanicArcaneRecovery,
	"indomitable":          MechanicIndomitable,
	"uncanny-dodge":        MechanicUncannyDodge,
	"combat-superiority":   MechanicCombatSuperiority,
	"breath-weapon":        MechanicBreathWeapon,
	"fey-step":             MechanicFeyStep,
	"relentless-endurance": MechanicRelentlessEndurance,
	"hellish-rebuke":       MechanicHellishRebuke,
	"infernal-legacy":      MechanicHellishRebuke,
	"stones-endurance":     MechanicStonesEndurance,
}

// MechanicForName resolves a feature name to its mechanic. Only loaders call
// this; query paths read FeatureDefinition.Mechanic.
func MechanicForName(name string) Mechanic {
	return mechanicNames[Key(name)]
}

// ParseMechanic validates an explicit mechanic tag
func ParseMechanic(tag string) (Mechanic, bool) {
	if tag == "" {
		return MechanicNone, true
	}
	for _, m := range mechanicNames {
		if string(m) == tag {
			return m, true
		}
	}
	return MechanicNone, false
}

// FeatureDefinition is a leveled class, subclass or racial feature
type FeatureDefinition struct {
	Key         string      `json:"key" yaml:"key"`
	Name        string      `json:"name" yaml:"name"`
	Level       int         `json:"level" yaml:"level"`
	Description string      `json:"description" yaml:"description"`
	Type        FeatureType `json:"type" yaml:"-"`
	Source      string      `json:"source" yaml:"-"`
	Mechanic    Mechanic    `json:"mechanic,omitempty" yaml:"mechanic"`
}

// ClassDefinition is the reference data for a class
type ClassDefinition struct {
	Key      string              `json:"key" yaml:"key"`
	Name     string              `json:"name" yaml:"name"`
	HitDie   int                 `json:"hit_die" yaml:"hit_die"`
	Features []FeatureDefinition `json:"features" yaml:"features"`
}

// SubclassDefinition is the reference data for a subclass
type SubclassDefinition struct {
	Key      string              `json:"key" yaml:"key"`
	Name     string              `json:"name" yaml:"name"`
	Class    string              `json:"class" yaml:"class"`
	Features []FeatureDefinition `json:"features" yaml:"features"`
}

// FeaturesAt returns the features gained at or below level, ordered by level then name
func FeaturesAt(features []FeatureDefinition, level int) []FeatureDefinition {
	out := make([]FeatureDefinition, 0, len(features))
	for _, f := range features {
		if f.Level <= level {
			out = append(out, f)
		}
	}
	sortFeatures(out)
	return out
}
