package rulebook

import (
	"sort"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// CasterType selects the spell-slot progression a class uses
type CasterType string

const (
	CasterNone  CasterType = "none"
	CasterFull  CasterType = "full"
	CasterHalf  CasterType = "half"
	CasterThird CasterType = "third"
	CasterPact  CasterType = "pact"
)

// DefaultHitDie is used for classes the tables do not list
const DefaultHitDie = 8

// ClassProgression is the static progression data for one class
type ClassProgression struct {
	Key                 string             `json:"key"`
	HitDie              int                `json:"hit_die"`
	ASILevels           []int              `json:"asi_levels"`
	CasterType          CasterType         `json:"caster_type"`
	SpellcastingAbility shared.Attribute   `json:"spellcasting_ability,omitempty"`
	RankedAbilities     []shared.Attribute `json:"ranked_abilities"`
	SavingThrows        []shared.Attribute `json:"saving_throws"`
	WeaponProficiencies []string           `json:"weapon_proficiencies"`
	// Known is false when the class name was not recognized and defaults were returned
	Known bool `json:"known"`
}

type classSpec struct {
	hitDie       int
	casterType   CasterType
	spellAbility shared.Attribute
	ranked       []shared.Attribute
	saves        []shared.Attribute
	weapons      []string
	extraASI     []int
}

const (
	str = shared.AttributeStrength
	dex = shared.AttributeDexterity
	con = shared.AttributeConstitution
	itl = shared.AttributeIntelligence
	wis = shared.AttributeWisdom
	cha = shared.AttributeCharisma
)

var (
	simpleAndMartial = []string{"simple", "martial"}
	finesseKit       = []string{"simple", "hand-crossbow", "longsword", "rapier", "shortsword"}
	arcaneKit        = []string{"dagger", "dart", "sling", "quarterstaff", "light-crossbow"}
)

var classSpecs = map[string]classSpec{
	"barbarian": {hitDie: 12, casterType: CasterNone, ranked: []shared.Attribute{str, con, dex, wis, cha, itl}, saves: []shared.Attribute{str, con}, weapons: simpleAndMartial},
	"bard":      {hitDie: 8, casterType: CasterFull, spellAbility: cha, ranked: []shared.Attribute{cha, dex, con, wis, itl, str}, saves: []shared.Attribute{dex, cha}, weapons: finesseKit},
	"cleric":    {hitDie: 8, casterType: CasterFull, spellAbility: wis, ranked: []shared.Attribute{wis, con, str, dex, cha, itl}, saves: []shared.Attribute{wis, cha}, weapons: []string{"simple"}},
	"druid": {hitDie: 8, casterType: CasterFull, spellAbility: wis, ranked: []shared.Attribute{wis, con, dex, itl, cha, str}, saves: []shared.Attribute{itl, wis},
		weapons: []string{"club", "dagger", "dart", "javelin", "mace", "quarterstaff", "scimitar", "sickle", "sling", "spear"}},
	"fighter":  {hitDie: 10, casterType: CasterNone, ranked: []shared.Attribute{str, con, dex, wis, itl, cha}, saves: []shared.Attribute{str, con}, weapons: simpleAndMartial, extraASI: []int{6, 14}},
	"monk":     {hitDie: 8, casterType: CasterNone, ranked: []shared.Attribute{dex, wis, con, str, itl, cha}, saves: []shared.Attribute{str, dex}, weapons: []string{"simple", "shortsword"}},
	"paladin":  {hitDie: 10, casterType: CasterHalf, spellAbility: cha, ranked: []shared.Attribute{str, cha, con, wis, dex, itl}, saves: []shared.Attribute{wis, cha}, weapons: simpleAndMartial},
	"ranger":   {hitDie: 10, casterType: CasterHalf, spellAbility: wis, ranked: []shared.Attribute{dex, wis, con, str, itl, cha}, saves: []shared.Attribute{str, dex}, weapons: simpleAndMartial},
	"rogue":    {hitDie: 8, casterType: CasterNone, ranked: []shared.Attribute{dex, con, itl, wis, cha, str}, saves: []shared.Attribute{dex, itl}, weapons: finesseKit, extraASI: []int{10}},
	"sorcerer": {hitDie: 6, casterType: CasterFull, spellAbility: cha, ranked: []shared.Attribute{cha, con, dex, wis, itl, str}, saves: []shared.Attribute{con, cha}, weapons: arcaneKit},
	"warlock":  {hitDie: 8, casterType: CasterPact, spellAbility: cha, ranked: []shared.Attribute{cha, con, dex, wis, itl, str}, saves: []shared.Attribute{wis, cha}, weapons: []string{"simple"}},
	"wizard":   {hitDie: 6, casterType: CasterFull, spellAbility: itl, ranked: []shared.Attribute{itl, con, dex, wis, cha, str}, saves: []shared.Attribute{itl, wis}, weapons: arcaneKit},
}

// Subclasses that turn a non-caster into a third caster
var thirdCasterSubclasses = map[string]string{
	"eldritch-knight":  "fighter",
	"arcane-trickster": "rogue",
}

var defaultASILevels = []int{4, 8, 12, 16, 19}

// GetClassProgression returns the progression for a class name.
// Unknown classes get a d8 hit die, no spellcasting and the default ASI levels.
func GetClassProgression(className string) ClassProgression {
	key := Key(className)
	spec, ok := classSpecs[key]
	if !ok {
		return ClassProgression{
			Key:             key,
			HitDie:          DefaultHitDie,
			ASILevels:       append([]int(nil), defaultASILevels...),
			CasterType:      CasterNone,
			RankedAbilities: append([]shared.Attribute(nil), shared.Attributes...),
		}
	}

	return ClassProgression{
		Key:                 key,
		HitDie:              spec.hitDie,
		ASILevels:           mergeLevels(defaultASILevels, spec.extraASI),
		CasterType:          spec.casterType,
		SpellcastingAbility: spec.spellAbility,
		RankedAbilities:     append([]shared.Attribute(nil), spec.ranked...),
		SavingThrows:        append([]shared.Attribute(nil), spec.saves...),
		WeaponProficiencies: append([]string(nil), spec.weapons...),
		Known:               true,
	}
}

// HitDie returns the hit die size for a class, 8 when unknown
func HitDie(className string) int {
	if spec, ok := classSpecs[Key(className)]; ok {
		return spec.hitDie
	}
	return DefaultHitDie
}

// ASILevels returns the levels at which the class gains an Ability Score Improvement
func ASILevels(className string) []int {
	return GetClassProgression(className).ASILevels
}

// CasterTypeFor resolves the caster type of a class and subclass pair
func CasterTypeFor(className, subclassName string) CasterType {
	classKey := Key(className)
	if base, ok := thirdCasterSubclasses[Key(subclassName)]; ok && base == classKey {
		return CasterThird
	}
	if spec, ok := classSpecs[classKey]; ok {
		return spec.casterType
	}
	return CasterNone
}

// SpellcastingAbility returns the casting ability, or AttributeNone for non-casters
func SpellcastingAbility(className, subclassName string) shared.Attribute {
	switch CasterTypeFor(className, subclassName) {
	case CasterNone:
		return shared.AttributeNone
	case CasterThird:
		return shared.AttributeIntelligence
	}
	return classSpecs[Key(className)].spellAbility
}

// HasSavingThrowProficiency reports whether the class grants proficiency in the save
func HasSavingThrowProficiency(className string, attr shared.Attribute) bool {
	for _, a := range classSpecs[Key(className)].saves {
		if a == attr {
			return true
		}
	}
	return false
}

func mergeLevels(base, extra []int) []int {
	seen := make(map[int]bool, len(base)+len(extra))
	out := make([]int, 0, len(base)+len(extra))
	for _, l := range append(append([]int(nil), base...), extra...) {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Ints(out)
	return out
}
