// Package features computes the numbers behind recognized class, subclass and
// racial features. Each rulebook.Mechanic tag maps to one template.
package features

import (
	"fmt"

	"github.com/KirkDiggler/dnd-character-engine/internal/dice"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

// Context is the character data a template computes from
type Context struct {
	Class            string
	Subclass         string
	Race             string
	Level            int
	ProficiencyBonus int
	Modifiers        map[shared.Attribute]int
}

func (c Context) mod(attr shared.Attribute) int {
	return c.Modifiers[attr]
}

// SaveDC returns 8 + proficiency + the ability modifier
func (c Context) SaveDC(attr shared.Attribute) int {
	return 8 + c.ProficiencyBonus + c.mod(attr)
}

// Mechanics is the computed result of a template
type Mechanics struct {
	Timing      shared.ActionTiming
	Damage      string
	DamageType  string
	Healing     string
	SaveDC      int
	SaveAbility shared.Attribute
	// ResourceKey links the action to a resource pool; empty means always available
	ResourceKey string
	// Scaling lists the damage or healing per slot level. Callers narrow it to
	// the slots a character can still spend.
	Scaling map[int]string
	Summary string
}

// Template computes mechanics for one feature
type Template func(ctx Context) Mechanics

var templates = map[rulebook.Mechanic]Template{
	rulebook.MechanicSecondWind:          secondWind,
	rulebook.MechanicRage:                rage,
	rulebook.MechanicChannelDivinity:     channelDivinity,
	rulebook.MechanicSneakAttack:         sneakAttack,
	rulebook.MechanicMartialArts:         martialArts,
	rulebook.MechanicFlurryOfBlows:       flurryOfBlows,
	rulebook.MechanicDivineSmite:         divineSmite,
	rulebook.MechanicLayOnHands:          layOnHands,
	rulebook.MechanicBardicInspiration:   bardicInspiration,
	rulebook.MechanicActionSurge:         actionSurge,
	rulebook.MechanicWildShape:           wildShape,
	rulebook.MechanicDivineSense:         divineSense,
	rulebook.MechanicCunningAction:       cunningAction,
	rulebook.MechanicArcaneRecovery:      arcaneRecovery,
	rulebook.MechanicIndomitable:         indomitable,
	rulebook.MechanicUncannyDodge:        uncannyDodge,
	rulebook.MechanicCombatSuperiority:   combatSuperiority,
	rulebook.MechanicBreathWeapon:        breathWeapon,
	rulebook.MechanicFeyStep:             feyStep,
	rulebook.MechanicRelentlessEndurance: relentlessEndurance,
	rulebook.MechanicHellishRebuke:       hellishRebuke,
	rulebook.MechanicStonesEndurance:     stonesEndurance,
}

// Compute runs the template for m. The boolean is false for MechanicNone and
// for tags without a template.
func Compute(m rulebook.Mechanic, ctx Context) (Mechanics, bool) {
	tmpl, ok := templates[m]
	if !ok {
		return Mechanics{}, false
	}
	ctx.Level = rulebook.ClampLevel(ctx.Level)
	if ctx.ProficiencyBonus == 0 {
		ctx.ProficiencyBonus = rulebook.ProficiencyBonus(ctx.Level)
	}
	return tmpl(ctx), true
}

// dieForLevel picks the die size of the highest threshold reached
func dieForLevel(level int, steps [][2]int) int {
	size := 0
	for _, s := range steps {
		if level >= s[0] {
			size = s[1]
		}
	}
	return size
}

// MartialArtsDie returns the monk's unarmed die size: d4, d6 at 5, d8 at 11, d10 at 17
func MartialArtsDie(level int) int {
	return dieForLevel(level, [][2]int{{1, 4}, {5, 6}, {11, 8}, {17, 10}})
}

// BardicInspirationDie returns d6, d8 at 5, d10 at 10, d12 at 15
func BardicInspirationDie(level int) int {
	return dieForLevel(level, [][2]int{{1, 6}, {5, 8}, {10, 10}, {15, 12}})
}

// SuperiorityDie returns d8, d10 at 10, d12 at 18
func SuperiorityDie(level int) int {
	return dieForLevel(level, [][2]int{{1, 8}, {10, 10}, {18, 12}})
}

// DivineSmiteDice returns the d8 count for a smite with a slot of slotLevel:
// 2 at 1st, one more per level above, at most 5
func DivineSmiteDice(slotLevel int) int {
	if slotLevel < 1 {
		slotLevel = 1
	}
	return min(2+slotLevel-1, 5)
}

// BreathWeaponDice returns the d6 count: 2, 3 at 6, 4 at 11, 5 at 16
func BreathWeaponDice(level int) int {
	switch {
	case level >= 16:
		return 5
	case level >= 11:
		return 4
	case level >= 6:
		return 3
	default:
		return 2
	}
}

func secondWind(ctx Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingBonusAction,
		Healing:     dice.NewFormula(1, 10, ctx.Level).String(),
		ResourceKey: rulebook.PoolSecondWind,
		Summary:     "Regain hit points",
	}
}

func channelDivinity(ctx Context) Mechanics {
	ability := rulebook.SpellcastingAbility(ctx.Class, ctx.Subclass)
	if ability == shared.AttributeNone {
		ability = shared.AttributeWisdom
	}
	m := Mechanics{
		Timing:      shared.TimingAction,
		SaveAbility: shared.AttributeWisdom,
		SaveDC:      ctx.SaveDC(ability),
		ResourceKey: rulebook.PoolChannelDivinity,
		Summary:     "Turn Undead: undead that fail the save are turned for 1 minute",
	}
	if rulebook.Key(ctx.Subclass) == "life" {
		m.Healing = fmt.Sprintf("%d", 5*ctx.Level)
		m.Summary += "; Preserve Life restores hit points split among creatures within 30 feet"
	}
	return m
}

func martialArts(ctx Context) Mechanics {
	ability := max(ctx.mod(shared.AttributeStrength), ctx.mod(shared.AttributeDexterity))
	return Mechanics{
		Timing:  shared.TimingBonusAction,
		Damage:  dice.NewFormula(1, MartialArtsDie(ctx.Level), ability).String(),
		Summary: "Unarmed strike as a bonus action after attacking with a monk weapon or unarmed strike",
	}
}

func flurryOfBlows(ctx Context) Mechanics {
	ability := max(ctx.mod(shared.AttributeStrength), ctx.mod(shared.AttributeDexterity))
	return Mechanics{
		Timing:      shared.TimingBonusAction,
		Damage:      dice.NewFormula(1, MartialArtsDie(ctx.Level), ability).String(),
		ResourceKey: rulebook.PoolKi,
		Summary:     "Spend 1 ki point for two unarmed strikes",
	}
}

func divineSmite(ctx Context) Mechanics {
	scaling := make(map[int]string, 5)
	for slot := 1; slot <= 5; slot++ {
		scaling[slot] = dice.NewFormula(DivineSmiteDice(slot), 8, 0).String()
	}
	return Mechanics{
		Timing:      shared.TimingSpecial,
		Damage:      scaling[1],
		DamageType:  "radiant",
		ResourceKey: SpellSlotKey(1),
		Scaling:     scaling,
		Summary:     "Expend a spell slot on a melee hit; +1d8 against undead and fiends",
	}
}

func layOnHands(ctx Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingAction,
		Healing:     fmt.Sprintf("%d", 5*ctx.Level),
		ResourceKey: rulebook.PoolLayOnHands,
		Summary:     "Restore hit points from the pool, or spend 5 to cure a disease or poison",
	}
}

func bardicInspiration(ctx Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingBonusAction,
		ResourceKey: rulebook.PoolBardicInspiration,
		Summary:     fmt.Sprintf("Grant a d%d inspiration die", BardicInspirationDie(ctx.Level)),
	}
}

func actionSurge(Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingFree,
		ResourceKey: rulebook.PoolActionSurge,
		Summary:     "Take one additional action",
	}
}

func wildShape(ctx Context) Mechanics {
	cr := "1/4"
	switch {
	case rulebook.Key(ctx.Subclass) == "moon" && ctx.Level >= 6:
		cr = fmt.Sprintf("%d", ctx.Level/3)
	case rulebook.Key(ctx.Subclass) == "moon":
		cr = "1"
	case ctx.Level >= 8:
		cr = "1"
	case ctx.Level >= 4:
		cr = "1/2"
	}
	timing := shared.TimingAction
	if rulebook.Key(ctx.Subclass) == "moon" {
		timing = shared.TimingBonusAction
	}
	return Mechanics{
		Timing:      timing,
		ResourceKey: rulebook.PoolWildShape,
		Summary:     fmt.Sprintf("Assume a beast shape of challenge rating %s or lower for %d hours", cr, max(ctx.Level/2, 1)),
	}
}

func divineSense(Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingAction,
		ResourceKey: rulebook.PoolDivineSense,
		Summary:     "Sense celestials, fiends and undead within 60 feet",
	}
}

func cunningAction(Context) Mechanics {
	return Mechanics{
		Timing:  shared.TimingBonusAction,
		Summary: "Dash, Disengage or Hide",
	}
}

func arcaneRecovery(ctx Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingSpecial,
		ResourceKey: rulebook.PoolArcaneRecovery,
		Summary:     fmt.Sprintf("After a short rest recover spell slots totalling up to %d levels (none 6th or higher)", (ctx.Level+1)/2),
	}
}

func indomitable(Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingSpecial,
		ResourceKey: rulebook.PoolIndomitable,
		Summary:     "Reroll a failed saving throw",
	}
}

func uncannyDodge(Context) Mechanics {
	return Mechanics{
		Timing:  shared.TimingReaction,
		Summary: "Halve the damage of an attack from an attacker you can see",
	}
}

func combatSuperiority(ctx Context) Mechanics {
	ability := shared.AttributeStrength
	if ctx.mod(shared.AttributeDexterity) > ctx.mod(shared.AttributeStrength) {
		ability = shared.AttributeDexterity
	}
	return Mechanics{
		Timing:      shared.TimingSpecial,
		Damage:      dice.NewFormula(1, SuperiorityDie(ctx.Level), 0).String(),
		SaveDC:      ctx.SaveDC(ability),
		ResourceKey: rulebook.PoolSuperiorityDice,
		Summary:     "Spend a superiority die on a maneuver",
	}
}

func breathWeapon(ctx Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingAction,
		Damage:      dice.NewFormula(BreathWeaponDice(ctx.Level), 6, 0).String(),
		SaveAbility: shared.AttributeDexterity,
		SaveDC:      ctx.SaveDC(shared.AttributeConstitution),
		ResourceKey: rulebook.PoolBreathWeapon,
		Summary:     "Exhale destructive energy; half damage on a successful save",
	}
}

func feyStep(Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingBonusAction,
		ResourceKey: rulebook.PoolFeyStep,
		Summary:     "Teleport up to 30 feet",
	}
}

func relentlessEndurance(Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingSpecial,
		ResourceKey: rulebook.PoolRelentlessEndurance,
		Summary:     "Drop to 1 hit point instead of 0",
	}
}

func hellishRebuke(ctx Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingReaction,
		Damage:      dice.NewFormula(3, 10, 0).String(),
		DamageType:  "fire",
		SaveAbility: shared.AttributeDexterity,
		SaveDC:      ctx.SaveDC(shared.AttributeCharisma),
		ResourceKey: rulebook.PoolHellishRebuke,
		Summary:     "Cast hellish rebuke as a 2nd-level spell",
	}
}

func stonesEndurance(ctx Context) Mechanics {
	return Mechanics{
		Timing:      shared.TimingReaction,
		Healing:     dice.NewFormula(1, 12, ctx.mod(shared.AttributeConstitution)).String(),
		ResourceKey: rulebook.PoolStonesEndurance,
		Summary:     "Reduce the damage you take",
	}
}

// SpellSlotKey returns the resource key used by actions that consume a spell slot of level or higher
func SpellSlotKey(level int) string {
	return fmt.Sprintf("spell:%d", level)
}
