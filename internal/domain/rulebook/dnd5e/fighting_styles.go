package rulebook

// FightingStyle is a combat specialty chosen by martial classes
type FightingStyle string

const (
	FightingStyleArchery             FightingStyle = "archery"
	FightingStyleDefense             FightingStyle = "defense"
	FightingStyleDueling             FightingStyle = "dueling"
	FightingStyleGreatWeaponFighting FightingStyle = "great-weapon-fighting"
	FightingStyleProtection          FightingStyle = "protection"
	FightingStyleTwoWeaponFighting   FightingStyle = "two-weapon-fighting"
)

// Bonuses granted by the numeric fighting styles
const (
	ArcheryAttackBonus = 2
	DefenseACBonus     = 1
	DuelingDamageBonus = 2
)

var fightingStyleClasses = map[FightingStyle][]string{
	FightingStyleArchery:             {"fighter", "ranger"},
	FightingStyleDefense:             {"fighter", "ranger", "paladin"},
	FightingStyleDueling:             {"fighter", "ranger", "paladin"},
	FightingStyleGreatWeaponFighting: {"fighter", "paladin"},
	FightingStyleProtection:          {"fighter", "paladin"},
	FightingStyleTwoWeaponFighting:   {"fighter", "ranger"},
}

// ParseFightingStyle normalizes "Great Weapon Fighting" or "great_weapon_fighting".
// The boolean is false for unknown styles.
func ParseFightingStyle(name string) (FightingStyle, bool) {
	style := FightingStyle(Key(name))
	_, ok := fightingStyleClasses[style]
	return style, ok
}

// FightingStylesForClass returns the styles a class may choose
func FightingStylesForClass(className string) []FightingStyle {
	key := Key(className)
	var out []FightingStyle
	for _, style := range []FightingStyle{
		FightingStyleArchery, FightingStyleDefense, FightingStyleDueling,
		FightingStyleGreatWeaponFighting, FightingStyleProtection, FightingStyleTwoWeaponFighting,
	} {
		for _, c := range fightingStyleClasses[style] {
			if c == key {
				out = append(out, style)
				break
			}
		}
	}
	return out
}
