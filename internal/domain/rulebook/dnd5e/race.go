package rulebook

// DefaultSpeed is the walking speed for races the tables do not list
const DefaultSpeed = 30

// RaceDefinition is the reference data for a race or subrace
type RaceDefinition struct {
	Key    string              `json:"key" yaml:"key"`
	Name   string              `json:"name" yaml:"name"`
	Size   string              `json:"size" yaml:"size"`
	Speed  int                 `json:"speed" yaml:"speed"`
	Parent string              `json:"parent,omitempty" yaml:"parent"`
	Traits []FeatureDefinition `json:"traits" yaml:"traits"`
}

var raceSpeeds = map[string]int{
	"dwarf":          25,
	"hill-dwarf":     25,
	"mountain-dwarf": 25,
	"halfling":       25,
	"lightfoot":      25,
	"stout":          25,
	"gnome":          25,
	"forest-gnome":   25,
	"rock-gnome":     25,
	"wood-elf":       35,
}

// BaseSpeed returns the walking speed of a race, 30 when unknown
func BaseSpeed(raceName string) int {
	if speed, ok := raceSpeeds[Key(raceName)]; ok {
		return speed
	}
	return DefaultSpeed
}
