package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/equipment"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

type SnapshotTestSuite struct {
	suite.Suite
	snapshot *character.Snapshot
}

func (s *SnapshotTestSuite) SetupTest() {
	s.snapshot = &character.Snapshot{
		Class: "Fighter",
		Race:  "Human",
		Level: 5,
		AbilityScores: character.Scores{
			Final: character.AbilityScores{
				Strength: 16, Dexterity: 14, Constitution: 14,
				Intelligence: 10, Wisdom: 12, Charisma: 8,
			},
		},
		SkillProficiencies: []shared.Skill{shared.SkillAthletics},
		Expertise:          []shared.Skill{"Sleight of Hand"},
		FightingStyles:     []rulebook.FightingStyle{"Defense"},
	}
}

func (s *SnapshotTestSuite) TestValidSnapshot() {
	s.NoError(s.snapshot.Validate())
}

func (s *SnapshotTestSuite) TestMissingAbilityScore() {
	s.snapshot.AbilityScores.Final.Dexterity = 0

	err := s.snapshot.Validate()
	s.True(engineerr.IsValidation(err))
	s.Equal("ability_scores.final.dexterity", engineerr.GetMeta(err)["field"])
}

func (s *SnapshotTestSuite) TestPartialBaseScores() {
	s.snapshot.AbilityScores.Base = character.AbilityScores{Strength: 15}

	err := s.snapshot.Validate()
	s.True(engineerr.IsValidation(err))
	s.Equal("ability_scores.base.dexterity", engineerr.GetMeta(err)["field"])
}

func (s *SnapshotTestSuite) TestLevelOutOfRange() {
	for _, level := range []int{0, 21, -3} {
		s.snapshot.Level = level
		err := s.snapshot.Validate()
		s.True(engineerr.IsValidation(err), "level %d", level)
		s.Equal("level", engineerr.GetMeta(err)["field"])
	}
}

func (s *SnapshotTestSuite) TestUnknownSkill() {
	s.snapshot.SkillProficiencies = append(s.snapshot.SkillProficiencies, "basket-weaving")

	err := s.snapshot.Validate()
	s.Equal("skill_proficiencies[1]", engineerr.GetMeta(err)["field"])
}

func (s *SnapshotTestSuite) TestBadWeaponDamage() {
	s.snapshot.Items = []equipment.Item{{Key: "longsword", Weapon: &equipment.Weapon{Damage: "d"}}}

	err := s.snapshot.Validate()
	s.Equal("items[0].weapon.damage", engineerr.GetMeta(err)["field"])
}

func (s *SnapshotTestSuite) TestUnknownClassIsNotAnError() {
	s.snapshot.Class = "Artificer"
	s.snapshot.Race = "Warforged"
	s.NoError(s.snapshot.Validate())
}

func (s *SnapshotTestSuite) TestNilSnapshot() {
	var snapshot *character.Snapshot
	s.True(engineerr.IsInvalidArgument(snapshot.Validate()))
}

func (s *SnapshotTestSuite) TestProficiencies() {
	s.Equal(3, s.snapshot.ProficiencyBonus())
	s.True(s.snapshot.HasSkillProficiency(shared.SkillAthletics))
	s.True(s.snapshot.HasSkillProficiency(shared.SkillSleightOfHand))
	s.True(s.snapshot.HasExpertise(shared.SkillSleightOfHand))
	s.False(s.snapshot.HasSkillProficiency(shared.SkillStealth))

	s.True(s.snapshot.HasSavingThrowProficiency(shared.AttributeStrength))
	s.False(s.snapshot.HasSavingThrowProficiency(shared.AttributeWisdom))
	s.snapshot.SavingThrowProficiencies = []shared.Attribute{"wisdom"}
	s.True(s.snapshot.HasSavingThrowProficiency(shared.AttributeWisdom))

	s.True(s.snapshot.HasFightingStyle(rulebook.FightingStyleDefense))
	s.False(s.snapshot.HasFightingStyle(rulebook.FightingStyleArchery))
}

func (s *SnapshotTestSuite) TestWeaponProficiency() {
	longsword := &equipment.Item{Key: "longsword", Weapon: &equipment.Weapon{Category: "Martial"}}
	s.True(s.snapshot.IsProficientWithWeapon(longsword))

	s.snapshot.Class = "Wizard"
	s.False(s.snapshot.IsProficientWithWeapon(longsword))

	s.snapshot.WeaponProficiencies = []string{"Longsword"}
	s.True(s.snapshot.IsProficientWithWeapon(longsword))
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotTestSuite))
}

func TestAbilityScores(t *testing.T) {
	scores := character.AbilityScores{Strength: 8, Dexterity: 15, Constitution: 10, Intelligence: 1, Wisdom: 30, Charisma: 11}

	assert.Equal(t, -1, scores.Modifier(shared.AttributeStrength))
	assert.Equal(t, 2, scores.Modifier(shared.AttributeDexterity))
	assert.Equal(t, -5, scores.Modifier(shared.AttributeIntelligence))
	assert.Equal(t, 10, scores.Modifier(shared.AttributeWisdom))
	assert.Equal(t, 0, scores.Modifier(shared.AttributeNone))

	assert.Equal(t, scores, character.AbilityScoresFromMap(scores.ToMap()))
	assert.True(t, character.AbilityScores{}.IsZero())
}
