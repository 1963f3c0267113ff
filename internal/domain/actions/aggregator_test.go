package actions_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-character-engine/internal/domain/actions"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/equipment"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/resources"
	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
	engineerr "github.com/KirkDiggler/dnd-character-engine/internal/errors"
)

type AggregatorTestSuite struct {
	suite.Suite
	catalog    *rulebook.Catalog
	aggregator *actions.Aggregator
}

func (s *AggregatorTestSuite) SetupSuite() {
	catalog, err := rulebook.LoadSRD()
	s.Require().NoError(err)
	s.catalog = catalog
	s.aggregator = actions.NewAggregator(catalog)
}

func snapshot(class string, level int) *character.Snapshot {
	return &character.Snapshot{
		Class: class,
		Race:  "Human",
		Level: level,
		AbilityScores: character.Scores{
			Final: character.AbilityScores{
				Strength: 16, Dexterity: 14, Constitution: 14,
				Intelligence: 16, Wisdom: 14, Charisma: 16,
			},
		},
	}
}

func (s *AggregatorTestSuite) stateFor(snap *character.Snapshot) *resources.State {
	return resources.Initialize(resources.InitializeInput{
		Class:    snap.Class,
		Subclass: snap.Subclass,
		Race:     snap.Race,
		Level:    snap.Level,
		Scores:   snap.AbilityScores.Final,
	})
}

func (s *AggregatorTestSuite) spells(names ...string) []*rulebook.Spell {
	found, missing := s.catalog.Spells(names)
	s.Require().Empty(missing)
	return found
}

func find(list []actions.Descriptor, key string) *actions.Descriptor {
	for i := range list {
		if list[i].Key == key {
			return &list[i]
		}
	}
	return nil
}

func (s *AggregatorTestSuite) TestEveryClassGetsStandardActionsAndUnarmedStrike() {
	for _, class := range s.catalog.ClassKeys() {
		s.Run(class, func() {
			snap := snapshot(class, 1)
			list, err := s.aggregator.Aggregate(snap, nil, s.stateFor(snap))
			s.Require().NoError(err)

			standard, unarmed := 0, 0
			for _, d := range list {
				switch {
				case d.Key == "standard:unarmed-strike":
					unarmed++
				case d.Source == actions.SourceStandard:
					standard++
				}
			}
			s.Equal(actions.StandardActionCount, standard)
			s.Equal(1, unarmed)
			s.Equal("Attack", list[0].Name)
			s.Equal("standard:unarmed-strike", list[actions.StandardActionCount].Key)
		})
	}
}

func (s *AggregatorTestSuite) TestInvalidSnapshot() {
	snap := snapshot("Fighter", 0)
	_, err := s.aggregator.Aggregate(snap, nil, nil)
	s.True(engineerr.IsValidation(err))
}

func (s *AggregatorTestSuite) TestFighterOrderingAndLimitedFeatures() {
	snap := snapshot("Fighter", 5)
	snap.Items = []equipment.Item{{
		Key: "longsword", Name: "Longsword", Category: equipment.CategoryWeapon, Equipped: true,
		Weapon: &equipment.Weapon{Damage: "1d8", DamageType: "slashing", Category: "martial", Range: "melee"},
	}}
	state := s.stateFor(snap)

	list, err := s.aggregator.Aggregate(snap, nil, state)
	s.Require().NoError(err)

	var keys []string
	for _, d := range list[actions.StandardActionCount:] {
		keys = append(keys, d.Key)
	}
	s.Equal([]string{
		"standard:unarmed-strike",
		"weapon:longsword",
		"class:fighting-style",
		"class:second-wind",
		"class:action-surge",
		"class:extra-attack",
	}, keys)

	sword := find(list, "weapon:longsword")
	s.Equal(6, *sword.AttackBonus)
	s.Equal("1d8+3", sword.Damage)

	secondWind := find(list, "class:second-wind")
	s.Equal(shared.TimingBonusAction, secondWind.Timing)
	s.Equal("1d10+5", secondWind.Healing)
	s.True(secondWind.Limited)
	s.True(secondWind.Available)

	style := find(list, "class:fighting-style")
	s.Equal(shared.TimingSpecial, style.Timing)
	s.False(style.Limited)
	s.True(style.Available)
	s.False(style.HasMechanics())

	used := resources.Apply(state, resources.UseResource{Pool: "second-wind"})
	list, err = s.aggregator.Aggregate(snap, nil, used)
	s.Require().NoError(err)
	s.False(find(list, "class:second-wind").Available)

	s.Equal(0, state.Features["second-wind"].Used, "aggregation never mutates state")
}

func (s *AggregatorTestSuite) TestWizardSpells() {
	snap := snapshot("Wizard", 5)
	state := s.stateFor(snap)
	spells := s.spells("Fireball", "Shield", "Fire Bolt", "Magic Missile", "Hold Person")

	list, err := s.aggregator.Aggregate(snap, spells, state)
	s.Require().NoError(err)

	var names []string
	for _, d := range list {
		if d.Source == actions.SourceSpell {
			names = append(names, d.Name)
		}
	}
	s.Equal([]string{"Fire Bolt", "Magic Missile", "Shield", "Hold Person", "Fireball"}, names)

	fireBolt := find(list, "spell:fire-bolt")
	s.Equal("2d10", fireBolt.Damage)
	s.Equal(3+3, *fireBolt.AttackBonus)
	s.False(fireBolt.Limited)
	s.True(fireBolt.Available)

	missile := find(list, "spell:magic-missile")
	s.Equal("3d4+3", missile.Damage)
	s.Equal(map[int]string{2: "4d4+4", 3: "5d4+5"}, missile.UpCast)
	s.Equal("spell:1", missile.ResourceKey)

	fireball := find(list, "spell:fireball")
	s.Equal(8+3+3, *fireball.SaveDC)
	s.Equal(shared.AttributeDexterity, fireball.SaveAbility)
	s.Equal("8d6", fireball.Damage)
	s.Empty(fireball.UpCast)

	s.Equal(shared.TimingReaction, find(list, "spell:shield").Timing)
	s.True(find(list, "spell:hold-person").Concentration)
}

func (s *AggregatorTestSuite) TestSpellsCastAtLowestFreeSlot() {
	snap := snapshot("Cleric", 5)
	state := s.stateFor(snap)
	state = resources.Apply(state, resources.UseResource{Pool: "spell:1", Amount: 4})

	list, err := s.aggregator.Aggregate(snap, s.spells("Cure Wounds"), state)
	s.Require().NoError(err)

	cure := find(list, "spell:cure-wounds")
	s.True(cure.Available)
	s.Equal("2d8", cure.Healing)
	s.Equal(map[int]string{3: "3d8"}, cure.UpCast)

	state = resources.Apply(state, resources.UseResource{Pool: "spell:2", Amount: 3})
	state = resources.Apply(state, resources.UseResource{Pool: "spell:3", Amount: 2})
	list, err = s.aggregator.Aggregate(snap, s.spells("Cure Wounds"), state)
	s.Require().NoError(err)
	s.False(find(list, "spell:cure-wounds").Available)
}

func (s *AggregatorTestSuite) TestWarlockPactSlots() {
	snap := snapshot("Warlock", 5)
	list, err := s.aggregator.Aggregate(snap, s.spells("Hellish Rebuke"), s.stateFor(snap))
	s.Require().NoError(err)

	rebuke := find(list, "spell:hellish-rebuke")
	s.True(rebuke.Available)
	s.Equal("4d10", rebuke.Damage)
}

func (s *AggregatorTestSuite) TestDivineSmite() {
	snap := snapshot("Paladin", 5)
	state := s.stateFor(snap)

	list, err := s.aggregator.Aggregate(snap, nil, state)
	s.Require().NoError(err)

	smite := find(list, "class:divine-smite")
	s.Require().NotNil(smite)
	s.Equal("2d8", smite.Damage)
	s.Equal(map[int]string{2: "3d8"}, smite.UpCast)
	s.True(smite.Available)

	state = resources.Apply(state, resources.UseResource{Pool: "spell:1", Amount: 4})
	list, err = s.aggregator.Aggregate(snap, nil, state)
	s.Require().NoError(err)
	smite = find(list, "class:divine-smite")
	s.Equal("3d8", smite.Damage)
	s.Empty(smite.UpCast)
	s.True(smite.Available)

	state = resources.Apply(state, resources.UseResource{Pool: "spell:2", Amount: 2})
	list, err = s.aggregator.Aggregate(snap, nil, state)
	s.Require().NoError(err)
	s.False(find(list, "class:divine-smite").Available)
}

func (s *AggregatorTestSuite) TestDivineSmiteListsOnlyHeldSlots() {
	testCases := []struct {
		level  int
		upCast map[int]string
	}{
		{level: 2},
		{level: 9, upCast: map[int]string{2: "3d8", 3: "4d8"}},
		{level: 17, upCast: map[int]string{2: "3d8", 3: "4d8", 4: "5d8", 5: "5d8"}},
	}

	for _, tc := range testCases {
		s.Run(fmt.Sprintf("level %d", tc.level), func() {
			snap := snapshot("Paladin", tc.level)
			list, err := s.aggregator.Aggregate(snap, nil, s.stateFor(snap))
			s.Require().NoError(err)

			smite := find(list, "class:divine-smite")
			s.Require().NotNil(smite)
			s.Equal("2d8", smite.Damage)
			s.Equal(tc.upCast, smite.UpCast)
		})
	}
}

func (s *AggregatorTestSuite) TestRogueSneakAttack() {
	snap := snapshot("Rogue", 5)
	list, err := s.aggregator.Aggregate(snap, nil, nil)
	s.Require().NoError(err)

	sneak := find(list, "class:sneak-attack")
	s.Equal("3d6", sneak.Damage)
	s.False(sneak.Limited)
	s.Equal(shared.TimingReaction, find(list, "class:uncanny-dodge").Timing)
}

func (s *AggregatorTestSuite) TestRacialTraits() {
	snap := snapshot("Fighter", 5)
	snap.Race = "Dragonborn"

	list, err := s.aggregator.Aggregate(snap, nil, s.stateFor(snap))
	s.Require().NoError(err)

	breath := find(list, "race:breath-weapon")
	s.Require().NotNil(breath)
	s.Equal(8+3+2, *breath.SaveDC)
	s.Equal(shared.AttributeDexterity, breath.SaveAbility)
	s.True(breath.Limited)
	s.True(breath.Available)

	resistance := find(list, "race:damage-resistance")
	s.Require().NotNil(resistance)
	s.False(resistance.HasMechanics())

	s.Equal(actions.SourceRace, list[len(list)-1].Source)
}

func (s *AggregatorTestSuite) TestUnlimitedRage() {
	snap := snapshot("Barbarian", 20)
	state := resources.Apply(s.stateFor(snap), resources.UseResource{Pool: "rage", Amount: 10})

	list, err := s.aggregator.Aggregate(snap, nil, state)
	s.Require().NoError(err)
	s.True(find(list, "class:rage").Available)
}

func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorTestSuite))
}
