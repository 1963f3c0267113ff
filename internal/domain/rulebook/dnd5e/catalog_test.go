package rulebook_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	rulebook "github.com/KirkDiggler/dnd-character-engine/internal/domain/rulebook/dnd5e"
	"github.com/KirkDiggler/dnd-character-engine/internal/domain/shared"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *rulebook.Catalog
}

func (s *CatalogTestSuite) SetupTest() {
	catalog, err := rulebook.LoadSRD()
	s.Require().NoError(err)
	s.catalog = catalog
}

func (s *CatalogTestSuite) TestLoadsEveryClass() {
	s.Equal([]string{
		"barbarian", "bard", "cleric", "druid", "fighter", "monk",
		"paladin", "ranger", "rogue", "sorcerer", "warlock", "wizard",
	}, s.catalog.ClassKeys())
}

func (s *CatalogTestSuite) TestMechanicsTaggedAtLoad() {
	fighter := s.catalog.Class("Fighter")

	tags := map[string]rulebook.Mechanic{}
	for _, f := range fighter.Features {
		tags[f.Key] = f.Mechanic
		s.Equal(rulebook.FeatureTypeClass, f.Type)
		s.Equal("Fighter", f.Source)
	}

	s.Equal(rulebook.MechanicSecondWind, tags["second-wind"])
	s.Equal(rulebook.MechanicActionSurge, tags["action-surge"])
	s.Equal(rulebook.MechanicIndomitable, tags["indomitable"])
	s.Equal(rulebook.MechanicNone, tags["fighting-style"])
}

func (s *CatalogTestSuite) TestExplicitMechanicTag() {
	life := s.catalog.Subclass("life")

	var preserve *rulebook.FeatureDefinition
	for i := range life.Features {
		if life.Features[i].Key == "preserve-life" {
			preserve = &life.Features[i]
		}
	}
	s.Require().NotNil(preserve)
	s.Equal(rulebook.MechanicChannelDivinity, preserve.Mechanic)
	s.Equal(rulebook.FeatureTypeSubclass, preserve.Type)
}

func (s *CatalogTestSuite) TestFeaturesAreLevelOrdered() {
	features := rulebook.FeaturesAt(s.catalog.Class("rogue").Features, 5)

	s.Require().NotEmpty(features)
	for i := 1; i < len(features); i++ {
		s.LessOrEqual(features[i-1].Level, features[i].Level)
	}
	for _, f := range features {
		s.LessOrEqual(f.Level, 5)
	}
}

func (s *CatalogTestSuite) TestSubraceMergesParentTraits() {
	woodElf := s.catalog.Race("Wood Elf")

	s.Equal(35, woodElf.Speed)
	s.Equal("Medium", woodElf.Size)

	var names []string
	for _, t := range woodElf.Traits {
		names = append(names, t.Name)
	}
	s.Contains(names, "Darkvision")
	s.Contains(names, "Mask of the Wild")
}

func (s *CatalogTestSuite) TestUnknownKeysFailClosed() {
	class := s.catalog.Class("Artificer")
	s.Equal(8, class.HitDie)
	s.Empty(class.Features)

	s.Empty(s.catalog.Subclass("alchemist").Features)

	race := s.catalog.Race("Kenku")
	s.Equal(30, race.Speed)
	s.Empty(race.Traits)

	_, ok := s.catalog.Spell("Wish")
	s.False(ok)
}

func (s *CatalogTestSuite) TestSpells() {
	found, missing := s.catalog.Spells([]string{"Fireball", "cure_wounds", "Wish"})

	s.Len(found, 2)
	s.Equal([]string{"Wish"}, missing)

	fireball := found[0]
	s.Equal(3, fireball.Level)
	s.Equal(shared.AttributeDexterity, fireball.SaveAbility)
	s.Equal("8d6", fireball.DamageAt(3))
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func TestLoadCatalog_RejectsUnknownMechanic(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": &fstest.MapFile{Data: []byte(`
classes:
  - name: Fighter
    features:
      - {name: Second Wind, level: 1, mechanic: teleport}
`)},
	}

	_, err := rulebook.LoadCatalog(fsys)
	assert.ErrorContains(t, err, "unknown mechanic")
}

func TestLoadCatalog_DefaultsFromTables(t *testing.T) {
	fsys := fstest.MapFS{
		"data/extra.yaml": &fstest.MapFile{Data: []byte(`
classes:
  - name: Barbarian
races:
  - name: Hill Dwarf
    parent: Dwarf
  - name: Dwarf
    size: Medium
    traits:
      - {name: Darkvision}
`)},
		"README.md": &fstest.MapFile{Data: []byte("not yaml")},
	}

	catalog, err := rulebook.LoadCatalog(fsys)
	require.NoError(t, err)

	assert.Equal(t, 12, catalog.Class("barbarian").HitDie)

	hill := catalog.Race("hill-dwarf")
	assert.Equal(t, 25, hill.Speed)
	assert.Equal(t, "Medium", hill.Size)
	require.Len(t, hill.Traits, 1)
	assert.Equal(t, rulebook.FeatureTypeRacial, hill.Traits[0].Type)
}
