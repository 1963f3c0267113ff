package rulebook

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var srdData embed.FS

// catalogFile is the on-disk shape of a reference data file
type catalogFile struct {
	Classes    []ClassDefinition    `yaml:"classes"`
	Subclasses []SubclassDefinition `yaml:"subclasses"`
	Races      []RaceDefinition     `yaml:"races"`
	Spells     []Spell              `yaml:"spells"`
}

// Catalog holds pre-loaded class, subclass, race and spell reference data.
// Mechanic tags are assigned as definitions are added, never at query time.
type Catalog struct {
	mu         sync.RWMutex
	classes    map[string]*ClassDefinition
	subclasses map[string]*SubclassDefinition
	races      map[string]*RaceDefinition
	spells     map[string]*Spell
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		classes:    make(map[string]*ClassDefinition),
		subclasses: make(map[string]*SubclassDefinition),
		races:      make(map[string]*RaceDefinition),
		spells:     make(map[string]*Spell),
	}
}

// LoadSRD loads the embedded SRD reference data
func LoadSRD() (*Catalog, error) {
	return LoadCatalog(srdData)
}

// LoadCatalog loads every .yaml file found in fsys
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	c := NewCatalog()

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".yaml" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}
		if err := c.addFile(&file); err != nil {
			return fmt.Errorf("loading %s: %w", p, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) addFile(file *catalogFile) error {
	for _, def := range file.Classes {
		if err := c.AddClass(def); err != nil {
			return err
		}
	}
	for _, def := range file.Subclasses {
		if err := c.AddSubclass(def); err != nil {
			return err
		}
	}
	for _, def := range file.Races {
		if err := c.AddRace(def); err != nil {
			return err
		}
	}
	for i := range file.Spells {
		c.AddSpell(file.Spells[i])
	}
	return nil
}

// AddClass registers or replaces a class definition
func (c *Catalog) AddClass(def ClassDefinition) error {
	if def.Key == "" {
		def.Key = Key(def.Name)
	}
	if def.HitDie == 0 {
		def.HitDie = HitDie(def.Key)
	}
	features, err := tagFeatures(def.Features, FeatureTypeClass, def.Name)
	if err != nil {
		return fmt.Errorf("class %s: %w", def.Key, err)
	}
	def.Features = features

	c.mu.Lock()
	defer c.mu.Unlock()
	c.classes[def.Key] = &def
	return nil
}

// AddSubclass registers or replaces a subclass definition
func (c *Catalog) AddSubclass(def SubclassDefinition) error {
	if def.Key == "" {
		def.Key = Key(def.Name)
	}
	def.Class = Key(def.Class)
	features, err := tagFeatures(def.Features, FeatureTypeSubclass, def.Name)
	if err != nil {
		return fmt.Errorf("subclass %s: %w", def.Key, err)
	}
	def.Features = features

	c.mu.Lock()
	defer c.mu.Unlock()
	c.subclasses[def.Key] = &def
	return nil
}

// AddRace registers or replaces a race definition
func (c *Catalog) AddRace(def RaceDefinition) error {
	if def.Key == "" {
		def.Key = Key(def.Name)
	}
	if def.Speed == 0 {
		def.Speed = BaseSpeed(def.Key)
	}
	def.Parent = Key(def.Parent)
	traits, err := tagFeatures(def.Traits, FeatureTypeRacial, def.Name)
	if err != nil {
		return fmt.Errorf("race %s: %w", def.Key, err)
	}
	def.Traits = traits

	c.mu.Lock()
	defer c.mu.Unlock()
	c.races[def.Key] = &def
	return nil
}

// AddSpell registers or replaces a spell definition
func (c *Catalog) AddSpell(spell Spell) {
	if spell.Key == "" {
		spell.Key = Key(spell.Name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.spells[spell.Key] = &spell
}

// Class returns the class definition. Unknown classes yield an empty
// definition with the default hit die rather than an error.
func (c *Catalog) Class(name string) *ClassDefinition {
	key := Key(name)

	c.mu.RLock()
	defer c.mu.RUnlock()
	if def, ok := c.classes[key]; ok {
		return def
	}
	return &ClassDefinition{Key: key, Name: name, HitDie: HitDie(key)}
}

// Subclass returns the subclass definition, or an empty one when unknown
func (c *Catalog) Subclass(name string) *SubclassDefinition {
	key := Key(name)

	c.mu.RLock()
	defer c.mu.RUnlock()
	if def, ok := c.subclasses[key]; ok {
		return def
	}
	return &SubclassDefinition{Key: key, Name: name}
}

// Race returns the race definition with its parent race traits merged in.
// Unknown races yield an empty definition at the default speed.
func (c *Catalog) Race(name string) *RaceDefinition {
	key := Key(name)

	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.races[key]
	if !ok {
		return &RaceDefinition{Key: key, Name: name, Speed: BaseSpeed(key)}
	}
	parent, ok := c.races[def.Parent]
	if def.Parent == "" || !ok {
		return def
	}

	merged := *def
	merged.Traits = append(append([]FeatureDefinition(nil), parent.Traits...), def.Traits...)
	if merged.Size == "" {
		merged.Size = parent.Size
	}
	return &merged
}

// HasClass reports whether the catalog holds a definition for the class
func (c *Catalog) HasClass(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.classes[Key(name)]
	return ok
}

// HasRace reports whether the catalog holds a definition for the race
func (c *Catalog) HasRace(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.races[Key(name)]
	return ok
}

// Spell looks up a spell by name or key
func (c *Catalog) Spell(name string) (*Spell, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spell, ok := c.spells[Key(name)]
	return spell, ok
}

// Spells resolves a list of spell names, returning the ones found and the names that were not
func (c *Catalog) Spells(names []string) ([]*Spell, []string) {
	found := make([]*Spell, 0, len(names))
	var missing []string
	for _, name := range names {
		if spell, ok := c.Spell(name); ok {
			found = append(found, spell)
		} else {
			missing = append(missing, name)
		}
	}
	return found, missing
}

// ClassKeys lists the loaded class keys alphabetically
func (c *Catalog) ClassKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.classes))
	for k := range c.classes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func tagFeatures(in []FeatureDefinition, featureType FeatureType, source string) ([]FeatureDefinition, error) {
	out := make([]FeatureDefinition, len(in))
	for i, f := range in {
		if f.Key == "" {
			f.Key = Key(f.Name)
		}
		f.Type = featureType
		f.Source = source

		if f.Mechanic != MechanicNone {
			m, ok := ParseMechanic(string(f.Mechanic))
			if !ok {
				return nil, fmt.Errorf("feature %s has unknown mechanic %q", f.Key, f.Mechanic)
			}
			f.Mechanic = m
		} else {
			f.Mechanic = MechanicForName(f.Name)
		}
		out[i] = f
	}
	sortFeatures(out)
	return out, nil
}

func sortFeatures(features []FeatureDefinition) {
	sort.SliceStable(features, func(i, j int) bool {
		if features[i].Level != features[j].Level {
			return features[i].Level < features[j].Level
		}
		return features[i].Name < features[j].Name
	})
}
