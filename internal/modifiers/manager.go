package modifiers

import "sync"

// Contribution is one line of a total's breakdown
type Contribution struct {
	Source string `json:"source"`
	Amount int    `json:"amount"`
}

// Total is an aggregated number together with the contributions that produced it
type Total struct {
	Value     int            `json:"value"`
	Breakdown []Contribution `json:"breakdown"`
}

// Add appends a contribution
func (t *Total) Add(source string, amount int) {
	t.Value += amount
	t.Breakdown = append(t.Breakdown, Contribution{Source: source, Amount: amount})
}

// AddNonZero appends a contribution unless amount is zero
func (t *Total) AddNonZero(source string, amount int) {
	if amount != 0 {
		t.Add(source, amount)
	}
}

// Merge appends every contribution of other
func (t *Total) Merge(other Total) {
	for _, c := range other.Breakdown {
		t.Add(c.Source, c.Amount)
	}
}

// NewTotal starts a total from a base contribution
func NewTotal(source string, base int) Total {
	var t Total
	t.Add(source, base)
	return t
}

// Manager collects the modifiers in effect for one computation and resolves
// them against the stacking rules
type Manager struct {
	mu        sync.RWMutex
	modifiers []Modifier
}

// NewManager creates a manager holding mods
func NewManager(mods ...Modifier) *Manager {
	m := &Manager{}
	m.Add(mods...)
	return m
}

// Add registers modifiers in application order. Unknown targets are ignored.
func (m *Manager) Add(mods ...Modifier) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, mod := range mods {
		if mod.Target.Valid() {
			m.modifiers = append(m.modifiers, mod)
		}
	}
}

// All returns every registered modifier
func (m *Manager) All() []Modifier {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Modifier(nil), m.modifiers...)
}

// Resolve returns the modifiers that apply to target/subTarget after stacking,
// in the order they were added
func (m *Manager) Resolve(target Target, subTarget string) []Modifier {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matching []Modifier
	for _, mod := range m.modifiers {
		if mod.Applies(target, subTarget) {
			matching = append(matching, mod)
		}
	}
	return resolve(matching)
}

// Sum returns the resolved bonus for target/subTarget
func (m *Manager) Sum(target Target, subTarget string) int {
	sum := 0
	for _, mod := range m.Resolve(target, subTarget) {
		sum += mod.Value
	}
	return sum
}

// Apply adds each resolved modifier to total as its own contribution
func (m *Manager) Apply(total *Total, target Target, subTarget string) {
	for _, mod := range m.Resolve(target, subTarget) {
		total.AddNonZero(mod.Source.Name, mod.Value)
	}
}

func resolve(mods []Modifier) []Modifier {
	keep := make([]bool, len(mods))

	// Items with the same name never stack; the strongest copy counts
	bestItem := make(map[string]int)
	for i, mod := range mods {
		if mod.Source.Type != SourceTypeItem || mod.Source.Name == "" {
			keep[i] = true
			continue
		}
		j, seen := bestItem[mod.Source.Name]
		if !seen || mod.Value > mods[j].Value {
			bestItem[mod.Source.Name] = i
		}
	}
	for _, i := range bestItem {
		keep[i] = true
	}

	winners := make(map[string]int)
	for i, mod := range mods {
		if !keep[i] {
			continue
		}
		switch mod.stacking() {
		case StackingTakeHighest:
			key := "highest:" + mod.group()
			j, seen := winners[key]
			if !seen || mod.Value > mods[j].Value {
				winners[key] = i
			}
			keep[i] = false
		case StackingReplace:
			winners["replace:"+mod.group()] = i
			keep[i] = false
		}
	}
	for _, i := range winners {
		keep[i] = true
	}

	out := make([]Modifier, 0, len(mods))
	for i, mod := range mods {
		if keep[i] {
			out = append(out, mod)
		}
	}
	return out
}
