package rpgtoolkit

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeCharacter is the entity type of every event source the engine publishes
const EntityTypeCharacter = "character"

// CharacterEntity adapts a character ID to rpg-toolkit's Entity interface
type CharacterEntity struct {
	ID string
}

var _ core.Entity = (*CharacterEntity)(nil)

// GetID returns the character's ID
func (c *CharacterEntity) GetID() string {
	if c == nil {
		return ""
	}
	return c.ID
}

// GetType returns the entity type
func (c *CharacterEntity) GetType() string {
	return EntityTypeCharacter
}
