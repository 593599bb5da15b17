package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// CreatureRegistry holds loaded creature definitions and provides spawning utilities.
type CreatureRegistry struct {
	creatures   []CreatureDef
	totalWeight int
}

// NewCreatureRegistry creates a registry from loaded creature definitions.
func NewCreatureRegistry(creatures []CreatureDef) *CreatureRegistry {
	totalWeight := 0
	for _, c := range creatures {
		if c.SpawnWeight > 0 {
			totalWeight += c.SpawnWeight
		}
	}
	return &CreatureRegistry{
		creatures:   creatures,
		totalWeight: totalWeight,
	}
}

// LoadCreatureRegistry loads and creates a registry from the embedded creatures.json.
// The data must contain a player definition.
func LoadCreatureRegistry() (*CreatureRegistry, error) {
	creatures, err := LoadCreatures()
	if err != nil {
		return nil, err
	}
	if len(creatures) == 0 {
		return nil, errors.New("no creatures loaded from creatures.json")
	}
	r := NewCreatureRegistry(creatures)
	if r.GetByID(PlayerID) == nil {
		return nil, fmt.Errorf("creatures.json has no %q entry", PlayerID)
	}
	return r, nil
}

// MustLoadCreatureRegistry loads a registry, panicking on error.
func MustLoadCreatureRegistry() *CreatureRegistry {
	registry, err := LoadCreatureRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random monster definition using weighted probability.
// Definitions with a spawn weight of zero, such as the player, are never chosen.
// Returns nil when nothing can spawn.
func (r *CreatureRegistry) SpawnRandom(rng *rand.Rand) *CreatureDef {
	if r.totalWeight <= 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.creatures {
		if r.creatures[i].SpawnWeight <= 0 {
			continue
		}
		cumulative += r.creatures[i].SpawnWeight
		if roll < cumulative {
			return &r.creatures[i]
		}
	}

	// Unreachable while totalWeight matches the definitions
	return nil
}

// GetByID returns the creature definition with the given ID, or nil if not found.
func (r *CreatureRegistry) GetByID(id string) *CreatureDef {
	for i := range r.creatures {
		if r.creatures[i].ID == id {
			return &r.creatures[i]
		}
	}
	return nil
}

// Player returns the player's definition.
func (r *CreatureRegistry) Player() *CreatureDef {
	return r.GetByID(PlayerID)
}

// All returns all creature definitions.
func (r *CreatureRegistry) All() []CreatureDef {
	return r.creatures
}

// Count returns the number of creature types in the registry.
func (r *CreatureRegistry) Count() int {
	return len(r.creatures)
}
