package gamedata

import (
	"errors"
	"fmt"
)

// Intn is the subset of *rand.Rand used for spawning.
type Intn interface {
	Intn(n int) int
}

// EnemyRegistry holds loaded enemy definitions and provides spawning utilities.
// It is read-only after construction; lookups hand out copies.
type EnemyRegistry struct {
	enemies     []EnemyDef
	byName      map[string]int
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) (*EnemyRegistry, error) {
	registry := &EnemyRegistry{
		enemies: make([]EnemyDef, len(enemies)),
		byName:  make(map[string]int, len(enemies)),
	}
	copy(registry.enemies, enemies)

	for i := range registry.enemies {
		def := &registry.enemies[i]
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := registry.byName[def.Name]; dup {
			return nil, fmt.Errorf("enemy %q: duplicate name", def.Name)
		}
		registry.byName[def.Name] = i
		registry.totalWeight += def.SpawnWeight
	}
	return registry, nil
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.yaml.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.yaml")
	}
	return NewEnemyRegistry(enemies)
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random enemy definition using weighted probability.
// With equal weights every template is equally likely.
func (r *EnemyRegistry) SpawnRandom(rng Intn) (EnemyDef, bool) {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return EnemyDef{}, false
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return r.enemies[i], true
		}
	}

	return r.enemies[0], true
}

// GetByName returns the enemy definition with the given display name.
func (r *EnemyRegistry) GetByName(name string) (EnemyDef, bool) {
	i, ok := r.byName[name]
	if !ok {
		return EnemyDef{}, false
	}
	return r.enemies[i], true
}

// Names returns the enemy names in catalog order.
func (r *EnemyRegistry) Names() []string {
	names := make([]string, len(r.enemies))
	for i := range r.enemies {
		names[i] = r.enemies[i].Name
	}
	return names
}

// All returns a copy of all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	out := make([]EnemyDef, len(r.enemies))
	copy(out, r.enemies)
	return out
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds the shop catalog in display order.
type ItemRegistry struct {
	items  []ItemDef
	byName map[string]int
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) (*ItemRegistry, error) {
	registry := &ItemRegistry{
		items:  make([]ItemDef, len(items)),
		byName: make(map[string]int, len(items)),
	}
	copy(registry.items, items)

	for i := range registry.items {
		def := &registry.items[i]
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, dup := registry.byName[def.Name]; dup {
			return nil, fmt.Errorf("item %q: duplicate name", def.Name)
		}
		registry.byName[def.Name] = i
	}
	return registry, nil
}

// LoadItemRegistry loads and creates a registry from the embedded items.yaml.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.yaml")
	}
	return NewItemRegistry(items)
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByName returns the item definition with the given name.
func (r *ItemRegistry) GetByName(name string) (ItemDef, bool) {
	i, ok := r.byName[name]
	if !ok {
		return ItemDef{}, false
	}
	return r.items[i], true
}

// Names returns the item names in catalog order.
func (r *ItemRegistry) Names() []string {
	names := make([]string, len(r.items))
	for i := range r.items {
		names[i] = r.items[i].Name
	}
	return names
}

// All returns a copy of all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	out := make([]ItemDef, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the number of items in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.items)
}
