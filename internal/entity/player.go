// Package entity provides the player character and enemy instances.
package entity

// HealthPotion is the inventory key of the consumable healing item.
const HealthPotion = "Health Potion"

// Starting values for a freshly created character.
const (
	StartingHealth = 100
	StartingLevel  = 1
	StartingGold   = 50
)

// Player represents the hero controlled by the user.
type Player struct {
	Name      string // Fixed at creation
	Health    int    // Current health, 0..MaxHealth
	MaxHealth int
	Level     int
	Exp       int
	Gold      int
	Inventory []string // Ordered; duplicates allowed
}

// NewPlayer creates a level 1 character carrying a single Health Potion.
// Each player owns its inventory slice.
func NewPlayer(name string) *Player {
	return &Player{
		Name:      name,
		Health:    StartingHealth,
		MaxHealth: StartingHealth,
		Level:     StartingLevel,
		Gold:      StartingGold,
		Inventory: []string{HealthPotion},
	}
}

// IsAlive returns true if the player has health remaining.
func (p *Player) IsAlive() bool { return p.Health > 0 }

// TakeDamage reduces health and returns actual damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > p.Health {
		actual = p.Health
	}
	p.Health -= actual
	return actual
}

// Heal restores health up to MaxHealth and returns actual amount healed.
func (p *Player) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if p.Health+actual > p.MaxHealth {
		actual = p.MaxHealth - p.Health
	}
	p.Health += actual
	return actual
}

// HasItem reports whether the inventory holds at least one unit of item.
func (p *Player) HasItem(item string) bool {
	for _, it := range p.Inventory {
		if it == item {
			return true
		}
	}
	return false
}

// CountItem returns how many units of item the inventory holds.
func (p *Player) CountItem(item string) int {
	n := 0
	for _, it := range p.Inventory {
		if it == item {
			n++
		}
	}
	return n
}

// AddItem appends one unit of item to the inventory.
func (p *Player) AddItem(item string) {
	p.Inventory = append(p.Inventory, item)
}

// RemoveItem removes the first unit of item. Returns false if none was held.
func (p *Player) RemoveItem(item string) bool {
	for i, it := range p.Inventory {
		if it == item {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// SpendGold deducts amount and returns false if the player cannot afford it.
func (p *Player) SpendGold(amount int) bool {
	if amount < 0 || p.Gold < amount {
		return false
	}
	p.Gold -= amount
	return true
}

// AddGold adds a non-negative amount of gold.
func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}
