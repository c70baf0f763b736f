package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/fantasyquest/internal/gamedata"
)

// Enemy is a per-encounter copy of an enemy template.
// Only Health changes during combat.
type Enemy struct {
	Def       gamedata.EnemyDef // Template this instance was cloned from
	Name      string
	Health    int
	MaxHealth int
}

// NewEnemyFromDef creates a fresh enemy instance from a catalog template.
func NewEnemyFromDef(def gamedata.EnemyDef) *Enemy {
	return &Enemy{
		Def:       def,
		Name:      def.Name,
		Health:    def.Health,
		MaxHealth: def.Health,
	}
}

// IsAlive returns true if the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }

// TakeDamage reduces health and returns actual damage taken.
func (e *Enemy) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > e.Health {
		actual = e.Health
	}
	e.Health -= actual
	return actual
}

// Damage returns the upper bound of this enemy's retaliation roll.
func (e *Enemy) Damage() int { return e.Def.Damage }

// ExpReward returns the experience granted for defeating this enemy.
func (e *Enemy) ExpReward() int { return e.Def.ExpReward }

// GoldReward returns the gold granted for defeating this enemy.
func (e *Enemy) GoldReward() int { return e.Def.GoldReward }

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	return e.Def.TCellColor()
}
