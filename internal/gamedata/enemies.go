package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// EnemyDef defines an enemy template loaded from YAML.
type EnemyDef struct {
	ID          string `yaml:"id"`           // Unique identifier (e.g., "goblin")
	Name        string `yaml:"name"`         // Display name (e.g., "Goblin")
	Color       string `yaml:"color"`        // "#RRGGBB" or a tcell color name
	Health      int    `yaml:"health"`       // Starting health of each instance
	Damage      int    `yaml:"damage"`       // Upper bound of a retaliation roll
	ExpReward   int    `yaml:"exp_reward"`   // Experience granted on defeat
	GoldReward  int    `yaml:"gold_reward"`  // Gold granted on defeat
	SpawnWeight int    `yaml:"spawn_weight"` // Relative spawn frequency
}

// Validate checks that the definition satisfies basic invariants.
func (e *EnemyDef) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("enemy: id must not be empty")
	}
	if e.Name == "" {
		return fmt.Errorf("enemy %q: name must not be empty", e.ID)
	}
	if e.Health < 1 {
		return fmt.Errorf("enemy %q: health must be >= 1, got %d", e.ID, e.Health)
	}
	if e.Damage < 1 {
		return fmt.Errorf("enemy %q: damage must be >= 1, got %d", e.ID, e.Damage)
	}
	if e.ExpReward < 0 || e.GoldReward < 0 {
		return fmt.Errorf("enemy %q: rewards must not be negative", e.ID)
	}
	if _, err := ParseColor(e.Color); err != nil {
		return fmt.Errorf("enemy %q: %w", e.ID, err)
	}
	if e.SpawnWeight < 1 {
		return fmt.Errorf("enemy %q: spawn_weight must be >= 1, got %d", e.ID, e.SpawnWeight)
	}
	return nil
}

// TCellColor returns the display color, falling back to red.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseColor(e.Color)
	if err != nil {
		return tcell.ColorRed
	}
	return color
}

// EnemiesFile represents the structure of enemies.yaml.
type EnemiesFile struct {
	Enemies []EnemyDef `yaml:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.yaml file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
