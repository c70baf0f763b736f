package gamedata

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestLoadEnemies(t *testing.T) {
	enemies, err := LoadEnemies()
	if err != nil {
		t.Fatalf("Failed to load enemies: %v", err)
	}

	if len(enemies) != 4 {
		t.Errorf("Expected 4 enemies, got %d", len(enemies))
	}

	expected := map[string]EnemyDef{
		"Goblin": {Health: 30, Damage: 10, ExpReward: 20, GoldReward: 15},
		"Wolf":   {Health: 25, Damage: 15, ExpReward: 25, GoldReward: 20},
		"Bandit": {Health: 40, Damage: 20, ExpReward: 35, GoldReward: 30},
		"Dragon": {Health: 100, Damage: 30, ExpReward: 100, GoldReward: 150},
	}
	for _, e := range enemies {
		want, ok := expected[e.Name]
		if !ok {
			t.Errorf("Unexpected enemy %q", e.Name)
			continue
		}
		if e.Health != want.Health || e.Damage != want.Damage ||
			e.ExpReward != want.ExpReward || e.GoldReward != want.GoldReward {
			t.Errorf("Enemy %q stats = (%d,%d,%d,%d), want (%d,%d,%d,%d)", e.Name,
				e.Health, e.Damage, e.ExpReward, e.GoldReward,
				want.Health, want.Damage, want.ExpReward, want.GoldReward)
		}
	}
}

func TestEnemyRegistry(t *testing.T) {
	registry, err := LoadEnemyRegistry()
	require.NoError(t, err)

	assert.Equal(t, 4, registry.Count())
	assert.Equal(t, []string{"Goblin", "Wolf", "Bandit", "Dragon"}, registry.Names())

	goblin, ok := registry.GetByName("Goblin")
	require.True(t, ok)
	assert.Equal(t, "goblin", goblin.ID)

	_, ok = registry.GetByName("Orc")
	assert.False(t, ok)

	for _, def := range registry.All() {
		assert.Equal(t, 1, def.SpawnWeight, "%s should spawn uniformly", def.Name)
	}
}

func TestEnemyRegistryIsReadOnly(t *testing.T) {
	registry := MustLoadEnemyRegistry()

	goblin, _ := registry.GetByName("Goblin")
	goblin.Health = 1

	all := registry.All()
	all[0].Damage = 999

	again, _ := registry.GetByName("Goblin")
	assert.Equal(t, 30, again.Health)
	assert.Equal(t, 10, again.Damage)
}

func TestEnemyRegistrySpawnDeterministic(t *testing.T) {
	registry := MustLoadEnemyRegistry()

	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))

	for i := 0; i < 10; i++ {
		a, _ := registry.SpawnRandom(rng1)
		b, _ := registry.SpawnRandom(rng2)
		if a.ID != b.ID {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
	}
}

func TestEnemyRegistrySpawnCoversCatalog(t *testing.T) {
	registry := MustLoadEnemyRegistry()
	rapid.Check(t, func(rt *rapid.T) {
		roll := rapid.IntRange(0, registry.Count()-1).Draw(rt, "roll")
		def, ok := registry.SpawnRandom(fixedRoll(roll))
		require.True(rt, ok)
		assert.Equal(rt, registry.Names()[roll], def.Name)
	})
}

func TestNewEnemyRegistryRejectsInvalid(t *testing.T) {
	_, err := NewEnemyRegistry([]EnemyDef{{ID: "x", Name: "X", Health: 0, Damage: 1, SpawnWeight: 1}})
	assert.Error(t, err)

	dup := EnemyDef{ID: "x", Name: "X", Color: "red", Health: 1, Damage: 1, SpawnWeight: 1}
	_, err = NewEnemyRegistry([]EnemyDef{dup, dup})
	assert.Error(t, err)
}

func TestSpawnRandomEmpty(t *testing.T) {
	registry, err := NewEnemyRegistry(nil)
	require.NoError(t, err)
	_, ok := registry.SpawnRandom(fixedRoll(0))
	assert.False(t, ok)
}

func TestItemRegistry(t *testing.T) {
	registry, err := LoadItemRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{"Health Potion", "Better Sword", "Shield"}, registry.Names())

	prices := map[string]int{"Health Potion": 30, "Better Sword": 100, "Shield": 80}
	for name, price := range prices {
		def, ok := registry.GetByName(name)
		require.True(t, ok, name)
		assert.Equal(t, price, def.Price, name)
	}

	_, ok := registry.GetByName("exit")
	assert.False(t, ok)
}

func TestNewItemRegistryRejectsInvalid(t *testing.T) {
	_, err := NewItemRegistry([]ItemDef{{Name: "", Price: 1}})
	assert.Error(t, err)

	_, err = NewItemRegistry([]ItemDef{{Name: "Rock", Price: -1}})
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
		valid bool
	}{
		{"#FF0000", tcell.NewRGBColor(255, 0, 0), true},
		{"00ff00", tcell.NewRGBColor(0, 255, 0), true},
		{"red", tcell.ColorRed, true},
		{" Silver ", tcell.ColorSilver, true},
		{"", tcell.ColorDefault, false},
		{"invalid", tcell.ColorDefault, false},
		{"#FFF", tcell.ColorDefault, false},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		if tt.valid {
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, got, "input %q", tt.input)
		} else {
			assert.Error(t, err, "input %q", tt.input)
		}
	}
}

func TestEnemyDefRejectsUnknownColor(t *testing.T) {
	def := EnemyDef{ID: "x", Name: "X", Color: "plaid", Health: 1, Damage: 1, SpawnWeight: 1}
	assert.Error(t, def.Validate())

	def.Color = "#123456"
	assert.NoError(t, def.Validate())
}

func TestEnemyDefTCellColor(t *testing.T) {
	def := EnemyDef{Name: "Test", Color: "#FF0000"}
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), def.TCellColor())

	def.Color = "nope"
	assert.Equal(t, tcell.ColorRed, def.TCellColor())
}

type fixedRoll int

func (f fixedRoll) Intn(n int) int { return int(f) % n }
