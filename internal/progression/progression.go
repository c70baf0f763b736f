// Package progression applies experience, gold, and level-up rules after a victory.
package progression

import "github.com/samdwyer/fantasyquest/internal/entity"

const (
	// ExpPerLevel is the experience consumed by one level-up.
	ExpPerLevel = 100
	// MaxHealthPerLevel is the max health gained on each level-up.
	MaxHealthPerLevel = 20
)

// Reward describes what a victory granted.
type Reward struct {
	Exp       int
	Gold      int
	LeveledUp bool
	NewLevel  int
}

// AwardVictory credits the defeated enemy's rewards to the player and applies
// at most one level-up. Leftover experience carries over, so Exp may still be
// ExpPerLevel or more afterwards.
func AwardVictory(p *entity.Player, e *entity.Enemy) Reward {
	reward := Reward{
		Exp:      e.ExpReward(),
		Gold:     e.GoldReward(),
		NewLevel: p.Level,
	}

	p.Exp += reward.Exp
	p.AddGold(reward.Gold)

	if p.Exp >= ExpPerLevel {
		LevelUp(p)
		reward.LeveledUp = true
		reward.NewLevel = p.Level
	}
	return reward
}

// LevelUp raises the player one level and fully restores health.
func LevelUp(p *entity.Player) {
	p.Level++
	p.Exp -= ExpPerLevel
	p.MaxHealth += MaxHealthPerLevel
	p.Health = p.MaxHealth
}
