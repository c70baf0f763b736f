// Package combat provides the turn-based encounter rules for Fantasy Quest.
package combat

import (
	"fmt"

	"github.com/samdwyer/fantasyquest/internal/entity"
	"github.com/samdwyer/fantasyquest/internal/progression"
)

// Roll bounds and potion strength.
const (
	PlayerMinDamage = 15
	PlayerMaxDamage = 25
	EnemyMinDamage  = 5
	PotionHeal      = 50
)

// Source is the subset of *rand.Rand used for combat rolls.
type Source interface {
	Intn(n int) int
}

// Action is a player's choice for one combat turn.
type Action int

const (
	ActionAttack Action = iota
	ActionUsePotion
	ActionRun
)

// String returns the prompt text for the action.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionUsePotion:
		return "use potion"
	case ActionRun:
		return "run"
	default:
		return "unknown"
	}
}

// Actions returns the prompt choices in display order.
func Actions() []string {
	return []string{ActionAttack.String(), ActionUsePotion.String(), ActionRun.String()}
}

// ParseAction maps prompt text back to an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "attack":
		return ActionAttack, nil
	case "use potion":
		return ActionUsePotion, nil
	case "run":
		return ActionRun, nil
	default:
		return 0, fmt.Errorf("unknown combat action %q", s)
	}
}

// Outcome is the state of an encounter.
type Outcome int

const (
	// OutcomeOngoing - neither side has won and the player is still here
	OutcomeOngoing Outcome = iota
	// OutcomeVictory - enemy health reached zero
	OutcomeVictory
	// OutcomeDefeat - player health reached zero
	OutcomeDefeat
	// OutcomeFled - the player escaped
	OutcomeFled
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeFled:
		return "fled"
	default:
		return "unknown"
	}
}

// Ended reports whether the encounter is over.
func (o Outcome) Ended() bool {
	return o != OutcomeOngoing
}

// ContinuesSession reports whether the game goes on after this outcome.
func (o Outcome) ContinuesSession() bool {
	return o == OutcomeVictory || o == OutcomeFled
}

// TurnResult contains everything that happened during one turn.
type TurnResult struct {
	Action      Action
	DamageDealt int  // Attack roll against the enemy
	DamageTaken int  // Retaliation roll against the player
	Retaliated  bool // Only attack turns that leave the enemy standing
	Healed      int  // Health actually restored by a potion
	PotionUsed  bool
	Outcome     Outcome
	Reward      progression.Reward // Populated on victory
}

// RollPlayerDamage rolls uniformly in [PlayerMinDamage, PlayerMaxDamage].
func RollPlayerDamage(src Source) int {
	return PlayerMinDamage + src.Intn(PlayerMaxDamage-PlayerMinDamage+1)
}

// RollEnemyDamage rolls uniformly in [EnemyMinDamage, max]. A max below the
// floor always rolls the floor.
func RollEnemyDamage(src Source, max int) int {
	if max <= EnemyMinDamage {
		return EnemyMinDamage
	}
	return EnemyMinDamage + src.Intn(max-EnemyMinDamage+1)
}

// RollFlee returns true on a successful escape (even odds).
func RollFlee(src Source) bool {
	return src.Intn(2) == 0
}

// Encounter is one fight between the player and a single enemy instance.
type Encounter struct {
	Player  *entity.Player
	Enemy   *entity.Enemy
	src     Source
	turns   int
	outcome Outcome
}

// NewEncounter creates an encounter. The enemy must be a fresh instance.
func NewEncounter(player *entity.Player, enemy *entity.Enemy, src Source) *Encounter {
	return &Encounter{
		Player:  player,
		Enemy:   enemy,
		src:     src,
		outcome: OutcomeOngoing,
	}
}

// Turns returns the number of turns resolved so far.
func (e *Encounter) Turns() int { return e.turns }

// Outcome returns the current encounter state.
func (e *Encounter) Outcome() Outcome { return e.outcome }

// Resolve applies one player action and, on attack turns, the enemy's
// retaliation. Potion and failed-flight turns give the enemy no swing.
// Resolving after the encounter ended changes nothing.
func (e *Encounter) Resolve(action Action) TurnResult {
	result := TurnResult{Action: action, Outcome: e.outcome}
	if e.outcome.Ended() {
		return result
	}
	e.turns++

	switch action {
	case ActionAttack:
		e.resolveAttack(&result)
	case ActionUsePotion:
		e.resolvePotion(&result)
	case ActionRun:
		if RollFlee(e.src) {
			e.outcome = OutcomeFled
		}
	}

	result.Outcome = e.outcome
	return result
}

// resolveAttack handles the attack action and any retaliation.
func (e *Encounter) resolveAttack(result *TurnResult) {
	result.DamageDealt = RollPlayerDamage(e.src)
	e.Enemy.TakeDamage(result.DamageDealt)

	if !e.Enemy.IsAlive() {
		e.outcome = OutcomeVictory
		result.Reward = progression.AwardVictory(e.Player, e.Enemy)
		return
	}

	// Retaliation is bounded by the template's damage stat, never mutated.
	result.DamageTaken = RollEnemyDamage(e.src, e.Enemy.Damage())
	result.Retaliated = true
	e.Player.TakeDamage(result.DamageTaken)

	if !e.Player.IsAlive() {
		e.outcome = OutcomeDefeat
	}
}

// resolvePotion consumes one Health Potion if the player carries one.
func (e *Encounter) resolvePotion(result *TurnResult) {
	if !e.Player.RemoveItem(entity.HealthPotion) {
		return
	}
	result.PotionUsed = true
	result.Healed = e.Player.Heal(PotionHeal)
}
