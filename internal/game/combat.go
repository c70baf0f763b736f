package game

import (
	"context"

	"go.uber.org/zap"

	"github.com/samdwyer/fantasyquest/internal/combat"
	"github.com/samdwyer/fantasyquest/internal/entity"
	"github.com/samdwyer/fantasyquest/internal/ui"
)

// runCombat fights the enemy picked from the main menu.
func (g *Game) runCombat(ctx context.Context) (State, error) {
	enemy := entity.NewEnemyFromDef(g.enemy)
	enc := combat.NewEncounter(g.player, enemy, g.rng)

	g.console.PrintColor(enemy.Color(), "\nA %s appears!", enemy.Name)
	g.logger.Info("encounter started", zap.String("enemy", enemy.Name))

	outcome, err := combat.Run(ctx, enc, &combatDriver{g: g})
	if err != nil {
		return StateCombat, err
	}

	g.logger.Info("encounter ended",
		zap.String("enemy", enemy.Name),
		zap.Stringer("outcome", outcome),
		zap.Int("turns", enc.Turns()),
		zap.Int("health", g.player.Health),
	)

	if !outcome.ContinuesSession() {
		return StateGameOver, nil
	}
	return StateMainMenu, nil
}

// combatDriver connects an encounter to the console.
type combatDriver struct {
	g *Game
}

func (d *combatDriver) ChooseAction(ctx context.Context, enc *combat.Encounter) (combat.Action, error) {
	d.g.console.Print(ui.ToneTitle, "\nWhat would you like to do?")
	choice, err := d.g.console.Choose(ctx, "Choose", combat.Actions())
	if err != nil {
		return 0, err
	}
	return combat.ParseAction(choice)
}

func (d *combatDriver) TurnResolved(enc *combat.Encounter, res combat.TurnResult) {
	c := d.g.console
	name := enc.Enemy.Name

	switch res.Action {
	case combat.ActionAttack:
		c.Print(ui.ToneGood, "You deal %d damage to the %s!", res.DamageDealt, name)
		if res.Retaliated {
			c.Print(ui.ToneBad, "The %s deals %d damage to you!", name, res.DamageTaken)
		}
	case combat.ActionUsePotion:
		if res.PotionUsed {
			c.Print(ui.ToneGood, "You used a Health Potion and recovered %d health!", res.Healed)
		} else {
			c.Print(ui.ToneBad, "You don't have any Health Potions!")
		}
	case combat.ActionRun:
		if res.Outcome == combat.OutcomeFled {
			c.Print(ui.ToneWarn, "You successfully ran away!")
		} else {
			c.Print(ui.ToneBad, "You failed to run away!")
		}
	}

	if res.Outcome == combat.OutcomeVictory {
		d.victory(name, res)
	}
}

func (d *combatDriver) victory(name string, res combat.TurnResult) {
	c := d.g.console
	c.Print(ui.ToneGood, "\nYou defeated the %s!", name)
	c.Print(ui.ToneWarn, "You gained %d experience and %d gold!", res.Reward.Exp, res.Reward.Gold)

	if res.Reward.LeveledUp {
		c.Print(ui.ToneGood, "\nLevel Up! You are now level %d!", res.Reward.NewLevel)
		c.Print(ui.ToneGood, "Your maximum health has increased!")
		d.g.logger.Info("level up", zap.Int("level", res.Reward.NewLevel))
	}
}

func (d *combatDriver) ShowStatus(player *entity.Player) {
	d.g.displayStatus()
}
