package game

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/samdwyer/fantasyquest/internal/shop"
	"github.com/samdwyer/fantasyquest/internal/ui"
)

// visitShop runs exactly one transaction and returns to the main menu.
func (g *Game) visitShop(ctx context.Context) (State, error) {
	g.console.Print(ui.ToneWarn, "\nWelcome to the Shop!")

	items := g.shop.Items()
	rows := make([][2]string, len(items))
	for i, it := range items {
		rows[i] = [2]string{it.Name, strconv.Itoa(it.Price)}
	}
	g.console.Table("Shop Items", [2]string{"Item", "Price"}, rows)

	choice, err := g.console.Choose(ctx, "What would you like to buy? (or type 'exit' to leave)", g.shop.Choices())
	if err != nil {
		return StateShop, err
	}
	if choice == shop.ExitChoice {
		return StateMainMenu, nil
	}

	def, err := g.shop.Purchase(ctx, g.player, choice)
	switch {
	case errors.Is(err, shop.ErrInsufficientGold):
		g.console.Print(ui.ToneBad, "Not enough gold!")
		g.logger.Info("purchase declined", zap.String("item", choice), zap.Int("gold", g.player.Gold))
	case err != nil:
		return StateShop, err
	default:
		g.console.Print(ui.ToneGood, "You bought %s!", def.Name)
		g.logger.Info("purchase", zap.String("item", def.Name), zap.Int("price", def.Price))
	}
	return StateMainMenu, nil
}
