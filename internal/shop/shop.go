// Package shop implements the gold-for-item exchange.
package shop

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/fantasyquest/internal/entity"
	"github.com/samdwyer/fantasyquest/internal/gamedata"
	"github.com/samdwyer/fantasyquest/internal/telemetry"
)

// ExitChoice is the prompt option that leaves the shop without buying.
const ExitChoice = "exit"

var (
	// ErrUnknownItem is returned for names not in the catalog.
	ErrUnknownItem = errors.New("unknown item")
	// ErrInsufficientGold is returned when the player cannot afford an item.
	ErrInsufficientGold = errors.New("not enough gold")
)

// Shop sells items from a fixed catalog.
type Shop struct {
	catalog *gamedata.ItemRegistry
}

// New creates a shop over the given catalog.
func New(catalog *gamedata.ItemRegistry) *Shop {
	return &Shop{catalog: catalog}
}

// Items returns the catalog in display order.
func (s *Shop) Items() []gamedata.ItemDef {
	return s.catalog.All()
}

// Choices returns the prompt options: every item name followed by ExitChoice.
func (s *Shop) Choices() []string {
	return append(s.catalog.Names(), ExitChoice)
}

// Purchase sells one unit of item to the player. On success the price is
// deducted and the item appended to the inventory; on any error the player
// is left untouched.
func (s *Shop) Purchase(ctx context.Context, p *entity.Player, item string) (gamedata.ItemDef, error) {
	_, span := telemetry.Tracer("shop").Start(ctx, "shop.purchase")
	defer span.End()
	span.SetAttributes(
		attribute.String("item", item),
		attribute.Int("gold_before", p.Gold),
	)

	def, ok := s.catalog.GetByName(item)
	if !ok {
		span.SetAttributes(attribute.Bool("failed", true))
		return gamedata.ItemDef{}, fmt.Errorf("%w: %q", ErrUnknownItem, item)
	}
	span.SetAttributes(attribute.Int("price", def.Price))

	if !p.SpendGold(def.Price) {
		span.SetAttributes(attribute.Bool("failed", true))
		return def, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientGold, def.Name, def.Price, p.Gold)
	}
	p.AddItem(def.Name)
	return def, nil
}
