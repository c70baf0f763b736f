package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/samdwyer/fantasyquest/internal/entity"
	"github.com/samdwyer/fantasyquest/internal/gamedata"
)

func newShop(t testing.TB) *Shop {
	catalog, err := gamedata.LoadItemRegistry()
	require.NoError(t, err)
	return New(catalog)
}

func TestChoices(t *testing.T) {
	s := newShop(t)
	assert.Equal(t, []string{"Health Potion", "Better Sword", "Shield", "exit"}, s.Choices())
	assert.Len(t, s.Items(), 3)
}

func TestPurchaseSuccess(t *testing.T) {
	s := newShop(t)
	p := entity.NewPlayer("A")

	def, err := s.Purchase(context.Background(), p, "Health Potion")

	require.NoError(t, err)
	assert.Equal(t, 30, def.Price)
	assert.Equal(t, 20, p.Gold)
	assert.Equal(t, []string{entity.HealthPotion, entity.HealthPotion}, p.Inventory)
}

func TestPurchaseShieldWithFiftyGoldFails(t *testing.T) {
	s := newShop(t)
	p := entity.NewPlayer("A")

	_, err := s.Purchase(context.Background(), p, "Shield")

	assert.ErrorIs(t, err, ErrInsufficientGold)
	assert.Equal(t, 50, p.Gold)
	assert.Equal(t, []string{entity.HealthPotion}, p.Inventory)
}

func TestPurchaseExactGold(t *testing.T) {
	s := newShop(t)
	p := entity.NewPlayer("A")
	p.Gold = 100

	_, err := s.Purchase(context.Background(), p, "Better Sword")

	require.NoError(t, err)
	assert.Equal(t, 0, p.Gold)
	assert.Equal(t, []string{entity.HealthPotion, "Better Sword"}, p.Inventory)
}

func TestPurchaseUnknownItem(t *testing.T) {
	s := newShop(t)
	p := entity.NewPlayer("A")

	_, err := s.Purchase(context.Background(), p, ExitChoice)

	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Equal(t, 50, p.Gold)
	assert.Len(t, p.Inventory, 1)
}

func TestPurchaseProperty(t *testing.T) {
	s := newShop(t)
	names := s.Choices()[:3]
	rapid.Check(t, func(rt *rapid.T) {
		p := entity.NewPlayer("A")
		p.Gold = rapid.IntRange(0, 300).Draw(rt, "gold")
		item := rapid.SampledFrom(names).Draw(rt, "item")
		def, _ := gamedata.MustLoadItemRegistry().GetByName(item)
		gold, count := p.Gold, p.CountItem(item)

		_, err := s.Purchase(context.Background(), p, item)

		if gold >= def.Price {
			require.NoError(rt, err)
			assert.Equal(rt, gold-def.Price, p.Gold)
			assert.Equal(rt, count+1, p.CountItem(item))
		} else {
			assert.ErrorIs(rt, err, ErrInsufficientGold)
			assert.Equal(rt, gold, p.Gold)
			assert.Equal(rt, count, p.CountItem(item))
		}
	})
}
