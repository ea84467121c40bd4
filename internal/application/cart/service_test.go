package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/cart"
	"github.com/foodiejunction/backend/internal/domain/menu"
	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
)

// fakeCartRepository keeps the cart in memory for service tests
type fakeCartRepository struct {
	cart *cart.Cart
}

func (r *fakeCartRepository) Load(_ context.Context) (*cart.Cart, error) {
	if r.cart == nil {
		r.cart = cart.NewCart()
	}
	return r.cart, nil
}

func (r *fakeCartRepository) Save(_ context.Context, c *cart.Cart) error {
	r.cart = c
	return nil
}

// fakeItemRepository serves a fixed set of menu items
type fakeItemRepository struct {
	items map[string]*menu.Item
}

func (r *fakeItemRepository) FindByID(_ context.Context, id string) (*menu.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return item, nil
}

func (r *fakeItemRepository) FindAll(_ context.Context) ([]menu.Item, error) {
	items := make([]menu.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, *item)
	}
	return items, nil
}

func (r *fakeItemRepository) Save(_ context.Context, item *menu.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepository) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepository) Replace(_ context.Context, items []menu.Item) error {
	r.items = make(map[string]*menu.Item, len(items))
	for i := range items {
		r.items[items[i].ID] = &items[i]
	}
	return nil
}

func newTestItem(t *testing.T, name string, price float64, available bool) *menu.Item {
	t.Helper()
	item, err := menu.NewItem(name, "Test", "", "", valueobject.NewMoneyUSDFromFloat(price), 4.5, false)
	require.NoError(t, err)
	item.Available = available
	item.ClearDomainEvents()
	return item
}

func newTestService(t *testing.T) (*CartService, *fakeCartRepository, *menu.Item, *menu.Item) {
	t.Helper()
	burger := newTestItem(t, "Classic Cheeseburger", 8.99, true)
	pizza := newTestItem(t, "Margherita Pizza", 11.50, true)
	cartRepo := &fakeCartRepository{}
	itemRepo := &fakeItemRepository{items: map[string]*menu.Item{
		burger.ID: burger,
		pizza.ID:  pizza,
	}}
	return NewCartService(cartRepo, itemRepo), cartRepo, burger, pizza
}

func TestCartServiceAddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a line and computes totals", func(t *testing.T) {
		svc, _, burger, _ := newTestService(t)

		resp, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)

		require.Len(t, resp.Lines, 1)
		assert.Equal(t, 1, resp.ItemCount)
		assert.True(t, decimal.NewFromFloat(8.99).Equal(resp.Subtotal), "subtotal %s", resp.Subtotal)
		assert.True(t, decimal.NewFromFloat(0.72).Equal(resp.Tax), "tax %s", resp.Tax)
		assert.True(t, decimal.NewFromFloat(9.71).Equal(resp.Total), "total %s", resp.Total)
	})

	t.Run("repeat add increments quantity", func(t *testing.T) {
		svc, _, burger, pizza := newTestService(t)

		_, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)
		resp, err := svc.AddItem(ctx, pizza.ID)
		require.NoError(t, err)

		require.Len(t, resp.Lines, 2)
		assert.Equal(t, 3, resp.ItemCount)
		assert.True(t, decimal.NewFromFloat(29.48).Equal(resp.Subtotal), "subtotal %s", resp.Subtotal)
		assert.True(t, decimal.NewFromFloat(2.36).Equal(resp.Tax), "tax %s", resp.Tax)
		assert.True(t, decimal.NewFromFloat(31.84).Equal(resp.Total), "total %s", resp.Total)
	})

	t.Run("unknown item is a silent no-op", func(t *testing.T) {
		svc, cartRepo, _, _ := newTestService(t)

		resp, err := svc.AddItem(ctx, "item_missing")
		require.NoError(t, err)

		assert.Empty(t, resp.Lines)
		assert.True(t, cartRepo.cart == nil || cartRepo.cart.IsEmpty())
	})

	t.Run("unavailable item is a silent no-op", func(t *testing.T) {
		svc, _, burger, _ := newTestService(t)
		burger.Available = false

		resp, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)
		assert.Empty(t, resp.Lines)
	})

	t.Run("snapshot survives a later price change", func(t *testing.T) {
		svc, _, burger, _ := newTestService(t)

		_, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)

		burger.Price = valueobject.NewMoneyUSDFromFloat(99.99)

		resp, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)

		require.Len(t, resp.Lines, 1)
		assert.Equal(t, 2, resp.Lines[0].Quantity)
		assert.True(t, decimal.NewFromFloat(8.99).Equal(resp.Lines[0].UnitPrice))
	})
}

func TestCartServiceChangeQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("decrement to zero removes the line", func(t *testing.T) {
		svc, _, burger, _ := newTestService(t)

		_, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)

		resp, err := svc.ChangeQuantity(ctx, burger.ID, -1)
		require.NoError(t, err)
		assert.Empty(t, resp.Lines)
	})

	t.Run("increment grows the line", func(t *testing.T) {
		svc, _, burger, _ := newTestService(t)

		_, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)

		resp, err := svc.ChangeQuantity(ctx, burger.ID, 2)
		require.NoError(t, err)
		require.Len(t, resp.Lines, 1)
		assert.Equal(t, 3, resp.Lines[0].Quantity)
	})

	t.Run("unknown line is ignored", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		resp, err := svc.ChangeQuantity(ctx, "item_missing", 1)
		require.NoError(t, err)
		assert.Empty(t, resp.Lines)
	})
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	svc, _, burger, pizza := newTestService(t)

	_, err := svc.AddItem(ctx, burger.ID)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, pizza.ID)
	require.NoError(t, err)

	resp, err := svc.RemoveItem(ctx, burger.ID)
	require.NoError(t, err)
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, pizza.ID, resp.Lines[0].ItemID)

	resp, err = svc.Clear(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Lines)
	assert.True(t, resp.Total.IsZero())
}

func TestEvictionHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("removal event evicts the cart line", func(t *testing.T) {
		svc, cartRepo, burger, pizza := newTestService(t)

		_, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)
		_, err = svc.AddItem(ctx, pizza.ID)
		require.NoError(t, err)

		handler := NewEvictionHandler(cartRepo, zap.NewNop())
		require.NoError(t, handler.Handle(ctx, menu.NewItemRemovedEvent(burger)))

		resp, err := svc.Get(ctx)
		require.NoError(t, err)
		require.Len(t, resp.Lines, 1)
		assert.Equal(t, pizza.ID, resp.Lines[0].ItemID)
	})

	t.Run("disable event evicts the cart line", func(t *testing.T) {
		svc, cartRepo, burger, _ := newTestService(t)

		_, err := svc.AddItem(ctx, burger.ID)
		require.NoError(t, err)

		handler := NewEvictionHandler(cartRepo, zap.NewNop())
		require.NoError(t, handler.Handle(ctx, menu.NewItemDisabledEvent(burger)))

		resp, err := svc.Get(ctx)
		require.NoError(t, err)
		assert.Empty(t, resp.Lines)
	})

	t.Run("event for an item not in the cart is a no-op", func(t *testing.T) {
		svc, cartRepo, burger, pizza := newTestService(t)

		_, err := svc.AddItem(ctx, pizza.ID)
		require.NoError(t, err)

		handler := NewEvictionHandler(cartRepo, zap.NewNop())
		require.NoError(t, handler.Handle(ctx, menu.NewItemRemovedEvent(burger)))

		resp, err := svc.Get(ctx)
		require.NoError(t, err)
		require.Len(t, resp.Lines, 1)
	})

	t.Run("subscribes to removal and disable events", func(t *testing.T) {
		handler := NewEvictionHandler(&fakeCartRepository{}, zap.NewNop())
		assert.ElementsMatch(t,
			[]string{menu.EventTypeItemRemoved, menu.EventTypeItemDisabled},
			handler.EventTypes(),
		)
	})
}
