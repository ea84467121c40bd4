package cart

import (
	"context"
	"errors"

	"github.com/foodiejunction/backend/internal/domain/cart"
	"github.com/foodiejunction/backend/internal/domain/menu"
	"github.com/foodiejunction/backend/internal/domain/shared"
)

// CartService handles the storefront's single active cart
type CartService struct {
	cartRepo cart.Repository
	itemRepo menu.Repository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo cart.Repository, itemRepo menu.Repository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

// Get returns the current cart with computed totals
func (s *CartService) Get(ctx context.Context) (*CartResponse, error) {
	c, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	response := ToCartResponse(c)
	return &response, nil
}

// AddItem adds one unit of a menu item to the cart. Adding an unknown
// or unavailable item leaves the cart untouched, matching the
// storefront's silent handling of stale add buttons.
func (s *CartService) AddItem(ctx context.Context, itemID string) (*CartResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return s.Get(ctx)
		}
		return nil, err
	}
	if !item.IsOrderable() {
		return s.Get(ctx)
	}

	c, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.AddLine(item.ID, item.Name, item.Price)

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCartResponse(c)
	return &response, nil
}

// ChangeQuantity adjusts a line's quantity by delta. A line dropping
// to zero or below is removed.
func (s *CartService) ChangeQuantity(ctx context.Context, itemID string, delta int) (*CartResponse, error) {
	c, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.ChangeQuantity(itemID, delta)

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCartResponse(c)
	return &response, nil
}

// RemoveItem removes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, itemID string) (*CartResponse, error) {
	c, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.RemoveLine(itemID)

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCartResponse(c)
	return &response, nil
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context) (*CartResponse, error) {
	c, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.Clear()

	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCartResponse(c)
	return &response, nil
}
