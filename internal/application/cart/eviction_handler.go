package cart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/cart"
	"github.com/foodiejunction/backend/internal/domain/menu"
	"github.com/foodiejunction/backend/internal/domain/shared"
)

// EvictionHandler drops cart lines whose menu item was deleted or
// taken off the storefront, so a stale cart cannot check out items
// that no longer exist.
type EvictionHandler struct {
	cartRepo cart.Repository
	logger   *zap.Logger
}

// NewEvictionHandler creates a new handler for item removal events
func NewEvictionHandler(cartRepo cart.Repository, logger *zap.Logger) *EvictionHandler {
	return &EvictionHandler{
		cartRepo: cartRepo,
		logger:   logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *EvictionHandler) EventTypes() []string {
	return []string{menu.EventTypeItemRemoved, menu.EventTypeItemDisabled}
}

// Handle evicts the affected item from the cart
func (h *EvictionHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	var itemID, name string
	switch e := event.(type) {
	case *menu.ItemRemovedEvent:
		itemID, name = e.ItemID, e.Name
	case *menu.ItemDisabledEvent:
		itemID, name = e.ItemID, e.Name
	default:
		return fmt.Errorf("unexpected event type: %s", event.EventType())
	}

	c, err := h.cartRepo.Load(ctx)
	if err != nil {
		return err
	}

	if !c.EvictItem(itemID) {
		return nil
	}

	if err := h.cartRepo.Save(ctx, c); err != nil {
		return err
	}

	h.logger.Info("evicted item from cart",
		zap.String("item_id", itemID),
		zap.String("name", name),
		zap.String("event_type", event.EventType()),
	)
	return nil
}
