package menu

import (
	"github.com/foodiejunction/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeItem = "MenuItem"

// Event type constants
const (
	EventTypeItemCreated  = "MenuItemCreated"
	EventTypeItemUpdated  = "MenuItemUpdated"
	EventTypeItemDisabled = "MenuItemDisabled"
	EventTypeItemEnabled  = "MenuItemEnabled"
	EventTypeItemRemoved  = "MenuItemRemoved"
)

// ItemCreatedEvent is published when a new menu item is created
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, AggregateTypeItem, item.ID),
		ItemID:          item.ID,
		Name:            item.Name,
		Category:        item.Category,
	}
}

// ItemUpdatedEvent is published when a menu item is edited
type ItemUpdatedEvent struct {
	shared.BaseDomainEvent
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

// NewItemUpdatedEvent creates a new ItemUpdatedEvent
func NewItemUpdatedEvent(item *Item) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemUpdated, AggregateTypeItem, item.ID),
		ItemID:          item.ID,
		Name:            item.Name,
		Price:           item.Price.StringFixed(2),
	}
}

// ItemDisabledEvent is published when a menu item is taken off the storefront
type ItemDisabledEvent struct {
	shared.BaseDomainEvent
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// NewItemDisabledEvent creates a new ItemDisabledEvent
func NewItemDisabledEvent(item *Item) *ItemDisabledEvent {
	return &ItemDisabledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemDisabled, AggregateTypeItem, item.ID),
		ItemID:          item.ID,
		Name:            item.Name,
	}
}

// ItemEnabledEvent is published when a menu item becomes orderable again
type ItemEnabledEvent struct {
	shared.BaseDomainEvent
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// NewItemEnabledEvent creates a new ItemEnabledEvent
func NewItemEnabledEvent(item *Item) *ItemEnabledEvent {
	return &ItemEnabledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemEnabled, AggregateTypeItem, item.ID),
		ItemID:          item.ID,
		Name:            item.Name,
	}
}

// ItemRemovedEvent is published when a menu item is deleted
type ItemRemovedEvent struct {
	shared.BaseDomainEvent
	ItemID string `json:"item_id"`
	Name   string `json:"name"`
}

// NewItemRemovedEvent creates a new ItemRemovedEvent
func NewItemRemovedEvent(item *Item) *ItemRemovedEvent {
	return &ItemRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemRemoved, AggregateTypeItem, item.ID),
		ItemID:          item.ID,
		Name:            item.Name,
	}
}
