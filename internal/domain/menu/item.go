package menu

import (
	"strings"

	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
)

// IDPrefix is the prefix used for menu item identifiers
const IDPrefix = "item"

// Item is the menu item aggregate root
type Item struct {
	shared.BaseAggregateRoot
	Name        string
	Category    string
	Description string
	Emoji       string
	Price       valueobject.Money
	// Rating is display data, stored as given without range checks.
	Rating      float64
	Featured    bool
	Available   bool
}

// NewItem creates a new menu item
func NewItem(name, category, description, emoji string, price valueobject.Money, rating float64, featured bool) (*Item, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if err := validateItemCategory(category); err != nil {
		return nil, err
	}
	if err := validateItemPrice(price); err != nil {
		return nil, err
	}

	item := &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(IDPrefix),
		Name:              strings.TrimSpace(name),
		Category:          strings.TrimSpace(category),
		Description:       strings.TrimSpace(description),
		Emoji:             emoji,
		Price:             price,
		Rating:            rating,
		Featured:          featured,
		Available:         true,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))
	return item, nil
}

// Update modifies the editable attributes of the item
func (i *Item) Update(name, category, description, emoji string, price valueobject.Money, rating float64, featured bool) error {
	if err := validateItemName(name); err != nil {
		return err
	}
	if err := validateItemCategory(category); err != nil {
		return err
	}
	if err := validateItemPrice(price); err != nil {
		return err
	}

	i.Name = strings.TrimSpace(name)
	i.Category = strings.TrimSpace(category)
	i.Description = strings.TrimSpace(description)
	i.Emoji = emoji
	i.Price = price
	i.Rating = rating
	i.Featured = featured

	i.AddDomainEvent(NewItemUpdatedEvent(i))
	return nil
}

// Disable takes the item off the storefront without removing it
func (i *Item) Disable() {
	if !i.Available {
		return
	}
	i.Available = false
	i.AddDomainEvent(NewItemDisabledEvent(i))
}

// Enable puts the item back on the storefront
func (i *Item) Enable() {
	if i.Available {
		return
	}
	i.Available = true
	i.AddDomainEvent(NewItemEnabledEvent(i))
}

// MarkRemoved records the removal event before the item is deleted
func (i *Item) MarkRemoved() {
	i.AddDomainEvent(NewItemRemovedEvent(i))
}

// IsOrderable reports whether the item can currently be added to a cart
func (i *Item) IsOrderable() bool {
	return i.Available
}

// MatchesQuery reports whether the item matches a case-insensitive
// substring search over its name, category, and description
func (i *Item) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	haystack := strings.ToLower(i.Name + " " + i.Category + " " + i.Description)
	return strings.Contains(haystack, q)
}

func validateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Item name is required")
	}
	if len(name) > 120 {
		return shared.NewDomainError("VALIDATION_ERROR", "Item name must not exceed 120 characters")
	}
	return nil
}

func validateItemCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return shared.NewDomainError("VALIDATION_ERROR", "Item category is required")
	}
	return nil
}

func validateItemPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("VALIDATION_ERROR", "Item price must not be negative")
	}
	return nil
}
