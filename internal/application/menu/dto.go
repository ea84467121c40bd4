package menu

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/foodiejunction/backend/internal/domain/menu"
)

// Sort keys accepted by ListFilter
const (
	SortFeatured   = "featured"
	SortPriceAsc   = "priceAsc"
	SortPriceDesc  = "priceDesc"
	SortRatingDesc = "ratingDesc"
)

// CategoryAll is the filter value matching every category
const CategoryAll = "all"

// CreateItemRequest represents a request to add a menu item
type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"max=2000"`
	Emoji       string          `json:"emoji" binding:"max=16"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Rating      float64         `json:"rating"`
	Featured    bool            `json:"featured"`
}

// UpdateItemRequest represents a request to edit a menu item
type UpdateItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Emoji       *string          `json:"emoji" binding:"omitempty,max=16"`
	Price       *decimal.Decimal `json:"price"`
	Rating      *float64         `json:"rating"`
	Featured    *bool            `json:"featured"`
}

// ListFilter holds the storefront's search, category and sort controls
type ListFilter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

// ItemResponse represents a menu item in API responses
type ItemResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Emoji       string          `json:"emoji"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	Featured    bool            `json:"featured"`
	Available   bool            `json:"available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(item *menu.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Category:    item.Category,
		Description: item.Description,
		Emoji:       item.Emoji,
		Price:       item.Price.Amount(),
		Rating:      item.Rating,
		Featured:    item.Featured,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// ToItemResponses converts a slice of domain items to response DTOs
func ToItemResponses(items []menu.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToItemResponse(&items[i]))
	}
	return responses
}
