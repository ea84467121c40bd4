package menu

import (
	"context"
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/foodiejunction/backend/internal/domain/menu"
	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
)

// MenuService handles menu browsing and catalog management
type MenuService struct {
	itemRepo menu.Repository
	eventBus shared.EventPublisher
	collator *collate.Collator
}

// NewMenuService creates a new MenuService
func NewMenuService(itemRepo menu.Repository, eventBus shared.EventPublisher) *MenuService {
	return &MenuService{
		itemRepo: itemRepo,
		eventBus: eventBus,
		collator: collate.New(language.English, collate.IgnoreCase),
	}
}

// List returns the customer-facing menu: available items only,
// filtered and sorted per the storefront controls
func (s *MenuService) List(ctx context.Context, filter ListFilter) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]menu.Item, 0, len(items))
	query := strings.ToLower(strings.TrimSpace(filter.Search))
	category := filter.Category
	if category == "" {
		category = CategoryAll
	}

	for _, item := range items {
		if !item.Available {
			continue
		}
		if category != CategoryAll && item.Category != category {
			continue
		}
		if query != "" && !item.MatchesQuery(query) {
			continue
		}
		list = append(list, item)
	}

	s.sortItems(list, filter.Sort)
	return ToItemResponses(list), nil
}

// ListAll returns every item including unavailable ones, for the admin view
func (s *MenuService) ListAll(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// GetByID retrieves a single menu item
func (s *MenuService) GetByID(ctx context.Context, id string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// Categories returns the distinct item categories, sorted, with the
// "all" sentinel first
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, item := range items {
		category := strings.TrimSpace(item.Category)
		if category == "" {
			continue
		}
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return s.collator.CompareString(categories[i], categories[j]) < 0
	})

	return append([]string{CategoryAll}, categories...), nil
}

// Create adds a new menu item
func (s *MenuService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	price := valueobject.NewMoneyUSD(req.Price)
	item, err := menu.NewItem(req.Name, req.Category, req.Description, req.Emoji, price, req.Rating, req.Featured)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToItemResponse(item)
	return &response, nil
}

// Update edits an existing menu item
func (s *MenuService) Update(ctx context.Context, id string, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := item.Name
	if req.Name != nil {
		name = *req.Name
	}
	category := item.Category
	if req.Category != nil {
		category = *req.Category
	}
	description := item.Description
	if req.Description != nil {
		description = *req.Description
	}
	emoji := item.Emoji
	if req.Emoji != nil {
		emoji = *req.Emoji
	}
	price := item.Price
	if req.Price != nil {
		price = valueobject.NewMoneyUSD(*req.Price)
	}
	rating := item.Rating
	if req.Rating != nil {
		rating = *req.Rating
	}
	featured := item.Featured
	if req.Featured != nil {
		featured = *req.Featured
	}

	if err := item.Update(name, category, description, emoji, price, rating, featured); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToItemResponse(item)
	return &response, nil
}

// SetAvailability toggles whether an item can be ordered
func (s *MenuService) SetAvailability(ctx context.Context, id string, available bool) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if available {
		item.Enable()
	} else {
		item.Disable()
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, item)

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes a menu item from the catalog. Deleting an id that is
// already gone is a no-op, so repeated deletes succeed quietly.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}

	item.MarkRemoved()

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvents(ctx, item)
	return nil
}

// sortItems orders the filtered list. The default "featured" sort puts
// featured items first, best rated within each group.
func (s *MenuService) sortItems(items []menu.Item, sortKey string) {
	switch sortKey {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.Amount().LessThan(items[j].Price.Amount())
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.Amount().GreaterThan(items[j].Price.Amount())
		})
	case SortRatingDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Featured != items[j].Featured {
				return items[i].Featured
			}
			return items[i].Rating > items[j].Rating
		})
	}
}

// publishEvents flushes the aggregate's pending events to the bus
func (s *MenuService) publishEvents(ctx context.Context, item *menu.Item) {
	events := item.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	item.ClearDomainEvents()
	// Event delivery failures must not fail the command; handlers log
	// their own errors.
	_ = s.eventBus.Publish(ctx, events...)
}
