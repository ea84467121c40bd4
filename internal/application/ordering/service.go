package ordering

import (
	"context"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/cart"
	"github.com/foodiejunction/backend/internal/domain/identity"
	"github.com/foodiejunction/backend/internal/domain/ordering"
	"github.com/foodiejunction/backend/internal/domain/shared"
)

// OrderService handles checkout and the order ledger
type OrderService struct {
	orderRepo   ordering.Repository
	cartRepo    cart.Repository
	userRepo    identity.UserRepository
	profileRepo identity.ProfileRepository
	sessionRepo identity.SessionRepository
	eventBus    shared.EventPublisher
	logger      *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo ordering.Repository,
	cartRepo cart.Repository,
	userRepo identity.UserRepository,
	profileRepo identity.ProfileRepository,
	sessionRepo identity.SessionRepository,
	eventBus shared.EventPublisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		eventBus:    eventBus,
		logger:      logger,
	}
}

// Checkout turns the current cart into a placed order. Payment is
// simulated, so a non-empty cart always succeeds. The cart is cleared
// after the order is written.
func (s *OrderService) Checkout(ctx context.Context) (*OrderResponse, error) {
	c, err := s.cartRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	profile, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	name := s.signedInName(ctx)
	if name == "" {
		name = profile.Name
	}

	order, err := ordering.NewOrder(c, name, profile.Phone, profile.Address)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	c.Clear()
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("customer_name", order.CustomerName),
		zap.String("total", order.Total.StringFixed(2)),
	)

	response := ToOrderResponse(order)
	return &response, nil
}

// ListAll returns every order, most recent first, for the admin ledger
func (s *OrderService) ListAll(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// ListMine returns the orders whose customer name matches the current
// delivery profile, most recent first
func (s *OrderService) ListMine(ctx context.Context) ([]OrderResponse, error) {
	profile, err := s.profileRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	name := profile.Name
	if name == "" {
		name = "Guest User"
	}

	orders, err := s.orderRepo.FindByCustomerName(ctx, name)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// GetByID retrieves a single order
func (s *OrderService) GetByID(ctx context.Context, id string) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

// UpdateStatus moves an order to a new status
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.ChangeStatus(ordering.Status(req.Status)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// Statuses returns every status the admin dropdown offers
func (s *OrderService) Statuses() []string {
	statuses := ordering.AllStatuses()
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, string(status))
	}
	return out
}

// signedInName returns the current user's display name, or "" when
// nobody is signed in
func (s *OrderService) signedInName(ctx context.Context) string {
	userID, err := s.sessionRepo.CurrentUserID(ctx)
	if err != nil || userID == "" {
		return ""
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Name
}

func (s *OrderService) publishEvents(ctx context.Context, order *ordering.Order) {
	events := order.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	order.ClearDomainEvents()
	_ = s.eventBus.Publish(ctx, events...)
}
