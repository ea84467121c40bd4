package persistence

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/foodiejunction/backend/internal/domain/ordering"
	"github.com/foodiejunction/backend/internal/domain/shared"
	"github.com/foodiejunction/backend/internal/domain/shared/valueobject"
	"github.com/foodiejunction/backend/internal/infrastructure/store"
)

// orderLineRecord is the stored form of an order line
type orderLineRecord struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"qty"`
}

// orderRecord is the stored form of a placed order
type orderRecord struct {
	ID              string            `json:"id"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerAddress string            `json:"customer_address"`
	Lines           []orderLineRecord `json:"items"`
	Subtotal        string            `json:"subtotal"`
	Tax             string            `json:"tax"`
	Total           string            `json:"total"`
	Status          string            `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// StoreOrderRepository persists the order ledger as one JSON document
type StoreOrderRepository struct {
	store  store.Store
	logger *zap.Logger
}

// NewStoreOrderRepository creates an order repository over the given store
func NewStoreOrderRepository(s store.Store, logger *zap.Logger) *StoreOrderRepository {
	return &StoreOrderRepository{store: s, logger: logger}
}

// FindByID implements ordering.Repository
func (r *StoreOrderRepository) FindByID(ctx context.Context, id string) (*ordering.Order, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return recordToOrder(rec)
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll implements ordering.Repository, most recent first
func (r *StoreOrderRepository) FindAll(ctx context.Context) ([]ordering.Order, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return r.toOrders(records)
}

// FindByCustomerName implements ordering.Repository. The match is an
// exact name comparison, most recent first.
func (r *StoreOrderRepository) FindByCustomerName(ctx context.Context, customerName string) ([]ordering.Order, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]orderRecord, 0, len(records))
	for _, rec := range records {
		if rec.CustomerName == customerName {
			matched = append(matched, rec)
		}
	}
	return r.toOrders(matched)
}

// Save implements ordering.Repository
func (r *StoreOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}
	updated := false
	for i, rec := range records {
		if rec.ID == order.ID {
			records[i] = orderToRecord(order)
			updated = true
			break
		}
	}
	if !updated {
		records = append(records, orderToRecord(order))
	}
	return r.store.Put(ctx, store.KeyOrders, records)
}

// DeleteAll implements ordering.Repository
func (r *StoreOrderRepository) DeleteAll(ctx context.Context) error {
	return r.store.Put(ctx, store.KeyOrders, []orderRecord{})
}

func (r *StoreOrderRepository) load(ctx context.Context) ([]orderRecord, error) {
	return store.LoadOrDefault(ctx, r.store, store.KeyOrders, []orderRecord{}, r.logger)
}

func (r *StoreOrderRepository) toOrders(records []orderRecord) ([]ordering.Order, error) {
	orders := make([]ordering.Order, 0, len(records))
	for _, rec := range records {
		order, err := recordToOrder(rec)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PlacedAt.After(orders[j].PlacedAt)
	})
	return orders, nil
}

func orderToRecord(order *ordering.Order) orderRecord {
	lines := make([]orderLineRecord, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, orderLineRecord{
			Name:     l.Name,
			Price:    l.UnitPrice.StringFixed(2),
			Quantity: l.Quantity,
		})
	}
	return orderRecord{
		ID:              order.ID,
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		CustomerAddress: order.CustomerAddress,
		Lines:           lines,
		Subtotal:        order.Subtotal.StringFixed(2),
		Tax:             order.Tax.StringFixed(2),
		Total:           order.Total.StringFixed(2),
		Status:          string(order.Status),
		CreatedAt:       order.PlacedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func recordToOrder(rec orderRecord) (*ordering.Order, error) {
	lines := make([]ordering.Line, 0, len(rec.Lines))
	for _, l := range rec.Lines {
		price, err := valueobject.NewMoneyUSDFromString(l.Price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, ordering.Line{
			Name:      l.Name,
			UnitPrice: price,
			Quantity:  l.Quantity,
		})
	}

	subtotal, err := valueobject.NewMoneyUSDFromString(rec.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := valueobject.NewMoneyUSDFromString(rec.Tax)
	if err != nil {
		return nil, err
	}
	total, err := valueobject.NewMoneyUSDFromString(rec.Total)
	if err != nil {
		return nil, err
	}

	return &ordering.Order{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        rec.ID,
				CreatedAt: rec.CreatedAt,
				UpdatedAt: rec.UpdatedAt,
			},
		},
		CustomerName:    rec.CustomerName,
		CustomerPhone:   rec.CustomerPhone,
		CustomerAddress: rec.CustomerAddress,
		Lines:           lines,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           total,
		Status:          ordering.Status(rec.Status),
		PlacedAt:        rec.CreatedAt,
	}, nil
}

// Ensure interface compliance
var _ ordering.Repository = (*StoreOrderRepository)(nil)
