package persistence

import (
	"context"
	"errors"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/orderbook/backend/internal/domain/shared"
	"github.com/orderbook/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderRepository implements orderbook.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Append assigns the next order number and inserts the row in a single
// transaction. The unique constraint on number backstops concurrent
// appends that race past the MAX read.
func (r *GormOrderRepository) Append(ctx context.Context, order *orderbook.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxNumber int64
		if err := tx.Raw(`SELECT COALESCE(MAX(number), 0) FROM orders`).Scan(&maxNumber).Error; err != nil {
			return err
		}

		order.Number = maxNumber + 1
		return tx.Create(models.OrderModelFromDomain(order)).Error
	})
	if err != nil {
		return storeError(err)
	}
	return nil
}

// FindAll returns every order in insertion order
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]orderbook.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Order("number ASC").
		Find(&orderModels).Error; err != nil {
		return nil, storeError(err)
	}
	return toDomainOrders(orderModels), nil
}

// FindRecent returns the most recent orders, newest first
func (r *GormOrderRepository) FindRecent(ctx context.Context, limit int) ([]orderbook.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Order("number DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, storeError(err)
	}
	return toDomainOrders(orderModels), nil
}

// FindByNumber finds one order by its number
func (r *GormOrderRepository) FindByNumber(ctx context.Context, number int64) (*orderbook.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrUnknownOrder
		}
		return nil, storeError(err)
	}
	return model.ToDomain(), nil
}

// FindByProduct returns all orders for a product, matched case-insensitively
func (r *GormOrderRepository) FindByProduct(ctx context.Context, product string) ([]orderbook.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(product) = LOWER(?)", product).
		Order("number ASC").
		Find(&orderModels).Error; err != nil {
		return nil, storeError(err)
	}
	return toDomainOrders(orderModels), nil
}

// FindByCompany returns all orders for a company, matched case-insensitively
func (r *GormOrderRepository) FindByCompany(ctx context.Context, company string) ([]orderbook.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Where("LOWER(company) = LOWER(?)", company).
		Order("number ASC").
		Find(&orderModels).Error; err != nil {
		return nil, storeError(err)
	}
	return toDomainOrders(orderModels), nil
}

// ExistsByNumber reports whether an order with the given number exists
func (r *GormOrderRepository) ExistsByNumber(ctx context.Context, number int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, storeError(err)
	}
	return count > 0, nil
}

func toDomainOrders(orderModels []models.OrderModel) []orderbook.Order {
	orders := make([]orderbook.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders
}

// storeError maps infrastructure failures to the store sentinel so
// callers can report the backend as unavailable. Domain errors pass
// through untouched.
func storeError(err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return shared.ErrStoreUnavailable
}
