package persistence

import (
	"context"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/orderbook/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDispatchRepository implements orderbook.DispatchRepository using GORM
type GormDispatchRepository struct {
	db *gorm.DB
}

// NewGormDispatchRepository creates a new GormDispatchRepository
func NewGormDispatchRepository(db *gorm.DB) *GormDispatchRepository {
	return &GormDispatchRepository{db: db}
}

// Append inserts one dispatch row
func (r *GormDispatchRepository) Append(ctx context.Context, dispatch *orderbook.Dispatch) error {
	if err := r.db.WithContext(ctx).
		Create(models.DispatchModelFromDomain(dispatch)).Error; err != nil {
		return storeError(err)
	}
	return nil
}

// FindAll returns every dispatch in insertion order
func (r *GormDispatchRepository) FindAll(ctx context.Context) ([]orderbook.Dispatch, error) {
	var dispatchModels []models.DispatchModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&dispatchModels).Error; err != nil {
		return nil, storeError(err)
	}
	return toDomainDispatches(dispatchModels), nil
}

// FindByOrderNumber returns all dispatches recorded against one order
func (r *GormDispatchRepository) FindByOrderNumber(ctx context.Context, orderNumber int64) ([]orderbook.Dispatch, error) {
	var dispatchModels []models.DispatchModel
	if err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Order("id ASC").
		Find(&dispatchModels).Error; err != nil {
		return nil, storeError(err)
	}
	return toDomainDispatches(dispatchModels), nil
}

func toDomainDispatches(dispatchModels []models.DispatchModel) []orderbook.Dispatch {
	dispatches := make([]orderbook.Dispatch, len(dispatchModels))
	for i, model := range dispatchModels {
		dispatches[i] = *model.ToDomain()
	}
	return dispatches
}
