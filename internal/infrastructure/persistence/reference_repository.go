package persistence

import (
	"context"

	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/orderbook/backend/internal/domain/shared"
	"github.com/orderbook/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReferenceListRepository implements orderbook.ReferenceListRepository using GORM
type GormReferenceListRepository struct {
	db *gorm.DB
}

// NewGormReferenceListRepository creates a new GormReferenceListRepository
func NewGormReferenceListRepository(db *gorm.DB) *GormReferenceListRepository {
	return &GormReferenceListRepository{db: db}
}

// Names returns the entries of one reference list in their curated order.
// An empty list is not an error: it means the list imposes no restriction.
func (r *GormReferenceListRepository) Names(ctx context.Context, list orderbook.ReferenceList) ([]string, error) {
	if !list.IsValid() {
		return nil, shared.ErrInvalidInput
	}

	var names []string
	if err := r.db.WithContext(ctx).
		Model(&models.ReferenceNameModel{}).
		Where("list = ?", string(list)).
		Order("sort_order ASC, id ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, storeError(err)
	}
	return names, nil
}
