package orderbook

import (
	"testing"
	"time"

	"github.com/orderbook/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDispatch(t *testing.T, quantity, orderNumber int64) *Dispatch {
	d, err := NewDispatch(time.Now(), "Acme", "Widget", quantity, orderNumber)
	require.NoError(t, err)
	return d
}

func TestNewDispatch_Validation(t *testing.T) {
	tests := []struct {
		name        string
		company     string
		product     string
		quantity    int64
		orderNumber int64
	}{
		{"blank company", "", "Widget", 5, 1},
		{"blank product", "Acme", "  ", 5, 1},
		{"zero quantity", "Acme", "Widget", 0, 1},
		{"negative quantity", "Acme", "Widget", -1, 1},
		{"zero order number", "Acme", "Widget", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDispatch(time.Now(), tt.company, tt.product, tt.quantity, tt.orderNumber)
			require.Error(t, err)
			assert.Nil(t, d)

			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		})
	}
}

func TestNewBalance(t *testing.T) {
	order := createTestOrder(t, "Acme", "Widget", 10, 5.00)
	order.Number = 7

	t.Run("no dispatches", func(t *testing.T) {
		balance := NewBalance(order, nil)
		assert.Equal(t, int64(7), balance.OrderNumber)
		assert.Equal(t, int64(10), balance.Ordered)
		assert.Equal(t, int64(0), balance.Dispatched)
		assert.Equal(t, int64(10), balance.Remaining)
	})

	t.Run("partial dispatch", func(t *testing.T) {
		balance := NewBalance(order, []Dispatch{*createTestDispatch(t, 4, 7)})
		assert.Equal(t, int64(4), balance.Dispatched)
		assert.Equal(t, int64(6), balance.Remaining)
	})

	t.Run("over-dispatch reported as negative remaining", func(t *testing.T) {
		balance := NewBalance(order, []Dispatch{
			*createTestDispatch(t, 8, 7),
			*createTestDispatch(t, 5, 7),
		})
		assert.Equal(t, int64(13), balance.Dispatched)
		assert.Equal(t, int64(-3), balance.Remaining)
	})

	t.Run("independent of insertion order", func(t *testing.T) {
		d1 := *createTestDispatch(t, 3, 7)
		d2 := *createTestDispatch(t, 6, 7)

		forward := NewBalance(order, []Dispatch{d1, d2})
		reversed := NewBalance(order, []Dispatch{d2, d1})
		assert.Equal(t, forward, reversed)
	})
}
