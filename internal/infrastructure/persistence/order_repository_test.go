package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/orderbook/backend/internal/domain/orderbook"
	"github.com/orderbook/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockGormDB creates a GORM connection backed by sqlmock
func newMockGormDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"number", "date", "company", "product", "brand",
		"quantity", "price", "total", "created_at",
	})
}

func TestGormOrderRepository_Append(t *testing.T) {
	t.Run("assigns next number and inserts", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COALESCE\(MAX\(number\), 0\) FROM orders`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7))
		mock.ExpectExec(`INSERT INTO "orders"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		order, err := orderbook.NewOrder(
			time.Now(), "Acme Traders", "Widget", "BrandX",
			10, decimal.NewFromFloat(5.00), decimal.NewFromFloat(0.05),
		)
		require.NoError(t, err)

		err = repo.Append(context.Background(), order)

		assert.NoError(t, err)
		assert.Equal(t, int64(8), order.Number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("starts at one on empty store", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COALESCE\(MAX\(number\), 0\) FROM orders`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))
		mock.ExpectExec(`INSERT INTO "orders"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		order, err := orderbook.NewOrder(
			time.Now(), "Acme Traders", "Widget", "BrandX",
			1, decimal.NewFromFloat(2.50), decimal.NewFromFloat(0.05),
		)
		require.NoError(t, err)

		err = repo.Append(context.Background(), order)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), order.Number)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and reports store failure on insert error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT COALESCE\(MAX\(number\), 0\) FROM orders`).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))
		mock.ExpectExec(`INSERT INTO "orders"`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		order, err := orderbook.NewOrder(
			time.Now(), "Acme Traders", "Widget", "BrandX",
			10, decimal.NewFromFloat(5.00), decimal.NewFromFloat(0.05),
		)
		require.NoError(t, err)

		err = repo.Append(context.Background(), order)

		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FindAll(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	now := time.Now()
	rows := orderRows().
		AddRow(1, now, "Acme Traders", "Widget", "BrandX", 10, decimal.NewFromFloat(5.00), decimal.NewFromFloat(52.50), now).
		AddRow(2, now, "Globex", "Gadget", "BrandY", 4, decimal.NewFromFloat(3.00), decimal.NewFromFloat(12.60), now)

	mock.ExpectQuery(`SELECT \* FROM "orders" ORDER BY number ASC`).
		WillReturnRows(rows)

	orders, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].Number)
	assert.Equal(t, "Widget", orders[0].Product)
	assert.True(t, orders[1].Total.Equal(decimal.NewFromFloat(12.60)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_FindRecent(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	now := time.Now()
	rows := orderRows().
		AddRow(9, now, "Globex", "Gadget", "BrandY", 4, decimal.NewFromFloat(3.00), decimal.NewFromFloat(12.60), now).
		AddRow(8, now, "Acme Traders", "Widget", "BrandX", 10, decimal.NewFromFloat(5.00), decimal.NewFromFloat(52.50), now)

	mock.ExpectQuery(`SELECT \* FROM "orders" ORDER BY number DESC LIMIT .*`).
		WithArgs(2).
		WillReturnRows(rows)

	orders, err := repo.FindRecent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(9), orders[0].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_FindByNumber(t *testing.T) {
	t.Run("finds existing order", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		now := time.Now()
		rows := orderRows().
			AddRow(5, now, "Acme Traders", "Widget", "BrandX", 10, decimal.NewFromFloat(5.00), decimal.NewFromFloat(52.50), now)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(5), 1).
			WillReturnRows(rows)

		order, err := repo.FindByNumber(context.Background(), 5)

		require.NoError(t, err)
		assert.Equal(t, int64(5), order.Number)
		assert.Equal(t, "Acme Traders", order.Company)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports unknown order when missing", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE number = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(int64(42), 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.FindByNumber(context.Background(), 42)

		assert.Nil(t, order)
		assert.ErrorIs(t, err, shared.ErrUnknownOrder)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_FindByProduct(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	now := time.Now()
	rows := orderRows().
		AddRow(1, now, "Acme Traders", "Widget", "BrandX", 10, decimal.NewFromFloat(5.00), decimal.NewFromFloat(52.50), now)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE LOWER\(product\) = LOWER\(\$1\) ORDER BY number ASC`).
		WithArgs("widget").
		WillReturnRows(rows)

	orders, err := repo.FindByProduct(context.Background(), "widget")

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Widget", orders[0].Product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_FindByCompany(t *testing.T) {
	gormDB, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormOrderRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "orders" WHERE LOWER\(company\) = LOWER\(\$1\) ORDER BY number ASC`).
		WithArgs("Initech").
		WillReturnRows(orderRows())

	orders, err := repo.FindByCompany(context.Background(), "Initech")

	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormOrderRepository_ExistsByNumber(t *testing.T) {
	t.Run("returns true when present", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE number = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		exists, err := repo.ExistsByNumber(context.Background(), 5)

		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when absent", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE number = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		exists, err := repo.ExistsByNumber(context.Background(), 99)

		require.NoError(t, err)
		assert.False(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports store failure on query error", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(gormDB)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE number = \$1`).
			WithArgs(int64(5)).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.ExistsByNumber(context.Background(), 5)

		assert.ErrorIs(t, err, shared.ErrStoreUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
