package seed_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/matthieukhl/gocrm/internal/models"
	"github.com/matthieukhl/gocrm/internal/seed"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))
	return db
}

func TestSeedFixture(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, seed.Clear(db))
	require.NoError(t, seed.Run(db))

	var customers, products, orders int64
	db.Model(&models.Customer{}).Count(&customers)
	db.Model(&models.Product{}).Count(&products)
	db.Model(&models.Order{}).Count(&orders)
	assert.Equal(t, int64(5), customers)
	assert.Equal(t, int64(7), products)
	assert.Equal(t, int64(5), orders)

	// Alice owns the first and last order.
	var alice models.Customer
	require.NoError(t, db.Where("email = ?", "alice@example.com").First(&alice).Error)

	var aliceOrders []models.Order
	require.NoError(t, db.Where("customer_id = ?", alice.ID).Order("id asc").Find(&aliceOrders).Error)
	require.Len(t, aliceOrders, 2)

	// Laptop + Mouse and Webcam + USB Cable respectively.
	assert.True(t, aliceOrders[0].TotalAmount.Equal(decimal.RequireFromString("1025.49")),
		"got %s", aliceOrders[0].TotalAmount)
	assert.True(t, aliceOrders[1].TotalAmount.Equal(decimal.RequireFromString("102.98")),
		"got %s", aliceOrders[1].TotalAmount)
}

func TestSeedIsRepeatable(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 2; i++ {
		require.NoError(t, seed.Clear(db))
		require.NoError(t, seed.Run(db))
	}

	var customers int64
	db.Model(&models.Customer{}).Count(&customers)
	assert.Equal(t, int64(5), customers)

	var joinRows int64
	db.Table("order_products").Count(&joinRows)
	assert.Equal(t, int64(10), joinRows)
}
