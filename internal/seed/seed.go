// Package seed installs the canonical sample dataset: 5 customers, 7 products
// and 5 orders with pre-computed totals. It writes through GORM directly,
// bypassing mutation validation, which is why two fixture phones use the loose
// phone grammar.
package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/matthieukhl/gocrm/internal/models"
)

// Clear removes all CRM data in dependency order, keeping the schema.
func Clear(db *gorm.DB) error {
	statements := []string{
		"DELETE FROM order_products",
		"DELETE FROM orders",
		"DELETE FROM customers",
		"DELETE FROM products",
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

// Run inserts the sample dataset into an empty store.
func Run(db *gorm.DB) error {
	customers := []models.Customer{
		{Name: "Alice Johnson", Email: "alice@example.com", Phone: "+1234567890"},
		{Name: "Bob Smith", Email: "bob@example.com", Phone: "123-456-7890"},
		{Name: "Carol Williams", Email: "carol@example.com", Phone: ""},
		{Name: "David Brown", Email: "david@example.com", Phone: "+44-20-1234-5678"},
		{Name: "Eve Davis", Email: "eve@example.com", Phone: "555.123.4567"},
	}
	for i := range customers {
		if err := db.Create(&customers[i]).Error; err != nil {
			return fmt.Errorf("failed to create customer %s: %w", customers[i].Email, err)
		}
	}

	products := []models.Product{
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 10},
		{Name: "Mouse", Price: decimal.RequireFromString("25.50"), Stock: 50},
		{Name: "Keyboard", Price: decimal.RequireFromString("75.00"), Stock: 30},
		{Name: "Monitor", Price: decimal.RequireFromString("299.99"), Stock: 15},
		{Name: "Headphones", Price: decimal.RequireFromString("149.99"), Stock: 25},
		{Name: "Webcam", Price: decimal.RequireFromString("89.99"), Stock: 20},
		{Name: "USB Cable", Price: decimal.RequireFromString("12.99"), Stock: 100},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			return fmt.Errorf("failed to create product %s: %w", products[i].Name, err)
		}
	}

	orders := []struct {
		customer models.Customer
		products []models.Product
	}{
		{customers[0], []models.Product{products[0], products[1]}}, // Alice: Laptop, Mouse
		{customers[1], []models.Product{products[2], products[3]}}, // Bob: Keyboard, Monitor
		{customers[2], []models.Product{products[4]}},              // Carol: Headphones
		{customers[3], []models.Product{products[1], products[2], products[6]}}, // David: Mouse, Keyboard, USB Cable
		{customers[0], []models.Product{products[5], products[6]}}, // Alice again: Webcam, USB Cable
	}
	for _, o := range orders {
		total := decimal.Zero
		for _, p := range o.products {
			total = total.Add(p.Price)
		}

		order := models.Order{
			CustomerID:  o.customer.ID,
			Products:    o.products,
			OrderDate:   time.Now(),
			TotalAmount: total,
		}
		if err := db.Omit("Products.*").Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order for %s: %w", o.customer.Name, err)
		}
	}

	return nil
}
