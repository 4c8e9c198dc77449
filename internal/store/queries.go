package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/matthieukhl/gocrm/internal/models"
)

// Sort keys are whitelisted per entity; callers pass the exposed field name,
// optionally prefixed with "-" for descending. Arbitrary column paths are
// rejected.
var (
	customerSortFields = map[string]string{
		"name":      "name",
		"email":     "email",
		"createdAt": "created_at",
	}
	productSortFields = map[string]string{
		"name":      "name",
		"price":     "price",
		"stock":     "stock",
		"createdAt": "created_at",
	}
	orderSortFields = map[string]string{
		"orderDate":   "order_date",
		"totalAmount": "total_amount",
		"createdAt":   "created_at",
	}
)

func applyOrder(q *gorm.DB, orderBy string, allowed map[string]string, fallback string) (*gorm.DB, error) {
	if orderBy == "" {
		return q.Order(fallback), nil
	}

	field := orderBy
	dir := "asc"
	if strings.HasPrefix(orderBy, "-") {
		field = orderBy[1:]
		dir = "desc"
	}

	column, ok := allowed[field]
	if !ok {
		return nil, fmt.Errorf("invalid orderBy field: %s", field)
	}

	return q.Order(column + " " + dir), nil
}

type CustomerFilter struct {
	NameContains  string
	EmailContains string
	CreatedAtGte  *time.Time
	CreatedAtLte  *time.Time
}

// ListCustomers returns customers newest-first unless orderBy overrides it.
func (s *Store) ListCustomers(ctx context.Context, filter *CustomerFilter, orderBy string) ([]models.Customer, error) {
	q := s.db.WithContext(ctx).Model(&models.Customer{})

	if filter != nil {
		if filter.NameContains != "" {
			q = q.Where("name LIKE ?", "%"+filter.NameContains+"%")
		}
		if filter.EmailContains != "" {
			q = q.Where("email LIKE ?", "%"+filter.EmailContains+"%")
		}
		if filter.CreatedAtGte != nil {
			q = q.Where("created_at >= ?", *filter.CreatedAtGte)
		}
		if filter.CreatedAtLte != nil {
			q = q.Where("created_at <= ?", *filter.CreatedAtLte)
		}
	}

	q, err := applyOrder(q, orderBy, customerSortFields, "created_at desc")
	if err != nil {
		return nil, err
	}

	var customers []models.Customer
	if err := q.Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

type ProductFilter struct {
	NameContains string
	PriceGte     *decimal.Decimal
	PriceLte     *decimal.Decimal
	StockGte     *int
	StockLte     *int
	LowStock     *bool
}

// ListProducts returns products sorted by name unless orderBy overrides it.
func (s *Store) ListProducts(ctx context.Context, filter *ProductFilter, orderBy string) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Model(&models.Product{})

	if filter != nil {
		if filter.NameContains != "" {
			q = q.Where("name LIKE ?", "%"+filter.NameContains+"%")
		}
		if filter.PriceGte != nil {
			q = q.Where("price >= ?", *filter.PriceGte)
		}
		if filter.PriceLte != nil {
			q = q.Where("price <= ?", *filter.PriceLte)
		}
		if filter.StockGte != nil {
			q = q.Where("stock >= ?", *filter.StockGte)
		}
		if filter.StockLte != nil {
			q = q.Where("stock <= ?", *filter.StockLte)
		}
		if filter.LowStock != nil && *filter.LowStock {
			q = q.Where("stock < ?", models.LowStockThreshold)
		}
	}

	q, err := applyOrder(q, orderBy, productSortFields, "name asc")
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

type OrderFilter struct {
	CustomerID     *uint
	ProductID      *uint
	TotalAmountGte *decimal.Decimal
	TotalAmountLte *decimal.Decimal
	OrderDateGte   *time.Time
	OrderDateLte   *time.Time
}

// ListOrders returns orders newest-first by order date unless orderBy
// overrides it, with customer and products preloaded.
func (s *Store) ListOrders(ctx context.Context, filter *OrderFilter, orderBy string) ([]models.Order, error) {
	q := s.db.WithContext(ctx).Model(&models.Order{}).
		Preload("Customer").
		Preload("Products")

	if filter != nil {
		if filter.CustomerID != nil {
			q = q.Where("customer_id = ?", *filter.CustomerID)
		}
		if filter.ProductID != nil {
			q = q.Joins("JOIN order_products ON order_products.order_id = orders.id").
				Where("order_products.product_id = ?", *filter.ProductID)
		}
		if filter.TotalAmountGte != nil {
			q = q.Where("total_amount >= ?", *filter.TotalAmountGte)
		}
		if filter.TotalAmountLte != nil {
			q = q.Where("total_amount <= ?", *filter.TotalAmountLte)
		}
		if filter.OrderDateGte != nil {
			q = q.Where("order_date >= ?", *filter.OrderDateGte)
		}
		if filter.OrderDateLte != nil {
			q = q.Where("order_date <= ?", *filter.OrderDateLte)
		}
	}

	q, err := applyOrder(q, orderBy, orderSortFields, "order_date desc")
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
