package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/matthieukhl/gocrm/internal/models"
	"github.com/matthieukhl/gocrm/internal/validate"
)

// Store executes all CRM operations against an injected database handle.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CreateCustomer validates email format, email uniqueness and phone format in
// that order, then persists the customer.
func (s *Store) CreateCustomer(ctx context.Context, in CustomerInput) (*models.Customer, error) {
	if err := validate.Email(in.Email); err != nil {
		return nil, err
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.Customer{}).Where("email = ?", in.Email).Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if count > 0 {
		return nil, validate.ErrDuplicateEmail
	}

	if err := validate.PhoneStrict(in.Phone); err != nil {
		return nil, err
	}

	customer := models.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	}
	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &customer, nil
}

type BulkCustomerError struct {
	Email   string
	Message string
}

type BulkCreateResult struct {
	Created      []models.Customer
	Errors       []BulkCustomerError
	SuccessCount int
	ErrorCount   int
}

// BulkCreateCustomers processes entries in input order. A failing entry is
// recorded and processing continues; each successful creation is its own
// atomic unit, so one entry's failure never rolls back earlier entries.
func (s *Store) BulkCreateCustomers(ctx context.Context, inputs []CustomerInput) (*BulkCreateResult, error) {
	result := &BulkCreateResult{}

	for _, in := range inputs {
		customer, err := s.CreateCustomer(ctx, in)
		if err != nil {
			result.Errors = append(result.Errors, BulkCustomerError{
				Email:   in.Email,
				Message: err.Error(),
			})
			result.ErrorCount++
			continue
		}
		result.Created = append(result.Created, *customer)
		result.SuccessCount++
	}

	return result, nil
}

type ProductInput struct {
	Name  string
	Price decimal.Decimal
	Stock int
}

// CreateProduct validates price and stock bounds before persisting.
func (s *Store) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	if err := validate.Price(in.Price); err != nil {
		return nil, err
	}
	if err := validate.Stock(in.Stock); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:  in.Name,
		Price: in.Price,
		Stock: in.Stock,
	}
	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

type OrderInput struct {
	CustomerID uint
	ProductIDs []uint
	OrderDate  *time.Time
}

// CreateOrder persists the order row and its product associations as a single
// atomic unit. TotalAmount is the exact decimal sum of the referenced
// products' current prices.
func (s *Store) CreateOrder(ctx context.Context, in OrderInput) (*models.Order, error) {
	if len(in.ProductIDs) == 0 {
		return nil, validate.ErrEmptyProductList
	}

	var order models.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, in.CustomerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validate.ErrUnknownCustomer
			}
			return fmt.Errorf("failed to load customer: %w", err)
		}

		products := make([]models.Product, 0, len(in.ProductIDs))
		total := decimal.Zero
		for _, id := range in.ProductIDs {
			var product models.Product
			if err := tx.First(&product, id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &validate.UnknownProductError{ID: id}
				}
				return fmt.Errorf("failed to load product: %w", err)
			}
			products = append(products, product)
			total = total.Add(product.Price)
		}

		orderDate := time.Now()
		if in.OrderDate != nil {
			orderDate = *in.OrderDate
		}

		order = models.Order{
			CustomerID:  customer.ID,
			Customer:    customer,
			Products:    products,
			OrderDate:   orderDate,
			TotalAmount: total,
		}

		// Omit("Products.*") writes the join rows without touching the
		// product rows themselves.
		if err := tx.Omit("Products.*", "Customer").Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

type RestockResult struct {
	Products []models.Product
	Message  string
}

// RestockLowStock increments every product with stock below the low-stock
// threshold by the restock amount, in one transaction. Two back-to-back runs
// both increment; callers are expected to be serialized by the scheduler.
func (s *Store) RestockLowStock(ctx context.Context) (*RestockResult, error) {
	result := &RestockResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lowStock []models.Product
		if err := tx.Where("stock < ?", models.LowStockThreshold).Order("name asc").Find(&lowStock).Error; err != nil {
			return fmt.Errorf("failed to select low-stock products: %w", err)
		}

		if len(lowStock) == 0 {
			result.Message = "No products required restocking."
			return nil
		}

		ids := make([]uint, len(lowStock))
		for i, p := range lowStock {
			ids[i] = p.ID
		}

		err := tx.Model(&models.Product{}).Where("id IN ?", ids).
			UpdateColumn("stock", gorm.Expr("stock + ?", models.RestockAmount)).Error
		if err != nil {
			return fmt.Errorf("failed to increment stock: %w", err)
		}

		if err := tx.Where("id IN ?", ids).Order("name asc").Find(&result.Products).Error; err != nil {
			return fmt.Errorf("failed to reload restocked products: %w", err)
		}

		result.Message = fmt.Sprintf("Successfully restocked %d product(s).", len(result.Products))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
