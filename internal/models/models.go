package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a CRM contact. Email is unique across all customers.
type Customer struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Email     string          `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Phone     string          `gorm:"size:100" json:"phone"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Orders    []Order         `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}

type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Order references one customer and at least one product. TotalAmount is the
// sum of the referenced products' prices at creation time and is never
// recomputed afterwards.
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CustomerID  uint            `gorm:"not null;index" json:"customer_id"`
	Customer    Customer        `json:"customer"`
	Products    []Product       `gorm:"many2many:order_products" json:"products"`
	OrderDate   time.Time       `gorm:"not null;index" json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// LowStockThreshold marks products eligible for restocking.
const LowStockThreshold = 10

// RestockAmount is added to each low-stock product's stock per restock run.
const RestockAmount = 10
