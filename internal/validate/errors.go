package validate

import (
	"errors"
	"fmt"
)

// Validation and lookup failures surfaced by mutations. These are always
// recovered at the operation boundary and returned to callers as a structured
// failure result, never as a transport-level error.
var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidPhone     = errors.New("invalid phone format")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrNonPositivePrice = errors.New("price must be positive")
	ErrNegativeStock    = errors.New("stock cannot be negative")
	ErrUnknownCustomer  = errors.New("invalid customer ID")
	ErrEmptyProductList = errors.New("at least one product is required")
	ErrUnauthorized     = errors.New("unauthorized")
)

// UnknownProductError reports the first product ID that failed to resolve.
type UnknownProductError struct {
	ID uint
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("invalid product ID: %d", e.ID)
}
