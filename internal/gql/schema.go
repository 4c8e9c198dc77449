// Package gql exposes the CRM store as a GraphQL schema. Validation failures
// come back as structured payloads (success=false plus a message) rather than
// GraphQL errors, so partial-success operations like bulkCreateCustomers
// compose cleanly.
package gql

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/matthieukhl/gocrm/internal/auth"
	"github.com/matthieukhl/gocrm/internal/models"
	"github.com/matthieukhl/gocrm/internal/store"
	"github.com/matthieukhl/gocrm/internal/validate"
)

type schemaBuilder struct {
	store        *store.Store
	restockToken string

	customerType *graphql.Object
	productType  *graphql.Object
	orderType    *graphql.Object
	bulkErrorType *graphql.Object

	customerInput       *graphql.InputObject
	productInput        *graphql.InputObject
	orderInput          *graphql.InputObject
	customerFilterInput *graphql.InputObject
	productFilterInput  *graphql.InputObject
	orderFilterInput    *graphql.InputObject
}

// NewSchema builds the executable schema on top of the given store. When
// restockToken is non-empty, updateLowStockProducts requires a matching
// bearer token.
func NewSchema(st *store.Store, restockToken string) (graphql.Schema, error) {
	b := &schemaBuilder{store: st, restockToken: restockToken}
	b.buildTypes()

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.queryType(),
		Mutation: b.mutationType(),
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to build schema: %w", err)
	}
	return schema, nil
}

// isValidationFailure reports whether err belongs to the recoverable
// validation taxonomy, as opposed to a storage or transport fault.
func isValidationFailure(err error) bool {
	var unknownProduct *validate.UnknownProductError
	switch {
	case errors.Is(err, validate.ErrInvalidEmail),
		errors.Is(err, validate.ErrInvalidPhone),
		errors.Is(err, validate.ErrDuplicateEmail),
		errors.Is(err, validate.ErrNonPositivePrice),
		errors.Is(err, validate.ErrNegativeStock),
		errors.Is(err, validate.ErrUnknownCustomer),
		errors.Is(err, validate.ErrEmptyProductList),
		errors.As(err, &unknownProduct):
		return true
	}
	return false
}

func parseID(v interface{}) (uint, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func optString(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func optTime(m map[string]interface{}, key string) *time.Time {
	if t, ok := m[key].(time.Time); ok {
		return &t
	}
	return nil
}

func optDecimal(m map[string]interface{}, key string) *decimal.Decimal {
	if d, ok := m[key].(decimal.Decimal); ok {
		return &d
	}
	return nil
}

func optInt(m map[string]interface{}, key string) *int {
	if n, ok := m[key].(int); ok {
		return &n
	}
	return nil
}

func customerInputFromArgs(m map[string]interface{}) store.CustomerInput {
	return store.CustomerInput{
		Name:  optString(m, "name"),
		Email: optString(m, "email"),
		Phone: optString(m, "phone"),
	}
}

func (b *schemaBuilder) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"allCustomers": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.customerType))),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: b.customerFilterInput},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var filter *store.CustomerFilter
					if m, ok := p.Args["filter"].(map[string]interface{}); ok {
						filter = &store.CustomerFilter{
							NameContains:  optString(m, "nameContains"),
							EmailContains: optString(m, "emailContains"),
							CreatedAtGte:  optTime(m, "createdAtGte"),
							CreatedAtLte:  optTime(m, "createdAtLte"),
						}
					}
					orderBy, _ := p.Args["orderBy"].(string)
					return b.store.ListCustomers(p.Context, filter, orderBy)
				},
			},
			"allProducts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.productType))),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: b.productFilterInput},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var filter *store.ProductFilter
					if m, ok := p.Args["filter"].(map[string]interface{}); ok {
						filter = &store.ProductFilter{
							NameContains: optString(m, "nameContains"),
							PriceGte:     optDecimal(m, "priceGte"),
							PriceLte:     optDecimal(m, "priceLte"),
							StockGte:     optInt(m, "stockGte"),
							StockLte:     optInt(m, "stockLte"),
						}
						if low, ok := m["lowStock"].(bool); ok {
							filter.LowStock = &low
						}
					}
					orderBy, _ := p.Args["orderBy"].(string)
					return b.store.ListProducts(p.Context, filter, orderBy)
				},
			},
			"allOrders": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.orderType))),
				Args: graphql.FieldConfigArgument{
					"filter":  &graphql.ArgumentConfig{Type: b.orderFilterInput},
					"orderBy": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					var filter *store.OrderFilter
					if m, ok := p.Args["filter"].(map[string]interface{}); ok {
						filter = &store.OrderFilter{
							TotalAmountGte: optDecimal(m, "totalAmountGte"),
							TotalAmountLte: optDecimal(m, "totalAmountLte"),
							OrderDateGte:   optTime(m, "orderDateGte"),
							OrderDateLte:   optTime(m, "orderDateLte"),
						}
						if raw, ok := m["customerId"]; ok {
							if id, ok := parseID(raw); ok {
								filter.CustomerID = &id
							}
						}
						if raw, ok := m["productId"]; ok {
							if id, ok := parseID(raw); ok {
								filter.ProductID = &id
							}
						}
					}
					orderBy, _ := p.Args["orderBy"].(string)
					return b.store.ListOrders(p.Context, filter, orderBy)
				},
			},
		},
	})
}

type createCustomerPayload struct {
	Customer *models.Customer
	Success  bool
	Message  string
}

type bulkCreatePayload struct {
	Customers    []models.Customer
	Errors       []store.BulkCustomerError
	SuccessCount int
	ErrorCount   int
}

type createProductPayload struct {
	Product *models.Product
	Success bool
	Message string
}

type createOrderPayload struct {
	Order   *models.Order
	Success bool
	Message string
}

type restockPayload struct {
	UpdatedProducts []models.Product
	Success         bool
	Message         string
}

func (b *schemaBuilder) mutationType() *graphql.Object {
	createCustomerPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCustomerPayload",
		Fields: graphql.Fields{
			"customer": &graphql.Field{
				Type: b.customerType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					c := p.Source.(createCustomerPayload).Customer
					if c == nil {
						return nil, nil
					}
					return c, nil
				},
			},
			"success": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(createCustomerPayload).Success, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(createCustomerPayload).Message, nil
				},
			},
		},
	})

	bulkCreatePayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCreateCustomersPayload",
		Fields: graphql.Fields{
			"customers": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.customerType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(bulkCreatePayload).Customers, nil
				},
			},
			"errors": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.bulkErrorType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(bulkCreatePayload).Errors, nil
				},
			},
			"successCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(bulkCreatePayload).SuccessCount, nil
				},
			},
			"errorCount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(bulkCreatePayload).ErrorCount, nil
				},
			},
		},
	})

	createProductPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateProductPayload",
		Fields: graphql.Fields{
			"product": &graphql.Field{
				Type: b.productType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					pr := p.Source.(createProductPayload).Product
					if pr == nil {
						return nil, nil
					}
					return pr, nil
				},
			},
			"success": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(createProductPayload).Success, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(createProductPayload).Message, nil
				},
			},
		},
	})

	createOrderPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateOrderPayload",
		Fields: graphql.Fields{
			"order": &graphql.Field{
				Type: b.orderType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					o := p.Source.(createOrderPayload).Order
					if o == nil {
						return nil, nil
					}
					return o, nil
				},
			},
			"success": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(createOrderPayload).Success, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(createOrderPayload).Message, nil
				},
			},
		},
	})

	restockPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "UpdateLowStockProductsPayload",
		Fields: graphql.Fields{
			"updatedProducts": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.productType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(restockPayload).UpdatedProducts, nil
				},
			},
			"success": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(restockPayload).Success, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(restockPayload).Message, nil
				},
			},
		},
	})

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: graphql.NewNonNull(createCustomerPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(b.customerInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := customerInputFromArgs(p.Args["input"].(map[string]interface{}))
					customer, err := b.store.CreateCustomer(p.Context, in)
					if err != nil {
						if isValidationFailure(err) {
							return createCustomerPayload{Message: err.Error()}, nil
						}
						return nil, err
					}
					return createCustomerPayload{
						Customer: customer,
						Success:  true,
						Message:  "Customer created successfully",
					}, nil
				},
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: graphql.NewNonNull(bulkCreatePayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.customerInput))),
					},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw := p.Args["input"].([]interface{})
					inputs := make([]store.CustomerInput, 0, len(raw))
					for _, entry := range raw {
						inputs = append(inputs, customerInputFromArgs(entry.(map[string]interface{})))
					}
					result, err := b.store.BulkCreateCustomers(p.Context, inputs)
					if err != nil {
						return nil, err
					}
					return bulkCreatePayload{
						Customers:    result.Created,
						Errors:       result.Errors,
						SuccessCount: result.SuccessCount,
						ErrorCount:   result.ErrorCount,
					}, nil
				},
			},
			"createProduct": &graphql.Field{
				Type: graphql.NewNonNull(createProductPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(b.productInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := p.Args["input"].(map[string]interface{})
					in := store.ProductInput{Name: optString(m, "name")}
					if d, ok := m["price"].(decimal.Decimal); ok {
						in.Price = d
					}
					if n, ok := m["stock"].(int); ok {
						in.Stock = n
					}
					product, err := b.store.CreateProduct(p.Context, in)
					if err != nil {
						if isValidationFailure(err) {
							return createProductPayload{Message: err.Error()}, nil
						}
						return nil, err
					}
					return createProductPayload{
						Product: product,
						Success: true,
						Message: "Product created successfully",
					}, nil
				},
			},
			"createOrder": &graphql.Field{
				Type: graphql.NewNonNull(createOrderPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(b.orderInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := p.Args["input"].(map[string]interface{})

					customerID, ok := parseID(m["customerId"])
					if !ok {
						return createOrderPayload{Message: validate.ErrUnknownCustomer.Error()}, nil
					}

					rawIDs, _ := m["productIds"].([]interface{})
					productIDs := make([]uint, 0, len(rawIDs))
					for _, raw := range rawIDs {
						id, ok := parseID(raw)
						if !ok {
							return createOrderPayload{
								Message: fmt.Sprintf("invalid product ID: %v", raw),
							}, nil
						}
						productIDs = append(productIDs, id)
					}

					in := store.OrderInput{
						CustomerID: customerID,
						ProductIDs: productIDs,
						OrderDate:  optTime(m, "orderDate"),
					}
					order, err := b.store.CreateOrder(p.Context, in)
					if err != nil {
						if isValidationFailure(err) {
							return createOrderPayload{Message: err.Error()}, nil
						}
						return nil, err
					}
					return createOrderPayload{
						Order:   order,
						Success: true,
						Message: "Order created successfully",
					}, nil
				},
			},
			"updateLowStockProducts": &graphql.Field{
				Type: graphql.NewNonNull(restockPayloadType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if b.restockToken != "" && auth.TokenFromContext(p.Context) != b.restockToken {
						return nil, validate.ErrUnauthorized
					}
					result, err := b.store.RestockLowStock(p.Context)
					if err != nil {
						return nil, err
					}
					return restockPayload{
						UpdatedProducts: result.Products,
						Success:         true,
						Message:         result.Message,
					}, nil
				},
			},
		},
	})
}
