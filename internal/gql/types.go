package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/matthieukhl/gocrm/internal/models"
	"github.com/matthieukhl/gocrm/internal/store"
)

func customerFromSource(src interface{}) *models.Customer {
	switch v := src.(type) {
	case models.Customer:
		return &v
	case *models.Customer:
		return v
	}
	return nil
}

func productFromSource(src interface{}) *models.Product {
	switch v := src.(type) {
	case models.Product:
		return &v
	case *models.Product:
		return v
	}
	return nil
}

func orderFromSource(src interface{}) *models.Order {
	switch v := src.(type) {
	case models.Order:
		return &v
	case *models.Order:
		return v
	}
	return nil
}

func (b *schemaBuilder) buildTypes() {
	b.customerType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerFromSource(p.Source).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerFromSource(p.Source).Name, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerFromSource(p.Source).Email, nil
				},
			},
			"phone": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerFromSource(p.Source).Phone, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerFromSource(p.Source).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return customerFromSource(p.Source).UpdatedAt, nil
				},
			},
		},
	})

	b.productType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productFromSource(p.Source).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productFromSource(p.Source).Name, nil
				},
			},
			"price": &graphql.Field{
				Type: graphql.NewNonNull(decimalScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productFromSource(p.Source).Price, nil
				},
			},
			"stock": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productFromSource(p.Source).Stock, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productFromSource(p.Source).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return productFromSource(p.Source).UpdatedAt, nil
				},
			},
		},
	})

	b.orderType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orderFromSource(p.Source).ID, nil
				},
			},
			"customer": &graphql.Field{
				Type: graphql.NewNonNull(b.customerType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orderFromSource(p.Source).Customer, nil
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.productType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orderFromSource(p.Source).Products, nil
				},
			},
			"orderDate": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orderFromSource(p.Source).OrderDate, nil
				},
			},
			"totalAmount": &graphql.Field{
				Type: graphql.NewNonNull(decimalScalar),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orderFromSource(p.Source).TotalAmount, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orderFromSource(p.Source).CreatedAt, nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.DateTime),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return orderFromSource(p.Source).UpdatedAt, nil
				},
			},
		},
	})

	// Customer.orders closes a type cycle with Order, so it is attached after
	// both objects exist.
	b.customerType.AddFieldConfig("orders", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(b.orderType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			id := customerFromSource(p.Source).ID
			return b.store.ListOrders(p.Context, &store.OrderFilter{CustomerID: &id}, "")
		},
	})

	b.customerInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	b.productInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(decimalScalar)},
			"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int, DefaultValue: 0},
		},
	})

	b.orderInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"productIds": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID)))},
			"orderDate":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	b.customerFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CustomerFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nameContains":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"emailContains": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"createdAtGte":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"createdAtLte":  &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	b.productFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProductFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"nameContains": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"priceGte":     &graphql.InputObjectFieldConfig{Type: decimalScalar},
			"priceLte":     &graphql.InputObjectFieldConfig{Type: decimalScalar},
			"stockGte":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"stockLte":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"lowStock":     &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
		},
	})

	b.orderFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "OrderFilterInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"customerId":     &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"productId":      &graphql.InputObjectFieldConfig{Type: graphql.ID},
			"totalAmountGte": &graphql.InputObjectFieldConfig{Type: decimalScalar},
			"totalAmountLte": &graphql.InputObjectFieldConfig{Type: decimalScalar},
			"orderDateGte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
			"orderDateLte":   &graphql.InputObjectFieldConfig{Type: graphql.DateTime},
		},
	})

	bulkErrorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCustomerError",
		Fields: graphql.Fields{
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(store.BulkCustomerError).Email, nil
				},
			},
			"message": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(store.BulkCustomerError).Message, nil
				},
			},
		},
	})
	b.bulkErrorType = bulkErrorType
}
