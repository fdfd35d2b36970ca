package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appErrors "github.com/DanEinstein/E-commerce-CRUD-Operations/internal/errors"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/model"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func TestBuildUpdateEmptyFields(t *testing.T) {
	query, args, err := buildUpdate("customers", "customer_id", 1, nil)
	if !errors.Is(err, appErrors.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
	if query != "" || args != nil {
		t.Errorf("expected no statement for empty update, got %q %v", query, args)
	}
}

func TestBuildUpdateSingleField(t *testing.T) {
	query, args, err := buildUpdate("customers", "customer_id", 7, []Assignment{
		{Column: "phone", Value: "123"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE customers SET phone=$1 WHERE customer_id=$2"
	if query != want {
		t.Errorf("expected %q, got %q", want, query)
	}
	if !reflect.DeepEqual(args, []interface{}{"123", 7}) {
		t.Errorf("expected args [123 7], got %v", args)
	}
}

func TestBuildUpdatePreservesFieldOrder(t *testing.T) {
	query, args, err := buildUpdate("products", "product_id", 3, []Assignment{
		{Column: "name", Value: "Hat"},
		{Column: "price", Value: 12.5},
		{Column: "stock_quantity", Value: 40},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "UPDATE products SET name=$1, price=$2, stock_quantity=$3 WHERE product_id=$4"
	if query != want {
		t.Errorf("expected %q, got %q", want, query)
	}
	if !reflect.DeepEqual(args, []interface{}{"Hat", 12.5, 40, 3}) {
		t.Errorf("identifier must be the final bound parameter, got %v", args)
	}
}

func TestCustomerAssignmentsOnlySuppliedFields(t *testing.T) {
	if got := customerAssignments(model.CustomerUpdate{}); len(got) != 0 {
		t.Errorf("expected no assignments for empty update, got %v", got)
	}

	got := customerAssignments(model.CustomerUpdate{
		Email: model.Some("a@b.com"),
		Phone: model.Some("123"),
	})
	want := []Assignment{
		{Column: "email", Value: strPtr("a@b.com")},
		{Column: "phone", Value: strPtr("123")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// An explicit null is a supplied field: it must reach the statement with a
// nil value, binding the column to NULL.
func TestCustomerAssignmentsExplicitNull(t *testing.T) {
	got := customerAssignments(model.CustomerUpdate{
		Address: model.Null[string](),
		Phone:   model.Some("123"),
	})
	want := []Assignment{
		{Column: "address", Value: (*string)(nil)},
		{Column: "phone", Value: strPtr("123")},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestProductAssignmentsOnlySuppliedFields(t *testing.T) {
	got := productAssignments(model.ProductUpdate{
		Price:         model.Some(9.99),
		StockQuantity: model.Some(0),
	})
	want := []Assignment{
		{Column: "price", Value: floatPtr(9.99)},
		{Column: "stock_quantity", Value: intPtr(0)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestProductAssignmentsExplicitNull(t *testing.T) {
	got := productAssignments(model.ProductUpdate{
		Description: model.Null[string](),
	})
	want := []Assignment{
		{Column: "description", Value: (*string)(nil)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// A nil DB would panic on any statement; these prove the empty-update check
// fires before the pool is ever touched.
func TestCustomerUpdateEmptyNeverIssuesStatement(t *testing.T) {
	r := &CustomerRepository{DB: nil}
	err := r.Update(context.Background(), 1, model.CustomerUpdate{})
	if !errors.Is(err, appErrors.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}

func TestProductUpdateEmptyNeverIssuesStatement(t *testing.T) {
	r := &ProductRepository{DB: nil}
	err := r.Update(context.Background(), 1, model.ProductUpdate{})
	if !errors.Is(err, appErrors.ErrEmptyUpdate) {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}
}
