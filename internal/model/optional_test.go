package model_test

import (
	"encoding/json"
	"testing"

	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/model"
)

func TestCustomerUpdateDistinguishesNullFromOmitted(t *testing.T) {
	var u model.CustomerUpdate
	if err := json.Unmarshal([]byte(`{"address": null, "phone": "123"}`), &u); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !u.Address.Set || u.Address.Value != nil {
		t.Errorf("explicit null must be supplied with nil value, got %+v", u.Address)
	}
	if !u.Phone.Set || u.Phone.Value == nil || *u.Phone.Value != "123" {
		t.Errorf("expected phone supplied as 123, got %+v", u.Phone)
	}
	if u.FirstName.Set || u.LastName.Set || u.Email.Set {
		t.Errorf("omitted fields must not be supplied, got %+v", u)
	}
}

func TestProductUpdateEmptyBodyHasNoSuppliedFields(t *testing.T) {
	var u model.ProductUpdate
	if err := json.Unmarshal([]byte(`{}`), &u); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if u.Name.Set || u.Price.Set || u.Description.Set || u.StockQuantity.Set {
		t.Errorf("expected no supplied fields for empty body, got %+v", u)
	}
}

func TestProductUpdateZeroValuesAreSupplied(t *testing.T) {
	var u model.ProductUpdate
	if err := json.Unmarshal([]byte(`{"price": 0, "stock_quantity": 0}`), &u); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !u.Price.Set || u.Price.Value == nil || *u.Price.Value != 0 {
		t.Errorf("expected price supplied as 0, got %+v", u.Price)
	}
	if !u.StockQuantity.Set || u.StockQuantity.Value == nil || *u.StockQuantity.Value != 0 {
		t.Errorf("expected stock_quantity supplied as 0, got %+v", u.StockQuantity)
	}
}
