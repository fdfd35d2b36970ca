// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/model"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customers": customers,
	})
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Address   *string `json:"address"`
		Phone     *string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if payload.FirstName == nil || *payload.FirstName == "" ||
		payload.LastName == nil || *payload.LastName == "" ||
		payload.Email == nil || *payload.Email == "" {
		writeDetail(w, http.StatusBadRequest, "first_name, last_name and email are required")
		return
	}

	body := model.Customer{
		FirstName: *payload.FirstName,
		LastName:  *payload.LastName,
		Email:     *payload.Email,
		Address:   payload.Address,
		Phone:     payload.Phone,
	}

	id, err := c.CustomerService.CreateCustomer(r.Context(), &body)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Customer created successfully",
		"customer_id": id,
	})
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := c.CustomerService.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"customer": customer,
	})
}

func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var body model.CustomerUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := c.CustomerService.UpdateCustomer(r.Context(), id, body); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Customer updated successfully",
	})
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := c.CustomerService.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Customer deleted successfully",
	})
}
