// internal/controller/product_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/model"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/service"
)

type ProductController struct {
	ProductService *service.ProductService
}

func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.ProductService.ListProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name          *string  `json:"name"`
		Price         *float64 `json:"price"`
		Description   *string  `json:"description"`
		StockQuantity *int     `json:"stock_quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if payload.Name == nil || *payload.Name == "" || payload.Price == nil {
		writeDetail(w, http.StatusBadRequest, "name and price are required")
		return
	}

	body := model.Product{
		Name:        *payload.Name,
		Price:       *payload.Price,
		Description: payload.Description,
	}
	// stock_quantity defaults to 0 when the body omits it
	if payload.StockQuantity != nil {
		body.StockQuantity = *payload.StockQuantity
	}

	id, err := c.ProductService.CreateProduct(r.Context(), &body)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Product created successfully",
		"product_id": id,
	})
}

func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := c.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product": product,
	})
}

func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var body model.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := c.ProductService.UpdateProduct(r.Context(), id, body); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product updated successfully",
	})
}

func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := c.ProductService.DeleteProduct(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Product deleted successfully",
	})
}
