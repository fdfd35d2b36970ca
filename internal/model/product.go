// internal/model/product.go
package model

type Product struct {
	ProductID     int     `db:"product_id" json:"product_id"`
	Name          string  `db:"name" json:"name"`
	Price         float64 `db:"price" json:"price"`
	Description   *string `db:"description" json:"description"`
	StockQuantity int     `db:"stock_quantity" json:"stock_quantity"`
}

// ProductUpdate carries a partial update. Only supplied fields reach the
// database; an explicit null clears the column.
type ProductUpdate struct {
	Name          Optional[string]  `json:"name"`
	Price         Optional[float64] `json:"price"`
	Description   Optional[string]  `json:"description"`
	StockQuantity Optional[int]     `json:"stock_quantity"`
}
