package repository

import (
	"context"
	"database/sql"

	appErrors "github.com/DanEinstein/E-commerce-CRUD-Operations/internal/errors"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/model"
)

// ProductRepositoryInterface defines methods used by service
type ProductRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, id int) (*model.Product, error)
	Update(ctx context.Context, id int, u model.ProductUpdate) error
	Delete(ctx context.Context, id int) error
}

// ProductRepository is the concrete implementation
type ProductRepository struct {
	DB *sql.DB
}

func productAssignments(u model.ProductUpdate) []Assignment {
	fields := []Assignment{}
	if u.Name.Set {
		fields = append(fields, Assignment{Column: "name", Value: u.Name.Value})
	}
	if u.Price.Set {
		fields = append(fields, Assignment{Column: "price", Value: u.Price.Value})
	}
	if u.Description.Set {
		fields = append(fields, Assignment{Column: "description", Value: u.Description.Value})
	}
	if u.StockQuantity.Set {
		fields = append(fields, Assignment{Column: "stock_quantity", Value: u.StockQuantity.Value})
	}
	return fields
}

// ListAll fetches all products
func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `
        SELECT product_id, name, price, description, stock_quantity
        FROM products
    `
	products := []model.Product{}
	err := withConn(ctx, r.DB, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p model.Product
			if err := rows.Scan(&p.ProductID, &p.Name, &p.Price, &p.Description, &p.StockQuantity); err != nil {
				return err
			}
			products = append(products, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a new product and fills in the assigned identifier
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (name, price, description, stock_quantity)
        VALUES ($1, $2, $3, $4)
        RETURNING product_id
    `
	return withConn(ctx, r.DB, func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, query, p.Name, p.Price, p.Description, p.StockQuantity).Scan(&p.ProductID)
		if err != nil {
			return writeError(err)
		}
		return nil
	})
}

// GetByID fetches a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*model.Product, error) {
	query := `
        SELECT product_id, name, price, description, stock_quantity
        FROM products
        WHERE product_id = $1
    `
	var p model.Product
	err := withConn(ctx, r.DB, func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, query, id).Scan(&p.ProductID, &p.Name, &p.Price, &p.Description, &p.StockQuantity)
		if err == sql.ErrNoRows {
			return appErrors.NewNotFound("Product", id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Update applies a partial update built from the supplied fields only
func (r *ProductRepository) Update(ctx context.Context, id int, u model.ProductUpdate) error {
	query, args, err := buildUpdate("products", "product_id", id, productAssignments(u))
	if err != nil {
		return err
	}
	return withConn(ctx, r.DB, func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return writeError(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return appErrors.NewNotFound("Product", id)
		}
		return nil
	})
}

// Delete removes a product by ID
func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE product_id = $1`
	return withConn(ctx, r.DB, func(ctx context.Context, conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, query, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return appErrors.NewNotFound("Product", id)
		}
		return nil
	})
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
