package repository

import (
	"context"
	"database/sql"

	appErrors "github.com/DanEinstein/E-commerce-CRUD-Operations/internal/errors"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id int) (*model.Customer, error)
	Update(ctx context.Context, id int, u model.CustomerUpdate) error
	Delete(ctx context.Context, id int) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB *sql.DB
}

// customerAssignments maps the supplied fields of a partial update onto the
// closed set of customer columns, in declaration order. An explicit null
// carries through as a nil value, binding the column to NULL.
func customerAssignments(u model.CustomerUpdate) []Assignment {
	fields := []Assignment{}
	if u.FirstName.Set {
		fields = append(fields, Assignment{Column: "first_name", Value: u.FirstName.Value})
	}
	if u.LastName.Set {
		fields = append(fields, Assignment{Column: "last_name", Value: u.LastName.Value})
	}
	if u.Email.Set {
		fields = append(fields, Assignment{Column: "email", Value: u.Email.Value})
	}
	if u.Address.Set {
		fields = append(fields, Assignment{Column: "address", Value: u.Address.Value})
	}
	if u.Phone.Set {
		fields = append(fields, Assignment{Column: "phone", Value: u.Phone.Value})
	}
	return fields
}

// ListAll fetches all customers
func (r *CustomerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	query := `
        SELECT customer_id, first_name, last_name, email, address, phone
        FROM customers
    `
	customers := []model.Customer{}
	err := withConn(ctx, r.DB, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var c model.Customer
			if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &c.Address, &c.Phone); err != nil {
				return err
			}
			customers = append(customers, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// Create inserts a new customer and fills in the assigned identifier
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (first_name, last_name, email, address, phone)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING customer_id
    `
	return withConn(ctx, r.DB, func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Address, c.Phone).Scan(&c.CustomerID)
		if err != nil {
			return writeError(err)
		}
		return nil
	})
}

// GetByID fetches a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	query := `
        SELECT customer_id, first_name, last_name, email, address, phone
        FROM customers
        WHERE customer_id = $1
    `
	var c model.Customer
	err := withConn(ctx, r.DB, func(ctx context.Context, conn *sql.Conn) error {
		err := conn.QueryRowContext(ctx, query, id).Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.Email, &c.Address, &c.Phone)
		if err == sql.ErrNoRows {
			return appErrors.NewNotFound("Customer", id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update applies a partial update; the statement is built before any
// connection is borrowed, so an empty update never reaches the pool.
func (r *CustomerRepository) Update(ctx context.Context, id int, u model.CustomerUpdate) error {
	query, args, err := buildUpdate("customers", "customer_id", id, customerAssignments(u))
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
			return appErrors.NewNotFound("Customer", id)
		}
		return nil
	})
}

// Delete removes a customer by ID
func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM customers WHERE customer_id = $1`
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
			return appErrors.NewNotFound("Customer", id)
		}
		return nil
	})
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
