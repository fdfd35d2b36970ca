// internal/model/customer.go
package model

type Customer struct {
	CustomerID int     `db:"customer_id" json:"customer_id"`
	FirstName  string  `db:"first_name" json:"first_name"`
	LastName   string  `db:"last_name" json:"last_name"`
	Email      string  `db:"email" json:"email"`
	Address    *string `db:"address" json:"address"`
	Phone      *string `db:"phone" json:"phone"`
}

// CustomerUpdate carries a partial update. Only supplied fields reach the
// database; an explicit null clears the column.
type CustomerUpdate struct {
	FirstName Optional[string] `json:"first_name"`
	LastName  Optional[string] `json:"last_name"`
	Email     Optional[string] `json:"email"`
	Address   Optional[string] `json:"address"`
	Phone     Optional[string] `json:"phone"`
}
