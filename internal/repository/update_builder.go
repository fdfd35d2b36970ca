package repository

import (
	"fmt"
	"strings"

	appErrors "github.com/DanEinstein/E-commerce-CRUD-Operations/internal/errors"
)

// Assignment pairs a column with its new value. Columns are drawn only from
// the closed per-entity sets in this package, never from request payloads.
type Assignment struct {
	Column string
	Value  interface{}
}

// buildUpdate renders an UPDATE touching exactly the given columns, values
// bound positionally with the row identifier as the final parameter.
func buildUpdate(table, idColumn string, id int, fields []Assignment) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, appErrors.ErrEmptyUpdate
	}

	set := make([]string, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for i, f := range fields {
		set[i] = fmt.Sprintf("%s=$%d", f.Column, i+1)
		args = append(args, f.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s=$%d",
		table, strings.Join(set, ", "), idColumn, len(fields)+1,
	)
	return query, args, nil
}
