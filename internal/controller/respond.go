// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/DanEinstein/E-commerce-CRUD-Operations/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail emits the {"detail": ...} error shape the frontend expects.
func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}

// respondError maps the storage error taxonomy onto HTTP outcomes.
// NotFound → 404, empty update and constraint violations → 400,
// pool failures → 503, anything else → 500.
func respondError(w http.ResponseWriter, err error) {
	var nf *appErrors.NotFoundError
	if errors.As(err, &nf) {
		writeDetail(w, http.StatusNotFound, nf.Entity+" not found")
		return
	}
	if errors.Is(err, appErrors.ErrEmptyUpdate) {
		writeDetail(w, http.StatusBadRequest, "No fields to update")
		return
	}
	var ce *appErrors.ConstraintError
	if errors.As(err, &ce) {
		writeDetail(w, http.StatusBadRequest, "Database error: "+ce.Cause.Error())
		return
	}
	var ue *appErrors.UnavailableError
	if errors.As(err, &ue) {
		writeDetail(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeDetail(w, http.StatusInternalServerError, err.Error())
}
