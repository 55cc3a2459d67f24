package handlers

import (
	"net/http"

	"github.com/katalvlaran/citymst/points"
)

// CitiesHandler lists the registry cities can be sampled from.
type CitiesHandler struct {
	Store *points.Store
}

// List returns {"count": N, "cities": [...]}.
func (h *CitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"count":  h.Store.Len(),
		"cities": h.Store.All(),
	})
}
