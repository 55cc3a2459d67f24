package handlers

import (
	"net/http"
)

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Root is the service status endpoint.
func Root(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"message": "This is your main app"})
}
