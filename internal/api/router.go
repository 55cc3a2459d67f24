package api

import (
	"net/http"

	"github.com/katalvlaran/citymst/internal/api/handlers"
	"github.com/katalvlaran/citymst/pipeline"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of how the pipeline is built).
func NewRouter(p *pipeline.Pipeline, defaultK int) http.Handler {
	mux := http.NewServeMux()

	mstHandler := &handlers.MSTHandler{Pipeline: p, DefaultK: defaultK}
	citiesHandler := &handlers.CitiesHandler{Store: p.Store()}

	mux.HandleFunc("/{$}", handlers.Root)
	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/cities", citiesHandler.List)
	mux.HandleFunc("/mst", mstHandler.Payload)
	mux.HandleFunc("/mst.geojson", mstHandler.GeoJSON)

	return loggingMiddleware(mux)
}
