package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/katalvlaran/citymst/pipeline"
	"github.com/katalvlaran/citymst/render"
	"github.com/katalvlaran/citymst/sampler"
)

// minCities is the smallest sample the map view accepts; a single city has no tree to draw.
const minCities = 2

// MSTHandler serves freshly sampled spanning trees.
type MSTHandler struct {
	Pipeline *pipeline.Pipeline
	DefaultK int
}

// mstResponse is the /mst body: the render payload plus framing hints.
type mstResponse struct {
	render.Payload
	Total  float64    `json:"total"`
	Center [2]float64 `json:"center"` // [lon, lat]
}

// Payload handles GET /mst?k=N.
func (h *MSTHandler) Payload(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}

	c := res.Payload.Center()
	writeJSON(w, r, http.StatusOK, mstResponse{
		Payload: res.Payload,
		Total:   res.MST.Total,
		Center:  [2]float64{c.Lon(), c.Lat()},
	})
}

// GeoJSON handles GET /mst.geojson?k=N.
func (h *MSTHandler) GeoJSON(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}

	writeJSONType(w, r, http.StatusOK, "application/geo+json", res.Payload.GeoJSON())
}

// run validates the request and executes the pipeline, writing the error response itself on failure.
func (h *MSTHandler) run(w http.ResponseWriter, r *http.Request) (pipeline.Result, bool) {
	if !allowGet(w, r) {
		return pipeline.Result{}, false
	}

	k, err := h.parseK(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return pipeline.Result{}, false
	}

	res, err := h.Pipeline.Run(r.Context(), k)
	switch {
	case err == nil:
		return res, true
	case errors.Is(err, sampler.ErrOutOfRange):
		writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		log.Printf("mst failed: k=%d err=%v", k, err)
		writeError(w, r, http.StatusInternalServerError, "internal error")
	}

	return pipeline.Result{}, false
}

// parseK reads ?k=, defaulting to DefaultK and enforcing [minCities, N].
func (h *MSTHandler) parseK(r *http.Request) (int, error) {
	n := h.Pipeline.Store().Len()
	raw := r.URL.Query().Get("k")
	if raw == "" {
		if h.DefaultK > n {
			return n, nil
		}
		return h.DefaultK, nil
	}

	k, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("k must be an integer, got %q", raw)
	}
	if k < minCities || k > n {
		return 0, fmt.Errorf("k must be in [%d,%d], got %d", minCities, n, k)
	}

	return k, nil
}
