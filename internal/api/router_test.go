package api_test

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/katalvlaran/citymst/internal/api"
	"github.com/katalvlaran/citymst/pipeline"
	"github.com/katalvlaran/citymst/points"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	p := pipeline.New(points.Default(),
		pipeline.WithSeed(7),
		pipeline.WithLogger(log.New(io.Discard, "", 0)),
	)
	srv := httptest.NewServer(api.NewRouter(p, 5))
	t.Cleanup(srv.Close)

	return srv
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

func TestRootAndHealth(t *testing.T) {
	srv := newServer(t)

	resp, body := get(t, srv.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"This is your main app"}`, string(body))

	resp, body = get(t, srv.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	resp, _ = get(t, srv.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCities(t *testing.T) {
	srv := newServer(t)

	resp, body := get(t, srv.URL+"/cities")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Count  int            `json:"count"`
		Cities []points.Point `json:"cities"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, 10, out.Count)
	require.Len(t, out.Cities, 10)
	assert.Equal(t, points.Default().All(), out.Cities)
}

type mstBody struct {
	EdgeLons []*float64 `json:"edgeLons"`
	EdgeLats []*float64 `json:"edgeLats"`
	NodeLons []float64  `json:"nodeLons"`
	NodeLats []float64  `json:"nodeLats"`
	Labels   []string   `json:"labels"`
	Total    float64    `json:"total"`
	Center   [2]float64 `json:"center"`
}

func TestMST_Payload(t *testing.T) {
	srv := newServer(t)

	resp, body := get(t, srv.URL+"/mst?k=3")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var out mstBody
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Labels, 3)
	assert.Len(t, out.NodeLons, 3)
	assert.Len(t, out.NodeLats, 3)
	require.Len(t, out.EdgeLons, 6)
	require.Len(t, out.EdgeLats, 6)
	for i := 2; i < 6; i += 3 {
		assert.Nil(t, out.EdgeLons[i], "separator at %d", i)
		assert.Nil(t, out.EdgeLats[i], "separator at %d", i)
	}
	assert.Greater(t, out.Total, 0.0)

	store := points.Default()
	for _, name := range out.Labels {
		_, err := store.Lookup(name)
		assert.NoError(t, err)
	}
}

func TestMST_DefaultK(t *testing.T) {
	srv := newServer(t)

	resp, body := get(t, srv.URL+"/mst")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out mstBody
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Len(t, out.Labels, 5)
	assert.Len(t, out.EdgeLons, 3*4)
}

func TestMST_BadK(t *testing.T) {
	srv := newServer(t)

	for _, q := range []string{"k=1", "k=0", "k=-3", "k=11", "k=abc"} {
		resp, body := get(t, srv.URL+"/mst?"+q)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)

		var out map[string]string
		require.NoError(t, json.Unmarshal(body, &out), q)
		assert.NotEmpty(t, out["error"], q)
	}
}

func TestMST_GeoJSON(t *testing.T) {
	srv := newServer(t)

	resp, body := get(t, srv.URL+"/mst.geojson?k=4")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))

	fc, err := geojson.UnmarshalFeatureCollection(body)
	require.NoError(t, err)
	assert.Len(t, fc.Features, 3+4)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newServer(t)

	for _, path := range []string{"/", "/health", "/cities", "/mst"} {
		resp, err := http.Post(srv.URL+path, "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode, path)
		assert.Equal(t, http.MethodGet, resp.Header.Get("Allow"), path)
	}
}
