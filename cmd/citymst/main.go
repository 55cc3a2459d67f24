// Command citymst serves random-city minimum spanning trees over HTTP.
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/katalvlaran/citymst/internal/api"
	"github.com/katalvlaran/citymst/internal/config"
	"github.com/katalvlaran/citymst/pipeline"
	"github.com/katalvlaran/citymst/points"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	p := pipeline.New(points.Default(),
		pipeline.WithSeed(cfg.Seed),
		pipeline.WithMethod(cfg.Method),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(p, cfg.DefaultK),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Server listening addr=%s method=%s cities=%d", srv.Addr, cfg.Method, p.Store().Len())
	log.Fatal(srv.ListenAndServe())
}
