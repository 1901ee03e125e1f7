// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/middleware"
)

func NewRouter(cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	tallyHandler := handlers.NewTallyHandler(cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Tallies
	mux.HandleFunc("POST /tallies", middleware.WithLogging(
		middleware.WithBodyLimit(cfg.MaxBodyBytes, tallyHandler.CreateTally)))
	mux.HandleFunc("POST /tallies/file", middleware.WithLogging(
		middleware.WithBodyLimit(cfg.MaxBodyBytes, tallyHandler.CreateTallyFromFile)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-tally API v1"))
	})

	return mux
}
