// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Tally API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(cfg)

# Endpoints

Health:

	GET /health

Tallies:

	POST /tallies      - Tally JSON candidates and ballots
	POST /tallies/file - Tally a ballot file (?policy=single|batch)

Both tally routes are wrapped with request logging and a body size limit
taken from cfg.MaxBodyBytes.

# Handler Initialization

The router creates handler instances with dependency injection:

	tallyHandler := handlers.NewTallyHandler(cfg)
*/
package router
