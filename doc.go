// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Tally API server.

Quickly Tally runs ranked-choice (instant-runoff) elections. Each request
carries the candidates and ranked ballots, and the response reports the
winner or the tied finalists together with every round of counting.

# Starting the Server

No configuration is required:

	go run main.go

Or with flags:

	go run main.go -p 3318 -policy batch

A command-line tallier for ballot files lives in cmd/tally.

# Configuration

All settings are optional. Values are read from flags, then the
environment, then a .env file:

  - PORT (-p): Server port (default: 3318)
  - TALLY_POLICY (-policy): Tied-lowest elimination, single or batch (default: single)
  - TALLY_MAX_BALLOTS (-max-ballots): Ballots accepted per tally (default: 1000000)
  - TALLY_MAX_BODY_BYTES: Request body limit (default: 32 MiB)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: Ballots, candidates and the instant-runoff tally
  - ballotfile: Plain-text ballot file format
  - handlers: HTTP request handlers (tallies)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, body limits, JSON helpers
  - models: Request/response types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
