// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Tally API.

# Handler Types

  - TallyHandler: runs one ranked-choice tally per request

Handlers are created via constructor functions that accept the Config:

	tallyHandler := handlers.NewTallyHandler(cfg)

# Tallies

	POST /tallies      → CreateTally (JSON candidates and ballots)
	POST /tallies/file → CreateTallyFromFile (ballot file body)

Both accept an optional policy ("single" or "batch"), in the JSON body or
the ?policy= query parameter, falling back to the configured policy.

Invalid ballots do not fail the request. They are skipped and listed in
the response's rejected field with the reason. A request with no valid
ballots is a 400.

Every tally gets a random tally_id that also tags its log lines. Nothing is
stored; the election lives only for the duration of the request.
*/
package handlers
