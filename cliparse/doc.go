// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - Policy: Elimination policy for tied-lowest candidates (default: single)
  - MaxBallots: Ballots accepted per tally request (default: 1,000,000)
  - MaxBodyBytes: Request body limit (default: 32 MiB)
  - EnvFile: Dotenv file loaded at startup (default: .env)

# CLI Flags

	-p            Server port
	-policy       single or batch
	-max-ballots  Maximum ballots per tally
	-env-file     Dotenv file path ("" disables)

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	TALLY_POLICY         → -policy
	TALLY_MAX_BALLOTS    → -max-ballots
	TALLY_MAX_BODY_BYTES (env only)

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the dotenv file. A missing
default .env is ignored; a missing file named with -env-file is an error.

# Validation

ParseFlags returns an error for malformed numbers, a port outside 1-65535,
non-positive limits, or an unknown policy.
*/
package cliparse
