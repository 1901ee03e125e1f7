// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateTallyRequest: candidates, ballots ([][]int), optional policy

# Response Types

Types for JSON responses:

  - TallyResponse: tally_id, outcome, winners, policy, voters, exhausted,
    zero_vote, rounds, rejected
  - RoundResult: per-round vote counts and eliminations
  - CandidateVotes: one candidate's count in a round
  - RejectedBallot: index, line, ranks and reason for a refused ballot
  - ErrorResponse: error, message

# Constants

Outcome values:

	OutcomeWinner = "winner"
	OutcomeTie    = "tie"
*/
package models
