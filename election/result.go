// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Outcome is how a tally ended.
type Outcome string

const (
	OutcomeWinner Outcome = "winner"
	OutcomeTie    Outcome = "tie"
)

// Result is the full record of a tally.
type Result struct {
	Outcome Outcome
	// Winners holds one name for OutcomeWinner, every tied name for OutcomeTie.
	Winners   []string
	Policy    Policy
	Voters    int
	Exhausted int
	// ZeroVote lists candidates removed before the first round because
	// nobody ranked them first.
	ZeroVote []string
	Rounds   []Round
}

// Round records the standings at the start of a round and who left the race
// at its end. The deciding round has no eliminations.
type Round struct {
	Number     int
	Counts     []Count
	Eliminated []string
	Exhausted  int
}

// Count is one active candidate's vote total in a round.
type Count struct {
	Candidate int
	Name      string
	Votes     int
}
