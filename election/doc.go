// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements a ranked-choice (instant-runoff) tally.

# Setup

An Election is created with a fixed number of candidate slots. Candidates
are added in order and keep their index for the life of the election:

	e, err := election.New(3)
	e.AddCandidate("a")
	e.AddCandidate("b")
	e.AddCandidate("c")

# Ballots

Every ballot ranks every candidate. ranks[i] is the rank of candidate i,
and the values must be a permutation of 1..n:

	e.AddBallot([]int{1, 2, 3}) // a > b > c
	e.AddBallot([]int{2, 1, 3}) // b > a > c

Invalid rankings return an *InvalidBallotError and leave the election
unchanged. A valid ballot is counted for its first choice immediately.

# Tally

	winners, err := e.SelectWinner()

or, for the round-by-round record:

	res, err := e.Tally()

The tally first eliminates every candidate with no first-choice votes.
Then, each round:

 1. A lone leader holding more than half of the live ballots wins.
 2. If every remaining candidate has the same count, they all tie.
 3. Otherwise the lowest candidate(s) are eliminated and their ballots move
    to each ballot's next remaining preference.

A ballot whose preferences have all been eliminated is exhausted. It stops
counting for anyone and no longer counts toward the majority threshold.

# Elimination Policy

When several candidates share the lowest count:

  - PolicySingle (default): eliminate one per round, the earliest added
  - PolicyBatch: eliminate all of them in the same round

The two can produce different winners.

# Lifecycle

An election moves setup → running → winner | tie. Candidates and ballots
are only accepted during setup, and the tally runs once; afterwards every
mutating call returns ErrTallied.
*/
package election
