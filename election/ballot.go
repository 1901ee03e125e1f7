// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// Ballot is one voter's complete ranking of the candidates.
// The ranking never changes; only the cursor moves as candidates drop out.
type Ballot struct {
	ranks   []int  // ranks[i] is the rank given to candidate i, 1 is best
	order   []int  // candidate indices, best first
	removed []bool // candidates no longer considered on this ballot
	cursor  int    // position in order of the top remaining candidate
}

// newBallot builds a ballot from a ranking that already passed validateRanks.
func newBallot(ranks []int) *Ballot {
	b := &Ballot{
		ranks:   append([]int(nil), ranks...),
		order:   make([]int, len(ranks)),
		removed: make([]bool, len(ranks)),
	}
	for candidate, rank := range ranks {
		b.order[rank-1] = candidate
	}
	return b
}

// Top returns the index of the best-ranked candidate still under
// consideration, or -1 once the ballot is exhausted.
func (b *Ballot) Top() int {
	if b.Exhausted() {
		return -1
	}
	return b.order[b.cursor]
}

// Exhausted reports whether every ranked candidate has been eliminated.
func (b *Ballot) Exhausted() bool {
	return b.cursor >= len(b.order)
}

// EliminateCandidate drops candidate from this ballot and advances the
// cursor to the next remaining preference. Unknown indices are ignored.
func (b *Ballot) EliminateCandidate(candidate int) {
	if candidate < 0 || candidate >= len(b.removed) {
		return
	}
	b.removed[candidate] = true
	for b.cursor < len(b.order) && b.removed[b.order[b.cursor]] {
		b.cursor++
	}
}

// Ranks returns a copy of the original ranking.
func (b *Ballot) Ranks() []int {
	return append([]int(nil), b.ranks...)
}

// validateRanks checks that ranks holds exactly one entry per candidate and
// that the entries are a permutation of 1..n.
func validateRanks(ranks []int, n int) error {
	if len(ranks) != n {
		return &InvalidBallotError{
			Ranks:  append([]int(nil), ranks...),
			Reason: fmt.Sprintf("expected %d ranks, got %d", n, len(ranks)),
		}
	}

	// n in-range values with no repeats is a permutation
	seen := make([]bool, n)
	for _, rank := range ranks {
		if rank < 1 || rank > n {
			return &InvalidBallotError{
				Ranks:  append([]int(nil), ranks...),
				Reason: fmt.Sprintf("rank %d out of range 1..%d", rank, n),
			}
		}
		if seen[rank-1] {
			return &InvalidBallotError{
				Ranks:  append([]int(nil), ranks...),
				Reason: fmt.Sprintf("duplicate rank %d", rank),
			}
		}
		seen[rank-1] = true
	}
	return nil
}
