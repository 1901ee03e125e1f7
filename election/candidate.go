// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// Candidate is a named contestant and the ballots currently counted for it.
type Candidate struct {
	name       string
	eliminated bool
	ballots    []*Ballot
}

func newCandidate(name string) *Candidate {
	return &Candidate{name: name}
}

func (c *Candidate) Name() string {
	return c.name
}

func (c *Candidate) Eliminated() bool {
	return c.eliminated
}

// Votes is the number of ballots whose top remaining preference is c.
func (c *Candidate) Votes() int {
	return len(c.ballots)
}

func (c *Candidate) addBallot(b *Ballot) {
	c.ballots = append(c.ballots, b)
}

// eliminate marks c as out of the race and hands back every ballot it held.
func (c *Candidate) eliminate() []*Ballot {
	drained := c.ballots
	c.ballots = nil
	c.eliminated = true
	return drained
}
