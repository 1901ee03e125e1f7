// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/looplab/fsm"
)

// Election holds the candidates and ballots of one ranked-choice contest.
type Election struct {
	capacity   int
	candidates []*Candidate
	numVoters  int
	exhausted  int
	policy     Policy
	logger     *slog.Logger
	lifecycle  *fsm.FSM
}

type Option func(*Election)

// WithPolicy sets how tied-lowest candidates are eliminated.
func WithPolicy(p Policy) Option {
	return func(e *Election) {
		e.policy = p
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an election with room for exactly numCandidates candidates.
func New(numCandidates int, opts ...Option) (*Election, error) {
	if numCandidates < 1 {
		return nil, ErrInvalidCandidateCount
	}

	e := &Election{
		capacity: numCandidates,
		policy:   PolicySingle,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.lifecycle = newLifecycle(e.logger)

	return e, nil
}

// AddCandidate fills the next candidate slot. Candidates keep the index of
// the order they were added in.
func (e *Election) AddCandidate(name string) error {
	if !e.lifecycle.Is(StateSetup) {
		return ErrTallied
	}
	if len(e.candidates) == e.capacity {
		return &CapacityExceededError{Capacity: e.capacity, Name: name}
	}

	e.candidates = append(e.candidates, newCandidate(name))
	return nil
}

// AddBallot validates ranks and counts the ballot for its first choice.
// A rejected ballot leaves the election untouched.
func (e *Election) AddBallot(ranks []int) error {
	if !e.lifecycle.Is(StateSetup) {
		return ErrTallied
	}
	if len(e.candidates) < e.capacity {
		return ErrSetupIncomplete
	}
	if err := validateRanks(ranks, e.capacity); err != nil {
		return err
	}

	e.numVoters++
	e.assign(newBallot(ranks))
	return nil
}

// assign gives b to its top remaining candidate, skipping anyone already out
// of the race. A ballot with nobody left is counted as exhausted.
func (e *Election) assign(b *Ballot) {
	for !b.Exhausted() {
		top := b.Top()
		if c := e.candidates[top]; !c.Eliminated() {
			c.addBallot(b)
			return
		}
		b.EliminateCandidate(top)
	}
	e.exhausted++
}

// TopCandidates returns the indices of the active candidates tied for the
// most votes, in index order.
func (e *Election) TopCandidates() []int {
	var top []int
	most := -1
	for i, c := range e.candidates {
		if c.Eliminated() {
			continue
		}
		switch v := c.Votes(); {
		case v > most:
			most = v
			top = []int{i}
		case v == most:
			top = append(top, i)
		}
	}
	return top
}

// BottomCandidates returns the indices of the active candidates tied for the
// fewest votes, in index order.
func (e *Election) BottomCandidates() []int {
	var bottom []int
	fewest := -1
	for i, c := range e.candidates {
		if c.Eliminated() {
			continue
		}
		switch v := c.Votes(); {
		case fewest < 0 || v < fewest:
			fewest = v
			bottom = []int{i}
		case v == fewest:
			bottom = append(bottom, i)
		}
	}
	return bottom
}

// SelectWinner runs the tally and returns the winner's name, or the names of
// every tied candidate.
func (e *Election) SelectWinner() ([]string, error) {
	res, err := e.Tally()
	if err != nil {
		return nil, err
	}
	return res.Winners, nil
}

// Tally runs the instant-runoff elimination loop to completion. It consumes
// the election: a second call returns ErrTallied.
func (e *Election) Tally() (*Result, error) {
	if !e.lifecycle.Is(StateSetup) {
		return nil, ErrTallied
	}
	if len(e.candidates) < e.capacity {
		return nil, ErrSetupIncomplete
	}
	if e.numVoters == 0 {
		return nil, ErrNoBallots
	}

	ctx := context.Background()
	if err := e.lifecycle.Event(ctx, eventStart); err != nil {
		return nil, fmt.Errorf("failed to start tally: %w", err)
	}

	res := &Result{Policy: e.policy, Voters: e.numVoters}

	// Nobody ranked these first; they lose before any counting happens.
	for i, c := range e.candidates {
		if !c.Eliminated() && c.Votes() == 0 {
			res.ZeroVote = append(res.ZeroVote, c.Name())
			e.eliminate(0, []int{i})
		}
	}

	for round := 1; ; round++ {
		top := e.TopCandidates()
		record := Round{Number: round, Counts: e.counts(), Exhausted: e.exhausted}

		if len(top) == 1 && e.candidates[top[0]].Votes() > e.activeVoters()/2 {
			res.Rounds = append(res.Rounds, record)
			res.Outcome = OutcomeWinner
			res.Winners = e.names(top)
			if err := e.lifecycle.Event(ctx, eventMajority); err != nil {
				return nil, fmt.Errorf("failed to record winner: %w", err)
			}
			break
		}

		if len(top) == e.activeCandidates() {
			res.Rounds = append(res.Rounds, record)
			res.Outcome = OutcomeTie
			res.Winners = e.names(top)
			if err := e.lifecycle.Event(ctx, eventAllTied); err != nil {
				return nil, fmt.Errorf("failed to record tie: %w", err)
			}
			break
		}

		losers := e.BottomCandidates()
		if e.policy == PolicySingle {
			losers = losers[:1]
		}
		record.Eliminated = e.names(losers)
		res.Rounds = append(res.Rounds, record)
		e.eliminate(round, losers)
	}

	res.Exhausted = e.exhausted
	e.logger.Info("tally complete",
		"outcome", res.Outcome,
		"winners", res.Winners,
		"rounds", len(res.Rounds),
		"exhausted", res.Exhausted,
	)
	return res, nil
}

// eliminate removes every candidate in losers before moving any ballot, so
// a transfer never lands on a candidate leaving in the same round.
func (e *Election) eliminate(round int, losers []int) {
	drained := make([][]*Ballot, len(losers))
	for i, idx := range losers {
		c := e.candidates[idx]
		e.logger.Info("candidate eliminated",
			"round", round,
			"candidate", c.Name(),
			"votes", c.Votes(),
		)
		drained[i] = c.eliminate()
	}

	for i, idx := range losers {
		for _, b := range drained[i] {
			b.EliminateCandidate(idx)
			e.assign(b)
		}
	}
}

func (e *Election) counts() []Count {
	var counts []Count
	for i, c := range e.candidates {
		if c.Eliminated() {
			continue
		}
		counts = append(counts, Count{Candidate: i, Name: c.Name(), Votes: c.Votes()})
	}
	return counts
}

func (e *Election) names(indices []int) []string {
	names := make([]string, len(indices))
	for i, idx := range indices {
		names[i] = e.candidates[idx].Name()
	}
	return names
}

func (e *Election) activeCandidates() int {
	n := 0
	for _, c := range e.candidates {
		if !c.Eliminated() {
			n++
		}
	}
	return n
}

// activeVoters is the majority denominator: exhausted ballots no longer count.
func (e *Election) activeVoters() int {
	return e.numVoters - e.exhausted
}

func (e *Election) NumVoters() int {
	return e.numVoters
}

func (e *Election) NumCandidates() int {
	return e.capacity
}

// Exhausted is the number of ballots left without a remaining preference.
func (e *Election) Exhausted() int {
	return e.exhausted
}

func (e *Election) Policy() Policy {
	return e.policy
}

// State is the current lifecycle state, one of the State constants.
func (e *Election) State() string {
	return e.lifecycle.Current()
}

// Candidate returns the candidate at index i, eliminated or not.
func (e *Election) Candidate(i int) (*Candidate, bool) {
	if i < 0 || i >= len(e.candidates) {
		return nil, false
	}
	return e.candidates[i], true
}

// Candidates returns the candidates in the order they were added.
func (e *Election) Candidates() []*Candidate {
	return append([]*Candidate(nil), e.candidates...)
}
