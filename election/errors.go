// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBallot         = errors.New("invalid ballot")
	ErrCapacityExceeded      = errors.New("candidate capacity exceeded")
	ErrInvalidCandidateCount = errors.New("candidate count must be at least 1")
	ErrSetupIncomplete       = errors.New("not every candidate slot is filled")
	ErrNoBallots             = errors.New("no ballots cast")
	ErrTallied               = errors.New("election already tallied")
	ErrUnknownPolicy         = errors.New("unknown elimination policy")
)

// InvalidBallotError reports why a ranking was rejected at ingestion.
// It matches ErrInvalidBallot with errors.Is.
type InvalidBallotError struct {
	Ranks  []int
	Reason string
}

func (e *InvalidBallotError) Error() string {
	return fmt.Sprintf("invalid ballot %v: %s", e.Ranks, e.Reason)
}

func (e *InvalidBallotError) Unwrap() error {
	return ErrInvalidBallot
}

// CapacityExceededError is returned by AddCandidate once every slot
// declared at construction is taken.
type CapacityExceededError struct {
	Capacity int
	Name     string
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("cannot add candidate %q: all %d slots are filled", e.Name, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}
