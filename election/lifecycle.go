// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"
)

// Election lifecycle states
const (
	StateSetup   = "setup"
	StateRunning = "running"
	StateWinner  = "winner"
	StateTie     = "tie"
)

// Lifecycle events
const (
	eventStart    = "start"
	eventMajority = "majority"
	eventAllTied  = "all_tied"
)

// newLifecycle builds the one-shot state machine: setup accepts candidates
// and ballots, running is the elimination loop, winner and tie are terminal.
func newLifecycle(logger *slog.Logger) *fsm.FSM {
	return fsm.NewFSM(
		StateSetup,
		fsm.Events{
			{Name: eventStart, Src: []string{StateSetup}, Dst: StateRunning},
			{Name: eventMajority, Src: []string{StateRunning}, Dst: StateWinner},
			{Name: eventAllTied, Src: []string{StateRunning}, Dst: StateTie},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, ev *fsm.Event) {
				logger.Debug("election state changed", "from", ev.Src, "to", ev.Dst)
			},
		},
	)
}
