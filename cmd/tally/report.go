// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-tally/ballotfile"
	"github.com/danielhkuo/quickly-tally/election"
)

func printRejected(w io.Writer, rejected []ballotfile.Rejection) {
	for _, r := range rejected {
		fmt.Fprintf(w, "skipped ballot on line %d: %v\n", r.Line, r.Err)
	}
}

func printRounds(w io.Writer, res *election.Result) {
	if len(res.ZeroVote) > 0 {
		fmt.Fprintf(w, "no first-choice votes: %s\n", strings.Join(res.ZeroVote, ", "))
	}
	for _, round := range res.Rounds {
		fmt.Fprintf(w, "%s round:\n", humanize.Ordinal(round.Number))
		for _, c := range round.Counts {
			fmt.Fprintf(w, "  %-20s %s\n", c.Name, humanize.Comma(int64(c.Votes)))
		}
		if round.Exhausted > 0 {
			fmt.Fprintf(w, "  %-20s %s\n", "(exhausted)", humanize.Comma(int64(round.Exhausted)))
		}
		if len(round.Eliminated) > 0 {
			fmt.Fprintf(w, "  eliminated: %s\n", strings.Join(round.Eliminated, ", "))
		}
	}
}

func printOutcome(w io.Writer, res *election.Result) {
	rounds := len(res.Rounds)
	plural := "s"
	if rounds == 1 {
		plural = ""
	}
	switch res.Outcome {
	case election.OutcomeWinner:
		fmt.Fprintf(w, "The winner is %s after %d round%s (%s ballots, %s policy).\n",
			res.Winners[0], rounds, plural, humanize.Comma(int64(res.Voters)), res.Policy)
	case election.OutcomeTie:
		fmt.Fprintf(w, "The election is a tie between %s after %d round%s (%s ballots, %s policy).\n",
			strings.Join(res.Winners, ", "), rounds, plural, humanize.Comma(int64(res.Voters)), res.Policy)
	}
}
