// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"strings"
)

// Policy decides how many candidates leave the race when several are tied
// for the fewest votes.
type Policy int

const (
	// PolicySingle eliminates one tied-lowest candidate per round, the one
	// added first.
	PolicySingle Policy = iota
	// PolicyBatch eliminates every tied-lowest candidate in the same round.
	PolicyBatch
)

func (p Policy) String() string {
	switch p {
	case PolicySingle:
		return "single"
	case PolicyBatch:
		return "batch"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy accepts the names produced by Policy.String, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return PolicySingle, nil
	case "batch":
		return PolicyBatch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
