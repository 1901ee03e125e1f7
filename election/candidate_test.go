// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateEliminateDrainsBallots(t *testing.T) {
	c := newCandidate("a")
	b1 := newBallot([]int{1, 2})
	b2 := newBallot([]int{1, 2})
	c.addBallot(b1)
	c.addBallot(b2)
	assert.Equal(t, 2, c.Votes())
	assert.False(t, c.Eliminated())

	drained := c.eliminate()
	assert.Equal(t, []*Ballot{b1, b2}, drained)
	assert.True(t, c.Eliminated())
	assert.Equal(t, 0, c.Votes())
	assert.Equal(t, "a", c.Name())

	assert.Empty(t, c.eliminate())
}
