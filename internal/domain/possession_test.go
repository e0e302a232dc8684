package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPossessionDurationMs(t *testing.T) {
	p := Possession{
		ID:           "pos1",
		GameID:       "g1",
		StartMs:      12000,
		EndMs:        26500,
		Team:         "home",
		Outcome:      "score",
		Points:       2,
		StartTrigger: "rebound",
		EndTrigger:   "made-basket",
	}

	assert.Equal(t, int64(14500), p.DurationMs())
}
