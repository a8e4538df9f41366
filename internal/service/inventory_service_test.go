package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityScoreUrgent(t *testing.T) {
	// Stock at or below demand: score approaches 1 as stock runs out.
	assert.InDelta(t, 1.0, PriorityScore(0, 50), 0.001)
	assert.InDelta(t, 0.5, PriorityScore(25, 50), 0.001)
	assert.InDelta(t, 0.0, PriorityScore(50, 50), 0.001)
}

func TestPriorityScoreSurplus(t *testing.T) {
	// Stock above demand: score shrinks as the surplus grows.
	assert.InDelta(t, 0.5, PriorityScore(100, 50), 0.001)
	assert.InDelta(t, 0.1, PriorityScore(500, 50), 0.001)
}

func TestPriorityScoreZeroBoundaries(t *testing.T) {
	// Zero-need, zero-stock must yield a defined, non-urgent score.
	assert.Equal(t, 0.0, PriorityScore(0, 0))

	// Unreferenced ingredient with stock on hand is never urgent.
	assert.Equal(t, 0.0, PriorityScore(75, 0))
}

func TestPriorityScoreNegativeStock(t *testing.T) {
	// Oversold inventory scores above 1, keeping it at the top of the
	// restock list.
	score := PriorityScore(-10, 50)
	assert.Greater(t, score, 1.0)
}
