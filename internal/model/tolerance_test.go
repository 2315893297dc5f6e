package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtLeast_BoundaryInclusiveAtToleranceEdge(t *testing.T) {
	threshold := 44.0
	tolerance := 0.1
	edge := threshold - tolerance

	assert.True(t, AtLeast(edge, threshold, tolerance))
	assert.True(t, AtLeast(threshold, threshold, tolerance))
	assert.False(t, AtLeast(edge-1e-9, threshold, tolerance))
	assert.False(t, AtLeast(10, threshold, tolerance))
}

func TestAtLeast_NegativeToleranceTreatedAsMagnitude(t *testing.T) {
	assert.True(t, AtLeast(13.95, 14, -0.1))
}

func TestWithinTolerance(t *testing.T) {
	assert.True(t, WithinTolerance(10, 10.05, 0.1))
	assert.True(t, WithinTolerance(10.05, 10, 0.1))
	assert.False(t, WithinTolerance(10, 10.2, 0.1))
	assert.False(t, WithinTolerance(10.2, 10, 0.1))
}
