package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundedPageSize(t *testing.T) {
	l := Bounded(250)

	assert.Equal(t, 100, l.pageSize(0))
	assert.Equal(t, 100, l.pageSize(100))
	assert.Equal(t, 50, l.pageSize(200))
}

func TestBoundedReached(t *testing.T) {
	l := Bounded(250)

	assert.False(t, l.reached(0))
	assert.False(t, l.reached(249))
	assert.True(t, l.reached(250))
	assert.True(t, l.reached(300))
}

func TestUnbounded(t *testing.T) {
	l := Unbounded()

	assert.True(t, l.IsUnbounded())
	assert.Equal(t, 100, l.pageSize(0))
	assert.Equal(t, 100, l.pageSize(1_000_000))
	assert.False(t, l.reached(1_000_000))
}

func TestSmallBoundRequestsExactSize(t *testing.T) {
	assert.Equal(t, 30, Bounded(30).pageSize(0))
	assert.Equal(t, 1, Bounded(1).pageSize(0))
}
