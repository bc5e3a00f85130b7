package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlabTakeReturnsIndependentWindows(t *testing.T) {
	s, err := newSlab(20)
	assert.Nil(t, err)

	a := s.take([]byte("hello"))
	b := s.take([]byte("world"))
	assert.Equal(t, "hello", string(a))
	assert.Equal(t, "world", string(b))

	// a's capacity is pinned to its length: appending to it must not spill
	// into b's bytes.
	a = append(a, 'X')
	assert.Equal(t, "world", string(b))
}
