package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterUnconfirmedDropsUnsizedSingletons(t *testing.T) {
	unsizedSingleton := mkPair("AAAA", "", "CCCC", "")
	unsizedSingleton.CopyNumber = 1
	unsizedSingleton.FragmentSize = 0

	sizedSingleton := mkPair("AAAA", "", "CCCC", "")
	sizedSingleton.CopyNumber = 1
	sizedSingleton.FragmentSize = 120

	unsizedButConfirmed := mkPair("AAAA", "", "CCCC", "")
	unsizedButConfirmed.CopyNumber = 2
	unsizedButConfirmed.FragmentSize = 0

	out := filterUnconfirmed([]ReadPair{unsizedSingleton, sizedSingleton, unsizedButConfirmed})
	assert.Len(t, out, 2)
	for _, p := range out {
		assert.True(t, p.FragmentSize > 0 || p.CopyNumber > 1)
	}
}
