package dedupe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNOnlyDropsMostlyNReads(t *testing.T) {
	good := strings.Repeat("A", MinimumNonNBases)
	bad := strings.Repeat("N", MinimumNonNBases-1) + "A"
	pairs := []ReadPair{
		mkPair(good, "", good, ""),
		mkPair(bad, "", good, ""),
		mkPair(good, "", bad, ""),
	}
	out := filterNOnly(pairs)
	assert.Len(t, out, 1)
	assert.Equal(t, good, string(out[0].R1().Seq))
}
