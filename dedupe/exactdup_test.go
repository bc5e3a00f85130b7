package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproxDuplicatesExactMatch(t *testing.T) {
	a := mkPair("ACGTACGTAA", "", "GGGGCCCCAA", "")
	b := mkPair("ACGTACGTAA", "", "GGGGCCCCAA", "")
	assert.True(t, approxDuplicates(&a, &b, 0))
}

func TestApproxDuplicatesNTolerant(t *testing.T) {
	a := mkPair("ACGTACGTAA", "", "GGGGCCCCAA", "")
	b := mkPair("ACGTNCGTAA", "", "GGGGNCCCAA", "")
	assert.True(t, approxDuplicates(&a, &b, 0))
}

func TestApproxDuplicatesWithinAllowance(t *testing.T) {
	a := mkPair("ACGTACGTAA", "", "GGGGCCCCAA", "")
	b := mkPair("TCGTACGTAA", "", "GGGGCCCCAT", "")
	assert.False(t, approxDuplicates(&a, &b, 1))
	assert.True(t, approxDuplicates(&a, &b, 2))
}

func TestCollapseExactDuplicatesMergesAndCorrectsN(t *testing.T) {
	pairs := []ReadPair{
		mkPair("AAAA", "IIII", "CCCC", "IIII"),
		mkPair("AANA", "II!I", "CCNC", "II!I"),
	}
	out := collapseExactDuplicates(pairs)
	assert.Len(t, out, 1)
	assert.Equal(t, "AAAA", string(out[0].R1().Seq))
	assert.Equal(t, "CCCC", string(out[0].R2().Seq))
	assert.Equal(t, 2, out[0].CopyNumber)
}

func TestCollapseExactDuplicatesKeepsHigherQuality(t *testing.T) {
	pairs := []ReadPair{
		mkPair("AAAA", "I!II", "CCCC", "IIII"),
		mkPair("AAAA", "IIII", "CCCC", "IIII"),
	}
	out := collapseExactDuplicates(pairs)
	assert.Len(t, out, 1)
	assert.Equal(t, byte('I'), out[0].R1().Qual[1])
}

func TestCollapseExactDuplicatesLeavesDistinctPairsAlone(t *testing.T) {
	pairs := []ReadPair{
		mkPair("AAAA", "", "CCCC", ""),
		mkPair("TTTT", "", "GGGG", ""),
	}
	out := collapseExactDuplicates(pairs)
	assert.Len(t, out, 2)
}
