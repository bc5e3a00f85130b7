package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindOverlapExactMatch(t *testing.T) {
	// findOverlap expects R2 already in R1's orientation; here R2 reads
	// identically to all 10 bases of R1, so they align at offset 0.
	p := mkPair("ACGTACGTAA", "", "ACGTACGTAA", "")
	ok := findOverlap(&p, 5, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, p.R1().NonoverlappingLen)
	assert.Equal(t, 10, p.FragmentSize)
}

func TestFindOverlapWithOffset(t *testing.T) {
	r1 := "TTTTTACGTACGTAA"
	r2 := "ACGTACGTAA"
	p := mkPair(r1, "", r2, "")
	ok := findOverlap(&p, 5, 0)
	assert.True(t, ok)
	assert.Equal(t, 5, p.R1().NonoverlappingLen)
	assert.Equal(t, len(r2)+5, p.FragmentSize)
}

func TestFindOverlapNoneFound(t *testing.T) {
	p := mkPair("AAAAAAAAAA", "", "TTTTTTTTTT", "")
	ok := findOverlap(&p, 5, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, p.FragmentSize)
}

func TestFindOverlapReconcilesByQuality(t *testing.T) {
	// Position 0 mismatches: R1 has 'A' at high quality, R2 has 'C' at low
	// quality; R1's base should win.
	r1seq, r1qual := "ACGTACGTAA", "I!!!!!!!!!"
	r2seq, r2qual := "CCGTACGTAA", "!!!!!!!!!!"
	p := mkPair(r1seq, r1qual, r2seq, r2qual)
	ok := findOverlap(&p, 5, 1)
	assert.True(t, ok)
	assert.Equal(t, byte('A'), p.R1().Seq[0])
	assert.Equal(t, byte('A'), p.R2().Seq[0])
}

func TestFindOverlapUndecidedMismatchBecomesN(t *testing.T) {
	r1seq := "ACGTACGTAA"
	r2seq := "CCGTACGTAA"
	p := mkPair(r1seq, "", r2seq, "")
	ok := findOverlap(&p, 5, 1)
	assert.True(t, ok)
	assert.Equal(t, byte('N'), p.R1().Seq[0])
	assert.Equal(t, byte('N'), p.R2().Seq[0])
	assert.Equal(t, byte('!'), p.R1().Qual[0])
}

func TestFindOverlapTooShortForMinOverlap(t *testing.T) {
	p := mkPair("ACGT", "", "ACGT", "")
	ok := findOverlap(&p, 10, 0)
	assert.False(t, ok)
}
