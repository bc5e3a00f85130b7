package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBruteAssignFamiliesClustersAndUnifies(t *testing.T) {
	// a, b, and c are pairwise within the mismatch allowance and so must
	// all land in the same family.
	a := mkPair("AAAAAAAAAA", "", "CCCCCCCCCC", "")
	b := mkPair("AAAAAAAAAT", "", "CCCCCCCCCC", "")
	c := mkPair("AAAAAAAAAG", "", "CCCCCCCCCC", "")
	bin := []ReadPair{a, b, c}

	current := 0
	bruteAssignFamilies(bin, &current, 1)

	assert.NotZero(t, bin[0].Family)
	assert.Equal(t, bin[0].Family, bin[1].Family)
	assert.Equal(t, bin[1].Family, bin[2].Family)
}

func TestAssignFamiliesGivesDistinctBinsDistinctFamilies(t *testing.T) {
	pairs := []ReadPair{
		mkPair("AAAA", "", "CCCC", ""),
		mkPair("AAAA", "", "CCCC", ""),
		mkPair("TTTT", "", "GGGG", ""),
	}
	pairs[0].FragmentSize = 100
	pairs[1].FragmentSize = 100
	pairs[2].FragmentSize = 200

	assignFamilies(pairs, Opts{})

	var fam100a, fam100b, fam200 int
	for i := range pairs {
		switch pairs[i].FragmentSize {
		case 100:
			if fam100a == 0 {
				fam100a = pairs[i].Family
			} else {
				fam100b = pairs[i].Family
			}
		case 200:
			fam200 = pairs[i].Family
		}
	}
	assert.NotZero(t, fam100a)
	assert.Equal(t, fam100a, fam100b)
	assert.NotEqual(t, fam100a, fam200)
}

func TestAssignUnsizedBinByUMISeparatesDistinctUMIs(t *testing.T) {
	a := mkPair("AAAAAAAAAA", "", "CCCCCCCCCC", "")
	b := mkPair("AAAAAAAAAA", "", "CCCCCCCCCC", "")
	c := mkPair("AAAAAAAAAA", "", "CCCCCCCCCC", "")
	a.Reads[read1].UMI = []byte("GGGGGG")
	a.Reads[read2].UMI = []byte("TTTTTT")
	b.Reads[read1].UMI = []byte("GGGGGG")
	b.Reads[read2].UMI = []byte("TTTTTT")
	c.Reads[read1].UMI = []byte("AAAAAA")
	c.Reads[read2].UMI = []byte("CCCCCC")
	bin := []ReadPair{a, b, c}

	current := 0
	matrix := make([]mergeSlot, len(bin)+1)
	assignUnsizedBinByUMI(bin, matrix, &current, 1)

	var famAB, famC int
	for i := range bin {
		if string(bin[i].Reads[read1].UMI) == "GGGGGG" {
			if famAB == 0 {
				famAB = bin[i].Family
			} else {
				assert.Equal(t, famAB, bin[i].Family)
			}
		} else {
			famC = bin[i].Family
		}
	}
	assert.NotZero(t, famAB)
	assert.NotZero(t, famC)
	assert.NotEqual(t, famAB, famC)
}

func TestShortSequenceKeyWindowsSlideByOffsetStride(t *testing.T) {
	seq := make([]byte, OffsetBase+3*OffsetStride)
	for i := range seq {
		seq[i] = byte('A' + i%26)
	}
	k0 := shortSequenceKey(seq, 0)
	k1 := shortSequenceKey(seq, 1)
	assert.Equal(t, seq[OffsetBase:OffsetBase+OffsetStride], k0)
	assert.Equal(t, seq[OffsetBase+OffsetStride:OffsetBase+2*OffsetStride], k1)
}
