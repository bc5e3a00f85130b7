package dedupe

import (
	"bytes"
	"sort"
)

// approxDuplicates reports whether a and b are approximate duplicates under
// allowance allowed: at most allowed total mismatches, scanning R1 up to the
// longer of the two nonoverlapping lengths (clamped to the shorter of the two
// R1 sequences) and R2 up to the shorter of the two read lengths, with a
// position counting as a match whenever either side
// is 'N'. This asymmetry (R1 uses the longer nonoverlapping length, R2 uses
// the shorter full length) is deliberate: R1 has been "burned through" its
// overlap with R2 by the time this runs, so only its unburned prefix is
// informative, while R2 still carries its full length of information.
//
// It is reused by the exact-duplicate collapser (with allowed=0) and by
// every stage of family assignment.
func approxDuplicates(a, b *ReadPair, allowed int) bool {
	mismatches := 0

	r1a, r1b := a.R1(), b.R1()
	r1Len := r1a.NonoverlappingLen
	if r1b.NonoverlappingLen > r1Len {
		r1Len = r1b.NonoverlappingLen
	}
	if n := len(r1a.Seq); r1Len > n {
		r1Len = n
	}
	if n := len(r1b.Seq); r1Len > n {
		r1Len = n
	}
	for i := 0; i < r1Len; i++ {
		x, y := r1a.Seq[i], r1b.Seq[i]
		if x != y && x != 'N' && y != 'N' {
			mismatches++
			if mismatches > allowed {
				return false
			}
		}
	}

	r2a, r2b := a.R2(), b.R2()
	r2Len := len(r2a.Seq)
	if n := len(r2b.Seq); n < r2Len {
		r2Len = n
	}
	for i := 0; i < r2Len; i++ {
		x, y := r2a.Seq[i], r2b.Seq[i]
		if x != y && x != 'N' && y != 'N' {
			mismatches++
			if mismatches > allowed {
				return false
			}
		}
	}
	return true
}

// compareBySequence orders two ReadPairs lexicographically by R1 sequence,
// tiebreaking on R2 sequence. It defines the total order the exact-duplicate
// collapser sorts by.
func compareBySequence(a, b *ReadPair) int {
	if c := bytes.Compare(a.R1().Seq, b.R1().Seq); c != 0 {
		return c
	}
	return bytes.Compare(a.R2().Seq, b.R2().Seq)
}

// collapseExactDuplicates sorts pairs by sequence and merges adjacent
// byte-identical (modulo 'N') records, in place, returning the compacted
// slice. Two adjacent records are merged only if their R1 and R2 lengths
// match pairwise and approxDuplicates(a, b, 0) holds.
func collapseExactDuplicates(pairs []ReadPair) []ReadPair {
	if len(pairs) < 2 {
		return pairs
	}
	sort.Slice(pairs, func(i, j int) bool {
		return compareBySequence(&pairs[i], &pairs[j]) < 0
	})

	keep := 0
	for i := 1; i < len(pairs); i++ {
		if isExactDuplicate(&pairs[keep], &pairs[i]) {
			mergeExactDuplicate(&pairs[keep], &pairs[i])
			continue
		}
		keep++
		if keep != i {
			pairs[keep] = pairs[i]
		}
	}
	return pairs[:keep+1]
}

func isExactDuplicate(a, b *ReadPair) bool {
	return len(a.R1().Seq) == len(b.R1().Seq) &&
		len(a.R2().Seq) == len(b.R2().Seq) &&
		approxDuplicates(a, b, 0)
}

// mergeExactDuplicate folds scan into keep: any position where keep has an
// 'N' and scan doesn't is corrected from scan, and otherwise the higher of
// the two qualities is kept. keep's copy number absorbs scan's.
func mergeExactDuplicate(keep, scan *ReadPair) {
	for idx := 0; idx < 2; idx++ {
		k, s := &keep.Reads[idx], &scan.Reads[idx]
		for i := 0; i < len(k.Seq); i++ {
			switch {
			case k.Seq[i] == 'N':
				k.Seq[i] = s.Seq[i]
				k.Qual[i] = s.Qual[i]
			case k.Qual[i] < s.Qual[i]:
				k.Qual[i] = s.Qual[i]
			}
		}
	}
	keep.CopyNumber += scan.CopyNumber
}
