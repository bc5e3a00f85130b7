package dedupe

import (
	"bytes"
	"sort"
)

// assignFamilies groups pairs into families of mutual approximate
// duplicates. It first sorts by descending fragment size so that pairs
// needing comparison against each other land in contiguous runs ("bins") of
// equal fragment size, then assigns families within each bin: small bins are
// clustered by brute force, while bins at or above LargeBinThreshold go
// through a multi-pass short-sequence bucket sort whose results are unified
// by a mergeFamilies pass, to avoid the brute force O(n^2) cost on the
// largest bins. Fragment size 0 (pairs the sizer could not overlap) forms
// its own bin, sorted to the end.
//
// On return every pair's Family field is a positive integer shared by
// exactly the pairs judged mutual duplicates, unique across the whole
// input.
func assignFamilies(pairs []ReadPair, opts Opts) {
	if len(pairs) == 0 {
		return
	}
	allowed := opts.Allowed
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].FragmentSize > pairs[j].FragmentSize
	})

	biggestBin := 0
	for start := 0; start < len(pairs); {
		end := binEnd(pairs, start)
		if end-start > biggestBin {
			biggestBin = end - start
		}
		start = end
	}
	matrix := make([]mergeSlot, biggestBin+1)

	currentFamily := 0
	for start := 0; start < len(pairs); {
		end := binEnd(pairs, start)
		bin := pairs[start:end]

		// The unsized bin (mates the sizer never overlapped) carries every
		// unrelated short fragment in the whole run and is typically by far
		// the largest bin; bucketing it by UMI first, when Thruplex UMIs are
		// available, keeps the expensive clustering passes below from ever
		// seeing the whole bin at once.
		if opts.UMIBucket && opts.Thruplex && bin[0].FragmentSize == 0 && len(bin) >= LargeBinThreshold {
			assignUnsizedBinByUMI(bin, matrix, &currentFamily, allowed)
		} else {
			assignFamiliesWithinBin(bin, matrix, &currentFamily, allowed)
		}
		start = end
	}
}

// assignFamiliesWithinBin clusters one fragment-size bin, picking brute
// force or the large-bin bucket sort based on its size.
func assignFamiliesWithinBin(bin []ReadPair, matrix []mergeSlot, currentFamily *int, allowed int) {
	if len(bin) < LargeBinThreshold {
		bruteAssignFamilies(bin, currentFamily, allowed)
	} else {
		assignLargeBinFamilies(bin, matrix, currentFamily, allowed)
	}
}

// binEnd returns the end of the run of pairs starting at start that share
// pairs[start]'s fragment size.
func binEnd(pairs []ReadPair, start int) int {
	end := start + 1
	for end < len(pairs) && pairs[end].FragmentSize == pairs[start].FragmentSize {
		end++
	}
	return end
}

// bruteAssignFamilies clusters bin by pairwise approxDuplicates comparison,
// using union-by-relabel: when two differently-labelled pairs turn out to be
// duplicates, every member of the later family is relabelled to the
// earlier's. *currentFamily is the highest family id issued so far, shared
// across bins so ids stay unique pipeline-wide.
func bruteAssignFamilies(bin []ReadPair, currentFamily *int, allowed int) {
	for i := range bin {
		if bin[i].Family == 0 {
			*currentFamily++
			bin[i].Family = *currentFamily
		}
		for j := i + 1; j < len(bin); j++ {
			if !approxDuplicates(&bin[i], &bin[j], allowed) {
				continue
			}
			switch {
			case bin[j].Family == 0:
				bin[j].Family = bin[i].Family
			case bin[j].Family != bin[i].Family:
				joined := bin[j].Family
				for k := range bin {
					if bin[k].Family == joined {
						bin[k].Family = bin[i].Family
					}
				}
			}
		}
	}
}

// shortSequenceKey returns the OffsetStride-byte window of seq starting at
// OffsetBase+pass*OffsetStride, used as a cheap bucketing key for the
// large-bin multi-pass clustering. Passes beyond the end of seq (a short
// read) yield an empty, mutually-equal key.
func shortSequenceKey(seq []byte, pass int) []byte {
	index := OffsetBase + pass*OffsetStride
	if index >= len(seq) {
		return nil
	}
	end := index + OffsetStride
	if end > len(seq) {
		end = len(seq)
	}
	return seq[index:end]
}

// assignLargeBinFamilies assigns families to a large (>= LargeBinThreshold)
// bin by running allowed+4 bucket-sort passes over a narrow window of R1
// (tiebreaking on the same window of R2), brute-force clustering within each
// pass's equal-key runs, and unifying the per-pass labels across passes with
// mergeFamilies. Sliding the window forward by OffsetStride each pass, over
// allowed+4 passes, gives every true duplicate pair at least one pass where
// its mismatches (bounded by allowed) fall outside the compared window.
func assignLargeBinFamilies(bin []ReadPair, matrix []mergeSlot, currentFamily *int, allowed int) {
	for pass := 0; pass < allowed+4; pass++ {
		pass := pass
		sort.Slice(bin, func(i, j int) bool {
			return compareByShortSequence(&bin[i], &bin[j], pass) < 0
		})

		tempFamily := 0
		for start := 0; start < len(bin); {
			end := start + 1
			for end < len(bin) && compareByShortSequence(&bin[start], &bin[end], pass) == 0 {
				end++
			}
			bruteAssignFamilies(bin[start:end], &tempFamily, allowed)
			start = end
		}

		if pass == 0 {
			for i := range bin {
				bin[i].PrevFamily = bin[i].Family
				bin[i].Family = 0
			}
			continue
		}

		mergeFamilies(bin, matrix)
		for i := range bin {
			bin[i].Family = 0
		}
	}

	maxFamily := 0
	for i := range bin {
		family := bin[i].PrevFamily + *currentFamily
		bin[i].Family = family
		if family > maxFamily {
			maxFamily = family
		}
	}
	*currentFamily = maxFamily
}

// compareByShortSequence orders two pairs by the OffsetStride-byte R1 window
// for the given pass, tiebreaking on the same window of R2.
func compareByShortSequence(a, b *ReadPair, pass int) int {
	if c := bytes.Compare(shortSequenceKey(a.R1().Seq, pass), shortSequenceKey(b.R1().Seq, pass)); c != 0 {
		return c
	}
	return bytes.Compare(shortSequenceKey(a.R2().Seq, pass), shortSequenceKey(b.R2().Seq, pass))
}

// mergeSlot is one family's row of the merge matrix: the one or two
// previous-pass families it was observed to have absorbed, and the
// relabelling target used to unify them.
type mergeSlot struct {
	firstMatch  int
	secondMatch int
	swap        int
}

// mergeFamilies reconciles this pass's fresh Family labels with the running
// PrevFamily labels they must be unioned into. Each bin member names, via
// its current Family, a slot that records up to two PrevFamily values it
// has been seen paired with; a slot that would need a third is flagged
// incomplete and the merge is retried (after applying any swaps already
// determined) until no slot sees a third distinct value.
func mergeFamilies(bin []ReadPair, matrix []mergeSlot) {
	for {
		for i := range matrix {
			matrix[i] = mergeSlot{}
		}
		incomplete := false
		mergeRequired := false

		for i := range bin {
			family := bin[i].Family
			slot := &matrix[family]
			switch {
			case slot.firstMatch == 0:
				slot.firstMatch = bin[i].PrevFamily
			case slot.firstMatch == bin[i].PrevFamily:
			case slot.secondMatch == 0:
				slot.secondMatch = bin[i].PrevFamily
				if matrix[slot.firstMatch].swap == 0 {
					matrix[slot.secondMatch].swap = slot.firstMatch
					mergeRequired = true
				} else {
					incomplete = true
				}
			case slot.secondMatch == bin[i].PrevFamily:
			default:
				incomplete = true
			}
		}

		if mergeRequired {
			for i := range bin {
				family := bin[i].PrevFamily
				if matrix[family].swap != 0 {
					bin[i].PrevFamily = matrix[family].swap
				}
			}
		}

		if !incomplete {
			return
		}
	}
}
