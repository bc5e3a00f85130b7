package dedupe

// countNonN returns the number of bases in seq that are not 'N'.
func countNonN(seq []byte) int {
	n := 0
	for _, b := range seq {
		if b != 'N' {
			n++
		}
	}
	return n
}

// filterNOnly drops any ReadPair whose R1 or R2 has fewer than
// MinimumNonNBases non-N bases, compacting the slice in place.
func filterNOnly(pairs []ReadPair) []ReadPair {
	keep := 0
	for i := range pairs {
		p := &pairs[i]
		if countNonN(p.R1().Seq) < MinimumNonNBases || countNonN(p.R2().Seq) < MinimumNonNBases {
			continue
		}
		if keep != i {
			pairs[keep] = pairs[i]
		}
		keep++
	}
	return pairs[:keep]
}
