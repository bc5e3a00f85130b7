package dedupe

// filterUnconfirmed drops pairs that are both unsized (FragmentSize == 0,
// meaning the sizer never found an overlap) and unconfirmed (CopyNumber ==
// 1, meaning no other pass ever merged anything into them): a read pair with
// neither corroborating evidence survives to output only by chance, and is
// discarded.
func filterUnconfirmed(pairs []ReadPair) []ReadPair {
	keep := 0
	for i := range pairs {
		p := &pairs[i]
		if p.FragmentSize <= 0 && p.CopyNumber <= 1 {
			continue
		}
		if keep != i {
			pairs[keep] = pairs[i]
		}
		keep++
	}
	return pairs[:keep]
}
