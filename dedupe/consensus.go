package dedupe

import "sort"

// consensusBases lists the bases a position's weighted vote can resolve to,
// in priority order; 6/10 of the weighted votes (rounded up via the +9
// trick in mergeFamily) is what a base needs to win outright, and
// 'N' is the fallback when no base reaches it.
var consensusBases = [4]byte{'A', 'T', 'C', 'G'}

// collapseFamilies sorts pairs by Family and merges every family of more
// than one member into a single consensus record, compacting the slice in
// place. Within a family, the (Seq, Qual, NonoverlappingLen) of the member
// with the longest R1 and (independently) the longest R2 buffer is swapped
// into family[0], so the merge never has to reallocate into a too-small
// buffer; family[0]'s own Name is left untouched, since it is the name pair
// that ends up on the output record.
func collapseFamilies(pairs []ReadPair) []ReadPair {
	if len(pairs) < 2 {
		return pairs
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Family < pairs[j].Family })

	keep := 0
	for start := 0; start < len(pairs); {
		end := start + 1
		for end < len(pairs) && pairs[end].Family == pairs[start].Family {
			end++
		}
		family := pairs[start:end]
		if len(family) > 1 {
			mergeFamily(family)
		}
		if keep != start {
			pairs[keep] = pairs[start]
		}
		keep++
		start = end
	}
	return pairs[:keep]
}

// mergeFamily merges every member of family into family[0] by per-position
// weighted-majority vote over Seq, weighted by each member's CopyNumber, and
// carries CopyNumber forward as the sum of the family's.
func mergeFamily(family []ReadPair) {
	for idx := 0; idx < 2; idx++ {
		widest := 0
		for i := 1; i < len(family); i++ {
			if len(family[i].Reads[idx].Seq) > len(family[widest].Reads[idx].Seq) {
				widest = i
			}
		}
		if widest != 0 {
			a, b := &family[0].Reads[idx], &family[widest].Reads[idx]
			a.Seq, b.Seq = b.Seq, a.Seq
			a.Qual, b.Qual = b.Qual, a.Qual
			a.NonoverlappingLen, b.NonoverlappingLen = b.NonoverlappingLen, a.NonoverlappingLen
		}
	}

	for idx := 0; idx < 2; idx++ {
		out := &family[0].Reads[idx]
		for j := range out.Seq {
			var counts [4]int
			for i := range family {
				seq := family[i].Reads[idx].Seq
				if j >= len(seq) {
					continue
				}
				for b, base := range consensusBases {
					if seq[j] == base {
						counts[b] += family[i].CopyNumber
						break
					}
				}
			}
			total := counts[0] + counts[1] + counts[2] + counts[3]
			required := (6*total + 9) / 10

			winner := byte('N')
			for b, base := range consensusBases {
				if counts[b] >= required {
					winner = base
					break
				}
			}
			out.Seq[j] = winner

			if winner == 'N' {
				out.Qual[j] = '!'
				continue
			}
			for i := 1; i < len(family); i++ {
				other := family[i].Reads[idx]
				if j < len(other.Seq) && other.Seq[j] == winner && other.Qual[j] > out.Qual[j] {
					out.Qual[j] = other.Qual[j]
				}
			}
		}
	}

	for i := 1; i < len(family); i++ {
		family[0].CopyNumber += family[i].CopyNumber
	}
}
