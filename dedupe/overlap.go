package dedupe

// findOverlap looks for an alignment between p.R1() and p.R2(), assuming
// p.R2() has already been reverse-complemented by the caller so that, in the
// true fragment, R1 and R2 read the same strand with R2 starting at or after
// R1's start.
//
// It tries every candidate start position s, in ascending order, in the
// range [max(0, L1-L2), L1-minOverlap], and accepts the first one whose
// mismatch count (Ns never count as mismatches on either side) is at most
// allowed. On success it reconciles every mismatching base in the overlap by
// Phred quality, sets R1's NonoverlappingLen to s, sets FragmentSize, and
// returns true. It is idempotent: calling it again on an already-reconciled
// pair finds the same alignment with zero mismatches and leaves the bases
// unchanged.
func findOverlap(p *ReadPair, minOverlap, allowed int) bool {
	r1, r2 := p.R1(), p.R2()
	l1, l2 := len(r1.Seq), len(r2.Seq)
	if minOverlap > l1 || minOverlap > l2 {
		return false
	}

	start := 0
	if l1 > l2 {
		start = l1 - l2
	}
	limit := l1 - minOverlap

	bestStart := -1
	for s := start; s <= limit; s++ {
		overlapLen := l1 - s
		if l2 < overlapLen {
			overlapLen = l2
		}
		mismatches := 0
		for i := 0; i < overlapLen; i++ {
			a, b := r1.Seq[s+i], r2.Seq[i]
			if a != b && a != 'N' && b != 'N' {
				mismatches++
				if mismatches > allowed {
					break
				}
			}
		}
		if mismatches <= allowed {
			bestStart = s
			break
		}
	}
	if bestStart < 0 {
		return false
	}

	overlapLen := l1 - bestStart
	if l2 < overlapLen {
		overlapLen = l2
	}
	for i := 0; i < overlapLen; i++ {
		si, sj := bestStart+i, i
		if r1.Seq[si] == r2.Seq[sj] {
			continue
		}
		q1, q2 := r1.Qual[si], r2.Qual[sj]
		switch {
		case int(q1) > int(q2)+SignificantPhredDifference:
			r2.Seq[sj] = r1.Seq[si]
			r2.Qual[sj] = r1.Qual[si]
		case int(q2) > int(q1)+SignificantPhredDifference:
			r1.Seq[si] = r2.Seq[sj]
			r1.Qual[si] = r2.Qual[sj]
		default:
			r1.Seq[si] = 'N'
			r2.Seq[sj] = 'N'
			r1.Qual[si] = '!'
			r2.Qual[sj] = '!'
		}
	}

	r1.NonoverlappingLen = bestStart
	p.FragmentSize = l2 + bestStart
	return true
}
