package dedupe

// sizeAndTrim reverse-complements each pair's R2 into R1's orientation, runs
// the overlap detector, optionally strips Thruplex UMIs (correcting for
// readthrough into the UMI/stem at the far end when the fragment is shorter
// than both reads combined), and restores R2 to its original orientation.
// Sizing and UMI trimming are combined into one pass because both need R2
// held in R1's orientation.
func sizeAndTrim(pairs []ReadPair, opts Opts) {
	minOverlap := opts.minOverlap()
	for i := range pairs {
		p := &pairs[i]
		r2 := p.R2()

		reverseComplementInplace(r2.Seq)
		reverseInplace(r2.Qual)

		findOverlap(p, minOverlap, opts.Allowed)

		if opts.Thruplex {
			trimThruplexUMIs(p)
		}

		reverseComplementInplace(r2.Seq)
		reverseInplace(r2.Qual)
	}
}

// trimThruplexUMIs removes the fixed-length Thruplex UMI+stem from both ends
// of p, called with R2 held in R1's orientation. If the fragment sized
// shorter than a read's worth of UMI+stem, sequencing has run through into
// the UMI/stem at the far end; that readthrough is first trimmed from the
// body of the read before the UMI/stem at its own end is removed.
func trimThruplexUMIs(p *ReadPair) {
	r1, r2 := p.R1(), p.R2()
	const trimLen = UMTLen + StemLen

	if p.FragmentSize > 0 {
		r2Readthrough := trimLen - r1.NonoverlappingLen
		if r2Readthrough > 0 {
			r2.Seq = r2.Seq[r2Readthrough:]
			r2.Qual = r2.Qual[r2Readthrough:]
			r1.NonoverlappingLen += r2Readthrough
		}

		r1Readthrough := trimLen - (len(r2.Seq) - (len(r1.Seq) - r1.NonoverlappingLen))
		if r1Readthrough > 0 {
			newLen := len(r1.Seq) - r1Readthrough
			r1.Seq = r1.Seq[:newLen]
			r1.Qual = r1.Qual[:newLen]
		}
	}

	r1.UMI = r1.Seq[:UMTLen]
	r1.NonoverlappingLen -= trimLen
	r1.Seq = r1.Seq[trimLen:]
	r1.Qual = r1.Qual[trimLen:]

	r2.UMI = r2.Seq[len(r2.Seq)-UMTLen:]
	r2.Seq = r2.Seq[:len(r2.Seq)-trimLen]
	r2.Qual = r2.Qual[:len(r2.Qual)-trimLen]

	if p.FragmentSize > 0 {
		p.FragmentSize -= 2 * trimLen
	}
}
