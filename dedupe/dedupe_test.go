package dedupe

import "strings"

// mkRead builds a Read from plain strings, for use in table-driven tests
// where byte-slice literals would be noisy. qual defaults to all-'I' (Phred
// 40) when empty.
func mkRead(seq, qual string) Read {
	if qual == "" {
		qual = strings.Repeat("I", len(seq))
	}
	return Read{Seq: []byte(seq), Qual: []byte(qual), NonoverlappingLen: len(seq)}
}

func mkPair(seq1, qual1, seq2, qual2 string) ReadPair {
	return ReadPair{
		Reads:      [2]Read{mkRead(seq1, qual1), mkRead(seq2, qual2)},
		CopyNumber: 1,
	}
}
