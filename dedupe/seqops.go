package dedupe

// complementTable maps every byte to its Watson-Crick complement, assuming
// ASCII-encoded A/C/G/T/N (upper or lower case); anything else maps to 'N'.
var complementTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 'N'
	}
	t['A'], t['a'] = 'T', 'T'
	t['T'], t['t'] = 'A', 'A'
	t['C'], t['c'] = 'G', 'G'
	t['G'], t['g'] = 'C', 'C'
	t['N'], t['n'] = 'N', 'N'
	return t
}()

// reverseInplace reverses b in place.
func reverseInplace(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// reverseComplementInplace reverse-complements the ASCII sequence b in
// place.
func reverseComplementInplace(b []byte) {
	n := len(b)
	half := n / 2
	for i, j := 0, n-1; i != half; i, j = i+1, j-1 {
		b[i], b[j] = complementTable[b[j]], complementTable[b[i]]
	}
	if n&1 == 1 {
		b[half] = complementTable[b[half]]
	}
}

// stripTrailingNewline removes one trailing "\n" or "\r\n" from line,
// returning the trimmed slice.
func stripTrailingNewline(line []byte) []byte {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
		if n > 0 && line[n-1] == '\r' {
			n--
		}
	}
	return line[:n]
}
