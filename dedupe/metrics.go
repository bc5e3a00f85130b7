package dedupe

import "github.com/grailbio/base/log"

// passMetrics records how many read pairs a pipeline pass consumed and how
// many it removed or merged away, for progress logging between passes.
type passMetrics struct {
	name        string
	before      int
	after       int
	transformed int // pairs merged into another record rather than dropped outright
}

func (m passMetrics) removed() int { return m.before - m.after - m.transformed }

func (m passMetrics) log() {
	log.Debug.Printf("%s: %d -> %d pairs (%d removed, %d merged)", m.name, m.before, m.after, m.removed(), m.transformed)
}
