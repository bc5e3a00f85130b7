package dedupe

import "fmt"

// Configuration constants. These mirror the fixed constants of the Thruplex
// chemistry and the clustering heuristics; they are not meant to be tuned
// per-run beyond what Opts exposes.
const (
	// UMTLen is the length in bases of the Thruplex random UMI.
	UMTLen = 6
	// StemLen is the length in bases of the fixed Thruplex stem that
	// follows the UMI.
	StemLen = 11
	// SignificantPhredDifference is the quality-score gap above which one
	// overlapping base is trusted over its mate outright.
	SignificantPhredDifference = 10
	// MinimumNonNBases is the minimum count of non-N bases a read must
	// contain (in both R1 and R2) to survive the N-only filter.
	MinimumNonNBases = 50
	// MinOverlap is the minimum number of overlapping bases required for
	// the overlap detector to accept an alignment between R1 and
	// revcomp(R2).
	MinOverlap = 70
	// LargeBinThreshold is the fragment-size bin size at or above which
	// the family assigner switches from brute-force clustering to the
	// offset-bucket multi-pass scheme.
	LargeBinThreshold = 2000
	// OffsetStride is the width in bases of each bucket-pass comparison
	// window.
	OffsetStride = 6
	// OffsetBase is the starting offset of the first bucket-pass window,
	// chosen to skip the UMI-adjacent region of the read.
	OffsetBase = 10
)

// read1, read2 index the two slots of a ReadPair's Reads array.
const (
	read1 = 0
	read2 = 1
)

// Read is one read of a pair: a sequence, its parallel Phred+33 quality
// string, and bookkeeping the pipeline needs as it narrows the read down
// from its original span. Seq and Qual are windows into a Slab owned by the
// ReadPair array; trimming passes reslice them rather than copying, and the
// consensus collapser swaps whole (Seq, Qual) pairs between ReadPairs rather
// than reallocating.
type Read struct {
	Name string
	Seq  []byte
	Qual []byte

	// NonoverlappingLen is meaningful for R1 only: the number of leading
	// bases of R1 that the overlap detector found were not covered by
	// R2. It starts out equal to len(Seq); the overlap detector lowers it,
	// and Thruplex trimming raises it by any R2 readthrough before
	// subtracting the trimmed UMI+stem length.
	NonoverlappingLen int

	// UMI is a nullable slice into the original sequence buffer holding
	// the Thruplex UMI extracted for this read's end of the fragment.
	// Nil unless Thruplex trimming ran.
	UMI []byte
}

// Len returns the read's current effective length.
func (r *Read) Len() int { return len(r.Seq) }

// ReadPair is the unit the whole pipeline operates on: one forward (R1) and
// one reverse (R2) read believed to originate from the same physical DNA
// fragment.
type ReadPair struct {
	Reads [2]Read

	// FragmentSize is 0 until the sizer successfully overlaps R1 and R2,
	// after which it is the reconstructed fragment length.
	FragmentSize int

	// CopyNumber is the number of original input read pairs merged into
	// this record, via exact-duplicate collapsing or family consensus.
	CopyNumber int

	// Family is 0 until the family assigner runs; thereafter, all
	// ReadPairs with the same nonzero Family are mutual approximate
	// duplicates.
	Family int

	// PrevFamily is scratch space used only by the family assigner's
	// offset-bucket pass to carry a previous pass's family label forward
	// across the MergeMatrix relabeling.
	PrevFamily int
}

// R1 returns the forward read of the pair.
func (p *ReadPair) R1() *Read { return &p.Reads[read1] }

// R2 returns the reverse read of the pair.
func (p *ReadPair) R2() *Read { return &p.Reads[read2] }

// Opts configures a Run. The zero value is not valid; use DefaultOpts to
// obtain sane defaults and override only what's needed.
type Opts struct {
	// Read1Path and Read2Path are the input FASTQ files, plain or
	// gzip-compressed (detected by a ".gz" suffix). Required by Run;
	// ignored by Process.
	Read1Path, Read2Path string

	// OutPrefix, if set, overrides the output path stem Run derives from
	// Read1Path/Read2Path.
	OutPrefix string

	// Allowed is the maximum number of mismatches tolerated by the
	// overlap detector and by the approximate-duplicate test used
	// throughout exact-dedup and family assignment.
	Allowed int

	// Thruplex enables stripping of the fixed-length Thruplex UMI+stem
	// from both ends of each fragment after sizing.
	Thruplex bool

	// MinOverlap overrides MinOverlap for testing; zero means use the
	// package default.
	MinOverlap int

	// UMIBucket enables a secondary hash bucketing of the unsized
	// (FragmentSize == 0) bin by UMI bytes before clustering, an
	// optional mitigation for that bin's otherwise-quadratic cost. Only
	// meaningful when Thruplex is also set, since only Thruplex reads
	// carry a UMI.
	UMIBucket bool
}

// DefaultOpts returns the package's default configuration.
func DefaultOpts() Opts {
	return Opts{
		Allowed:  3,
		Thruplex: false,
	}
}

// validate checks the fields Run depends on that Process does not need.
func (o *Opts) validate() error {
	if o.Read1Path == "" || o.Read2Path == "" {
		return newError(Other, "validate", "", fmt.Errorf("Read1Path and Read2Path are required"))
	}
	if o.Allowed < 0 {
		return newError(Other, "validate", "", fmt.Errorf("Allowed must be >= 0, got %d", o.Allowed))
	}
	return nil
}

func (o *Opts) minOverlap() int {
	if o.MinOverlap > 0 {
		return o.MinOverlap
	}
	return MinOverlap
}
