package dedupe

import (
	"fmt"
	stderrors "errors"

	baseerrors "github.com/grailbio/base/errors"
)

// Kind classifies the ways a Run invocation can fail, so a caller can
// recover programmatically instead of matching on error text.
type Kind int

const (
	// Other is the zero Kind; it classifies failures outside the categories
	// below, such as missing input paths or a negative Allowed in Opts.
	Other Kind = iota
	// InputOpen means an input path could not be opened or stat'd.
	InputOpen
	// InputFormat means a FASTQ record was malformed: a length mismatch
	// between sequence and quality, a name mismatch between R1 and R2, a
	// non-.fastq[.gz] extension, or a truncated record.
	InputFormat
	// ReadCountMismatch means the R1 and R2 inputs held different record
	// counts.
	ReadCountMismatch
	// OutOfMemory means a slab or MergeMatrix allocation failed.
	OutOfMemory
	// OutputOpen means an output file could not be created.
	OutputOpen
)

func (k Kind) String() string {
	switch k {
	case InputOpen:
		return "input-open"
	case InputFormat:
		return "input-format"
	case ReadCountMismatch:
		return "read-count-mismatch"
	case OutOfMemory:
		return "out-of-memory"
	case OutputOpen:
		return "output-open"
	default:
		return "other"
	}
}

// Error is the concrete error type returned by every failure path in this
// package. The Kind field lets a caller branch on the failure category; Op
// names the failing pass, following the "diagnostic messages identify the
// failing pass" policy.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// newError builds a *Error, wrapping err with base/errors.E for consistent
// context formatting.
func newError(kind Kind, op, path string, err error) error {
	var wrapped error
	if err == nil {
		wrapped = baseerrors.New(op)
	} else if path == "" {
		wrapped = baseerrors.E(err, op)
	} else {
		wrapped = baseerrors.E(err, op, path)
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: wrapped}
}

// Is reports whether err is a *Error of the given Kind.
func Is(kind Kind, err error) bool {
	var de *Error
	if stderrors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}
