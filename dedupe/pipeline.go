package dedupe

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/gzip"

	fastqio "github.com/grailbio/dedupreads/encoding/fastq"
)

// Process runs the full collapsing pipeline over pairs in place and returns
// the surviving, consensus-collapsed records. The passes run in a fixed
// order, each consuming the previous pass's output:
//
//  1. filterNOnly drops reads with too few called bases.
//  2. collapseExactDuplicates merges byte-identical mates.
//  3. sizeAndTrim overlaps R1/R2 and optionally strips Thruplex UMIs.
//  4. assignFamilies clusters approximate duplicates by fragment size.
//  5. collapseFamilies folds each family into one consensus record.
//  6. filterUnconfirmed drops unsized singletons.
//
// Process never touches the filesystem and is safe to call directly from
// tests with synthetic data.
func Process(pairs []ReadPair, opts Opts) []ReadPair {
	before := len(pairs)
	pairs = filterNOnly(pairs)
	passMetrics{"n-only filter", before, len(pairs), 0}.log()

	before = len(pairs)
	pairs = collapseExactDuplicates(pairs)
	passMetrics{"exact duplicates", before, len(pairs), before - len(pairs)}.log()

	sizeAndTrim(pairs, opts)
	sized := 0
	for i := range pairs {
		if pairs[i].FragmentSize > 0 {
			sized++
		}
	}
	log.Debug.Printf("sizer: %d/%d pairs overlapped", sized, len(pairs))

	assignFamilies(pairs, opts)

	before = len(pairs)
	pairs = collapseFamilies(pairs)
	passMetrics{"family consensus", before, len(pairs), before - len(pairs)}.log()

	before = len(pairs)
	pairs = filterUnconfirmed(pairs)
	passMetrics{"unconfirmed filter", before, len(pairs), 0}.log()

	return pairs
}

// Run reads opts.Read1Path/Read2Path, runs Process, and writes the
// surviving pairs to the ".deduped" path derived from each input, following
// the same suffix rule as the original pipeline's output naming. Unlike the
// original, which wrote its output files directly, Run writes to a
// temporary file beside the destination and renames it into place, so a
// Run that fails partway through never leaves a half-written output file at
// the final path.
func Run(ctx context.Context, opts Opts) error {
	if err := opts.validate(); err != nil {
		return err
	}

	pairs, err := ReadPairs(ctx, opts)
	if err != nil {
		return err
	}
	log.Debug.Printf("read %d pairs from %s, %s", len(pairs), opts.Read1Path, opts.Read2Path)

	pairs = Process(pairs, opts)
	log.Debug.Printf("writing %d pairs", len(pairs))

	outPaths := [2]string{
		fastqio.DedupedPath(opts.Read1Path),
		fastqio.DedupedPath(opts.Read2Path),
	}
	if opts.OutPrefix != "" {
		outPaths[0] = opts.OutPrefix + "_R1.deduped.fastq"
		outPaths[1] = opts.OutPrefix + "_R2.deduped.fastq"
	}

	for idx, outPath := range outPaths {
		if err := writeOutput(ctx, outPath, pairs, idx); err != nil {
			return err
		}
	}
	return nil
}

// writeOutput writes the idx'th read (R1 or R2) of every pair to outPath,
// gzip-compressing when outPath ends in ".gz".
func writeOutput(ctx context.Context, outPath string, pairs []ReadPair, idx int) (err error) {
	tmpPath := outPath + ".tmp"
	f, err := file.Create(ctx, tmpPath)
	if err != nil {
		return newError(OutputOpen, "create-output", outPath, err)
	}
	defer func() {
		if cerr := f.Close(ctx); err == nil && cerr != nil {
			err = newError(OutputOpen, "close-output", outPath, cerr)
		}
	}()

	w := f.Writer(ctx)
	buffered := bufio.NewWriter(w)
	var out *fastqio.Writer
	var gz *gzip.Writer
	if len(outPath) > 3 && outPath[len(outPath)-3:] == ".gz" {
		gz = gzip.NewWriter(buffered)
		out = fastqio.NewWriter(gz)
	} else {
		out = fastqio.NewWriter(buffered)
	}

	for i := range pairs {
		r := &pairs[i].Reads[idx]
		rec := fastqio.Read{ID: r.Name, Seq: string(r.Seq), Unk: "+", Qual: string(r.Qual)}
		if werr := out.Write(&rec); werr != nil {
			return newError(OutputOpen, "write-output", outPath, werr)
		}
	}
	if gz != nil {
		if cerr := gz.Close(); cerr != nil {
			return newError(OutputOpen, "gzip-close", outPath, cerr)
		}
	}
	if ferr := buffered.Flush(); ferr != nil {
		return newError(OutputOpen, "flush-output", outPath, ferr)
	}

	if rerr := os.Rename(tmpPath, outPath); rerr != nil {
		return newError(OutputOpen, "rename-output", outPath, fmt.Errorf("renaming temp file: %w", rerr))
	}
	return nil
}
