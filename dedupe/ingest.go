package dedupe

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"

	fastqio "github.com/grailbio/dedupreads/encoding/fastq"
)

// fastqSuffix is the extension required of input files, before an optional
// ".gz".
const fastqSuffix = ".fastq"

func hasFastqSuffix(path string) bool {
	return strings.HasSuffix(strings.TrimSuffix(path, ".gz"), fastqSuffix)
}

// readAllInput opens path, transparently gunzipping it if it ends in ".gz",
// and returns its entire decompressed content. FASTQ records are read in
// one pass up front (rather than streamed) so their total size is known
// before the Slab backing every record is allocated; see Slab.
func readAllInput(ctx context.Context, path string) ([]byte, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, newError(InputOpen, "open-input", path, err)
	}
	r := f.Reader(ctx)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(bufio.NewReader(r))
		if err != nil {
			return nil, newError(InputFormat, "gzip-open", path, err)
		}
		defer gz.Close()
		r = gz
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, newError(InputFormat, "read-input", path, err)
	}
	return data, nil
}

// namesMatch reports whether r1Name and r2Name are mate names: equal length,
// and equal at every position except where r1Name has '1' and r2Name has
// '2' at that same position (the read-number token, wherever it falls).
func namesMatch(r1Name, r2Name string) bool {
	if len(r1Name) != len(r2Name) {
		return false
	}
	for i := 0; i < len(r1Name); i++ {
		if r1Name[i] == r2Name[i] {
			continue
		}
		if r1Name[i] == '1' && r2Name[i] == '2' {
			continue
		}
		return false
	}
	return true
}

// ReadPairs reads and validates the paired FASTQ files named by opts,
// allocates one Slab sized to their combined byte count, and returns every
// record as a ReadPair whose Seq/Qual/Name fields are windows into that
// Slab.
func ReadPairs(ctx context.Context, opts Opts) ([]ReadPair, error) {
	if opts.Read1Path == "" || opts.Read2Path == "" {
		return nil, newError(Other, "read-pairs", "", fmt.Errorf("Read1Path and Read2Path are required"))
	}
	if !hasFastqSuffix(opts.Read1Path) || !hasFastqSuffix(opts.Read2Path) {
		return nil, newError(InputFormat, "read-pairs", "", fmt.Errorf("input files must have a .fastq or .fastq.gz suffix"))
	}

	data1, err := readAllInput(ctx, opts.Read1Path)
	if err != nil {
		return nil, err
	}
	data2, err := readAllInput(ctx, opts.Read2Path)
	if err != nil {
		return nil, err
	}

	slab, err := newSlab(len(data1) + len(data2))
	if err != nil {
		return nil, err
	}

	scanner := fastqio.NewPairScanner(bytes.NewReader(data1), bytes.NewReader(data2), fastqio.All)
	var pairs []ReadPair
	var a, b fastqio.Read
	for scanner.Scan(&a, &b) {
		if !namesMatch(a.ID, b.ID) {
			return nil, newError(InputFormat, "read-pairs", opts.Read1Path,
				fmt.Errorf("R1/R2 name mismatch: %q vs %q", a.ID, b.ID))
		}
		if len(a.Seq) != len(a.Qual) || len(b.Seq) != len(b.Qual) {
			return nil, newError(InputFormat, "read-pairs", opts.Read1Path,
				fmt.Errorf("sequence/quality length mismatch for %q", a.ID))
		}
		pairs = append(pairs, ReadPair{
			Reads: [2]Read{
				{
					Name:              string(slab.take([]byte(a.ID))),
					Seq:               slab.take([]byte(a.Seq)),
					Qual:              slab.take([]byte(a.Qual)),
					NonoverlappingLen: len(a.Seq),
				},
				{
					Name:              string(slab.take([]byte(b.ID))),
					Seq:               slab.take([]byte(b.Seq)),
					Qual:              slab.take([]byte(b.Qual)),
					NonoverlappingLen: len(b.Seq),
				},
			},
			CopyNumber: 1,
		})
	}
	if err := scanner.Err(); err != nil {
		if err == fastqio.ErrDiscordant {
			return nil, newError(ReadCountMismatch, "read-pairs", opts.Read1Path, err)
		}
		return nil, newError(InputFormat, "read-pairs", opts.Read1Path, err)
	}
	return pairs, nil
}
