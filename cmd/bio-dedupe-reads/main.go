package main

/*
  bio-dedupe-reads collapses PCR duplicate read pairs out of a paired-end
  FASTQ dataset by overlapping mates, clustering approximate duplicates into
  families by fragment size, and replacing each family with one
  quality-weighted consensus record. For more information, see
  github.com/grailbio/dedupreads/dedupe/doc.go
*/

import (
	"flag"
	"strings"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/grailbio/dedupreads/dedupe"
)

var (
	read1      = flag.String("read1", "", "Input R1 FASTQ filename (.fastq or .fastq.gz)")
	read2      = flag.String("read2", "", "Input R2 FASTQ filename (.fastq or .fastq.gz)")
	outPrefix  = flag.String("out-prefix", "", "Output path prefix; by default output is written alongside each input with a .deduped suffix")
	allowed    = flag.Int("allowed", dedupe.DefaultOpts().Allowed, "Number of mismatches tolerated when overlapping mates and clustering approximate duplicates")
	thruplex   = flag.Bool("thruplex", false, "Strip the fixed-length Thruplex UMI and stem from both ends of each fragment")
	minOverlap = flag.Int("min-overlap", 0, "Override the minimum overlap required between mates; 0 uses the package default")
	umiBucket  = flag.Bool("umi-bucket", false, "Bucket the unsized fragment bin by UMI bytes before clustering; only meaningful with -thruplex")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() > 0 {
		a := flag.Args()
		log.Fatalf("unparsed flags, please check flag syntax: '%s'", strings.Join(a[len(a)-flag.NArg():], " "))
	}

	opts := dedupe.Opts{
		Read1Path:  *read1,
		Read2Path:  *read2,
		OutPrefix:  *outPrefix,
		Allowed:    *allowed,
		Thruplex:   *thruplex,
		MinOverlap: *minOverlap,
		UMIBucket:  *umiBucket,
	}

	if err := dedupe.Run(vcontext.Background(), opts); err != nil {
		log.Fatalf("%v", err)
	}
}
