/*Package dedupe deduplicates and error-corrects paired-end FASTQ reads.

This package collapses PCR and optical duplicates, and the sequencing
errors that ride along with them, into a single high-confidence
consensus record per originating DNA fragment. It is meant to run
ahead of a variant caller, so that caller can tell a true low-frequency
variant from a PCR or sequencing artefact.

Algorithm:

The package runs a fixed pipeline of passes over one in-memory array
of read pairs:

  1. Drop reads that are mostly or entirely 'N' (not enough
     informative bases to ever contribute to a consensus).
  2. Collapse byte-identical read pairs (modulo 'N') before doing any
     more expensive work.
  3. Find the R1/revcomp(R2) overlap for each pair, reconcile
     mismatches by base quality, and record the implied fragment
     size. Optionally strip Thruplex UMI+stem sequence from both
     ends.
  4. Bin pairs by fragment size, then cluster each bin into families
     of mutual approximate duplicates (transitive closure under a
     Hamming-with-Ns distance). Small bins are clustered by brute
     force; bins with thousands of members use a sliding-window
     bucket-sort scheme so the work stays roughly linear.
  5. Collapse each family into one consensus record by per-position
     weighted-majority vote.
  6. Drop singletons that were never sized and never had a duplicate
     (not enough evidence that they represent more than one read).

Every pass mutates the record array in place and may compact it,
shifting survivors forward and shrinking the logical length. There is
no concurrency: the algorithm is defined as a sequence of total-order
sorts and linear sweeps over one slice, and is run single-threaded so
its output is exactly reproducible.

Non-goals:

This package does not align reads to a reference, call variants, trim
adapters beyond the fixed Thruplex stem, or stream its input -- it
operates on a fully-materialized in-memory array of read pairs built by
the caller (typically via encoding/fastq.PairScanner, as ReadPairs does).
*/
package dedupe
