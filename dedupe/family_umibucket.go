package dedupe

import (
	"sort"

	farm "github.com/dgryski/go-farm"

	"github.com/grailbio/dedupreads/util"
)

// umiMaxEditDistance bounds how many substitutions (insertions/deletions are
// never expected, both UMIs are fixed length) two UMI pairs may differ by
// and still be considered the same secondary bucket: a single sequencing
// error in a random UMI should not split a true duplicate family in two.
const umiMaxEditDistance = 1

// combinedUMI concatenates a pair's two Thruplex UMIs into one fixed-length
// key, R1's UMI first.
func combinedUMI(p *ReadPair) string {
	buf := make([]byte, 0, 2*UMTLen)
	buf = append(buf, p.R1().UMI...)
	buf = append(buf, p.R2().UMI...)
	return string(buf)
}

// umiHash gives an O(1) coarse bucket key from a pair's combined UMI bytes,
// grouping pairs with byte-identical UMI pairs for the common case of an
// error-free read.
func umiHash(p *ReadPair) uint32 {
	return farm.Hash32([]byte(combinedUMI(p)))
}

// assignUnsizedBinByUMI buckets the unsized bin by UMI before handing each
// bucket to assignFamiliesWithinBin, so that the bucket sort and brute force
// passes below never have to consider the whole bin, only fragments that
// plausibly share a UMI.
//
// Grouping happens in two steps: first by exact hash of the combined UMI
// pair (the fast path, catching every error-free read), then a second pass
// merges hash groups whose representative UMI pairs are within
// umiMaxEditDistance of each other, so that a single sequencing error in a
// UMI does not strand a read in its own singleton bucket.
func assignUnsizedBinByUMI(bin []ReadPair, matrix []mergeSlot, currentFamily *int, allowed int) {
	sort.Slice(bin, func(i, j int) bool {
		return umiHash(&bin[i]) < umiHash(&bin[j])
	})

	type hashGroup struct {
		start, end int
		umi        string
	}
	var groups []hashGroup
	for start := 0; start < len(bin); {
		end := start + 1
		for end < len(bin) && umiHash(&bin[end]) == umiHash(&bin[start]) {
			end++
		}
		groups = append(groups, hashGroup{start, end, combinedUMI(&bin[start])})
		start = end
	}

	// Union hash groups whose representative UMI pairs are close.
	parent := make([]int, len(groups))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[ri] = rj
		}
	}
	for i := range groups {
		for j := i + 1; j < len(groups); j++ {
			if util.Levenshtein(groups[i].umi, groups[j].umi, "", "") <= umiMaxEditDistance {
				union(i, j)
			}
		}
	}

	merged := map[int][]ReadPair{}
	order := []int{}
	for i, g := range groups {
		root := find(i)
		if _, ok := merged[root]; !ok {
			order = append(order, root)
		}
		merged[root] = append(merged[root], bin[g.start:g.end]...)
	}

	out := bin[:0]
	for _, root := range order {
		group := merged[root]
		assignFamiliesWithinBin(group, matrix, currentFamily, allowed)
		out = append(out, group...)
	}
}
