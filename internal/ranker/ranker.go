// Package ranker merges heterogeneous solver output into a single
// deterministically ordered candidate list.
package ranker

import (
	"sort"

	"github.com/plainsight-dev/plainsight/internal/classical"
)

// Rank returns the candidates sorted in priority order: score descending,
// ties broken by cipher name and then by the canonical key representation.
// The input is not modified; identical input always produces identical
// output, which keeps responses reproducible byte for byte.
func Rank(results []classical.ScoredResult) []classical.ScoredResult {
	if len(results) == 0 {
		return nil
	}

	ranked := make([]classical.ScoredResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return classical.Less(ranked[i], ranked[j])
	})
	return ranked
}

// Truncate caps a ranked list at n candidates. Non-positive n yields an
// empty list.
func Truncate(results []classical.ScoredResult, n int) []classical.ScoredResult {
	if n <= 0 {
		return nil
	}
	if len(results) <= n {
		return results
	}
	return results[:n]
}
