package classical

import (
	"context"
	"sort"
	"strings"

	"github.com/plainsight-dev/plainsight/internal/english"
)

// substitutionSolver attacks arbitrary alphabet permutations. The 26! key
// space cannot be enumerated, so the solver seeds a frequency-matched
// mapping and hill-climbs over pairwise swaps until no swap improves the
// score or the evaluation cap is reached. The search is deterministic: swap
// order is fixed and only strict improvements are accepted, so identical
// input always converges to the same local optimum. That optimum is
// best-effort, never guaranteed global.
type substitutionSolver struct{}

func init() {
	mustRegister(substitutionSolver{})
}

func (substitutionSolver) Kind() CipherKind { return KindMonoalphabetic }

func (substitutionSolver) Solve(ctx context.Context, letters string, score ScoreFunc, p Params) ([]ScoredResult, error) {
	if err := validLetters(letters); err != nil {
		return nil, err
	}
	p = p.withDefaults()

	seed := frequencyMapping(letters)
	seedResult := ScoredResult{
		Cipher:    KindMonoalphabetic,
		Key:       PermutationKey{Mapping: string(seed[:])},
		Plaintext: applyMapping(letters, seed),
		Score:     score(applyMapping(letters, seed)),
	}

	best, bestScore, err := hillClimb(ctx, letters, seed, score, p.MaxIters)
	if err != nil {
		return nil, err
	}

	results := []ScoredResult{{
		Cipher:    KindMonoalphabetic,
		Key:       PermutationKey{Mapping: string(best[:])},
		Plaintext: applyMapping(letters, best),
		Score:     bestScore,
	}}
	if best != seed {
		results = append(results, seedResult)
	}
	return topK(results, p.TopK), nil
}

// hillClimb repeatedly sweeps all letter-pair swaps of the mapping,
// accepting only strict improvements, until a full sweep yields none or the
// evaluation cap is hit.
func hillClimb(ctx context.Context, letters string, mapping [26]byte, score ScoreFunc, maxIters int) ([26]byte, float64, error) {
	current := mapping
	currentScore := score(applyMapping(letters, current))
	evals := 0

	for {
		if err := ctx.Err(); err != nil {
			return current, currentScore, err
		}
		improved := false
		for i := 0; i < 26 && evals < maxIters; i++ {
			for j := i + 1; j < 26 && evals < maxIters; j++ {
				candidate := current
				candidate[i], candidate[j] = candidate[j], candidate[i]
				evals++
				if s := score(applyMapping(letters, candidate)); s > currentScore {
					current = candidate
					currentScore = s
					improved = true
				}
			}
			if i%8 == 0 {
				if err := ctx.Err(); err != nil {
					return current, currentScore, err
				}
			}
		}
		if !improved || evals >= maxIters {
			return current, currentScore, nil
		}
	}
}

// frequencyMapping aligns the ciphertext's letters, ordered by descending
// frequency (ties and absent letters alphabetical), with the English
// frequency order. The result is always a bijection.
func frequencyMapping(letters string) [26]byte {
	var counts [26]int
	for i := 0; i < len(letters); i++ {
		counts[letters[i]-'A']++
	}

	order := make([]int, 26)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if counts[order[a]] != counts[order[b]] {
			return counts[order[a]] > counts[order[b]]
		}
		return order[a] < order[b]
	})

	freqOrder := english.FrequencyOrder()
	var mapping [26]byte
	for rank, cipherLetter := range order {
		mapping[cipherLetter] = freqOrder[rank]
	}
	return mapping
}

// applyMapping substitutes each ciphertext letter with its mapped plaintext
// letter.
func applyMapping(letters string, mapping [26]byte) string {
	var b strings.Builder
	b.Grow(len(letters))
	for i := 0; i < len(letters); i++ {
		b.WriteByte(mapping[letters[i]-'A'])
	}
	return b.String()
}
