// Package english scores candidate plaintexts for English likeness. All
// reference tables are immutable process-wide constants, so scoring is
// deterministic and safe for any number of concurrent callers.
package english

import (
	"bufio"
	"bytes"
	_ "embed"
	"math"
	"strings"
)

//go:embed words.txt
var wordsRaw []byte

// dictionary holds the embedded common-word list, uppercase.
var dictionary = loadDictionary()

// maxWordLen is the longest entry in the embedded word list.
var maxWordLen = longestWord()

// WorstScore is emitted for candidates that cannot be scored, such as an
// empty letter stream. Every real candidate scores at least this much.
const WorstScore = 0.0

// Component weights of the blended score. The blend and its weights follow
// the hybrid scorer this engine was tuned against: dictionary coverage
// dominates, letter statistics arbitrate between near-misses.
const (
	weightCoverage = 0.35
	weightFreq     = 0.20
	weightBigram   = 0.15
	weightTrigram  = 0.10
	weightIC       = 0.10
	weightEntropy  = 0.10

	// shortTextBoost rewards short candidates that are mostly dictionary
	// words, where the statistical components have too little signal.
	shortTextBoost   = 0.15
	shortTextLetters = 12
)

// Score rates a stream of letters for English likeness. Higher is more
// English-like; the result is deterministic, finite, and comparable across
// callers. Non-letter runes are ignored. An empty stream scores WorstScore.
func Score(letters string) float64 {
	t := toUpperLetters(letters)
	n := len(t)
	if n == 0 {
		return WorstScore
	}

	var counts [26]int
	for i := 0; i < n; i++ {
		counts[t[i]-'A']++
	}

	cov := Coverage(t)
	score := weightCoverage*cov +
		weightFreq*frequencySimilarity(counts, n) +
		weightBigram*bigramRatio(t) +
		weightTrigram*trigramRatio(t) +
		weightIC*icCloseness(counts, n) +
		weightEntropy*entropyCloseness(counts, n)

	if n <= shortTextLetters && cov > 0.5 {
		score += shortTextBoost
	}

	// Round so equal-quality candidates compare equal and fall through to
	// the deterministic tie-break.
	return math.Round(score*10000) / 10000
}

// Coverage reports the fraction of letters covered by greedy longest-match
// dictionary segmentation. Matches shorter than three letters are ignored so
// accidental fragments do not inflate gibberish.
func Coverage(letters string) float64 {
	t := toUpperLetters(letters)
	n := len(t)
	if n == 0 {
		return 0
	}
	matched := 0
	for pos := 0; pos < n; {
		hit := 0
		limit := maxWordLen
		if rest := n - pos; rest < limit {
			limit = rest
		}
		for l := limit; l >= 3; l-- {
			if _, ok := dictionary[t[pos:pos+l]]; ok {
				hit = l
				break
			}
		}
		if hit > 0 {
			matched += hit
			pos += hit
		} else {
			pos++
		}
	}
	return float64(matched) / float64(n)
}

// IndexOfCoincidence computes the probability that two randomly chosen
// letters of the stream are equal. English text sits near 0.0667, uniformly
// random letters near 0.0385.
func IndexOfCoincidence(letters string) float64 {
	t := toUpperLetters(letters)
	n := len(t)
	if n < 2 {
		return 0
	}
	var counts [26]int
	for i := 0; i < n; i++ {
		counts[t[i]-'A']++
	}
	sum := 0
	for _, c := range counts {
		sum += c * (c - 1)
	}
	return float64(sum) / float64(n*(n-1))
}

// Frequencies returns the expected English letter frequencies in percent,
// indexed by letter minus 'A'. The returned array is a copy; the reference
// table is never mutated.
func Frequencies() [26]float64 {
	return letterFrequencies
}

// FrequencyOrder returns the alphabet ordered from most to least frequent
// English letter.
func FrequencyOrder() string {
	return frequencyOrder
}

// Words returns the embedded common-word list filtered to lengths within
// [minLen, maxLen], in stable (sorted-file) order.
func Words(minLen, maxLen int) []string {
	out := make([]string, 0, len(dictionaryOrdered))
	for _, w := range dictionaryOrdered {
		if len(w) >= minLen && len(w) <= maxLen {
			out = append(out, w)
		}
	}
	return out
}

func frequencySimilarity(counts [26]int, n int) float64 {
	// One minus the total variation distance between observed and expected
	// letter distributions.
	dist := 0.0
	for i, c := range counts {
		dist += math.Abs(float64(c)/float64(n) - letterFrequencies[i]/100)
	}
	return 1 - dist/2
}

func bigramRatio(t string) float64 {
	if len(t) < 2 {
		return 0
	}
	hits := 0
	for i := 0; i+2 <= len(t); i++ {
		if _, ok := commonBigrams[t[i:i+2]]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(t)-1)
}

func trigramRatio(t string) float64 {
	if len(t) < 3 {
		return 0
	}
	hits := 0
	for i := 0; i+3 <= len(t); i++ {
		if _, ok := commonTrigrams[t[i:i+3]]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(t)-2)
}

func icCloseness(counts [26]int, n int) float64 {
	if n < 2 {
		return 0
	}
	sum := 0
	for _, c := range counts {
		sum += c * (c - 1)
	}
	ic := float64(sum) / float64(n*(n-1))
	return math.Max(0, 1-math.Abs(ic-englishIC)/englishIC)
}

func entropyCloseness(counts [26]int, n int) float64 {
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(n)
		entropy -= p * math.Log2(p)
	}
	return math.Max(0, 1-math.Abs(englishEntropy-entropy)/englishEntropy)
}

func toUpperLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

var dictionaryOrdered []string

func loadDictionary() map[string]struct{} {
	dict := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(wordsRaw))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if _, seen := dict[word]; seen {
			continue
		}
		dict[word] = struct{}{}
		dictionaryOrdered = append(dictionaryOrdered, word)
	}
	return dict
}

func longestWord() int {
	longest := 0
	for w := range dictionary {
		if len(w) > longest {
			longest = len(w)
		}
	}
	return longest
}
