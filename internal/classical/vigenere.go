package classical

import (
	"context"
	"strings"

	"github.com/plainsight-dev/plainsight/internal/english"
)

// vigenereSolver recovers repeating-key shift ciphers two ways: a dictionary
// pass over common short keywords, and a statistical pass that solves each
// key length's columns as independent Caesar ciphers by frequency fit. The
// whole-plaintext score arbitrates between the passes; the index of
// coincidence alone is too noisy on short ciphertext to commit to a single
// key length.
type vigenereSolver struct{}

func init() {
	mustRegister(vigenereSolver{})
}

const (
	// dictionary keys shorter than 2 degenerate to Caesar candidates.
	minDictKeyLen = 2
	maxDictKeyLen = 6

	// how often the search loops poll for cancellation.
	cancelCheckEvery = 64
)

func (vigenereSolver) Kind() CipherKind { return KindVigenere }

func (vigenereSolver) Solve(ctx context.Context, letters string, score ScoreFunc, p Params) ([]ScoredResult, error) {
	if err := validLetters(letters); err != nil {
		return nil, err
	}
	p = p.withDefaults()

	// Dedupe by plaintext: a repeated keyword (or a key length that is a
	// multiple of the true one) produces the same decryption.
	seen := make(map[string]struct{})
	var results []ScoredResult
	add := func(key string, plaintext string) {
		if _, dup := seen[plaintext]; dup {
			return
		}
		seen[plaintext] = struct{}{}
		results = append(results, ScoredResult{
			Cipher:    KindVigenere,
			Key:       StringKey{Text: key},
			Plaintext: plaintext,
			Score:     score(plaintext),
		})
	}

	maxDict := maxDictKeyLen
	if p.MaxKeyLen < maxDict {
		maxDict = p.MaxKeyLen
	}
	for i, word := range english.Words(minDictKeyLen, maxDict) {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		add(word, vigenereDecrypt(letters, word))
	}

	maxLen := p.MaxKeyLen
	if half := len(letters) / 2; maxLen > half {
		maxLen = half
	}
	for keyLen := 1; keyLen <= maxLen; keyLen++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := solveColumns(letters, keyLen)
		add(key, vigenereDecrypt(letters, key))
	}

	// A degenerate search still reports its least-bad candidate; auto mode
	// relies on every family returning something.
	if len(results) == 0 {
		add("A", letters)
	}

	return topK(results, p.TopK), nil
}

// vigenereDecrypt shifts each letter back by the key letter at its position.
func vigenereDecrypt(letters, key string) string {
	var b strings.Builder
	b.Grow(len(letters))
	for i := 0; i < len(letters); i++ {
		shift := int(key[i%len(key)] - 'A')
		b.WriteByte(byte((int(letters[i]-'A')-shift+26)%26) + 'A')
	}
	return b.String()
}

// solveColumns treats letters as keyLen interleaved Caesar ciphers and picks
// each column's shift by frequency fit, reassembling the implied keyword.
func solveColumns(letters string, keyLen int) string {
	key := make([]byte, keyLen)
	for col := 0; col < keyLen; col++ {
		var counts [26]int
		n := 0
		for i := col; i < len(letters); i += keyLen {
			counts[letters[i]-'A']++
			n++
		}
		key[col] = 'A' + byte(bestShift(counts, n))
	}
	return string(key)
}

// bestShift returns the decryption shift whose letter distribution is the
// closest chi-squared match to English.
func bestShift(counts [26]int, n int) int {
	freqs := english.Frequencies()
	best := 0
	bestChi := -1.0
	for shift := 0; shift < 26; shift++ {
		chi := 0.0
		for c := 0; c < 26; c++ {
			plain := (c - shift + 26) % 26
			expected := float64(n) * freqs[plain] / 100
			diff := float64(counts[c]) - expected
			chi += diff * diff / expected
		}
		if bestChi < 0 || chi < bestChi {
			bestChi = chi
			best = shift
		}
	}
	return best
}
