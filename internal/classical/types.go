// Package classical implements key-space search and decryption for the
// classical ciphers the detection engine understands: Caesar, Atbash, Affine,
// Vigenère, and monoalphabetic substitution.
package classical

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// CipherKind identifies a cipher family.
type CipherKind string

const (
	KindAuto           CipherKind = "auto"
	KindCaesar         CipherKind = "caesar"
	KindVigenere       CipherKind = "vigenere"
	KindAtbash         CipherKind = "atbash"
	KindAffine         CipherKind = "affine"
	KindMonoalphabetic CipherKind = "monoalphabetic"
)

// ErrEmptyInput is returned when ciphertext carries no alphabetic content.
var ErrEmptyInput = errors.New("ciphertext has no alphabetic content")

// Key is the candidate key recovered by a solver. Each cipher family carries
// only its own parameters; the concrete types below form a closed set.
type Key interface {
	// String returns a canonical representation used for deterministic
	// tie-breaking and for surfacing the key to callers.
	String() string

	key()
}

// ShiftKey is a Caesar shift in [0,25].
type ShiftKey struct {
	Shift int
}

func (k ShiftKey) String() string { return fmt.Sprintf("shift=%d", k.Shift) }
func (ShiftKey) key()             {}

// LinearKey is an Affine key pair; A must be coprime with 26.
type LinearKey struct {
	A int
	B int
}

func (k LinearKey) String() string { return fmt.Sprintf("a=%d,b=%d", k.A, k.B) }
func (LinearKey) key()             {}

// StringKey is a Vigenère keyword.
type StringKey struct {
	Text string
}

func (k StringKey) String() string { return "key=" + k.Text }
func (StringKey) key()             {}

// PermutationKey is a monoalphabetic substitution mapping. Mapping is a
// 26-letter string whose i-th letter is the plaintext for ciphertext letter
// 'A'+i; it is always a bijection over the alphabet.
type PermutationKey struct {
	Mapping string
}

func (k PermutationKey) String() string { return "mapping=" + k.Mapping }
func (PermutationKey) key()             {}

// NoKey marks ciphers with a fixed transform and nothing to search (Atbash).
type NoKey struct{}

func (NoKey) String() string { return "" }
func (NoKey) key()           {}

// ScoredResult pairs a candidate key with the plaintext it produces and that
// plaintext's English-likeness score. Plaintext is the bare letter stream;
// formatting is restored later by the caller that normalized the input.
type ScoredResult struct {
	Cipher    CipherKind
	Key       Key
	Plaintext string
	Score     float64
}

// ScoreFunc rates a stream of letters for English likeness; higher is more
// English-like. Implementations must be deterministic and safe for
// concurrent use.
type ScoreFunc func(letters string) float64

// Params carries solver tunables. Zero values fall back to the defaults, so
// Params{} is always usable.
type Params struct {
	// TopK caps how many candidates each solver returns.
	TopK int

	// MaxKeyLen bounds the Vigenère key lengths searched.
	MaxKeyLen int

	// MaxIters caps scoring evaluations in the monoalphabetic hill climb.
	MaxIters int
}

const (
	defaultTopK      = 3
	defaultMaxKeyLen = 12
	defaultMaxIters  = 10000
)

// DefaultParams returns the solver tunables used when callers do not
// override them.
func DefaultParams() Params {
	return Params{
		TopK:      defaultTopK,
		MaxKeyLen: defaultMaxKeyLen,
		MaxIters:  defaultMaxIters,
	}
}

func (p Params) withDefaults() Params {
	d := DefaultParams()
	if p.TopK <= 0 {
		p.TopK = d.TopK
	}
	if p.MaxKeyLen <= 0 {
		p.MaxKeyLen = d.MaxKeyLen
	}
	if p.MaxIters <= 0 {
		p.MaxIters = d.MaxIters
	}
	return p
}

// Solver searches one cipher family's key space and returns its best
// candidates. Implementations are stateless and safe for concurrent use.
type Solver interface {
	// Kind returns the cipher family this solver covers.
	Kind() CipherKind

	// Solve decrypts letters under candidate keys, scores the results with
	// score, and returns up to p.TopK candidates best-first. letters must be
	// a non-empty uppercase A-Z stream.
	Solve(ctx context.Context, letters string, score ScoreFunc, p Params) ([]ScoredResult, error)
}

// Less reports whether a ranks strictly before b: higher score first, then
// cipher name, then canonical key representation. The ordering is total over
// distinct candidates, which keeps ranked output reproducible.
func Less(a, b ScoredResult) bool {
	if !almostEqual(a.Score, b.Score) {
		return a.Score > b.Score
	}
	if a.Cipher != b.Cipher {
		return a.Cipher < b.Cipher
	}
	return keyRepr(a.Key) < keyRepr(b.Key)
}

func keyRepr(k Key) string {
	if k == nil {
		return ""
	}
	return k.String()
}

func almostEqual(a, b float64) bool {
	const epsilon = 1e-9
	diff := a - b
	return diff < epsilon && diff > -epsilon
}

// sortResults orders candidates in place according to Less.
func sortResults(results []ScoredResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return Less(results[i], results[j])
	})
}

// topK sorts candidates and truncates to at most k entries.
func topK(results []ScoredResult, k int) []ScoredResult {
	sortResults(results)
	if len(results) > k {
		results = results[:k]
	}
	return results
}

// validLetters reports whether letters is a non-empty uppercase A-Z stream.
func validLetters(letters string) error {
	if len(letters) == 0 {
		return ErrEmptyInput
	}
	if strings.IndexFunc(letters, func(r rune) bool { return r < 'A' || r > 'Z' }) >= 0 {
		return fmt.Errorf("letters must be uppercase A-Z")
	}
	return nil
}
