package classical

import (
	"context"
	"errors"
	"strings"
)

// errInvalidKey marks an affine multiplier with no inverse mod 26. It never
// leaves the solver: offending keys are skipped, not surfaced.
var errInvalidKey = errors.New("affine multiplier not coprime with 26")

// affineSolver brute-forces every valid (a, b) pair: the 12 units mod 26
// crossed with the 26 offsets.
type affineSolver struct{}

func init() {
	mustRegister(affineSolver{})
}

func (affineSolver) Kind() CipherKind { return KindAffine }

func (affineSolver) Solve(ctx context.Context, letters string, score ScoreFunc, p Params) ([]ScoredResult, error) {
	if err := validLetters(letters); err != nil {
		return nil, err
	}
	p = p.withDefaults()

	results := make([]ScoredResult, 0, 12*26)
	for a := 1; a < 26; a++ {
		aInv, err := modInverse(a, 26)
		if errors.Is(err, errInvalidKey) {
			continue
		}
		for b := 0; b < 26; b++ {
			plaintext := affineDecrypt(letters, aInv, b)
			results = append(results, ScoredResult{
				Cipher:    KindAffine,
				Key:       LinearKey{A: a, B: b},
				Plaintext: plaintext,
				Score:     score(plaintext),
			})
		}
	}
	return topK(results, p.TopK), nil
}

// affineDecrypt inverts y = a*x + b (mod 26) using the precomputed inverse
// of a: x = aInv * (y - b) (mod 26).
func affineDecrypt(letters string, aInv, b int) string {
	var out strings.Builder
	out.Grow(len(letters))
	for i := 0; i < len(letters); i++ {
		y := int(letters[i] - 'A')
		x := (aInv * (y - b + 26)) % 26
		out.WriteByte(byte(x) + 'A')
	}
	return out.String()
}

// modInverse returns the multiplicative inverse of a modulo m, or
// errInvalidKey when gcd(a, m) != 1.
func modInverse(a, m int) (int, error) {
	a %= m
	for x := 1; x < m; x++ {
		if (a*x)%m == 1 {
			return x, nil
		}
	}
	return 0, errInvalidKey
}
