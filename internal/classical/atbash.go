package classical

import (
	"context"
	"strings"
)

// atbashSolver applies the fixed alphabet-reversal substitution. There is no
// key space; the transform is its own inverse.
type atbashSolver struct{}

func init() {
	mustRegister(atbashSolver{})
}

func (atbashSolver) Kind() CipherKind { return KindAtbash }

func (atbashSolver) Solve(ctx context.Context, letters string, score ScoreFunc, p Params) ([]ScoredResult, error) {
	if err := validLetters(letters); err != nil {
		return nil, err
	}

	plaintext := AtbashTransform(letters)
	return []ScoredResult{{
		Cipher:    KindAtbash,
		Key:       NoKey{},
		Plaintext: plaintext,
		Score:     score(plaintext),
	}}, nil
}

// AtbashTransform maps every letter to its mirror (A↔Z, B↔Y, ...). Applying
// it twice yields the original input.
func AtbashTransform(letters string) string {
	var b strings.Builder
	b.Grow(len(letters))
	for i := 0; i < len(letters); i++ {
		b.WriteByte('Z' - (letters[i] - 'A'))
	}
	return b.String()
}
