package classical

import (
	"context"
	"strings"
)

// caesarSolver brute-forces all 26 shifts.
type caesarSolver struct{}

func init() {
	mustRegister(caesarSolver{})
}

func (caesarSolver) Kind() CipherKind { return KindCaesar }

func (caesarSolver) Solve(ctx context.Context, letters string, score ScoreFunc, p Params) ([]ScoredResult, error) {
	if err := validLetters(letters); err != nil {
		return nil, err
	}
	p = p.withDefaults()

	results := make([]ScoredResult, 0, 26)
	for shift := 0; shift < 26; shift++ {
		plaintext := shiftDecrypt(letters, shift)
		results = append(results, ScoredResult{
			Cipher:    KindCaesar,
			Key:       ShiftKey{Shift: shift},
			Plaintext: plaintext,
			Score:     score(plaintext),
		})
	}
	return topK(results, p.TopK), nil
}

// shiftDecrypt undoes a Caesar encryption shift: each ciphertext letter is
// moved shift positions back through the alphabet.
func shiftDecrypt(letters string, shift int) string {
	var b strings.Builder
	b.Grow(len(letters))
	for i := 0; i < len(letters); i++ {
		b.WriteByte(byte((int(letters[i]-'A')-shift+26)%26) + 'A')
	}
	return b.String()
}
