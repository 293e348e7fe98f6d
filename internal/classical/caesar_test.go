package classical

import (
	"context"
	"testing"

	"github.com/plainsight-dev/plainsight/internal/english"
)

func TestCaesarRecoversKnownShifts(t *testing.T) {
	tests := []struct {
		name      string
		letters   string
		wantShift int
		wantPlain string
	}{
		{
			"short greeting shift 3",
			"KHOORZRUOG",
			3,
			"HELLOWORLD",
		},
		{
			"short greeting shift 4",
			"LIPPSASVPH",
			4,
			"HELLOWORLD",
		},
		{
			"long sentence shift 7",
			"AOLXBPJRIYVDUMVEQBTWZVCLYAOLSHGFKVNHUKAOLUAOLXBPLAYPCLYMSVDZNLUASFWHZAAOLVSKZAVULIYPKNL",
			7,
			"THEQUICKBROWNFOXJUMPSOVERTHELAZYDOGANDTHENTHEQUIETRIVERFLOWSGENTLYPASTTHEOLDSTONEBRIDGE",
		},
	}

	solver, ok := GetSolver(KindCaesar)
	if !ok {
		t.Fatal("caesar solver not registered")
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := solver.Solve(context.Background(), tt.letters, english.Score, DefaultParams())
			if err != nil {
				t.Fatalf("Solve: %v", err)
			}
			if len(results) == 0 {
				t.Fatal("no candidates returned")
			}
			top := results[0]
			key, isShift := top.Key.(ShiftKey)
			if !isShift {
				t.Fatalf("top key is %T, want ShiftKey", top.Key)
			}
			if key.Shift != tt.wantShift {
				t.Errorf("top shift = %d, want %d", key.Shift, tt.wantShift)
			}
			if top.Plaintext != tt.wantPlain {
				t.Errorf("top plaintext = %q, want %q", top.Plaintext, tt.wantPlain)
			}
		})
	}
}

func TestCaesarRespectsTopK(t *testing.T) {
	solver, _ := GetSolver(KindCaesar)
	results, err := solver.Solve(context.Background(), "KHOORZRUOG", english.Score, Params{TopK: 5})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("got %d candidates, want 5", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("candidates not sorted: %v after %v", results[i].Score, results[i-1].Score)
		}
	}
}

func TestCaesarRejectsInvalidLetters(t *testing.T) {
	solver, _ := GetSolver(KindCaesar)
	if _, err := solver.Solve(context.Background(), "", english.Score, DefaultParams()); err == nil {
		t.Fatal("expected error on empty letters")
	}
	if _, err := solver.Solve(context.Background(), "abc", english.Score, DefaultParams()); err == nil {
		t.Fatal("expected error on lowercase letters")
	}
}

func TestShiftDecrypt(t *testing.T) {
	if got := shiftDecrypt("KHOORZRUOG", 3); got != "HELLOWORLD" {
		t.Errorf("shiftDecrypt = %q, want HELLOWORLD", got)
	}
	if got := shiftDecrypt("ABC", 0); got != "ABC" {
		t.Errorf("shiftDecrypt with shift 0 = %q, want ABC", got)
	}
}
