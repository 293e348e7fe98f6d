package classical

import (
	"errors"
	"testing"
)

func TestNormalizeExtractsLetters(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"uppercase words", "KHOOR ZRUOG", "KHOORZRUOG"},
		{"mixed case", "Khoor Zruog!", "KHOORZRUOG"},
		{"digits and punctuation", "a1b2-c3.", "ABC"},
		{"unicode passthrough", "héllo", "HLLO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			norm, err := Normalize(tt.raw)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tt.raw, err)
			}
			if norm.Letters != tt.want {
				t.Errorf("Letters = %q, want %q", norm.Letters, tt.want)
			}
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "  ", "123 456", "!@# $%^"} {
		if _, err := Normalize(raw); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("Normalize(%q) error = %v, want ErrEmptyInput", raw, err)
		}
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	tests := []string{
		"Hello, World!",
		"KHOOR ZRUOG",
		"a1b2-c3. mixed CASE here?",
		"punctuation... everywhere!!! (and parens)",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			norm, err := Normalize(raw)
			if err != nil {
				t.Fatalf("Normalize(%q): %v", raw, err)
			}
			if got := norm.Restore(norm.Letters); got != raw {
				t.Errorf("Restore(Letters) = %q, want %q", got, raw)
			}
		})
	}
}

func TestRestoreAppliesLayout(t *testing.T) {
	norm, err := Normalize("Khoor, Zruog!")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got, want := norm.Restore("HELLOWORLD"), "Hello, World!"; got != want {
		t.Errorf("Restore = %q, want %q", got, want)
	}
}

func TestRestoreLengthMismatch(t *testing.T) {
	norm, err := Normalize("ABC DEF")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	// A stream of the wrong length cannot be mapped onto the layout.
	if got := norm.Restore("TOOLONGSTREAM"); got != "TOOLONGSTREAM" {
		t.Errorf("Restore on mismatched length = %q, want input unchanged", got)
	}
}
