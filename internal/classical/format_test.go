package classical

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFormatCarriesFamilyParameters(t *testing.T) {
	tests := []struct {
		name   string
		result ScoredResult
		check  func(t *testing.T, rec Record)
	}{
		{
			"caesar shift",
			ScoredResult{Cipher: KindCaesar, Key: ShiftKey{Shift: 3}, Plaintext: "HELLO", Score: 0.9},
			func(t *testing.T, rec Record) {
				if rec.Shift == nil || *rec.Shift != 3 {
					t.Errorf("shift = %v, want 3", rec.Shift)
				}
				if rec.A != nil || rec.Key != "" || rec.Mapping != "" {
					t.Error("caesar record carries foreign key fields")
				}
			},
		},
		{
			"affine pair",
			ScoredResult{Cipher: KindAffine, Key: LinearKey{A: 5, B: 8}, Plaintext: "HELLO", Score: 0.8},
			func(t *testing.T, rec Record) {
				if rec.A == nil || *rec.A != 5 || rec.B == nil || *rec.B != 8 {
					t.Errorf("(a,b) = (%v,%v), want (5,8)", rec.A, rec.B)
				}
			},
		},
		{
			"vigenere keyword",
			ScoredResult{Cipher: KindVigenere, Key: StringKey{Text: "TIME"}, Plaintext: "HELLO", Score: 0.7},
			func(t *testing.T, rec Record) {
				if rec.Key != "TIME" {
					t.Errorf("key = %q, want TIME", rec.Key)
				}
			},
		},
		{
			"monoalphabetic mapping",
			ScoredResult{Cipher: KindMonoalphabetic, Key: PermutationKey{Mapping: "QWERTYUIOPASDFGHJKLZXCVBNM"}, Plaintext: "HELLO", Score: 0.6},
			func(t *testing.T, rec Record) {
				if rec.Mapping != "QWERTYUIOPASDFGHJKLZXCVBNM" {
					t.Errorf("mapping = %q", rec.Mapping)
				}
			},
		},
		{
			"atbash has no parameters",
			ScoredResult{Cipher: KindAtbash, Key: NoKey{}, Plaintext: "HELLO", Score: 0.5},
			func(t *testing.T, rec Record) {
				if rec.Shift != nil || rec.A != nil || rec.B != nil || rec.Key != "" || rec.Mapping != "" {
					t.Error("atbash record carries key fields")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Format(tt.result, nil)
			if rec.Cipher != string(tt.result.Cipher) {
				t.Errorf("cipher = %q, want %q", rec.Cipher, tt.result.Cipher)
			}
			if rec.Text != tt.result.Plaintext {
				t.Errorf("text = %q, want %q", rec.Text, tt.result.Plaintext)
			}
			if rec.Score != tt.result.Score {
				t.Errorf("score = %v, want %v", rec.Score, tt.result.Score)
			}
			tt.check(t, rec)
		})
	}
}

func TestFormatAppliesRestore(t *testing.T) {
	result := ScoredResult{Cipher: KindCaesar, Key: ShiftKey{Shift: 3}, Plaintext: "HELLOWORLD", Score: 0.9}
	rec := Format(result, func(letters string) string {
		return strings.ToLower(letters)
	})
	if rec.Text != "helloworld" {
		t.Errorf("text = %q, want helloworld", rec.Text)
	}
}

func TestRecordOmitsAbsentFields(t *testing.T) {
	rec := Format(ScoredResult{Cipher: KindAtbash, Key: NoKey{}, Plaintext: "HELLO", Score: 0.5}, nil)
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{"shift", `"a"`, `"b"`, `"key"`, "mapping"} {
		if strings.Contains(string(data), field) {
			t.Errorf("serialized record %s contains %s", data, field)
		}
	}
}
