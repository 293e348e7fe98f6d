package classical

// Record is the uniform shape a candidate is surfaced in. The common cipher,
// text, and score fields are always present; the key parameters carry only
// the fields relevant to the candidate's cipher family, so heterogeneous
// candidates render uniformly at the boundary.
type Record struct {
	Cipher string  `json:"cipher"`
	Text   string  `json:"text"`
	Score  float64 `json:"score"`

	Shift   *int   `json:"shift,omitempty"`   // Caesar
	A       *int   `json:"a,omitempty"`       // Affine
	B       *int   `json:"b,omitempty"`       // Affine
	Key     string `json:"key,omitempty"`     // Vigenère
	Mapping string `json:"mapping,omitempty"` // Monoalphabetic
}

// Format maps a scored candidate into its uniform record, running restore
// over the bare plaintext to reproduce the original casing and punctuation.
func Format(r ScoredResult, restore func(string) string) Record {
	text := r.Plaintext
	if restore != nil {
		text = restore(text)
	}

	rec := Record{
		Cipher: string(r.Cipher),
		Text:   text,
		Score:  r.Score,
	}

	switch key := r.Key.(type) {
	case ShiftKey:
		shift := key.Shift
		rec.Shift = &shift
	case LinearKey:
		a, b := key.A, key.B
		rec.A = &a
		rec.B = &b
	case StringKey:
		rec.Key = key.Text
	case PermutationKey:
		rec.Mapping = key.Mapping
	case NoKey, nil:
		// Atbash has a fixed transform and no parameters.
	}
	return rec
}
