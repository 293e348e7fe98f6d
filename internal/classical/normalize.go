package classical

import "strings"

// Normalized is the analysis view of one request's ciphertext: the uppercase
// letter stream plus the layout needed to restore the original formatting
// onto a candidate plaintext. It is created once per request and never
// mutated.
type Normalized struct {
	// Letters is the uppercase A-Z stream extracted from the raw input.
	Letters string

	layout []layoutCell
}

type layoutCell struct {
	r      rune
	letter bool
	lower  bool
}

// Normalize extracts the alphabetic stream from raw while recording enough
// layout to reproduce the original casing and punctuation. Only ASCII
// letters participate in analysis; everything else is passed through
// verbatim on restore. Returns ErrEmptyInput when raw contains no letters.
func Normalize(raw string) (*Normalized, error) {
	var letters strings.Builder
	layout := make([]layoutCell, 0, len(raw))

	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			letters.WriteRune(r)
			layout = append(layout, layoutCell{r: r, letter: true})
		case r >= 'a' && r <= 'z':
			letters.WriteRune(r - 'a' + 'A')
			layout = append(layout, layoutCell{r: r, letter: true, lower: true})
		default:
			layout = append(layout, layoutCell{r: r})
		}
	}

	if letters.Len() == 0 {
		return nil, ErrEmptyInput
	}

	return &Normalized{Letters: letters.String(), layout: layout}, nil
}

// Restore maps an uppercase letter stream of the same alphabetic length back
// onto the original layout, reinserting non-alphabetic characters and the
// original case. A stream of any other length is returned unchanged.
func (n *Normalized) Restore(letters string) string {
	if len(letters) != len(n.Letters) {
		return letters
	}

	var out strings.Builder
	out.Grow(len(n.layout))
	next := 0
	for _, cell := range n.layout {
		if !cell.letter {
			out.WriteRune(cell.r)
			continue
		}
		r := rune(letters[next])
		next++
		if cell.lower {
			r = r - 'A' + 'a'
		}
		out.WriteRune(r)
	}
	return out.String()
}
