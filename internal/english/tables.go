package english

// letterFrequencies holds expected relative frequencies (percent) of the 26
// letters in running English text, indexed by letter minus 'A'. The values are
// the standard Lewand corpus figures.
var letterFrequencies = [26]float64{
	8.17,  // A
	1.49,  // B
	2.78,  // C
	4.25,  // D
	12.70, // E
	2.23,  // F
	2.02,  // G
	6.09,  // H
	6.97,  // I
	0.15,  // J
	0.77,  // K
	4.03,  // L
	2.41,  // M
	6.75,  // N
	7.51,  // O
	1.93,  // P
	0.10,  // Q
	5.99,  // R
	6.33,  // S
	9.06,  // T
	2.76,  // U
	0.98,  // V
	2.36,  // W
	0.15,  // X
	1.97,  // Y
	0.07,  // Z
}

// frequencyOrder lists the alphabet from most to least frequent letter. Used
// to seed frequency-matched substitution mappings.
const frequencyOrder = "ETAOINSHRDLCUMWFGYPBVKJXQZ"

// commonBigrams is the set of the most frequent English bigrams. Candidate
// plaintexts are scored on the fraction of their bigrams found here.
var commonBigrams = map[string]struct{}{
	"TH": {}, "HE": {}, "IN": {}, "ER": {}, "AN": {}, "RE": {},
	"ON": {}, "AT": {}, "EN": {}, "ND": {}, "TI": {}, "ES": {},
	"OR": {}, "TE": {}, "OF": {}, "ED": {}, "IS": {}, "IT": {},
	"AL": {}, "AR": {}, "ST": {}, "TO": {}, "NT": {}, "HA": {},
	"SE": {}, "OU": {}, "IO": {}, "LE": {}, "VE": {}, "ME": {},
}

// commonTrigrams is the analogous set of frequent English trigrams.
var commonTrigrams = map[string]struct{}{
	"THE": {}, "AND": {}, "ING": {}, "HER": {}, "HAT": {}, "HIS": {},
	"THA": {}, "ERE": {}, "FOR": {}, "ENT": {}, "ION": {}, "TER": {},
	"WAS": {}, "YOU": {}, "ITH": {}, "VER": {}, "ALL": {}, "WIT": {},
	"THI": {}, "TIO": {}, "EVE": {}, "OUR": {}, "EST": {}, "IVE": {},
	"NCE": {}, "HIN": {}, "EDT": {}, "OFT": {}, "STH": {}, "MEN": {},
}

const (
	// englishIC is the expected index of coincidence for English text.
	englishIC = 0.0667

	// englishEntropy is the expected Shannon entropy (bits per letter) of
	// English text stripped to its letters.
	englishEntropy = 4.18
)
