// core/melt/nn.go
// Nearest-neighbor energetics for DNA/DNA duplexes.
// Units: ΔH in kcal/mol, ΔS in cal/(K·mol).
//
// Propagation parameters are Table 1 of Allawi & SantaLucia (1997),
// Biochemistry 36:10581-10594. Complementary reversed dimers share one
// measured magnitude; both orientations are tabulated so lookups stay a
// single map hit. The numbers are empirical data, never derived.

package melt

import (
	"strings"

	"melt-core/oligo"
)

// NNParams holds nearest-neighbor propagation parameters.
type NNParams struct {
	DH float64 // kcal/mol
	DS float64 // cal/(K·mol)
}

var nnParams = map[string]NNParams{
	// Canonical 10
	"AA": {-7.9, -22.2},
	"AT": {-7.2, -20.4},
	"TA": {-7.2, -21.3},
	"CA": {-8.5, -22.7},
	"GT": {-8.4, -22.4},
	"CT": {-7.8, -21.0},
	"GA": {-8.2, -22.2},
	"CG": {-10.6, -27.2},
	"GC": {-9.8, -24.4},
	"GG": {-8.0, -19.9},

	// Reverse-complement synonyms
	"TT": {-7.9, -22.2}, // same as AA
	"TG": {-8.5, -22.7}, // same as CA
	"AC": {-8.4, -22.4}, // same as GT
	"AG": {-7.8, -21.0}, // same as CT
	"TC": {-8.2, -22.2}, // same as GA
	"CC": {-8.0, -19.9}, // same as GG
}

// Terminal-base initiation adjustments and symmetry penalty.
var (
	termGC_DH, termGC_DS = +0.1, -2.8 // per G/C terminus
	termAT_DH, termAT_DS = +2.3, +4.1 // per A/T terminus
	symmDS               = -1.4       // self-complementary duplex
)

// Overcount counts overlapping occurrences of pair in s;
// Overcount("AAAA", "AA") is 3.
func Overcount(s, pair string) int {
	n := 0
	for x := 0; ; {
		i := strings.Index(s[x:], pair)
		if i < 0 {
			return n
		}
		n++
		x += i + 1
	}
}

// terminalCorrection returns the initiation ΔH/ΔS for the first and
// last bases, plus the symmetry penalty for self-complementary input.
// Both ends are adjusted independently, so a 1-base sequence is
// counted twice (once as start, once as end); kept for compatibility
// with the published parameterization.
func terminalCorrection(s string) (dh, ds float64) {
	if oligo.IsSelfComplementary(s) {
		ds = symmDS
	}
	for _, b := range [2]byte{s[0], s[len(s)-1]} {
		switch b {
		case 'G', 'C':
			dh += termGC_DH
			ds += termGC_DS
		case 'A', 'T':
			dh += termAT_DH
			ds += termAT_DS
		}
	}
	return dh, ds
}
