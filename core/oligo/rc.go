// core/oligo/rc.go
package oligo

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['T'] = 'A'
}

// RevComp returns the reverse complement of an A/C/G/T sequence.
// Bases outside the alphabet pass through unchanged.
func RevComp(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		c := complement[b]
		if c == 0 {
			c = b
		}
		out[i] = c
	}
	return string(out)
}

// IsSelfComplementary reports whether seq equals its own reverse
// complement. Self-complementary duplexes form symmetric homodimers and
// carry an extra entropic penalty in the nearest-neighbor model.
func IsSelfComplementary(seq string) bool {
	return seq != "" && seq == RevComp(seq)
}
