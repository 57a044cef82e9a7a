// core/melt/conditions.go
package melt

// Conditions holds the solution parameters for a Tm computation.
// Units follow wet-lab convention: strand concentration in nM, cations
// and dNTPs in mM.
type Conditions struct {
	DNAnM       float64 // total DNA strand concentration (nM)
	NamM        float64 // monovalent cations, Na+ (mM)
	MgmM        float64 // divalent cations, Mg2+ (mM)
	DNTPmM      float64 // dNTPs (mM); bind Mg2+ and lower its free conc
	Uncorrected bool    // skip the cation correction entirely
}

// DefaultConditions returns the standard solution used when the caller
// specifies nothing: 5000 nM DNA, 10 mM Na+, 20 mM Mg2+, 10 mM dNTPs.
func DefaultConditions() Conditions {
	return Conditions{
		DNAnM:  5000.0,
		NamM:   10.0,
		MgmM:   20.0,
		DNTPmM: 10.0,
	}
}
