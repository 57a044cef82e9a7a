// core/melt/tm.go
// DNA/DNA melting temperature by nearest-neighbor thermodynamics, with
// correction for monovalent (Na+) and divalent (Mg2+, dNTP-bound)
// cation concentrations. Correction formulas follow the IDT
// OligoAnalyzer definitions (Owczarzy et al. empirical fits).
//
// Steps:
//  1) Terminal-base initiation + symmetry penalty (nn.go).
//  2) Sum per-dimer ΔH/ΔS over all 16 table entries, weighted by
//     overlapping occurrence counts.
//  3) Two-state Tm (K): Tm = 1000·ΔH / (ΔS + R·ln(CT)).
//  4) Unless Uncorrected, adjust 1/Tm by the cation-ratio regime fit.
//
// The computation is pure: no I/O, no state, no errors. Degenerate
// inputs (zero concentrations, length-1 sequences in the divalent
// branch) propagate as NaN/Inf rather than being guarded.

package melt

import "math"

const (
	// Gas constant in cal/(K·mol)
	rGas = 1.987

	// Mg2+/dNTP association constant in biological buffers.
	kaMgDNTP = 3e4

	// Regime switch for the cation-ratio correction.
	lowRatioCutoff = 0.22
)

// Result reports the summed energetics alongside the corrected Tm.
type Result struct {
	DHKcal      float64 // total ΔH (kcal/mol)
	DSCal       float64 // total ΔS (cal/(K·mol))
	CationRatio float64 // √[free Mg2+]/[Na+]; 0 when Uncorrected
	TmC         float64 // melting temperature (°C)
}

// Tm returns the melting temperature (°C) of a validated, non-empty
// A/C/G/T sequence under the given solution conditions.
func Tm(seq string, c Conditions) float64 {
	return Details(seq, c).TmC
}

// Details computes Tm and reports the intermediate quantities.
// The sequence must be validated and non-empty (oligo.Validate).
func Details(seq string, c Conditions) Result {
	s := normalizeUpper(seq)

	dh, ds := terminalCorrection(s)
	for pair, p := range nnParams {
		n := float64(Overcount(s, pair))
		dh += n * p.DH
		ds += n * p.DS
	}

	// Composition weight for the cation corrections (fitted term
	// scaling with 1/L).
	fgc := 1.0 / float64(len(s))

	ct := c.DNAnM * 1e-9 // nM → mol/L
	tm := (1000 * dh) / (ds + rGas*math.Log(ct))

	out := Result{DHKcal: dh, DSCal: ds}
	if c.Uncorrected {
		out.TmC = tm - 273.15
		return out
	}

	mNa := c.NamM * 1e-3
	mMg := c.MgmM * 1e-3
	mDNTP := c.DNTPmM * 1e-3

	// Free Mg2+ from the dNTP binding equilibrium (quadratic in Fmg;
	// the discriminant is a square plus a non-negative term).
	b := kaMgDNTP*mDNTP - kaMgDNTP*mMg + 1
	fMg := (-b + math.Sqrt(b*b+4*kaMgDNTP*mMg)) / (2 * kaMgDNTP)

	// With no monovalent cations the ratio is undefined; 7.0 forces
	// the divalent-dominated branch with unscaled constants.
	ratio := 7.0
	if mNa > 0 {
		ratio = math.Sqrt(fMg) / mNa
	}
	out.CationRatio = ratio

	if ratio < lowRatioCutoff {
		lnNa := math.Log(mNa)
		tm = 1 / (1/tm + ((4.29*fgc-3.95)*lnNa+0.94*lnNa*lnNa)*1e-5)
	} else {
		a, d, g := 3.92, 1.42, 8.31
		if ratio < 6.0 {
			lnNa := math.Log(mNa)
			a *= 0.843 - 0.352*math.Sqrt(mNa)*lnNa
			d *= 1.279 - 4.03e-3*lnNa - 8.03e-3*lnNa*lnNa
			g *= 0.486 - 0.258*lnNa + 5.25e-3*lnNa*lnNa*lnNa
		}
		// This regime uses total Mg2+, not the free-Mg solution.
		lnMg := math.Log(mMg)
		end := 1 / (2 * (float64(len(s)) - 1))
		tm = 1 / (1/tm +
			(a-0.911*lnMg+fgc*(6.26+d*lnMg)+
				end*(-48.2+52.5*lnMg+g*lnMg*lnMg))*1e-5)
	}

	out.TmC = tm - 273.15
	return out
}

// normalizeUpper uppercases ASCII bases in place; defensive only, the
// validator has normally done this already.
func normalizeUpper(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			b := []byte(s)
			for j := 0; j < len(b); j++ {
				if b[j] >= 'a' && b[j] <= 'z' {
					b[j] -= 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
