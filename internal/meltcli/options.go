package meltcli

import (
	"flag"
	"fmt"

	"melt-core/melt"

	"github.com/eclarke/melt/internal/cliutil"
	"github.com/eclarke/melt/internal/version"
)

// Options is the fully parsed CLI state for one invocation.
type Options struct {
	Seq     string
	Cond    melt.Conditions
	Profile string

	Verbose bool
	Quiet   bool
	Version bool

	// Explicit records flags set on the command line (by flag name,
	// aliases included); profile values never override these.
	Explicit map[string]bool
}

// SetExplicitly reports whether any of the given flag names was set on
// the command line.
func (o Options) SetExplicitly(names ...string) bool {
	for _, n := range names {
		if o.Explicit[n] {
			return true
		}
	}
	return false
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – nucleotide melting temperature calculator\n\n", name)
		fmt.Fprintln(out, "Author:  Erik Clarke")
		fmt.Fprintln(out, "License: GPL-3.0")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s [options] SEQUENCE\n", name)
		fmt.Fprintf(out, "  %s -d 200 --na 50 --mg 3 --dntp 0.8 ATGCATGC\n", name)

		fmt.Fprintln(out, "\nSolution:")
		fmt.Fprintf(out, "  -d, --dna float     DNA concentration, nM [%s]\n", def("dna"))
		fmt.Fprintf(out, "      --na float      Na+ concentration, mM [%s]\n", def("na"))
		fmt.Fprintf(out, "      --mg float      Mg2+ concentration, mM [%s]\n", def("mg"))
		fmt.Fprintf(out, "      --dntp float    dNTP concentration, mM [%s]\n", def("dntp"))
		fmt.Fprintln(out, "      --profile file  YAML solution profile (dna/na/mg/dntp)")
		fmt.Fprintln(out, "      --uncorrected   Skip monovalent/divalent cation corrections")
		fmt.Fprintln(out, "      Defaults honor MELT_DNA_NM, MELT_NA_MM, MELT_MG_MM, MELT_DNTP_MM.")

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "      --verbose       Debug logging to stderr")
		fmt.Fprintln(out, "  -q, --quiet         Suppress warnings")
		fmt.Fprintln(out, "  -v, --version       Print version and exit")
		fmt.Fprintln(out, "  -h                  Show this help and exit")
	}
	return fs
}

// ParseArgs parses argv against fs. defaults seeds the solution flags
// (built-ins plus any environment overrides).
func ParseArgs(fs *flag.FlagSet, argv []string, defaults melt.Conditions) (Options, error) {
	var o Options
	var help bool

	fs.Float64Var(&o.Cond.DNAnM, "dna", defaults.DNAnM, "DNA concentration (nM)")
	fs.Float64Var(&o.Cond.DNAnM, "d", defaults.DNAnM, "alias of --dna")
	fs.Float64Var(&o.Cond.NamM, "na", defaults.NamM, "Na+ concentration (mM)")
	fs.Float64Var(&o.Cond.MgmM, "mg", defaults.MgmM, "Mg2+ concentration (mM)")
	fs.Float64Var(&o.Cond.DNTPmM, "dntp", defaults.DNTPmM, "dNTP concentration (mM)")
	fs.BoolVar(&o.Cond.Uncorrected, "uncorrected", false, "skip cation corrections [false]")
	fs.StringVar(&o.Profile, "profile", "", "YAML solution profile")

	fs.BoolVar(&o.Verbose, "verbose", false, "debug logging [false]")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	o.Explicit = cliutil.Explicit(fs)
	if o.Version {
		return o, nil
	}

	switch len(posArgs) {
	case 1:
		o.Seq = posArgs[0]
	case 0:
		return o, fmt.Errorf("a nucleotide sequence is required")
	default:
		return o, fmt.Errorf("expected one sequence, got %d", len(posArgs))
	}
	return o, nil
}
