package meltapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"melt-core/melt"
	"melt-core/oligo"

	"github.com/eclarke/melt/internal/config"
	"github.com/eclarke/melt/internal/meltcli"
	"github.com/eclarke/melt/internal/version"
)

// newLogger builds the stderr logger: colored tint output on
// terminals, Debug level under --verbose, Error under --quiet.
func newLogger(stderr io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	color := false
	if f, ok := stderr.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:   level,
		NoColor: !color,
	}))
}

// applyProfile fills solution fields from p, skipping any that were set
// explicitly on the command line.
func applyProfile(cond *melt.Conditions, opts meltcli.Options, p Profile) {
	if p.DNAnM != nil && !opts.SetExplicitly("dna", "d") {
		cond.DNAnM = *p.DNAnM
	}
	if p.NamM != nil && !opts.SetExplicitly("na") {
		cond.NamM = *p.NamM
	}
	if p.MgmM != nil && !opts.SetExplicitly("mg") {
		cond.MgmM = *p.MgmM
	}
	if p.DNTPmM != nil && !opts.SetExplicitly("dntp") {
		cond.DNTPmM = *p.DNTPmM
	}
}

// Run is RunContext without cancellation, for tests and embedding.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext parses argv, computes the melting temperature of the one
// given sequence, and prints it to stdout with one decimal place.
// Exit codes: 0 ok, 2 usage or validation error, 3 write error.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := meltcli.NewFlagSet("melt")
	fs.SetOutput(io.Discard)

	defaults, err := config.Defaults()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if len(argv) == 0 {
		// Register flags so usage can report their defaults.
		_, _ = meltcli.ParseArgs(fs, []string{"-h"}, defaults)
		fs.SetOutput(outw)
		fs.Usage()
		return 0
	}

	opts, err := meltcli.ParseArgs(fs, argv, defaults)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "melt version %s\n", version.Version)
		return 0
	}

	log := newLogger(stderr, opts.Verbose, opts.Quiet)

	cond := opts.Cond
	if opts.Profile != "" {
		p, err := loadProfile(opts.Profile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		applyProfile(&cond, opts, p)
		log.Debug("profile applied", "path", opts.Profile)
	}

	seq, err := oligo.Validate(opts.Seq)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if !cond.Uncorrected && (cond.NamM < 0 || cond.MgmM < 0 || cond.DNTPmM < 0) {
		log.Warn("negative cation concentrations give undefined corrections",
			"na_mM", cond.NamM, "mg_mM", cond.MgmM, "dntp_mM", cond.DNTPmM)
	}
	if cond.DNAnM <= 0 {
		log.Warn("non-positive DNA concentration gives an undefined Tm", "dna_nM", cond.DNAnM)
	}

	log.Debug("solution",
		"dna_nM", cond.DNAnM, "na_mM", cond.NamM,
		"mg_mM", cond.MgmM, "dntp_mM", cond.DNTPmM,
		"uncorrected", cond.Uncorrected)

	res := melt.Details(seq, cond)
	log.Debug("nearest-neighbor sums",
		"dH_kcal", res.DHKcal, "dS_cal", res.DSCal,
		"cation_ratio", res.CationRatio)

	fmt.Fprintf(outw, "%.1f\n", res.TmC)
	if err := outw.Flush(); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
