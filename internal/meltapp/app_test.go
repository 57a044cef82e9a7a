package meltapp

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"melt-core/melt"

	"github.com/eclarke/melt/internal/meltcli"
)

func writeProfile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solution.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, "dna: 200\nna: 50\nmg: 3\ndntp: 0.8\n")
	p, err := loadProfile(path)
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}
	if p.DNAnM == nil || *p.DNAnM != 200 || p.DNTPmM == nil || *p.DNTPmM != 0.8 {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

func TestLoadProfile_PartialAndErrors(t *testing.T) {
	p, err := loadProfile(writeProfile(t, "na: 50\n"))
	if err != nil {
		t.Fatalf("loadProfile: %v", err)
	}
	if p.NamM == nil || *p.NamM != 50 || p.DNAnM != nil || p.MgmM != nil {
		t.Fatalf("unexpected partial profile: %+v", p)
	}
	if _, err := loadProfile(writeProfile(t, "na: [nonsense\n")); err == nil {
		t.Fatal("expected YAML error")
	}
	if _, err := loadProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApplyProfile_FlagsWin(t *testing.T) {
	fs := meltcli.NewFlagSet("melt")
	fs.SetOutput(io.Discard)
	opts, err := meltcli.ParseArgs(fs, []string{"--na", "100", "ATGC"}, melt.DefaultConditions())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	na, mg := 50.0, 3.0
	cond := opts.Cond
	applyProfile(&cond, opts, Profile{NamM: &na, MgmM: &mg})
	if cond.NamM != 100 {
		t.Fatalf("explicit --na overridden by profile: %v", cond.NamM)
	}
	if cond.MgmM != 3 {
		t.Fatalf("profile mg not applied: %v", cond.MgmM)
	}
}

func TestRun_ProfileFlow(t *testing.T) {
	path := writeProfile(t, "dna: 200\nna: 50\nmg: 3\ndntp: 0.8\n")
	var out, errB bytes.Buffer
	code := Run([]string{"--profile", path, "ATGCATGC"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errB.String())
	}
	if got := strings.TrimSpace(out.String()); got != "26.4" {
		t.Fatalf("printed %q, want 26.4", got)
	}
}

func TestRun_InvalidSequence(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run([]string{"ABCDEFG"}, &out, &errB)
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errB.String(), "invalid nucleotide sequence") {
		t.Fatalf("stderr: %q", errB.String())
	}
	if out.Len() != 0 {
		t.Fatalf("stdout should be empty, got %q", out.String())
	}
}

func TestRun_Version(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run([]string{"--version"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, errB.String())
	}
	if !strings.HasPrefix(out.String(), "melt version ") {
		t.Fatalf("stdout: %q", out.String())
	}
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run(nil, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("stdout: %q", out.String())
	}
}
