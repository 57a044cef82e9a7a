package config

import "testing"

func TestDefaults_Builtin(t *testing.T) {
	c, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if c.DNAnM != 5000 || c.NamM != 10 || c.MgmM != 20 || c.DNTPmM != 10 {
		t.Fatalf("unexpected built-in defaults: %+v", c)
	}
}

func TestDefaults_EnvOverride(t *testing.T) {
	t.Setenv("MELT_NA_MM", "50")
	t.Setenv("MELT_DNTP_MM", "0.8")
	c, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if c.NamM != 50 || c.DNTPmM != 0.8 {
		t.Fatalf("env overrides not applied: %+v", c)
	}
	if c.DNAnM != 5000 || c.MgmM != 20 {
		t.Fatalf("untouched fields changed: %+v", c)
	}
}

func TestDefaults_BadEnv(t *testing.T) {
	t.Setenv("MELT_MG_MM", "three")
	if _, err := Defaults(); err == nil {
		t.Fatal("expected error for non-numeric MELT_MG_MM")
	}
}
