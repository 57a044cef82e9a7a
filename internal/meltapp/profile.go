package meltapp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is an optional YAML solution description, e.g.
//
//	dna: 200   # nM
//	na: 50     # mM
//	mg: 3      # mM
//	dntp: 0.8  # mM
//
// Nil fields were absent from the file and leave the defaults alone.
type Profile struct {
	DNAnM  *float64 `yaml:"dna"`
	NamM   *float64 `yaml:"na"`
	MgmM   *float64 `yaml:"mg"`
	DNTPmM *float64 `yaml:"dntp"`
}

func loadProfile(path string) (Profile, error) {
	var p Profile
	raw, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}
