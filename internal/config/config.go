// internal/config/config.go
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"melt-core/melt"
)

// envOverrides are optional environment knobs for the default solution.
// Pointer fields stay nil when the variable is unset.
type envOverrides struct {
	DNAnM  *float64 `env:"MELT_DNA_NM"`
	NamM   *float64 `env:"MELT_NA_MM"`
	MgmM   *float64 `env:"MELT_MG_MM"`
	DNTPmM *float64 `env:"MELT_DNTP_MM"`
}

// Defaults returns the solution conditions to seed flag defaults with:
// the built-in standard solution, overridden by any MELT_* environment
// variables.
func Defaults() (melt.Conditions, error) {
	c := melt.DefaultConditions()
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	if o.DNAnM != nil {
		c.DNAnM = *o.DNAnM
	}
	if o.NamM != nil {
		c.NamM = *o.NamM
	}
	if o.MgmM != nil {
		c.MgmM = *o.MgmM
	}
	if o.DNTPmM != nil {
		c.DNTPmM = *o.DNTPmM
	}
	return c, nil
}
