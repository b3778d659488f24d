// Package utils bundles ambient, non-algorithmic concerns for tmflow:
// configuration. Modeled closely on the teacher's
// internal/vybium-starks-vm/utils/config.go.
package utils

import "fmt"

// Config bundles the tunables of spec §6's option table: order,
// step_size, step_epsilon, max_tries, widen_scale, extra_refinements.
type Config struct {
	// Order is the total-degree truncation bound for all polynomial
	// operations.
	Order int

	// StepSize is the nominal sub-interval length.
	StepSize float64

	// StepEpsilon is the threshold below which a shorter final
	// sub-interval is dropped.
	StepEpsilon float64

	// MaxTries is the number of widening attempts in the contractive
	// search.
	MaxTries int

	// WidenScale is the multiplier applied to a candidate remainder on
	// failed contractiveness.
	WidenScale float64

	// ExtraRefinements is the number of post-contractiveness refinement
	// iterations.
	ExtraRefinements int

	// DiagnosticsEnabled runs a numeric Jacobian cross-check per step.
	DiagnosticsEnabled bool
}

// DefaultConfig returns the configuration used by the worked example in
// spec §8 (x'=1+y, y'=-x^2).
func DefaultConfig() *Config {
	return &Config{
		Order:              3,
		StepSize:           0.02,
		StepEpsilon:        0.0001,
		MaxTries:           10,
		WidenScale:         2.0,
		ExtraRefinements:   0,
		DiagnosticsEnabled: false,
	}
}

// Validate checks the configuration's preconditions, per spec §4.6/§4.7.
func (c *Config) Validate() error {
	if c.Order < 0 {
		return fmt.Errorf("order must be >= 0, got %d", c.Order)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("step_size must be > 0, got %g", c.StepSize)
	}
	if c.StepEpsilon < 0 {
		return fmt.Errorf("step_epsilon must be >= 0, got %g", c.StepEpsilon)
	}
	if c.MaxTries < 1 {
		return fmt.Errorf("max_tries must be >= 1, got %d", c.MaxTries)
	}
	if c.WidenScale <= 1 {
		return fmt.Errorf("widen_scale must be > 1, got %g", c.WidenScale)
	}
	if c.ExtraRefinements < 0 {
		return fmt.Errorf("extra_refinements must be >= 0, got %d", c.ExtraRefinements)
	}
	return nil
}

// WithOrder sets the truncation order.
func (c *Config) WithOrder(order int) *Config {
	c.Order = order
	return c
}

// WithStepSize sets the nominal sub-interval length.
func (c *Config) WithStepSize(step float64) *Config {
	c.StepSize = step
	return c
}

// WithStepEpsilon sets the final-step drop threshold.
func (c *Config) WithStepEpsilon(eps float64) *Config {
	c.StepEpsilon = eps
	return c
}

// WithMaxTries sets the number of widening attempts.
func (c *Config) WithMaxTries(tries int) *Config {
	c.MaxTries = tries
	return c
}

// WithWidenScale sets the widening multiplier.
func (c *Config) WithWidenScale(scale float64) *Config {
	c.WidenScale = scale
	return c
}

// WithExtraRefinements sets the post-contractiveness refinement count.
func (c *Config) WithExtraRefinements(n int) *Config {
	c.ExtraRefinements = n
	return c
}

// WithDiagnostics toggles the numeric Jacobian cross-check.
func (c *Config) WithDiagnostics(enabled bool) *Config {
	c.DiagnosticsEnabled = enabled
	return c
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
