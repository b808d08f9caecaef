package lem

import "fmt"

// ConfigError reports an invalid run parameter. Detected at initialization;
// fatal.
type ConfigError struct {
	Name  string
	Value float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid parameter: %s = %g", e.Name, e.Value)
}

// MismatchError reports disagreement between the primary grid and the
// auxiliary flexure grid. Detected at initialization; fatal.
type MismatchError struct {
	Nr1, Nc1, Nr2, Nc2 int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("grid mismatch: primary %dx%d, flexure %dx%d", e.Nr1, e.Nc1, e.Nr2, e.Nc2)
}

// InstabilityError reports a non-finite field value detected at the end of a
// phase. Fatal, never retried: the root cause is a parameter or timestep
// choice, not a transient fault.
type InstabilityError struct {
	Step  int
	Phase string
	Field string
	Cell  int
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("numerical instability: non-finite %s at cell %d (step %d, phase %s)", e.Field, e.Cell, e.Step, e.Phase)
}
