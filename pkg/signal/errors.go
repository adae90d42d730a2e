package signal

import "fmt"

// ConfigError reports a parameter set that is physically inconsistent or
// impossible to synthesize. It is raised at generation time and meant to be
// surfaced verbatim so the caller can correct the parameter.
type ConfigError struct {
	Param  string
	Reason string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Param, e.Reason)
}

// ShapeMismatchError reports buffers that disagree on length or sample rate.
// It indicates a defect in the calling code, never a recoverable runtime
// condition, and must propagate to the top level unmodified.
type ShapeMismatchError struct {
	WantLen  int
	GotLen   int
	WantRate float64
	GotRate  float64
}

func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: want %d samples at %v Hz, got %d samples at %v Hz",
		e.WantLen, e.WantRate, e.GotLen, e.GotRate)
}
