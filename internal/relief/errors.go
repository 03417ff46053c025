package relief

import "errors"

// ErrDimensionMismatch reports that the mask and a supplied base-color image
// disagree on size. The render is abandoned; nothing is cropped or padded.
var ErrDimensionMismatch = errors.New("relief: mask and base image dimensions differ")

// ConfigError reports an out-of-range or malformed parameter. It is returned
// before any array processing begins, so a failed render never produces
// partial output.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "relief: config " + e.Field + ": " + e.Reason
}
