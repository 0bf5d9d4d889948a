package scene

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks configuration errors detected before any ray is traced:
// degenerate camera, zero-size image, malformed shapes or materials, unknown variants.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigErrorf returns an error wrapping ErrInvalidConfig.
func ConfigErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
