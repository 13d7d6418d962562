package unitcell

import (
	"errors"
	"fmt"
)

// ErrDegenerate indicates an angle query on a vector of (near) zero length.
var ErrDegenerate = errors.New("unitcell: degenerate vector")

func cellErrorf(tag string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", tag, fmt.Sprintf(format, args...), err)
}
