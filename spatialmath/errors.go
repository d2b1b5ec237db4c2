package spatialmath

import "github.com/pkg/errors"

// ErrInvalidGeometry is returned when axis inputs are too degenerate to build a rotation from, such as a
// zero-length axis or an approximate axis parallel to the primary one.
var ErrInvalidGeometry = errors.New("invalid geometry")

func newDegenerateAxisError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidGeometry, format, args...)
}
