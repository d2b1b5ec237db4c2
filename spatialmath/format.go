package spatialmath

import (
	"fmt"
	"io"
	"strings"
)

// WriteTo writes the pose as a 3x4 block, one row of the rotation followed by the matching translation
// component per line. Rotation entries are %6.3f and translation entries %8.3f. The output is for
// people to read; nothing parses it back.
func (p Pose3D[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for r := 0; r < 3; r++ {
		n, err := fmt.Fprintf(w, "%6.3f %6.3f %6.3f %8.3f\n",
			p.rotation.At(r, 0), p.rotation.At(r, 1), p.rotation.At(r, 2), p.translation[r],
		)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the same text WriteTo writes.
func (p Pose3D[T]) String() string {
	var sb strings.Builder
	//nolint:errcheck
	p.WriteTo(&sb)
	return sb.String()
}
