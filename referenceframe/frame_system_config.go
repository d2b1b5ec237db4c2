package referenceframe

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/posemath/config"
	"go.viam.com/posemath/logging"
)

// NewFrameSystemFromConfig builds a frame system from frame configs given in any order. A frame is added
// once its parent is in the system; configs whose parents never appear, or that form a cycle, are an error.
func NewFrameSystemFromConfig(name string, frames []config.FrameConfig, logger logging.Logger) (FrameSystem, error) {
	fs := NewEmptyFrameSystem(name, logger)

	remaining := make([]config.FrameConfig, len(frames))
	copy(remaining, frames)
	for len(remaining) > 0 {
		ready, blocked := lo.FilterReject(remaining, func(fc config.FrameConfig, _ int) bool {
			return fs.Frame(fc.Parent) != nil
		})
		if len(ready) == 0 {
			unresolved := lo.Map(blocked, func(fc config.FrameConfig, _ int) string {
				return fc.Name + " -> " + fc.Parent
			})
			sort.Strings(unresolved)
			return nil, errors.Errorf("cannot resolve parents for frames (missing parent or cycle): %s", strings.Join(unresolved, ", "))
		}
		for i := range ready {
			fc := &ready[i]
			pose, err := fc.Pose()
			if err != nil {
				return nil, errors.Wrapf(err, "frame %q", fc.Name)
			}
			if err := fs.AddFrame(NewStaticFrame(fc.Name, pose), fs.Frame(fc.Parent)); err != nil {
				return nil, err
			}
		}
		remaining = blocked
	}
	logger.Debugw("built frame system", "name", name, "frames", len(frames))
	return fs, nil
}
