package referenceframe

import (
	"sort"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/posemath/logging"
	"go.viam.com/posemath/spatialmath"
)

// FrameSystem represents a tree of frames connected to each other, allowing for transformations between any two frames.
type FrameSystem interface {
	// Name returns the name of this FrameSystem
	Name() string

	// World returns the frame corresponding to the root of the FrameSystem, from which other frames are defined with respect to
	World() Frame

	// FrameNames returns the sorted names of all of the frames that exist in the FrameSystem, not including the world
	FrameNames() []string

	// Frame returns the Frame in the FrameSystem corresponding to name, or nil if there is none
	Frame(name string) Frame

	// AddFrame inserts a given Frame into the FrameSystem as a child of the parent Frame
	AddFrame(frame, parent Frame) error

	// RemoveFrame removes the given Frame and all of its descendents from the FrameSystem
	RemoveFrame(frame Frame)

	// TracebackFrame traces the parentage of the given frame up to the world, and returns the full list of frames in between.
	// The list will include both the query frame and the world referenceframe
	TracebackFrame(frame Frame) ([]Frame, error)

	// Parent returns the parent Frame for the given Frame in the FrameSystem
	Parent(frame Frame) (Frame, error)

	// PoseInWorld returns the pose of the named frame's origin expressed in the world frame
	PoseInWorld(name string) (spatialmath.Pose, error)

	// Transform re-expresses a pose observed in one frame in the dst frame
	Transform(pose *PoseInFrame, dst string) (*PoseInFrame, error)

	// TransformPoint re-expresses a point observed in the src frame in the dst frame
	TransformPoint(point r3.Vector, src, dst string) (r3.Vector, error)

	// MergeFrameSystem combines two frame systems together, placing the world of systemToMerge at the attachTo frame in the frame system
	MergeFrameSystem(systemToMerge FrameSystem, attachTo Frame) error
}

// simpleFrameSystem implements FrameSystem. It is a simple tree graph keyed by frame name.
// It does no locking; callers that share one across goroutines must serialize mutations.
type simpleFrameSystem struct {
	name    string
	world   Frame // separate from the map of frames so it can be detached easily
	frames  map[string]Frame
	parents map[string]string
	logger  logging.Logger
}

// NewEmptyFrameSystem creates a frame system containing only the world frame.
func NewEmptyFrameSystem(name string, logger logging.Logger) FrameSystem {
	return &simpleFrameSystem{
		name:    name,
		world:   NewZeroStaticFrame(World),
		frames:  map[string]Frame{},
		parents: map[string]string{},
		logger:  logger,
	}
}

// Name returns the name of the simpleFrameSystem.
func (sfs *simpleFrameSystem) Name() string {
	return sfs.name
}

// World returns the base world referenceframe.
func (sfs *simpleFrameSystem) World() Frame {
	return sfs.world
}

// frameExists is a helper function to see if a frame with a given name already exists in the system.
func (sfs *simpleFrameSystem) frameExists(name string) bool {
	if name == World {
		return true
	}
	_, ok := sfs.frames[name]
	return ok
}

// Frame returns the frame given the name of the referenceframe. Returns nil if the frame is not found.
func (sfs *simpleFrameSystem) Frame(name string) Frame {
	if name == World {
		return sfs.world
	}
	return sfs.frames[name]
}

// FrameNames returns the list of frame names registered in the frame system.
func (sfs *simpleFrameSystem) FrameNames() []string {
	names := lo.Keys(sfs.frames)
	sort.Strings(names)
	return names
}

// Parent returns the parent frame of the input referenceframe. ErrNoParent if input is World.
func (sfs *simpleFrameSystem) Parent(frame Frame) (Frame, error) {
	if !sfs.frameExists(frame.Name()) {
		return nil, NewFrameMissingError(frame.Name())
	}
	if frame.Name() == World {
		return nil, ErrNoParent
	}
	return sfs.Frame(sfs.parents[frame.Name()]), nil
}

// AddFrame sets an already defined Frame into the system.
func (sfs *simpleFrameSystem) AddFrame(frame, parent Frame) error {
	if frame == nil || frame.Name() == "" {
		return NewFrameNameRequiredError()
	}
	if parent == nil {
		return NewParentFrameMissingError(frame.Name(), "")
	}
	if !sfs.frameExists(parent.Name()) {
		return NewParentFrameMissingError(frame.Name(), parent.Name())
	}
	if sfs.frameExists(frame.Name()) {
		return NewFrameAlreadyExistsError(frame.Name())
	}
	sfs.frames[frame.Name()] = frame
	sfs.parents[frame.Name()] = parent.Name()
	sfs.logger.Debugw("added frame", "system", sfs.name, "frame", frame.Name(), "parent", parent.Name())
	return nil
}

// RemoveFrame will delete the given frame and all descendents from the frame system if it exists.
func (sfs *simpleFrameSystem) RemoveFrame(frame Frame) {
	name := frame.Name()
	if _, ok := sfs.frames[name]; !ok {
		return
	}
	delete(sfs.frames, name)
	delete(sfs.parents, name)
	sfs.logger.Debugw("removed frame", "system", sfs.name, "frame", name)

	// Remove all descendents
	for child, parent := range sfs.parents {
		if parent == name {
			sfs.RemoveFrame(sfs.frames[child])
		}
	}
}

// TracebackFrame traces the parentage of the given frame up to the world, and returns the full list of frames in between.
// The list will include both the query frame and the world referenceframe.
func (sfs *simpleFrameSystem) TracebackFrame(query Frame) ([]Frame, error) {
	if !sfs.frameExists(query.Name()) {
		return nil, NewFrameMissingError(query.Name())
	}
	if query.Name() == World {
		return []Frame{sfs.world}, nil
	}
	parents, err := sfs.TracebackFrame(sfs.Frame(sfs.parents[query.Name()]))
	if err != nil {
		return nil, err
	}
	return append([]Frame{query}, parents...), nil
}

// PoseInWorld composes the static transforms from the named frame up to the world.
func (sfs *simpleFrameSystem) PoseInWorld(name string) (spatialmath.Pose, error) {
	if !sfs.frameExists(name) {
		return spatialmath.Pose{}, NewFrameMissingError(name)
	}
	pose := spatialmath.NewPose3D[float64]()
	for name != World {
		// Transform() gives FROM frame TO parent. Add new transforms to the left.
		pose = sfs.frames[name].Transform().Compose(pose)
		name = sfs.parents[name]
	}
	return pose, nil
}

// Transform takes in a pose in some frame and a destination frame, and returns the pose as seen from the destination.
func (sfs *simpleFrameSystem) Transform(pose *PoseInFrame, dst string) (*PoseInFrame, error) {
	src := pose.FrameName()
	if src == dst {
		return pose, nil
	}
	tf, err := sfs.transformFromParent(src, dst)
	if err != nil {
		return nil, err
	}
	return pose.Transform(tf), nil
}

// TransformPoint returns where a point given in src sits when seen from dst.
func (sfs *simpleFrameSystem) TransformPoint(point r3.Vector, src, dst string) (r3.Vector, error) {
	if src == dst {
		return point, nil
	}
	tf, err := sfs.transformFromParent(src, dst)
	if err != nil {
		return r3.Vector{}, err
	}
	return tf.Pose().ConvertR3(point), nil
}

// transformFromParent returns the pose of src's origin expressed in dst.
func (sfs *simpleFrameSystem) transformFromParent(src, dst string) (*PoseInFrame, error) {
	if !sfs.frameExists(src) {
		return nil, errors.Wrap(NewFrameMissingError(src), "source frame")
	}
	if !sfs.frameExists(dst) {
		return nil, errors.Wrap(NewFrameMissingError(dst), "destination frame")
	}
	srcToWorld, err := sfs.PoseInWorld(src)
	if err != nil {
		return nil, err
	}
	dstToWorld, err := sfs.PoseInWorld(dst)
	if err != nil {
		return nil, err
	}
	// transform from source to world, world to target
	return NewPoseInFrame(dst, spatialmath.Difference(srcToWorld, dstToWorld)), nil
}

// MergeFrameSystem will combine two frame systems together, placing the world of systemToMerge at the "attachTo" frame in sfs.
// The frame where systemToMerge will be attached to must already exist within sfs, so should be added before Merge happens.
func (sfs *simpleFrameSystem) MergeFrameSystem(systemToMerge FrameSystem, attachTo Frame) error {
	attachFrame := sfs.Frame(attachTo.Name())
	if attachFrame == nil {
		return errors.Wrapf(NewFrameMissingError(attachTo.Name()), "cannot merge into %q", sfs.Name())
	}

	// make a map where the parent frame name is the key and the children frames are the value
	childrenMap := map[string][]Frame{}
	for _, name := range systemToMerge.FrameNames() {
		child := systemToMerge.Frame(name)
		parent, err := systemToMerge.Parent(child)
		if err != nil {
			return err
		}
		childrenMap[parent.Name()] = append(childrenMap[parent.Name()], child)
	}
	// add every frame from systemToMerge to the base frame system.
	queue := []Frame{systemToMerge.World()}
	for len(queue) != 0 {
		parent := queue[0]
		queue = queue[1:]
		for _, c := range childrenMap[parent.Name()] {
			queue = append(queue, c)
			target := parent
			if parent.Name() == World {
				target = attachFrame
			}
			if err := sfs.AddFrame(c, target); err != nil {
				return err
			}
		}
	}
	return nil
}

// FrameSystemPoses is a mapping of frame names to their pose in the world.
type FrameSystemPoses map[string]*PoseInFrame

// ComputePoses computes the poses for each frame in a framesystem in frame of World.
func ComputePoses(fs FrameSystem) (FrameSystemPoses, error) {
	computedPoses := make(FrameSystemPoses)
	for _, frameName := range fs.FrameNames() {
		pif, err := fs.Transform(NewZeroPoseInFrame(frameName), World)
		if err != nil {
			return nil, err
		}
		computedPoses[frameName] = pif
	}
	return computedPoses, nil
}
