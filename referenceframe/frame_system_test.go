package referenceframe

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/posemath/logging"
	"go.viam.com/posemath/spatialmath"
)

func pointShouldAlmostEqual(t *testing.T, actual, expected r3.Vector) {
	t.Helper()
	test.That(t, actual.X, test.ShouldAlmostEqual, expected.X)
	test.That(t, actual.Y, test.ShouldAlmostEqual, expected.Y)
	test.That(t, actual.Z, test.ShouldAlmostEqual, expected.Z)
}

// A simple Frame translation from the world frame to a frame right above it at (0, 3, 0)
// And then back to the world frame
// transforming a point at (1, 3, 0).
func TestSimpleFrameTranslation(t *testing.T) {
	fs := NewEmptyFrameSystem("test", logging.NewTestLogger(t))
	err := fs.AddFrame(FrameFromPoint("frame", r3.Vector{X: 0., Y: 3., Z: 0.}), fs.World())
	test.That(t, err, test.ShouldBeNil)

	pointWorld := r3.Vector{X: 1., Y: 3., Z: 0.}
	pointFrame := r3.Vector{X: 1., Y: 0., Z: 0.}

	transformPoint1, err := fs.TransformPoint(pointWorld, World, "frame")
	test.That(t, err, test.ShouldBeNil)
	pointShouldAlmostEqual(t, transformPoint1, pointFrame)

	transformPoint2, err := fs.TransformPoint(pointFrame, "frame", World)
	test.That(t, err, test.ShouldBeNil)
	pointShouldAlmostEqual(t, transformPoint2, pointWorld)
}

// A simple Frame translation from the world frame to a frame right above it at (0, 3, 0) rotated 180 around Z
// transforming a point at (1, 3, 0).
func TestSimpleFrameTranslationWithRotation(t *testing.T) {
	fs := NewEmptyFrameSystem("test", logging.NewTestLogger(t))
	pose := spatialmath.NewPose3DFromEuler(0., 3., 0., math.Pi, 0., 0.)
	test.That(t, fs.AddFrame(NewStaticFrame("frame", pose), fs.World()), test.ShouldBeNil)

	pointWorld := r3.Vector{X: 1., Y: 3., Z: 0.}
	pointFrame := r3.Vector{X: -1., Y: 0., Z: 0.}

	transformPoint1, err := fs.TransformPoint(pointWorld, World, "frame")
	test.That(t, err, test.ShouldBeNil)
	pointShouldAlmostEqual(t, transformPoint1, pointFrame)

	transformPoint2, err := fs.TransformPoint(pointFrame, "frame", World)
	test.That(t, err, test.ShouldBeNil)
	pointShouldAlmostEqual(t, transformPoint2, pointWorld)
}

// Transforms between two sibling frames go through their common parent.
//
//	world
//	  |
//	 base (100, 0, 0), yawed 90°
//	 /    \
//	cam   arm (0, 10, 0)
//	(0, 0, 50)
func TestFrameSystemTree(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	fs := NewEmptyFrameSystem("tree", logger)

	base := NewStaticFrame("base", spatialmath.NewPose3DFromEuler(100., 0., 0., math.Pi/2, 0., 0.))
	cam := FrameFromPoint("cam", r3.Vector{X: 0, Y: 0, Z: 50})
	arm := FrameFromPoint("arm", r3.Vector{X: 0, Y: 10, Z: 0})
	test.That(t, fs.AddFrame(base, fs.World()), test.ShouldBeNil)
	test.That(t, fs.AddFrame(cam, base), test.ShouldBeNil)
	test.That(t, fs.AddFrame(arm, base), test.ShouldBeNil)
	test.That(t, logs.FilterMessage("added frame").Len(), test.ShouldEqual, 3)

	test.That(t, fs.FrameNames(), test.ShouldResemble, []string{"arm", "base", "cam"})

	parent, err := fs.Parent(cam)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parent.Name(), test.ShouldEqual, "base")
	_, err = fs.Parent(fs.World())
	test.That(t, err, test.ShouldEqual, ErrNoParent)

	trace, err := fs.TracebackFrame(cam)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(trace), test.ShouldEqual, 3)
	test.That(t, trace[0].Name(), test.ShouldEqual, "cam")
	test.That(t, trace[1].Name(), test.ShouldEqual, "base")
	test.That(t, trace[2].Name(), test.ShouldEqual, World)

	armInWorld, err := fs.PoseInWorld("arm")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, armInWorld.X(), test.ShouldAlmostEqual, 90)
	test.That(t, armInWorld.Y(), test.ShouldAlmostEqual, 0)
	test.That(t, armInWorld.Z(), test.ShouldAlmostEqual, 0)

	// the cam origin seen from the arm is 10 back along the arm's y and 50 up
	camInArm, err := fs.Transform(NewZeroPoseInFrame("cam"), "arm")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, camInArm.FrameName(), test.ShouldEqual, "arm")
	test.That(t, camInArm.Pose().X(), test.ShouldAlmostEqual, 0)
	test.That(t, camInArm.Pose().Y(), test.ShouldAlmostEqual, -10)
	test.That(t, camInArm.Pose().Z(), test.ShouldAlmostEqual, 50)

	// going there and back is the identity
	back, err := fs.Transform(camInArm, "cam")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.AlmostEqual(NewZeroPoseInFrame("cam")), test.ShouldBeTrue)

	same := NewZeroPoseInFrame("cam")
	res, err := fs.Transform(same, "cam")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, res, test.ShouldEqual, same)

	poses, err := ComputePoses(fs)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(poses), test.ShouldEqual, 3)
	test.That(t, poses["cam"].Pose().X(), test.ShouldAlmostEqual, 100)
	test.That(t, poses["cam"].Pose().Z(), test.ShouldAlmostEqual, 50)

	fs.RemoveFrame(base)
	test.That(t, fs.FrameNames(), test.ShouldBeEmpty)
	test.That(t, fs.Frame("cam"), test.ShouldBeNil)
	test.That(t, logs.FilterMessage("removed frame").Len(), test.ShouldEqual, 3)
}

func TestFrameSystemErrors(t *testing.T) {
	fs := NewEmptyFrameSystem("test", logging.NewTestLogger(t))
	a := NewZeroStaticFrame("a")
	test.That(t, fs.AddFrame(a, fs.World()), test.ShouldBeNil)

	err := fs.AddFrame(NewZeroStaticFrame("a"), fs.World())
	test.That(t, err, test.ShouldBeError, NewFrameAlreadyExistsError("a"))

	err = fs.AddFrame(NewZeroStaticFrame("b"), NewZeroStaticFrame("nope"))
	test.That(t, err, test.ShouldBeError, NewParentFrameMissingError("b", "nope"))

	err = fs.AddFrame(NewZeroStaticFrame("b"), nil)
	test.That(t, err, test.ShouldNotBeNil)

	err = fs.AddFrame(NewZeroStaticFrame(""), fs.World())
	test.That(t, err, test.ShouldBeError, NewFrameNameRequiredError())

	err = fs.AddFrame(NewZeroStaticFrame(World), fs.World())
	test.That(t, err, test.ShouldBeError, NewFrameAlreadyExistsError(World))

	_, err = fs.PoseInWorld("b")
	test.That(t, err, test.ShouldBeError, NewFrameMissingError("b"))

	_, err = fs.TransformPoint(r3.Vector{}, "b", World)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "source frame")

	_, err = fs.Transform(NewZeroPoseInFrame("a"), "b")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "destination frame")

	_, err = fs.TracebackFrame(NewZeroStaticFrame("b"))
	test.That(t, err, test.ShouldNotBeNil)

	// removing a frame that is not there is a no-op
	fs.RemoveFrame(NewZeroStaticFrame("b"))
	test.That(t, fs.FrameNames(), test.ShouldResemble, []string{"a"})
}

func TestMergeFrameSystem(t *testing.T) {
	logger := logging.NewTestLogger(t)
	fs := NewEmptyFrameSystem("main", logger)
	mount := FrameFromPoint("mount", r3.Vector{X: 1, Y: 0, Z: 0})
	test.That(t, fs.AddFrame(mount, fs.World()), test.ShouldBeNil)

	other := NewEmptyFrameSystem("rover", logger)
	chassis := FrameFromPoint("chassis", r3.Vector{X: 0, Y: 2, Z: 0})
	test.That(t, other.AddFrame(chassis, other.World()), test.ShouldBeNil)
	test.That(t, other.AddFrame(FrameFromPoint("lidar", r3.Vector{X: 0, Y: 0, Z: 3}), chassis), test.ShouldBeNil)

	test.That(t, fs.MergeFrameSystem(other, mount), test.ShouldBeNil)
	test.That(t, fs.FrameNames(), test.ShouldResemble, []string{"chassis", "lidar", "mount"})

	parent, err := fs.Parent(fs.Frame("chassis"))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, parent.Name(), test.ShouldEqual, "mount")

	lidar, err := fs.PoseInWorld("lidar")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, lidar.Translation(), test.ShouldResemble, spatialmath.NewVec3(1., 2., 3.))

	err = fs.MergeFrameSystem(other, NewZeroStaticFrame("missing"))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `cannot merge into "main"`)
}

func TestStaticFrame(t *testing.T) {
	a := NewStaticFrame("a", spatialmath.NewPose3DFromEuler(1., 2., 3., 0.1, 0.2, 0.3))
	b := NewStaticFrame("a", spatialmath.NewPose3DFromEuler(1., 2., 3., 0.1, 0.2, 0.3))
	test.That(t, a.AlmostEquals(b), test.ShouldBeTrue)
	test.That(t, a.AlmostEquals(NewZeroStaticFrame("a")), test.ShouldBeFalse)
	test.That(t, a.AlmostEquals(NewStaticFrame("b", a.Transform())), test.ShouldBeFalse)
}
