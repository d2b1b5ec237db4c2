package config

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/posemath/spatialmath"
)

func TestOrientationRotation(t *testing.T) {
	t.Run("empty is identity", func(t *testing.T) {
		o := Orientation{}
		rot, err := o.Rotation()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, rot, test.ShouldResemble, spatialmath.Ident3[float64]())
	})

	t.Run("orientation vector degrees", func(t *testing.T) {
		o := Orientation{Type: OrientationVectorDegreesType, Z: 1, TH: 90}
		rot, err := o.Rotation()
		test.That(t, err, test.ShouldBeNil)
		x := rot.Col(0)
		test.That(t, x.X(), test.ShouldAlmostEqual, 0)
		test.That(t, x.Y(), test.ShouldAlmostEqual, 1)
		test.That(t, x.Z(), test.ShouldAlmostEqual, 0)
	})

	t.Run("euler degrees", func(t *testing.T) {
		o := Orientation{Type: EulerAnglesDegreesType, Yaw: 90}
		rot, err := o.Rotation()
		test.That(t, err, test.ShouldBeNil)
		expected := spatialmath.NewPose3DFromEuler(0., 0., 0., math.Pi/2, 0., 0.).Rotation()
		for i := range rot {
			test.That(t, rot[i], test.ShouldAlmostEqual, expected[i])
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		o := Orientation{Type: "oiler_angles"}
		_, err := o.Rotation()
		test.That(t, err, test.ShouldBeError, `unknown orientation type "oiler_angles"`)
		test.That(t, o.Validate("frames.0.orientation"), test.ShouldNotBeNil)
	})
}

func TestFrameConfigPose(t *testing.T) {
	fc := FrameConfig{
		Name:        "cam",
		Parent:      "world",
		Translation: Translation{1, 2, 3},
		Orientation: Orientation{Type: EulerAnglesDegreesType, Yaw: 180},
	}
	test.That(t, fc.Validate("frames.0"), test.ShouldBeNil)

	pose, err := fc.Pose()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.X(), test.ShouldEqual, 1.)
	test.That(t, pose.Y(), test.ShouldEqual, 2.)
	test.That(t, pose.Z(), test.ShouldEqual, 3.)

	pt := pose.Convert(spatialmath.NewVec3(1., 0., 0.))
	test.That(t, pt.X(), test.ShouldAlmostEqual, 0)
	test.That(t, pt.Y(), test.ShouldAlmostEqual, 2)
	test.That(t, pt.Z(), test.ShouldAlmostEqual, 3)
}

func TestFrameConfigValidate(t *testing.T) {
	fc := FrameConfig{}
	err := fc.Validate("frames.3")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `frames.3`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"name" is required`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `"parent" is required`)

	fc = FrameConfig{Name: "a", Parent: "a"}
	err = fc.Validate("frames.0")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "own parent")

	fcs := FramesConfig{Frames: []FrameConfig{
		{Name: "a", Parent: "world"},
		{Name: "a", Parent: "world"},
	}}
	err = fcs.Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, `frames.1`)
	test.That(t, err.Error(), test.ShouldContainSubstring, `duplicate frame name "a"`)

	t.Run("euler fields without euler type", func(t *testing.T) {
		for _, typ := range []string{"", OrientationVectorDegreesType} {
			fc := FrameConfig{Name: "a", Parent: "world", Orientation: Orientation{Type: typ, Yaw: 90}}
			err := fc.Validate("frames.0")
			test.That(t, err, test.ShouldNotBeNil)
			test.That(t, err.Error(), test.ShouldContainSubstring, `error validating "frames.0.orientation"`)
			test.That(t, err.Error(), test.ShouldContainSubstring, "yaw, pitch and roll")
			_, err = fc.Pose()
			test.That(t, err, test.ShouldNotBeNil)
		}
	})

	t.Run("orientation vector fields with euler type", func(t *testing.T) {
		fc := FrameConfig{
			Name:        "a",
			Parent:      "world",
			Orientation: Orientation{Type: EulerAnglesDegreesType, Yaw: 90, TH: 45},
		}
		err := fc.Validate("frames.0")
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "x, y, z and th")
	})

	t.Run("matching fields pass", func(t *testing.T) {
		fc := FrameConfig{Name: "a", Parent: "world", Orientation: Orientation{Type: EulerAnglesDegreesType, Pitch: 30}}
		test.That(t, fc.Validate("frames.0"), test.ShouldBeNil)
		fc.Orientation = Orientation{Z: 1, TH: 30}
		test.That(t, fc.Validate("frames.0"), test.ShouldBeNil)
	})
}
