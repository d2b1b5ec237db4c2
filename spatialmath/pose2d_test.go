package spatialmath

import (
	"encoding/json"
	"math"
	"testing"

	"go.viam.com/test"
)

func TestPose2D(t *testing.T) {
	p := NewPose2D(1.5, -2, 2.5*math.Pi)
	test.That(t, p.X(), test.ShouldEqual, 1.5)
	test.That(t, p.Y(), test.ShouldEqual, -2.)
	// stored verbatim, never wrapped
	test.That(t, p.Heading(), test.ShouldEqual, 2.5*math.Pi)

	n := p.Normalized()
	test.That(t, n.Heading(), test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, n.X(), test.ShouldEqual, p.X())
	test.That(t, p.Heading(), test.ShouldEqual, 2.5*math.Pi)
	test.That(t, NewPose2D(0, 0, -math.Pi/2).Normalized().Heading(), test.ShouldAlmostEqual, -math.Pi/2)

	test.That(t, NewPose2D(1, 2, 0.5).String(), test.ShouldEqual, "   1.000    2.000    0.500")
}

func TestPose2DLiftsAcrossPrecisions(t *testing.T) {
	p2 := NewPose2D(3, 4, math.Pi)
	p64 := NewPose3DFromPose2D[float64](p2)
	p32 := NewPose3DFromPose2D[float32](p2)
	for i := range p64.rotation {
		test.That(t, float64(p32.rotation[i]), test.ShouldAlmostEqual, p64.rotation[i], 1e-6)
	}
	test.That(t, p32.X(), test.ShouldEqual, float32(3))
	yaw, _, _ := p64.EulerAngles()
	test.That(t, math.Abs(yaw), test.ShouldAlmostEqual, math.Pi)
}

func TestPose2DJSON(t *testing.T) {
	p2 := NewPose2D(1, 2, 3)
	data, err := json.Marshal(p2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, `{"x":1,"y":2,"heading":3}`)
	var p2rt Pose2D
	test.That(t, json.Unmarshal(data, &p2rt), test.ShouldBeNil)
	test.That(t, p2rt, test.ShouldResemble, p2)

	test.That(t, json.Unmarshal([]byte(`{"x": "one"}`), &p2rt), test.ShouldNotBeNil)
}
