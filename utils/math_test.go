package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldAlmostEqual, math.Pi)
	test.That(t, RadToDeg(math.Pi/2), test.ShouldAlmostEqual, 90)
	test.That(t, RadToDeg(DegToRad(33.3)), test.ShouldAlmostEqual, 33.3)
}

func TestWrapRad(t *testing.T) {
	for _, tc := range []struct {
		in, out float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{2.5 * math.Pi, math.Pi / 2},
		{-2.5 * math.Pi, -math.Pi / 2},
		{1.5 * math.Pi, -math.Pi / 2},
	} {
		test.That(t, WrapRad(tc.in), test.ShouldAlmostEqual, tc.out)
	}
	test.That(t, WrapRad(-math.Pi), test.ShouldAlmostEqual, -math.Pi)
	test.That(t, AngleDiffRad(0.1, 2*math.Pi-0.1), test.ShouldAlmostEqual, 0.2)
}

func TestClamp(t *testing.T) {
	test.That(t, Clamp(2, -1, 1), test.ShouldEqual, 1.)
	test.That(t, Clamp(-2, -1, 1), test.ShouldEqual, -1.)
	test.That(t, Clamp(0.5, -1, 1), test.ShouldEqual, 0.5)
	test.That(t, Float64AlmostEqual(1, 1+1e-9, 1e-6), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1, 1.1, 1e-6), test.ShouldBeFalse)
}
