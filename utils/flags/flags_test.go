package flags

import (
	"testing"

	"go.viam.com/test"
)

type axis uint8

const (
	axisX axis = 1 << iota
	axisY
	axisZ
)

var axisNames = []Named[axis]{{axisX, "x"}, {axisY, "y"}, {axisZ, "z"}}

func TestFlags(t *testing.T) {
	var f Flags[axis]
	test.That(t, f.None(), test.ShouldBeTrue)
	test.That(t, f.Describe(axisNames), test.ShouldEqual, "none")

	f.Set(axisX, axisZ)
	test.That(t, f.Test(axisX), test.ShouldBeTrue)
	test.That(t, f.Test(axisY), test.ShouldBeFalse)
	test.That(t, f.Test(axisX|axisZ), test.ShouldBeTrue)
	test.That(t, f.Test(axisX|axisY), test.ShouldBeFalse)
	test.That(t, f.Any(axisX|axisY), test.ShouldBeTrue)
	test.That(t, f.Count(), test.ShouldEqual, 2)
	test.That(t, f.Names(axisNames), test.ShouldResemble, []string{"x", "z"})
	test.That(t, f.Describe(axisNames), test.ShouldEqual, "x|z")

	f.Clear(axisX)
	test.That(t, f.Test(axisX), test.ShouldBeFalse)
	test.That(t, f.Value(), test.ShouldEqual, axisZ)

	f.Toggle(axisY, axisZ)
	test.That(t, f.Value(), test.ShouldEqual, axisY)

	f.Set(1 << 7)
	test.That(t, f.Describe(axisNames), test.ShouldEqual, "y|0x80")

	f.Reset()
	test.That(t, f.None(), test.ShouldBeTrue)
	test.That(t, New(axisX, axisY), test.ShouldResemble, New(axisX|axisY))
}
