package spatialmath

import (
	"encoding/json"
	"fmt"

	"go.viam.com/posemath/utils"
)

// Pose2D is a planar pose: a position on the ground plane and a heading in radians,
// counter-clockwise about +Z. The heading is stored as given and never wrapped.
type Pose2D struct {
	x       float64
	y       float64
	heading float64
}

// NewPose2D returns a planar pose. No validation is performed; any heading is accepted.
func NewPose2D(x, y, heading float64) Pose2D {
	return Pose2D{x: x, y: y, heading: heading}
}

// X returns the x coordinate.
func (p Pose2D) X() float64 {
	return p.x
}

// Y returns the y coordinate.
func (p Pose2D) Y() float64 {
	return p.y
}

// Heading returns the heading in radians exactly as it was set.
func (p Pose2D) Heading() float64 {
	return p.heading
}

// Normalized returns a copy of the pose with its heading wrapped into [-π, π).
func (p Pose2D) Normalized() Pose2D {
	return Pose2D{x: p.x, y: p.y, heading: utils.WrapRad(p.heading)}
}

// String formats the pose as fixed point x, y and heading.
func (p Pose2D) String() string {
	return fmt.Sprintf("%8.3f %8.3f %8.3f", p.x, p.y, p.heading)
}

type pose2DJSON struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

// MarshalJSON encodes the pose as {"x", "y", "heading"}.
func (p Pose2D) MarshalJSON() ([]byte, error) {
	return json.Marshal(pose2DJSON{X: p.x, Y: p.y, Heading: p.heading})
}

// UnmarshalJSON decodes a pose written by MarshalJSON.
func (p *Pose2D) UnmarshalJSON(data []byte) error {
	var raw pose2DJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = NewPose2D(raw.X, raw.Y, raw.Heading)
	return nil
}
