// Package config describes poses and frames as they are written in configuration files.
package config

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/posemath/spatialmath"
	"go.viam.com/posemath/utils"
)

// Orientation types accepted in an Orientation's Type field.
const (
	OrientationVectorDegreesType = "ov_degrees"
	EulerAnglesDegreesType       = "euler_angles_degrees"
)

// Translation is the translation between two objects in the grid system. It is always in millimeters.
type Translation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Orientation is the orientation between two objects. By default it is an orientation vector, with theta
// being in degrees and being the rotation around the orientation vector. With Type set to
// EulerAnglesDegreesType, Yaw, Pitch and Roll are used instead, in degrees, applied as
// Rz(yaw)·Ry(pitch)·Rx(roll).
type Orientation struct {
	Type string `json:"type,omitempty"`

	X  float64 `json:"x,omitempty"`
	Y  float64 `json:"y,omitempty"`
	Z  float64 `json:"z,omitempty"`
	TH float64 `json:"th,omitempty"`

	Yaw   float64 `json:"yaw,omitempty"`
	Pitch float64 `json:"pitch,omitempty"`
	Roll  float64 `json:"roll,omitempty"`
}

// Validate ensures the orientation type is known and that only the fields of that type are set.
func (o *Orientation) Validate(path string) error {
	if err := o.checkFields(); err != nil {
		return NewConfigValidationError(path, err)
	}
	return nil
}

func (o *Orientation) checkFields() error {
	switch o.Type {
	case "", OrientationVectorDegreesType:
		if o.Yaw != 0 || o.Pitch != 0 || o.Roll != 0 {
			return errors.Errorf("yaw, pitch and roll need type %q", EulerAnglesDegreesType)
		}
	case EulerAnglesDegreesType:
		if o.X != 0 || o.Y != 0 || o.Z != 0 || o.TH != 0 {
			return errors.Errorf("x, y, z and th are not used with type %q", EulerAnglesDegreesType)
		}
	default:
		return errors.Errorf("unknown orientation type %q", o.Type)
	}
	return nil
}

// Rotation returns the rotation matrix the orientation describes. An orientation vector of all zeros
// is no rotation.
func (o *Orientation) Rotation() (spatialmath.Mat3[float64], error) {
	if err := o.checkFields(); err != nil {
		return spatialmath.Mat3[float64]{}, err
	}
	if o.Type == EulerAnglesDegreesType {
		p := spatialmath.NewPose3DFromEuler(0, 0, 0,
			utils.DegToRad(o.Yaw), utils.DegToRad(o.Pitch), utils.DegToRad(o.Roll))
		return p.Rotation(), nil
	}
	return spatialmath.RotationFromOrientationVector(o.X, o.Y, o.Z, utils.DegToRad(o.TH)), nil
}

// PoseConfig is a translation plus an orientation.
type PoseConfig struct {
	Translation Translation `json:"translation"`
	Orientation Orientation `json:"orientation"`
}

// Pose returns the pose described by the config.
func (c *PoseConfig) Pose() (spatialmath.Pose, error) {
	rot, err := c.Orientation.Rotation()
	if err != nil {
		return spatialmath.Pose{}, err
	}
	trans := spatialmath.NewVec3(c.Translation.X, c.Translation.Y, c.Translation.Z)
	return spatialmath.NewPose3DFromMatrix(rot, trans), nil
}

// FrameConfig the pose and parent of the frame that will be created.
type FrameConfig struct {
	Name        string      `json:"name"`
	Parent      string      `json:"parent"`
	Translation Translation `json:"translation"`
	Orientation Orientation `json:"orientation"`
}

// Validate ensures all parts of the config are valid. Every problem found is reported.
func (config *FrameConfig) Validate(path string) error {
	var err error
	if config.Name == "" {
		err = multierr.Append(err, NewConfigValidationFieldRequiredError(path, "name"))
	}
	if config.Parent == "" {
		err = multierr.Append(err, NewConfigValidationFieldRequiredError(path, "parent"))
	}
	if config.Name != "" && config.Name == config.Parent {
		err = multierr.Append(err, NewConfigValidationError(path, errors.New("frame cannot be its own parent")))
	}
	return multierr.Append(err, config.Orientation.Validate(path+".orientation"))
}

// Pose returns the frame's pose relative to its parent.
func (config *FrameConfig) Pose() (spatialmath.Pose, error) {
	pc := PoseConfig{Translation: config.Translation, Orientation: config.Orientation}
	return pc.Pose()
}

// FramesConfig is the top level of a frames file.
type FramesConfig struct {
	Frames []FrameConfig `json:"frames"`
}

// Validate validates every frame and checks that names are unique.
func (fc *FramesConfig) Validate() error {
	var err error
	seen := make(map[string]bool, len(fc.Frames))
	for i := range fc.Frames {
		path := fmt.Sprintf("frames.%d", i)
		err = multierr.Append(err, fc.Frames[i].Validate(path))
		name := fc.Frames[i].Name
		if name == "" {
			continue
		}
		if seen[name] {
			err = multierr.Append(err, NewConfigValidationError(path, errors.Errorf("duplicate frame name %q", name)))
		}
		seen[name] = true
	}
	return err
}
