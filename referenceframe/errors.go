package referenceframe

import "github.com/pkg/errors"

// ErrNoParent is returned when asking for the parent of the world frame.
var ErrNoParent = errors.New("no parent")

// NewFrameMissingError returns an error indicating that the given frame is missing from the framesystem.
func NewFrameMissingError(frameName string) error {
	return errors.Errorf("frame with name %q not in frame system", frameName)
}

// NewParentFrameMissingError returns an error indicating that a frame's parent is not in the framesystem.
func NewParentFrameMissingError(frameName, parentName string) error {
	return errors.Errorf("parent frame with name %q for frame %q not in frame system", parentName, frameName)
}

// NewFrameAlreadyExistsError returns an error indicating that a frame of the given name is already in the framesystem.
func NewFrameAlreadyExistsError(frameName string) error {
	return errors.Errorf("frame with name %q already in frame system", frameName)
}

// NewFrameNameRequiredError returns an error indicating that a frame was given without a name.
func NewFrameNameRequiredError() error {
	return errors.New("frame name is required")
}
