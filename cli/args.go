package cli

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/posemath/spatialmath"
	"go.viam.com/posemath/utils"
)

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	vals := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q in %q", f, s)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// parsePose reads "x,y,z" or "x,y,z,yaw,pitch,roll" with the angles in degrees.
func parsePose[T spatialmath.Float](s string) (spatialmath.Pose3D[T], error) {
	vals, err := parseFloats(s)
	if err != nil {
		return spatialmath.Pose3D[T]{}, err
	}
	switch len(vals) {
	case 3:
		vals = append(vals, 0, 0, 0)
	case 6:
	default:
		return spatialmath.Pose3D[T]{}, errors.Errorf("pose %q must have 3 or 6 values but has %d", s, len(vals))
	}
	return spatialmath.NewPose3DFromEuler(
		T(vals[0]), T(vals[1]), T(vals[2]),
		T(utils.DegToRad(vals[3])), T(utils.DegToRad(vals[4])), T(utils.DegToRad(vals[5])),
	), nil
}

func parsePoses[T spatialmath.Float](args []string) ([]spatialmath.Pose3D[T], error) {
	poses := make([]spatialmath.Pose3D[T], 0, len(args))
	for i, arg := range args {
		p, err := parsePose[T](arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		poses = append(poses, p)
	}
	return poses, nil
}

func parsePoint(s string) (r3.Vector, error) {
	vals, err := parseFloats(s)
	if err != nil {
		return r3.Vector{}, err
	}
	if len(vals) != 3 {
		return r3.Vector{}, errors.Errorf("point %q must have 3 values but has %d", s, len(vals))
	}
	return r3.Vector{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}
