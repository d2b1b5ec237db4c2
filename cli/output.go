package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"go.viam.com/posemath/spatialmath"
	"go.viam.com/posemath/utils"
	"go.viam.com/posemath/utils/flags"
)

// outputField selects a representation of a pose to print.
type outputField uint8

const (
	showMatrix outputField = 1 << iota
	showEuler
	showQuaternion
	showOrientationVector
	showJSON
)

var outputFieldNames = []flags.Named[outputField]{
	{Flag: showMatrix, Name: "matrix"},
	{Flag: showEuler, Name: "euler"},
	{Flag: showQuaternion, Name: "quat"},
	{Flag: showOrientationVector, Name: "ov"},
	{Flag: showJSON, Name: "json"},
}

func outputFieldList() string {
	return strings.Join(lo.Map(outputFieldNames, func(n flags.Named[outputField], _ int) string {
		return n.Name
	}), ", ")
}

// parseShow turns --show values into a set. Nothing selected means the matrix.
func parseShow(names []string) (flags.Flags[outputField], error) {
	var show flags.Flags[outputField]
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "all" {
			for _, n := range outputFieldNames {
				show.Set(n.Flag)
			}
			continue
		}
		named, ok := lo.Find(outputFieldNames, func(n flags.Named[outputField]) bool {
			return n.Name == name
		})
		if !ok {
			return show, errors.Errorf("unknown --%s value %q, expected one of %s or all", flagShow, name, outputFieldList())
		}
		show.Set(named.Flag)
	}
	if show.None() {
		show.Set(showMatrix)
	}
	return show, nil
}

// Half a unit in the last printed place for each output precision.
const (
	below2dp = 5e-3
	below3dp = 5e-4
	below6dp = 5e-7
)

// display returns zero for values that would otherwise print as -0 at the precision below is for.
func display(v, below float64) float64 {
	if math.Abs(v) < below {
		return 0
	}
	return v
}

// displayPose applies display to every entry WriteTo prints.
func displayPose[T spatialmath.Float](p spatialmath.Pose3D[T]) spatialmath.Pose3D[T] {
	rot, trans := p.Rotation(), p.Translation()
	for i := range rot {
		rot[i] = T(display(float64(rot[i]), below3dp))
	}
	for i := range trans {
		trans[i] = T(display(float64(trans[i]), below3dp))
	}
	return spatialmath.NewPose3DFromMatrix(rot, trans)
}

func printPose[T spatialmath.Float](w io.Writer, p spatialmath.Pose3D[T], show flags.Flags[outputField]) error {
	if show.Test(showMatrix) {
		if _, err := displayPose(p).WriteTo(w); err != nil {
			return err
		}
	}
	if show.Test(showEuler) {
		yaw, pitch, roll := p.EulerAngles()
		if _, err := fmt.Fprintf(w, "euler (deg): yaw %.3f pitch %.3f roll %.3f\n",
			display(utils.RadToDeg(float64(yaw)), below3dp),
			display(utils.RadToDeg(float64(pitch)), below3dp),
			display(utils.RadToDeg(float64(roll)), below3dp),
		); err != nil {
			return err
		}
	}
	if show.Test(showQuaternion) {
		q := p.Quaternion()
		if _, err := fmt.Fprintf(w, "quaternion: w %.6f x %.6f y %.6f z %.6f\n",
			display(q.Real, below6dp), display(q.Imag, below6dp), display(q.Jmag, below6dp), display(q.Kmag, below6dp)); err != nil {
			return err
		}
	}
	if show.Test(showOrientationVector) {
		ox, oy, oz, theta := spatialmath.OrientationVector(p.Rotation())
		if _, err := fmt.Fprintf(w, "orientation vector: x %.6f y %.6f z %.6f theta (deg) %.3f\n",
			display(ox, below6dp), display(oy, below6dp), display(oz, below6dp), display(utils.RadToDeg(theta), below3dp)); err != nil {
			return err
		}
	}
	if show.Test(showJSON) {
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return err
		}
	}
	return nil
}
