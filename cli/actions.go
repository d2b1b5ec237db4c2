package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/posemath/config"
	"go.viam.com/posemath/logging"
	"go.viam.com/posemath/referenceframe"
	"go.viam.com/posemath/spatialmath"
	"go.viam.com/posemath/utils"
)

// withPrecision picks the single or double precision action from the --float32 flag.
func withPrecision(c *cli.Context, single, double func(*cli.Context) error) error {
	if c.Bool(flagFloat32) {
		return single(c)
	}
	return double(c)
}

// ComposeAction is the corresponding Action for 'compose'.
func ComposeAction(c *cli.Context) error {
	return withPrecision(c, composeAction[float32], composeAction[float64])
}

func composeAction[T spatialmath.Float](c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("compose needs at least two poses")
	}
	show, err := parseShow(c.StringSlice(flagShow))
	if err != nil {
		return err
	}
	poses, err := parsePoses[T](c.Args().Slice())
	if err != nil {
		return err
	}
	result := poses[0]
	for _, p := range poses[1:] {
		result.ComposeInPlace(p)
	}
	logging.Global().Debugw("composed poses", "count", len(poses))
	return printPose(c.App.Writer, result, show)
}

// InvertAction is the corresponding Action for 'invert'.
func InvertAction(c *cli.Context) error {
	return withPrecision(c, invertAction[float32], invertAction[float64])
}

func invertAction[T spatialmath.Float](c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("invert needs exactly one pose")
	}
	show, err := parseShow(c.StringSlice(flagShow))
	if err != nil {
		return err
	}
	p, err := parsePose[T](c.Args().First())
	if err != nil {
		return err
	}
	return printPose(c.App.Writer, p.Inverse(), show)
}

// DiffAction is the corresponding Action for 'diff'.
func DiffAction(c *cli.Context) error {
	return withPrecision(c, diffAction[float32], diffAction[float64])
}

func diffAction[T spatialmath.Float](c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("diff needs exactly two poses")
	}
	show, err := parseShow(c.StringSlice(flagShow))
	if err != nil {
		return err
	}
	poses, err := parsePoses[T](c.Args().Slice())
	if err != nil {
		return err
	}
	return printPose(c.App.Writer, spatialmath.Difference(poses[0], poses[1]), show)
}

// ConvertAction is the corresponding Action for 'convert'.
func ConvertAction(c *cli.Context) error {
	return withPrecision(c, convertAction[float32], convertAction[float64])
}

func convertAction[T spatialmath.Float](c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("convert needs exactly one pose")
	}
	p, err := parsePose[T](c.Args().First())
	if err != nil {
		return err
	}
	pt, err := parsePoint(c.String(flagPoint))
	if err != nil {
		return err
	}
	out := p.Convert(spatialmath.Vec3FromR3[T](pt))
	_, err = fmt.Fprintf(c.App.Writer, "%.3f %.3f %.3f\n",
		display(float64(out.X()), below3dp), display(float64(out.Y()), below3dp), display(float64(out.Z()), below3dp))
	return err
}

// FramesAction is the corresponding Action for 'frames'.
func FramesAction(c *cli.Context) error {
	logger := logging.Global()
	conf, err := config.ReadFramesFile(c.Path(flagFile), logger)
	if err != nil {
		return err
	}
	fs, err := referenceframe.NewFrameSystemFromConfig(c.Path(flagFile), conf.Frames, logger)
	if err != nil {
		return err
	}

	if from := c.String(flagFrom); from != "" {
		show, err := parseShow(c.StringSlice(flagShow))
		if err != nil {
			return err
		}
		pif, err := fs.Transform(referenceframe.NewZeroPoseInFrame(from), c.String(flagTo))
		if err != nil {
			return err
		}
		return printPose(c.App.Writer, pif.Pose(), show)
	}

	rendered, err := frameTable(fs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, rendered)
	return err
}

// frameTable renders each frame's parent and its pose in the world.
func frameTable(fs referenceframe.FrameSystem) (string, error) {
	poses, err := referenceframe.ComputePoses(fs)
	if err != nil {
		return "", err
	}
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Name", "Parent", "World Translation", "World Orientation"})
	t.AppendRow(table.Row{"0", referenceframe.World, "", "", ""})
	for i, name := range fs.FrameNames() {
		parent, err := fs.Parent(fs.Frame(name))
		if err != nil {
			return "", err
		}
		pose := poses[name].Pose()
		yaw, pitch, roll := pose.EulerAngles()
		t.AppendRow(table.Row{
			fmt.Sprintf("%d", i+1),
			name,
			parent.Name(),
			fmt.Sprintf("X:%.2f, Y:%.2f, Z:%.2f", display(pose.X(), below2dp), display(pose.Y(), below2dp), display(pose.Z(), below2dp)),
			fmt.Sprintf(
				"Roll:%.2f, Pitch:%.2f, Yaw:%.2f",
				display(utils.RadToDeg(roll), below2dp),
				display(utils.RadToDeg(pitch), below2dp),
				display(utils.RadToDeg(yaw), below2dp),
			),
		})
	}
	return t.Render(), nil
}
