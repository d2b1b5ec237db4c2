// Package cli contains all business logic needed by the posecalc command.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"go.viam.com/posemath/logging"
)

const (
	// Flags.
	flagDebug   = "debug"
	flagFloat32 = "float32"
	flagShow    = "show"
	flagPoint   = "point"
	flagFile    = "file"
	flagFrom    = "from"
	flagTo      = "to"
)

const poseArgsUsage = `"x,y,z[,yaw,pitch,roll]"`

func showFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    flagShow,
		Aliases: []string{"s"},
		Usage:   "representations to print, any of " + outputFieldList() + " or all (default: matrix)",
	}
}

// NewApp returns the posecalc app writing to out and errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "posecalc",
		Usage:           "compose, invert and compare rigid-body poses",
		UsageText:       "posecalc [global options] command [options] POSE...\n\nPoses are " + poseArgsUsage + " in mm and degrees. Put -- before a pose starting with a minus sign.",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  flagFloat32,
				Usage: "do the math in single precision",
			},
		},
		Before: func(c *cli.Context) error {
			// logs share the error stream so piped output stays clean
			level := zapcore.InfoLevel
			if c.Bool(flagDebug) {
				level = zapcore.DebugLevel
			}
			logging.ReplaceGlobal(logging.NewWriterLogger("posecalc", level, c.App.ErrWriter))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "compose",
				Usage:     "compose poses left to right",
				ArgsUsage: "POSE POSE...",
				Flags:     []cli.Flag{showFlag()},
				Action:    ComposeAction,
			},
			{
				Name:      "invert",
				Usage:     "invert a pose",
				ArgsUsage: "POSE",
				Flags:     []cli.Flag{showFlag()},
				Action:    InvertAction,
			},
			{
				Name:      "diff",
				Usage:     "print the pose of A as seen from B",
				ArgsUsage: "A B",
				Flags:     []cli.Flag{showFlag()},
				Action:    DiffAction,
			},
			{
				Name:      "convert",
				Usage:     "map a point from a pose's frame into its parent",
				ArgsUsage: "POSE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagPoint,
						Aliases:  []string{"p"},
						Required: true,
						Usage:    `point as "x,y,z"`,
					},
				},
				Action: ConvertAction,
			},
			{
				Name:  "frames",
				Usage: "load a frames file and print where every frame is, or the transform between two frames",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:     flagFile,
						Aliases:  []string{"f"},
						Required: true,
						Usage:    "frames `FILE` in json or yaml",
					},
					&cli.StringFlag{
						Name:  flagFrom,
						Usage: "print the origin of this frame",
					},
					&cli.StringFlag{
						Name:  flagTo,
						Value: "world",
						Usage: "as seen from this frame",
					},
					showFlag(),
				},
				Action: FramesAction,
			},
		},
	}
}
