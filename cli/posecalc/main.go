// Package main is the posecalc command itself.
package main

import (
	"os"

	"go.viam.com/posemath/cli"
	"go.viam.com/posemath/logging"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		logging.Global().Fatal(err)
	}
}
