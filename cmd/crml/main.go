// crml - vector math from the command line.
//
// Vectors are written as comma separated components, optionally wrapped in
// brackets so printed results can be fed back in:
//
//	crml v2 add 1,2 3,4
//	crml v3 cross 1,0,0 0,1,0
//	crml v3 rotate "[1, 0, 0]" 1.5708 0,0,1
//	crml polar --from 2,3.1416
//	crml info model.glb
//	crml spring 0,0,0 1,2,3
package main

import (
	"context"
	"os"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "crml",
		Short: "2D and 3D vector math",
		Long: `crml - 2D and 3D vector math

Evaluate vector operations, convert polar coordinates, inspect mesh files
and simulate springs. Vectors are comma separated components such as 1,2 or
1,2,3. Wrap negative vectors in brackets, e.g. "[-1, 2]".`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				log.SetLogLevel(log.Debug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newVectorCmd("v2", "2D vector operations", vector2Ops),
		newVectorCmd("v3", "3D vector operations", vector3Ops),
		newPolarCmd(),
		newInfoCmd(),
		newSpringCmd(),
		newThrowCmd(),
	)
	return root
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
