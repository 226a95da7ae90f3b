package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karai17/crml/pkg/vector2"
)

func newPolarCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "polar [x,y]",
		Short: "Convert between cartesian and polar coordinates",
		Long: `Convert a 2D vector to polar form, printing radius and angle in radians,
or with --from radius,angle convert polar coordinates back to a vector.

Angles are reported in (0, 2π]: a vector on the positive X axis reports 2π.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if from != "" {
				if len(args) > 0 {
					return errors.New("polar takes either --from or a vector, not both")
				}
				c, err := parseComponents(from, 2)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, vector2.FromPolar(c[0], c[1]))
				return err
			}
			if len(args) == 0 {
				return errors.New("polar needs a vector or --from radius,angle")
			}
			v, err := parseVector2(args[0])
			if err != nil {
				return err
			}
			radius, angle := v.ToPolar()
			_, err = fmt.Fprintf(out, "radius: %s\nangle:  %s\n", format(radius), format(angle))
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "Polar coordinates as radius,angle")
	return cmd
}
