package main

import (
	"fmt"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/karai17/crml/pkg/motion"
	"github.com/karai17/crml/pkg/vector3"
)

const restEpsilon = 1e-3

func newSpringCmd() *cobra.Command {
	var (
		fps       int
		frequency float64
		damping   float64
		frames    int
	)
	cmd := &cobra.Command{
		Use:   "spring <from> <to>",
		Short: "Animate a 3D point toward a target with a damped spring",
		Long: `Simulate a damped spring pulling a point from <from> to <to> and print its
position every frame until it comes to rest or --frames runs out.

A damping ratio of 1 is critically damped; below 1 the point overshoots.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseVector3(args[0])
			if err != nil {
				return err
			}
			to, err := parseVector3(args[1])
			if err != nil {
				return err
			}
			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}

			s := motion.NewSpring3(fps, frequency, damping, from)
			w := cmd.OutOrStdout()
			for frame := 1; frame <= frames; frame++ {
				fmt.Fprintf(w, "%4d %s\n", frame, s.Update(to))
				if s.AtRest(to, restEpsilon) {
					log.Infof("spring at rest after %d frames (%.2fs)", frame, float64(frame)/float64(fps))
					return nil
				}
			}
			log.Warnf("spring still moving after %d frames, %.4f from target", frames, s.Position.Dist(to))
			return nil
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 60, "Simulation frames per second")
	cmd.Flags().Float64Var(&frequency, "frequency", 6.0, "Angular frequency (speed)")
	cmd.Flags().Float64Var(&damping, "damping", 1.0, "Damping ratio")
	cmd.Flags().IntVar(&frames, "frames", 600, "Maximum frames to simulate")
	return cmd
}

func newThrowCmd() *cobra.Command {
	var (
		fps    int
		frames int
	)
	cmd := &cobra.Command{
		Use:   "throw <position> <velocity>",
		Short: "Trace a projectile under gravity until it falls below y=0",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parseVector3(args[0])
			if err != nil {
				return err
			}
			vel, err := parseVector3(args[1])
			if err != nil {
				return err
			}
			if fps <= 0 {
				return fmt.Errorf("fps must be positive, got %d", fps)
			}

			p := motion.NewProjectile(fps, pos, vel, motion.Gravity)
			w := cmd.OutOrStdout()
			for frame := 1; frame <= frames; frame++ {
				cur := p.Update()
				fmt.Fprintf(w, "%4d %s\n", frame, cur)
				if cur.Y < 0 {
					horizontal := cur.Sub(pos).Mul(vector3.New(1, 0, 1)).Len()
					log.Infof("landed after %d frames, %.3f from start", frame, horizontal)
					return nil
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&fps, "fps", 60, "Simulation frames per second")
	cmd.Flags().IntVar(&frames, "frames", 600, "Maximum frames to simulate")
	return cmd
}
