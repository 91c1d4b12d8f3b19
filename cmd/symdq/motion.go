package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aretw0/symdq"
	"github.com/aretw0/symdq/internal/presentation/tui"
)

// screwFlags describe a screw motion on the command line.
type screwFlags struct {
	l, m     []string
	theta, d string
}

func (f *screwFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&f.l, "l", nil, "Unit axis direction, e.g. --l 0,0,1")
	fs.StringSliceVar(&f.m, "m", []string{"0", "0", "0"}, "Axis moment p x l, e.g. --m 0,-x,0")
	fs.StringVar(&f.theta, "theta", "", "Rotation angle")
	fs.StringVar(&f.d, "d", "0", "Translation along the axis")
}

func (f *screwFlags) params() (symdq.ScrewParams, error) {
	l, err := vector("l", f.l)
	if err != nil {
		return symdq.ScrewParams{}, err
	}
	m, err := vector("m", f.m)
	if err != nil {
		return symdq.ScrewParams{}, err
	}
	return symdq.ScrewParams{L: l, M: m, Theta: f.theta, D: f.d}, nil
}

// motionFlags accept either explicit parts (--real, --dual) or a screw.
type motionFlags struct {
	screwFlags
	real, dual []string
}

func (f *motionFlags) register(fs *pflag.FlagSet) {
	f.screwFlags.register(fs)
	fs.StringSliceVar(&f.real, "real", nil, "Real part a,b,c,d")
	fs.StringSliceVar(&f.dual, "dual", nil, "Dual part a,b,c,d (default 0)")
}

func (f *motionFlags) motion() (symdq.Motion, error) {
	if len(f.real) == 0 {
		if len(f.l) == 0 {
			return symdq.Motion{}, fmt.Errorf("either --real or --l is required")
		}
		p, err := f.params()
		if err != nil {
			return symdq.Motion{}, err
		}
		return symdq.Motion{Screw: &p}, nil
	}
	d := &symdq.Dual{}
	var err error
	if d.Real, err = quat("real", f.real); err != nil {
		return symdq.Motion{}, err
	}
	if len(f.dual) > 0 {
		if d.Dual, err = quat("dual", f.dual); err != nil {
			return symdq.Motion{}, err
		}
	}
	return symdq.Motion{Dual: d}, nil
}

func vector(flag string, parts []string) (symdq.Vector3, error) {
	var v symdq.Vector3
	if len(parts) != 3 {
		return v, fmt.Errorf("--%s needs 3 components, got %d", flag, len(parts))
	}
	copy(v[:], trimAll(parts))
	return v, nil
}

func quat(flag string, parts []string) (symdq.Quat, error) {
	var q symdq.Quat
	if len(parts) != 4 {
		return q, fmt.Errorf("--%s needs 4 components, got %d", flag, len(parts))
	}
	copy(q[:], trimAll(parts))
	return q, nil
}

func trimAll(parts []string) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
	}
	return out
}

func newScrewCmd(a *app) *cobra.Command {
	var f screwFlags
	cmd := &cobra.Command{
		Use:   "screw",
		Short: "Build the unit dual quaternion of a screw motion",
		Example: `  symdq screw --l 0,0,1 --m 0,-x,0 --theta theta
  symdq screw --domain numeric --bind x=2 --l 0,0,1 --m 0,-x,0 --theta pi/2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := f.params()
			if err != nil {
				return err
			}
			eng, err := a.engine()
			if err != nil {
				return err
			}
			res, err := eng.Screw(cmd.Context(), p)
			if err != nil {
				return err
			}
			return a.emit(cmd, res, tui.DualMarkdown("Screw motion", res))
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newTransformCmd(a *app) *cobra.Command {
	var (
		f     motionFlags
		point []string
	)
	cmd := &cobra.Command{
		Use:     "transform",
		Short:   "Apply a rigid motion to a point",
		Example: `  symdq transform --l 0,0,1 --m 0,-x,0 --theta theta --point px,py,pz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.motion()
			if err != nil {
				return err
			}
			p, err := vector("point", point)
			if err != nil {
				return err
			}
			eng, err := a.engine()
			if err != nil {
				return err
			}
			res, err := eng.Transform(cmd.Context(), m, p)
			if err != nil {
				return err
			}
			return a.emit(cmd, res, tui.PointMarkdown(res))
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().StringSliceVar(&point, "point", nil, "Point x,y,z")
	return cmd
}

func newUnitCmd(a *app) *cobra.Command {
	var f motionFlags
	cmd := &cobra.Command{
		Use:   "unit",
		Short: "Report whether a dual quaternion has unit norm",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.motion()
			if err != nil {
				return err
			}
			eng, err := a.engine()
			if err != nil {
				return err
			}
			res, err := eng.IsUnit(cmd.Context(), m)
			if err != nil {
				return err
			}
			return a.emit(cmd, res, fmt.Sprintf("unit: **%t**\n\n_domain: %s_\n", res.Unit, res.Domain))
		},
	}
	f.register(cmd.Flags())
	return cmd
}

func newNormCmd(a *app) *cobra.Command {
	var f motionFlags
	cmd := &cobra.Command{
		Use:   "norm",
		Short: "Print D times its quaternion conjugate",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := f.motion()
			if err != nil {
				return err
			}
			eng, err := a.engine()
			if err != nil {
				return err
			}
			res, err := eng.Norm(cmd.Context(), m)
			if err != nil {
				return err
			}
			return a.emit(cmd, res, tui.DualMarkdown("Norm", res))
		},
	}
	f.register(cmd.Flags())
	return cmd
}
