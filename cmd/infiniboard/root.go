package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/infiniboard"
	"github.com/gogpu/infiniboard/poincare"
)

// app holds the flags shared by every subcommand and the configuration
// resolved from them.
type app struct {
	configFile string
	logLevel   string
	p, q       int
	res, niter int
	maxPoints  int

	cfg infiniboard.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "infiniboard",
		Short: "Hyperbolic tilings of the Poincaré disk.",
		Long: `infiniboard builds the {p,q} tiling backgrounds of the hyperbolic
whiteboard and exports them for inspection.

The tiling is read from the configuration file given with --config, if any,
and the -p, -q, --res and --niter flags override the values it sets.`,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
	}

	d := infiniboard.DefaultTiling
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "configuration file location (TOML)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.IntVarP(&a.p, "p", "p", d.P, "number of sides of each polygon")
	pf.IntVarP(&a.q, "q", "q", d.Q, "number of polygons meeting at each vertex")
	pf.IntVar(&a.res, "res", d.Res, "points per edge")
	pf.IntVar(&a.niter, "niter", d.Niter, "growth rounds")
	pf.IntVar(&a.maxPoints, "max-points", poincare.DefaultMaxPoints, "largest tiling to build, in points")

	root.AddCommand(
		newInfoCmd(a),
		newRenderCmd(a),
		newSVGCmd(a),
		newExportCmd(a),
		newConfigCmd(a),
		newShaderCmd(a),
	)
	return root
}

// setup installs the logger and resolves the configuration.
func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	infiniboard.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))

	cfg := infiniboard.DefaultConfig()
	if a.configFile != "" {
		var err error
		if cfg, err = infiniboard.LoadConfig(a.configFile); err != nil {
			return err
		}
	}
	overrides := []struct {
		name string
		src  int
		dst  *int
	}{
		{"p", a.p, &cfg.Tiling.P},
		{"q", a.q, &cfg.Tiling.Q},
		{"res", a.res, &cfg.Tiling.Res},
		{"niter", a.niter, &cfg.Tiling.Niter},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.name) {
			*o.dst = o.src
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// options returns the board options of the resolved configuration.
func (a *app) options() []infiniboard.Option {
	return append(a.cfg.Options(), infiniboard.WithMaxPoints(a.maxPoints))
}

// frame creates a board centred on pan and returns its frame.
func (a *app) frame(pan complex64) (infiniboard.Frame, error) {
	b, err := infiniboard.New(a.options()...)
	if err != nil {
		return infiniboard.Frame{}, err
	}
	b.SetPan(pan)
	return b.Frame(), nil
}

// panFlags registers --pan-x and --pan-y on cmd.
type panFlags struct {
	x, y float32
}

func (p *panFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float32Var(&p.x, "pan-x", 0, "real part of the disk point to centre on")
	cmd.Flags().Float32Var(&p.y, "pan-y", 0, "imaginary part of the disk point to centre on")
}

func (p *panFlags) point() complex64 {
	return complex(p.x, p.y)
}
