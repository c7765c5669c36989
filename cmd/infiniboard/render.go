package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/infiniboard/poincare"
	"github.com/gogpu/infiniboard/preview"
)

// previewFlags are the flags shared by render and svg.
type previewFlags struct {
	output    string
	size      int
	lineWidth float32
	caption   bool
	pan       panFlags
}

func (f *previewFlags) register(cmd *cobra.Command, output string) {
	cmd.Flags().StringVarP(&f.output, "output", "o", output, "output file")
	cmd.Flags().IntVar(&f.size, "size", preview.DefaultSize, "image side length in pixels")
	cmd.Flags().Float32Var(&f.lineWidth, "line-width", 1, "segment width in pixels")
	cmd.Flags().BoolVar(&f.caption, "caption", false, "write the tiling parameters in the corner")
	f.pan.register(cmd)
}

// previewOptions creates the board and returns its background with the
// matching preview options.
func (a *app) previewOptions(f *previewFlags) (preview.Options, poincare.Segments, error) {
	fr, err := a.frame(f.pan.point())
	if err != nil {
		return preview.Options{}, nil, err
	}
	opts := preview.Options{
		Size:      f.size,
		LineWidth: f.lineWidth,
		Pan:       fr.Pan,
		Strokes:   fr.Strokes,
	}
	if f.caption {
		opts.Caption = a.cfg.Params().String()
	}
	return opts, fr.Background, nil
}

func newRenderCmd(a *app) *cobra.Command {
	f := &previewFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a PNG preview of the tiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, bg, err := a.previewOptions(f)
			if err != nil {
				return err
			}
			img, err := preview.Render(bg, opts)
			if err != nil {
				return err
			}
			if err := preview.SavePNG(f.output, img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.output)
			return nil
		},
	}
	f.register(cmd, "tiling.png")
	return cmd
}

func newSVGCmd(a *app) *cobra.Command {
	f := &previewFlags{}
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Export the tiling as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, bg, err := a.previewOptions(f)
			if err != nil {
				return err
			}
			if err := preview.SaveSVG(f.output, bg, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.output)
			return nil
		},
	}
	f.register(cmd, "tiling.svg")
	return cmd
}
