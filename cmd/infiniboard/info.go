package main

import (
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/infiniboard/poincare"
	"github.com/gogpu/infiniboard/vbo"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Build a tiling and print its statistics",
		Long: `info builds the configured tiling and prints the strategy used, the
predicted and actual buffer sizes and the largest modulus reached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := a.cfg.Params()
			predicted, err := poincare.PointCount(params)
			if err != nil {
				return err
			}
			start := time.Now()
			segs, err := poincare.Build(params, poincare.WithMaxPoints(a.maxPoints))
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			pr := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()
			pr.Fprintf(out, "tiling     %v\n", params)
			pr.Fprintf(out, "strategy   %v\n", params.Strategy())
			pr.Fprintf(out, "predicted  %d points\n", predicted)
			pr.Fprintf(out, "built      %d points, %d segments\n", segs.Len(), segs.NumSegments())
			pr.Fprintf(out, "buffer     %d bytes\n", vbo.Descriptor("tiling", uint32(segs.Len())).Size) //nolint:gosec // bounded by the point limit
			pr.Fprintf(out, "max |z|    %.6f\n", segs.MaxAbs())
			pr.Fprintf(out, "elapsed    %v\n", elapsed.Round(time.Microsecond))
			return nil
		},
	}
}
