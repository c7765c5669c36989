package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/infiniboard"
	"github.com/gogpu/infiniboard/assets"
	"github.com/gogpu/infiniboard/vbo"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		output   string
		uniforms string
		pan      panFlags
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the tiling as a raw vertex buffer",
		Long: `export writes the tiling as the vertex buffer the renderer uploads:
interleaved little-endian float32 x,y pairs, two vertices per line segment.
With --uniforms it also writes the matching per-frame uniform block.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fr, err := a.frame(pan.point())
			if err != nil {
				return err
			}
			data := vbo.Encode(fr.Background)
			if err := os.WriteFile(output, data, 0o644); err != nil { //nolint:gosec // export is meant to be readable
				return err
			}
			infiniboard.Logger().Info("infiniboard: exported vertex buffer",
				slog.String("path", output),
				slog.Int("bytes", len(data)))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d vertices)\n", output, vbo.VertexCount(data))

			if uniforms != "" {
				if err := os.WriteFile(uniforms, fr.Uniforms().Encode(), 0o644); err != nil { //nolint:gosec // see above
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", uniforms)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "tiling.bin", "vertex buffer file")
	cmd.Flags().StringVar(&uniforms, "uniforms", "", "uniform block file (not written when empty)")
	pan.register(cmd)
	return cmd
}

func newConfigCmd(a *app) *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if save != "" {
				return a.cfg.Save(save)
			}
			return a.cfg.Write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "write to this file instead of standard output")
	return cmd
}

func newShaderCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "shader [FILE]",
		Short: "Compile a WGSL shader and print the layout it must consume",
		Long: `shader loads a WGSL file the way the renderer does, compiles it to SPIR-V
and prints the vertex and uniform layout the tiling pipeline binds. Without
FILE it checks the built-in tiling shader.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src := "built-in tiling shader", assets.TilingShader
			var spirv []byte
			var err error
			if len(args) == 1 {
				name = args[0]
				src, spirv, err = assets.LoadShader(name)
			} else {
				spirv, err = assets.CompileShader(src)
			}
			if err != nil {
				return err
			}

			l := vbo.Layout(0)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d bytes, %d lines\n", name, len(src), strings.Count(src, "\n"))
			fmt.Fprintf(out, "spir-v   %d bytes\n", len(spirv))
			fmt.Fprintf(out, "vertex   @location(%d) vec2<f32>, stride %d\n", l.Attributes[0].ShaderLocation, l.ArrayStride)
			fmt.Fprintf(out, "uniforms %d bytes: pan vec2<f32>, screen_ratio f32, screen_zoom f32\n", vbo.UniformSize)
			return nil
		},
	}
}
