// Command infiniboard builds hyperbolic {p,q} tilings of the Poincaré disk
// and exports them as vertex buffers, PNG previews or SVG drawings.
//
// Usage:
//
//	infiniboard info -p 3 -q 7 --niter 6
//	infiniboard render -o tiling.png --size 1024 --caption
//	infiniboard svg -o tiling.svg --config board.toml
//	infiniboard export -o tiling.bin --uniforms uniforms.bin
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
