package assets

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

// ErrShader is returned for WGSL source that does not compile.
var ErrShader = errors.New("assets: shader does not compile")

// TilingShader is the WGSL source of the tiling and stroke pipeline. It reads
// vbo positions at location 0 and the vbo.Uniforms block at group 0,
// binding 0.
//
//go:embed shaders/tiling.wgsl
var TilingShader string

// CompileShader compiles WGSL source to SPIR-V.
func CompileShader(src string) ([]byte, error) {
	spirv, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShader, err)
	}
	return spirv, nil
}

// LoadShader loads a WGSL file with Load and compiles it.
func LoadShader(path string) (src string, spirv []byte, err error) {
	data, err := Load(path)
	if err != nil {
		return "", nil, err
	}
	spirv, err = CompileShader(string(data))
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", path, err)
	}
	return string(data), spirv, nil
}
