package vbo

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// UniformSize is the size in bytes of encoded Uniforms.
const UniformSize = 16

// UniformUsage is the buffer usage of the per-frame uniform buffer.
const UniformUsage = gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst

// Uniforms are the per-frame shader parameters:
//
//	struct Uniforms {
//	    pan: vec2<f32>,
//	    screen_ratio: f32,
//	    screen_zoom: f32,
//	}
type Uniforms struct {
	Pan   complex64
	Ratio float32
	Zoom  float32
}

// Encode packs u in the layout above.
func (u Uniforms) Encode() []byte {
	buf := make([]byte, UniformSize)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(real(u.Pan)))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(imag(u.Pan)))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(u.Ratio))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(u.Zoom))
	return buf
}
