// Package vbo packs disk points into GPU vertex buffers.
//
// A tiling or stroke buffer is a list of line segments, two vertices each,
// one Float32x2 position per vertex. This package provides the matching
// pipeline descriptors and the little-endian byte encoding expected by
// queue writes.
package vbo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
)

const (
	// Format is the vertex attribute format of a position.
	Format = gputypes.VertexFormatFloat32x2

	// Stride is the size in bytes of one vertex.
	Stride = 8

	// Topology draws each consecutive vertex pair as one line.
	Topology = gputypes.PrimitiveTopologyLineList

	// Usage is the buffer usage of a vertex buffer written from the CPU.
	Usage = gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
)

// ErrLength is returned by Decode for data that is not a whole number of
// vertices.
var ErrLength = errors.New("vbo: length is not a multiple of the vertex stride")

// Layout returns the vertex buffer layout with the position bound to
// shader location.
func Layout(location uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: Stride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: Format, Offset: 0, ShaderLocation: location}, // position
		},
	}
}

// Primitive returns the primitive state for drawing segment buffers.
func Primitive() gputypes.PrimitiveState {
	s := gputypes.DefaultPrimitiveState()
	s.Topology = Topology
	return s
}

// Descriptor returns the descriptor of a vertex buffer holding n points.
// n has the type of a draw call vertex count, so the size cannot overflow.
func Descriptor(label string, n uint32) gputypes.BufferDescriptor {
	return gputypes.BufferDescriptor{
		Label: label,
		Size:  uint64(n) * Stride,
		Usage: Usage,
	}
}

// Encode packs points as interleaved little-endian float32 x,y pairs.
func Encode(points []complex64) []byte {
	return AppendEncode(make([]byte, 0, len(points)*Stride), points)
}

// AppendEncode appends the encoding of points to dst.
func AppendEncode(dst []byte, points []complex64) []byte {
	for _, z := range points {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(real(z)))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(imag(z)))
	}
	return dst
}

// Decode unpacks data written by Encode.
func Decode(data []byte) ([]complex64, error) {
	if len(data)%Stride != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrLength, len(data))
	}
	points := make([]complex64, len(data)/Stride)
	for i := range points {
		v := data[i*Stride:]
		x := math.Float32frombits(binary.LittleEndian.Uint32(v[0:4]))
		y := math.Float32frombits(binary.LittleEndian.Uint32(v[4:8]))
		points[i] = complex(x, y)
	}
	return points, nil
}

// VertexCount returns the number of whole vertices in data.
func VertexCount(data []byte) uint32 {
	return uint32(len(data) / Stride)
}
