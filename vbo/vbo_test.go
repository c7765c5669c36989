package vbo

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/infiniboard/poincare"
)

func TestLayout(t *testing.T) {
	l := Layout(3)
	if l.ArrayStride != Stride {
		t.Errorf("ArrayStride = %d", l.ArrayStride)
	}
	if l.StepMode != gputypes.VertexStepModeVertex {
		t.Errorf("StepMode = %v", l.StepMode)
	}
	if len(l.Attributes) != 1 {
		t.Fatalf("got %d attributes", len(l.Attributes))
	}
	a := l.Attributes[0]
	if a.Format != gputypes.VertexFormatFloat32x2 || a.Offset != 0 || a.ShaderLocation != 3 {
		t.Errorf("attribute = %+v", a)
	}
	if a.Format.Size() != Stride {
		t.Errorf("format size %d does not match stride", a.Format.Size())
	}
}

func TestPrimitive(t *testing.T) {
	if p := Primitive(); p.Topology != gputypes.PrimitiveTopologyLineList || p.StripIndexFormat != nil {
		t.Errorf("Primitive() = %+v", p)
	}
}

func TestDescriptor(t *testing.T) {
	d := Descriptor("tiling", 100)
	if d.Label != "tiling" || d.Size != 800 {
		t.Errorf("Descriptor = %+v", d)
	}
	if !d.Usage.Contains(gputypes.BufferUsageVertex) || !d.Usage.Contains(gputypes.BufferUsageCopyDst) {
		t.Errorf("Usage = %v", d.Usage)
	}
}

func TestDescriptorSize(t *testing.T) {
	tests := []struct {
		n    uint32
		want uint64
	}{
		{0, 0},
		{1, Stride},
		{math.MaxUint32, math.MaxUint32 * Stride},
	}
	for _, tt := range tests {
		if got := Descriptor("", tt.n).Size; got != tt.want {
			t.Errorf("Descriptor(%d).Size = %d, want %d", tt.n, got, tt.want)
		}
	}

	segs, err := poincare.Tiling(3, 7, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	data := Encode(segs)
	if got := Descriptor("tiling", VertexCount(data)).Size; got != uint64(len(data)) {
		t.Errorf("Size = %d, encoded %d bytes", got, len(data))
	}
}

func TestEncode(t *testing.T) {
	got := Encode([]complex64{complex(1, -2)})
	want := []byte{
		0x00, 0x00, 0x80, 0x3f, // 1.0
		0x00, 0x00, 0x00, 0xc0, // -2.0
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = % x, want % x", got, want)
	}
}

func TestEncodeDecodeTiling(t *testing.T) {
	segs, err := poincare.Tiling(3, 7, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	data := Encode(segs)
	if len(data) != segs.Len()*Stride {
		t.Fatalf("encoded %d bytes, want %d", len(data), segs.Len()*Stride)
	}
	if VertexCount(data) != uint32(segs.Len()) {
		t.Errorf("VertexCount = %d", VertexCount(data))
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	for i := range segs {
		if back[i] != segs[i] {
			t.Fatalf("point %d: %v, want %v", i, back[i], segs[i])
		}
	}
}

func TestAppendEncode(t *testing.T) {
	prefix := []byte{0xaa}
	got := AppendEncode(prefix, []complex64{0})
	if len(got) != 1+Stride || got[0] != 0xaa {
		t.Errorf("AppendEncode = % x", got)
	}
}

func TestDecodeBadLength(t *testing.T) {
	if _, err := Decode(make([]byte, 12)); !errors.Is(err, ErrLength) {
		t.Errorf("error = %v, want ErrLength", err)
	}
	if pts, err := Decode(nil); err != nil || len(pts) != 0 {
		t.Errorf("Decode(nil) = %v, %v", pts, err)
	}
}

func TestUniforms(t *testing.T) {
	u := Uniforms{Pan: complex(0.5, -0.25), Ratio: 4.0 / 3, Zoom: 0.99}
	buf := u.Encode()
	if len(buf) != UniformSize {
		t.Fatalf("len = %d", len(buf))
	}
	vals := make([]float32, 4)
	for i := range vals {
		bits := uint32(buf[4*i]) | uint32(buf[4*i+1])<<8 | uint32(buf[4*i+2])<<16 | uint32(buf[4*i+3])<<24
		vals[i] = math.Float32frombits(bits)
	}
	want := []float32{0.5, -0.25, 4.0 / 3, 0.99}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("field %d = %v, want %v", i, vals[i], want[i])
		}
	}
	if !UniformUsage.Contains(gputypes.BufferUsageUniform) {
		t.Error("UniformUsage lacks BufferUsageUniform")
	}
}
