package infiniboard

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/infiniboard/poincare"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Params() != (poincare.Params{P: 3, Q: 7, Res: 5, Niter: 6}) {
		t.Errorf("Params() = %v", c.Params())
	}
	if c.Viewport() != (Viewport{Width: 800, Height: 600, Zoom: 0.99}) {
		t.Errorf("Viewport() = %+v", c.Viewport())
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
[tiling]
p = 4
q = 5
niter = 3

[screen]
width = 1024
`)
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := poincare.Params{P: 4, Q: 5, Res: 5, Niter: 3}
	if c.Params() != want {
		t.Errorf("Params() = %v, want %v", c.Params(), want)
	}
	if v := c.Viewport(); v.Width != 1024 || v.Height != 600 || v.Zoom != 0.99 {
		t.Errorf("Viewport() = %+v", v)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[tiling\np = 3", "board.toml"},
		{"unknown key", "[tiling]\nsides = 5\n", "tiling.sides"},
		{"unknown table", "[window]\nwidth = 5\n", "window"},
		{"not hyperbolic", "[tiling]\np = 4\nq = 4\n", "not hyperbolic"},
		{"zoom", "[screen]\nzoom = 0.0\n", "zoom"},
		{"type", "[tiling]\np = \"three\"\n", "board.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.content))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.Tiling.P, c.Tiling.Q = 7, 3
	c.Screen.Zoom = 0.75

	path := filepath.Join(t.TempDir(), "out.toml")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != c {
		t.Errorf("round trip = %+v, want %+v", got, c)
	}
}

func TestConfigSaveErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing directory", filepath.Join(dir, "missing", "out.toml"), os.ErrNotExist},
		{"directory", dir, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DefaultConfig().Save(tt.path)
			if err == nil {
				t.Fatal("Save succeeded")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			var pathErr *fs.PathError
			if !errors.As(err, &pathErr) {
				t.Errorf("error = %v, want a wrapped *fs.PathError", err)
			}
			if want := "infiniboard: save " + tt.path + ": "; !strings.HasPrefix(err.Error(), want) {
				t.Errorf("error = %q, want prefix %q", err, want)
			}
		})
	}
}

func TestConfigWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := DefaultConfig().Write(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"[tiling]", "p = 3", "q = 7", "[screen]", "zoom = 0.99"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigOptions(t *testing.T) {
	c := DefaultConfig()
	c.Tiling = TilingConfig{P: 5, Q: 4, Res: 2, Niter: 2}
	c.Screen = ScreenConfig{Width: 320, Height: 200, Zoom: 1}
	b, err := New(c.Options()...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Params() != c.Params() || b.Viewport() != c.Viewport() {
		t.Errorf("board = %v %+v, want %v %+v", b.Params(), b.Viewport(), c.Params(), c.Viewport())
	}
}
