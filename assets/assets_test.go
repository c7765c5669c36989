package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"text", []byte("@vertex fn main() {}\n"), nil},
		{"empty", []byte{}, nil},
		{"nul in middle", []byte("ab\x00cd"), ErrNulByte},
		{"nul at end", []byte("abc\x00"), ErrNulByte},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "asset", tt.data)
			got, err := Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && string(got) != string(tt.data) {
				t.Errorf("Load = %q, want %q", got, tt.data)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.wgsl")
	_, err := Load(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadString(t *testing.T) {
	path := writeFile(t, "shader.wgsl", []byte("x"))
	s, err := LoadString(path)
	if err != nil || s != "x" {
		t.Errorf("LoadString = %q, %v", s, err)
	}
	if _, err := LoadString(writeFile(t, "bad", []byte{0})); !errors.Is(err, ErrNulByte) {
		t.Errorf("error = %v, want ErrNulByte", err)
	}
}
