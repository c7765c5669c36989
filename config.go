package infiniboard

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/infiniboard/poincare"
)

// ErrInvalidConfig is returned by LoadConfig and Config.Validate when a
// configuration cannot describe a board.
var ErrInvalidConfig = errors.New("infiniboard: invalid config")

// Config is the file form of a board's options.
//
//	[tiling]
//	p = 3
//	q = 7
//	res = 5
//	niter = 6
//
//	[screen]
//	width = 800
//	height = 600
//	zoom = 0.99
type Config struct {
	Tiling TilingConfig `toml:"tiling"`
	Screen ScreenConfig `toml:"screen"`
}

// TilingConfig selects the background tiling.
type TilingConfig struct {
	P     int `toml:"p"`
	Q     int `toml:"q"`
	Res   int `toml:"res"`
	Niter int `toml:"niter"`
}

// ScreenConfig sets the initial window size and zoom.
type ScreenConfig struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Zoom   float64 `toml:"zoom"`
}

// DefaultConfig returns the configuration of a board created without
// options.
func DefaultConfig() Config {
	v := DefaultViewport()
	return Config{
		Tiling: TilingConfig{
			P:     DefaultTiling.P,
			Q:     DefaultTiling.Q,
			Res:   DefaultTiling.Res,
			Niter: DefaultTiling.Niter,
		},
		Screen: ScreenConfig{
			Width:  v.Width,
			Height: v.Height,
			Zoom:   v.Zoom,
		},
	}
}

// LoadConfig reads a TOML configuration. Keys missing from the file keep
// their DefaultConfig values; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("infiniboard: config loaded",
		slog.String("path", path),
		slog.String("tiling", c.Params().String()))
	return c, nil
}

// Validate checks the tiling and the screen.
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Viewport().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Params returns the tiling parameters.
func (c Config) Params() poincare.Params {
	return poincare.Params{P: c.Tiling.P, Q: c.Tiling.Q, Res: c.Tiling.Res, Niter: c.Tiling.Niter}
}

// Viewport returns the screen settings as a viewport.
func (c Config) Viewport() Viewport {
	return Viewport{Width: c.Screen.Width, Height: c.Screen.Height, Zoom: c.Screen.Zoom}
}

// Options converts c into board options.
func (c Config) Options() []Option {
	return []Option{WithTiling(c.Params()), WithViewport(c.Viewport())}
}

// Write encodes c as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes c to path. Errors name the path and wrap the cause.
func (c Config) Save(path string) error {
	var buf bytes.Buffer
	if err := c.Write(&buf); err != nil {
		return fmt.Errorf("infiniboard: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("infiniboard: save %s: %w", path, err)
	}
	return nil
}
