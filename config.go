package pretender

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("pretender: invalid config")

// Config is the full runtime configuration, loaded from YAML.
type Config struct {
	Window   WindowConfig     `yaml:"window"`
	Street   StreetConfig     `yaml:"street"`
	Spawner  SpawnerConfig    `yaml:"spawner"`
	Villager WanderConfig     `yaml:"villager"`
	DayNight DayNightConfig   `yaml:"daynight"`
	CRT      CompositorConfig `yaml:"crt"`
	Textures TextureConfig    `yaml:"textures"`
	Backdrop BackdropConfig   `yaml:"backdrop"`
	Log      LogConfig        `yaml:"log"`

	// Seed makes a run reproducible. Empty means time-based.
	Seed string `yaml:"seed"`
	// Debug enables the FPS overlay and per-frame stats logging.
	Debug bool `yaml:"debug"`
	// ScreenshotDir is where screenshot script steps and the F12 key write PNGs.
	ScreenshotDir string `yaml:"screenshot_dir"`
	// Script is an optional session script path.
	Script string `yaml:"script"`
}

// WindowConfig sizes the logical screen and the OS window.
type WindowConfig struct {
	Title string `yaml:"title"`
	// Width and Height are the logical resolution of the scene buffer.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Scale multiplies the logical size to get the initial window size.
	Scale int `yaml:"scale"`
	// TPS is the simulation rate; every tick advances by 1/TPS seconds.
	TPS        int  `yaml:"tps"`
	Fullscreen bool `yaml:"fullscreen"`
	Resizable  bool `yaml:"resizable"`
}

// StreetConfig places the street band as fractions of the logical height.
type StreetConfig struct {
	Top    float64 `yaml:"top"`
	Height float64 `yaml:"height"`
}

// Rect returns the street band for a width x height screen.
func (s StreetConfig) Rect(width, height int) Rect {
	return Rect{
		X:      0,
		Y:      float64(int(float64(height) * s.Top)),
		Width:  float64(width),
		Height: float64(int(float64(height) * s.Height)),
	}
}

// DayNightConfig drives the ambient color cycle.
type DayNightConfig struct {
	Day   Color `yaml:"day"`
	Night Color `yaml:"night"`
	// DayLength is the duration of one day-to-night leg in seconds.
	DayLength float32 `yaml:"day_length"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the stock street: a 320x180 buffer scaled 4x, the
// street band across the middle 40% of the screen, one villager every half
// second and a 20 second day.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:     "pretender",
			Width:     320,
			Height:    180,
			Scale:     4,
			TPS:       60,
			Resizable: true,
		},
		Street:   StreetConfig{Top: 0.4, Height: 0.4},
		Spawner:  DefaultSpawnerConfig(),
		Villager: DefaultWanderConfig(),
		DayNight: DayNightConfig{
			Day:       Color{1, 1, 1, 1},
			Night:     Color{0.25, 0.3, 0.55, 1},
			DayLength: 20,
		},
		CRT:           DefaultCompositorConfig(),
		Textures:      DefaultTextureConfig(),
		Backdrop:      DefaultBackdropConfig(),
		Log:           LogConfig{Level: "info"},
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig overlays a YAML file on DefaultConfig. A missing file yields the
// defaults. The result is validated.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section and returns the first problem found,
// wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return invalid("window size %dx%d", w.Width, w.Height)
	}
	if w.Scale <= 0 {
		return invalid("window scale %d", w.Scale)
	}
	if w.TPS <= 0 {
		return invalid("window tps %d", w.TPS)
	}

	s := c.Street
	if s.Top < 0 || s.Height <= 0 || s.Top+s.Height > 1 {
		return invalid("street band top=%g height=%g must fit in [0, 1]", s.Top, s.Height)
	}

	sp := c.Spawner
	if sp.Interval <= 0 {
		return invalid("spawner interval %g", sp.Interval)
	}
	if sp.InitialCount < 0 {
		return invalid("spawner initial_count %d", sp.InitialCount)
	}
	if sp.Width <= 0 || sp.Height <= 0 {
		return invalid("villager size %gx%g", sp.Width, sp.Height)
	}
	if sp.FrameDuration <= 0 {
		return invalid("spawner frame_duration %g", sp.FrameDuration)
	}
	band := s.Height * float64(w.Height)
	if body := sp.Height / 3; body+2*c.Villager.SpeedY >= band {
		return invalid("street band %.1fpx too narrow for a %.1fpx body stepping %gpx", band, body, c.Villager.SpeedY)
	}

	v := c.Villager
	if v.MinWait <= 0 || v.MaxWait < v.MinWait {
		return invalid("villager wait range [%g, %g)", v.MinWait, v.MaxWait)
	}
	if v.MinSpeedX < 0 || v.MaxSpeedX < v.MinSpeedX {
		return invalid("villager speed range [%g, %g)", v.MinSpeedX, v.MaxSpeedX)
	}
	if v.SpeedY < 0 {
		return invalid("villager speed_y %g", v.SpeedY)
	}
	if v.MoveDuration <= 0 {
		return invalid("villager move_duration %g", v.MoveDuration)
	}

	if c.DayNight.DayLength <= 0 {
		return invalid("daynight day_length %g", c.DayNight.DayLength)
	}

	t := c.Textures
	if t.Capacity <= 0 || t.Frames <= 0 || t.FrameWidth <= 0 || t.FrameHeight <= 0 {
		return invalid("textures %+v", t)
	}

	b := c.Backdrop
	if b.HouseMinW <= 0 || b.HouseMaxW < b.HouseMinW {
		return invalid("backdrop house width range [%d, %d]", b.HouseMinW, b.HouseMaxW)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return invalid("log level %q", c.Log.Level)
	}
	return nil
}

// SeedValues hashes the seed string into the two PCG seed words. An empty
// seed uses the current time.
func (c Config) SeedValues() (uint64, uint64) {
	if c.Seed == "" {
		now := uint64(time.Now().UnixNano())
		return now, now ^ 0x9e3779b97f4a7c15
	}
	return xxhash.Sum64String(c.Seed), xxhash.Sum64String(c.Seed + "/stream")
}

// NewRand returns the run's random source.
func (c Config) NewRand() *rand.Rand {
	s1, s2 := c.SeedValues()
	return rand.New(rand.NewPCG(s1, s2))
}

// Build constructs the zap logger described by the config.
func (l LogConfig) Build() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, l.Level)
	}

	encoding := "console"
	encoder := zap.NewDevelopmentEncoderConfig()
	if l.JSON {
		encoding = "json"
		encoder = zap.NewProductionEncoderConfig()
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         encoding,
		EncoderConfig:    encoder,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}
