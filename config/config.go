package config

import (
	"encoding/json"
	"errors"
	"image/color"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/soocke/rti-preview/domain/preview"
)

// Camera kinds understood by capture.New.
const (
	CameraScreen = "screen"
	CameraGDI    = "gdi"
	CameraDir    = "dir"
)

// EnvPrefix prefixes every environment override, e.g. PREVIEW_FRAME_TIMEOUT_MS.
const EnvPrefix = "PREVIEW"

// Config holds runtime configuration for the preview and its camera.
// Fields may be loaded from a JSON file, then overridden from the environment
// and command-line flags. Environment names derive from the field names, e.g.
// FrameTimeoutMs reads PREVIEW_FRAME_TIMEOUT_MS.
type Config struct {
	Debug    bool `json:"debug" split_words:"true"`
	DarkMode bool `json:"dark_mode" split_words:"true"`

	// Preview timing and overlay geometry.
	FrameTimeoutMs int  `json:"frame_timeout_ms" split_words:"true"`
	FPSIntervalMs  int  `json:"fps_interval_ms" split_words:"true"`
	SelectWidth    int  `json:"select_width" split_words:"true"`
	SelectCorner   int  `json:"select_corner" split_words:"true"`
	PreviewWidth   int  `json:"preview_width" split_words:"true"`
	PreviewHeight  int  `json:"preview_height" split_words:"true"`
	StartLive      bool `json:"start_live" split_words:"true"`

	// Camera source.
	Camera      string `json:"camera" split_words:"true"`
	CameraDir   string `json:"camera_dir" split_words:"true"`
	JPEGQuality int    `json:"jpeg_quality" split_words:"true"`

	// Screen region grabbed by the screen cameras; zero size means full screen.
	RegionX int `json:"region_x" split_words:"true"`
	RegionY int `json:"region_y" split_words:"true"`
	RegionW int `json:"region_w" split_words:"true"`
	RegionH int `json:"region_h" split_words:"true"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		FrameTimeoutMs: 50,
		FPSIntervalMs:  1000,
		SelectWidth:    2,
		SelectCorner:   15,
		PreviewWidth:   640,
		PreviewHeight:  426,
		StartLive:      false,
		Camera:         CameraScreen,
		CameraDir:      "",
		JPEGQuality:    80,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.FrameTimeoutMs <= 0 {
		c.FrameTimeoutMs = d.FrameTimeoutMs
	}
	if c.FPSIntervalMs <= 0 {
		c.FPSIntervalMs = d.FPSIntervalMs
	}
	if c.SelectWidth <= 0 {
		c.SelectWidth = d.SelectWidth
	}
	if c.SelectCorner <= 0 {
		c.SelectCorner = d.SelectCorner
	}
	if c.PreviewWidth <= 0 || c.PreviewHeight <= 0 {
		c.PreviewWidth, c.PreviewHeight = d.PreviewWidth, d.PreviewHeight
	}
	if c.JPEGQuality <= 0 || c.JPEGQuality > 100 {
		c.JPEGQuality = d.JPEGQuality
	}
	if c.RegionW < 0 || c.RegionH < 0 {
		c.RegionW, c.RegionH = 0, 0
	}
	switch c.Camera {
	case CameraScreen, CameraGDI:
	case CameraDir:
		if c.CameraDir == "" {
			return errors.New("config: camera_dir required for dir camera")
		}
	case "":
		c.Camera = d.Camera
	default:
		return errors.New("config: unknown camera " + c.Camera)
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// LoadDotenv exports the variables of a .env file into the process
// environment without overriding variables already set. A missing file is
// not an error.
func LoadDotenv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

// ApplyEnv overrides fields from PREVIEW_* environment variables. Variables
// that are not set leave the current value alone. Call Validate afterwards.
func (c *Config) ApplyEnv() error {
	return envconfig.Process(EnvPrefix, c)
}

// FrameTimeout returns the delay between frame grabs.
func (c *Config) FrameTimeout() time.Duration {
	return time.Duration(c.FrameTimeoutMs) * time.Millisecond
}

// FPSInterval returns the delay between frame rate reports.
func (c *Config) FPSInterval() time.Duration {
	return time.Duration(c.FPSIntervalMs) * time.Millisecond
}

// PreviewOptions converts the config into surface options. outer and inner
// are the overlay border colors.
func (c *Config) PreviewOptions(outer, inner color.Color) preview.Options {
	return preview.Options{
		FrameTimeout: c.FrameTimeout(),
		FPSInterval:  c.FPSInterval(),
		SelectWidth:  c.SelectWidth,
		SelectCorner: c.SelectCorner,
		Width:        c.PreviewWidth,
		Height:       c.PreviewHeight,
		OuterColor:   outer,
		InnerColor:   inner,
	}
}
