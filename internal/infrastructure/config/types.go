package config

import "go.uber.org/zap/zapcore"

// HarnessConfig is the root config for display.yaml
type HarnessConfig struct {
	Display DisplayConfig `yaml:"display" toml:"display" json:"display"`
	Assets  AssetsConfig  `yaml:"assets" toml:"assets" json:"assets"`
	Logging LoggingConfig `yaml:"logging" toml:"logging" json:"logging"`
}

// DisplayConfig is read once at startup to set up the window and renderer
type DisplayConfig struct {
	Title        string     `yaml:"title" toml:"title" json:"title"`
	ScreenWidth  int       `yaml:"screenWidth" toml:"screenWidth" json:"screenWidth"`
	ScreenHeight int       `yaml:"screenHeight" toml:"screenHeight" json:"screenHeight"`
	Scale        int       `yaml:"scale" toml:"scale" json:"scale"`
	Framerate    int       `yaml:"framerate" toml:"framerate" json:"framerate"`
	ClearColor   []float32 `yaml:"clearColor" toml:"clearColor" json:"clearColor"` // RGBA, 0.0-1.0, exactly 4
}

// ClearRGBA returns the clear color as 4 channels. Only valid after Validate.
func (d DisplayConfig) ClearRGBA() [4]float32 {
	return [4]float32(d.ClearColor)
}

// AssetsConfig locates fonts
type AssetsConfig struct {
	Dir  string `yaml:"dir" toml:"dir" json:"dir"`    // asset root directory
	Font string `yaml:"font" toml:"font" json:"font"` // font path relative to Dir
}

// LoggingConfig configures the zap logger
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level" json:"level"`
	Format string `yaml:"format" toml:"format" json:"format"` // "json" or "console"
}

// Defaults returns the configuration used for missing fields
func Defaults() *HarnessConfig {
	return &HarnessConfig{
		Display: DisplayConfig{
			Title:        "Hidden UI Harness",
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			ClearColor:   []float32{0, 0, 0, 1},
		},
		Assets: AssetsConfig{
			Dir:  "assets",
			Font: "font/square.ttf",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks the configuration, returning an *Error for the first bad field
func (c *HarnessConfig) Validate() error {
	d := c.Display
	if d.ScreenWidth <= 0 {
		return &Error{Field: "display.screenWidth", Reason: "must be positive"}
	}
	if d.ScreenHeight <= 0 {
		return &Error{Field: "display.screenHeight", Reason: "must be positive"}
	}
	if d.Scale <= 0 {
		return &Error{Field: "display.scale", Reason: "must be positive"}
	}
	if d.Framerate <= 0 {
		return &Error{Field: "display.framerate", Reason: "must be positive"}
	}
	if len(d.ClearColor) != 4 {
		return &Error{Field: "display.clearColor", Reason: "must have 4 channels (RGBA)"}
	}
	for _, ch := range d.ClearColor {
		if !(ch >= 0 && ch <= 1) {
			return &Error{Field: "display.clearColor", Reason: "channels must be within 0.0-1.0"}
		}
	}
	if c.Assets.Dir == "" {
		return &Error{Field: "assets.dir", Reason: "must not be empty"}
	}
	if c.Assets.Font == "" {
		return &Error{Field: "assets.font", Reason: "must not be empty"}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return &Error{Field: "logging.level", Reason: "must be one of debug, info, warn, error, dpanic, panic, fatal"}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return &Error{Field: "logging.format", Reason: "must be json or console"}
	}
	return nil
}
