package vis

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvWidth      = "SOLARVIS_WIDTH"
	EnvHeight     = "SOLARVIS_HEIGHT"
	EnvHeaderFont = "SOLARVIS_HEADER_FONT"
)

const (
	DefaultWidth      = 800
	DefaultHeight     = 800
	DefaultHeaderFont = "Arial-16"
)

// Config holds the window geometry and the font used for the system name.
// It is fixed at startup.
type Config struct {
	Width      int
	Height     int
	HeaderFont Font
}

// Font is a family/size pair in the "Arial-16" notation.
type Font struct {
	Family string
	Size   int // points
}

func (f Font) String() string {
	return f.Family + "-" + strconv.Itoa(f.Size)
}

// ParseFont parses a "family-size" descriptor. The size is taken from the last
// dash so that families like "DejaVu-Sans-12" keep their inner dashes.
func ParseFont(raw string) (Font, error) {
	raw = strings.TrimSpace(raw)
	idx := strings.LastIndex(raw, "-")
	if idx <= 0 || idx == len(raw)-1 {
		return Font{}, fmt.Errorf("font %q: want family-size", raw)
	}
	size, err := strconv.Atoi(raw[idx+1:])
	if err != nil {
		return Font{}, fmt.Errorf("font %q: size: %w", raw, err)
	}
	if size <= 0 {
		return Font{}, fmt.Errorf("font %q: size must be positive", raw)
	}
	return Font{Family: raw[:idx], Size: size}, nil
}

// DefaultConfig returns an 800x800 window with an Arial-16 header.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, HeaderFont: Font{Family: "Arial", Size: 16}}
}

// DefaultConfigFromEnv starts from DefaultConfig and applies any overrides
// found in the environment.
func DefaultConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if raw := os.Getenv(EnvWidth); raw != "" {
		width, err := parseDimension(EnvWidth, raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Width = width
	}
	if raw := os.Getenv(EnvHeight); raw != "" {
		height, err := parseDimension(EnvHeight, raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Height = height
	}
	if raw := os.Getenv(EnvHeaderFont); raw != "" {
		font, err := ParseFont(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvHeaderFont, err)
		}
		cfg.HeaderFont = font
	}

	return cfg, nil
}

// Validate reports whether the window dimensions are usable.
func (cfg Config) Validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, cfg.Width, cfg.Height)
	}
	return nil
}

func parseDimension(name, raw string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer (got %q): %w", name, raw, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be positive (got %d)", name, parsed)
	}
	return parsed, nil
}
