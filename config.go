package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Dotenv keys.
const (
	envFontPaths    = "BITMAPGEN_FONT_PATHS"
	envFontSize     = "BITMAPGEN_FONT_SIZE"
	envOutputDir    = "BITMAPGEN_OUTPUT_DIR"
	envIconDir      = "BITMAPGEN_ICON_DIR"
	envIconSizes    = "BITMAPGEN_ICON_SIZES"
	envSerialDevice = "BITMAPGEN_SERIAL_DEVICE"
	envBaudRate     = "BITMAPGEN_BAUD"
)

// Config holds every path and size the generators use.
type Config struct {
	FontPaths []string // candidate fonts, first existing wins
	FontSize  float64  // points

	GlyphWidth  int
	GlyphHeight int

	OutputDir  string
	DigitsFile string
	IconsFile  string
	IconDir    string
	IconSizes  []int

	SerialDevice string
	BaudRate     int
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		FontPaths: []string{
			"/System/Library/Fonts/SF-Mono-Heavy.otf",
			"/System/Library/Fonts/SF-Mono.ttc",
			"/Library/Fonts/SF-Mono-Heavy.otf",
			"/System/Library/Fonts/Courier.ttc",
			"/Library/Fonts/Courier New Bold.ttf",
			"/Library/Fonts/Courier Bold.ttf",
			"/usr/share/fonts/truetype/liberation/LiberationMono-Bold.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSansMono-Bold.ttf",
		},
		FontSize:     120,
		GlyphWidth:   70,
		GlyphHeight:  110,
		OutputDir:    "src",
		DigitsFile:   "digit_bitmaps.h",
		IconsFile:    "weather_bitmaps.h",
		IconDir:      "weather-bitmaps",
		IconSizes:    []int{32},
		SerialDevice: "/dev/ttyS1",
		BaudRate:     115200,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.FontSize <= 0:
		return fmt.Errorf("font size must be positive, got %v", c.FontSize)
	case c.GlyphWidth <= 0 || c.GlyphHeight <= 0:
		return fmt.Errorf("glyph canvas must be positive, got %dx%d", c.GlyphWidth, c.GlyphHeight)
	case c.OutputDir == "" || c.DigitsFile == "" || c.IconsFile == "":
		return errors.New("output directory and file names must be set")
	case c.IconDir == "":
		return errors.New("icon directory must be set")
	case len(c.IconSizes) == 0:
		return errors.New("at least one icon size is required")
	case c.BaudRate <= 0:
		return fmt.Errorf("baud rate must be positive, got %d", c.BaudRate)
	}
	for _, s := range c.IconSizes {
		if s <= 0 {
			return fmt.Errorf("icon size must be positive, got %d", s)
		}
	}
	return nil
}

// DigitsPath is the output path of the digits header.
func (c Config) DigitsPath() string {
	return filepath.Join(c.OutputDir, c.DigitsFile)
}

// IconsPath is the output path of the icons header for size. With a single
// configured size the plain file name is used; otherwise the size is
// appended to keep one header per size.
func (c Config) IconsPath(size int) string {
	if len(c.IconSizes) <= 1 {
		return filepath.Join(c.OutputDir, c.IconsFile)
	}
	ext := filepath.Ext(c.IconsFile)
	base := strings.TrimSuffix(c.IconsFile, ext)
	return filepath.Join(c.OutputDir, fmt.Sprintf("%s_%d%s", base, size, ext))
}

// LoadEnv applies the dotenv file at path on top of c. A missing file is an
// error only when required is set.
func (c *Config) LoadEnv(path string, required bool) error {
	vals, err := godotenv.Read(path)
	if err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("env %s: %w", path, err)
	}
	return c.apply(vals)
}

func (c *Config) apply(vals map[string]string) error {
	var err error
	if v, ok := vals[envFontPaths]; ok {
		c.FontPaths = splitList(v, ":")
	}
	if v, ok := vals[envFontSize]; ok {
		if c.FontSize, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%s: %w", envFontSize, err)
		}
	}
	if v, ok := vals[envOutputDir]; ok {
		c.OutputDir = v
	}
	if v, ok := vals[envIconDir]; ok {
		c.IconDir = v
	}
	if v, ok := vals[envIconSizes]; ok {
		if c.IconSizes, err = parseSizes(v); err != nil {
			return fmt.Errorf("%s: %w", envIconSizes, err)
		}
	}
	if v, ok := vals[envSerialDevice]; ok {
		c.SerialDevice = v
	}
	if v, ok := vals[envBaudRate]; ok {
		if c.BaudRate, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("%s: %w", envBaudRate, err)
		}
	}
	return nil
}

func splitList(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, p := range splitList(s, ",") {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// cliFlags are the flags shared by all subcommands. They are applied after
// the dotenv file, and only when set explicitly.
type cliFlags struct {
	env    string
	font   string
	size   float64
	out    string
	dir    string
	sizes  string
	device string
}

func (f *cliFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.env, "env", defaultEnvFile, "dotenv file with BITMAPGEN_* settings")
	fs.StringVar(&f.font, "font", "", "colon-separated candidate font files")
	fs.Float64Var(&f.size, "size", 0, "font size in points")
	fs.StringVar(&f.out, "out", "", "output directory")
	fs.StringVar(&f.dir, "dir", "", "icon source directory")
	fs.StringVar(&f.sizes, "sizes", "", "comma-separated icon sizes")
	fs.StringVar(&f.device, "device", "", "serial device of the preview panel")
}

// parseConfig builds the configuration for a subcommand from defaults, the
// dotenv file and args.
func parseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var f cliFlags
	f.register(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	cfg := DefaultConfig()
	if err := cfg.LoadEnv(f.env, set["env"]); err != nil {
		return Config{}, err
	}

	if set["font"] {
		cfg.FontPaths = splitList(f.font, ":")
	}
	if set["size"] {
		cfg.FontSize = f.size
	}
	if set["out"] {
		cfg.OutputDir = f.out
	}
	if set["dir"] {
		cfg.IconDir = f.dir
	}
	if set["sizes"] {
		sizes, err := parseSizes(f.sizes)
		if err != nil {
			return Config{}, fmt.Errorf("-sizes: %w", err)
		}
		cfg.IconSizes = sizes
	}
	if set["device"] {
		cfg.SerialDevice = f.device
	}
	return cfg, cfg.Validate()
}
