package crop

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgcrop/svgdoc"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by the errors of Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config gathers the settings of a crop run.
type Config struct {
	Input  string // source document
	Output string // written document

	// Paths starting left of Threshold are kept.
	Threshold float64

	ViewBox string // viewBox of the written document
	Fill    string // fill color of the style class
	Class   string // style class name

	// Fit replaces ViewBox by the bounds of the kept M/L points.
	Fit bool

	// Preview, if not empty, is the name of a PNG rendering
	// of the written document, PreviewWidth pixels wide.
	Preview      string
	PreviewWidth int
}

// DefaultConfig returns the settings used to extract
// the Anadolu University logo.
func DefaultConfig() Config {
	return Config{
		Input:        "public/icons/universities/anadolu-aof_raw.svg",
		Output:       "public/icons/universities/anadolu-aof.svg",
		Threshold:    35,
		ViewBox:      "0 0 32 28",
		Fill:         "#a52632",
		Class:        "cls-1",
		PreviewWidth: 256,
	}
}

// LoadConfig starts from DefaultConfig, and applies the LOGOCROP_*
// environment variables, optionally defined in a .env file.
func LoadConfig() Config {
	_ = godotenv.Load()

	def := DefaultConfig()
	return Config{
		Input:        envOr("LOGOCROP_INPUT", def.Input),
		Output:       envOr("LOGOCROP_OUTPUT", def.Output),
		Threshold:    envFloat("LOGOCROP_THRESHOLD", def.Threshold),
		ViewBox:      envOr("LOGOCROP_VIEWBOX", def.ViewBox),
		Fill:         envOr("LOGOCROP_FILL", def.Fill),
		Class:        envOr("LOGOCROP_CLASS", def.Class),
		Fit:          envBool("LOGOCROP_FIT", def.Fit),
		Preview:      envOr("LOGOCROP_PREVIEW", def.Preview),
		PreviewWidth: envInt("LOGOCROP_PREVIEW_WIDTH", def.PreviewWidth),
	}
}

// Validate checks the fields which would otherwise produce
// a broken document.
func (cfg Config) Validate() error {
	switch {
	case cfg.Input == "":
		return fmt.Errorf("%w: missing input", ErrInvalidConfig)
	case cfg.Output == "":
		return fmt.Errorf("%w: missing output", ErrInvalidConfig)
	case cfg.Class == "" || strings.ContainsAny(cfg.Class, "\"{}<> "):
		return fmt.Errorf("%w: invalid class name %q", ErrInvalidConfig, cfg.Class)
	case strings.ContainsAny(cfg.Fill, "\"{}<>;"):
		return fmt.Errorf("%w: invalid fill %q", ErrInvalidConfig, cfg.Fill)
	case math.IsNaN(cfg.Threshold):
		return fmt.Errorf("%w: threshold is NaN", ErrInvalidConfig)
	case cfg.Preview != "" && cfg.PreviewWidth < 0:
		return fmt.Errorf("%w: negative preview width", ErrInvalidConfig)
	}
	if _, err := svgdoc.ParseViewBox(cfg.ViewBox); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
