// Package config loads run settings from a TOML file. Command-line flags
// override whatever is loaded here.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"stepfg/internal/geom"
	"stepfg/internal/step"
)

const (
	DefaultInput  = "part_geometry.txt"
	DefaultOutput = "part_out.stp"
)

// Config is the file-level configuration. Pointer fields are optional:
// nil means the value comes from the input file or a flag.
type Config struct {
	Input            string   `toml:"input"`
	Output           string   `toml:"output"`
	Z1               *float64 `toml:"z1"`
	Z2               *float64 `toml:"z2"`
	Scale            *float64 `toml:"scale"`
	NormalizeWinding bool     `toml:"normalize_winding"`
	DXFEncoding      string   `toml:"dxf_encoding"`
	Header           Header   `toml:"header"`
}

// Header overrides the STEP header and product naming. Empty fields keep
// the defaults of step.DefaultHeader.
type Header struct {
	Description       string `toml:"description"`
	Author            string `toml:"author"`
	Organization      string `toml:"organization"`
	Preprocessor      string `toml:"preprocessor"`
	OriginatingSystem string `toml:"originating_system"`
	Authorization     string `toml:"authorization"`
	ProductName       string `toml:"product_name"`
}

func Default() *Config {
	return &Config{Input: DefaultInput, Output: DefaultOutput}
}

// Load reads a TOML config file on top of Default. Unknown keys are an
// error.
func Load(path string) (*Config, error) {
	clean := filepath.Clean(path)
	if ext := filepath.Ext(clean); ext != ".toml" {
		return nil, fmt.Errorf("config file must have .toml extension, got %q", ext)
	}
	info, err := os.Stat(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 << 20
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown keys in %s:\n%s", clean, strict.String())
		}
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings' shape only. The z interval and scale
// values are checked by geom.New, which reports them with the geometry
// error sentinels.
func (c *Config) Validate() error {
	if (c.Z1 == nil) != (c.Z2 == nil) {
		return errors.New("z1 and z2 must be set together")
	}
	switch strings.ToLower(c.DXFEncoding) {
	case "", "utf-8", "utf8", "gbk":
	default:
		return fmt.Errorf("unsupported dxf_encoding %q (utf-8 or gbk)", c.DXFEncoding)
	}
	return nil
}

// Extrusion returns the configured z interval, or nil when unset.
func (c *Config) Extrusion() *geom.Extrusion {
	if c.Z1 == nil || c.Z2 == nil {
		return nil
	}
	return &geom.Extrusion{Z1: *c.Z1, Z2: *c.Z2}
}

// StepHeader merges the configured header fields into the defaults.
func (c *Config) StepHeader(fileName string, now time.Time) step.Header {
	h := step.DefaultHeader(fileName, now)
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&h.Description, c.Header.Description)
	set(&h.Author, c.Header.Author)
	set(&h.Organization, c.Header.Organization)
	set(&h.Preprocessor, c.Header.Preprocessor)
	set(&h.OriginatingSystem, c.Header.OriginatingSystem)
	set(&h.Authorization, c.Header.Authorization)
	set(&h.ProductName, c.Header.ProductName)
	return h
}
