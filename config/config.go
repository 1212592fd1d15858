// Package config loads the batch job configuration.
//
// Values are resolved in order: built-in defaults, an optional imbatch.ini
// (section [resize]) in IMBATCH_CONF_DIR or the working directory, then
// IMBATCH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/vaughan0/go-ini"

	cimg "github.com/go-imsto/imbatch/image"
)

// Version of imbatch
const Version = "0.1.0"

const (
	envPrefix  = "imbatch"
	iniName    = "imbatch.ini"
	iniSection = "resize"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config is one batch job, immutable once a run starts
type Config struct {
	InputDir  string `split_words:"true"`
	OutputDir string `split_words:"true"`
	Width     uint
	Height    uint
	KeepRatio bool `split_words:"true"`
	Format    string
	Quality   int
	Engine    string
	Filter    string
	Workers   int
	SentryDSN string `split_words:"true"`
	Develop   bool
}

// Default returns the stock job: 800x600, keep ratio, JPEG at 85
func Default() *Config {
	return &Config{
		InputDir:  "images_input",
		OutputDir: "images_output",
		Width:     800,
		Height:    600,
		KeepRatio: true,
		Format:    "JPEG",
		Quality:   85,
		Engine:    cimg.EngineNfnt,
		Filter:    cimg.FilterBicubic,
		Workers:   1,
	}
}

// ConfDir returns the directory searched for imbatch.ini
func ConfDir() string {
	if dir := os.Getenv("IMBATCH_CONF_DIR"); dir != "" {
		return dir
	}
	dir, _ := os.Getwd()
	return dir
}

// Load resolves defaults, the ini file and the environment
func Load() (*Config, error) {
	c := Default()
	err := c.LoadFile(path.Join(ConfDir(), iniName))
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err = envconfig.Process(envPrefix, c); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile overlays values from an ini file
func (c *Config) LoadFile(name string) error {
	f, err := ini.LoadFile(name)
	if err != nil {
		return err
	}
	for _, section := range []string{"", iniSection} {
		for key, value := range f[section] {
			if err = c.set(key, value); err != nil {
				return fmt.Errorf("%s [%s] %s: %w", name, section, key, err)
			}
		}
	}
	return nil
}

func (c *Config) set(key, value string) (err error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(key) {
	case "input_dir":
		c.InputDir = value
	case "output_dir":
		c.OutputDir = value
	case "width":
		c.Width, err = parseUint(value)
	case "height":
		c.Height, err = parseUint(value)
	case "size":
		c.Width, c.Height, err = cimg.ParseSize(value)
	case "keep_ratio":
		c.KeepRatio, err = strconv.ParseBool(value)
	case "format":
		c.Format = value
	case "quality":
		c.Quality, err = strconv.Atoi(value)
	case "engine":
		c.Engine = value
	case "filter":
		c.Filter = value
	case "workers":
		c.Workers, err = strconv.Atoi(value)
	case "sentry_dsn":
		c.SentryDSN = value
	case "develop":
		c.Develop, err = strconv.ParseBool(value)
	}
	return
}

func parseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint(n), err
}

// InDevelop ...
func (c *Config) InDevelop() bool {
	return c.Develop
}

// OutputFormat returns the encoder for Format
func (c *Config) OutputFormat() cimg.Format {
	return cimg.ParseFormat(c.Format)
}

// OutputExt is the lowercased format name with a leading dot
func (c *Config) OutputExt() string {
	return "." + strings.ToLower(c.Format)
}

// Validate checks every field a run depends on
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: empty input dir", ErrInvalidConfig)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: empty output dir", ErrInvalidConfig)
	}
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > cimg.MaxDimension || c.Height > cimg.MaxDimension {
		return fmt.Errorf("%w: size %dx%d exceeds %d", ErrInvalidConfig, c.Width, c.Height, cimg.MaxDimension)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality %d out of 1-100", ErrInvalidConfig, c.Quality)
	}
	if strings.Contains(c.Format, ".") || c.OutputFormat() == cimg.FmtNone {
		return fmt.Errorf("%w: unsupported format %q", ErrInvalidConfig, c.Format)
	}
	if !oneOf(c.Engine, cimg.Engines()) {
		return fmt.Errorf("%w: engine %q not in %v", ErrInvalidConfig, c.Engine, cimg.Engines())
	}
	if !oneOf(c.Filter, cimg.Filters()) {
		return fmt.Errorf("%w: filter %q not in %v", ErrInvalidConfig, c.Filter, cimg.Filters())
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be at least 1", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf("%s -> %s %dx%d keep:%v %s q%d %s/%s x%d",
		c.InputDir, c.OutputDir, c.Width, c.Height, c.KeepRatio, c.Format, c.Quality, c.Engine, c.Filter, c.Workers)
}

func oneOf(s string, list []string) bool {
	for _, v := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
