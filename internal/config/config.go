// Package config reads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ironsheep/biscuit-tools-mcp/internal/labelling"
)

// Environment variables.
const (
	EnvLogLevel   = "BISCUIT_MCP_LOG_LEVEL"
	EnvBackground = "BISCUIT_MCP_BACKGROUND"
	EnvTableSize  = "BISCUIT_MCP_TABLE_SIZE"
	EnvSeed       = "BISCUIT_MCP_SEED"
	EnvCacheBytes = "BISCUIT_MCP_CACHE_BYTES"
)

// DefaultCacheBytes bounds the raw image bytes kept by the image cache.
const DefaultCacheBytes = 256 << 20

// Config holds server settings.
type Config struct {
	LogLevel   string
	Background color.RGBA
	TableSize  int
	Seed       int64
	CacheBytes int64
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel:   "info",
		Background: labelling.DefaultBackground,
		TableSize:  labelling.DefaultTableSize,
		Seed:       time.Now().UnixNano(),
		CacheBytes: DefaultCacheBytes,
	}
}

// Load reads settings from the process environment. When envFile names an
// existing file its values are loaded first; variables already set in the
// environment win.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, errors.Wrapf(err, "loading %s", envFile)
			}
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a variable lookup function.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvBackground); ok && v != "" {
		c, err := ParseHexColor(v)
		if err != nil {
			return Config{}, errors.Wrap(err, EnvBackground)
		}
		cfg.Background = c
	}
	if v, ok := lookup(EnvTableSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, errors.Errorf("%s: want a positive integer, got %q", EnvTableSize, v)
		}
		cfg.TableSize = n
	}
	if v, ok := lookup(EnvSeed); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, errors.Wrap(err, EnvSeed)
		}
		cfg.Seed = n
	}
	if v, ok := lookup(EnvCacheBytes); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return Config{}, errors.Errorf("%s: want a non-negative integer, got %q", EnvCacheBytes, v)
		}
		cfg.CacheBytes = n
	}

	return cfg, nil
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA"; the leading '#' is
// optional and six-digit colors are opaque.
func ParseHexColor(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, errors.Wrapf(err, "invalid hex color %q", hex)
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, errors.Wrapf(err, "invalid hex color %q", hex)
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, errors.Errorf("invalid hex color length %q", hex)
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// FinderOptions returns the labelling session options for c.
func (c Config) FinderOptions(log logrus.FieldLogger) labelling.Options {
	return labelling.Options{
		Background:               c.Background,
		UseTransparentBackground: c.Background == labelling.Transparent,
		InitialTableSize:         c.TableSize,
		Random:                   labelling.NewRandSource(c.Seed),
		Log:                      log,
	}
}
