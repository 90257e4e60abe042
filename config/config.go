// Package config loads the settings of the tag name tooling from a YAML or keyval file, and from the
// environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aryszka/keyval"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/aryszka/multitag/internal/diag"
	"github.com/aryszka/multitag/names"
)

// ErrUnknownKey is returned when a keyval file contains a setting that doesn't exist.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config holds the settings of the tag name tooling.
type Config struct {

	// LogLevel is one of debug, info, warn and error. Default: warn
	LogLevel string `yaml:"log_level" env:"MULTITAG_LOG_LEVEL"`

	// Names selects where the tag name list is stored.
	Names Names `yaml:"names"`
}

// Names selects the sink of the tag name list.
type Names struct {

	// Driver is one of file, memory, sqlite3, sqlite, postgres, bolt and redis. Default: file
	Driver string `yaml:"driver" env:"MULTITAG_NAMES_DRIVER"`

	// DataSource is a path, a connection string or a URL, depending on the driver. When empty, each
	// driver uses its own default.
	DataSource string `yaml:"data_source" env:"MULTITAG_NAMES_DATA_SOURCE"`

	// Key of the record, for the drivers that store more than one.
	Key string `yaml:"key" env:"MULTITAG_NAMES_KEY"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Names: Names{
			Driver: names.DriverFile,
		},
	}
}

// Load reads the configuration file at path, when not empty, and applies the environment on top of it.
// Files with the .yaml or .yml extension are read as YAML, anything else as keyval.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}

		defer f.Close()
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			err = decodeYAML(f, &c)
		default:
			err = decodeKeyval(f, &c)
		}

		if err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return c, nil
}

func decodeYAML(r io.Reader, c *Config) error {
	err := yaml.NewDecoder(r).Decode(c)
	if err == io.EOF {
		return nil
	}

	return err
}

func setKey(c *Config, key []string, val string) error {
	k := strings.ReplaceAll(strings.ToLower(strings.Join(key, ".")), "_", "-")
	switch k {
	case "log-level":
		c.LogLevel = val
	case "names.driver", "driver":
		c.Names.Driver = val
	case "names.data-source", "data-source":
		c.Names.DataSource = val
	case "names.key", "key":
		c.Names.Key = val
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}

	return nil
}

func decodeKeyval(r io.Reader, c *Config) error {
	kvr := keyval.NewEntryReader(r)
	for {
		e, err := kvr.ReadEntry()
		if err != nil && err != io.EOF {
			return err
		}

		if e == nil {
			break
		}

		if len(e.Key) > 0 {
			if err := setKey(c, e.Key, e.Val); err != nil {
				return err
			}
		}

		if err == io.EOF {
			break
		}
	}

	return nil
}

// SinkOptions returns the options for opening the configured sink.
func (c Config) SinkOptions() names.SinkOptions {
	return names.SinkOptions{
		Driver:     c.Names.Driver,
		DataSource: c.Names.DataSource,
		Key:        c.Names.Key,
	}
}

// Logger returns a stderr logger at the configured level.
func (c Config) Logger() *diag.DefaultLogger {
	return diag.NewDefaultLogger(diag.ParseLevel(c.LogLevel))
}
