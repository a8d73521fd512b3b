// Package config loads the optional YAML configuration of the
// command-line tools.
//
// The file is taken from the --config flag or, when that is empty, the
// SEAGLZMA_CONFIG environment variable. There is no other discovery: with
// neither set, the built-in defaults apply.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	lzma "seaglzma"
)

// EnvVar names the environment variable holding the config path.
const EnvVar = "SEAGLZMA_CONFIG"

// Config is the tool configuration.
type Config struct {
	Encoder EncoderConfig `yaml:"encoder"`
	Decoder DecoderConfig `yaml:"decoder"`
}

// EncoderConfig holds the stream parameters written into new
// containers.
type EncoderConfig struct {
	LC       int    `yaml:"lc"`
	LP       int    `yaml:"lp"`
	PB       int    `yaml:"pb"`
	DictSize uint32 `yaml:"dict_size"`
	// EOSMarker ends each compressed body with an end-of-stream marker.
	EOSMarker bool `yaml:"eos_marker"`
}

// DecoderConfig limits decompression.
type DecoderConfig struct {
	// DictCap caps the dictionary size a container may request. Zero
	// leaves the codec default.
	DictCap int `yaml:"dict_cap"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	p := lzma.DefaultStreamParams
	return &Config{
		Encoder: EncoderConfig{
			LC:        p.Properties.LC,
			LP:        p.Properties.LP,
			PB:        p.Properties.PB,
			DictSize:  p.DictSize,
			EOSMarker: true,
		},
	}
}

// Load loads the file at path, falling back to SEAGLZMA_CONFIG and
// then to Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Keys absent
// from the file keep their default values; unknown keys are rejected.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values against what the codec accepts.
func (c *Config) Validate() error {
	enc := c.EncoderConfig(nil)
	if err := enc.Verify(); err != nil {
		return err
	}
	dec := c.DecoderConfig(nil)
	return dec.Verify()
}

// EncoderConfig converts the encoder section for the library.
func (c *Config) EncoderConfig(logger *slog.Logger) lzma.EncoderConfig {
	return lzma.EncoderConfig{
		Params: &lzma.StreamParams{
			Properties: lzma.Properties{LC: c.Encoder.LC, LP: c.Encoder.LP, PB: c.Encoder.PB},
			DictSize:   c.Encoder.DictSize,
		},
		OmitEOSMarker: !c.Encoder.EOSMarker,
		Logger:        logger,
	}
}

// DecoderConfig converts the decoder section for the library.
func (c *Config) DecoderConfig(logger *slog.Logger) lzma.DecoderConfig {
	return lzma.DecoderConfig{
		DictCap: c.Decoder.DictCap,
		Logger:  logger,
	}
}
