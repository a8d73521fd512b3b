package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	lzma "seaglzma"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seaglzma.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	enc := cfg.EncoderConfig(nil)
	if *enc.Params != lzma.DefaultStreamParams {
		t.Errorf("expected default stream params, got %+v", *enc.Params)
	}
	if enc.OmitEOSMarker {
		t.Error("expected eos marker by default")
	}
	if cfg.Decoder.DictCap != 0 {
		t.Errorf("expected dict_cap=0, got %d", cfg.Decoder.DictCap)
	}
}

func TestLoad_NoPathNoEnv(t *testing.T) {
	t.Setenv(EnvVar, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Encoder != Default().Encoder {
		t.Errorf("expected defaults, got %+v", cfg.Encoder)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, `
encoder:
  dict_size: 1048576
`)
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Encoder.DictSize != 1<<20 {
		t.Errorf("expected dict_size=1048576, got %d", cfg.Encoder.DictSize)
	}
	if cfg.Encoder.LC != 3 || cfg.Encoder.PB != 2 {
		t.Errorf("expected unset keys to keep defaults, got %+v", cfg.Encoder)
	}
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv(EnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	path := writeConfig(t, "decoder:\n  dict_cap: 65536\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Decoder.DictCap != 65536 {
		t.Errorf("expected dict_cap=65536, got %d", cfg.Decoder.DictCap)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
encoder:
  lc: 0
  lp: 2
  pb: 0
  dict_size: 65536
  eos_marker: false
decoder:
  dict_cap: 8388608
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	enc := cfg.EncoderConfig(nil)
	want := lzma.StreamParams{Properties: lzma.Properties{LC: 0, LP: 2, PB: 0}, DictSize: 65536}
	if *enc.Params != want {
		t.Errorf("expected params %+v, got %+v", want, *enc.Params)
	}
	if !enc.OmitEOSMarker {
		t.Error("expected eos_marker=false to omit the marker")
	}
	if dec := cfg.DecoderConfig(nil); dec.DictCap != 8388608 {
		t.Errorf("expected dict_cap=8388608, got %d", dec.DictCap)
	}
}

func TestLoadFile_ZeroProperties(t *testing.T) {
	path := writeConfig(t, `
encoder:
  lc: 0
  lp: 0
  pb: 0
  dict_size: 0
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	enc := cfg.EncoderConfig(nil)
	if err := enc.Verify(); err != nil {
		t.Fatalf("Verify() failed: %v", err)
	}
	want := lzma.StreamParams{DictSize: lzma.DefaultDictSize}
	if *enc.Params != want {
		t.Errorf("expected params %+v, got %+v", want, *enc.Params)
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.Encoder != Default().Encoder {
		t.Errorf("expected defaults, got %+v", cfg.Encoder)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "encoder:\n  level: 9\n", "level"},
		{"lc out of range", "encoder:\n  lc: 9\n", "lc out of range"},
		{"dict too small", "encoder:\n  dict_size: 100\n", "dictionary size"},
		{"negative dict cap", "decoder:\n  dict_cap: -1\n", "negative"},
		{"not yaml", "encoder: [", "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, err)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
