package config

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/robert-malhotra/go-seviri/schema"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	want := &Config{
		ByteOrder:    "little",
		TextPadding:  "null-term",
		Offset:       450,
		Format:       FormatFlat,
		StrictLength: true,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("offset: 12\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Offset != 12 {
		t.Errorf("offset: got %d", cfg.Offset)
	}
	if cfg.ByteOrder != "big" || cfg.Format != FormatYAML {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"byte order", "byte_order: middle\n"},
		{"padding", "text_padding: zeros\n"},
		{"format", "format: json\n"},
		{"offset", "offset: -1\n"},
		{"syntax", "offset: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestOrderAndPadding(t *testing.T) {
	cfg := Default()
	order, err := cfg.Order()
	if err != nil || order != binary.BigEndian {
		t.Errorf("default order: %v, %v", order, err)
	}
	pad, err := cfg.Padding()
	if err != nil || pad != schema.PadNullOrSpace {
		t.Errorf("default padding: %v, %v", pad, err)
	}

	cfg.ByteOrder = "little"
	cfg.TextPadding = "SPACE-PAD"
	order, _ = cfg.Order()
	pad, _ = cfg.Padding()
	if order != binary.LittleEndian {
		t.Errorf("expected little endian, got %v", order)
	}
	if pad != schema.PadSpacePad {
		t.Errorf("expected space-pad, got %v", pad)
	}

	opts, err := cfg.HeaderOptions()
	if err != nil {
		t.Fatalf("HeaderOptions failed: %v", err)
	}
	if len(opts) != 2 {
		t.Errorf("expected 2 options, got %d", len(opts))
	}
}
