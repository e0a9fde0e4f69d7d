package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BlobrunConfig
	if err := yaml.Unmarshal(GetDefaultYAML("blobrun"), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if want := DefaultBlobrunConfig(); !reflect.DeepEqual(cfg, want) {
		t.Errorf("embedded defaults drifted:\n got %+v\nwant %+v", cfg, want)
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown game returned defaults")
	}
}

func TestLoadBlobrunSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadBlobrun("")
	if err != nil {
		t.Fatalf("LoadBlobrun: %v", err)
	}
	if cfg.World.Chunks != 4 {
		t.Fatalf("chunks = %d, want embedded default 4", cfg.World.Chunks)
	}

	dir := filepath.Join(home, ".blobrun", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "blobrun.yaml"), []byte("world:\n  chunks: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadBlobrun("")
	if err != nil {
		t.Fatalf("LoadBlobrun: %v", err)
	}
	if cfg.World.Chunks != 2 {
		t.Errorf("chunks = %d, want user override 2", cfg.World.Chunks)
	}
	if cfg.World.TileSize != 32 {
		t.Errorf("tile size = %d, unset keys must keep defaults", cfg.World.TileSize)
	}
}

func TestLoadBlobrunCustomPath(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		missing bool
		wantErr bool
		check   func(t *testing.T, cfg BlobrunConfig)
	}{
		{
			name:    "partial override",
			content: "enemy:\n  speed: 300\nlifts:\n  count: 2\n",
			check: func(t *testing.T, cfg BlobrunConfig) {
				if cfg.Enemy.Speed != 300 || cfg.Lifts.Count != 2 {
					t.Errorf("overrides not applied: %+v %+v", cfg.Enemy, cfg.Lifts)
				}
				if cfg.Physics.Gravity != 1200 {
					t.Errorf("gravity = %v, want default", cfg.Physics.Gravity)
				}
			},
		},
		{name: "broken yaml", content: "world: [", wantErr: true},
		{name: "missing file", missing: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if !tt.missing {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			cfg, err := LoadBlobrun(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestWorldSize(t *testing.T) {
	w := DefaultBlobrunConfig().World
	if w.Width() != 2560 || w.Height() != 1920 {
		t.Errorf("world = %dx%d, want 2560x1920", w.Width(), w.Height())
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultBlobrunConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*BlobrunConfig)
	}{
		{"zero tile", func(c *BlobrunConfig) { c.World.TileSize = 0 }},
		{"zero chunks", func(c *BlobrunConfig) { c.World.Chunks = 0 }},
		{"zero spacing", func(c *BlobrunConfig) { c.World.VerticalSpacing = 0 }},
		{"zero pool", func(c *BlobrunConfig) { c.World.PoolCapacity = 0 }},
		{"zero cell", func(c *BlobrunConfig) { c.Render.CellWidth = 0 }},
	}
	for _, tt := range tests {
		cfg := DefaultBlobrunConfig()
		tt.mutate(&cfg)
		if cfg.Validate() == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestApplyBlobrunPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		level    float64
		enemySpd float64
	}{
		{DifficultyEasy, true, 0.0, 150},
		{DifficultyNormal, true, 0.3, 192},
		{DifficultyHard, true, 0.7, 240},
		{DifficultyFixed, false, 0.0, 192},
	}

	for _, tt := range tests {
		cfg := DefaultBlobrunConfig()
		ApplyBlobrunPreset(&cfg, tt.preset)

		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("%s: enabled = %v", tt.preset, cfg.Difficulty.Enabled)
		}
		if cfg.Difficulty.InitialLevel != tt.level {
			t.Errorf("%s: initial level = %v, want %v", tt.preset, cfg.Difficulty.InitialLevel, tt.level)
		}
		if cfg.Enemy.Speed != tt.enemySpd {
			t.Errorf("%s: enemy speed = %v, want %v", tt.preset, cfg.Enemy.Speed, tt.enemySpd)
		}
	}

	cfg := DefaultBlobrunConfig()
	ApplyBlobrunPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultBlobrunConfig()) {
		t.Error("empty preset changed the config")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed", ""} {
		if _, ok := ParsePreset(name); !ok {
			t.Errorf("ParsePreset(%q) rejected", name)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset accepted an unknown preset")
	}
}
