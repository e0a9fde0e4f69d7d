package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlobrun loads Blob Run configuration.
// Search order: customPath -> ~/.blobrun/configs/blobrun.yaml -> ./configs/blobrun.yaml -> embedded default
//
// Files only need to carry the keys they change; everything else keeps its
// default value.
func LoadBlobrun(customPath string) (BlobrunConfig, error) {
	cfg := DefaultBlobrunConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blobrun.yaml"); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, nil
		}
	}

	// Try local configs directory
	if c, ok := tryFile(filepath.Join("configs", "blobrun.yaml")); ok {
		return c, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlobrunYAML, &cfg); err != nil {
		return DefaultBlobrunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile parses path over the defaults. Unreadable or broken files are
// skipped so the search can go on.
func tryFile(path string) (BlobrunConfig, bool) {
	cfg := DefaultBlobrunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blobrun", "configs", filename)
}

// ApplyBlobrunPreset modifies the config based on a difficulty preset.
func ApplyBlobrunPreset(cfg *BlobrunConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Enemy.Speed = 150
		cfg.Lifts.Speed = 45
	case DifficultyHard:
		cfg.Enemy.Speed = 240
		cfg.Lifts.Speed = 80
		cfg.Enemy.Count = cfg.World.Chunks * 3
	}
}

// Validate reports the first setting that would make the world unbuildable.
func (c BlobrunConfig) Validate() error {
	w := c.World
	switch {
	case w.TileSize <= 0:
		return fmt.Errorf("world.tile_size must be positive, got %d", w.TileSize)
	case w.Chunks <= 0:
		return fmt.Errorf("world.chunks must be positive, got %d", w.Chunks)
	case w.ChunkWidth <= 0 || w.ChunkHeight <= 0:
		return fmt.Errorf("world chunk size must be positive, got %dx%d", w.ChunkWidth, w.ChunkHeight)
	case w.VerticalSpacing <= 0:
		return fmt.Errorf("world.vertical_spacing must be positive, got %d", w.VerticalSpacing)
	case w.PoolCapacity <= 0:
		return fmt.Errorf("world.pool_capacity must be positive, got %d", w.PoolCapacity)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("render cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight)
	}
	return nil
}
