package config

import (
	_ "embed"
)

//go:embed defaults/blobrun.yaml
var defaultBlobrunYAML []byte

// DefaultBlobrunConfig returns the default Blob Run configuration.
func DefaultBlobrunConfig() BlobrunConfig {
	return BlobrunConfig{
		World: WorldConfig{
			TileSize:        32,
			Chunks:          4,
			ChunkWidth:      640,
			ChunkHeight:     480,
			VerticalSpacing: 144,
			CeilingSpacings: 1,
			PatternLimit:    0,
			PoolCapacity:    12000,
		},
		Physics: PhysicsConfig{
			Gravity:     1200,
			MaxVelocity: 1500,
		},
		Player: PlayerConfig{
			Speed:          240,
			JumpImpulse:    -600,
			JumpCooldownMS: 500,
			SpawnOffset:    96,
			IdleFrame:      7,
		},
		Enemy: EnemyConfig{
			Speed:       192,
			WrapMargin:  22,
			RespawnBand: 100,
		},
		Lifts: LiftsConfig{
			Count:          6,
			Width:          96,
			Height:         16,
			Speed:          60,
			Travel:         144,
			JumpImpulse:    -300,
			DeltaFactor:    10,
			JumpCooldownMS: 750,
		},
		Render: RenderConfig{
			CellWidth:  16,
			CellHeight: 32,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionTime,
				MaxAt: 10800, // 3 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				LiftMultiplier:  0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blobrun", "blobrun_lifts":
		return defaultBlobrunYAML
	default:
		return nil
	}
}
