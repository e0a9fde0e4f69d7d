// Package config provides YAML-based game configuration loading and
// difficulty management for blobrun.
package config

// BlobrunConfig contains all configuration for both Blob Run variants.
type BlobrunConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Lifts      LiftsConfig      `yaml:"lifts"`
	Render     RenderConfig     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the world size and the level generator parameters.
// Distances are in pixels.
type WorldConfig struct {
	TileSize        int  `yaml:"tile_size"`
	Chunks          int  `yaml:"chunks"`
	ChunkWidth      int  `yaml:"chunk_width"`
	ChunkHeight     int  `yaml:"chunk_height"`
	VerticalSpacing int  `yaml:"vertical_spacing"`
	CeilingSpacings int  `yaml:"ceiling_spacings"` // Floors stop this many spacings below the top tile row
	PatternLimit    int  `yaml:"pattern_limit"`    // 0 = whole pattern library
	PoolCapacity    int  `yaml:"pool_capacity"`
	DecorateGround  bool `yaml:"decorate_ground"`
}

// Width returns the world width in pixels.
func (w WorldConfig) Width() int {
	return w.ChunkWidth * w.Chunks
}

// Height returns the world height in pixels.
func (w WorldConfig) Height() int {
	return w.ChunkHeight * w.Chunks
}

// PhysicsConfig defines the physics host parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // px/s², positive is down
	MaxVelocity float64 `yaml:"max_velocity"` // Per-axis cap, 0 disables it
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	JumpCooldownMS int64   `yaml:"jump_cooldown_ms"`
	SpawnOffset    float64 `yaml:"spawn_offset"` // Spawn y is world height minus this
	IdleFrame      int     `yaml:"idle_frame"`
}

// EnemyConfig defines enemy parameters.
type EnemyConfig struct {
	Speed       float64 `yaml:"speed"`
	Count       int     `yaml:"count"` // 0 = chunks*2-1
	WrapMargin  float64 `yaml:"wrap_margin"`
	RespawnBand float64 `yaml:"respawn_band"`
}

// LiftsConfig defines the moving platforms of the lifts variant.
type LiftsConfig struct {
	Count          int     `yaml:"count"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	Travel         float64 `yaml:"travel"` // Distance between the two stops
	JumpImpulse    float64 `yaml:"jump_impulse"`
	DeltaFactor    float64 `yaml:"delta_factor"`
	JumpCooldownMS int64   `yaml:"jump_cooldown_ms"`
}

// RenderConfig defines how world pixels map to terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // ProgressionScore, ProgressionTime or ProgressionNone
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
	LiftMultiplier  float64 `yaml:"lift_multiplier"`  // Added to lift speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means the loaded config is used as is.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, "":
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
