package config

// Progression types.
const (
	ProgressionNone  = "none"
	ProgressionScore = "score" // MaxAt is a score in tenths of a second
	ProgressionTime  = "time"  // MaxAt is a tick count
)

// DifficultyManager turns how far a run has got into a difficulty level.
// The level climbs linearly from the preset's starting point to 1 and
// scales enemy and lift speeds.
type DifficultyManager struct {
	cfg   DifficultyConfig
	start float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, start: clamp01(cfg.InitialLevel)}
}

// SetInitialLevel overrides the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.start = clamp01(level)
}

// SetEnabled turns progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// Level returns the difficulty in [0, 1] after score tenths or ticks.
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.start
	}

	var reached int
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		reached = score
	case ProgressionTime:
		reached = ticks
	default:
		return d.start
	}

	target := max(d.cfg.Progression.MaxAt, 1)
	t := clamp01(float64(reached) / float64(target))
	return d.start + t*(1-d.start)
}

// EnemySpeed returns base patrol speed, raised by up to SpeedMultiplier*base
// at full difficulty.
func (d *DifficultyManager) EnemySpeed(base float64, score, ticks int) float64 {
	return scaled(base, d.Level(score, ticks), d.cfg.Scaling.SpeedMultiplier)
}

// LiftSpeed is EnemySpeed for lifts.
func (d *DifficultyManager) LiftSpeed(base float64, score, ticks int) float64 {
	return scaled(base, d.Level(score, ticks), d.cfg.Scaling.LiftMultiplier)
}

func scaled(base, level, mult float64) float64 {
	return base * (1 + level*mult)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
