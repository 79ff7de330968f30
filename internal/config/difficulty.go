package config

// DifficultyManager calculates a dynamic game parameter from the score.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Every > 0 && d.cfg.Step != 0
}

// Base returns the value at score 0.
func (d *DifficultyManager) Base() float64 {
	return d.cfg.Base
}

// Value returns the parameter for the given score: Base plus one Step for
// every full Every points, never past Limit.
func (d *DifficultyManager) Value(score int) float64 {
	if !d.IsEnabled() || score <= 0 {
		return d.cfg.Base
	}

	v := d.cfg.Base + float64(score/d.cfg.Every)*d.cfg.Step
	if d.cfg.Limit == 0 {
		return v
	}
	if d.cfg.Step > 0 && v > d.cfg.Limit {
		return d.cfg.Limit
	}
	if d.cfg.Step < 0 && v < d.cfg.Limit {
		return d.cfg.Limit
	}
	return v
}
