package config

import "math"

// Ramp applies the stepwise difficulty increase: whenever the integer part
// of the score is a positive multiple of ScoreStep, the horizontal speed
// grows and the gap shrinks down to a floor.
type Ramp struct {
	cfg      DifficultyConfig
	floorGap int
	lastStep int // Last score multiple applied, for TriggerOnCross
}

// NewRamp creates a ramp that never shrinks the gap below floorGap.
func NewRamp(cfg DifficultyConfig, floorGap int) *Ramp {
	return &Ramp{
		cfg:      cfg,
		floorGap: floorGap,
	}
}

// Reset forgets which score multiples have already fired.
func (r *Ramp) Reset() {
	r.lastStep = 0
}

// IsEnabled returns whether the ramp can fire at all.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.ScoreStep > 0
}

// Apply evaluates the ramp for the current score and returns the adjusted
// speed and gap. fired reports whether the ramp changed anything this call.
//
// With TriggerEveryTick the condition is re-evaluated on every call with no
// memory, so a score resting on a multiple fires on every tick it rests
// there.
func (r *Ramp) Apply(score float64, speed, gap int) (newSpeed, newGap int, fired bool) {
	if !r.IsEnabled() || score <= 0 {
		return speed, gap, false
	}

	whole := int(math.Floor(score))
	if whole%r.cfg.ScoreStep != 0 {
		return speed, gap, false
	}

	if r.cfg.Trigger == TriggerOnCross {
		if whole == r.lastStep {
			return speed, gap, false
		}
		r.lastStep = whole
	}

	newSpeed = speed + r.cfg.SpeedIncrease
	newGap = max(gap-r.cfg.GapDecrease, r.floorGap)
	return newSpeed, newGap, true
}
