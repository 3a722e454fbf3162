package animation

import "fmt"

// Direction is the direction a feedback animation is moving in.
type Direction int

const (
	// DirectionForward means progress is moving toward the hovered/pressed
	// extreme (1.0).
	DirectionForward Direction = iota
	// DirectionBackward means progress is moving toward rest (0.0).
	DirectionBackward
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Effect selects the interpolation curve of a feedback animation.
//
// The set is closed: each tick dispatches on the effect with a single switch.
type Effect int

const (
	// EffectLinear moves progress at a constant rate.
	EffectLinear Effect = iota
	// EffectEaseOut decelerates progress with a cubic ease-out curve.
	EffectEaseOut
	// EffectNone disables tick-driven motion; transitions that should be
	// instantaneous snap progress directly (see [FeedbackAnimation.OnActivate]).
	EffectNone
)

// String returns a human-readable representation of the effect.
func (e Effect) String() string {
	switch e {
	case EffectLinear:
		return "linear"
	case EffectEaseOut:
		return "ease-out"
	case EffectNone:
		return "none"
	default:
		return fmt.Sprintf("Effect(%d)", int(e))
	}
}

// evaluate maps the elapsed fraction t onto a new progress value, starting
// from the baseline captured when the current run (or reversal) began.
// The result is clamped to [0, 1]; prior is returned for EffectNone.
func evaluate(effect Effect, direction Direction, baseline, t, prior float64) float64 {
	var step float64
	switch effect {
	case EffectLinear:
		step = t
	case EffectEaseOut:
		step = easeOutCubic(t)
	default:
		return prior
	}
	if direction == DirectionBackward {
		step = -step
	}
	return clampUnit(baseline + step)
}

// easeOutCubic is Robert Penner's cubic ease-out: 1 - (1-t)^3.
func easeOutCubic(t float64) float64 {
	p := t - 1
	return p*p*p + 1
}

// clampUnit clamps a value to the range [0, 1].
func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
