// Package theme supplies the timing and color parameters that widget
// feedback animation consumes: transition durations, the effect kind, and
// the interaction colors blended with an animation's progress.
package theme

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/graphics"
)

// FeedbackThemeData defines how widget hover and press feedback animates
// and which colors it blends between.
type FeedbackThemeData struct {
	// Effect is the interpolation curve for feedback transitions.
	Effect animation.Effect
	// ForwardDuration is the rest -> hovered/pressed transition length.
	ForwardDuration time.Duration
	// BackwardDuration is the hovered/pressed -> rest transition length.
	BackwardDuration time.Duration
	// Multiplier scales both durations. 1 is normal speed, 2 doubles every
	// transition, 0 makes them instantaneous. Negative values are treated
	// as 0.
	Multiplier float64
	// Base is the widget's rest color.
	Base graphics.Color
	// Hovered is the color blended in while the cursor is over the widget.
	Hovered graphics.Color
	// Pressed is the color blended in while the widget is pressed.
	Pressed graphics.Color
}

// DefaultFeedbackTheme returns the light feedback theme.
func DefaultFeedbackTheme() FeedbackThemeData {
	return FeedbackThemeData{
		Effect:           animation.EffectEaseOut,
		ForwardDuration:  250 * time.Millisecond,
		BackwardDuration: 150 * time.Millisecond,
		Multiplier:       1,
		Base:             graphics.RGB(0xE8, 0xEA, 0xED),
		Hovered:          graphics.RGB(0xC6, 0xCC, 0xD4),
		Pressed:          graphics.RGB(0xA9, 0xB2, 0xBE),
	}
}

// DarkFeedbackTheme returns the dark feedback theme.
func DarkFeedbackTheme() FeedbackThemeData {
	return FeedbackThemeData{
		Effect:           animation.EffectEaseOut,
		ForwardDuration:  250 * time.Millisecond,
		BackwardDuration: 150 * time.Millisecond,
		Multiplier:       1,
		Base:             graphics.RGB(0x2A, 0x2D, 0x32),
		Hovered:          graphics.RGB(0x3C, 0x41, 0x48),
		Pressed:          graphics.RGB(0x4E, 0x55, 0x5E),
	}
}

// Durations returns the forward and backward transition durations with the
// multiplier applied. A zero (or negative) multiplier yields zero durations,
// which the state machine treats as instantaneous transitions.
func (t FeedbackThemeData) Durations() (forward, backward time.Duration) {
	m := t.Multiplier
	if m < 0 {
		m = 0
	}
	forward = time.Duration(float64(t.ForwardDuration) * m)
	backward = time.Duration(float64(t.BackwardDuration) * m)
	return forward, backward
}

// HoverColor returns the widget color at the given hover progress:
// Base at 0, Hovered at 1.
func (t FeedbackThemeData) HoverColor(progress float64) graphics.Color {
	return graphics.Mix(t.Base, t.Hovered, progress)
}

// PressColor returns the widget color at the given press progress:
// Base at 0, Pressed at 1.
func (t FeedbackThemeData) PressColor(progress float64) graphics.Color {
	return graphics.Mix(t.Base, t.Pressed, progress)
}
