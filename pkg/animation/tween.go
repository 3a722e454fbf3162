package animation

import "github.com/go-drift/motion/pkg/graphics"

// Tween maps feedback progress onto another value range or type.
//
// The state machine only ever produces a scalar in [0, 1]; a Tween turns
// that scalar into whatever the widget actually animates — an overlay color,
// an elevation, a scale. Use [TweenFloat64] or [TweenColor] for the common
// cases, or supply a custom Lerp.
type Tween[T any] struct {
	// Begin is the value at progress 0 (rest).
	Begin T
	// End is the value at progress 1 (hovered/pressed).
	End T
	// Lerp interpolates between Begin and End at progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at progress t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the animation's current progress.
func (tw *Tween[T]) Transform(a *FeedbackAnimation) T {
	return tw.Evaluate(a.Progress())
}

// TweenFloat64 creates a tween between two scalars.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  graphics.Lerp,
	}
}

// TweenColor creates a tween between two colors, blended per channel
// with [graphics.Mix].
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  graphics.Mix,
	}
}
