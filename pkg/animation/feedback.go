// Package animation drives the hover and press feedback of retained-mode
// widgets.
//
// Each animated widget owns one [FeedbackAnimation]: a single-scalar state
// machine whose progress runs from 0 (rest) to 1 (hovered or pressed).
// Interaction events move it forward or backward, and the host's redraw loop
// advances it one tick at a time:
//
//	anim := animation.NewFeedbackAnimation(animation.EffectEaseOut)
//
//	// On pointer events:
//	redraw := anim.OnCursorMoved(hit)
//
//	// On each frame, while the previous call returned true:
//	redraw = anim.OnRedrawRequest(forward, backward, now)
//	color := graphics.Mix(rest, hovered, anim.Progress())
//
// The package is cooperative and single-threaded: no timers or goroutines,
// all motion happens inside [FeedbackAnimation.OnRedrawRequest], and a widget
// never shares its animation. Hosts that pump several widgets per frame can
// aggregate their needs-redraw results with a [Driver].
package animation

import "time"

// FeedbackAnimation animates a widget's transition between its rest and its
// hovered/pressed visual state.
//
// The zero value is a usable idle animation with [EffectLinear]. Progress is
// kept within [0, 1] by every operation, and whenever the direction reverses
// the current progress becomes the baseline of the new run, so a reversed
// animation continues from where it was instead of snapping.
type FeedbackAnimation struct {
	direction Direction
	// startedAt is the instant the current run began; zero while idle.
	startedAt       time.Time
	progress        float64
	initialProgress float64
	effect          Effect
}

// NewFeedbackAnimation creates an idle feedback animation with the given
// transition effect.
func NewFeedbackAnimation(effect Effect) *FeedbackAnimation {
	return &FeedbackAnimation{effect: effect}
}

// IsRunning reports whether the animation is currently running.
// A forward run keeps running after reaching progress 1 (the widget is still
// hovered or pressed); only the backward leg settles back to idle.
func (a *FeedbackAnimation) IsRunning() bool {
	return !a.startedAt.IsZero()
}

// Progress returns the current progress in [0, 1]. Theming reads it as the
// mix ratio between the rest color and the hovered/pressed color.
func (a *FeedbackAnimation) Progress() float64 {
	return a.progress
}

// Direction returns the direction of the current (or last) run.
func (a *FeedbackAnimation) Direction() Direction {
	return a.direction
}

// Effect returns the transition effect the animation was created with.
func (a *FeedbackAnimation) Effect() Effect {
	return a.effect
}

// Reset forces the animation back to idle rest, discarding any run in flight.
func (a *FeedbackAnimation) Reset() {
	a.direction = DirectionForward
	a.startedAt = time.Time{}
	a.progress = 0
	a.initialProgress = 0
}

// OnPress starts the press feedback. A press always restarts the forward run
// from progress 0, even if a hover animation was mid-flight.
func (a *FeedbackAnimation) OnPress() {
	a.startedAt = Now()
	a.direction = DirectionForward
	a.progress = 0
	a.initialProgress = 0
}

// OnRelease unwinds the press feedback from wherever it currently is:
// the backward run starts with the current progress as its baseline.
func (a *FeedbackAnimation) OnRelease() {
	a.startedAt = Now()
	a.direction = DirectionBackward
	a.initialProgress = a.progress
}

// OnActivate plays the release feedback of a programmatic activation, which
// has no visible press phase: progress jumps straight to 1 and a backward
// run starts from there.
func (a *FeedbackAnimation) OnActivate() {
	a.startedAt = Now()
	a.direction = DirectionBackward
	a.initialProgress = 1
	a.progress = 1
}

// OnCursorMoved updates the hover state from a pointer event and reports
// whether the host needs to keep redrawing.
//
// Entering starts a forward run (or reverses a backward one at its current
// progress); leaving reverses a forward run the same way. Re-entering while
// already moving forward changes nothing, so the start timestamp and the
// baseline survive pointer jitter. Leaving while idle is a no-op and needs
// no redraw.
func (a *FeedbackAnimation) OnCursorMoved(isMouseOver bool) bool {
	if isMouseOver {
		if a.IsRunning() {
			// The cursor re-entered before the unwind finished.
			if a.direction == DirectionBackward {
				a.direction = DirectionForward
				a.initialProgress = a.progress
				a.startedAt = Now()
			}
		} else {
			a.direction = DirectionForward
			a.startedAt = Now()
			a.progress = 0
			a.initialProgress = 0
		}
		return a.progress != 1
	}
	if a.IsRunning() {
		if a.direction == DirectionForward {
			a.direction = DirectionBackward
			a.initialProgress = a.progress
			a.startedAt = Now()
		}
		return true
	}
	return false
}

// OnRedrawRequest advances progress for one frame and reports whether the
// host needs another one.
//
// The host supplies the two transition durations and the current monotonic
// instant; nothing advances between ticks. It must keep ticking while the
// previous call returned true and may stop once it returns false, which
// happens one tick after the backward leg settles at 0: the settling tick
// still returns true, the tick after it detects completion.
//
// A zero forward duration makes the forward leg instantaneous; a zero
// backward duration likewise snaps the unwind straight to 0.
func (a *FeedbackAnimation) OnRedrawRequest(forward, backward time.Duration, now time.Time) bool {
	if !a.IsRunning() {
		return false
	}

	switch {
	case a.direction == DirectionForward && forward == 0:
		a.progress = 1
	case a.direction == DirectionBackward && a.progress == 0:
		// The unwind has settled; stop running without recomputing.
		a.startedAt = time.Time{}
	case a.direction == DirectionBackward && backward == 0:
		a.progress = 0
	default:
		duration := forward
		if a.direction == DirectionBackward {
			duration = backward
		}
		t := float64(now.Sub(a.startedAt)) / float64(duration)
		a.progress = evaluate(a.effect, a.direction, a.initialProgress, t, a.progress)
	}
	return true
}
