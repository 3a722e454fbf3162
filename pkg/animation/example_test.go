package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/graphics"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// This example walks a press through its forward and backward legs with a
// fixed clock, the way a host redraw loop would.
func ExampleFeedbackAnimation() {
	start := time.Unix(0, 0)
	prev := animation.SetClock(fixedClock{now: start})
	defer animation.SetClock(prev)

	anim := animation.NewFeedbackAnimation(animation.EffectLinear)
	forward := 1000 * time.Millisecond
	backward := 500 * time.Millisecond

	anim.OnPress()
	anim.OnRedrawRequest(forward, backward, start.Add(500*time.Millisecond))
	fmt.Printf("pressed: %.1f\n", anim.Progress())

	animation.SetClock(fixedClock{now: start.Add(500 * time.Millisecond)})
	anim.OnRelease()
	anim.OnRedrawRequest(forward, backward, start.Add(750*time.Millisecond))
	fmt.Printf("released: %.1f\n", anim.Progress())

	// The tick after settling stops the run; one more tick and the host may
	// stop scheduling frames.
	anim.OnRedrawRequest(forward, backward, start.Add(766*time.Millisecond))
	fmt.Printf("running: %v\n", anim.IsRunning())
	fmt.Printf("redraw: %v\n", anim.OnRedrawRequest(forward, backward, start.Add(782*time.Millisecond)))

	// Output:
	// pressed: 0.5
	// released: 0.0
	// running: false
	// redraw: false
}

// This example shows the hover feedback a widget paints from its animation's
// progress.
func ExampleFeedbackAnimation_hover() {
	anim := animation.NewFeedbackAnimation(animation.EffectEaseOut)

	// On every pointer event over the widget:
	needsRedraw := anim.OnCursorMoved(true)
	_ = needsRedraw

	// On every frame, blend the rest color toward the hovered color:
	rest := graphics.RGB(0x2A, 0x2D, 0x32)
	hovered := graphics.RGB(0x3C, 0x41, 0x48)
	_ = graphics.Mix(rest, hovered, anim.Progress())
}

// This example maps progress onto a widget elevation with a tween.
func ExampleTween() {
	elevation := animation.TweenFloat64(0, 8)

	fmt.Printf("at rest: %.0f\n", elevation.Evaluate(0))
	fmt.Printf("halfway: %.0f\n", elevation.Evaluate(0.5))
	fmt.Printf("pressed: %.0f\n", elevation.Evaluate(1))

	// Output:
	// at rest: 0
	// halfway: 4
	// pressed: 8
}

// This example drives two widgets from one host loop through a Driver.
func ExampleDriver() {
	start := time.Unix(0, 0)
	prev := animation.SetClock(fixedClock{now: start})
	defer animation.SetClock(prev)

	button := animation.NewFeedbackAnimation(animation.EffectLinear)
	row := animation.NewFeedbackAnimation(animation.EffectLinear)

	driver := animation.NewDriver()
	driver.Add(func(now time.Time) bool {
		return button.OnRedrawRequest(250*time.Millisecond, 150*time.Millisecond, now)
	})
	driver.Add(func(now time.Time) bool {
		return row.OnRedrawRequest(250*time.Millisecond, 150*time.Millisecond, now)
	})

	// An activation unwinds to rest; the host frames until Pump says stop.
	button.OnActivate()
	now := start
	frames := 0
	for driver.Pump(now.Add(16 * time.Millisecond)) {
		now = now.Add(16 * time.Millisecond)
		frames++
	}
	fmt.Println("settled after frames:", frames > 0)

	// Output:
	// settled after frames: true
}
