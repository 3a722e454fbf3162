package animation

import "time"

// FrameCallback advances one animated widget for the frame at now and
// reports whether it needs another frame. A callback typically wraps
// [FeedbackAnimation.OnRedrawRequest] with the widget's themed durations.
type FrameCallback func(now time.Time) bool

// Driver pumps the feedback animations of a host's widgets once per frame
// and aggregates their needs-redraw results, so the host schedules frames
// only while something is still moving.
//
// A Driver belongs to a single host loop and is not safe for concurrent
// use; feedback animation is cooperative and single-threaded throughout.
type Driver struct {
	callbacks map[int]FrameCallback
	nextID    int
}

// NewDriver creates an empty driver.
func NewDriver() *Driver {
	return &Driver{callbacks: make(map[int]FrameCallback)}
}

// Add registers a frame callback and returns a function that removes it,
// for the owning widget to call when it is disposed.
func (d *Driver) Add(fn FrameCallback) func() {
	if d.callbacks == nil {
		d.callbacks = make(map[int]FrameCallback)
	}
	id := d.nextID
	d.nextID++
	d.callbacks[id] = fn
	return func() {
		delete(d.callbacks, id)
	}
}

// Pump invokes every registered callback with the current frame instant and
// reports whether any of them needs another frame. The host keeps scheduling
// frames while Pump returns true and may stop once it returns false.
func (d *Driver) Pump(now time.Time) bool {
	needsRedraw := false
	for _, fn := range d.callbacks {
		if fn(now) {
			needsRedraw = true
		}
	}
	return needsRedraw
}

// Active returns the number of registered callbacks.
func (d *Driver) Active() int {
	return len(d.callbacks)
}
