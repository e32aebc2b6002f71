package search

import (
	"sync"
	"time"
)

// DefaultDebounceDelay is used when a non-positive delay is requested.
const DefaultDebounceDelay = 75 * time.Millisecond

// Debouncer delays calls to fn until delay has passed without a newer call.
// Only the arguments of the latest call are ever delivered.
type Debouncer[T any] struct {
	mu    sync.Mutex
	fn    func(T)
	delay time.Duration
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a Debouncer for fn.
func NewDebouncer[T any](fn func(T), delay time.Duration) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}
	return &Debouncer[T]{fn: fn, delay: delay}
}

// Call cancels any pending invocation and schedules fn(arg) after the delay.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// A newer Call may have raced with this timer firing.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.fn(arg)
	})
}

// Stop cancels the pending invocation, if any.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Debounce wraps fn so that bursts of calls collapse into one call carrying the
// latest argument, made delay after the last call in the burst.
func Debounce[T any](fn func(T), delay time.Duration) func(T) {
	return NewDebouncer(fn, delay).Call
}
