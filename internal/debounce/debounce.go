// Package debounce delays a task until its input has been quiet for a
// while. Each new input cancels the pending task; only the last one runs.
package debounce

import (
	"sync"
	"time"
)

type Debouncer[T any] struct {
	delay time.Duration
	fn    func(T)

	// run serializes fn so an older value can never be applied after a
	// newer one.
	run sync.Mutex

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	pending T
	armed   bool
	stopped bool
}

func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Schedule replaces any pending value with v and restarts the delay.
func (d *Debouncer[T]) Schedule(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.cancelLocked()
	d.pending = v
	d.armed = true

	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
}

// Flush applies the pending value right away. It reports whether there was
// one.
func (d *Debouncer[T]) Flush() bool {
	d.run.Lock()
	defer d.run.Unlock()

	d.mu.Lock()
	if !d.armed {
		d.mu.Unlock()
		return false
	}
	v := d.takeLocked()
	d.mu.Unlock()

	d.fn(v)

	return true
}

// Pending returns the value that will be applied next, if any.
func (d *Debouncer[T]) Pending() (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pending, d.armed
}

// Stop drops the pending value. Later calls to Schedule are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.takeLocked()
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.run.Lock()
	defer d.run.Unlock()

	d.mu.Lock()
	if seq != d.seq || !d.armed {
		d.mu.Unlock()
		return
	}
	v := d.takeLocked()
	d.mu.Unlock()

	d.fn(v)
}

func (d *Debouncer[T]) takeLocked() T {
	d.cancelLocked()

	v := d.pending
	var zero T
	d.pending = zero
	d.armed = false

	return v
}

func (d *Debouncer[T]) cancelLocked() {
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
