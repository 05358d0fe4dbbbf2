// Package timer provides the cancellable delayed action used for debounced
// search input.
package timer

import (
	"sync"
	"time"

	"github.com/hammamikhairi/recipebox/internal/logger"
)

// DefaultDelay is the quiet period before a debounced action runs.
const DefaultDelay = 200 * time.Millisecond

// Option configures the debouncer.
type Option func(*Debouncer)

// WithDispatch routes fired actions through fn instead of running them on
// the timer goroutine. The UI uses this to post actions onto its event
// loop so state is only ever touched from one goroutine.
func WithDispatch(fn func(action func())) Option {
	return func(d *Debouncer) {
		d.dispatch = fn
	}
}

// WithDelay sets the delay used by Trigger.
func WithDelay(delay time.Duration) Option {
	return func(d *Debouncer) {
		d.delay = delay
	}
}

// Debouncer holds at most one pending action. Scheduling a new action
// cancels the previous one; an action that was already dispatched but has
// not run yet is dropped as well.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	pending  bool
	delay    time.Duration
	dispatch func(func())
	log      *logger.Logger
}

// New creates a debouncer.
func New(log *logger.Logger, opts ...Option) *Debouncer {
	d := &Debouncer{
		delay:    DefaultDelay,
		dispatch: func(fn func()) { fn() },
		log:      log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the delay used by Trigger.
func (d *Debouncer) Delay() time.Duration { return d.delay }

// Trigger schedules action after the configured delay.
func (d *Debouncer) Trigger(action func()) {
	d.Schedule(d.delay, action)
}

// Schedule runs action once delay has passed without another Schedule or
// Stop call.
func (d *Debouncer) Schedule(delay time.Duration, action func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.log.Debug("debounce: superseded pending action")
	}
	d.gen++
	gen := d.gen
	d.pending = true
	d.timer = time.AfterFunc(delay, func() {
		d.dispatch(func() {
			if d.claim(gen) {
				action()
			}
		})
	})
}

// claim marks generation gen as run. It fails if gen was superseded.
func (d *Debouncer) claim(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen || !d.pending {
		return false
	}
	d.pending = false
	d.timer = nil
	return true
}

// Stop cancels the pending action, if any, and reports whether one was
// pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	was := d.pending
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
	return was
}

// Pending reports whether an action is waiting to run.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
