package realtime

import (
	"sync"
	"time"
)

// Rotator cycles an index over a fixed-size announcement list on a timer.
// At most one interval loop is live per Rotator: Reset, Next, Prev and Jump
// all cancel the previous loop before arming a new one, so manual navigation
// restarts the interval rather than stacking timers. Stop is idempotent.
type Rotator struct {
	mu       sync.Mutex
	interval time.Duration
	length   int
	index    int
	gen      uint64
	stopCh   chan struct{}
	onChange func(index int)
}

// NewRotator creates a stopped rotator. onChange fires after every index
// change, tick-driven or manual; it must not call back into the Rotator.
func NewRotator(interval time.Duration, onChange func(index int)) *Rotator {
	return &Rotator{interval: interval, onChange: onChange}
}

// Reset replaces the list length, rewinds to index 0 and restarts the
// interval. A zero length leaves the rotation inactive with no timer armed.
func (r *Rotator) Reset(length int) {
	r.mu.Lock()
	r.length = length
	r.index = 0
	r.restartLocked()
	r.mu.Unlock()
}

// Next advances manually and restarts the interval.
func (r *Rotator) Next() int {
	return r.step(1)
}

// Prev steps back manually and restarts the interval.
func (r *Rotator) Prev() int {
	return r.step(-1)
}

// Jump moves directly to index i (modulo length) and restarts the interval.
func (r *Rotator) Jump(i int) int {
	r.mu.Lock()
	if r.length == 0 {
		r.mu.Unlock()
		return 0
	}
	r.index = ((i % r.length) + r.length) % r.length
	r.restartLocked()
	cb, idx := r.onChange, r.index
	r.mu.Unlock()
	if cb != nil {
		cb(idx)
	}
	return idx
}

// Stop cancels the interval loop. Stopping an already-stopped rotator is a
// no-op.
func (r *Rotator) Stop() {
	r.mu.Lock()
	r.cancelLocked()
	r.mu.Unlock()
}

// Index returns the current position.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Running reports whether an interval loop is armed.
func (r *Rotator) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopCh != nil
}

func (r *Rotator) step(delta int) int {
	r.mu.Lock()
	if r.length == 0 {
		r.mu.Unlock()
		return 0
	}
	r.index = ((r.index+delta)%r.length + r.length) % r.length
	r.restartLocked()
	cb, idx := r.onChange, r.index
	r.mu.Unlock()
	if cb != nil {
		cb(idx)
	}
	return idx
}

// advance is the tick path; gen guards against a stale loop firing after a
// restart.
func (r *Rotator) advance(gen uint64) {
	r.mu.Lock()
	if gen != r.gen || r.length == 0 {
		r.mu.Unlock()
		return
	}
	r.index = (r.index + 1) % r.length
	cb, idx := r.onChange, r.index
	r.mu.Unlock()
	if cb != nil {
		cb(idx)
	}
}

func (r *Rotator) restartLocked() {
	r.cancelLocked()
	if r.length == 0 {
		return
	}
	r.gen++
	gen := r.gen
	stop := make(chan struct{})
	r.stopCh = stop
	go r.loop(stop, gen)
}

func (r *Rotator) cancelLocked() {
	if r.stopCh != nil {
		close(r.stopCh)
		r.stopCh = nil
	}
	r.gen++
}

func (r *Rotator) loop(stop chan struct{}, gen uint64) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			r.advance(gen)
		}
	}
}
