package main

import "time"

// realTimer backs channelmgr.Timer with a real *time.Timer, signaling the
// host event loop over a buffered channel rather than invoking the
// Manager's HandleTimer directly from the timer's own goroutine -- this
// component requires all callbacks to land on a single serialized loop
// (SPEC_FULL.md's concurrency model, matching spec.md §5).
type realTimer struct {
	fired   chan struct{}
	timer   *time.Timer
	fireAt  time.Time
	running bool
}

func newRealTimer() *realTimer {
	return &realTimer{fired: make(chan struct{}, 1)}
}

func (r *realTimer) arm(fireAt time.Time) {
	if r.timer != nil {
		r.timer.Stop()
	}
	r.fireAt = fireAt
	r.running = true

	d := time.Until(fireAt)
	if d < 0 {
		d = 0
	}
	r.timer = time.AfterFunc(d, func() {
		select {
		case r.fired <- struct{}{}:
		default:
		}
	})
}

func (r *realTimer) Start(d time.Duration) {
	r.arm(time.Now().Add(d))
}

func (r *realTimer) StartAt(origin time.Time, d time.Duration) {
	r.arm(origin.Add(d))
}

func (r *realTimer) Stop() {
	if r.timer != nil {
		r.timer.Stop()
	}
	r.running = false
}

func (r *realTimer) IsRunning() bool     { return r.running }
func (r *realTimer) FireTime() time.Time { return r.fireAt }
