package services

import (
	"sync"
	"time"
)

// SaveReminder tracks the caller-side Saved/Dirty persistence status
// and arms a one-shot inactivity timer while the ledger is dirty. The
// timer is cancel-and-replace: every mutation re-arms it, a successful
// save disarms it. When it fires, a single prompt is delivered on
// Prompts for the UI event loop to act on; acting either saves (move
// to Saved) or snoozes (stay Dirty, timer re-armed).
//
// The timer callback runs on its own goroutine, so the small amount of
// shared state is mutex-guarded even though the ledger itself is only
// ever touched by the event loop.
type SaveReminder struct {
	delay   time.Duration
	prompts chan struct{}

	mu    sync.Mutex
	timer *time.Timer
	dirty bool
}

func NewSaveReminder(delay time.Duration) *SaveReminder {
	return &SaveReminder{
		delay:   delay,
		prompts: make(chan struct{}, 1),
	}
}

// Prompts delivers at most one pending reminder at a time.
func (r *SaveReminder) Prompts() <-chan struct{} {
	return r.prompts
}

// MarkDirty records an unsaved mutation and (re)arms the timer.
func (r *SaveReminder) MarkDirty() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirty = true
	r.rearmLocked()
}

// MarkSaved records a successful save and disarms the timer.
func (r *SaveReminder) MarkSaved() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirty = false
	r.stopLocked()
}

// Snooze re-arms the timer without changing the dirty status. Used
// when the user dismisses a prompt without saving.
func (r *SaveReminder) Snooze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dirty {
		r.rearmLocked()
	}
}

// Dirty reports whether there are unsaved mutations.
func (r *SaveReminder) Dirty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dirty
}

// Stop disarms the timer for good, e.g. on shutdown.
func (r *SaveReminder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopLocked()
}

func (r *SaveReminder) rearmLocked() {
	r.stopLocked()
	r.timer = time.AfterFunc(r.delay, r.fire)
}

func (r *SaveReminder) stopLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *SaveReminder) fire() {
	r.mu.Lock()
	fire := r.dirty
	r.mu.Unlock()
	if !fire {
		return
	}
	select {
	case r.prompts <- struct{}{}:
	default:
		// A prompt is already pending; firing again adds nothing.
	}
}
