// Copyright 2026 The SkillShare Academy Authors
// SPDX-License-Identifier: Apache-2.0

package poll

import (
	"sync"
	"time"

	"github.com/skillshare-academy/skillshare/lib/clock"
)

// Poller invokes a callback immediately and then on a fixed repeating
// interval until stopped. At most one underlying timer exists per
// Poller. Safe for concurrent use.
type Poller struct {
	clock    clock.Clock
	interval time.Duration

	mu       sync.Mutex
	callback func()
	ticker   *clock.Ticker
	done     chan struct{}
}

// New creates a Poller with the given interval. A nil clk uses the
// real clock. Panics if interval <= 0 — a zero-interval poll is a
// busy loop, never what the caller meant.
func New(clk clock.Clock, interval time.Duration) *Poller {
	if interval <= 0 {
		panic("poll: non-positive interval")
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &Poller{clock: clk, interval: interval}
}

// Start invokes callback once immediately (synchronously, in the
// caller's goroutine) and then schedules it on every interval tick.
// If the poller is already running, Start is a no-op: no second timer
// is created and no extra immediate invocation happens — the existing
// timer keeps its cadence and its (possibly newer) callback.
func (p *Poller) Start(callback func()) {
	p.mu.Lock()
	if p.ticker != nil {
		p.mu.Unlock()
		return
	}
	p.callback = callback
	p.ticker = p.clock.NewTicker(p.interval)
	p.done = make(chan struct{})
	ticker, done := p.ticker, p.done
	p.mu.Unlock()

	// The immediate invocation runs outside the lock so the callback
	// may itself call SetCallback or Stop.
	callback()

	go p.run(ticker, done)
}

// run is the tick loop. It dereferences the callback cell on every
// tick so that SetCallback takes effect without a restart.
func (p *Poller) run(ticker *clock.Ticker, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}

		p.mu.Lock()
		callback := p.callback
		p.mu.Unlock()

		// A tick can already be buffered when Stop lands; re-check so
		// a stopped poller never invokes.
		select {
		case <-done:
			return
		default:
		}

		if callback != nil {
			callback()
		}
	}
}

// SetCallback replaces the callback used on subsequent ticks. It does
// not trigger an invocation and does not restart the timer. On a
// stopped poller it has no lasting effect: the next Start installs its
// own callback argument.
func (p *Poller) SetCallback(callback func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callback = callback
}

// Stop cancels the timer. No invocations happen after Stop returns
// apart from one already executing in the tick goroutine. Calling
// Stop when not running is a no-op.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ticker == nil {
		return
	}
	p.ticker.Stop()
	close(p.done)
	p.ticker = nil
	p.done = nil
}

// Running reports whether the poller currently owns a live timer.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticker != nil
}
