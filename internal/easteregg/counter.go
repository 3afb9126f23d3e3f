// Package easteregg counts rapid clicks on the application icon and fires a
// reward once enough of them arrive without a pause.
package easteregg

import (
	"time"

	"samtalsstod/internal/logger"
	"samtalsstod/internal/timer"
)

const (
	DefaultThreshold = 7
	DefaultDebounce  = 500 * time.Millisecond
)

type State int

const (
	Idle State = iota
	Counting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Counting:
		return "counting"
	default:
		return "unknown"
	}
}

// Counter is driven from the UI goroutine only; it takes no locks.
type Counter struct {
	threshold int
	debounce  time.Duration
	scheduler timer.Scheduler
	onTrigger func()
	logger    logger.Logger

	count   int
	pending timer.Timer
	// generation invalidates reset callbacks that were already queued
	// when their timer got replaced
	generation uint64
}

type Option func(*Counter)

func WithThreshold(n int) Option {
	return func(c *Counter) {
		if n > 0 {
			c.threshold = n
		}
	}
}

func WithDebounce(d time.Duration) Option {
	return func(c *Counter) {
		if d > 0 {
			c.debounce = d
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(c *Counter) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewCounter(scheduler timer.Scheduler, onTrigger func(), opts ...Option) *Counter {
	c := &Counter{
		threshold: DefaultThreshold,
		debounce:  DefaultDebounce,
		scheduler: scheduler,
		onTrigger: onTrigger,
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Click registers one click. It reports whether this click fired the trigger.
func (c *Counter) Click() bool {
	c.count++
	c.cancelPending()

	if c.count >= c.threshold {
		c.logger.Info("EasterEgg", "triggered", map[string]interface{}{
			"clicks": c.count,
		})
		c.count = 0
		if c.onTrigger != nil {
			c.onTrigger()
		}
		return true
	}

	gen := c.generation
	c.pending = c.scheduler.AfterFunc(c.debounce, func() {
		c.reset(gen)
	})

	c.logger.Debug("EasterEgg", "click counted", map[string]interface{}{
		"count": c.count,
	})
	return false
}

func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) State() State {
	if c.count == 0 {
		return Idle
	}
	return Counting
}

// Shutdown drops any pending reset.
func (c *Counter) Shutdown() {
	c.cancelPending()
	c.count = 0
}

func (c *Counter) reset(gen uint64) {
	if gen != c.generation {
		return
	}
	c.pending = nil
	if c.count > 0 {
		c.logger.Debug("EasterEgg", "click streak expired", map[string]interface{}{
			"count": c.count,
		})
	}
	c.count = 0
}

func (c *Counter) cancelPending() {
	c.generation++
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}
